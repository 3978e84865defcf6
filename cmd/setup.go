package main

import (
	"context"

	"github.com/desertthunder/contacts/internal/shared"
	"github.com/desertthunder/contacts/internal/store"
	"github.com/urfave/cli/v3"
)

// SetupConfig writes the default configuration to the --config path.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	if err := shared.CreateConfigFile(r.configPath); err != nil {
		return err
	}
	r.logger.Info("config file created", "path", r.configPath)
	return r.writePlain("✓ Config written to %s\n", r.configPath)
}

// SetupData creates an empty contacts file at the configured path.
func (r *Runner) SetupData(ctx context.Context, cmd *cli.Command) error {
	path := r.config.Store.Path
	if err := store.Create(path, store.Options{Header: r.config.Store.Header}); err != nil {
		return err
	}
	r.logger.Info("contacts file created", "path", path, "header", r.config.Store.Header)
	return r.writePlain("✓ Contacts file created at %s\n", path)
}

// SetupDatabase initializes the snapshot database and runs migrations.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	r.logger.Info("initializing database", "path", r.config.Database.Path)

	db, err := r.openDatabase(ctx, r.config.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	r.logger.Infof("setup complete for database: %v", r.config.Database.Path)
	return nil
}
