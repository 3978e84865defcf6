package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/desertthunder/contacts/internal/formatter"
	"github.com/desertthunder/contacts/internal/repositories"
	"github.com/desertthunder/contacts/internal/shared"
	"github.com/desertthunder/contacts/internal/store"
	"github.com/urfave/cli/v3"
)

// Export writes the loaded contacts to a file, stdout, or a SQLite snapshot.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	result, err := store.Load(r.config.Store.Path, r.storeOptions())
	if err != nil {
		return err
	}

	output := cmd.String("output")

	switch {
	case format == formatter.FormatSQLite:
		return r.exportSnapshot(ctx, result, output)
	case output == "-":
		data, err := formatter.Render(result.Records, format)
		if err != nil {
			return err
		}
		_, err = r.output.Write(data)
		return err
	}

	path, err := formatter.WriteExport(result.Records, format, output)
	if err != nil {
		return err
	}

	r.logger.Info("export complete", "format", format, "contacts", result.Count(), "path", path)
	return r.writePlain("✓ Exported %d contacts to %s\n", result.Count(), path)
}

// exportSnapshot copies the loaded contacts into the snapshot database.
func (r *Runner) exportSnapshot(ctx context.Context, result *store.Result, dbPath string) error {
	if dbPath == "" || dbPath == "-" {
		dbPath = r.config.Database.Path
	}

	db, err := r.openDatabase(ctx, dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	snapshot, err := repositories.NewSnapshotRepository(db).Create(ctx, r.config.Store.Path, result.Records, len(result.Malformed))
	if err != nil {
		return err
	}

	r.logger.Info("snapshot created", "id", snapshot.ID, "contacts", snapshot.RecordCount, "database", dbPath)
	return r.writePlain("✓ Snapshot %s: %d contacts written to %s\n", snapshot.ID, snapshot.RecordCount, dbPath)
}

// openDatabase connects to the snapshot database at path and brings its schema up to date.
func (r *Runner) openDatabase(ctx context.Context, path string) (*sql.DB, error) {
	db, err := shared.NewDatabase(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create database: %w", err)
	}

	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)

	if err := shared.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

// Backup copies the contacts file byte for byte.
func (r *Runner) Backup(ctx context.Context, cmd *cli.Command) error {
	src := r.config.Store.Path
	dst := cmd.String("output")
	if dst == "" {
		dst = src + r.config.Backup.Suffix
	}
	if dst == src {
		return fmt.Errorf("%w: backup path is the contacts file", shared.ErrInvalidArgument)
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrIO, err)
	}
	defer in.Close()

	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if !cmd.Bool("force") {
		flags |= os.O_EXCL
	}

	out, err := os.OpenFile(dst, flags, 0644)
	if err != nil {
		return fmt.Errorf("%w: %v (use --force to overwrite)", shared.ErrWrite, err)
	}

	n, err := io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrWrite, err)
	}

	r.logger.Info("backup written", "source", src, "path", dst, "bytes", n)
	return r.writePlain("✓ Backed up %s to %s\n", src, dst)
}
