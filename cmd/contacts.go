package main

import (
	"context"
	"fmt"
	"os"

	"github.com/desertthunder/contacts/internal/formatter"
	"github.com/desertthunder/contacts/internal/search"
	"github.com/desertthunder/contacts/internal/shared"
	"github.com/desertthunder/contacts/internal/shell"
	"github.com/desertthunder/contacts/internal/store"
	"github.com/urfave/cli/v3"
)

// Shell runs the interactive menu until the user quits.
func (r *Runner) Shell(ctx context.Context, cmd *cli.Command) error {
	logger := shared.WithLogger(r.logger, "session", shared.GenerateID())
	logger.Debug("starting shell", "path", r.config.Store.Path)

	sh := shell.New(shell.Options{
		In:     r.input,
		Out:    r.output,
		Path:   r.config.Store.Path,
		Store:  store.Options{Header: r.config.Store.Header, Logger: logger},
		Logger: logger,
	})
	return sh.Run(ctx)
}

// List prints all well-formed contacts as a table or JSON.
func (r *Runner) List(ctx context.Context, cmd *cli.Command) error {
	result, err := store.Load(r.config.Store.Path, r.storeOptions())
	if err != nil {
		return err
	}

	r.logger.Debug("loaded contacts", "count", result.Count(), "skipped", len(result.Malformed))

	if cmd.Bool("json") {
		return r.writeJSON(result.Records, cmd.Bool("pretty"))
	}
	return formatter.WriteTable(r.output, result.Records)
}

// Add appends a new contact with the next free id.
func (r *Runner) Add(ctx context.Context, cmd *cli.Command) error {
	sess, err := store.Open(r.config.Store.Path, r.storeOptions())
	if err != nil {
		return err
	}
	defer sess.Close()

	c, err := sess.Add(cmd.String("name"), cmd.String("email"))
	if err != nil {
		return err
	}

	if err := sess.Close(); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrWrite, err)
	}

	r.logger.Info("contact added", "id", c.ID, "path", r.config.Store.Path)
	return r.writePlain("Added %s\n", c)
}

// Search prints the raw rows that have a field equal to the query.
//
// An empty query ("") is accepted and matches rows with an empty field, as in the shell.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	if !cmd.Args().Present() {
		return fmt.Errorf("%w: search query", shared.ErrMissingArgument)
	}
	query := cmd.Args().First()

	data, err := os.ReadFile(r.config.Store.Path)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrIO, err)
	}

	rows, err := search.Search(query, string(data), r.config.Store.Header, r.output)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		r.logger.Info("no contacts match", "query", query)
	}
	return nil
}
