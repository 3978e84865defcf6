package main

import (
	"context"
	"database/sql"
	"fmt"
	"text/tabwriter"

	"github.com/desertthunder/contacts/internal/formatter"
	"github.com/desertthunder/contacts/internal/repositories"
	"github.com/desertthunder/contacts/internal/shared"
	"github.com/urfave/cli/v3"
)

// snapshotDatabase opens the database named by --database, falling back to database.path.
func (r *Runner) snapshotDatabase(ctx context.Context, cmd *cli.Command) (*sql.DB, error) {
	path := cmd.String("database")
	if path == "" {
		path = r.config.Database.Path
	}
	r.logger.Debug("opening snapshot database", "path", path)
	return r.openDatabase(ctx, path)
}

func snapshotID(cmd *cli.Command) (string, error) {
	id := cmd.Args().First()
	if id == "" {
		return "", fmt.Errorf("%w: snapshot id", shared.ErrMissingArgument)
	}
	return id, nil
}

// ListSnapshots prints every stored snapshot, newest first.
func (r *Runner) ListSnapshots(ctx context.Context, cmd *cli.Command) error {
	db, err := r.snapshotDatabase(ctx, cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	snapshots, err := repositories.NewSnapshotRepository(db).List(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		if snapshots == nil {
			snapshots = []*repositories.Snapshot{}
		}
		return r.writeJSON(snapshots, true)
	}

	if len(snapshots) == 0 {
		return r.writePlain("No snapshots.\n")
	}

	tw := tabwriter.NewWriter(r.output, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tCONTACTS\tSKIPPED\tSOURCE")
	for _, s := range snapshots {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", s.ID, s.CreatedAt.Local().Format("2006-01-02 15:04:05"), s.RecordCount, s.SkippedCount, s.Source)
	}
	return tw.Flush()
}

// ShowSnapshot prints the contacts captured by one snapshot.
func (r *Runner) ShowSnapshot(ctx context.Context, cmd *cli.Command) error {
	id, err := snapshotID(cmd)
	if err != nil {
		return err
	}

	db, err := r.snapshotDatabase(ctx, cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repositories.NewSnapshotRepository(db)
	snapshot, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}

	contacts, err := repo.Contacts(ctx, snapshot.ID)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(contacts, true)
	}

	if err := r.writePlain("Snapshot %s of %s (%d contacts, %d skipped)\n\n",
		snapshot.ID, snapshot.Source, snapshot.RecordCount, snapshot.SkippedCount); err != nil {
		return err
	}
	return formatter.WriteTable(r.output, contacts)
}

// DeleteSnapshot removes one snapshot and its contacts.
func (r *Runner) DeleteSnapshot(ctx context.Context, cmd *cli.Command) error {
	id, err := snapshotID(cmd)
	if err != nil {
		return err
	}

	db, err := r.snapshotDatabase(ctx, cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repositories.NewSnapshotRepository(db).Delete(ctx, id); err != nil {
		return err
	}

	r.logger.Info("snapshot deleted", "id", id)
	return r.writePlain("✓ Deleted snapshot %s\n", id)
}
