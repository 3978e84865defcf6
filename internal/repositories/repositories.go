// package repositories provides persistence layer implementations for contact snapshots.
package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/desertthunder/contacts/internal/models"
	"github.com/desertthunder/contacts/internal/shared"
)

var ErrSnapshotNotFound = errors.New("snapshot not found")

// Snapshot is one export of the contacts file into the database.
type Snapshot struct {
	ID           string    `json:"id"`
	Source       string    `json:"source"`
	RecordCount  int       `json:"record_count"`
	SkippedCount int       `json:"skipped_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// SnapshotRepository stores [Snapshot] rows and the contacts captured with them.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new [SnapshotRepository] with the given database connection
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Create writes a new snapshot of contacts in one transaction and returns it with a generated ID.
func (r *SnapshotRepository) Create(ctx context.Context, source string, contacts []models.Contact, skipped int) (*Snapshot, error) {
	snapshot := &Snapshot{
		ID:           shared.GenerateID(),
		Source:       source,
		RecordCount:  len(contacts),
		SkippedCount: skipped,
		CreatedAt:    time.Now().UTC(),
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO snapshots (id, source, record_count, skipped_count, created_at) VALUES (?, ?, ?, ?, ?)`,
		snapshot.ID, snapshot.Source, snapshot.RecordCount, snapshot.SkippedCount, snapshot.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert snapshot: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO snapshot_contacts (snapshot_id, position, contact_id, name, email) VALUES (?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare contact insert: %w", err)
	}
	defer stmt.Close()

	for i, c := range contacts {
		// ids above MaxInt64 do not fit an SQLite INTEGER; store the bit pattern
		if _, err := stmt.ExecContext(ctx, snapshot.ID, i, int64(c.ID), c.Name, c.Email); err != nil {
			return nil, fmt.Errorf("failed to insert contact %d: %w", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit snapshot: %w", err)
	}

	return snapshot, nil
}

// Get retrieves a snapshot by ID
func (r *SnapshotRepository) Get(ctx context.Context, id string) (*Snapshot, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, source, record_count, skipped_count, created_at FROM snapshots WHERE id = ?`, id,
	)

	snapshot, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot: %w", err)
	}
	return snapshot, nil
}

// Contacts returns the contacts captured by a snapshot, in file order
func (r *SnapshotRepository) Contacts(ctx context.Context, id string) ([]models.Contact, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT contact_id, name, email FROM snapshot_contacts WHERE snapshot_id = ? ORDER BY position ASC`, id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	contacts := []models.Contact{}
	for rows.Next() {
		var (
			contactID int64
			c         models.Contact
		)
		if err := rows.Scan(&contactID, &c.Name, &c.Email); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		c.ID = uint64(contactID)
		contacts = append(contacts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return contacts, nil
}

// List retrieves all snapshots, newest first
func (r *SnapshotRepository) List(ctx context.Context) ([]*Snapshot, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, source, record_count, skipped_count, created_at FROM snapshots ORDER BY created_at DESC, rowid DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []*Snapshot
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return snapshots, nil
}

// Delete removes a snapshot and, through the foreign key cascade, its contacts
func (r *SnapshotRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM snapshots WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrSnapshotNotFound, id)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(s scanner) (*Snapshot, error) {
	var snapshot Snapshot
	if err := s.Scan(&snapshot.ID, &snapshot.Source, &snapshot.RecordCount, &snapshot.SkippedCount, &snapshot.CreatedAt); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
