package store

import (
	"context"
	"database/sql"
	"fmt"
)

// execer is the part of *sql.DB and *sql.Tx the record writers use.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// nextID advances the named sequence inside tx and returns its new value. A
// sequence that has never been used starts at 1. The increment is undone
// with the rest of tx when it rolls back.
func nextID(ctx context.Context, tx *sql.Tx, name string) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx,
		`INSERT INTO sequences (name, value) VALUES (?, 1)
		 ON CONFLICT (name) DO UPDATE SET value = value + 1
		 RETURNING value`, name,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("advancing sequence %s: %w", name, err)
	}
	return id, nil
}

// insertNext allocates the next id of the named sequence and runs insert
// with it, committing both or neither.
func insertNext(ctx context.Context, db *sql.DB, sequence string, insert func(tx *sql.Tx, id int64) error) (int64, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	id, err := nextID(ctx, tx, sequence)
	if err != nil {
		return 0, err
	}
	if err := insert(tx, id); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}
	return id, nil
}
