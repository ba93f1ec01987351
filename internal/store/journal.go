package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/evidenca/internal/model"
	"github.com/erazemk/evidenca/internal/registry"
)

// AppendJournal records a mutation of a registry record.
func AppendJournal(ctx context.Context, db *sql.DB, kind string, recordID int64, action, actor string) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO journal (kind, record_id, action, actor) VALUES (?, ?, ?, ?)`,
		kind, recordID, action, actor,
	)
	if err != nil {
		return fmt.Errorf("appending journal entry: %w", err)
	}
	return nil
}

// GetRecordHistory returns the journal of one record, oldest first.
func GetRecordHistory(ctx context.Context, db *sql.DB, kind string, recordID int64) ([]model.JournalEntry, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, kind, record_id, action, actor, at
		 FROM journal
		 WHERE kind = ? AND record_id = ?
		 ORDER BY id`, kind, recordID,
	)
	if err != nil {
		return nil, fmt.Errorf("getting record history: %w", err)
	}
	defer rows.Close()

	var entries []model.JournalEntry
	for rows.Next() {
		var e model.JournalEntry
		if err := rows.Scan(&e.ID, &e.Kind, &e.RecordID, &e.Action, &e.Actor, &e.At); err != nil {
			return nil, fmt.Errorf("scanning journal entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Journal adapts the journal table to registry.Journal.
type Journal struct {
	DB *sql.DB
}

func (j Journal) Append(ctx context.Context, kind string, recordID int64, action registry.Action, actor string) error {
	return AppendJournal(ctx, j.DB, kind, recordID, string(action), actor)
}
