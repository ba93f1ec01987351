package model

import "time"

// JournalEntry records one successful mutation of a registry record.
type JournalEntry struct {
	ID       int64     `json:"id"`
	Kind     string    `json:"kind"`
	RecordID int64     `json:"record_id"`
	Action   string    `json:"action"`
	Actor    string    `json:"actor"`
	At       time.Time `json:"at"`
}
