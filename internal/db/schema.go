package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. Donations themselves live in session
// memory; the database holds the recipient directory and the ledger feed.
const schema = `
CREATE TABLE IF NOT EXISTS recipients (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    type        TEXT NOT NULL CHECK (type IN ('NGO', 'Shelter', 'Food Bank')),
    needs       TEXT NOT NULL DEFAULT '[]',
    capacity_kg REAL NOT NULL CHECK (capacity_kg > 0),
    location    TEXT NOT NULL,
    created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS ledger (
    id          INTEGER PRIMARY KEY,
    hash        TEXT NOT NULL,
    prev_hash   TEXT NOT NULL DEFAULT '',
    action      TEXT NOT NULL,
    actor       TEXT NOT NULL,
    details     TEXT NOT NULL,
    status      TEXT NOT NULL DEFAULT 'Verified' CHECK (status IN ('Verified', 'Pending')),
    recorded_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_ledger_recorded_at ON ledger(recorded_at);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
