package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rescuelink/rescuelink/internal/model"
)

// AppendLedgerEntry inserts a ledger entry and returns the stored row.
func AppendLedgerEntry(ctx context.Context, db *sql.DB, e model.LedgerEntry) (*model.LedgerEntry, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO ledger (hash, prev_hash, action, actor, details, status)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.Hash, e.PrevHash, e.Action, e.Actor, e.Details, e.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("appending ledger entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting ledger entry id: %w", err)
	}

	return GetLedgerEntry(ctx, db, id)
}

// GetLedgerEntry returns a ledger entry by ID, or nil if not found.
func GetLedgerEntry(ctx context.Context, db *sql.DB, id int64) (*model.LedgerEntry, error) {
	e := &model.LedgerEntry{}
	err := db.QueryRowContext(ctx,
		`SELECT id, hash, prev_hash, action, actor, details, status, recorded_at
		 FROM ledger WHERE id = ?`, id,
	).Scan(&e.ID, &e.Hash, &e.PrevHash, &e.Action, &e.Actor, &e.Details, &e.Status, &e.RecordedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting ledger entry: %w", err)
	}
	return e, nil
}

// LatestLedgerHash returns the hash of the most recent ledger entry, or the
// empty string when the ledger is empty.
func LatestLedgerHash(ctx context.Context, db *sql.DB) (string, error) {
	var hash string
	err := db.QueryRowContext(ctx,
		`SELECT hash FROM ledger ORDER BY id DESC LIMIT 1`,
	).Scan(&hash)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("getting latest ledger hash: %w", err)
	}
	return hash, nil
}

// ListLedgerEntries returns the most recent entries, newest first.
// A limit of 0 returns everything.
func ListLedgerEntries(ctx context.Context, db *sql.DB, limit int) ([]model.LedgerEntry, error) {
	query := `SELECT id, hash, prev_hash, action, actor, details, status, recorded_at
	          FROM ledger ORDER BY id DESC`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = db.QueryContext(ctx, query+` LIMIT ?`, limit)
	} else {
		rows, err = db.QueryContext(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("listing ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []model.LedgerEntry
	for rows.Next() {
		var e model.LedgerEntry
		if err := rows.Scan(&e.ID, &e.Hash, &e.PrevHash, &e.Action, &e.Actor, &e.Details, &e.Status, &e.RecordedAt); err != nil {
			return nil, fmt.Errorf("scanning ledger entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
