// Package ledger maintains the transparency feed: a hash-linked record of
// food rescue operations. It simulates the auditability of a chain without
// being one: entries are rows in SQLite, linked by blake2b digests.
package ledger

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/rescuelink/rescuelink/internal/model"
	"github.com/rescuelink/rescuelink/internal/store"
)

// Well-known feed actions.
const (
	ActionDonationPosted   = "DONATION_POSTED"
	ActionMatchRecommended = "MATCH_RECOMMENDED"
	ActionStatusAdvanced   = "LOGISTICS_UPDATE"
)

// Recorder appends entries to the feed.
type Recorder struct {
	DB *sql.DB
}

// Record appends a Verified entry whose hash covers the previous entry's
// hash plus the new fields, so tampering with any stored row breaks the
// chain from that point on.
func (r *Recorder) Record(ctx context.Context, action, actor, details string) (*model.LedgerEntry, error) {
	prev, err := store.LatestLedgerHash(ctx, r.DB)
	if err != nil {
		return nil, fmt.Errorf("reading chain head: %w", err)
	}

	entry := model.LedgerEntry{
		Hash:     entryHash(prev, action, actor, details, time.Now().UTC()),
		PrevHash: prev,
		Action:   action,
		Actor:    actor,
		Details:  details,
		Status:   model.LedgerVerified,
	}

	stored, err := store.AppendLedgerEntry(ctx, r.DB, entry)
	if err != nil {
		return nil, err
	}
	return stored, nil
}

// Recent returns the newest entries, most recent first.
func (r *Recorder) Recent(ctx context.Context, limit int) ([]model.LedgerEntry, error) {
	return store.ListLedgerEntries(ctx, r.DB, limit)
}

// entryHash derives a 0x-prefixed blake2b-256 digest over the previous hash
// and the entry fields.
func entryHash(prev, action, actor, details string, ts time.Time) string {
	sum := blake2b.Sum256([]byte(prev + "|" + action + "|" + actor + "|" + details + "|" + ts.Format(time.RFC3339Nano)))
	return "0x" + hex.EncodeToString(sum[:])
}
