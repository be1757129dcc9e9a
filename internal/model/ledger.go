package model

import "time"

// Ledger entry statuses.
const (
	LedgerVerified = "Verified"
	LedgerPending  = "Pending"
)

// LedgerEntry is one record in the transparency feed. Entries are
// hash-linked: each entry's PrevHash is the Hash of the entry before it
// (empty for the first entry). This is an audit feed, not a blockchain.
type LedgerEntry struct {
	ID         int64     `json:"id"`
	Hash       string    `json:"hash"`
	PrevHash   string    `json:"prev_hash"`
	Action     string    `json:"action"`
	Actor      string    `json:"actor"`
	Details    string    `json:"details"`
	Status     string    `json:"status"`
	RecordedAt time.Time `json:"recorded_at"`
}
