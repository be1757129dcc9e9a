package store

import (
	"context"
	"testing"

	"github.com/rescuelink/rescuelink/internal/db"
	"github.com/rescuelink/rescuelink/internal/model"
)

func TestAppendAndListLedgerEntries(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	first, err := AppendLedgerEntry(ctx, database, model.LedgerEntry{
		Hash:    "0xaaaa",
		Action:  "DONATION_POSTED",
		Actor:   "0xDonorWallet",
		Details: "Posted 20kg Tomatoes",
		Status:  model.LedgerVerified,
	})
	if err != nil {
		t.Fatalf("AppendLedgerEntry: %v", err)
	}
	if first.ID == 0 {
		t.Error("expected assigned id")
	}
	if first.PrevHash != "" {
		t.Errorf("expected empty prev_hash for first entry, got %q", first.PrevHash)
	}

	AppendLedgerEntry(ctx, database, model.LedgerEntry{
		Hash: "0xbbbb", PrevHash: "0xaaaa",
		Action: "MATCH_RECOMMENDED", Actor: "matcher", Details: "x",
		Status: model.LedgerVerified,
	})

	entries, err := ListLedgerEntries(ctx, database, 10)
	if err != nil {
		t.Fatalf("ListLedgerEntries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Hash != "0xbbbb" {
		t.Errorf("expected newest entry first, got %q", entries[0].Hash)
	}

	limited, _ := ListLedgerEntries(ctx, database, 1)
	if len(limited) != 1 {
		t.Errorf("expected limit to apply, got %d entries", len(limited))
	}
}

func TestLatestLedgerHash(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	hash, err := LatestLedgerHash(ctx, database)
	if err != nil {
		t.Fatalf("LatestLedgerHash: %v", err)
	}
	if hash != "" {
		t.Errorf("expected empty hash for empty ledger, got %q", hash)
	}

	AppendLedgerEntry(ctx, database, model.LedgerEntry{
		Hash: "0xcccc", Action: "A", Actor: "B", Details: "C", Status: model.LedgerVerified,
	})

	hash, err = LatestLedgerHash(ctx, database)
	if err != nil {
		t.Fatalf("LatestLedgerHash: %v", err)
	}
	if hash != "0xcccc" {
		t.Errorf("expected latest hash 0xcccc, got %q", hash)
	}
}
