package ledger

import (
	"context"
	"strings"
	"testing"

	"github.com/rescuelink/rescuelink/internal/db"
	"github.com/rescuelink/rescuelink/internal/model"
)

func TestRecordChainsEntries(t *testing.T) {
	database := db.NewTestDB(t)
	r := &Recorder{DB: database}
	ctx := context.Background()

	first, err := r.Record(ctx, ActionDonationPosted, "0xWallet", "Posted 20kg Tomatoes (Produce)")
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if first.PrevHash != "" {
		t.Errorf("first entry prev_hash = %q, want empty", first.PrevHash)
	}
	if !strings.HasPrefix(first.Hash, "0x") || len(first.Hash) != 66 {
		t.Errorf("unexpected hash format: %q", first.Hash)
	}
	if first.Status != model.LedgerVerified {
		t.Errorf("status = %q, want Verified", first.Status)
	}

	second, err := r.Record(ctx, ActionMatchRecommended, "RescueLink_Matcher", "2 recipients recommended")
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if second.PrevHash != first.Hash {
		t.Errorf("chain broken: prev_hash = %q, want %q", second.PrevHash, first.Hash)
	}
	if second.Hash == first.Hash {
		t.Error("consecutive entries must not share a hash")
	}
}

func TestRecentReturnsNewestFirst(t *testing.T) {
	database := db.NewTestDB(t)
	r := &Recorder{DB: database}
	ctx := context.Background()

	r.Record(ctx, ActionDonationPosted, "a", "one")
	r.Record(ctx, ActionDonationPosted, "a", "two")
	r.Record(ctx, ActionDonationPosted, "a", "three")

	entries, err := r.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Details != "three" || entries[1].Details != "two" {
		t.Errorf("order = [%s, %s], want [three, two]", entries[0].Details, entries[1].Details)
	}
}
