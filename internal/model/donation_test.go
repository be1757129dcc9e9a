package model

import "testing"

func TestCanAdvance(t *testing.T) {
	tests := []struct {
		from, to DonationStatus
		want     bool
	}{
		{StatusPending, StatusMatched, true},
		{StatusMatched, StatusInTransit, true},
		{StatusInTransit, StatusDelivered, true},
		{StatusPending, StatusInTransit, false},  // no skipping
		{StatusPending, StatusDelivered, false},  // no skipping
		{StatusMatched, StatusPending, false},    // no reversing
		{StatusDelivered, StatusInTransit, false},
		{StatusDelivered, StatusDelivered, false}, // terminal
		{StatusPending, StatusPending, false},
	}

	for _, tt := range tests {
		if got := CanAdvance(tt.from, tt.to); got != tt.want {
			t.Errorf("CanAdvance(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range Categories {
		if !ValidCategory(c) {
			t.Errorf("expected %q to be valid", c)
		}
	}
	if ValidCategory("Frozen") {
		t.Error("expected unknown category to be invalid")
	}
	if ValidCategory("") {
		t.Error("expected empty category to be invalid")
	}
}

func TestRecipientAccepts(t *testing.T) {
	r := Recipient{
		ID:    "rec_1",
		Needs: []FoodCategory{CategoryProduce, CategoryCanned},
	}
	if !r.Accepts(CategoryProduce) {
		t.Error("expected recipient to accept Produce")
	}
	if r.Accepts(CategoryDairy) {
		t.Error("expected recipient to reject Dairy")
	}
}
