package match

import (
	"testing"

	"github.com/rescuelink/rescuelink/internal/model"
)

func matchResultFor(itemID string, recs ...model.RecipientMatch) model.MatchResult {
	return model.MatchResult{
		Task:    model.TaskMatchRecipients,
		Matches: []model.ItemMatch{{ItemID: itemID, RecommendedRecipients: recs}},
	}
}

func TestRank_SortsByScoreDescending(t *testing.T) {
	donation := model.DonationItem{ID: "d1"}
	result := matchResultFor("d1",
		model.RecipientMatch{RecipientID: "low", MatchScore: 70},
		model.RecipientMatch{RecipientID: "high", MatchScore: 95},
	)

	ranked := Rank(donation, result, nil)

	if len(ranked) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(ranked))
	}
	if ranked[0].RecipientID != "high" || ranked[1].RecipientID != "low" {
		t.Errorf("order = [%s, %s], want [high, low]", ranked[0].RecipientID, ranked[1].RecipientID)
	}
}

func TestRank_StableForEqualScores(t *testing.T) {
	donation := model.DonationItem{ID: "d1"}
	result := matchResultFor("d1",
		model.RecipientMatch{RecipientID: "first", MatchScore: 80},
		model.RecipientMatch{RecipientID: "second", MatchScore: 80},
		model.RecipientMatch{RecipientID: "third", MatchScore: 80},
	)

	ranked := Rank(donation, result, nil)

	// Equal scores must keep the oracle's order: the "Best Match" badge goes
	// to index 0 and must not flip between runs.
	want := []string{"first", "second", "third"}
	for i, id := range want {
		if ranked[i].RecipientID != id {
			t.Errorf("ranked[%d] = %s, want %s", i, ranked[i].RecipientID, id)
		}
	}
}

func TestRank_EnrichesWithRecipientRecords(t *testing.T) {
	donation := model.DonationItem{ID: "d1"}
	pool := []model.Recipient{
		{ID: "rec_1", Name: "Downtown Shelter"},
		{ID: "rec_2", Name: "Community Food Bank"},
	}
	result := matchResultFor("d1",
		model.RecipientMatch{RecipientID: "rec_2", MatchScore: 90},
		model.RecipientMatch{RecipientID: "rec_ghost", MatchScore: 85},
	)

	ranked := Rank(donation, result, pool)

	if ranked[0].Recipient == nil || ranked[0].Recipient.Name != "Community Food Bank" {
		t.Errorf("expected enriched recipient record, got %+v", ranked[0].Recipient)
	}
	// Unknown id resolves to a nil recipient, not an error.
	if ranked[1].Recipient != nil {
		t.Errorf("expected nil recipient for unknown id, got %+v", ranked[1].Recipient)
	}
}

func TestRank_FallsBackToFirstItemMatch(t *testing.T) {
	donation := model.DonationItem{ID: "d1"}
	result := model.MatchResult{
		Matches: []model.ItemMatch{
			{ItemID: "something_else", RecommendedRecipients: []model.RecipientMatch{
				{RecipientID: "rec_1", MatchScore: 88},
			}},
		},
	}

	ranked := Rank(donation, result, nil)

	if len(ranked) != 1 || ranked[0].RecipientID != "rec_1" {
		t.Errorf("expected fallback to first item match, got %+v", ranked)
	}
}

func TestRank_PrefersExactIDOverFirst(t *testing.T) {
	donation := model.DonationItem{ID: "d2"}
	result := model.MatchResult{
		Matches: []model.ItemMatch{
			{ItemID: "d1", RecommendedRecipients: []model.RecipientMatch{{RecipientID: "wrong"}}},
			{ItemID: "d2", RecommendedRecipients: []model.RecipientMatch{{RecipientID: "right"}}},
		},
	}

	ranked := Rank(donation, result, nil)

	if len(ranked) != 1 || ranked[0].RecipientID != "right" {
		t.Errorf("expected the item match with the donation's id, got %+v", ranked)
	}
}

func TestRank_NoMatchesYieldsEmpty(t *testing.T) {
	donation := model.DonationItem{ID: "d1"}
	ranked := Rank(donation, model.MatchResult{}, nil)
	if len(ranked) != 0 {
		t.Errorf("expected empty recommendation set, got %d entries", len(ranked))
	}
}
