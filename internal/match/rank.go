// Package match turns a raw oracle MatchResult into a presentation-ready,
// locally enriched, ranked recommendation list for one donation.
package match

import (
	"sort"

	"github.com/rescuelink/rescuelink/internal/model"
)

// RankedMatch pairs an oracle recommendation with the locally known
// recipient record. Recipient is nil when the oracle referenced an id the
// directory does not know; presentation shows those as "Unknown Recipient".
type RankedMatch struct {
	model.RecipientMatch
	Recipient *model.Recipient `json:"recipient"`
}

// Rank selects the donation's ItemMatch from the result, enriches each
// recommendation with the recipient record from the pool, and sorts by
// match score descending. The sort is stable: recommendations with equal
// scores keep the oracle's relative order, so the top entry after sorting
// is the one the "Best Match" badge lands on.
//
// An empty return value means "no suitable matches", which callers must
// keep distinct from "still loading".
func Rank(donation model.DonationItem, result model.MatchResult, pool []model.Recipient) []RankedMatch {
	var item *model.ItemMatch
	for i := range result.Matches {
		if result.Matches[i].ItemID == donation.ID {
			item = &result.Matches[i]
			break
		}
	}
	if item == nil && len(result.Matches) > 0 {
		// The oracle may echo a different id or collapse a batch; take the
		// first entry rather than dropping the result.
		item = &result.Matches[0]
	}
	if item == nil {
		return nil
	}

	byID := make(map[string]*model.Recipient, len(pool))
	for i := range pool {
		byID[pool[i].ID] = &pool[i]
	}

	ranked := make([]RankedMatch, 0, len(item.RecommendedRecipients))
	for _, rm := range item.RecommendedRecipients {
		ranked = append(ranked, RankedMatch{
			RecipientMatch: rm,
			Recipient:      byID[rm.RecipientID],
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchScore > ranked[j].MatchScore
	})
	return ranked
}
