package oracle

import (
	"context"
	"time"

	"github.com/rescuelink/rescuelink/internal/model"
)

// Mock is the deterministic degraded-mode oracle used when no credential is
// configured. Given the same inputs (and pool ordering), it always produces
// the same scores, so tests and demos are reproducible.
type Mock struct{}

// NewMock creates the deterministic mock oracle.
func NewMock() *Mock { return &Mock{} }

// PredictSurplus implements Client with a fixed high-surplus assessment.
// An already-expired item surfaces as a safety flag rather than an error.
func (*Mock) PredictSurplus(_ context.Context, donorID, itemName string, quantityKg float64, category model.FoodCategory, expiry time.Time) model.AIPredictionResult {
	now := time.Now().UTC()
	expiryStr := expiry.Format(time.RFC3339)

	safetyFlags := []string{}
	if expiry.Before(now) {
		safetyFlags = append(safetyFlags, "EXPIRED_RISK")
	}

	return model.AIPredictionResult{
		Task:           model.TaskPredictSurplus,
		Version:        "1.0",
		Confidence:     0.95,
		RequiredFields: []string{},
		DonorID:        donorID,
		TimeGenerated:  now.Format(time.RFC3339),
		Predictions: []model.SurplusItemPrediction{{
			ItemID:             "mock_item_1",
			ItemName:           itemName,
			Category:           string(category),
			Quantity:           quantityKg,
			Unit:               "kg",
			ExpiryTime:         &expiryStr,
			SurplusProbability: 0.9,
			ReasonCodes:        []string{"MOCK_DATA", "EXPIRY_SOON"},
			RecommendedDonationWindow: model.TimeWindow{
				Start: now.Format(time.RFC3339),
				End:   now.Add(24 * time.Hour).Format(time.RFC3339),
			},
			UrgencyScore: 85,
			SafetyFlags:  safetyFlags,
		}},
		Summary: model.PredictionSummary{
			ItemsAnalyzed:         1,
			ItemsHighRiskWaste:    1,
			EstimatedMealsRescued: quantityKg * 2,
			TopRecommendations:    []string{"Dispatch immediately"},
		},
		Notes: []string{"Mock response: no oracle credential configured"},
	}
}

// MatchRecipients implements Client: the first two pool entries, in the
// order given, with descending scores and ascending distance/ETA.
func (*Mock) MatchRecipients(_ context.Context, donation model.DonationItem, pool []model.Recipient) model.MatchResult {
	now := time.Now().UTC()

	n := len(pool)
	if n > 2 {
		n = 2
	}
	recommended := make([]model.RecipientMatch, 0, n)
	for i, r := range pool[:n] {
		recommended = append(recommended, model.RecipientMatch{
			RecipientID: r.ID,
			MatchScore:  95 - i*10,
			DistanceKm:  2.5 + float64(i)*1.5,
			ETAMinutes:  15 + i*10,
			PickupWindow: model.TimeWindow{
				Start: now.Format(time.RFC3339),
				End:   now.Add(time.Hour).Format(time.RFC3339),
			},
			Constraints:  []string{"NEEDS_REFRIGERATION"},
			WhyThisMatch: []string{"High demand for this category", "Within 5km radius"},
		})
	}

	return model.MatchResult{
		Task:           model.TaskMatchRecipients,
		Version:        "1.0",
		Confidence:     0.9,
		RequiredFields: []string{},
		DonorID:        donation.DonorID,
		TimeGenerated:  now.Format(time.RFC3339),
		Matches: []model.ItemMatch{{
			ItemID:                donation.ID,
			RecommendedRecipients: recommended,
		}},
		FallbackOptions: []string{"Compost", "Animal Feed"},
		Notes:           []string{"Mock response: no oracle credential configured"},
	}
}
