package model

// RecipientMatch is one recommended donation-to-recipient pairing.
type RecipientMatch struct {
	RecipientID  string     `json:"recipient_id"`
	MatchScore   int        `json:"match_score"`
	DistanceKm   float64    `json:"distance_km"`
	ETAMinutes   int        `json:"eta_minutes"`
	PickupWindow TimeWindow `json:"pickup_window"`
	Constraints  []string   `json:"constraints"`
	WhyThisMatch []string   `json:"why_this_match"`
}

// ItemMatch groups recommended recipients under one donation item.
// The oracle orders RecommendedRecipients by its own preference; the
// orchestrator re-sorts by score before presentation.
type ItemMatch struct {
	ItemID                string           `json:"item_id"`
	RecommendedRecipients []RecipientMatch `json:"recommended_recipients"`
}

// MatchResult is the matching oracle's response envelope.
// FallbackOptions lists disposal alternatives (compost, animal feed) for
// when no recipient match is viable.
type MatchResult struct {
	Task            string      `json:"task"`
	Version         string      `json:"version"`
	Confidence      float64     `json:"confidence"`
	RequiredFields  []string    `json:"required_fields"`
	DonorID         string      `json:"donor_id"`
	TimeGenerated   string      `json:"time_generated"`
	Matches         []ItemMatch `json:"matches"`
	FallbackOptions []string    `json:"fallback_options"`
	Notes           []string    `json:"notes"`
}

// IsError reports whether the envelope is an oracle failure.
func (r MatchResult) IsError() bool { return r.Task == TaskError }
