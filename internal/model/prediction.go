package model

// Oracle task names. Every oracle envelope carries one of these (or an
// arbitrary task echoed by the backend); TaskError marks the fixed envelope
// a client returns when the oracle failed.
const (
	TaskPredictSurplus  = "predict_surplus"
	TaskMatchRecipients = "match_recipients"
	TaskError           = "error"
)

// TimeWindow is a start/end pair of RFC 3339 timestamps with start ≤ end.
type TimeWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SurplusItemPrediction is the oracle's per-item surplus assessment.
// A nil ExpiryTime signals uncertain expiry; non-empty SafetyFlags signal a
// concern that requires human confirmation before redistribution.
type SurplusItemPrediction struct {
	ItemID                    string     `json:"item_id"`
	ItemName                  string     `json:"item_name"`
	Category                  string     `json:"category"`
	Quantity                  float64    `json:"quantity"`
	Unit                      string     `json:"unit"`
	ExpiryTime                *string    `json:"expiry_time"`
	SurplusProbability        float64    `json:"surplus_probability"`
	ReasonCodes               []string   `json:"reason_codes"`
	RecommendedDonationWindow TimeWindow `json:"recommended_donation_window"`
	UrgencyScore              int        `json:"urgency_score"`
	SafetyFlags               []string   `json:"safety_flags"`
}

// PredictionSummary aggregates a prediction run.
type PredictionSummary struct {
	ItemsAnalyzed         int      `json:"items_analyzed"`
	ItemsHighRiskWaste    int      `json:"items_high_risk_waste"`
	EstimatedMealsRescued float64  `json:"estimated_meals_rescued_if_donated"`
	TopRecommendations    []string `json:"top_recommendations"`
}

// AIPredictionResult is the prediction oracle's response envelope.
// RequiredFields is non-empty only when the input was insufficient, in which
// case the caller must re-prompt for those fields before trusting the rest.
type AIPredictionResult struct {
	Task           string                  `json:"task"`
	Version        string                  `json:"version"`
	Confidence     float64                 `json:"confidence"`
	RequiredFields []string                `json:"required_fields"`
	DonorID        string                  `json:"donor_id"`
	TimeGenerated  string                  `json:"time_generated"`
	Predictions    []SurplusItemPrediction `json:"predictions"`
	Summary        PredictionSummary       `json:"summary"`
	Notes          []string                `json:"notes"`
}

// IsError reports whether the envelope is an oracle failure.
func (r AIPredictionResult) IsError() bool { return r.Task == TaskError }
