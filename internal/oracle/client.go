// Package oracle talks to the external intelligence service that assesses
// surplus risk and recommends donation-to-recipient matches.
//
// Clients are total functions: every call returns a well-formed envelope.
// Transport failures, malformed payloads, and schema violations are converted
// into an envelope with task "error" and confidence 0 at the client boundary,
// so callers branch on the envelope instead of handling errors.
package oracle

import (
	"context"
	"log/slog"
	"time"

	"github.com/rescuelink/rescuelink/internal/model"
)

// Client is the intelligence oracle consulted for prediction and matching.
// Any backend that honors the envelope contract can implement it: a rule
// engine, a local model, or a remote API.
type Client interface {
	// PredictSurplus assesses one inventory item for surplus risk and
	// urgency. An expiry in the past is valid input (a likely-expired item)
	// and surfaces as a safety flag, not a rejection.
	PredictSurplus(ctx context.Context, donorID, itemName string, quantityKg float64, category model.FoodCategory, expiry time.Time) model.AIPredictionResult

	// MatchRecipients recommends ranked recipients for one donation from the
	// given candidate pool. An empty pool yields empty matches with
	// fallback options populated.
	MatchRecipients(ctx context.Context, donation model.DonationItem, pool []model.Recipient) model.MatchResult
}

// New returns the Gemini-backed client when an API key is configured, and
// the deterministic mock otherwise. A missing key is not an error: it is
// the documented trigger for degraded mode.
func New(apiKey, modelName string) Client {
	if apiKey == "" {
		slog.Info("no oracle credential configured, using deterministic mock oracle")
		return NewMock()
	}
	return NewGemini(apiKey, modelName)
}
