package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"google.golang.org/genai"

	"github.com/rescuelink/rescuelink/internal/model"
)

// DefaultModel is the model consulted when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Gemini is the Client backed by the Gemini API. All failures are absorbed
// into error envelopes; neither method ever returns an error.
type Gemini struct {
	apiKey    string
	modelName string

	initOnce sync.Once
	client   *genai.Client
	initErr  error

	// generate is swapped out in tests to simulate transport failures.
	generate func(ctx context.Context, payload any, schema *genai.Schema) ([]byte, error)
}

// NewGemini creates a Gemini-backed oracle client. The underlying API client
// is created lazily on first use so construction cannot fail.
func NewGemini(apiKey, modelName string) *Gemini {
	if modelName == "" {
		modelName = DefaultModel
	}
	g := &Gemini{apiKey: apiKey, modelName: modelName}
	g.generate = g.generateContent
	return g
}

func (g *Gemini) init(ctx context.Context) error {
	g.initOnce.Do(func() {
		g.client, g.initErr = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  g.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
	})
	return g.initErr
}

// generateContent submits the JSON payload with the RescueLink system
// instruction and a strict response schema, returning the raw JSON reply.
func (g *Gemini) generateContent(ctx context.Context, payload any, schema *genai.Schema) ([]byte, error) {
	if err := g.init(ctx); err != nil {
		return nil, fmt.Errorf("creating oracle client: %w", err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding oracle request: %w", err)
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(string(body)), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    schema,
	})
	if err != nil {
		return nil, fmt.Errorf("generating content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, errors.New("empty oracle response")
	}
	return []byte(text), nil
}

// PredictSurplus implements Client.
func (g *Gemini) PredictSurplus(ctx context.Context, donorID, itemName string, quantityKg float64, category model.FoodCategory, expiry time.Time) model.AIPredictionResult {
	req := requestEnvelope{
		TaskRequest: model.TaskPredictSurplus,
		InputData: inputData{
			DonorID: donorID,
			Inventory: []inventoryItem{{
				ItemName:   itemName,
				Quantity:   quantityKg,
				Unit:       "kg",
				Category:   category,
				ExpiryDate: expiry.Format(time.RFC3339),
			}},
			CurrentTime: time.Now().UTC().Format(time.RFC3339),
		},
	}

	raw, err := g.generate(ctx, req, predictionSchema())
	if err != nil {
		slog.Error("prediction oracle call failed", "item", itemName, "error", err)
		return errorPrediction()
	}

	result, err := decodePrediction(raw)
	if err != nil {
		slog.Error("prediction oracle returned invalid payload", "item", itemName, "error", err)
		return errorPrediction()
	}
	return *result
}

// MatchRecipients implements Client.
func (g *Gemini) MatchRecipients(ctx context.Context, donation model.DonationItem, pool []model.Recipient) model.MatchResult {
	req := requestEnvelope{
		TaskRequest: model.TaskMatchRecipients,
		InputData: inputData{
			DonorID:        donation.DonorID,
			AvailableItems: []model.DonationItem{donation},
			RecipientsPool: pool,
			CurrentTime:    time.Now().UTC().Format(time.RFC3339),
		},
	}

	raw, err := g.generate(ctx, req, matchSchema())
	if err != nil {
		slog.Error("matching oracle call failed", "donation", donation.ID, "error", err)
		return errorMatch()
	}

	result, err := decodeMatch(raw)
	if err != nil {
		slog.Error("matching oracle returned invalid payload", "donation", donation.ID, "error", err)
		return errorMatch()
	}
	return *result
}

// errorPrediction is the fixed envelope returned when the prediction oracle
// is unreachable or misbehaves. Callers branch on task == "error".
func errorPrediction() model.AIPredictionResult {
	return model.AIPredictionResult{
		Task:           model.TaskError,
		Version:        "0.0",
		Confidence:     0,
		RequiredFields: []string{},
		DonorID:        "unknown",
		TimeGenerated:  time.Now().UTC().Format(time.RFC3339),
		Predictions:    []model.SurplusItemPrediction{},
		Summary:        model.PredictionSummary{TopRecommendations: []string{}},
		Notes:          []string{"Failed to reach the intelligence oracle."},
	}
}

// errorMatch is the fixed envelope for matching oracle failures.
func errorMatch() model.MatchResult {
	return model.MatchResult{
		Task:            model.TaskError,
		Version:         "0.0",
		Confidence:      0,
		RequiredFields:  []string{},
		DonorID:         "unknown",
		TimeGenerated:   time.Now().UTC().Format(time.RFC3339),
		Matches:         []model.ItemMatch{},
		FallbackOptions: []string{},
		Notes:           []string{"Failed to reach the intelligence oracle."},
	}
}
