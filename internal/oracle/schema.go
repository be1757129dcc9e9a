package oracle

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/rescuelink/rescuelink/internal/model"
)

// Response schemas passed to the oracle so it answers in exactly the
// envelope shapes the rest of the system expects.

func stringArray() *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}}
}

func timeWindowSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"start": {Type: genai.TypeString},
			"end":   {Type: genai.TypeString},
		},
	}
}

func envelopeProperties() map[string]*genai.Schema {
	return map[string]*genai.Schema{
		"task":            {Type: genai.TypeString},
		"version":         {Type: genai.TypeString},
		"confidence":      {Type: genai.TypeNumber},
		"required_fields": stringArray(),
		"donor_id":        {Type: genai.TypeString},
		"time_generated":  {Type: genai.TypeString},
		"notes":           stringArray(),
	}
}

// predictionSchema describes the predict_surplus response.
func predictionSchema() *genai.Schema {
	props := envelopeProperties()
	props["predictions"] = &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"item_id":                     {Type: genai.TypeString},
				"item_name":                   {Type: genai.TypeString},
				"category":                    {Type: genai.TypeString},
				"quantity":                    {Type: genai.TypeNumber},
				"unit":                        {Type: genai.TypeString},
				"expiry_time":                 {Type: genai.TypeString, Nullable: genai.Ptr(true)},
				"surplus_probability":         {Type: genai.TypeNumber},
				"reason_codes":                stringArray(),
				"recommended_donation_window": timeWindowSchema(),
				"urgency_score":               {Type: genai.TypeInteger},
				"safety_flags":                stringArray(),
			},
		},
	}
	props["summary"] = &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"items_analyzed":                     {Type: genai.TypeInteger},
			"items_high_risk_waste":              {Type: genai.TypeInteger},
			"estimated_meals_rescued_if_donated": {Type: genai.TypeNumber},
			"top_recommendations":                stringArray(),
		},
	}
	return &genai.Schema{Type: genai.TypeObject, Properties: props}
}

// matchSchema describes the match_recipients response.
func matchSchema() *genai.Schema {
	props := envelopeProperties()
	props["matches"] = &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"item_id": {Type: genai.TypeString},
				"recommended_recipients": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"recipient_id":   {Type: genai.TypeString},
							"match_score":    {Type: genai.TypeInteger},
							"distance_km":    {Type: genai.TypeNumber},
							"eta_minutes":    {Type: genai.TypeInteger},
							"pickup_window":  timeWindowSchema(),
							"constraints":    stringArray(),
							"why_this_match": stringArray(),
						},
					},
				},
			},
		},
	}
	props["fallback_options"] = stringArray()
	return &genai.Schema{Type: genai.TypeObject, Properties: props}
}

// decodePrediction strictly deserializes and validates a prediction envelope.
// Any deviation from the contract is an error, handled by the caller as an
// oracle failure.
func decodePrediction(raw []byte) (*model.AIPredictionResult, error) {
	var result model.AIPredictionResult
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding prediction envelope: %w", err)
	}

	if err := validateEnvelope(result.Task, result.Confidence); err != nil {
		return nil, err
	}
	for i, p := range result.Predictions {
		if p.SurplusProbability < 0 || p.SurplusProbability > 1 {
			return nil, fmt.Errorf("prediction %d: surplus_probability %v outside [0,1]", i, p.SurplusProbability)
		}
		if p.UrgencyScore < 0 || p.UrgencyScore > 100 {
			return nil, fmt.Errorf("prediction %d: urgency_score %d outside [0,100]", i, p.UrgencyScore)
		}
		if err := validateWindow(p.RecommendedDonationWindow); err != nil {
			return nil, fmt.Errorf("prediction %d: %w", i, err)
		}
	}
	return &result, nil
}

// decodeMatch strictly deserializes and validates a match envelope.
func decodeMatch(raw []byte) (*model.MatchResult, error) {
	var result model.MatchResult
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding match envelope: %w", err)
	}

	if err := validateEnvelope(result.Task, result.Confidence); err != nil {
		return nil, err
	}
	for _, im := range result.Matches {
		for i, rm := range im.RecommendedRecipients {
			if rm.RecipientID == "" {
				return nil, fmt.Errorf("match %d: missing recipient_id", i)
			}
			if rm.MatchScore < 0 || rm.MatchScore > 100 {
				return nil, fmt.Errorf("match %d: match_score %d outside [0,100]", i, rm.MatchScore)
			}
			if rm.DistanceKm < 0 {
				return nil, fmt.Errorf("match %d: negative distance_km %v", i, rm.DistanceKm)
			}
			if rm.ETAMinutes < 0 {
				return nil, fmt.Errorf("match %d: negative eta_minutes %d", i, rm.ETAMinutes)
			}
			if err := validateWindow(rm.PickupWindow); err != nil {
				return nil, fmt.Errorf("match %d: %w", i, err)
			}
		}
	}
	return &result, nil
}

func validateEnvelope(task string, confidence float64) error {
	if task == "" {
		return fmt.Errorf("envelope missing task")
	}
	if confidence < 0 || confidence > 1 {
		return fmt.Errorf("confidence %v outside [0,1]", confidence)
	}
	return nil
}

func validateWindow(w model.TimeWindow) error {
	start, err := time.Parse(time.RFC3339, w.Start)
	if err != nil {
		return fmt.Errorf("invalid window start %q: %w", w.Start, err)
	}
	end, err := time.Parse(time.RFC3339, w.End)
	if err != nil {
		return fmt.Errorf("invalid window end %q: %w", w.End, err)
	}
	if end.Before(start) {
		return fmt.Errorf("window end %q before start %q", w.End, w.Start)
	}
	return nil
}
