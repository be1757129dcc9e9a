// Package session owns the process-lifetime application state for a donor:
// submitted donations, their lifecycle statuses, impact stats, and the
// currently selected matching target. Nothing here is persisted; state is
// created at login and discarded when the process exits.
package session

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rescuelink/rescuelink/internal/match"
	"github.com/rescuelink/rescuelink/internal/model"
)

// Stats baseline shown on the dashboard before any donation lands.
var initialStats = model.ImpactStats{
	TotalMealsSaved:   12450,
	CO2ReducedKg:      8500,
	ActiveDonors:      42,
	CommunitiesServed: 18,
}

// ErrNotFound is returned for operations on an unknown donation id.
var ErrNotFound = errors.New("donation not found")

// Session is one donor's application state. All methods are safe for
// concurrent use from request handlers.
type Session struct {
	mu        sync.Mutex
	donorID   string
	donations []model.DonationItem
	stats     model.ImpactStats
	selected  string // donation id of the matching request in flight
	matches   map[string][]match.RankedMatch
}

// New creates a session for the given donor.
func New(donorID string) *Session {
	return &Session{
		donorID: donorID,
		stats:   initialStats,
		matches: make(map[string][]match.RankedMatch),
	}
}

// DonorID returns the owning donor's id.
func (s *Session) DonorID() string { return s.donorID }

// DonationInput are the fields a donor submits for a new donation.
type DonationInput struct {
	Name       string             `json:"name"`
	QuantityKg float64            `json:"quantity_kg"`
	Category   model.FoodCategory `json:"category"`
	ExpiryDate string             `json:"expiry_date"`
}

// SubmitDonation validates the input, registers a new Pending donation, and
// bumps the impact stats with the fixed linear approximation (2 meals and
// 2.5 kg CO2 per kg donated, kept independent of the oracle's own
// meal estimate). No oracle call happens here; prediction is a separate,
// explicit step.
func (s *Session) SubmitDonation(in DonationInput) (*model.DonationItem, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, errors.New("name is required")
	}
	if in.QuantityKg <= 0 {
		return nil, errors.New("quantity must be positive")
	}
	if !model.ValidCategory(in.Category) {
		return nil, fmt.Errorf("unknown category %q", in.Category)
	}
	expiry, err := time.Parse(time.RFC3339, in.ExpiryDate)
	if err != nil {
		return nil, fmt.Errorf("invalid expiry date: %w", err)
	}

	d := model.DonationItem{
		ID:         "donation_" + uuid.NewString(),
		DonorID:    s.donorID,
		Name:       in.Name,
		QuantityKg: in.QuantityKg,
		Category:   in.Category,
		ExpiryDate: expiry,
		Status:     model.StatusPending,
		CreatedAt:  time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.donations = append(s.donations, d)
	s.stats.TotalMealsSaved += int(math.Floor(in.QuantityKg * 2))
	s.stats.CO2ReducedKg += in.QuantityKg * 2.5

	out := d
	return &out, nil
}

// Donation returns a copy of the donation with the given id.
func (s *Session) Donation(id string) (model.DonationItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d := s.find(id); d != nil {
		return *d, true
	}
	return model.DonationItem{}, false
}

// AttachPrediction merges a prediction envelope onto the donation. The
// status is left untouched.
func (s *Session) AttachPrediction(id string, result model.AIPredictionResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.find(id)
	if d == nil {
		return ErrNotFound
	}
	d.Prediction = &result
	return nil
}

// ListPending returns the Pending donations, newest first, so fresh
// donations surface at the top of the matching queue.
func (s *Session) ListPending() []model.DonationItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := make([]model.DonationItem, 0, len(s.donations))
	for i := len(s.donations) - 1; i >= 0; i-- {
		if s.donations[i].Status == model.StatusPending {
			pending = append(pending, s.donations[i])
		}
	}
	return pending
}

// AdvanceStatus moves a donation one step forward in its lifecycle.
// Skipping steps and moving backwards are rejected.
func (s *Session) AdvanceStatus(id string, to model.DonationStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.find(id)
	if d == nil {
		return ErrNotFound
	}
	if !model.CanAdvance(d.Status, to) {
		return fmt.Errorf("cannot advance donation from %q to %q", d.Status, to)
	}
	d.Status = to
	return nil
}

// SetPhoto attaches processed photo data to a donation.
func (s *Session) SetPhoto(id string, data []byte, mime string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.find(id)
	if d == nil {
		return ErrNotFound
	}
	d.Photo = data
	d.PhotoMIME = mime
	return nil
}

// Photo returns a donation's photo data and MIME type.
func (s *Session) Photo(id string) ([]byte, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.find(id)
	if d == nil {
		return nil, "", ErrNotFound
	}
	return d.Photo, d.PhotoMIME, nil
}

// Stats returns the current impact stats.
func (s *Session) Stats() model.ImpactStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// BeginMatch marks the donation as the current matching target. Any stored
// matches for a previously selected donation stay cached, but a result
// completing for that donation after this call is discarded.
func (s *Session) BeginMatch(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = id
}

// CompleteMatch stores a finished ranking if the donation is still the
// selected target. It reports whether the result was kept: a result for a
// superseded selection is dropped so it cannot overwrite a newer one.
func (s *Session) CompleteMatch(id string, ranked []match.RankedMatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected != id {
		return false
	}
	s.matches[id] = ranked
	return true
}

// Matches returns the stored ranking for a donation, if any.
func (s *Session) Matches(id string) ([]match.RankedMatch, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ranked, ok := s.matches[id]
	return ranked, ok
}

// find returns a pointer into the donations slice. Callers hold s.mu.
func (s *Session) find(id string) *model.DonationItem {
	for i := range s.donations {
		if s.donations[i].ID == id {
			return &s.donations[i]
		}
	}
	return nil
}
