package api

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/rescuelink/rescuelink/internal/ledger"
	"github.com/rescuelink/rescuelink/internal/match"
	"github.com/rescuelink/rescuelink/internal/model"
	"github.com/rescuelink/rescuelink/internal/oracle"
	"github.com/rescuelink/rescuelink/internal/session"
	"github.com/rescuelink/rescuelink/internal/store"
)

// DonationsHandler drives the donation lifecycle: intake, prediction,
// matching, and status transitions.
type DonationsHandler struct {
	DB       *sql.DB
	Sessions *session.Manager
	Oracle   oracle.Client
	Ledger   *ledger.Recorder
}

// Create handles POST /api/donations. Validation failures are rejected with
// 422; submission never calls the oracle.
func (h *DonationsHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	var in session.DonationInput
	if err := decodeJSON(r, &in); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess := h.Sessions.Get(claims.DonorID)
	donation, err := sess.SubmitDonation(in)
	if err != nil {
		jsonError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	details := fmt.Sprintf("Posted %.1fkg %s (%s)", donation.QuantityKg, donation.Name, donation.Category)
	if _, err := h.Ledger.Record(r.Context(), ledger.ActionDonationPosted, claims.Wallet, details); err != nil {
		slog.Error("failed to record donation on ledger", "donation", donation.ID, "error", err)
	}

	jsonResponse(w, http.StatusCreated, donation)
}

// List handles GET /api/donations: the pending queue, newest first.
func (h *DonationsHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	sess := h.Sessions.Get(claims.DonorID)
	jsonResponse(w, http.StatusOK, sess.ListPending())
}

// Analyze handles POST /api/donations/{id}/analyze: runs the prediction
// oracle for the item and attaches the envelope to the donation. The oracle
// never fails from the caller's point of view; an error envelope comes back
// as data with task "error".
func (h *DonationsHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	sess := h.Sessions.Get(claims.DonorID)

	donation, ok := sess.Donation(r.PathValue("id"))
	if !ok {
		jsonError(w, http.StatusNotFound, "donation not found")
		return
	}

	result := h.Oracle.PredictSurplus(r.Context(), donation.DonorID, donation.Name,
		donation.QuantityKg, donation.Category, donation.ExpiryDate)

	if err := sess.AttachPrediction(donation.ID, result); err != nil {
		jsonError(w, http.StatusNotFound, "donation not found")
		return
	}

	jsonResponse(w, http.StatusOK, result)
}

// matchResponse is the presentation-ready matching result for one donation.
type matchResponse struct {
	Task            string              `json:"task"`
	Confidence      float64             `json:"confidence"`
	Matches         []match.RankedMatch `json:"matches"`
	FallbackOptions []string            `json:"fallback_options"`
	Notes           []string            `json:"notes"`
}

// Match handles POST /api/donations/{id}/match: consults the matching
// oracle against the recipient directory, enriches and ranks the result,
// and marks the donation Matched when recommendations came back. A
// superseding match request for another donation discards this one's
// stored result (the response still carries it for the caller that asked).
func (h *DonationsHandler) Match(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	sess := h.Sessions.Get(claims.DonorID)

	donation, ok := sess.Donation(r.PathValue("id"))
	if !ok {
		jsonError(w, http.StatusNotFound, "donation not found")
		return
	}

	pool, err := store.ListRecipients(r.Context(), h.DB)
	if err != nil {
		slog.Error("failed to list recipients", "error", err)
		jsonError(w, http.StatusInternalServerError, "recipient directory unavailable")
		return
	}

	sess.BeginMatch(donation.ID)
	result := h.Oracle.MatchRecipients(r.Context(), donation, pool)
	ranked := match.Rank(donation, result, pool)
	kept := sess.CompleteMatch(donation.ID, ranked)

	if kept && !result.IsError() && len(ranked) > 0 && donation.Status == model.StatusPending {
		if err := sess.AdvanceStatus(donation.ID, model.StatusMatched); err != nil {
			slog.Error("failed to advance donation status", "donation", donation.ID, "error", err)
		}
		details := fmt.Sprintf("%d recipients recommended for %s", len(ranked), donation.Name)
		if _, err := h.Ledger.Record(r.Context(), ledger.ActionMatchRecommended, "RescueLink_Matcher", details); err != nil {
			slog.Error("failed to record match on ledger", "donation", donation.ID, "error", err)
		}
	}

	jsonResponse(w, http.StatusOK, matchResponse{
		Task:            result.Task,
		Confidence:      result.Confidence,
		Matches:         ranked,
		FallbackOptions: result.FallbackOptions,
		Notes:           result.Notes,
	})
}

// UpdateStatus handles PUT /api/donations/{id}/status: one forward step.
func (h *DonationsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	sess := h.Sessions.Get(claims.DonorID)

	var req struct {
		Status model.DonationStatus `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id := r.PathValue("id")
	if err := sess.AdvanceStatus(id, req.Status); err != nil {
		if errors.Is(err, session.ErrNotFound) {
			jsonError(w, http.StatusNotFound, "donation not found")
			return
		}
		jsonError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	donation, _ := sess.Donation(id)
	if _, err := h.Ledger.Record(r.Context(), ledger.ActionStatusAdvanced, claims.Wallet,
		fmt.Sprintf("%s moved to %s", donation.Name, donation.Status)); err != nil {
		slog.Error("failed to record status change on ledger", "donation", id, "error", err)
	}

	jsonResponse(w, http.StatusOK, donation)
}
