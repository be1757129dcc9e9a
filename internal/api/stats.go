package api

import (
	"net/http"

	"github.com/rescuelink/rescuelink/internal/session"
)

// StatsHandler serves the session's impact stats.
type StatsHandler struct {
	Sessions *session.Manager
}

// Get handles GET /api/stats.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	sess := h.Sessions.Get(claims.DonorID)
	jsonResponse(w, http.StatusOK, sess.Stats())
}
