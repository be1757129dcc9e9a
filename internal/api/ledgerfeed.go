package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rescuelink/rescuelink/internal/ledger"
)

// defaultFeedLimit is how many entries the feed returns by default.
const defaultFeedLimit = 10

// LedgerHandler serves the transparency feed.
type LedgerHandler struct {
	Ledger *ledger.Recorder
}

// List handles GET /api/ledger?limit=N, newest entries first.
func (h *LedgerHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := defaultFeedLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			jsonError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	entries, err := h.Ledger.Recent(r.Context(), limit)
	if err != nil {
		slog.Error("failed to list ledger entries", "error", err)
		jsonError(w, http.StatusInternalServerError, "ledger unavailable")
		return
	}
	jsonResponse(w, http.StatusOK, entries)
}
