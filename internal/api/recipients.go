package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/rescuelink/rescuelink/internal/store"
)

// RecipientsHandler exposes the recipient directory.
type RecipientsHandler struct {
	DB *sql.DB
}

// List handles GET /api/recipients.
func (h *RecipientsHandler) List(w http.ResponseWriter, r *http.Request) {
	recipients, err := store.ListRecipients(r.Context(), h.DB)
	if err != nil {
		slog.Error("failed to list recipients", "error", err)
		jsonError(w, http.StatusInternalServerError, "recipient directory unavailable")
		return
	}
	jsonResponse(w, http.StatusOK, recipients)
}

// Get handles GET /api/recipients/{id}.
func (h *RecipientsHandler) Get(w http.ResponseWriter, r *http.Request) {
	recipient, err := store.GetRecipient(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		slog.Error("failed to get recipient", "error", err)
		jsonError(w, http.StatusInternalServerError, "recipient directory unavailable")
		return
	}
	if recipient == nil {
		jsonError(w, http.StatusNotFound, "recipient not found")
		return
	}
	jsonResponse(w, http.StatusOK, recipient)
}
