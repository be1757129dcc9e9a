package api

import (
	"net/http"

	"github.com/rescuelink/rescuelink/internal/auth"
)

// AuthHandler handles the simulated wallet login.
type AuthHandler struct {
	JWTSecret string
}

// WalletLogin handles POST /api/auth/wallet. Any well-formed address gets a
// session. This is the demo's wallet connect flow, not real authentication.
func (h *AuthHandler) WalletLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Address string `json:"address"`
	}
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !auth.ValidWalletAddress(req.Address) {
		jsonError(w, http.StatusUnprocessableEntity, "malformed wallet address")
		return
	}

	donorID := auth.DonorID(req.Address)
	token, err := auth.GenerateToken(h.JWTSecret, donorID, req.Address)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "could not create session")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{
		"token":    token,
		"donor_id": donorID,
	})
}
