package api

import (
	"errors"
	"net/http"

	"github.com/rescuelink/rescuelink/internal/imaging"
	"github.com/rescuelink/rescuelink/internal/session"
)

// UploadPhoto handles PUT /api/donations/{id}/photo.
func (h *DonationsHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	sess := h.Sessions.Get(claims.DonorID)

	photo, err := imaging.ProcessPhoto(r.Body)
	if err != nil {
		jsonError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := sess.SetPhoto(r.PathValue("id"), photo.Data, photo.MIME); err != nil {
		jsonError(w, http.StatusNotFound, "donation not found")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"mime": photo.MIME})
}

// GetPhoto handles GET /api/donations/{id}/photo.
func (h *DonationsHandler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	sess := h.Sessions.Get(claims.DonorID)

	data, mime, err := sess.Photo(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			jsonError(w, http.StatusNotFound, "donation not found")
			return
		}
		jsonError(w, http.StatusInternalServerError, "could not load photo")
		return
	}
	if len(data) == 0 {
		jsonError(w, http.StatusNotFound, "donation has no photo")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
