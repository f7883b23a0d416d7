package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/vitrine/internal/app"
	"github.com/MKhiriev/vitrine/internal/logger"
	"github.com/MKhiriev/vitrine/internal/utils"
	"github.com/MKhiriev/vitrine/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listPublications(w http.ResponseWriter, r *http.Request) {
	doc, etag, err := h.services.PublicationService.ListPublications(r.Context())
	if err != nil {
		writeError(w, r, err, "error listing publications")
		return
	}

	writeWithETag(w, r, doc, etag)
}

func (h *Handler) createPublication(w http.ResponseWriter, r *http.Request) {
	var publication models.Publication
	if !decodeJSON(w, r, &publication) {
		return
	}

	created, err := h.services.PublicationService.CreatePublication(r.Context(), publication)
	if err != nil {
		writeError(w, r, err, "error creating publication")
		return
	}

	utils.WriteJSON(w, models.PublicationResponse{Success: true, Publication: created}, http.StatusCreated)
}

func (h *Handler) updatePublication(w http.ResponseWriter, r *http.Request) {
	var patch models.Publication
	if !decodeJSON(w, r, &patch) {
		return
	}

	updated, err := h.services.PublicationService.UpdatePublication(r.Context(), patch)
	if err != nil {
		writeError(w, r, err, "error updating publication")
		return
	}

	utils.WriteJSON(w, models.PublicationResponse{Success: true, Publication: updated}, http.StatusOK)
}

func (h *Handler) deletePublication(w http.ResponseWriter, r *http.Request) {
	if err := h.services.PublicationService.DeletePublication(r.Context(), r.URL.Query().Get("id")); err != nil {
		writeError(w, r, err, "error deleting publication")
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) trackDownload(w http.ResponseWriter, r *http.Request) {
	count, err := h.services.PublicationService.TrackDownload(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "error tracking download")
		return
	}

	utils.WriteJSON(w, models.DownloadCountResponse{Success: true, DownloadCount: count}, http.StatusOK)
}

// decodeJSON decodes the request body into dst. On failure it answers 400
// and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return false
	}
	return true
}
