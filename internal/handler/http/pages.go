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

func (h *Handler) getPage(w http.ResponseWriter, r *http.Request) {
	t, ok := models.ParsePageType(chi.URLParam(r, "type"))
	if !ok {
		utils.WriteError(w, app.MsgUnknownContentType, http.StatusNotFound)
		return
	}

	doc, etag, err := h.services.PageService.GetPage(r.Context(), t)
	if err != nil {
		writeError(w, r, err, "error reading page")
		return
	}

	writeWithETag(w, r, doc, etag)
}

// updatePage merges the body over the stored page. POST and PUT behave the
// same; both return the merged page.
func (h *Handler) updatePage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	t, ok := models.ParsePageType(chi.URLParam(r, "type"))
	if !ok {
		utils.WriteError(w, app.MsgUnknownContentType, http.StatusNotFound)
		return
	}

	var patch models.Document
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil || patch == nil {
		log.Warn().Err(err).Str("type", string(t)).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	doc, etag, err := h.services.PageService.UpdatePage(r.Context(), t, ifMatch(r), patch)
	if err != nil {
		writeError(w, r, err, "error updating page")
		return
	}

	w.Header().Set("ETag", utils.QuoteETag(etag))
	utils.WriteJSON(w, doc, http.StatusOK)
}
