package http

import (
	"net/http"

	"github.com/MKhiriev/vitrine/internal/utils"
	"github.com/MKhiriev/vitrine/models"
)

func (h *Handler) listNews(w http.ResponseWriter, r *http.Request) {
	doc, etag, err := h.services.NewsService.ListNews(r.Context())
	if err != nil {
		writeError(w, r, err, "error listing news")
		return
	}

	writeWithETag(w, r, doc, etag)
}

func (h *Handler) createNews(w http.ResponseWriter, r *http.Request) {
	var request models.NewsRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	item, err := h.services.NewsService.CreateNews(r.Context(), request)
	if err != nil {
		writeError(w, r, err, "error creating news record")
		return
	}

	utils.WriteJSON(w, models.NewsItemResponse{Success: true, Type: request.Type, Item: item}, http.StatusCreated)
}

func (h *Handler) updateNews(w http.ResponseWriter, r *http.Request) {
	var request models.NewsRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	item, err := h.services.NewsService.UpdateNews(r.Context(), request)
	if err != nil {
		writeError(w, r, err, "error updating news record")
		return
	}

	utils.WriteJSON(w, models.NewsItemResponse{Success: true, Type: request.Type, Item: item}, http.StatusOK)
}

// deleteNews takes the id and the optional kind from the query string.
func (h *Handler) deleteNews(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	kind := models.NewsKind(query.Get("type"))

	if err := h.services.NewsService.DeleteNews(r.Context(), kind, query.Get("id")); err != nil {
		writeError(w, r, err, "error deleting news record")
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
