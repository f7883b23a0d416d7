package http

import (
	"net/http"

	"github.com/MKhiriev/vitrine/internal/utils"
	"github.com/MKhiriev/vitrine/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listSectionVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := h.services.SectionVideoService.ListSectionVideos(r.Context())
	if err != nil {
		writeError(w, r, err, "error listing section videos")
		return
	}
	if videos == nil {
		videos = []models.SectionVideo{}
	}

	writeHashed(w, r, models.SectionVideosDocument{Videos: videos})
}

func (h *Handler) getSectionVideo(w http.ResponseWriter, r *http.Request) {
	video, err := h.services.SectionVideoService.GetSectionVideo(r.Context(), chi.URLParam(r, "section"))
	if err != nil {
		writeError(w, r, err, "error reading section video")
		return
	}

	writeHashed(w, r, video)
}

// saveSectionVideo upserts the video of the section named in the path; a
// section in the body is ignored.
func (h *Handler) saveSectionVideo(w http.ResponseWriter, r *http.Request) {
	var video models.SectionVideo
	if !decodeJSON(w, r, &video) {
		return
	}
	video.Section = chi.URLParam(r, "section")

	saved, err := h.services.SectionVideoService.SaveSectionVideo(r.Context(), video)
	if err != nil {
		writeError(w, r, err, "error saving section video")
		return
	}

	utils.WriteJSON(w, models.SectionVideoResponse{Success: true, Video: saved}, http.StatusOK)
}

func (h *Handler) toggleSectionVideo(w http.ResponseWriter, r *http.Request) {
	video, err := h.services.SectionVideoService.ToggleSectionVideo(r.Context(), chi.URLParam(r, "section"))
	if err != nil {
		writeError(w, r, err, "error toggling section video")
		return
	}

	utils.WriteJSON(w, models.SectionVideoResponse{Success: true, Video: video}, http.StatusOK)
}

func (h *Handler) deleteSectionVideo(w http.ResponseWriter, r *http.Request) {
	if err := h.services.SectionVideoService.DeleteSectionVideo(r.Context(), chi.URLParam(r, "section")); err != nil {
		writeError(w, r, err, "error deleting section video")
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
