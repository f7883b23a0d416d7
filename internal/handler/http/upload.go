package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/vitrine/internal/app"
	"github.com/MKhiriev/vitrine/internal/logger"
	"github.com/MKhiriev/vitrine/internal/utils"
	"github.com/MKhiriev/vitrine/models"
)

const (
	uploadFileField = "file"
	uploadTypeField = "type"

	// multipartSlack covers the multipart envelope and the small form fields
	// around the file part.
	multipartSlack = 1 << 20
)

// upload streams a multipart/form-data upload to the public directory.
//
// The "type" field must come before the "file" part; a type sent after the
// file is ignored and the file is stored as a document.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+multipartSlack)
	reader, err := r.MultipartReader()
	if err != nil {
		log.Warn().Err(err).Msg("upload is not multipart")
		utils.WriteError(w, app.MsgNoFileProvided, http.StatusBadRequest)
		return
	}

	var kind models.UploadKind
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			h.uploadError(w, r, err)
			return
		}

		switch part.FormName() {
		case uploadTypeField:
			value, err := io.ReadAll(io.LimitReader(part, 64))
			part.Close()
			if err != nil {
				h.uploadError(w, r, err)
				return
			}
			kind = models.UploadKind(value)
		case uploadFileField:
			if part.FileName() == "" {
				part.Close()
				continue
			}
			uploaded, err := h.services.UploadService.Upload(r.Context(), kind, part.FileName(), part)
			part.Close()
			if err != nil {
				h.uploadError(w, r, err)
				return
			}
			utils.WriteJSON(w, uploaded, http.StatusOK)
			return
		default:
			part.Close()
		}
	}

	log.Warn().Msg("upload without file part")
	utils.WriteError(w, app.MsgNoFileProvided, http.StatusBadRequest)
}

func (h *Handler) uploadError(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		logger.FromRequest(r).Warn().Err(err).Msg("upload too large")
		utils.WriteError(w, app.MsgFileTooLarge, http.StatusRequestEntityTooLarge)
		return
	}
	writeError(w, r, err, "upload failed")
}
