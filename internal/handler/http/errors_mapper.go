package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/vitrine/internal/adapter"
	"github.com/MKhiriev/vitrine/internal/app"
	"github.com/MKhiriev/vitrine/internal/logger"
	"github.com/MKhiriev/vitrine/internal/service"
	"github.com/MKhiriev/vitrine/internal/store"
	"github.com/MKhiriev/vitrine/internal/utils"
	"github.com/MKhiriev/vitrine/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrUnknownPageType:         http.StatusNotFound,
	service.ErrPublicationNotFound:     http.StatusNotFound,
	service.ErrNewsNotFound:            http.StatusNotFound,
	service.ErrSectionVideoNotFound:    http.StatusNotFound,
	service.ErrUnsupportedUploadType:   http.StatusBadRequest,
	service.ErrFileTypeNotAllowed:      http.StatusBadRequest,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrPreconditionFailed:   http.StatusPreconditionFailed,
	store.ErrUnknownContentType:   http.StatusNotFound,
	store.ErrContactNotFound:      http.StatusNotFound,
	store.ErrContactAlreadyExists: http.StatusConflict,
	store.ErrFileTooLarge:         http.StatusRequestEntityTooLarge,
	store.ErrSavingFile:           http.StatusInternalServerError,
	store.ErrWritingDocument:      http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,

	adapter.ErrBackendUnavailable:  http.StatusBadGateway,
	adapter.ErrBadGateway:          http.StatusBadGateway,
	adapter.ErrInternalServerError: http.StatusBadGateway,
	adapter.ErrMailNotSent:         http.StatusBadGateway,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorMessages is ordered: an error wrapping several sentinels gets the
// message of the first, most specific, match.
var errorMessages = []struct {
	target  error
	message string
}{
	{validators.ErrTitleRequired, app.MsgTitleRequired},
	{validators.ErrMediaURLRequired, app.MsgMediaURLRequired},
	{validators.ErrIDRequired, app.MsgIDRequired},
	{validators.ErrInvalidNewsKind, app.MsgInvalidType},
	{validators.ErrInvalidType, app.MsgInvalidType},
	{validators.ErrInvalidDate, app.MsgInvalidDate},
	{validators.ErrFieldTooLong, app.MsgFieldTooLong},
	{validators.ErrVideoSourceRequired, app.MsgVideoSourceRequired},
	{validators.ErrNameRequired, app.MsgContactFieldsRequired},
	{validators.ErrEmailRequired, app.MsgContactFieldsRequired},
	{validators.ErrMessageRequired, app.MsgContactFieldsRequired},
	{validators.ErrInvalidEmail, app.MsgInvalidEmail},

	{service.ErrWrongCredentials, app.MsgInvalidCredentials},
	{service.ErrTokenIsExpired, app.MsgSessionExpired},
	{service.ErrTokenIsExpiredOrInvalid, app.MsgUnauthorized},
	{service.ErrUnknownPageType, app.MsgUnknownContentType},
	{service.ErrPublicationNotFound, app.MsgPublicationNotFound},
	{service.ErrNewsNotFound, app.MsgNewsNotFound},
	{service.ErrSectionVideoNotFound, app.MsgSectionVideoNotFound},
	{service.ErrUnsupportedUploadType, app.MsgFileTypeNotAllowed},
	{service.ErrFileTypeNotAllowed, app.MsgFileTypeNotAllowed},
	{service.ErrInvalidDataProvided, app.MsgInvalidDataProvided},

	{store.ErrPreconditionFailed, app.MsgPreconditionFailed},
	{store.ErrUnknownContentType, app.MsgUnknownContentType},
	{store.ErrContactNotFound, app.MsgContactNotFound},
	{store.ErrFileTooLarge, app.MsgFileTooLarge},
	{store.ErrSavingFile, app.MsgUploadFailed},
	{store.ErrWritingDocument, app.MsgSaveFailed},

	{adapter.ErrMailNotSent, app.MsgMailNotSent},
	{adapter.ErrBackendUnavailable, app.MsgBackendUnavailable},
	{adapter.ErrBadGateway, app.MsgBackendUnavailable},
	{adapter.ErrInternalServerError, app.MsgBackendUnavailable},
}

func messageFromError(err error) string {
	for _, m := range errorMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}
	return app.MsgInternalServerError
}

// writeError logs err and answers with the status and message mapped from
// it. Unmapped errors become a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(msg)
	}

	utils.WriteError(w, messageFromError(err), status)
}
