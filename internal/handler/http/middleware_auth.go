package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/vitrine/internal/app"
	"github.com/MKhiriev/vitrine/internal/logger"
	"github.com/MKhiriev/vitrine/internal/service"
	"github.com/MKhiriev/vitrine/internal/utils"
)

// sessionCookie is the HttpOnly cookie set by login for browser clients.
const sessionCookie = "admin_session"

// auth is an HTTP middleware that enforces the admin session.
//
// The token is taken from the "Authorization: Bearer" header, or from the
// admin_session cookie when the header is absent. It is validated via
// [service.AuthService.ParseToken] and, on success, the admin e-mail is
// stored in the request context under [utils.EmailCtxKey].
//
// Any failure answers 401 with {"error": ...}; an expired token gets the
// "session expired" message so the editor can prompt for a new login.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := sessionToken(r)
		if err != nil {
			log.Warn().Err(err).Msg("admin route called without session")
			utils.WriteError(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenIsExpired) {
				log.Warn().Err(err).Msg("token expired")
				utils.WriteError(w, app.MsgSessionExpired, http.StatusUnauthorized)
				return
			}
			log.Warn().Err(err).Msg("error occurred during parsing token")
			utils.WriteError(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		ctx = context.WithValue(ctx, utils.EmailCtxKey, token.Email)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionToken extracts the raw session token from the request.
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] if the header is not "Bearer <token>".
//   - [ErrEmptyToken] if the session cookie is empty.
//   - [ErrNoSession] if neither the header nor the cookie is present.
func sessionToken(r *http.Request) (string, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		token, err := utils.ParseBearerToken(header)
		if err != nil {
			return "", ErrInvalidAuthorizationHeader
		}
		return token, nil
	}

	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		return "", ErrNoSession
	}
	if cookie.Value == "" {
		return "", ErrEmptyToken
	}
	return cookie.Value, nil
}
