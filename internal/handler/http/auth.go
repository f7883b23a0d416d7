package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/vitrine/internal/logger"
	"github.com/MKhiriev/vitrine/internal/utils"
	"github.com/MKhiriev/vitrine/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	token, err := h.services.AuthService.Login(r.Context(), request)
	if err != nil {
		writeError(w, r, err, "login failed")
		return
	}

	var expiresAt time.Time
	if token.ExpiresAt != nil {
		expiresAt = token.ExpiresAt.Time
	}

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token.SignedString,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})

	log.Info().Str("email", token.Email).Msg("admin logged in")
	utils.WriteJSON(w, models.LoginResponse{
		Success:   true,
		Token:     token.SignedString,
		ExpiresAt: expiresAt.Unix(),
	}, http.StatusOK)
}

// logout clears the session cookie. Bearer tokens stay valid until they
// expire; clients drop them on their side.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	email, _ := utils.GetEmailFromContext(r.Context())
	utils.WriteJSON(w, models.SessionResponse{Authenticated: true, Email: email}, http.StatusOK)
}
