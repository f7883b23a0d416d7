package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/vitrine/internal/config"
	"github.com/MKhiriev/vitrine/internal/logger"
	"github.com/MKhiriev/vitrine/internal/utils"
	"github.com/MKhiriev/vitrine/internal/validators"
	"github.com/MKhiriev/vitrine/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It checks the single admin account configured for the site and manages
// the JWT session tokens issued to it.
type authService struct {
	// adminEmail is compared case-insensitively with the login e-mail.
	adminEmail string

	// passwordHash is the bcrypt hash of the admin password.
	passwordHash []byte

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	validator validators.Validator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with the admin
// account and token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		adminEmail:    strings.ToLower(strings.TrimSpace(cfg.AdminEmail)),
		passwordHash:  []byte(cfg.AdminPasswordHash),
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		validator:     validators.NewContentValidator(),
		logger:        logger,
	}
}

// Login checks the admin credentials and issues a session token.
//
// Returns the signed token or:
//   - ErrInvalidDataProvided if the e-mail or the password is missing.
//   - ErrWrongCredentials if either does not match the configured account.
//   - ErrTokenCreationFailed if the token cannot be signed.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	request.Email = strings.TrimSpace(request.Email)
	if err := a.validator.Validate(ctx, request); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	email := strings.ToLower(request.Email)
	emailMatches := subtle.ConstantTimeCompare([]byte(email), []byte(a.adminEmail)) == 1
	// the hash is always compared so a wrong e-mail costs as much as a
	// wrong password
	passwordErr := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(request.Password))
	if !emailMatches || passwordErr != nil {
		log.Warn().Str("email", email).Msg("wrong admin credentials")
		return models.Token{}, ErrWrongCredentials
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, a.adminEmail, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Info().Str("email", email).Msg("admin logged in")
	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. An expired token yields ErrTokenIsExpired; any other
// failure, including a token issued to an e-mail that is no longer the
// admin's, yields ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, ErrTokenIsExpired)
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	if !strings.EqualFold(token.Email, a.adminEmail) {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
