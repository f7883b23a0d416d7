package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps an admin session JWT.
//
// It embeds [jwt.Token] for signing and parsing and [jwt.RegisteredClaims]
// for the standard claims. The subject claim carries the admin e-mail.
type Token struct {
	// Token is the underlying JWT. Only the compact form leaves the process.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation (header.payload.signature).
	SignedString string `json:"-"`

	// Email is a cached copy of the subject claim.
	Email string `json:"-"`
}

// GetEmail returns the admin e-mail stored in the "sub" claim.
func (t *Token) GetEmail() (string, error) {
	email, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting email from token: %w", err)
	}
	if email == "" {
		return "", fmt.Errorf("error extracting email from token: empty subject")
	}
	return email, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
