// Package utils provides general-purpose helper utilities used across the
// vitrine server and admin client: typed context keys, document hashing,
// HTTP response writing, the outbound HTTP client, session tokens, id
// generation and partial-update merging.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// EmailCtxKey is the key used to store the authenticated admin e-mail in
// the request context.
var EmailCtxKey = contextKey("email")

// GetEmailFromContext retrieves the admin e-mail stored by the auth
// middleware. ok is false when the value is missing or has another type.
func GetEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmailCtxKey).(string)
	return email, ok && email != ""
}
