// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when looking for the
// session token. Callers can match against them with [errors.Is].
var (
	// ErrNoSession is returned when the request carries neither an
	// "Authorization" header nor the session cookie.
	ErrNoSession = errors.New("no `Authorization` header or session cookie")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the session cookie is present but empty.
	ErrEmptyToken = errors.New("empty session token")
)
