package adapter

import "errors"

// Sentinel errors returned by the adapters. HTTP failures are mapped to them
// by mapHTTPError; the message sent by the server follows the colon.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrPreconditionFailed  = errors.New("content was modified by someone else")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrBackendUnavailable is returned by the section-video backend client
	// when the service cannot be reached or fails.
	ErrBackendUnavailable = errors.New("section video backend unavailable")

	// ErrMailNotSent is returned when the mail provider rejects a message.
	ErrMailNotSent = errors.New("mail was not sent")
)
