package config

import "errors"

// Errors returned while assembling a configuration.
var (
	// ErrInvalidConfig wraps every validation failure of a merged config.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrInvalidAdminConfig indicates the admin client cannot reach a server
	// (for example, missing server address or request timeout).
	ErrInvalidAdminConfig = errors.New("invalid admin client configuration")
)
