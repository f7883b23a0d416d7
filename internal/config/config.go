// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container of the vitrine
// server. It is populated by merging values from a .env file, environment
// variables, an optional JSON file and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
//   - envDefault: value used when the variable is unset.
//   - validate : rules checked by go-playground/validator after merging.
type StructuredConfig struct {
	// App holds the admin credentials, session token parameters and the
	// application version.
	App App `envPrefix:"APP_"`

	// Storage holds the content file directories and the contacts database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network addresses, timeouts and upload limits.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings of the outbound integrations (section-video
	// backend and e-mail).
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds the logger output settings.
	Log Log `envPrefix:"LOG_"`

	// BackendURL is the base URL of the external section-video service.
	// Env: BACKEND_URL
	BackendURL string `env:"BACKEND_URL" envDefault:"http://localhost:5001" validate:"required,url"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds the admin account and session settings.
type App struct {
	// AdminEmail is the only e-mail allowed to log into the admin area.
	// Env: APP_ADMIN_EMAIL
	AdminEmail string `env:"ADMIN_EMAIL" validate:"required,email"`

	// AdminPasswordHash is the bcrypt hash of the admin password.
	// Env: APP_ADMIN_PASSWORD_HASH
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH" validate:"required"`

	// TokenSignKey is the HMAC key used to sign session tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY" validate:"required,min=16"`

	// TokenIssuer is the "iss" claim of every session token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER" envDefault:"vitrine"`

	// TokenDuration is the lifetime of a session token.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION" envDefault:"12h" validate:"gt=0"`

	// Version is exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION" envDefault:"dev"`
}

// Server holds the inbound transport settings.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP server (host:port).
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:"localhost:8080" validate:"required"`

	// GRPCAddress is the TCP address of the gRPC health server. The gRPC
	// server is not started when empty.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds every non-streaming request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s" validate:"gt=0"`

	// MaxUploadSize is the largest accepted upload, in bytes.
	// Env: SERVER_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE" envDefault:"104857600" validate:"gt=0"`
}

// Storage groups the persistence settings.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Files Files `envPrefix:"FILES_"`
}

// DB holds the contacts database connection settings.
type DB struct {
	// DSN is either a SQLite file path or a postgres:// URL.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI" envDefault:"data/contacts.db" validate:"required"`
}

// Files holds the content and upload directories.
type Files struct {
	// DataDir holds one JSON file per content type.
	// Env: STORAGE_FILES_DATA_DIR
	DataDir string `env:"DATA_DIR" envDefault:"data" validate:"required"`

	// PublicDir holds uploaded files, served statically.
	// Env: STORAGE_FILES_PUBLIC_DIR
	PublicDir string `env:"PUBLIC_DIR" envDefault:"public" validate:"required"`
}

// Adapter holds the outbound integration settings.
type Adapter struct {
	// SectionVideosProxy forwards section-video calls to BackendURL instead
	// of the local store.
	// Env: ADAPTER_SECTION_VIDEOS_PROXY
	SectionVideosProxy bool `env:"SECTION_VIDEOS_PROXY"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s" validate:"gt=0"`

	// MailRegion is the AWS region of the SES mailer. Replies are stored
	// without being sent when empty.
	// Env: ADAPTER_MAIL_REGION
	MailRegion string `env:"MAIL_REGION"`

	// MailFrom is the sender address of contact replies.
	// Env: ADAPTER_MAIL_FROM
	MailFrom string `env:"MAIL_FROM" validate:"required_with=MailRegion"`
}

// Workers holds background worker settings.
type Workers struct {
	// WatchInterval is how often content files are checked for external edits.
	// Env: WORKERS_WATCH_INTERVAL
	WatchInterval time.Duration `env:"WATCH_INTERVAL" envDefault:"5s" validate:"gt=0"`
}

// Log holds logger output settings.
type Log struct {
	// File enables rotating file output in addition to stdout.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL" envDefault:"info" validate:"oneof=trace debug info warn error fatal panic disabled"`

	MaxSizeMB  int `env:"MAX_SIZE_MB" envDefault:"100"`
	MaxBackups int `env:"MAX_BACKUPS" envDefault:"3"`
	MaxAgeDays int `env:"MAX_AGE_DAYS" envDefault:"28"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (later sources
// override earlier non-zero fields):
//  1. .env file in the working directory (never overrides the real environment)
//  2. Environment variables
//  3. JSON file (path resolved from sources 2 and 4)
//  4. Command-line flags
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(".env").
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
