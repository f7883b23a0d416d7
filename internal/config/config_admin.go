package config

import (
	"flag"
	"fmt"
	"os"
	"time"
)

// AdminConfig is the configuration of the terminal admin client.
type AdminConfig struct {
	// ServerAddress is the base URL of the vitrine server.
	// Env: ADMIN_SERVER_ADDRESS
	ServerAddress string `env:"ADMIN_SERVER_ADDRESS" envDefault:"http://localhost:8080" validate:"required,url"`

	// RequestTimeout bounds every call made by the client.
	// Env: ADMIN_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"ADMIN_REQUEST_TIMEOUT" envDefault:"15s"`

	// Log file of the client; the TUI owns stdout so logs go nowhere when empty.
	// Env: ADMIN_LOG_FILE
	LogFile string `env:"ADMIN_LOG_FILE"`
}

// GetAdminConfig builds and validates the admin client configuration from
// the .env file, the environment and the -s / -t flags.
func GetAdminConfig() (*AdminConfig, error) {
	return loadAdminConfig(".env", os.Args[1:])
}

func loadAdminConfig(dotEnvPath string, args []string) (*AdminConfig, error) {
	b := newConfigBuilder().withDotEnv(dotEnvPath)
	if b.err != nil {
		return nil, b.err
	}

	cfg := &AdminConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	server := fs.String("s", "", "Server base URL")
	timeout := fs.Duration("t", 0, "Request timeout (e.g., 15s)")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing admin flags: %w", err)
	}
	if *server != "" {
		cfg.ServerAddress = *server
	}
	if *timeout != 0 {
		cfg.RequestTimeout = *timeout
	}

	return cfg, cfg.validate()
}
