package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment. It serves both [StructuredConfig]
// (envPrefix tags per section) and [AdminConfig]; defaults come from the
// envDefault tags.
func parseEnv(cfg any) error {
	if err := env.ParseWithOptions(cfg, env.Options{TagName: "env"}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}
