// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings holds the runtime configuration. Command line flags may override
// individual fields after loading.
type Settings struct {
	// BaseURL is the display backend the gateway talks to.
	BaseURL string `env:"LUMENCTL_BASE_URL" envDefault:"http://localhost:8080"`

	// ListenAddr is the local address the callback server binds to.
	ListenAddr string `env:"LUMENCTL_LISTEN_ADDR" envDefault:"127.0.0.1:8765"`

	// PublicOrigin is the scheme and host registered with OAuth providers.
	// Redirects arriving on ListenAddr are interpreted as URLs on this origin.
	PublicOrigin string `env:"LUMENCTL_PUBLIC_ORIGIN" envDefault:"http://localhost:8765"`

	// DataDir overrides the default state directory (~/.lumenctl).
	DataDir string `env:"LUMENCTL_DATA_DIR"`

	// Verbose enables debug logging.
	Verbose bool `env:"LUMENCTL_VERBOSE"`
}

// Load parses settings from environment variables.
func Load() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}
