// Package config loads boxroom's runtime configuration from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the client needs to reach the backend and keep its
// local state. All of it comes from the environment; flags may override the
// backend URL afterwards.
type Config struct {
	// Backend is the base URL of the mailroom service, without a trailing
	// slash. The /api/* paths in the service contract are appended to it.
	Backend string `env:"BOXROOM_BACKEND" envDefault:"https://postal-emailer-backend.postal-mailer.workers.dev"`

	// StateDir is where the local credential store lives. Empty means
	// ~/.boxroom.
	StateDir string `env:"BOXROOM_STATE_DIR"`

	// DebugLog, when set, enables request/update debug logging to that file.
	DebugLog string `env:"BOXROOM_DEBUG_LOG"`
}

// Load reads an optional .env file and then parses the environment.
func Load() (Config, error) {
	// Missing .env is the normal case; only explicit settings matter.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.StateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			// No resolvable home: fall back to a relative state dir.
			cfg.StateDir = ".boxroom"
		} else {
			cfg.StateDir = filepath.Join(home, ".boxroom")
		}
	}
	return cfg, nil
}
