// Package config loads service configuration from the process environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every tunable the service reads at startup. The signing secret
// is required: a process without one must not start.
type Config struct {
	Addr       string        `env:"IDGATE_ADDR" envDefault:":8080"`
	AuthSecret string        `env:"IDGATE_AUTH_SECRET"`
	PGDSN      string        `env:"IDGATE_PG_DSN"`
	TokenTTL   time.Duration `env:"IDGATE_TOKEN_TTL" envDefault:"2160h"`
	BcryptCost int           `env:"IDGATE_BCRYPT_COST" envDefault:"10"`
	RateBurst  int           `env:"IDGATE_RATE_BURST" envDefault:"20"`
	RatePerSec int           `env:"IDGATE_RATE_PER_SEC" envDefault:"10"`
}

// Load parses the environment and validates required values.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if strings.TrimSpace(cfg.AuthSecret) == "" {
		return Config{}, errors.New("IDGATE_AUTH_SECRET is required")
	}
	if cfg.TokenTTL <= 0 {
		return Config{}, errors.New("IDGATE_TOKEN_TTL must be greater than zero")
	}
	return cfg, nil
}
