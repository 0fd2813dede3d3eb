// Package config loads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/mmynk/tripwiser/pkg/logging"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port         int           `env:"TRIPWISER_PORT" envDefault:"8080"`
	DBPath       string        `env:"TRIPWISER_DB_PATH" envDefault:"./data/tripwiser.db"`
	JWTSecret    string        `env:"TRIPWISER_JWT_SECRET,unset"`
	TokenTTL     time.Duration `env:"TRIPWISER_TOKEN_TTL" envDefault:"24h"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
	OTelEndpoint string        `env:"TRIPWISER_OTEL_ENDPOINT"`
}

// ErrMissingSecret is returned when no JWT secret is configured.
var ErrMissingSecret = errors.New("TRIPWISER_JWT_SECRET is required")

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks values env tags cannot express.
func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return ErrMissingSecret
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("invalid token ttl %s", c.TokenTTL)
	}
	return nil
}

// Addr is the listen address for Port.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// SlogLevel maps LogLevel onto a slog level, defaulting to INFO.
func (c Config) SlogLevel() slog.Level {
	return logging.ParseLevel(c.LogLevel)
}
