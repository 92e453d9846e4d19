package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config holds the settings read from the environment at startup.
type Config struct {
	MaxNameLength    int    `env:"WAR_MAX_NAME_LENGTH"    envDefault:"29"`
	MaxFactionLength int    `env:"WAR_MAX_FACTION_LENGTH" envDefault:"9"`
	Seed             uint64 `env:"WAR_SEED"` // 0 seeds from the clock
	LogLevel         string `env:"WAR_LOG_LEVEL"          envDefault:"warn"`
	LogJSON          bool   `env:"WAR_LOG_JSON"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates the game configuration.
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

func (c Config) Validate() error {
	var errs []error
	if c.MaxNameLength <= 0 {
		errs = append(errs, fmt.Errorf("max name length must be positive, got %d", c.MaxNameLength))
	}
	if c.MaxFactionLength <= 0 {
		errs = append(errs, fmt.Errorf("max faction length must be positive, got %d", c.MaxFactionLength))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level returns the configured zerolog level.
func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
