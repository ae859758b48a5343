// Package config provides centralized configuration for the importer. All
// settings come from environment variables (with a .env bootstrap in main)
// and are validated on startup to fail fast on misconfiguration.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Logging LoggingConfig
	Moltin  MoltinConfig
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error.
	Level string `envconfig:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json.
	Format string `envconfig:"LOG_FORMAT" default:"text"`
}

// MoltinConfig holds the commerce-platform credentials. They are consumed
// by the publishing glue, not by the import core; carrying them here keeps
// the platform client free of ambient global state.
type MoltinConfig struct {
	ClientID     string `envconfig:"MOLTIN_CLIENT_ID"`
	ClientSecret string `envconfig:"MOLTIN_CLIENT_SECRET"`
}

// Load reads configuration from environment variables, applying defaults
// for unset values.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// Validate checks settings that envconfig cannot express.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid LOG_LEVEL %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q", c.Logging.Format)
	}
	return nil
}
