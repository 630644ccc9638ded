package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ServerEnv is the environment-driven configuration of the HTTP server.
type ServerEnv struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"console"`
	// RandomSeed makes attribute-driven recommendations reproducible when non-zero.
	RandomSeed uint64 `env:"RANDOM_SEED" envDefault:"0"`
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadServerEnv parses ServerEnv from the environment.
func LoadServerEnv() (*ServerEnv, error) {
	var cfg ServerEnv
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("config error: PORT out of range: %d", cfg.Port)
	}
	if cfg.LogFormat != "console" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("config error: LOG_FORMAT must be console or json, got %q", cfg.LogFormat)
	}
	return &cfg, nil
}
