package config

import (
	"fmt"
)

// JWTConfig holds configuration for session token generation and validation.
type JWTConfig struct {
	Secret          string `env:"JWT_SECRET"`
	ExpirationHours int    `env:"JWT_EXPIRATION_HOURS" envDefault:"24"`
}

// NewJWTConfig creates a new JWT configuration from environment variables.
// It reads JWT_SECRET (required) and JWT_EXPIRATION_HOURS (default: 24).
func NewJWTConfig() (*JWTConfig, error) {
	var config JWTConfig
	if err := ParseEnv(&config); err != nil {
		return nil, fmt.Errorf("invalid JWT config: %w", err)
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return &config, nil
}

// normalize validates the configuration.
func (c *JWTConfig) normalize() error {
	if c.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required but not set")
	}
	if c.ExpirationHours < 1 {
		return fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", c.ExpirationHours)
	}
	return nil
}
