package ratelimit

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/stylesense/internal/config"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path; a trailing "/" matches any path below it
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	IdleTTL         time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

type envConfig struct {
	Enabled         bool          `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	DefaultLimit    int           `env:"RATE_LIMIT_DEFAULT_LIMIT" envDefault:"1000"`
	DefaultWindow   time.Duration `env:"RATE_LIMIT_DEFAULT_WINDOW" envDefault:"1m"`
	CleanupInterval time.Duration `env:"RATE_LIMIT_CLEANUP_INTERVAL" envDefault:"5m"`
	Whitelist       []string      `env:"RATE_LIMIT_WHITELIST" envSeparator:","`
	Blacklist       []string      `env:"RATE_LIMIT_BLACKLIST" envSeparator:","`
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() (*Config, error) {
	var ec envConfig
	if err := config.ParseEnv(&ec); err != nil {
		return nil, err
	}
	if !ec.Enabled {
		return &Config{Enabled: false}, nil
	}
	if ec.DefaultLimit <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_DEFAULT_LIMIT must be positive, got %d", ec.DefaultLimit)
	}
	if ec.DefaultWindow <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_DEFAULT_WINDOW must be positive, got %s", ec.DefaultWindow)
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    ec.DefaultLimit,
		DefaultWindow:   ec.DefaultWindow,
		CleanupInterval: ec.CleanupInterval,
		IdleTTL:         time.Hour,
		Whitelist:       toSet(ec.Whitelist),
		Blacklist:       toSet(ec.Blacklist),
		EndpointConfigs: DefaultEndpointConfigs(),
	}, nil
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// credential endpoints are the brute-force target
		{Path: "/v1/auth/signup", Method: "POST", Limit: 20, Window: time.Hour, Burst: 5},
		{Path: "/v1/auth/login", Method: "POST", Limit: 30, Window: time.Minute * 15, Burst: 5},

		// account writes
		{Path: "/v1/users/me/", Method: "PUT", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/v1/users/me/", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},

		{Path: "/v1/recommendations", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},

		// catalog reads use the default limit; /health is unlimited
	}
}

func toSet(list []string) map[string]bool {
	result := make(map[string]bool, len(list))
	for _, ip := range list {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			result[ip] = true
		}
	}
	return result
}
