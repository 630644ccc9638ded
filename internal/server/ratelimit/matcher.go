package ratelimit

import (
	"strings"
)

// unlimited is returned for endpoints that are never rate limited.
var unlimited = EndpointConfig{}

// MatchEndpoint matches a request path and method to an endpoint configuration.
// Exact paths win over prefix entries (paths ending in "/"). It returns nil
// when nothing matches and the default limit applies.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		cfg := unlimited
		return &cfg
	}

	var prefix *EndpointConfig
	for i := range configs {
		cfg := &configs[i]
		if cfg.Method != method {
			continue
		}
		if cfg.Path == path {
			return cfg
		}
		if prefix == nil && strings.HasSuffix(cfg.Path, "/") && strings.HasPrefix(path, cfg.Path) {
			prefix = cfg
		}
	}
	return prefix
}
