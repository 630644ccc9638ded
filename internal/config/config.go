// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/stylesense/internal/types"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Default recommendation attributes
	Height   string `json:"height,omitempty"`
	Weight   string `json:"weight,omitempty"`
	HipSize  string `json:"hip_size,omitempty"`
	SkinTone string `json:"skin_tone,omitempty"`
	BodyType string `json:"body_type,omitempty"`
	Weather  string `json:"weather,omitempty"`

	// Behavior
	Seed    uint64 `json:"seed,omitempty"`    // Fixed random seed (0 = random)
	JSON    bool   `json:"json,omitempty"`    // Emit JSON instead of formatted text
	Verbose bool   `json:"verbose,omitempty"` // Print reference tables alongside results
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Attributes are free text except skin tone and body type, which must name
// known reference values when set.
func (c *Config) Validate() error {
	if c.SkinTone != "" {
		if _, err := types.ParseSkinTone(c.SkinTone); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}
	if c.BodyType != "" {
		if _, err := types.ParseBodyType(c.BodyType); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&result.Height, defaults.Height)
	fill(&result.Weight, defaults.Weight)
	fill(&result.HipSize, defaults.HipSize)
	fill(&result.SkinTone, defaults.SkinTone)
	fill(&result.BodyType, defaults.BodyType)
	fill(&result.Weather, defaults.Weather)

	if result.Seed == 0 {
		result.Seed = defaults.Seed
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Attributes converts the attribute fields into a recommendation request.
func (c *Config) Attributes() types.Attributes {
	return types.Attributes{
		Height:   c.Height,
		Weight:   c.Weight,
		HipSize:  c.HipSize,
		SkinTone: c.SkinTone,
		BodyType: c.BodyType,
		Weather:  c.Weather,
	}
}
