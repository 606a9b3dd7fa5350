// Package config provides configuration loading and validation for the dashboard.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/talent-dashboard/internal/scoring"
)

// Defaults applied when neither the config file nor flags supply a value.
const (
	DefaultPort            = 8080
	DefaultSalaryFilterMax = 500000
)

// Config represents the dashboard configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	Port            int    `json:"port,omitempty"`              // HTTP listen port
	DataPath        string `json:"data,omitempty"`              // Optional bundled candidate dataset loaded at startup
	SalaryFilterMax uint   `json:"salary_filter_max,omitempty"` // Upper bound of the default salary filter

	// LocationBonus configures the optional location scoring rule. When
	// enabled it applies to every ingestion route.
	LocationBonus scoring.LocationBonus `json:"location_bonus,omitempty"`
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
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in [0, 65535]")
	}

	if c.LocationBonus.Enabled {
		if c.LocationBonus.Points <= 0 {
			return fmt.Errorf("config error: 'location_bonus.points' must be positive when enabled")
		}
		if len(c.LocationBonus.Locations) == 0 {
			return fmt.Errorf("config error: 'location_bonus.locations' must not be empty when enabled")
		}
	}

	if c.DataPath != "" {
		if _, err := os.Stat(c.DataPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: data file not found: %s", c.DataPath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. Flag values should be merged in by the caller afterwards.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Port == 0 {
		result.Port = DefaultPort
	}
	if result.DataPath == "" {
		result.DataPath = defaults.DataPath
	}
	if result.SalaryFilterMax == 0 {
		result.SalaryFilterMax = defaults.SalaryFilterMax
	}
	if result.SalaryFilterMax == 0 {
		result.SalaryFilterMax = DefaultSalaryFilterMax
	}
	if !result.LocationBonus.Enabled && defaults.LocationBonus.Enabled {
		result.LocationBonus = defaults.LocationBonus
	}

	return result
}
