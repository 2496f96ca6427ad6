// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(ctx) initializer to build a Config with defaults.
// - Load layers a YAML file and CAMPUS_* environment variables on top.
// - External errors are wrapped with this package's sentinel errors.
package config

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log encoding: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// SeedPath points at a YAML/JSON dataset file. Empty uses the embedded seed.
	SeedPath string `koanf:"seed_path"`

	// CacheSize bounds the number of memoized query results.
	CacheSize int `koanf:"cache_size"`

	// MaxTopLimit caps the limit parameter of top-N endpoints.
	MaxTopLimit int `koanf:"max_top_limit"`

	// Branches is the canonical branch order used by branch-wise stats.
	// Codes are upper-cased on load to match stored student branches.
	Branches []string `koanf:"branches"`

	// MetricsEnabled turns Prometheus recording on or off.
	MetricsEnabled bool `koanf:"metrics_enabled"`

	// MetricsInterval is how often system and dataset gauges refresh, e.g. "10s".
	MetricsInterval time.Duration `koanf:"metrics_interval"`
}

// New creates a Config with defaults. Context is accepted first to follow
// the project-wide convention.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:        "info",
		LogFormat:       "text",
		Addr:            ":9080",
		CacheSize:       1024,
		MaxTopLimit:     100,
		Branches:        []string{"CSE", "IT", "ECE", "EEE", "MECH", "CIVIL"},
		MetricsEnabled:  true,
		MetricsInterval: 10 * time.Second,
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("addr must not be empty: %w", ErrInvalidConfig)
	}
	if c.CacheSize <= 0 {
		return fmt.Errorf("cache_size must be positive, got %d: %w", c.CacheSize, ErrInvalidConfig)
	}
	if c.MaxTopLimit <= 0 {
		return fmt.Errorf("max_top_limit must be positive, got %d: %w", c.MaxTopLimit, ErrInvalidConfig)
	}
	if c.MetricsInterval <= 0 {
		return fmt.Errorf("metrics_interval must be positive, got %s: %w", c.MetricsInterval, ErrInvalidConfig)
	}
	if !slices.Contains([]string{"text", "json"}, strings.ToLower(c.LogFormat)) {
		return fmt.Errorf("log_format must be text or json, got %q: %w", c.LogFormat, ErrInvalidConfig)
	}
	return nil
}
