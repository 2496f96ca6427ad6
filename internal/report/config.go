// Package report renders the placement dashboard as terminal tables, either
// from a running portal service or from a local seed file.
package report

import "time"

// Config holds configuration for a report run.
type Config struct {
	BaseURL     string        // Base URL of the service
	SeedPath    string        // Seed file for offline mode (empty uses the embedded seed)
	Offline     bool          // Compute the report locally instead of calling the service
	TopN        int           // Number of top performers to list
	Timeout     time.Duration // HTTP request timeout
	Dataset     string        // Dataset to replace before reporting
	DatasetFile string        // JSON payload for Dataset
	NoColor     bool          // Disable coloured headings
}

// Validate checks the flag combination.
func (c *Config) Validate() error {
	if c.TopN < 1 {
		return ErrInvalidConfig
	}
	if (c.Dataset == "") != (c.DatasetFile == "") {
		return ErrInvalidConfig
	}
	if !c.Offline && c.BaseURL == "" {
		return ErrInvalidConfig
	}
	return nil
}
