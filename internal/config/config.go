// Package config provides configuration for the CLI and server: a JSON
// config file merged under command flags, a credential store for AI
// providers, and auth settings read from the environment.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/beetune/internal/styles"
)

// Config is the CLI configuration loadable from a JSON file. All fields are
// optional; missing values fall back to defaults or command flags.
type Config struct {
	// Inputs
	Job    string `json:"job,omitempty"`     // Path to a job posting text file
	JobURL string `json:"job_url,omitempty"` // URL to fetch the job posting from

	// Rendering
	Style  string `json:"style,omitempty"`  // LaTeX style template name
	Output string `json:"output,omitempty"` // Output directory for artifacts

	// Provider
	Provider string `json:"provider,omitempty"` // AI provider name
	APIKey   string `json:"api_key,omitempty"`  // API key override
	Model    string `json:"model,omitempty"`    // Model override

	// Behavior
	MaxWorkers int  `json:"max_workers,omitempty"` // Concurrent compilations in batch mode
	Verbose    bool `json:"verbose,omitempty"`     // Print detailed progress information
}

// LoadConfig loads configuration from a JSON file.
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

// Validate checks the configuration values. Required fields are enforced by
// flag validation after merging, not here.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if c.Style != "" {
		if _, err := styles.Parse(c.Style); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}

	if c.MaxWorkers < 0 {
		return fmt.Errorf("config error: 'max_workers' must be non-negative")
	}

	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a copy of c with empty fields filled from
// defaults. Bool fields are not merged since unset and false are
// indistinguishable; flags win for those.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.Style == "" {
		result.Style = defaults.Style
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.MaxWorkers == 0 {
		result.MaxWorkers = defaults.MaxWorkers
	}

	return result
}
