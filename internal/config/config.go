// Package config provides configuration loading and credential resolution for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// APIKeyEnvVar is the environment variable consulted when no key file
// or explicit key is configured.
const APIKeyEnvVar = "GEMINI_API_KEY"

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Input   string `json:"input,omitempty"`    // Path to the college list CSV
	Output  string `json:"output,omitempty"`   // Path to the enriched output CSV
	KeyFile string `json:"key_file,omitempty"` // Path to a file holding the API key

	// Behavior
	APIKey            string `json:"api_key,omitempty"`             // Gemini API key (overrides key file and env)
	RequestsPerMinute int    `json:"requests_per_minute,omitempty"` // Throughput cap for enrichment calls
	Model             string `json:"model,omitempty"`               // Model name override
	Verbose           bool   `json:"verbose,omitempty"`             // Print detailed debug information
}

// DefaultConfig returns the defaults applied beneath file and flag values.
func DefaultConfig() Config {
	return Config{
		Input:             "us_universities.csv",
		Output:            "us_universities_enriched.csv",
		RequestsPerMinute: 10,
	}
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
	if c.RequestsPerMinute <= 0 {
		return fmt.Errorf("config error: 'requests_per_minute' must be positive")
	}

	if c.Input != "" {
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			return fmt.Errorf("config error: input file not found: %s", c.Input)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.KeyFile == "" {
		result.KeyFile = defaults.KeyFile
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.RequestsPerMinute == 0 {
		result.RequestsPerMinute = defaults.RequestsPerMinute
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ResolveAPIKey resolves the service credential: the explicit APIKey
// first, then the key file, then the environment. A missing credential
// is a fatal startup error; no processing begins without one.
func (c *Config) ResolveAPIKey() (string, error) {
	if c.APIKey != "" {
		return c.APIKey, nil
	}

	if c.KeyFile != "" {
		data, err := os.ReadFile(c.KeyFile)
		if err != nil {
			if !os.IsNotExist(err) {
				return "", fmt.Errorf("failed to read key file %s: %w", c.KeyFile, err)
			}
		} else if key := strings.TrimSpace(string(data)); key != "" {
			return key, nil
		}
	}

	if key := strings.TrimSpace(os.Getenv(APIKeyEnvVar)); key != "" {
		return key, nil
	}

	return "", fmt.Errorf("API key not found: set %s, use --api-key, or provide a key file", APIKeyEnvVar)
}
