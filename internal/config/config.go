// Package config provides configuration loading and validation for the CLI
// and the HTTP shell.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-critiquer/internal/llm"
	"github.com/jonathan/resume-critiquer/internal/types"
)

// DefaultPort is the HTTP shell's listen port.
const DefaultPort = 8080

// Config represents the settings that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
// Credentials never come from the file.
type Config struct {
	// Search defaults
	Location string `json:"location,omitempty"` // Default search location
	Count    int    `json:"count,omitempty"`    // Default number of results (10-50)
	JobType  string `json:"job_type,omitempty"` // Default job-type filter

	// AI
	Provider string `json:"provider,omitempty"` // groq or gemini
	Model    string `json:"model,omitempty"`    // Model override

	// Behavior
	Port    int  `json:"port,omitempty"`    // HTTP listen port
	Verbose bool `json:"verbose,omitempty"` // Print step progress

	Credentials Credentials `json:"-"`
}

// ConfigError reports an invalid configuration value.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return "config error: " + e.Message
	}
	return fmt.Sprintf("config error: '%s' %s", e.Field, e.Message)
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Location: types.DefaultLocation,
		Count:    types.DefaultCount,
		JobType:  string(types.JobTypeAny),
		Provider: string(llm.ProviderGroq),
		Port:     DefaultPort,
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

// Load builds the effective configuration: the optional file at path merged
// over the defaults, with credentials read from the environment.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	merged := cfg.MergeWithDefaults(Defaults())
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	merged.Credentials = FromEnv()
	return &merged, nil
}

// Validate checks that the configuration has valid values. Zero values are
// accepted since they are filled by MergeWithDefaults.
func (c *Config) Validate() error {
	if c.Count != 0 && (c.Count < types.MinCount || c.Count > types.MaxCount) {
		return &ConfigError{Field: "count", Message: fmt.Sprintf("must be between %d and %d", types.MinCount, types.MaxCount)}
	}
	if c.JobType != "" {
		if _, err := types.ParseJobType(c.JobType); err != nil {
			return &ConfigError{Field: "job_type", Message: err.Error()}
		}
	}
	switch llm.Provider(c.Provider) {
	case "", llm.ProviderGroq, llm.ProviderGemini:
	default:
		return &ConfigError{Field: "provider", Message: fmt.Sprintf("must be %q or %q", llm.ProviderGroq, llm.ProviderGemini)}
	}
	if c.Port < 0 || c.Port > 65535 {
		return &ConfigError{Field: "port", Message: "must be a valid TCP port"}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Location == "" {
		result.Location = defaults.Location
	}
	if result.JobType == "" {
		result.JobType = defaults.JobType
	}
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}

	if result.Count == 0 {
		result.Count = defaults.Count
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Query returns a job query for term using the configured search defaults.
func (c *Config) Query(term string) types.JobQuery {
	q := types.NewJobQuery(term)
	if c.Location != "" {
		q.Location = c.Location
	}
	if c.Count != 0 {
		q.Count = c.Count
	}
	if jobType, err := types.ParseJobType(c.JobType); err == nil {
		q.JobType = jobType
	}
	return q
}
