// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults applied when neither the config file nor the environment sets a
// value.
const (
	DefaultListenAddr              = ":8080"
	DefaultInferenceTimeoutSeconds = 5
	DefaultInferenceMaxRetries     = 3
)

// Config is the application configuration. It can be loaded from a JSON
// file; every field is optional and the environment overlays file values.
type Config struct {
	// Inputs for one-shot CLI runs.
	Resume string `json:"resume,omitempty"`  // Path to resume text file
	Job    string `json:"job,omitempty"`     // Path to job posting text file
	JobURL string `json:"job_url,omitempty"` // URL to fetch the job posting from

	// Remote services.
	InferenceURL            string `json:"inference_url,omitempty"`             // Zero-shot classification endpoint
	InferenceAPIKey         string `json:"inference_api_key,omitempty"`         // Bearer token for the endpoint
	InferenceTimeoutSeconds int    `json:"inference_timeout_seconds,omitempty"` // Per-attempt timeout
	InferenceMaxRetries     int    `json:"inference_max_retries,omitempty"`     // Retry budget for 503s
	GeminiAPIKey            string `json:"gemini_api_key,omitempty"`            // Generation API key

	// Server.
	ListenAddr  string `json:"listen_addr,omitempty"`  // HTTP listen address
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Behavior.
	UseBrowser bool `json:"use_browser,omitempty"` // Headless browser for SPA job boards
	Verbose    bool `json:"verbose,omitempty"`     // Debug logging
	JSONLogs   bool `json:"json_logs,omitempty"`   // JSON log encoding
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

// FromEnv overlays environment variables onto the config. Environment values
// win over the file.
func (c *Config) FromEnv() {
	overlay := map[string]*string{
		"INFERENCE_API_URL": &c.InferenceURL,
		"INFERENCE_API_KEY": &c.InferenceAPIKey,
		"GEMINI_API_KEY":    &c.GeminiAPIKey,
		"DATABASE_URL":      &c.DatabaseURL,
		"LISTEN_ADDR":       &c.ListenAddr,
	}
	for name, field := range overlay {
		if v := os.Getenv(name); v != "" {
			*field = v
		}
	}
}

// Validate checks field consistency. Required fields are enforced by the
// commands that need them, not here.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}
	if c.InferenceTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'inference_timeout_seconds' must be non-negative")
	}
	if c.InferenceMaxRetries < 0 {
		return fmt.Errorf("config error: 'inference_max_retries' must be non-negative")
	}

	for name, path := range map[string]string{"resume": c.Resume, "job": c.Job} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", name, path)
		}
	}
	return nil
}

// MergeWithDefaults returns a copy with zero-valued fields filled from
// defaults, and hard defaults applied last.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	strings := []struct {
		field *string
		def   string
	}{
		{&result.Resume, defaults.Resume},
		{&result.Job, defaults.Job},
		{&result.JobURL, defaults.JobURL},
		{&result.InferenceURL, defaults.InferenceURL},
		{&result.InferenceAPIKey, defaults.InferenceAPIKey},
		{&result.GeminiAPIKey, defaults.GeminiAPIKey},
		{&result.ListenAddr, defaults.ListenAddr},
		{&result.DatabaseURL, defaults.DatabaseURL},
	}
	for _, s := range strings {
		if *s.field == "" {
			*s.field = s.def
		}
	}

	if result.InferenceTimeoutSeconds == 0 {
		result.InferenceTimeoutSeconds = defaults.InferenceTimeoutSeconds
	}
	if result.InferenceMaxRetries == 0 {
		result.InferenceMaxRetries = defaults.InferenceMaxRetries
	}

	if result.ListenAddr == "" {
		result.ListenAddr = DefaultListenAddr
	}
	if result.InferenceTimeoutSeconds == 0 {
		result.InferenceTimeoutSeconds = DefaultInferenceTimeoutSeconds
	}
	if result.InferenceMaxRetries == 0 {
		result.InferenceMaxRetries = DefaultInferenceMaxRetries
	}

	return result
}
