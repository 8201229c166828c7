// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Content targets
	TargetWords int     `json:"target_words,omitempty"` // Target word count for planned content
	Density     float64 `json:"density,omitempty"`      // Target keyword density percent

	// Prompt customization
	Tone            string `json:"tone,omitempty"`             // Writing tone for the assembled prompt
	Audience        string `json:"audience,omitempty"`         // Target audience free text
	IncludeFAQ      bool   `json:"include_faq,omitempty"`      // Add a FAQ section to the prompt
	IncludeExamples bool   `json:"include_examples,omitempty"` // Emphasize real-world examples

	// Engine behavior
	Difficulty  string `json:"difficulty,omitempty"`    // Difficulty policy: lexical or frequency
	MaxPoolSize int    `json:"max_pool_size,omitempty"` // Cap on the keyword pool

	// External services
	SearchAPIKey string `json:"search_api_key,omitempty"` // Custom Search API key (grounded difficulty)
	SearchCx     string `json:"search_cx,omitempty"`      // Custom Search engine ID
	GeminiAPIKey string `json:"gemini_api_key,omitempty"` // Gemini API key (draft command)
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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
	if c.TargetWords < 0 {
		return fmt.Errorf("config error: 'target_words' must be non-negative")
	}
	if c.Density < 0 {
		return fmt.Errorf("config error: 'density' must be non-negative")
	}
	if c.MaxPoolSize < 0 {
		return fmt.Errorf("config error: 'max_pool_size' must be non-negative")
	}
	if c.Difficulty != "" && c.Difficulty != "lexical" && c.Difficulty != "frequency" {
		return fmt.Errorf("config error: 'difficulty' must be \"lexical\" or \"frequency\"")
	}
	if c.SearchAPIKey != "" && c.SearchCx == "" {
		return fmt.Errorf("config error: 'search_cx' is required when 'search_api_key' is set")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Tone == "" {
		result.Tone = defaults.Tone
	}
	if result.Audience == "" {
		result.Audience = defaults.Audience
	}
	if result.Difficulty == "" {
		result.Difficulty = defaults.Difficulty
	}
	if result.SearchAPIKey == "" {
		result.SearchAPIKey = defaults.SearchAPIKey
	}
	if result.SearchCx == "" {
		result.SearchCx = defaults.SearchCx
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}

	// Numeric fields: use default if zero
	if result.TargetWords == 0 {
		result.TargetWords = defaults.TargetWords
	}
	if result.Density == 0 {
		result.Density = defaults.Density
	}
	if result.MaxPoolSize == 0 {
		result.MaxPoolSize = defaults.MaxPoolSize
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
