// Package config resolves client configuration from the environment.
package config

import (
	"fmt"
	"strconv"
	"time"
)

// Config holds everything the client needs to reach the backend and
// shape a practice session.
type Config struct {
	// APIBaseURL is the root of the Kazakh Learn REST API.
	APIBaseURL string

	// LanguageCode selects which translation the backend returns.
	LanguageCode string

	// WordCount is the requested batch size for practice sessions
	// (the backend may return fewer).
	WordCount int

	// IncludeReview mixes words due for spaced-repetition review into
	// the batch.
	IncludeReview bool

	// HTTPTimeout bounds every single API call.
	HTTPTimeout time.Duration

	// TokenPath overrides the stored-token location (optional).
	TokenPath string

	// DBPath overrides the local history database location (optional).
	DBPath string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		APIBaseURL:    "https://api.kazakh-learn.com",
		LanguageCode:  "en",
		WordCount:     10,
		IncludeReview: true,
		HTTPTimeout:   15 * time.Second,
	}
}

// FromEnv builds a Config from KAZLEARN_* environment variables,
// falling back to defaults for unset values.
func FromEnv(getenv func(string) string) Config {
	cfg := DefaultConfig()

	if v := getenv("KAZLEARN_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := getenv("KAZLEARN_LANGUAGE"); v != "" {
		cfg.LanguageCode = v
	}
	if v := getenv("KAZLEARN_WORDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.WordCount = n
		}
	}
	if v := getenv("KAZLEARN_INCLUDE_REVIEW"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.IncludeReview = b
		}
	}
	if v := getenv("KAZLEARN_HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.HTTPTimeout = d
		}
	}
	if v := getenv("KAZLEARN_TOKEN_FILE"); v != "" {
		cfg.TokenPath = v
	}
	if v := getenv("KAZLEARN_DB"); v != "" {
		cfg.DBPath = v
	}

	return cfg
}

// Validate checks the resolved configuration.
func (c Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("KAZLEARN_API_URL must not be empty")
	}
	if c.WordCount < 1 || c.WordCount > 50 {
		return fmt.Errorf("KAZLEARN_WORDS must be between 1 and 50, got %d", c.WordCount)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("KAZLEARN_HTTP_TIMEOUT must be positive")
	}
	return nil
}
