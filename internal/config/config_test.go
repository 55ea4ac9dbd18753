package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv(func(string) string { return "" })

	assert.Equal(t, "https://api.kazakh-learn.com", cfg.APIBaseURL)
	assert.Equal(t, "en", cfg.LanguageCode)
	assert.Equal(t, 10, cfg.WordCount)
	assert.True(t, cfg.IncludeReview)
	require.NoError(t, cfg.Validate())
}

func TestFromEnvOverrides(t *testing.T) {
	env := map[string]string{
		"KAZLEARN_API_URL":        "http://localhost:8000",
		"KAZLEARN_LANGUAGE":       "ru",
		"KAZLEARN_WORDS":          "25",
		"KAZLEARN_INCLUDE_REVIEW": "false",
		"KAZLEARN_HTTP_TIMEOUT":   "5s",
		"KAZLEARN_TOKEN_FILE":     "/tmp/token.json",
	}
	cfg := FromEnv(func(k string) string { return env[k] })

	assert.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
	assert.Equal(t, "ru", cfg.LanguageCode)
	assert.Equal(t, 25, cfg.WordCount)
	assert.False(t, cfg.IncludeReview)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "/tmp/token.json", cfg.TokenPath)
}

func TestFromEnvIgnoresMalformedValues(t *testing.T) {
	env := map[string]string{
		"KAZLEARN_WORDS":        "lots",
		"KAZLEARN_HTTP_TIMEOUT": "soon",
	}
	cfg := FromEnv(func(k string) string { return env[k] })

	assert.Equal(t, 10, cfg.WordCount)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WordCount = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.WordCount = 51
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.APIBaseURL = ""
	assert.Error(t, cfg.Validate())
}
