package content

import (
	"os"
	"strconv"
)

// Config holds configuration for the optional text provider.
type Config struct {
	Enabled     bool
	LogCalls    bool
	Endpoint    string
	Model       string
	Temperature float64
	MaxTokens   int
	TimeoutMs   int
	MaxRetries  int
}

// DefaultConfig returns a Config with sensible defaults.
// The provider is disabled by default; generation then runs entirely on
// static fallback text.
func DefaultConfig() Config {
	return Config{
		Enabled:     false,
		LogCalls:    false,
		Endpoint:    "http://localhost:11434",
		Model:       "llama3.2",
		Temperature: 0.8,
		MaxTokens:   160,
		TimeoutMs:   8000,
		MaxRetries:  1,
	}
}

// LoadConfig reads provider configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("WORKSIM_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("WORKSIM_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("WORKSIM_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("WORKSIM_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("WORKSIM_LLM_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			cfg.Temperature = f
		}
	}
	if v := os.Getenv("WORKSIM_LLM_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxTokens = n
		}
	}
	if v := os.Getenv("WORKSIM_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("WORKSIM_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	return cfg
}
