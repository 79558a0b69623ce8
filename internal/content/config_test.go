package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.False(t, cfg.Enabled)
	assert.Equal(t, "http://localhost:11434", cfg.Endpoint)
	assert.Equal(t, "llama3.2", cfg.Model)
	assert.Equal(t, 0.8, cfg.Temperature)
	assert.Equal(t, 160, cfg.MaxTokens)
	assert.Equal(t, 8000, cfg.TimeoutMs)
	assert.Equal(t, 1, cfg.MaxRetries)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("WORKSIM_LLM_ENABLED", "true")
	t.Setenv("WORKSIM_LLM_ENDPOINT", "http://ollama.internal:11434")
	t.Setenv("WORKSIM_LLM_MODEL", "mistral")
	t.Setenv("WORKSIM_LLM_TEMPERATURE", "0.2")
	t.Setenv("WORKSIM_LLM_MAX_TOKENS", "64")
	t.Setenv("WORKSIM_LLM_TIMEOUT_MS", "1500")
	t.Setenv("WORKSIM_LLM_MAX_RETRIES", "3")

	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, "http://ollama.internal:11434", cfg.Endpoint)
	assert.Equal(t, "mistral", cfg.Model)
	assert.Equal(t, 0.2, cfg.Temperature)
	assert.Equal(t, 64, cfg.MaxTokens)
	assert.Equal(t, 1500, cfg.TimeoutMs)
	assert.Equal(t, 3, cfg.MaxRetries)
}

func TestLoadConfig_InvalidValuesKeepDefaults(t *testing.T) {
	t.Setenv("WORKSIM_LLM_TEMPERATURE", "hot")
	t.Setenv("WORKSIM_LLM_MAX_TOKENS", "-5")
	t.Setenv("WORKSIM_LLM_TIMEOUT_MS", "soon")

	cfg := LoadConfig()

	assert.Equal(t, 0.8, cfg.Temperature)
	assert.Equal(t, 160, cfg.MaxTokens)
	assert.Equal(t, 8000, cfg.TimeoutMs)
}
