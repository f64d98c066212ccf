package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, "http://localhost:11434", cfg.Endpoint)
	assert.Equal(t, 20000, cfg.TaskTimeout(TaskActionPlan))
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("GAUNTLET_LLM_ENABLED", "true")
	t.Setenv("GAUNTLET_LLM_ENDPOINT", "http://example.com:9999")
	t.Setenv("GAUNTLET_LLM_MODEL", "mistral")
	t.Setenv("GAUNTLET_LLM_MAX_RETRIES", "2")
	t.Setenv("GAUNTLET_LLM_ACTION_PLAN_TIMEOUT_MS", "5000")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "http://example.com:9999", cfg.Endpoint)
	assert.Equal(t, "mistral", cfg.Model)
	assert.Equal(t, 2, cfg.MaxRetries)
	assert.Equal(t, 5000, cfg.TaskTimeout(TaskActionPlan))
}

func TestLoadConfig_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("GAUNTLET_LLM_TIMEOUT_MS", "not-a-number")
	t.Setenv("GAUNTLET_LLM_MAX_RETRIES", "-3")

	cfg := LoadConfig()
	assert.Equal(t, 20000, cfg.TimeoutMs)
	assert.Equal(t, 1, cfg.MaxRetries)
}
