package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg := LoadConfig()
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.TextModel)
	assert.Equal(t, "gpt-4o", cfg.LLM.VisionModel)
	assert.Equal(t, float32(0.85), cfg.LLM.ConfidenceThreshold)
	assert.Equal(t, 45*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, ":8080", cfg.Server.GRPCAddr)
	assert.Equal(t, 4, cfg.Workers.Count)
	assert.Equal(t, 3*time.Minute, cfg.Workers.JobTimeout)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigAnthropicProvider(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")

	cfg := LoadConfig()
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, "sk-ant-test", cfg.LLM.APIKey)
	assert.NotEmpty(t, cfg.LLM.TextModel)
	assert.NotEmpty(t, cfg.LLM.VisionModel)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("CONFIDENCE_THRESHOLD", "0.5")
	t.Setenv("WORKER_COUNT", "8")
	t.Setenv("MODEL_TEXT", "gpt-custom")

	cfg := LoadConfig()
	assert.Equal(t, float32(0.5), cfg.LLM.ConfidenceThreshold)
	assert.Equal(t, 8, cfg.Workers.Count)
	assert.Equal(t, "gpt-custom", cfg.LLM.TextModel)
}

func TestValidateRejectsBadConfig(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg := LoadConfig()
	cfg.LLM.Provider = "something-else"
	require.Error(t, cfg.Validate())

	cfg = LoadConfig()
	cfg.LLM.APIKey = ""
	require.Error(t, cfg.Validate())

	cfg = LoadConfig()
	cfg.LLM.ConfidenceThreshold = 1.5
	require.Error(t, cfg.Validate())
}
