package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.Production())
	assert.Equal(t, "https://api.elevenlabs.io", cfg.VoiceAgent.BaseURL)
	assert.Equal(t, "UTC", cfg.Scheduler.Timezone)
	assert.Equal(t, 15*time.Minute, cfg.Scheduler.StuckCallThreshold)
	assert.Equal(t, time.Hour, cfg.Scheduler.OrphanThreshold)
	assert.Equal(t, 2048, cfg.Anthropic.MaxTokens)
	assert.False(t, cfg.VoiceAgent.Configured())
	assert.False(t, cfg.Gmail.Configured())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("SCHEDULER_TIMEZONE", "Europe/Berlin")
	t.Setenv("STUCK_CALL_THRESHOLD", "20m")
	t.Setenv("ANTHROPIC_MAX_TOKENS", "4096")
	t.Setenv("VOICE_AGENT_API_KEY", "k")
	t.Setenv("VOICE_AGENT_AGENT_ID", "a")
	t.Setenv("VOICE_AGENT_PHONE_NUMBER_ID", "p")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Production())
	assert.Equal(t, "Europe/Berlin", cfg.Scheduler.Timezone)
	assert.Equal(t, 20*time.Minute, cfg.Scheduler.StuckCallThreshold)
	assert.Equal(t, 4096, cfg.Anthropic.MaxTokens)
	assert.True(t, cfg.VoiceAgent.Configured())
}

func TestLoadInvalidInt(t *testing.T) {
	t.Setenv("ANTHROPIC_MAX_TOKENS", "lots")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ANTHROPIC_MAX_TOKENS")
}
