package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingBotTokenIsFatal(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("GROQ_API_KEY", "gsk-test")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BOT_TOKEN")
}

func TestLoad_MissingGroqKeyIsFatal(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("GROQ_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GROQ_API_KEY")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("GROQ_API_KEY", "gsk-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "llama-3.1-8b-instant", cfg.Groq.Model)
	assert.Equal(t, "https://api.groq.com", cfg.Groq.BaseURL)
	assert.Equal(t, "https://www.youtube.com", cfg.YouTube.BaseURL)
	assert.Equal(t, 250, cfg.Assistant.ChunkSize)
	assert.Equal(t, 1000, cfg.Assistant.SessionCapacity)
	assert.Equal(t, 30, cfg.Telegram.PollTimeout)
	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddr())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("GROQ_API_KEY", "gsk-test")
	t.Setenv("CHUNK_SIZE", "100")
	t.Setenv("GROQ_MODEL", "llama-3.3-70b-versatile")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Assistant.ChunkSize)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.Groq.Model)
}
