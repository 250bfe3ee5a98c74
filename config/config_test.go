package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.GatewayPort)
	assert.Equal(t, "8082", cfg.Server.AdvisorPort)
	assert.Equal(t, "redis://localhost:6379", cfg.Redis.URL)
	assert.Equal(t, "hi", cfg.Chat.DefaultLanguage)
	assert.Equal(t, time.Second, cfg.ThinkingDelay())
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL())
	assert.Equal(t, time.Minute, cfg.MetricsFlushInterval())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[server]
gateway_port = "9001"
allowed_origins = ["https://example.com"]

[chat]
default_language = "pa"
thinking_delay_ms = 250

[metrics]
enabled = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9001", cfg.Server.GatewayPort)
	assert.Equal(t, []string{"https://example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "pa", cfg.Chat.DefaultLanguage)
	assert.Equal(t, 250*time.Millisecond, cfg.ThinkingDelay())
	assert.True(t, cfg.Metrics.Enabled)
	// Unset sections keep their defaults.
	assert.Equal(t, "8082", cfg.Server.AdvisorPort)
	assert.Equal(t, 50, cfg.Chat.HistoryLimit)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("REDIS_URL", "redis://redis.internal:6380")
	t.Setenv("PORT", "7000")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, "redis://redis.internal:6380", cfg.Redis.URL)
	assert.Equal(t, "7000", cfg.Server.GatewayPort)
	assert.Equal(t, "7000", cfg.Server.AdvisorPort)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server\n"), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}
