package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWeftYAML(t *testing.T, content string) string {
	t.Helper()
	configDir := t.TempDir()
	err := os.WriteFile(filepath.Join(configDir, "weft.yaml"), []byte(content), 0644)
	require.NoError(t, err)
	return configDir
}

func TestInitialize(t *testing.T) {
	configDir := writeWeftYAML(t, `
system:
  base_url: "https://weft.example.com"
llm:
  default_model: "anthropic/claude-sonnet-4-20250514"
  max_tokens: 4096
queue:
  worker_count: 3
redis:
  addr: "redis:6379"
billing:
  enabled: true
  free_tier_grant: 10
`)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://weft.example.com", cfg.System.BaseURL)
	assert.Equal(t, ":8080", cfg.System.ListenAddr)
	assert.Equal(t, 4096, cfg.LLM.MaxTokens)
	assert.Equal(t, 3, cfg.Queue.WorkerCount)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 10.0, cfg.Billing.FreeTierGrant)

	// Unset fields keep built-in defaults
	assert.Equal(t, "weft:agent_run_queue", cfg.Queue.QueueKey)
	assert.Equal(t, 15*time.Minute, cfg.Queue.RunTimeout)
	assert.Equal(t, 25, cfg.LLM.MaxAutoContinues)
	assert.Equal(t, 6*time.Hour, cfg.Retention.EventTTL)

	stats := cfg.Stats()
	assert.Equal(t, 3, stats.Workers)
	assert.True(t, stats.BillingEnabled)
	assert.False(t, stats.SandboxEnabled)
}

func TestInitializeConfigNotFound(t *testing.T) {
	ctx := context.Background()
	_, err := Initialize(ctx, "/nonexistent/directory")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestInitializeInvalidYAML(t *testing.T) {
	configDir := writeWeftYAML(t, `{{{`)

	ctx := context.Background()
	_, err := Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestInitializeValidationFailure(t *testing.T) {
	configDir := writeWeftYAML(t, `
llm:
  max_auto_continues: -1
`)

	ctx := context.Background()
	_, err := Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
}

func TestInitializeEnvExpansion(t *testing.T) {
	t.Setenv("WEFT_TEST_REDIS_ADDR", "envhost:6380")

	configDir := writeWeftYAML(t, `
redis:
  addr: "{{.WEFT_TEST_REDIS_ADDR}}"
`)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	assert.Equal(t, "envhost:6380", cfg.Redis.Addr)
}

func TestBillingDisabledInYAML(t *testing.T) {
	configDir := writeWeftYAML(t, `
billing:
  enabled: false
`)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	assert.False(t, cfg.Billing.Enabled)
	// Grant falls back to the default when unset
	assert.Equal(t, DefaultBillingConfig().FreeTierGrant, cfg.Billing.FreeTierGrant)
}
