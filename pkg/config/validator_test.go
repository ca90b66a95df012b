package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		System: &SystemConfig{
			ListenAddr: ":8080",
			BaseURL:    "http://localhost:8080",
		},
		LLM:       DefaultLLMConfig(),
		Queue:     DefaultQueueConfig(),
		Redis:     DefaultRedisConfig(),
		Triggers:  DefaultTriggersConfig(),
		Sandbox:   DefaultSandboxConfig(),
		Billing:   DefaultBillingConfig(),
		Retention: DefaultRetentionConfig(),
	}
}

func TestValidateAllDefaults(t *testing.T) {
	require.NoError(t, NewValidator(validConfig()).ValidateAll())
}

func TestValidateAll(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "missing base_url",
			mutate:  func(c *Config) { c.System.BaseURL = "" },
			wantErr: "base_url",
		},
		{
			name:    "base_url without scheme",
			mutate:  func(c *Config) { c.System.BaseURL = "weft.example.com" },
			wantErr: "base_url",
		},
		{
			name:    "missing default model",
			mutate:  func(c *Config) { c.LLM.DefaultModel = "" },
			wantErr: "default_model",
		},
		{
			name:    "zero max tokens",
			mutate:  func(c *Config) { c.LLM.MaxTokens = 0 },
			wantErr: "max_tokens",
		},
		{
			name:    "negative auto continues",
			mutate:  func(c *Config) { c.LLM.MaxAutoContinues = -1 },
			wantErr: "max_auto_continues",
		},
		{
			name:    "zero workers",
			mutate:  func(c *Config) { c.Queue.WorkerCount = 0 },
			wantErr: "worker_count",
		},
		{
			name: "ttl below heartbeat",
			mutate: func(c *Config) {
				c.Queue.HeartbeatInterval = time.Minute
				c.Queue.ActiveRunTTL = 30 * time.Second
			},
			wantErr: "active_run_ttl",
		},
		{
			name:    "missing redis addr",
			mutate:  func(c *Config) { c.Redis.Addr = "" },
			wantErr: "addr",
		},
		{
			name:    "negative grant",
			mutate:  func(c *Config) { c.Billing.FreeTierGrant = -1 },
			wantErr: "free_tier_grant",
		},
		{
			name:    "zero event ttl",
			mutate:  func(c *Config) { c.Retention.EventTTL = 0 },
			wantErr: "event_ttl",
		},
		{
			name:    "zero cleanup interval",
			mutate:  func(c *Config) { c.Retention.CleanupInterval = 0 },
			wantErr: "cleanup_interval",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
