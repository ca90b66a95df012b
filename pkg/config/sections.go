package config

import "time"

// RedisConfig holds connection settings for the run queue and the
// webhook replay guard.
type RedisConfig struct {
	Addr        string `yaml:"addr"`
	PasswordEnv string `yaml:"password_env,omitempty"`
	DB          int    `yaml:"db"`
}

// DefaultRedisConfig returns the built-in Redis defaults.
func DefaultRedisConfig() *RedisConfig {
	return &RedisConfig{
		Addr:        "localhost:6379",
		PasswordEnv: "REDIS_PASSWORD",
		DB:          0,
	}
}

// TriggersConfig holds trigger subsystem settings.
type TriggersConfig struct {
	// WebhookSecretEnv names the env var holding the standard-webhooks
	// signing secret used to verify inbound composio deliveries.
	WebhookSecretEnv string `yaml:"webhook_secret_env,omitempty"`

	// SchedulerSecretEnv names the env var holding the bearer secret
	// pg_cron includes when firing scheduled triggers.
	SchedulerSecretEnv string `yaml:"scheduler_secret_env,omitempty"`

	// ComposioAPIKeyEnv names the env var holding the Composio API key
	// for remote trigger lifecycle calls.
	ComposioAPIKeyEnv string `yaml:"composio_api_key_env,omitempty"`

	// ComposioBaseURL overrides the Composio API endpoint (tests).
	ComposioBaseURL string `yaml:"composio_base_url,omitempty"`
}

// DefaultTriggersConfig returns the built-in trigger defaults.
func DefaultTriggersConfig() *TriggersConfig {
	return &TriggersConfig{
		WebhookSecretEnv:   "TRIGGER_WEBHOOK_SECRET",
		SchedulerSecretEnv: "TRIGGER_SCHEDULER_SECRET",
		ComposioAPIKeyEnv:  "COMPOSIO_API_KEY",
		ComposioBaseURL:    "https://backend.composio.dev",
	}
}

// SandboxConfig holds settings for the external sandbox provisioner.
type SandboxConfig struct {
	// ServiceURL is the provisioner endpoint. Empty disables sandbox
	// creation; trigger executions then run without one.
	ServiceURL string `yaml:"service_url,omitempty"`

	// RequestTimeout bounds provisioner calls.
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// DefaultSandboxConfig returns the built-in sandbox defaults.
func DefaultSandboxConfig() *SandboxConfig {
	return &SandboxConfig{
		RequestTimeout: 30 * time.Second,
	}
}

// BillingConfig holds credit accounting settings.
type BillingConfig struct {
	// Enabled gates reservation and deduction. When false, runs start
	// without a balance check and usage is recorded but not charged.
	Enabled bool `yaml:"enabled"`

	// FreeTierGrant is the starting balance (dollars) for new accounts.
	FreeTierGrant float64 `yaml:"free_tier_grant"`
}

// DefaultBillingConfig returns the built-in billing defaults.
func DefaultBillingConfig() *BillingConfig {
	return &BillingConfig{
		Enabled:       true,
		FreeTierGrant: 5,
	}
}

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// EventTTL is the maximum age of stream-event rows. They exist for
	// SSE reconnect catch-up, not archival; conversation history lives
	// in messages.
	EventTTL time.Duration `yaml:"event_ttl"`

	// TriggerEventTTL is the maximum age of trigger delivery audit rows.
	TriggerEventTTL time.Duration `yaml:"trigger_event_ttl"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		EventTTL:        6 * time.Hour,
		TriggerEventTTL: 30 * 24 * time.Hour,
		CleanupInterval: 1 * time.Hour,
	}
}
