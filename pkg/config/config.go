package config

// Config is the umbrella configuration object returned by Initialize()
// and used throughout the application. It is immutable after loading.
type Config struct {
	configDir string // Configuration directory path (for reference)

	System    *SystemConfig
	LLM       *LLMConfig
	Queue     *QueueConfig
	Redis     *RedisConfig
	Triggers  *TriggersConfig
	Sandbox   *SandboxConfig
	Billing   *BillingConfig
	Retention *RetentionConfig
}

// Initialize is defined in loader.go

// Stats contains statistics about loaded configuration
type Stats struct {
	Workers        int
	DefaultModel   string
	BillingEnabled bool
	SandboxEnabled bool
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.Queue != nil {
		s.Workers = c.Queue.WorkerCount
	}
	if c.LLM != nil {
		s.DefaultModel = c.LLM.DefaultModel
	}
	if c.Billing != nil {
		s.BillingEnabled = c.Billing.Enabled
	}
	if c.Sandbox != nil {
		s.SandboxEnabled = c.Sandbox.ServiceURL != ""
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}
