package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// WeftYAMLConfig represents the complete weft.yaml file structure
type WeftYAMLConfig struct {
	System    *SystemYAMLConfig `yaml:"system"`
	LLM       *LLMConfig        `yaml:"llm"`
	Queue     *QueueConfig      `yaml:"queue"`
	Redis     *RedisConfig      `yaml:"redis"`
	Triggers  *TriggersConfig   `yaml:"triggers"`
	Sandbox   *SandboxConfig    `yaml:"sandbox"`
	Billing   *BillingConfig    `yaml:"billing"`
	Retention *RetentionConfig  `yaml:"retention"`
}

// SystemYAMLConfig groups system-wide infrastructure settings.
type SystemYAMLConfig struct {
	ListenAddr string `yaml:"listen_addr,omitempty"`
	BaseURL    string `yaml:"base_url,omitempty"`
	PodID      string `yaml:"pod_id,omitempty"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load weft.yaml from configDir
//  2. Expand environment variables
//  3. Merge user config over built-in defaults
//  4. Validate all configuration
//  5. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"workers", stats.Workers,
		"default_model", stats.DefaultModel,
		"billing_enabled", stats.BillingEnabled,
		"sandbox_enabled", stats.SandboxEnabled)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	weftConfig, err := loader.loadWeftYAML()
	if err != nil {
		return nil, NewLoadError("weft.yaml", err)
	}

	// Start with defaults, then merge user config on top so unset
	// fields keep their built-in values.
	systemCfg := resolveSystemConfig(weftConfig.System)

	llmCfg := DefaultLLMConfig()
	if weftConfig.LLM != nil {
		if err := mergo.Merge(llmCfg, weftConfig.LLM, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge llm config: %w", err)
		}
	}

	queueCfg := DefaultQueueConfig()
	if weftConfig.Queue != nil {
		if err := mergo.Merge(queueCfg, weftConfig.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	redisCfg := DefaultRedisConfig()
	if weftConfig.Redis != nil {
		if err := mergo.Merge(redisCfg, weftConfig.Redis, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge redis config: %w", err)
		}
	}

	triggersCfg := DefaultTriggersConfig()
	if weftConfig.Triggers != nil {
		if err := mergo.Merge(triggersCfg, weftConfig.Triggers, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge triggers config: %w", err)
		}
	}

	sandboxCfg := DefaultSandboxConfig()
	if weftConfig.Sandbox != nil {
		if err := mergo.Merge(sandboxCfg, weftConfig.Sandbox, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge sandbox config: %w", err)
		}
	}

	billingCfg := DefaultBillingConfig()
	if weftConfig.Billing != nil {
		// mergo skips zero values, so Enabled=false in YAML would be lost.
		billingCfg.Enabled = weftConfig.Billing.Enabled
		if weftConfig.Billing.FreeTierGrant > 0 {
			billingCfg.FreeTierGrant = weftConfig.Billing.FreeTierGrant
		}
	}

	retentionCfg := DefaultRetentionConfig()
	if weftConfig.Retention != nil {
		if err := mergo.Merge(retentionCfg, weftConfig.Retention, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge retention config: %w", err)
		}
	}

	return &Config{
		configDir: configDir,
		System:    systemCfg,
		LLM:       llmCfg,
		Queue:     queueCfg,
		Redis:     redisCfg,
		Triggers:  triggersCfg,
		Sandbox:   sandboxCfg,
		Billing:   billingCfg,
		Retention: retentionCfg,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadWeftYAML() (*WeftYAMLConfig, error) {
	var config WeftYAMLConfig

	if err := l.loadYAML("weft.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// resolveSystemConfig resolves system configuration from YAML, applying defaults.
func resolveSystemConfig(sys *SystemYAMLConfig) *SystemConfig {
	cfg := &SystemConfig{
		ListenAddr: ":8080",
		BaseURL:    "http://localhost:8080",
	}

	if hostname, err := os.Hostname(); err == nil {
		cfg.PodID = hostname
	}

	if sys == nil {
		return cfg
	}
	if sys.ListenAddr != "" {
		cfg.ListenAddr = sys.ListenAddr
	}
	if sys.BaseURL != "" {
		cfg.BaseURL = sys.BaseURL
	}
	if sys.PodID != "" {
		cfg.PodID = sys.PodID
	}

	return cfg
}
