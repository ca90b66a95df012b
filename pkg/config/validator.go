package config

import (
	"fmt"
	"strings"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	if err := v.validateSystem(); err != nil {
		return fmt.Errorf("system validation failed: %w", err)
	}

	if err := v.validateLLM(); err != nil {
		return fmt.Errorf("llm validation failed: %w", err)
	}

	if err := v.validateQueue(); err != nil {
		return fmt.Errorf("queue validation failed: %w", err)
	}

	if err := v.validateRedis(); err != nil {
		return fmt.Errorf("redis validation failed: %w", err)
	}

	if err := v.validateBilling(); err != nil {
		return fmt.Errorf("billing validation failed: %w", err)
	}

	if err := v.validateRetention(); err != nil {
		return fmt.Errorf("retention validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateSystem() error {
	sys := v.cfg.System
	if sys.ListenAddr == "" {
		return NewValidationError("system", "listen_addr", ErrMissingRequiredField)
	}
	if sys.BaseURL == "" {
		return NewValidationError("system", "base_url", ErrMissingRequiredField)
	}
	if !strings.HasPrefix(sys.BaseURL, "http://") && !strings.HasPrefix(sys.BaseURL, "https://") {
		return NewValidationError("system", "base_url", fmt.Errorf("%w: must start with http:// or https://", ErrInvalidValue))
	}
	return nil
}

func (v *ConfigValidator) validateLLM() error {
	llm := v.cfg.LLM
	if llm.DefaultModel == "" {
		return NewValidationError("llm", "default_model", ErrMissingRequiredField)
	}
	if llm.MaxTokens < 1 {
		return NewValidationError("llm", "max_tokens", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if llm.MaxAutoContinues < 0 {
		return NewValidationError("llm", "max_auto_continues", fmt.Errorf("%w: must not be negative", ErrInvalidValue))
	}
	if llm.MaxXMLToolCalls < 0 {
		return NewValidationError("llm", "max_xml_tool_calls", fmt.Errorf("%w: must not be negative", ErrInvalidValue))
	}
	if llm.RequestTimeout <= 0 {
		return NewValidationError("llm", "request_timeout", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	return nil
}

func (v *ConfigValidator) validateQueue() error {
	q := v.cfg.Queue
	if q.WorkerCount < 1 {
		return NewValidationError("queue", "worker_count", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if q.QueueKey == "" {
		return NewValidationError("queue", "queue_key", ErrMissingRequiredField)
	}
	if q.RunTimeout <= 0 {
		return NewValidationError("queue", "run_timeout", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if q.ActiveRunTTL <= q.HeartbeatInterval {
		return NewValidationError("queue", "active_run_ttl",
			fmt.Errorf("%w: must exceed heartbeat_interval %s", ErrInvalidValue, q.HeartbeatInterval))
	}
	if q.OrphanThreshold <= q.HeartbeatInterval {
		return NewValidationError("queue", "orphan_threshold",
			fmt.Errorf("%w: must exceed heartbeat_interval %s", ErrInvalidValue, q.HeartbeatInterval))
	}
	return nil
}

func (v *ConfigValidator) validateRedis() error {
	if v.cfg.Redis.Addr == "" {
		return NewValidationError("redis", "addr", ErrMissingRequiredField)
	}
	return nil
}

func (v *ConfigValidator) validateBilling() error {
	b := v.cfg.Billing
	if b.FreeTierGrant < 0 {
		return NewValidationError("billing", "free_tier_grant", fmt.Errorf("%w: must not be negative", ErrInvalidValue))
	}
	return nil
}

func (v *ConfigValidator) validateRetention() error {
	r := v.cfg.Retention
	if r.EventTTL <= 0 {
		return NewValidationError("retention", "event_ttl", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if r.TriggerEventTTL <= 0 {
		return NewValidationError("retention", "trigger_event_ttl", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if r.CleanupInterval <= 0 {
		return NewValidationError("retention", "cleanup_interval", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	return nil
}
