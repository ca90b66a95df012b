package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveBudget(t *testing.T) {
	tests := []struct {
		name          string
		contextWindow int
		expected      int
	}{
		{"million token window", 1_000_000, 700_000},
		{"gpt-4.1 window", 1_047_576, 747_576},
		{"400k window", 400_000, 336_000},
		{"just below 1M", 999_999, 935_999},
		{"200k window", 200_000, 168_000},
		{"just below 400k", 399_999, 367_999},
		{"100k window", 100_000, 84_000},
		{"just below 200k", 199_999, 183_999},
		{"small window scales", 50_000, 42_000},
		{"just below 100k", 99_999, 83_999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EffectiveBudget(tt.contextWindow))
		})
	}
}

func TestCanonicalModel(t *testing.T) {
	tests := []struct {
		name     string
		model    string
		expected string
	}{
		{"anthropic prefix", "anthropic/claude-sonnet-4-20250514", "claude-sonnet-4-20250514"},
		{"openai prefix", "openai/gpt-4o", "gpt-4o"},
		{"openrouter prefix keeps vendor path", "openrouter/anthropic/claude-sonnet-4-20250514", "anthropic/claude-sonnet-4-20250514"},
		{"bare name unchanged", "claude-sonnet-4-20250514", "claude-sonnet-4-20250514"},
		{"unknown prefix unchanged", "moonshotai/kimi-k2", "moonshotai/kimi-k2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanonicalModel(tt.model))
		})
	}
}

func TestProviderFor(t *testing.T) {
	tests := []struct {
		model    string
		expected string
	}{
		{"anthropic/claude-sonnet-4-20250514", ProviderAnthropic},
		{"openai/gpt-4.1", ProviderOpenAI},
		{"openrouter/anthropic/claude-sonnet-4-20250514", ProviderOpenRouter},
		{"claude-3-5-haiku-20241022", ProviderAnthropic},
		{"gpt-4o-mini", ProviderOpenAI},
		{"o4-mini", ProviderOpenAI},
		{"moonshotai/kimi-k2", ProviderOpenRouter},
		{"some-unknown-model", ProviderOpenRouter},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			assert.Equal(t, tt.expected, ProviderFor(tt.model))
		})
	}
}

func TestRewriteForFailover(t *testing.T) {
	tests := []struct {
		name     string
		model    string
		expected string
	}{
		{"prefixed anthropic", "anthropic/claude-sonnet-4-20250514", "openrouter/anthropic/claude-sonnet-4-20250514"},
		{"bare anthropic gains vendor path", "claude-sonnet-4-20250514", "openrouter/anthropic/claude-sonnet-4-20250514"},
		{"bare openai gains vendor path", "gpt-4o", "openrouter/openai/gpt-4o"},
		{"vendor path preserved", "moonshotai/kimi-k2", "openrouter/moonshotai/kimi-k2"},
		{"idempotent", "openrouter/anthropic/claude-sonnet-4-20250514", "openrouter/anthropic/claude-sonnet-4-20250514"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RewriteForFailover(tt.model))
		})
	}
}

func TestGetModelPricing(t *testing.T) {
	t.Run("exact match", func(t *testing.T) {
		pricing := GetModelPricing("claude-sonnet-4-20250514")
		assert.Equal(t, 200_000, pricing.ContextWindow)
		assert.InDelta(t, 0.000003, pricing.Input, 1e-12)
	})

	t.Run("prefixed model resolves", func(t *testing.T) {
		pricing := GetModelPricing("anthropic/claude-sonnet-4-20250514")
		assert.Equal(t, 200_000, pricing.ContextWindow)
	})

	t.Run("failover name resolves to same entry", func(t *testing.T) {
		direct := GetModelPricing("anthropic/claude-sonnet-4-20250514")
		failover := GetModelPricing("openrouter/anthropic/claude-sonnet-4-20250514")
		assert.Equal(t, direct, failover)
	})

	t.Run("family fallback on dated variants", func(t *testing.T) {
		pricing := GetModelPricing("claude-sonnet-4-99999999")
		assert.Equal(t, ModelPricingMap["claude-sonnet-4-20250514"], pricing)
	})

	t.Run("unknown model gets conservative default", func(t *testing.T) {
		pricing := GetModelPricing("mystery-model-9000")
		assert.Equal(t, 100_000, pricing.ContextWindow)
	})
}

func TestCostUSD(t *testing.T) {
	t.Run("uncached prompt only", func(t *testing.T) {
		cost := CostUSD("claude-sonnet-4-20250514", 1000, 100, 0, 0)
		assert.InDelta(t, 1000*0.000003+100*0.000015, cost, 1e-12)
	})

	t.Run("cache read billed at cache rate", func(t *testing.T) {
		cost := CostUSD("claude-sonnet-4-20250514", 1000, 100, 600, 200)
		expected := 400*0.000003 + 100*0.000015 + 600*0.0000003 + 200*0.00000375
		assert.InDelta(t, expected, cost, 1e-12)
	})

	t.Run("cache read exceeding prompt floors at zero", func(t *testing.T) {
		cost := CostUSD("claude-sonnet-4-20250514", 500, 0, 900, 0)
		assert.InDelta(t, 900*0.0000003, cost, 1e-12)
	})
}

func TestIsOverloadedError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil", nil, false},
		{"overloaded", errors.New("anthropic: Overloaded"), true},
		{"status 529", errors.New("unexpected status code: 529"), true},
		{"rate limit", errors.New("Rate limit exceeded, retry later"), true},
		{"http 429", errors.New("error, status code: 429"), true},
		{"service unavailable", errors.New("503 Service Unavailable"), true},
		{"bad request", errors.New("error, status code: 400, invalid schema"), false},
		{"auth failure", errors.New("invalid x-api-key"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsOverloadedError(tt.err))
		})
	}
}
