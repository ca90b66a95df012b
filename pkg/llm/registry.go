package llm

import (
	"strings"
)

// Provider identifiers used in model prefixes ("anthropic/claude-...").
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderOpenRouter = "openrouter"
)

// ModelPricing holds per-token pricing and capacity for one model.
type ModelPricing struct {
	Input              float64
	Output             float64
	PromptCachingWrite float64
	PromptCachingRead  float64
	ContextWindow      int
}

// ModelPricingMap maps canonical model names to their pricing information.
// OpenRouter passes canonical names through, so failover lookups resolve
// to the same entry as the direct provider.
var ModelPricingMap = map[string]ModelPricing{
	"claude-sonnet-4-20250514": {
		Input:              0.000003,   // $3.00 per million tokens
		Output:             0.000015,   // $15.00 per million tokens
		PromptCachingWrite: 0.00000375, // $3.75 per million tokens
		PromptCachingRead:  0.0000003,  // $0.30 per million tokens
		ContextWindow:      200_000,
	},
	"claude-opus-4-1-20250805": {
		Input:              0.000015,   // $15.00 per million tokens
		Output:             0.000075,   // $75.00 per million tokens
		PromptCachingWrite: 0.00001875, // $18.75 per million tokens
		PromptCachingRead:  0.0000015,  // $1.50 per million tokens
		ContextWindow:      200_000,
	},
	"claude-3-5-haiku-20241022": {
		Input:              0.0000008,  // $0.80 per million tokens
		Output:             0.000004,   // $4.00 per million tokens
		PromptCachingWrite: 0.000001,   // $1.00 per million tokens
		PromptCachingRead:  0.00000008, // $0.08 per million tokens
		ContextWindow:      200_000,
	},
	"gpt-4.1": {
		Input:         0.000002,  // $2.00 per million tokens
		Output:        0.000008,  // $8.00 per million tokens
		ContextWindow: 1_047_576, // 1M context
	},
	"gpt-4.1-mini": {
		Input:         0.0000004, // $0.40 per million tokens
		Output:        0.0000016, // $1.60 per million tokens
		ContextWindow: 1_047_576,
	},
	"gpt-4o": {
		Input:         0.0000025, // $2.50 per million tokens
		Output:        0.00001,   // $10.00 per million tokens
		ContextWindow: 128_000,
	},
	"gpt-4o-mini": {
		Input:         0.00000015, // $0.15 per million tokens
		Output:        0.0000006,  // $0.60 per million tokens
		ContextWindow: 128_000,
	},
	"o4-mini": {
		Input:         0.0000011, // $1.10 per million tokens
		Output:        0.0000044, // $4.40 per million tokens
		ContextWindow: 200_000,
	},
}

// defaultPricing covers unknown models. The conservative 100k window
// keeps the compressor engaged rather than trusting an unverified cap.
var defaultPricing = ModelPricing{
	Input:         0.000003,
	Output:        0.000015,
	ContextWindow: 100_000,
}

// GetModelPricing resolves pricing for a possibly prefixed model name.
// Exact match first, then model family, then the conservative default.
func GetModelPricing(model string) ModelPricing {
	canonical := CanonicalModel(model)
	if pricing, ok := ModelPricingMap[canonical]; ok {
		return pricing
	}
	lower := strings.ToLower(canonical)
	switch {
	case strings.Contains(lower, "claude-sonnet-4") || strings.Contains(lower, "claude-4-sonnet"):
		return ModelPricingMap["claude-sonnet-4-20250514"]
	case strings.Contains(lower, "claude-opus-4") || strings.Contains(lower, "claude-4-opus"):
		return ModelPricingMap["claude-opus-4-1-20250805"]
	case strings.Contains(lower, "claude-3-5-haiku") || strings.Contains(lower, "claude-haiku"):
		return ModelPricingMap["claude-3-5-haiku-20241022"]
	case strings.Contains(lower, "gpt-4.1-mini"):
		return ModelPricingMap["gpt-4.1-mini"]
	case strings.Contains(lower, "gpt-4.1"):
		return ModelPricingMap["gpt-4.1"]
	case strings.Contains(lower, "gpt-4o-mini"):
		return ModelPricingMap["gpt-4o-mini"]
	case strings.Contains(lower, "gpt-4o"):
		return ModelPricingMap["gpt-4o"]
	}
	return defaultPricing
}

// ContextWindow returns the model's total context window in tokens.
func ContextWindow(model string) int {
	return GetModelPricing(model).ContextWindow
}

// EffectiveBudget maps a context window to the usable input budget,
// leaving headroom for completion tokens and provider overhead. The
// reserve grows with the window in fixed tiers.
func EffectiveBudget(contextWindow int) int {
	switch {
	case contextWindow >= 1_000_000:
		return contextWindow - 300_000
	case contextWindow >= 400_000:
		return contextWindow - 64_000
	case contextWindow >= 200_000:
		return contextWindow - 32_000
	case contextWindow >= 100_000:
		return contextWindow - 16_000
	default:
		return int(float64(contextWindow) * 0.84)
	}
}

// CanonicalModel strips a provider prefix, if any.
// "anthropic/claude-sonnet-4" and "openrouter/claude-sonnet-4" both
// canonicalize to "claude-sonnet-4".
func CanonicalModel(model string) string {
	for _, p := range []string{ProviderAnthropic, ProviderOpenAI, ProviderOpenRouter} {
		if rest, ok := strings.CutPrefix(model, p+"/"); ok {
			return rest
		}
	}
	return model
}

// ProviderFor resolves which provider serves the model: an explicit
// prefix wins, then the model family, then OpenRouter for anything
// with a vendor path.
func ProviderFor(model string) string {
	switch {
	case strings.HasPrefix(model, ProviderAnthropic+"/"):
		return ProviderAnthropic
	case strings.HasPrefix(model, ProviderOpenAI+"/"):
		return ProviderOpenAI
	case strings.HasPrefix(model, ProviderOpenRouter+"/"):
		return ProviderOpenRouter
	}
	lower := strings.ToLower(model)
	switch {
	case strings.HasPrefix(lower, "claude"):
		return ProviderAnthropic
	case strings.HasPrefix(lower, "gpt") || strings.HasPrefix(lower, "o1") ||
		strings.HasPrefix(lower, "o3") || strings.HasPrefix(lower, "o4"):
		return ProviderOpenAI
	case strings.Contains(model, "/"):
		// Vendor-scoped names (e.g. "moonshotai/kimi-k2") only resolve
		// through the aggregator.
		return ProviderOpenRouter
	default:
		return ProviderOpenRouter
	}
}

// IsAnthropicModel reports whether the model is served by the Anthropic
// API directly. Token counting uses this to pick the counting strategy.
func IsAnthropicModel(model string) bool {
	return ProviderFor(model) == ProviderAnthropic
}

// RewriteForFailover maps a model to its OpenRouter equivalent so a run
// can continue after the primary provider rejects with an overload.
// Already-failed-over names are returned unchanged.
func RewriteForFailover(model string) string {
	if strings.HasPrefix(model, ProviderOpenRouter+"/") {
		return model
	}
	return ProviderOpenRouter + "/" + OpenRouterSlug(model)
}

// OpenRouterSlug maps a model name to the vendor-scoped slug the
// aggregator routes on, e.g. "claude-sonnet-4-20250514" becomes
// "anthropic/claude-sonnet-4-20250514".
func OpenRouterSlug(model string) string {
	model = strings.TrimPrefix(model, ProviderOpenRouter+"/")
	if strings.Contains(model, "/") {
		return model
	}
	switch ProviderFor(model) {
	case ProviderAnthropic:
		return ProviderAnthropic + "/" + model
	case ProviderOpenAI:
		return ProviderOpenAI + "/" + model
	default:
		return model
	}
}

// CostUSD computes the dollar cost of one completion, including prompt
// cache writes and reads where the model meters them.
func CostUSD(model string, promptTokens, completionTokens, cacheReadTokens, cacheWriteTokens int) float64 {
	pricing := GetModelPricing(model)
	// Cached reads are billed at the cache rate instead of the input rate.
	uncachedPrompt := promptTokens - cacheReadTokens
	if uncachedPrompt < 0 {
		uncachedPrompt = 0
	}
	cost := float64(uncachedPrompt)*pricing.Input +
		float64(completionTokens)*pricing.Output +
		float64(cacheReadTokens)*pricing.PromptCachingRead +
		float64(cacheWriteTokens)*pricing.PromptCachingWrite
	return cost
}
