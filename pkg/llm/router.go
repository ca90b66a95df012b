package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/weftlabs/weft/pkg/config"
)

// Sentinel errors for provider routing.
var (
	ErrNoProviders           = errors.New("no LLM providers configured")
	ErrProviderNotConfigured = errors.New("no API key configured for provider")
)

// Router dispatches Generate calls to the provider that serves the
// requested model. It implements LLMClient so callers stay
// provider-agnostic.
type Router struct {
	clients map[string]LLMClient
	logger  *slog.Logger
}

// NewRouter builds provider clients from the API keys named in the
// config. At least one provider key must be present.
func NewRouter(cfg *config.LLMConfig) (*Router, error) {
	r := &Router{
		clients: make(map[string]LLMClient),
		logger:  slog.With("component", "llm.router"),
	}
	if key := os.Getenv(cfg.AnthropicAPIKeyEnv); key != "" {
		r.clients[ProviderAnthropic] = NewAnthropicClient(key)
	}
	if key := os.Getenv(cfg.OpenAIAPIKeyEnv); key != "" {
		r.clients[ProviderOpenAI] = NewOpenAIClient(key)
	}
	if key := os.Getenv(cfg.OpenRouterAPIKeyEnv); key != "" {
		r.clients[ProviderOpenRouter] = NewOpenRouterClient(key)
	}
	if len(r.clients) == 0 {
		return nil, ErrNoProviders
	}
	providers := make([]string, 0, len(r.clients))
	for p := range r.clients {
		providers = append(providers, p)
	}
	r.logger.Info("LLM router initialized", "providers", providers)
	return r, nil
}

// Generate routes to the provider resolved from the model name.
func (r *Router) Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error) {
	provider := ProviderFor(input.Model)
	client, ok := r.clients[provider]
	if !ok {
		return nil, fmt.Errorf("%w: %s (model %s)", ErrProviderNotConfigured, provider, input.Model)
	}
	return client.Generate(ctx, input)
}

// Anthropic returns the direct Anthropic client if configured. The token
// counter uses it for the count-tokens endpoint.
func (r *Router) Anthropic() (*AnthropicClient, bool) {
	client, ok := r.clients[ProviderAnthropic].(*AnthropicClient)
	return client, ok
}

// HasProvider reports whether a key was configured for the provider.
func (r *Router) HasProvider(provider string) bool {
	_, ok := r.clients[provider]
	return ok
}

// Close shuts down all provider clients.
func (r *Router) Close() error {
	var errs []error
	for provider, client := range r.clients {
		if err := client.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", provider, err))
		}
	}
	return errors.Join(errs...)
}

// overloadMarkers are substrings of provider errors that indicate
// transient capacity exhaustion rather than a bad request.
var overloadMarkers = []string{
	"overloaded",
	"rate limit",
	"rate_limit",
	"429",
	"529",
	"503",
	"service unavailable",
	"capacity",
}

// IsOverloadedError reports whether the error looks like provider
// overload, which makes the call eligible for aggregator failover.
func IsOverloadedError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range overloadMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
