// Package tokens provides advisory token counts for prepared
// conversations. Counts drive compression decisions, never billing, so
// the counter prefers the provider's exact endpoint and degrades to a
// character heuristic without surfacing errors.
package tokens

import (
	"context"
	"log/slog"

	"github.com/weftlabs/weft/pkg/llm"
	"github.com/weftlabs/weft/pkg/models"
	"github.com/weftlabs/weft/pkg/promptcache"
)

// AnthropicCounter is the provider-side exact counting surface.
// *llm.AnthropicClient implements it.
type AnthropicCounter interface {
	CountTokens(ctx context.Context, model, system string, messages []models.PreparedMessage) (int, error)
}

// Counter resolves token counts per model family.
type Counter struct {
	anthropic AnthropicCounter
	logger    *slog.Logger
}

// NewCounter creates a counter. anthropic may be nil when no Anthropic
// key is configured; all counts then use the heuristic.
func NewCounter(anthropic AnthropicCounter) *Counter {
	return &Counter{
		anthropic: anthropic,
		logger:    slog.With("component", "tokens"),
	}
}

// Count returns the token count for the conversation. Anthropic-family
// models use the count-tokens endpoint when available; any failure
// degrades silently to the heuristic. applyCaching routes the messages
// through the prompt-cache layer first so the counted shape matches what
// a generation would bill.
func (c *Counter) Count(ctx context.Context, model string, messages []models.PreparedMessage, system string, applyCaching bool) (int, error) {
	if c.anthropic != nil && llm.IsAnthropicModel(model) && len(messages) > 0 {
		counted := messages
		countedSystem := system
		if applyCaching {
			prepared := promptcache.Apply(messages, system, model)
			counted = prepared.Messages
			countedSystem = prepared.System
		}
		count, err := c.anthropic.CountTokens(ctx, model, countedSystem, counted)
		if err == nil {
			return count, nil
		}
		c.logger.Debug("count-tokens endpoint failed, falling back to heuristic",
			"model", model, "error", err)
	}
	return EstimateMessages(messages, system), nil
}
