// Package contextmgr keeps conversations inside the model's effective
// context window. Compression is tiered and deterministic: the same
// message list always compresses to the same bytes, so provider prompt
// caches stay warm across turns. Full message content always survives in
// the store; only the LLM view shrinks.
package contextmgr

import (
	"context"
	"log/slog"

	"github.com/weftlabs/weft/pkg/llm"
	"github.com/weftlabs/weft/pkg/models"
	"github.com/weftlabs/weft/pkg/tokens"
)

const (
	// keepToolResults is how many trailing tool-result messages stay
	// uncompressed in tier 1.
	keepToolResults = 5
	// keepUserMessages / keepAssistantMessages bound tiers 2 and 3.
	keepUserMessages      = 10
	keepAssistantMessages = 10

	// defaultTokenThreshold is the per-message size gate for secondary
	// compression; recursion halves it.
	defaultTokenThreshold = 500
	defaultMaxIterations  = 5

	// maxMessages caps list length independently of tokens.
	maxMessages = 320

	// omissionBatch and minKeep drive the last-resort removal loop.
	omissionBatch = 10
	minKeep       = 10
)

// TokenCounter measures a conversation. *tokens.Counter implements it.
type TokenCounter interface {
	Count(ctx context.Context, model string, messages []models.PreparedMessage, system string, applyCaching bool) (int, error)
}

// Store persists compression side effects. Only the LLM-view sidecar and
// the thread cache flag are ever written; stored content is immutable.
type Store interface {
	MarkMessageCompressed(ctx context.Context, messageID, compressedContent string) error
	FlagCacheRebuild(ctx context.Context, threadID string) error
}

// Manager runs the compression pipeline.
type Manager struct {
	counter TokenCounter
	store   Store
	logger  *slog.Logger
}

// NewManager creates a Manager. store may be nil for read-only use
// (compression then happens in-memory only).
func NewManager(counter TokenCounter, store Store) *Manager {
	return &Manager{
		counter: counter,
		store:   store,
		logger:  slog.With("component", "contextmgr"),
	}
}

// CompressInput carries one turn's conversation and its measurement
// context.
type CompressInput struct {
	ThreadID     string
	Model        string
	Messages     []models.PreparedMessage
	SystemPrompt string

	// ActualTotalTokens is the provider-reported size of the previous
	// request. Zero means unknown; the counter measures instead.
	ActualTotalTokens int
}

// Result is the compressed LLM view of the conversation.
type Result struct {
	Messages   []models.PreparedMessage
	TokenCount int
	// Compressed reports whether any message was substituted this call,
	// which forces a prompt-cache rebuild downstream.
	Compressed bool
}

// Budget returns the usable token budget for a model.
func Budget(model string) int {
	return llm.EffectiveBudget(llm.ContextWindow(model))
}

// Target is the post-compression goal: well under budget so the next few
// turns do not immediately recompress.
func Target(budget int) int {
	return budget * 6 / 10
}

// Compress fits the conversation into the model's budget. The returned
// slice is always a copy; the caller's messages are never mutated.
func (m *Manager) Compress(ctx context.Context, in CompressInput) (Result, error) {
	state := &compressState{
		threadID: in.ThreadID,
		model:    in.Model,
		system:   in.SystemPrompt,
		budget:   Budget(in.Model),
	}
	messages := stripToolExecutionArguments(in.Messages)

	out := m.compress(ctx, state, messages, in.ActualTotalTokens, defaultTokenThreshold, defaultMaxIterations)

	if state.persisted > 0 && m.store != nil && in.ThreadID != "" {
		if err := m.store.FlagCacheRebuild(ctx, in.ThreadID); err != nil {
			m.logger.Warn("failed to flag cache rebuild", "thread_id", in.ThreadID, "error", err)
		}
	}
	return Result{Messages: out, TokenCount: state.lastCount, Compressed: state.substituted}, nil
}

type compressState struct {
	threadID  string
	model     string
	system    string
	budget    int
	lastCount int
	// substituted marks any in-memory replacement; persisted counts
	// successful sidecar writes.
	substituted bool
	persisted   int
}

func (m *Manager) compress(ctx context.Context, st *compressState, messages []models.PreparedMessage, actualTotal, threshold, iterations int) []models.PreparedMessage {
	count := actualTotal
	if count <= 0 {
		count = m.measure(ctx, st, messages)
	} else {
		st.lastCount = count
	}
	if count <= st.budget {
		return m.middleOutCap(messages)
	}

	target := Target(st.budget)

	messages = m.compressTier(ctx, st, messages, tierToolResults)
	count = m.measure(ctx, st, messages)

	if count > target {
		messages = m.compressTier(ctx, st, messages, tierUserMessages)
		count = m.measure(ctx, st, messages)
	}
	if count > target {
		messages = m.compressTier(ctx, st, messages, tierAssistantMessages)
		count = m.measure(ctx, st, messages)
	}
	if count > target {
		messages = m.secondaryCompress(st, messages, threshold)
	}

	messages = m.middleOutCap(messages)
	count = m.measure(ctx, st, messages)

	if count > st.budget {
		if iterations > 1 {
			m.logger.Debug("compression recursing",
				"thread_id", st.threadID, "tokens", count, "budget", st.budget, "threshold", threshold/2)
			return m.compress(ctx, st, messages, 0, threshold/2, iterations-1)
		}
		return m.omitMessages(ctx, st, messages)
	}
	return messages
}

func (m *Manager) measure(ctx context.Context, st *compressState, messages []models.PreparedMessage) int {
	count, err := m.counter.Count(ctx, st.model, messages, st.system, true)
	if err != nil {
		m.logger.Warn("token count failed, using heuristic", "model", st.model, "error", err)
		count = tokens.EstimateMessages(messages, st.system)
	}
	st.lastCount = count
	return count
}

// tierSpec selects which messages a tier compresses and how.
type tierSpec struct {
	name     string
	keep     int
	matches  func(*models.PreparedMessage) bool
	sentinel func(*models.PreparedMessage) (string, bool)
}

var tierToolResults = tierSpec{
	name: "tool_results",
	keep: keepToolResults,
	matches: func(m *models.PreparedMessage) bool {
		return m.IsToolResult()
	},
	sentinel: func(m *models.PreparedMessage) (string, bool) {
		return toolResultSentinel(m.MessageID), true
	},
}

var tierUserMessages = tierSpec{
	name:     "user_messages",
	keep:     keepUserMessages,
	matches:  func(m *models.PreparedMessage) bool { return m.Role == "user" },
	sentinel: truncatedContentSentinel,
}

var tierAssistantMessages = tierSpec{
	name:     "assistant_messages",
	keep:     keepAssistantMessages,
	matches:  func(m *models.PreparedMessage) bool { return m.Role == "assistant" },
	sentinel: truncatedContentSentinel,
}

// compressTier replaces all but the last spec.keep matching messages
// with their sentinel, persisting the sidecar as it goes.
func (m *Manager) compressTier(ctx context.Context, st *compressState, messages []models.PreparedMessage, spec tierSpec) []models.PreparedMessage {
	out := make([]models.PreparedMessage, len(messages))
	copy(out, messages)

	total := 0
	for i := range out {
		if spec.matches(&out[i]) {
			total++
		}
	}
	if total <= spec.keep {
		return out
	}

	compressible := total - spec.keep
	seen := 0
	for i := range out {
		if seen >= compressible {
			break
		}
		msg := &out[i]
		if !spec.matches(msg) {
			continue
		}
		seen++
		if msg.Compressed || msg.MessageID == "" {
			continue
		}
		sentinel, ok := spec.sentinel(msg)
		if !ok {
			continue
		}
		msg.Content = sentinel
		msg.Compressed = true
		st.substituted = true
		m.persistSidecar(ctx, st, msg.MessageID, sentinel, spec.name)
	}
	return out
}

func (m *Manager) persistSidecar(ctx context.Context, st *compressState, messageID, sentinel, tier string) {
	if m.store == nil {
		return
	}
	if err := m.store.MarkMessageCompressed(ctx, messageID, sentinel); err != nil {
		m.logger.Warn("failed to persist compressed content",
			"message_id", messageID, "tier", tier, "error", err)
		return
	}
	st.persisted++
}

// secondaryCompress shrinks individually oversized messages in-memory.
// Messages inside the per-role keep windows stay recent, so they keep
// their head and tail; older ones keep only a prefix.
func (m *Manager) secondaryCompress(st *compressState, messages []models.PreparedMessage, threshold int) []models.PreparedMessage {
	out := make([]models.PreparedMessage, len(messages))
	copy(out, messages)

	recent := recentIndexes(out)
	for i := range out {
		msg := &out[i]
		if msg.Compressed {
			continue
		}
		content, ok := msg.Content.(string)
		if !ok {
			continue
		}
		if tokens.EstimateText(content) <= threshold {
			continue
		}
		if recent[i] {
			msg.Content = safeTruncate(content, 2*st.budget)
		} else {
			msg.Content = truncateToPrefix(content, 3*threshold, msg.MessageID)
		}
		if msg.Content != content {
			st.substituted = true
		}
	}
	return out
}

// recentIndexes marks the positions each tier would keep uncompressed.
func recentIndexes(messages []models.PreparedMessage) map[int]bool {
	recent := make(map[int]bool)
	counts := map[string]int{}
	for i := len(messages) - 1; i >= 0; i-- {
		msg := &messages[i]
		var class string
		var keep int
		switch {
		case msg.IsToolResult():
			class, keep = "tool", keepToolResults
		case msg.Role == "user":
			class, keep = "user", keepUserMessages
		case msg.Role == "assistant":
			class, keep = "assistant", keepAssistantMessages
		default:
			continue
		}
		if counts[class] < keep {
			recent[i] = true
			counts[class]++
		}
	}
	return recent
}

// middleOutCap bounds list length by dropping the middle.
func (m *Manager) middleOutCap(messages []models.PreparedMessage) []models.PreparedMessage {
	if len(messages) <= maxMessages {
		return messages
	}
	keep := maxMessages / 2
	out := make([]models.PreparedMessage, 0, maxMessages)
	out = append(out, messages[:keep]...)
	out = append(out, messages[len(messages)-keep:]...)
	m.logger.Debug("middle-out cap applied", "before", len(messages), "after", len(out))
	return out
}

// omitMessages is the last resort: drop batches from the middle until
// the conversation fits or almost nothing remains.
func (m *Manager) omitMessages(ctx context.Context, st *compressState, messages []models.PreparedMessage) []models.PreparedMessage {
	out := make([]models.PreparedMessage, len(messages))
	copy(out, messages)

	count := st.lastCount
	for count > st.budget {
		batch := omissionBatch
		if len(out)-batch < minKeep {
			batch = len(out) - minKeep
		}
		if batch <= 0 {
			m.logger.Warn("conversation still over budget after omission",
				"thread_id", st.threadID, "tokens", count, "budget", st.budget, "messages", len(out))
			break
		}
		start := 0
		if len(out) >= 3*omissionBatch {
			start = (len(out) - batch) / 2
		}
		out = append(out[:start], out[start+batch:]...)
		count = m.measure(ctx, st, out)
	}
	st.substituted = true
	return out
}
