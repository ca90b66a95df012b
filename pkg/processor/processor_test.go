package processor

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/invopop/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"

	"github.com/weftlabs/weft/ent"
	"github.com/weftlabs/weft/pkg/llm"
	"github.com/weftlabs/weft/pkg/models"
	"github.com/weftlabs/weft/pkg/services"
	"github.com/weftlabs/weft/pkg/tokens"
	"github.com/weftlabs/weft/pkg/tools"
)

// fakeStore records appended rows in order and hands out sequential ids.
type fakeStore struct {
	mu   sync.Mutex
	rows []models.CreateMessageRequest
	ids  []string
}

func (s *fakeStore) Append(_ context.Context, req models.CreateMessageRequest) (*ent.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, req)
	id := fmt.Sprintf("msg-%d", len(s.rows))
	s.ids = append(s.ids, id)
	return &ent.Message{ID: id}, nil
}

func (s *fakeStore) byType(msgType string) []models.CreateMessageRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.CreateMessageRequest
	for _, r := range s.rows {
		if r.Type == msgType {
			out = append(out, r)
		}
	}
	return out
}

// idOfFirst returns the id handed out for the first row of the given type.
func (s *fakeStore) idOfFirst(msgType string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.rows {
		if r.Type == msgType {
			return s.ids[i]
		}
	}
	return ""
}

type fakeBiller struct {
	mu    sync.Mutex
	calls []services.DeductUsageRequest
}

func (b *fakeBiller) DeductUsage(_ context.Context, req services.DeductUsageRequest) (float64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, req)
	return 0.01, nil
}

type stubTool struct {
	name   string
	delay  time.Duration
	result tools.Result
}

func (t *stubTool) Name() string                       { return t.name }
func (t *stubTool) Description() string                { return "test tool" }
func (t *stubTool) GenerateSchema() *jsonschema.Schema { return nil }
func (t *stubTool) TracingKVs(string) ([]attribute.KeyValue, error) {
	return nil, nil
}

func (t *stubTool) Execute(ctx context.Context, _ tools.Runtime, _ string) tools.Result {
	if t.delay > 0 {
		select {
		case <-time.After(t.delay):
		case <-ctx.Done():
			return tools.Result{Error: ctx.Err().Error()}
		}
	}
	return t.result
}

func streamOf(chunks ...llm.Chunk) <-chan llm.Chunk {
	ch := make(chan llm.Chunk, len(chunks))
	for _, c := range chunks {
		ch <- c
	}
	close(ch)
	return ch
}

func collect(out <-chan models.StreamChunk) []models.StreamChunk {
	var chunks []models.StreamChunk
	for c := range out {
		chunks = append(chunks, c)
	}
	return chunks
}

func statusChunks(chunks []models.StreamChunk, statusType string) []models.StreamChunk {
	var out []models.StreamChunk
	for _, c := range chunks {
		if c.Type == models.ChunkTypeStatus && c.Metadata["status_type"] == statusType {
			out = append(out, c)
		}
	}
	return out
}

func chunksOfType(chunks []models.StreamChunk, typ string) []models.StreamChunk {
	var out []models.StreamChunk
	for _, c := range chunks {
		if c.Type == typ {
			out = append(out, c)
		}
	}
	return out
}

func testInput(cfg Config, state *AutoContinueState) Input {
	return Input{
		ThreadID:  "thread-1",
		AgentID:   "agent-1",
		AccountID: "acct-1",
		Model:     "claude-sonnet-4-20250514",
		Runtime:   tools.Runtime{ThreadID: "thread-1"},
		Config:    cfg,
		State:     state,
	}
}

func defaultConfig() Config {
	return Config{
		NativeToolCalling: true,
		XMLToolCalling:    true,
		ExecuteTools:      true,
	}
}

func TestProcessStream_PlainText(t *testing.T) {
	store := &fakeStore{}
	biller := &fakeBiller{}
	p := New(store, biller, tools.NewRegistry(), nil)

	state := &AutoContinueState{}
	out := p.ProcessStream(context.Background(), streamOf(
		&llm.TextChunk{Content: "Hello "},
		&llm.TextChunk{Content: "world"},
		&llm.UsageChunk{PromptTokens: 10, CompletionTokens: 5},
		&llm.FinishChunk{Reason: models.FinishReasonStop},
	), testInput(defaultConfig(), state))
	chunks := collect(out)

	var text string
	for _, c := range chunksOfType(chunks, models.ChunkTypeContent) {
		text += c.Content
	}
	assert.Equal(t, "Hello world", text)

	assistants := chunksOfType(chunks, models.ChunkTypeAssistant)
	require.Len(t, assistants, 1)
	assert.Equal(t, "Hello world", assistants[0].Content)

	finishes := statusChunks(chunks, models.StatusFinish)
	require.Len(t, finishes, 1)
	assert.Equal(t, models.FinishReasonStop, finishes[0].Metadata["finish_reason"])
	assert.Equal(t, false, finishes[0].Metadata["tools_executed"])

	rows := store.byType(models.MessageTypeAssistant)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].IsLLMMessage)
	content, ok := rows[0].Content.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "assistant", content["role"])
	assert.Equal(t, "Hello world", content["content"])

	ends := store.byType(models.MessageTypeLLMResponseEnd)
	require.Len(t, ends, 1)
	end, ok := ends[0].Content.(models.ResponseEnd)
	require.True(t, ok)
	assert.Equal(t, 10, end.Usage.PromptTokens)
	assert.Equal(t, 5, end.Usage.CompletionTokens)
	assert.Equal(t, 15, end.Usage.TotalTokens)
	assert.False(t, end.Usage.Estimated)
	assert.NotEmpty(t, end.LLMResponseID)

	require.Len(t, biller.calls, 1)
	assert.Equal(t, "acct-1", biller.calls[0].AccountID)
	assert.Equal(t, 10, biller.calls[0].PromptTokens)
	assert.Equal(t, end.LLMResponseID, biller.calls[0].LLMResponseID)

	assert.False(t, state.Active)
	assert.Zero(t, state.Count)
}

func TestProcessStream_NativeToolCall(t *testing.T) {
	store := &fakeStore{}
	reg := tools.NewRegistry()
	reg.Register(&stubTool{name: "get_weather", result: tools.Result{Output: "sunny"}})
	p := New(store, nil, reg, nil)

	state := &AutoContinueState{}
	out := p.ProcessStream(context.Background(), streamOf(
		&llm.TextChunk{Content: "Checking."},
		&llm.ToolCallChunk{CallID: "call_1", Name: "get_weather", Arguments: `{"city":"SF"}`},
		&llm.UsageChunk{PromptTokens: 20, CompletionTokens: 8},
		&llm.FinishChunk{Reason: models.FinishReasonToolCalls},
	), testInput(defaultConfig(), state))
	chunks := collect(out)

	started := statusChunks(chunks, models.StatusToolStarted)
	require.Len(t, started, 1)
	assert.Equal(t, "get_weather", started[0].Metadata["function_name"])
	assert.Equal(t, "call_1", started[0].Metadata["tool_call_id"])

	toolChunks := chunksOfType(chunks, models.ChunkTypeTool)
	require.Len(t, toolChunks, 1)
	assert.Equal(t, "sunny", toolChunks[0].Content)
	assert.Equal(t, true, toolChunks[0].Metadata["success"])

	completed := statusChunks(chunks, models.StatusToolCompleted)
	assert.Len(t, completed, 1)

	// Tool result pairs with the assistant message that invoked it.
	assistantID := store.idOfFirst(models.MessageTypeAssistant)
	require.NotEmpty(t, assistantID)
	toolRows := store.byType(models.MessageTypeTool)
	require.Len(t, toolRows, 1)
	assert.Equal(t, assistantID, toolRows[0].Metadata[models.MetaAssistantMessageID])
	content, ok := toolRows[0].Content.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "tool", content["role"])
	assert.Equal(t, "call_1", content["tool_call_id"])
	assert.Equal(t, "sunny", content["content"])

	finishes := statusChunks(chunks, models.StatusFinish)
	require.Len(t, finishes, 1)
	assert.Equal(t, true, finishes[0].Metadata["tools_executed"])

	assert.True(t, state.Active)
	assert.Equal(t, 1, state.Count)
}

func TestProcessStream_XMLToolCall(t *testing.T) {
	store := &fakeStore{}
	reg := tools.NewRegistry()
	reg.Register(&stubTool{name: "web_search", result: tools.Result{Output: "three results"}})
	p := New(store, nil, reg, nil)

	text := "Let me look.\n<function_calls>\n<invoke name=\"web_search\">\n<parameter name=\"query\">weft docs</parameter>\n</invoke>\n</function_calls>"
	state := &AutoContinueState{}
	out := p.ProcessStream(context.Background(), streamOf(
		&llm.TextChunk{Content: text},
		&llm.UsageChunk{PromptTokens: 15, CompletionTokens: 30},
		&llm.FinishChunk{Reason: models.FinishReasonStop},
	), testInput(defaultConfig(), state))
	chunks := collect(out)

	started := statusChunks(chunks, models.StatusToolStarted)
	require.Len(t, started, 1)
	assert.Equal(t, "web_search", started[0].Metadata["xml_tag_name"])

	toolChunks := chunksOfType(chunks, models.ChunkTypeTool)
	require.Len(t, toolChunks, 1)
	assert.Equal(t, "three results", toolChunks[0].Content)

	// XML-parsed calls persist flat on the assistant row.
	rows := store.byType(models.MessageTypeAssistant)
	require.Len(t, rows, 1)
	content := rows[0].Content.(map[string]any)
	calls, ok := content["tool_calls"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, calls, 1)
	assert.Equal(t, "web_search", calls[0]["name"])
	assert.Equal(t, `{"query":"weft docs"}`, calls[0]["arguments"])
	assert.Equal(t, "web_search", calls[0]["xml_tag_name"])

	// Executed tools continue the loop even though the provider said stop.
	assert.True(t, state.Active)
	assert.Equal(t, 1, state.Count)
}

func TestProcessStream_LengthContinuation(t *testing.T) {
	store := &fakeStore{}
	biller := &fakeBiller{}
	p := New(store, biller, tools.NewRegistry(), nil)
	state := &AutoContinueState{}
	in := testInput(defaultConfig(), state)

	chunks := collect(p.ProcessStream(context.Background(), streamOf(
		&llm.TextChunk{Content: "part one, "},
		&llm.UsageChunk{PromptTokens: 5, CompletionTokens: 100},
		&llm.FinishChunk{Reason: models.FinishReasonLength},
	), in))

	// The truncated generation streams its content but is not finalized:
	// no assistant chunk, and the length finish chunk is dropped.
	assert.Empty(t, chunksOfType(chunks, models.ChunkTypeAssistant))
	assert.Empty(t, statusChunks(chunks, models.StatusFinish))
	assert.Empty(t, store.byType(models.MessageTypeAssistant))

	assert.True(t, state.Active)
	assert.Equal(t, 1, state.Count)
	assert.Equal(t, "part one, ", state.AccumulatedContent)

	// Each provider call is billed, including truncated ones.
	require.Len(t, store.byType(models.MessageTypeLLMResponseEnd), 1)
	require.Len(t, biller.calls, 1)

	// The resumed completion persists the full concatenation.
	chunks = collect(p.ProcessStream(context.Background(), streamOf(
		&llm.TextChunk{Content: "part two."},
		&llm.UsageChunk{PromptTokens: 110, CompletionTokens: 10},
		&llm.FinishChunk{Reason: models.FinishReasonStop},
	), in))

	assistants := chunksOfType(chunks, models.ChunkTypeAssistant)
	require.Len(t, assistants, 1)
	assert.Equal(t, "part one, part two.", assistants[0].Content)

	rows := store.byType(models.MessageTypeAssistant)
	require.Len(t, rows, 1)
	assert.Equal(t, "part one, part two.", rows[0].Content.(map[string]any)["content"])

	assert.False(t, state.Active)
	assert.Empty(t, state.AccumulatedContent)
	assert.Len(t, biller.calls, 2)
}

func TestProcessStream_TerminatingTool(t *testing.T) {
	store := &fakeStore{}
	reg := tools.NewRegistry()
	reg.Register(tools.NewAskTool())
	p := New(store, nil, reg, nil)

	text := "<function_calls>\n<invoke name=\"ask\">\n<parameter name=\"text\">Deploy to prod?</parameter>\n</invoke>\n</function_calls>"
	state := &AutoContinueState{}
	chunks := collect(p.ProcessStream(context.Background(), streamOf(
		&llm.TextChunk{Content: text},
		&llm.FinishChunk{Reason: models.FinishReasonStop},
	), testInput(defaultConfig(), state)))

	toolChunks := chunksOfType(chunks, models.ChunkTypeTool)
	require.Len(t, toolChunks, 1)
	assert.Equal(t, true, toolChunks[0].Metadata["agent_should_terminate"])

	finishes := statusChunks(chunks, models.StatusFinish)
	require.Len(t, finishes, 1)
	assert.Equal(t, true, finishes[0].Metadata["agent_should_terminate"])

	assert.False(t, state.Active, "terminating tool must stop the loop even though a tool executed")
}

func TestProcessStream_TerminatingTag(t *testing.T) {
	store := &fakeStore{}
	p := New(store, nil, tools.NewRegistry(), nil)

	state := &AutoContinueState{}
	chunks := collect(p.ProcessStream(context.Background(), streamOf(
		&llm.TextChunk{Content: "All done. <complete>Shipped.</complete>"},
		&llm.FinishChunk{Reason: models.FinishReasonStop},
	), testInput(defaultConfig(), state)))

	finishes := statusChunks(chunks, models.StatusFinish)
	require.Len(t, finishes, 1)
	assert.Equal(t, true, finishes[0].Metadata["agent_should_terminate"])
	assert.False(t, state.Active)
}

func TestProcessStream_XMLToolLimit(t *testing.T) {
	store := &fakeStore{}
	reg := tools.NewRegistry()
	reg.Register(&stubTool{name: "tool_a", result: tools.Result{Output: "a"}})
	reg.Register(&stubTool{name: "tool_b", result: tools.Result{Output: "b"}})
	p := New(store, nil, reg, nil)

	text := "<function_calls>\n<invoke name=\"tool_a\">\n</invoke>\n<invoke name=\"tool_b\">\n</invoke>\n</function_calls>"
	cfg := defaultConfig()
	cfg.MaxXMLToolCalls = 1

	state := &AutoContinueState{}
	chunks := collect(p.ProcessStream(context.Background(), streamOf(
		&llm.TextChunk{Content: text},
		&llm.FinishChunk{Reason: models.FinishReasonStop},
	), testInput(cfg, state)))

	toolChunks := chunksOfType(chunks, models.ChunkTypeTool)
	require.Len(t, toolChunks, 1)
	assert.Equal(t, "a", toolChunks[0].Content)

	finishes := statusChunks(chunks, models.StatusFinish)
	require.Len(t, finishes, 1)
	assert.Equal(t, models.FinishReasonXMLToolLimit, finishes[0].Metadata["finish_reason"])

	// Hitting the limit must not auto-continue: the model is looping.
	assert.False(t, state.Active)
}

func TestProcessStream_ProviderError(t *testing.T) {
	store := &fakeStore{}
	biller := &fakeBiller{}
	p := New(store, biller, tools.NewRegistry(), nil)

	state := &AutoContinueState{Active: true}
	chunks := collect(p.ProcessStream(context.Background(), streamOf(
		&llm.TextChunk{Content: "partial"},
		&llm.ErrorChunk{Message: "anthropic stream: overloaded_error", Code: "529", Retryable: true},
	), testInput(defaultConfig(), state)))

	errors := statusChunks(chunks, models.StatusError)
	require.Len(t, errors, 1)
	assert.Equal(t, "anthropic stream: overloaded_error", errors[0].Metadata["message"])
	assert.Equal(t, true, errors[0].Metadata["retryable"])
	assert.True(t, errors[0].IsTerminal())

	assert.False(t, state.Active)
	assert.Empty(t, store.byType(models.MessageTypeAssistant))
	assert.Empty(t, store.byType(models.MessageTypeLLMResponseEnd))
	assert.Empty(t, biller.calls)

	statuses := store.byType(models.MessageTypeStatus)
	require.Len(t, statuses, 1)
	content := statuses[0].Content.(map[string]any)
	assert.Equal(t, models.StatusError, content["status_type"])
}

func TestProcessStream_ResultsEmitInInvocationOrder(t *testing.T) {
	store := &fakeStore{}
	reg := tools.NewRegistry()
	reg.Register(&stubTool{name: "slow", delay: 80 * time.Millisecond, result: tools.Result{Output: "slow-out"}})
	reg.Register(&stubTool{name: "fast", result: tools.Result{Output: "fast-out"}})
	p := New(store, nil, reg, nil)

	state := &AutoContinueState{}
	chunks := collect(p.ProcessStream(context.Background(), streamOf(
		&llm.ToolCallChunk{CallID: "call_1", Name: "slow", Arguments: "{}"},
		&llm.ToolCallChunk{CallID: "call_2", Name: "fast", Arguments: "{}"},
		&llm.FinishChunk{Reason: models.FinishReasonToolCalls},
	), testInput(defaultConfig(), state)))

	toolChunks := chunksOfType(chunks, models.ChunkTypeTool)
	require.Len(t, toolChunks, 2)
	assert.Equal(t, "slow-out", toolChunks[0].Content, "results must emit in invocation order, not completion order")
	assert.Equal(t, "fast-out", toolChunks[1].Content)

	// Persisted rows follow the same order.
	toolRows := store.byType(models.MessageTypeTool)
	require.Len(t, toolRows, 2)
	assert.Equal(t, "call_1", toolRows[0].Content.(map[string]any)["tool_call_id"])
	assert.Equal(t, "call_2", toolRows[1].Content.(map[string]any)["tool_call_id"])
}

func TestProcessStream_UnknownTool(t *testing.T) {
	store := &fakeStore{}
	p := New(store, nil, tools.NewRegistry(), nil)

	state := &AutoContinueState{}
	chunks := collect(p.ProcessStream(context.Background(), streamOf(
		&llm.ToolCallChunk{CallID: "call_1", Name: "nope", Arguments: "{}"},
		&llm.FinishChunk{Reason: models.FinishReasonToolCalls},
	), testInput(defaultConfig(), state)))

	toolChunks := chunksOfType(chunks, models.ChunkTypeTool)
	require.Len(t, toolChunks, 1)
	assert.Equal(t, "Error: unknown tool: nope", toolChunks[0].Content)
	assert.Equal(t, false, toolChunks[0].Metadata["success"])

	failed := statusChunks(chunks, models.StatusToolFailed)
	assert.Len(t, failed, 1)
}

func TestProcessStream_EstimatedUsage(t *testing.T) {
	store := &fakeStore{}
	p := New(store, nil, tools.NewRegistry(), nil)

	text := "a response with no usage frame from the provider"
	state := &AutoContinueState{}
	collect(p.ProcessStream(context.Background(), streamOf(
		&llm.TextChunk{Content: text},
		&llm.FinishChunk{Reason: models.FinishReasonStop},
	), testInput(defaultConfig(), state)))

	ends := store.byType(models.MessageTypeLLMResponseEnd)
	require.Len(t, ends, 1)
	end := ends[0].Content.(models.ResponseEnd)
	assert.True(t, end.Usage.Estimated)
	assert.Equal(t, tokens.EstimateText(text), end.Usage.CompletionTokens)
}
