package runner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/invopop/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"

	"github.com/weftlabs/weft/ent"
	"github.com/weftlabs/weft/ent/agentrun"
	"github.com/weftlabs/weft/pkg/config"
	"github.com/weftlabs/weft/pkg/contextmgr"
	"github.com/weftlabs/weft/pkg/llm"
	"github.com/weftlabs/weft/pkg/models"
	"github.com/weftlabs/weft/pkg/processor"
	"github.com/weftlabs/weft/pkg/services"
	"github.com/weftlabs/weft/pkg/tools"
)

// scripted is one canned Generate outcome.
type scripted struct {
	chunks []llm.Chunk
	err    error
}

// fakeLLM plays back scripted responses in call order and records the
// inputs it was called with.
type fakeLLM struct {
	mu     sync.Mutex
	script []scripted
	inputs []*llm.GenerateInput
}

func (f *fakeLLM) Generate(_ context.Context, in *llm.GenerateInput) (<-chan llm.Chunk, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	idx := len(f.inputs)
	f.inputs = append(f.inputs, in)
	if idx >= len(f.script) {
		return nil, fmt.Errorf("unscripted generate call %d", idx)
	}
	s := f.script[idx]
	if s.err != nil {
		return nil, s.err
	}
	ch := make(chan llm.Chunk, len(s.chunks))
	for _, c := range s.chunks {
		ch <- c
	}
	close(ch)
	return ch, nil
}

func (f *fakeLLM) Close() error { return nil }

type fakeStore struct {
	mu   sync.Mutex
	rows []models.CreateMessageRequest
}

func (s *fakeStore) Append(_ context.Context, req models.CreateMessageRequest) (*ent.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, req)
	return &ent.Message{ID: fmt.Sprintf("msg-%d", len(s.rows))}, nil
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

type fakeHistory struct {
	mu       sync.Mutex
	messages []models.PreparedMessage
	latest   map[string]*ent.Message
}

func (h *fakeHistory) ListLLMMessages(context.Context, string) ([]models.PreparedMessage, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]models.PreparedMessage, len(h.messages))
	copy(out, h.messages)
	return out, nil
}

func (h *fakeHistory) LatestOfType(_ context.Context, _, msgType string) (*ent.Message, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if m, ok := h.latest[msgType]; ok {
		return m, nil
	}
	return nil, services.ErrNotFound
}

type fakeThreads struct {
	mu      sync.Mutex
	rebuild bool
	cleared int
}

func (f *fakeThreads) CacheNeedsRebuild(context.Context, string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rebuild, nil
}

func (f *fakeThreads) ClearCacheRebuild(context.Context, string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rebuild = false
	f.cleared++
	return nil
}

func (f *fakeThreads) clears() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cleared
}

type fakeCredits struct {
	mu    sync.Mutex
	deny  bool
	calls int
}

func (c *fakeCredits) CheckAndReserveCredits(context.Context, string) (bool, string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	if c.deny {
		return false, "trial credits spent", nil
	}
	return true, "reservation-1", nil
}

func (c *fakeCredits) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

// fakeRuns plays back run statuses per read, then reports running forever.
type fakeRuns struct {
	mu       sync.Mutex
	statuses []agentrun.Status
	reads    int
}

func (r *fakeRuns) GetRunStatus(context.Context, string) (agentrun.Status, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := r.reads
	r.reads++
	if idx < len(r.statuses) {
		return r.statuses[idx], nil
	}
	return agentrun.StatusRunning, nil
}

type spyCompressor struct {
	mu    sync.Mutex
	calls []contextmgr.CompressInput
}

func (c *spyCompressor) Compress(_ context.Context, in contextmgr.CompressInput) (contextmgr.Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, in)
	return contextmgr.Result{Messages: in.Messages, TokenCount: len(in.Messages)}, nil
}

func (c *spyCompressor) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

// echoTool gives tool-call turns something real to execute.
type echoTool struct{}

func (echoTool) Name() string                        { return "echo" }
func (echoTool) Description() string                 { return "echoes" }
func (echoTool) GenerateSchema() *jsonschema.Schema { return nil }
func (echoTool) TracingKVs(string) ([]attribute.KeyValue, error) {
	return nil, nil
}

func (echoTool) Execute(context.Context, tools.Runtime, string) tools.Result {
	return tools.Result{Output: "echoed"}
}

type harness struct {
	llm        *fakeLLM
	store      *fakeStore
	history    *fakeHistory
	threads    *fakeThreads
	credits    *fakeCredits
	runs       *fakeRuns
	compressor *spyCompressor
	runner     *Runner
}

func newHarness(cfg *config.LLMConfig, script ...scripted) *harness {
	reg := tools.NewRegistry()
	reg.Register(echoTool{})

	h := &harness{
		llm:        &fakeLLM{script: script},
		store:      &fakeStore{},
		history:    &fakeHistory{latest: map[string]*ent.Message{}},
		threads:    &fakeThreads{},
		credits:    &fakeCredits{},
		runs:       &fakeRuns{},
		compressor: &spyCompressor{},
	}
	h.history.messages = []models.PreparedMessage{{Role: "user", Content: "Tell me a story"}}

	if cfg == nil {
		cfg = config.DefaultLLMConfig()
	}
	h.runner = New(Deps{
		LLM:        h.llm,
		Processor:  processor.New(h.store, nil, reg, nil),
		History:    h.history,
		Threads:    h.threads,
		Credits:    h.credits,
		Runs:       h.runs,
		Compressor: h.compressor,
		Registry:   reg,
		Config:     cfg,
	})
	return h
}

func runAndCollect(t *testing.T, h *harness, req Request) []models.StreamChunk {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var out []models.StreamChunk
	for c := range h.runner.RunThread(ctx, req) {
		out = append(out, c)
	}
	require.NoError(t, ctx.Err(), "run did not finish in time")
	return out
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

func testRequest() Request {
	return Request{
		RunID:        "run-1",
		ThreadID:     "thread-1",
		AgentID:      "agent-1",
		AccountID:    "acct-1",
		Model:        "claude-sonnet-4-20250514",
		SystemPrompt: "You are a helpful assistant.",
		Runtime:      tools.Runtime{ThreadID: "thread-1"},
		Processing: processor.Config{
			NativeToolCalling: true,
			XMLToolCalling:    true,
			ExecuteTools:      true,
		},
	}
}

func TestRunThread_SinglePass(t *testing.T) {
	h := newHarness(nil, scripted{chunks: []llm.Chunk{
		&llm.TextChunk{Content: "Hello there."},
		&llm.UsageChunk{PromptTokens: 12, CompletionTokens: 4},
		&llm.FinishChunk{Reason: "stop"},
	}})

	chunks := runAndCollect(t, h, testRequest())

	require.Len(t, h.llm.inputs, 1)
	in := h.llm.inputs[0]
	assert.Equal(t, "claude-sonnet-4-20250514", in.Model)
	assert.Equal(t, "You are a helpful assistant.", in.System)
	assert.True(t, in.SystemCacheControl, "anthropic system prompt gets a cache breakpoint")
	require.Len(t, in.Messages, 1)
	assert.Equal(t, "user", in.Messages[0].Role)
	assert.True(t, in.Messages[0].CacheControl, "trailing user turn gets a cache breakpoint")
	require.Len(t, in.Tools, 1)
	assert.Equal(t, "echo", in.Tools[0].Name)

	require.NotEmpty(t, chunks)
	assert.Equal(t, models.ChunkTypeContent, chunks[0].Type)
	assert.Equal(t, "Hello there.", chunks[0].Content)

	finishes := statusChunks(chunks, models.StatusFinish)
	require.Len(t, finishes, 1)
	assert.Equal(t, models.FinishReasonStop, finishes[0].Metadata["finish_reason"])

	assert.Equal(t, 1, h.credits.count())
	assert.Equal(t, 1, h.compressor.count(), "no prior usage row, so the conversation is measured")
	assert.Len(t, h.store.byType(models.MessageTypeAssistant), 1)
}

func TestRunThread_FastPathSkipsCompression(t *testing.T) {
	endContent := func(model string, total int) string {
		raw, err := json.Marshal(models.ResponseEnd{
			Usage:         models.Usage{PromptTokens: total - 50, CompletionTokens: 50, TotalTokens: total},
			Model:         model,
			LLMResponseID: "resp-1",
		})
		require.NoError(t, err)
		return string(raw)
	}
	textTurn := scripted{chunks: []llm.Chunk{
		&llm.TextChunk{Content: "ok"},
		&llm.FinishChunk{Reason: "stop"},
	}}

	t.Run("same model within budget skips", func(t *testing.T) {
		h := newHarness(nil, textTurn)
		h.history.latest[models.MessageTypeLLMResponseEnd] = &ent.Message{
			ID:      "m-end",
			Content: endContent("claude-sonnet-4-20250514", 1200),
		}
		h.history.latest[models.MessageTypeUser] = &ent.Message{
			ID:      "m-user",
			Content: `{"role":"user","content":"hi"}`,
		}

		runAndCollect(t, h, testRequest())

		assert.Equal(t, 0, h.compressor.count())
		require.Len(t, h.llm.inputs, 1)
	})

	t.Run("model change measures again", func(t *testing.T) {
		h := newHarness(nil, textTurn)
		h.history.latest[models.MessageTypeLLMResponseEnd] = &ent.Message{
			ID:      "m-end",
			Content: endContent("gpt-4o", 1200),
		}

		runAndCollect(t, h, testRequest())

		require.Equal(t, 1, h.compressor.count())
		assert.Equal(t, 0, h.compressor.calls[0].ActualTotalTokens,
			"a different model's total is not comparable")
	})

	t.Run("over budget compresses with the known total", func(t *testing.T) {
		total := contextmgr.Budget("claude-sonnet-4-20250514") + 5000
		h := newHarness(nil, textTurn)
		h.history.latest[models.MessageTypeLLMResponseEnd] = &ent.Message{
			ID:      "m-end",
			Content: endContent("claude-sonnet-4-20250514", total),
		}

		runAndCollect(t, h, testRequest())

		require.Equal(t, 1, h.compressor.count())
		assert.Equal(t, total, h.compressor.calls[0].ActualTotalTokens)
	})
}

func TestRunThread_InsufficientCredits(t *testing.T) {
	h := newHarness(nil)
	h.credits.deny = true

	chunks := runAndCollect(t, h, testRequest())

	require.Len(t, chunks, 1)
	stopped := statusChunks(chunks, models.StatusStopped)
	require.Len(t, stopped, 1)
	msg, _ := stopped[0].Metadata["message"].(string)
	// The gate's own reason must reach the user, not boilerplate.
	assert.Equal(t, "Insufficient credits: trial credits spent", msg)
	assert.Empty(t, h.llm.inputs)
}

func TestRunThread_StopRequestEndsLoop(t *testing.T) {
	h := newHarness(nil, scripted{chunks: []llm.Chunk{
		&llm.ToolCallChunk{CallID: "call-1", Name: "echo", Arguments: `{}`},
		&llm.FinishChunk{Reason: models.FinishReasonToolCalls},
	}})
	h.runs.statuses = []agentrun.Status{agentrun.StatusStopped}

	chunks := runAndCollect(t, h, testRequest())

	require.Len(t, h.llm.inputs, 1, "stop lands before the next provider call")
	stopped := statusChunks(chunks, models.StatusStopped)
	require.Len(t, stopped, 1)
	assert.Equal(t, "run stopped", stopped[0].Metadata["message"])
}

func TestRunThread_FailoverOnOverloadedStart(t *testing.T) {
	h := newHarness(nil,
		scripted{err: errors.New("anthropic: 529 overloaded_error")},
		scripted{chunks: []llm.Chunk{
			&llm.TextChunk{Content: "recovered"},
			&llm.FinishChunk{Reason: "stop"},
		}},
	)

	chunks := runAndCollect(t, h, testRequest())

	require.Len(t, h.llm.inputs, 2)
	assert.Equal(t, "claude-sonnet-4-20250514", h.llm.inputs[0].Model)
	assert.Equal(t, llm.RewriteForFailover("claude-sonnet-4-20250514"), h.llm.inputs[1].Model)
	assert.Empty(t, statusChunks(chunks, models.StatusError))
	assert.Equal(t, 2, h.credits.count(), "each attempt re-reserves credits")
}

func TestRunThread_FailoverOnRetryableStreamError(t *testing.T) {
	h := newHarness(nil,
		scripted{chunks: []llm.Chunk{
			&llm.TextChunk{Content: "partial"},
			&llm.ErrorChunk{Message: "Overloaded", Code: "overloaded_error", Retryable: true},
		}},
		scripted{chunks: []llm.Chunk{
			&llm.TextChunk{Content: "recovered"},
			&llm.FinishChunk{Reason: "stop"},
		}},
	)

	chunks := runAndCollect(t, h, testRequest())

	require.Len(t, h.llm.inputs, 2)
	assert.Equal(t, "openrouter/anthropic/claude-sonnet-4-20250514", h.llm.inputs[1].Model)
	assert.Empty(t, statusChunks(chunks, models.StatusError),
		"retryable failure is hidden from subscribers")
	assert.Len(t, h.store.byType(models.MessageTypeAssistant), 1,
		"only the successful completion persists an assistant row")
}

func TestRunThread_NonRetryableErrorStops(t *testing.T) {
	h := newHarness(nil, scripted{chunks: []llm.Chunk{
		&llm.ErrorChunk{Message: "invalid x-api-key", Code: "authentication_error", Retryable: false},
	}})

	chunks := runAndCollect(t, h, testRequest())

	require.Len(t, h.llm.inputs, 1)
	errs := statusChunks(chunks, models.StatusError)
	require.Len(t, errs, 1)
	assert.Equal(t, "invalid x-api-key", errs[0].Metadata["message"])
	assert.True(t, errs[0].IsTerminal())
}

func TestRunThread_FailoverHappensOnce(t *testing.T) {
	h := newHarness(nil,
		scripted{err: errors.New("529 overloaded")},
		scripted{err: errors.New("503 service unavailable")},
	)

	chunks := runAndCollect(t, h, testRequest())

	require.Len(t, h.llm.inputs, 2)
	errs := statusChunks(chunks, models.StatusError)
	require.Len(t, errs, 1, "the second overload is terminal")
	msg, _ := errs[0].Metadata["message"].(string)
	assert.Contains(t, msg, "503")
}

func TestRunThread_AutoContinueLimit(t *testing.T) {
	cfg := config.DefaultLLMConfig()
	cfg.MaxAutoContinues = 2

	toolTurn := scripted{chunks: []llm.Chunk{
		&llm.ToolCallChunk{CallID: "call-1", Name: "echo", Arguments: `{}`},
		&llm.FinishChunk{Reason: models.FinishReasonToolCalls},
	}}
	h := newHarness(cfg, toolTurn, toolTurn, toolTurn)

	runAndCollect(t, h, testRequest())

	assert.Len(t, h.llm.inputs, 2)
}

func TestRunThread_LengthContinuation(t *testing.T) {
	h := newHarness(nil,
		scripted{chunks: []llm.Chunk{
			&llm.TextChunk{Content: "part one, "},
			&llm.UsageChunk{PromptTokens: 10, CompletionTokens: 5},
			&llm.FinishChunk{Reason: models.FinishReasonLength},
		}},
		scripted{chunks: []llm.Chunk{
			&llm.TextChunk{Content: "part two."},
			&llm.UsageChunk{PromptTokens: 16, CompletionTokens: 3},
			&llm.FinishChunk{Reason: "stop"},
		}},
	)

	chunks := runAndCollect(t, h, testRequest())

	require.Len(t, h.llm.inputs, 2)
	second := h.llm.inputs[1].Messages
	require.NotEmpty(t, second)
	last := second[len(second)-1]
	assert.Equal(t, "assistant", last.Role)
	assert.Equal(t, "part one, ", last.Content,
		"the partial text rides along as a transient assistant turn")

	assistants := h.store.byType(models.MessageTypeAssistant)
	require.Len(t, assistants, 1)
	content, ok := assistants[0].Content.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "part one, part two.", content["content"])

	finishes := statusChunks(chunks, models.StatusFinish)
	require.Len(t, finishes, 1, "the length cutoff must not surface a finish")

	assert.Len(t, h.store.byType(models.MessageTypeLLMResponseEnd), 2,
		"every provider call gets its accounting row")
}

func TestRunThread_CacheRebuildFlagCleared(t *testing.T) {
	h := newHarness(nil, scripted{chunks: []llm.Chunk{
		&llm.TextChunk{Content: "done"},
		&llm.FinishChunk{Reason: "stop"},
	}})
	h.threads.rebuild = true

	runAndCollect(t, h, testRequest())

	assert.Equal(t, 1, h.threads.clears())
}
