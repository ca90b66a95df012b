// Package processor turns one LLM completion stream into persisted
// conversation rows and the typed chunks subscribers consume. Native tool
// calls arrive structured from the provider; XML calls are parsed out of the
// assistant text. Both dispatch in parallel, and results are emitted in
// invocation order no matter which goroutine finished first.
package processor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/weftlabs/weft/ent"
	"github.com/weftlabs/weft/pkg/llm"
	"github.com/weftlabs/weft/pkg/models"
	"github.com/weftlabs/weft/pkg/observe"
	"github.com/weftlabs/weft/pkg/services"
	"github.com/weftlabs/weft/pkg/tokens"
	"github.com/weftlabs/weft/pkg/tools"
)

// defaultToolTimeout bounds one tool invocation when the run config does
// not set its own limit.
const defaultToolTimeout = 120 * time.Second

// Store is the narrow persistence surface the processor writes through.
// Implemented by services.MessageService.
type Store interface {
	Append(ctx context.Context, req models.CreateMessageRequest) (*ent.Message, error)
}

// Biller charges one completion against the owning account. Implemented by
// services.CreditService; implementations must be idempotent per
// llm_response_id because the hook fires at-least-once.
type Biller interface {
	DeductUsage(ctx context.Context, req services.DeductUsageRequest) (float64, error)
}

// Config is the immutable per-run parsing and execution configuration.
type Config struct {
	// NativeToolCalling accepts the provider's structured tool_calls.
	NativeToolCalling bool

	// XMLToolCalling scans assistant text for <function_calls> blocks.
	XMLToolCalling bool

	// ExecuteTools dispatches parsed calls through the registry. When
	// false, calls are persisted on the assistant message but never run.
	ExecuteTools bool

	// MaxXMLToolCalls caps XML invocations per completion. Exceeding it
	// truncates the list and finishes with xml_tool_limit_reached.
	// Zero means unlimited.
	MaxXMLToolCalls int

	// ToolTimeout bounds a single tool invocation. Zero uses the default.
	ToolTimeout time.Duration
}

// AutoContinueState carries the outer-loop continuation decision across
// completions. The runner owns the struct; the processor mutates it while
// handling each stream.
type AutoContinueState struct {
	// Count is how many continuations have fired for this run.
	Count int

	// Active is set when the just-processed completion wants another
	// iteration (tool results to feed back, or a length-truncated
	// generation to resume).
	Active bool

	// AccumulatedContent buffers assistant text across length
	// continuations. The full concatenation is persisted once the
	// generation actually finishes.
	AccumulatedContent string

	// ThreadRunID identifies the agent run, stamped onto persisted rows.
	ThreadRunID string
}

// Input identifies the completion being processed.
type Input struct {
	ThreadID  string
	AgentID   string
	AccountID string
	Model     string
	Runtime   tools.Runtime
	Config    Config
	State     *AutoContinueState
}

// Processor consumes provider chunk streams for the thread runner.
type Processor struct {
	store    Store
	billing  Biller
	registry *tools.Registry
	metrics  *observe.Metrics
	logger   *slog.Logger
}

// New creates a Processor. billing may be nil to disable deductions.
func New(store Store, billing Biller, registry *tools.Registry, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		store:    store,
		billing:  billing,
		registry: registry,
		metrics:  observe.DefaultMetrics(),
		logger:   logger.With("component", "processor"),
	}
}

// pendingCall is one tool invocation awaiting dispatch.
type pendingCall struct {
	models.ToolCall
	xmlTag string // invoke name when parsed from assistant text
}

// ProcessStream consumes the provider chunk channel and returns the chunk
// stream for subscribers. The returned channel closes when the completion
// is fully processed: rows persisted, tools executed, billing hook fired,
// and in.State updated with the auto-continue decision.
func (p *Processor) ProcessStream(ctx context.Context, stream <-chan llm.Chunk, in Input) <-chan models.StreamChunk {
	out := make(chan models.StreamChunk, 64)
	go func() {
		defer close(out)
		p.run(ctx, stream, in, out)
	}()
	return out
}

func (p *Processor) run(ctx context.Context, stream <-chan llm.Chunk, in Input, out chan<- models.StreamChunk) {
	emit := func(c models.StreamChunk) bool {
		select {
		case out <- c:
			return true
		case <-ctx.Done():
			return false
		}
	}

	var (
		textBuf       strings.Builder
		nativeCalls   []pendingCall
		usage         *models.Usage
		finishReason  string
		llmResponseID = uuid.New().String()
	)

	for chunk := range stream {
		switch c := chunk.(type) {
		case *llm.TextChunk:
			if c.Content == "" {
				continue
			}
			textBuf.WriteString(c.Content)
			if !emit(models.NewContentChunk(c.Content)) {
				return
			}
		case *llm.ThinkingChunk:
			if c.Content == "" {
				continue
			}
			if !emit(models.StreamChunk{
				Type:     models.ChunkTypeContent,
				Content:  c.Content,
				Metadata: map[string]any{"thinking": true},
			}) {
				return
			}
		case *llm.ToolCallChunk:
			if !in.Config.NativeToolCalling {
				continue
			}
			nativeCalls = append(nativeCalls, pendingCall{ToolCall: models.ToolCall{
				ID:        c.CallID,
				Name:      c.Name,
				Arguments: c.Arguments,
			}})
		case *llm.UsageChunk:
			usage = &models.Usage{
				PromptTokens:             c.PromptTokens,
				CompletionTokens:         c.CompletionTokens,
				TotalTokens:              c.PromptTokens + c.CompletionTokens,
				CacheReadInputTokens:     c.CacheReadTokens,
				CacheCreationInputTokens: c.CacheWriteTokens,
			}
		case *llm.FinishChunk:
			finishReason = c.Reason
		case *llm.ErrorChunk:
			p.failStream(ctx, in, c, emit)
			return
		}
	}

	text := textBuf.String()
	full := in.State.AccumulatedContent + text
	terminate := ContainsTerminatingTag(full)

	// A length-truncated generation with nothing to execute resumes on the
	// next iteration: buffer the text, bill this completion, and drop the
	// finish chunk so subscribers do not see a false end.
	if finishReason == models.FinishReasonLength && len(nativeCalls) == 0 && !terminate {
		in.State.AccumulatedContent = full
		in.State.Active = true
		in.State.Count++
		p.persistResponseEnd(ctx, in, usage, text, llmResponseID)
		return
	}
	in.State.AccumulatedContent = ""

	calls := nativeCalls
	if in.Config.XMLToolCalling {
		xmlCalls := ParseInvocations(full)
		if in.Config.MaxXMLToolCalls > 0 && len(xmlCalls) > in.Config.MaxXMLToolCalls {
			xmlCalls = xmlCalls[:in.Config.MaxXMLToolCalls]
			finishReason = models.FinishReasonXMLToolLimit
		}
		for _, inv := range xmlCalls {
			calls = append(calls, pendingCall{
				ToolCall: models.ToolCall{
					ID:        "xml-" + uuid.New().String(),
					Name:      inv.Name,
					Arguments: inv.Arguments,
				},
				xmlTag: inv.TagName,
			})
		}
	}

	assistantID := p.persistAssistant(ctx, in, full, calls, llmResponseID)
	if assistantID != "" {
		if !emit(models.StreamChunk{
			Type:    models.ChunkTypeAssistant,
			Content: full,
			Metadata: map[string]any{
				"message_id":      assistantID,
				"llm_response_id": llmResponseID,
			},
		}) {
			return
		}
	}

	toolsExecuted := false
	if in.Config.ExecuteTools && len(calls) > 0 {
		toolTerminate, ok := p.dispatchTools(ctx, in, assistantID, calls, emit)
		if !ok {
			return
		}
		toolsExecuted = true
		terminate = terminate || toolTerminate
	}

	switch {
	case terminate, finishReason == models.FinishReasonXMLToolLimit:
		in.State.Active = false
	case toolsExecuted, finishReason == models.FinishReasonToolCalls:
		in.State.Active = true
		in.State.Count++
	default:
		in.State.Active = false
	}

	p.persistResponseEnd(ctx, in, usage, text, llmResponseID)

	fields := map[string]any{
		"finish_reason":  finishReason,
		"tools_executed": toolsExecuted,
	}
	if terminate {
		fields["agent_should_terminate"] = true
	}
	emit(models.NewStatusChunk(models.StatusFinish, fields))
}

// failStream converts a provider error into a persisted status row and a
// stream-safe error chunk. The run ends here: no auto-continue.
func (p *Processor) failStream(ctx context.Context, in Input, c *llm.ErrorChunk, emit func(models.StreamChunk) bool) {
	in.State.Active = false
	p.logger.Error("llm stream failed",
		"thread_id", in.ThreadID,
		"model", in.Model,
		"code", c.Code,
		"error", c.Message)
	p.metrics.RecordProviderError(ctx, llm.ProviderFor(in.Model), c.Code)

	fields := map[string]any{
		"message":   c.Message,
		"code":      c.Code,
		"retryable": c.Retryable,
	}
	p.persistStatus(ctx, in, models.StatusError, fields)
	emit(models.NewStatusChunk(models.StatusError, fields))
}

// persistAssistant writes the assistant row and returns its id, or "" when
// the write failed (warn-logged; the stream continues so subscribers still
// see the content they were already streamed).
func (p *Processor) persistAssistant(ctx context.Context, in Input, text string, calls []pendingCall, llmResponseID string) string {
	content := map[string]any{
		"role":    "assistant",
		"content": text,
	}
	if len(calls) > 0 {
		content["tool_calls"] = toolCallsForStorage(calls)
	}

	metadata := map[string]any{"llm_response_id": llmResponseID}
	if in.State.ThreadRunID != "" {
		metadata["thread_run_id"] = in.State.ThreadRunID
	}

	msg, err := p.store.Append(ctx, models.CreateMessageRequest{
		ThreadID:     in.ThreadID,
		Type:         models.MessageTypeAssistant,
		IsLLMMessage: true,
		Content:      content,
		Metadata:     metadata,
		AgentID:      in.AgentID,
	})
	if err != nil {
		p.logger.Error("failed to persist assistant message",
			"thread_id", in.ThreadID, "error", err)
		return ""
	}
	return msg.ID
}

// toolCallsForStorage renders calls in the stored wire shape: native calls
// nest name/arguments under "function", XML-parsed calls stay flat with
// their tag name.
func toolCallsForStorage(calls []pendingCall) []map[string]any {
	stored := make([]map[string]any, 0, len(calls))
	for _, call := range calls {
		if call.xmlTag != "" {
			stored = append(stored, map[string]any{
				"id":           call.ID,
				"name":         call.Name,
				"arguments":    call.Arguments,
				"xml_tag_name": call.xmlTag,
			})
			continue
		}
		stored = append(stored, map[string]any{
			"id":   call.ID,
			"type": "function",
			"function": map[string]any{
				"name":      call.Name,
				"arguments": call.Arguments,
			},
		})
	}
	return stored
}

// dispatchTools runs the calls in parallel and emits results in invocation
// order. Returns (terminate, ok): terminate when any tool asked to end the
// run, ok=false when the subscriber context died mid-emission.
func (p *Processor) dispatchTools(ctx context.Context, in Input, assistantID string, calls []pendingCall, emit func(models.StreamChunk) bool) (bool, bool) {
	for _, call := range calls {
		fields := statusFields(call)
		p.persistStatus(ctx, in, models.StatusToolStarted, fields)
		if !emit(models.NewStatusChunk(models.StatusToolStarted, fields)) {
			return false, false
		}
	}

	results := make([]tools.Result, len(calls))
	var wg sync.WaitGroup
	for i := range calls {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = p.executeOne(ctx, in, calls[i])
		}(i)
	}
	wg.Wait()

	terminate := false
	for i, call := range calls {
		res := results[i]
		if res.Terminate {
			terminate = true
		}

		metadata := map[string]any{models.MetaAssistantMessageID: assistantID}
		for k, v := range res.Metadata {
			metadata[k] = v
		}
		msg, err := p.store.Append(ctx, models.CreateMessageRequest{
			ThreadID:     in.ThreadID,
			Type:         models.MessageTypeTool,
			IsLLMMessage: true,
			Content: map[string]any{
				"role":         "tool",
				"tool_call_id": call.ID,
				"name":         call.Name,
				"content":      res.Content(),
			},
			Metadata: metadata,
			AgentID:  in.AgentID,
		})
		if err != nil {
			p.logger.Error("failed to persist tool result",
				"thread_id", in.ThreadID, "tool", call.Name, "error", err)
		}

		fields := statusFields(call)
		fields["success"] = !res.Failed()
		if msg != nil {
			fields["message_id"] = msg.ID
		}
		if res.Terminate {
			fields["agent_should_terminate"] = true
		}

		if !emit(models.StreamChunk{
			Type:     models.ChunkTypeTool,
			Content:  res.Content(),
			Metadata: fields,
		}) {
			return false, false
		}

		statusType := models.StatusToolCompleted
		if res.Failed() {
			statusType = models.StatusToolFailed
		}
		p.persistStatus(ctx, in, statusType, fields)
		if !emit(models.NewStatusChunk(statusType, fields)) {
			return false, false
		}
	}
	return terminate, true
}

func statusFields(call pendingCall) map[string]any {
	fields := map[string]any{
		"function_name": call.Name,
		"tool_call_id":  call.ID,
	}
	if call.xmlTag != "" {
		fields["xml_tag_name"] = call.xmlTag
	}
	return fields
}

// executeOne resolves and runs a single tool under its timeout.
func (p *Processor) executeOne(ctx context.Context, in Input, call pendingCall) tools.Result {
	tool, ok := p.registry.Get(call.Name)
	if !ok {
		p.metrics.RecordToolCall(ctx, call.Name, "unknown")
		return tools.Result{Error: fmt.Sprintf("unknown tool: %s", call.Name)}
	}

	timeout := in.Config.ToolTimeout
	if timeout <= 0 {
		timeout = defaultToolTimeout
	}
	toolCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	res := tool.Execute(toolCtx, in.Runtime, call.Arguments)
	elapsed := time.Since(start)

	p.metrics.ToolExecutionDuration.Record(ctx, elapsed.Seconds(),
		metric.WithAttributes(attribute.String("tool", call.Name)))
	status := "ok"
	if res.Failed() {
		status = "error"
	}
	p.metrics.RecordToolCall(ctx, call.Name, status)
	p.logger.Debug("tool executed",
		"thread_id", in.ThreadID,
		"tool", call.Name,
		"duration_ms", elapsed.Milliseconds(),
		"failed", res.Failed())
	return res
}

// persistStatus appends a status row. Failures are logged, never raised —
// status rows are catch-up data, not run state.
func (p *Processor) persistStatus(ctx context.Context, in Input, statusType string, fields map[string]any) {
	content := map[string]any{"status_type": statusType}
	for k, v := range fields {
		content[k] = v
	}
	metadata := map[string]any{}
	if in.State.ThreadRunID != "" {
		metadata["thread_run_id"] = in.State.ThreadRunID
	}
	if _, err := p.store.Append(ctx, models.CreateMessageRequest{
		ThreadID:     in.ThreadID,
		Type:         models.MessageTypeStatus,
		IsLLMMessage: false,
		Content:      content,
		Metadata:     metadata,
		AgentID:      in.AgentID,
	}); err != nil {
		p.logger.Warn("failed to persist status message",
			"thread_id", in.ThreadID, "status_type", statusType, "error", err)
	}
}

// persistResponseEnd writes the accounting row for this completion and
// fires the billing hook. Runs for every provider call, including
// length-continued ones, because each call consumed tokens.
func (p *Processor) persistResponseEnd(ctx context.Context, in Input, usage *models.Usage, text, llmResponseID string) {
	var u models.Usage
	if usage != nil {
		u = *usage
	} else {
		// Stream ended without a usage frame; reconstruct from size so
		// the fast budget check still has something to work with.
		est := tokens.EstimateText(text)
		u = models.Usage{CompletionTokens: est, TotalTokens: est, Estimated: true}
	}
	u.Model = in.Model

	if _, err := p.store.Append(ctx, models.CreateMessageRequest{
		ThreadID:     in.ThreadID,
		Type:         models.MessageTypeLLMResponseEnd,
		IsLLMMessage: false,
		Content: models.ResponseEnd{
			Usage:         u,
			Model:         in.Model,
			LLMResponseID: llmResponseID,
		},
		AgentID: in.AgentID,
	}); err != nil {
		p.logger.Error("failed to persist llm_response_end",
			"thread_id", in.ThreadID, "llm_response_id", llmResponseID, "error", err)
		return
	}

	if p.billing == nil || in.AccountID == "" {
		return
	}
	cost, err := p.billing.DeductUsage(ctx, services.DeductUsageRequest{
		AccountID:        in.AccountID,
		ThreadID:         in.ThreadID,
		LLMResponseID:    llmResponseID,
		Model:            in.Model,
		PromptTokens:     u.PromptTokens,
		CompletionTokens: u.CompletionTokens,
		CacheReadTokens:  u.CacheReadInputTokens,
		CacheWriteTokens: u.CacheCreationInputTokens,
	})
	if err != nil {
		p.logger.Error("failed to deduct usage",
			"account_id", in.AccountID, "llm_response_id", llmResponseID, "error", err)
		return
	}
	if cost > 0 {
		p.metrics.RecordCreditDeduction(ctx, in.Model, cost)
	}
}
