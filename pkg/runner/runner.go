// Package runner drives one agent run: size the conversation, call the
// provider, feed the completion stream through the response processor,
// and loop while a continuation is wanted. The loop never returns an
// error; every failure surfaces as a status chunk on the output stream.
package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/weftlabs/weft/ent"
	"github.com/weftlabs/weft/ent/agentrun"
	"github.com/weftlabs/weft/pkg/config"
	"github.com/weftlabs/weft/pkg/contextmgr"
	"github.com/weftlabs/weft/pkg/llm"
	"github.com/weftlabs/weft/pkg/models"
	"github.com/weftlabs/weft/pkg/observe"
	"github.com/weftlabs/weft/pkg/processor"
	"github.com/weftlabs/weft/pkg/promptcache"
	"github.com/weftlabs/weft/pkg/tokens"
	"github.com/weftlabs/weft/pkg/tools"
)

// defaultMaxAutoContinues bounds the loop when the config does not.
const defaultMaxAutoContinues = 25

// History reads the conversation. Implemented by services.MessageService.
type History interface {
	ListLLMMessages(ctx context.Context, threadID string) ([]models.PreparedMessage, error)
	LatestOfType(ctx context.Context, threadID, msgType string) (*ent.Message, error)
}

// ThreadState tracks the thread's prompt-cache rebuild flag. Implemented
// by services.ThreadService.
type ThreadState interface {
	CacheNeedsRebuild(ctx context.Context, threadID string) (bool, error)
	ClearCacheRebuild(ctx context.Context, threadID string) error
}

// CreditGate clears an account to spend before each provider call. The
// string is a reservation id when cleared, the denial reason when not.
// Implemented by services.CreditService.
type CreditGate interface {
	CheckAndReserveCredits(ctx context.Context, accountID string) (bool, string, error)
}

// RunState reads run status between iterations. Implemented by
// services.RunService.
type RunState interface {
	GetRunStatus(ctx context.Context, runID string) (agentrun.Status, error)
}

// Compressor fits the conversation into the model's budget. Implemented
// by contextmgr.Manager.
type Compressor interface {
	Compress(ctx context.Context, in contextmgr.CompressInput) (contextmgr.Result, error)
}

// Deps bundles the runner's collaborators. LLM, Processor, and History
// are required; the rest degrade to no-ops when nil.
type Deps struct {
	LLM        llm.LLMClient
	Processor  *processor.Processor
	History    History
	Threads    ThreadState
	Credits    CreditGate
	Runs       RunState
	Compressor Compressor
	Registry   *tools.Registry
	Config     *config.LLMConfig
}

// Runner executes agent runs. One Runner serves all workers; per-run
// state lives in the request and the auto-continue state.
type Runner struct {
	llm        llm.LLMClient
	processor  *processor.Processor
	history    History
	threads    ThreadState
	credits    CreditGate
	runs       RunState
	compressor Compressor
	registry   *tools.Registry
	cfg        *config.LLMConfig
	metrics    *observe.Metrics
	logger     *slog.Logger
}

// New creates a Runner.
func New(deps Deps) *Runner {
	cfg := deps.Config
	if cfg == nil {
		cfg = config.DefaultLLMConfig()
	}
	return &Runner{
		llm:        deps.LLM,
		processor:  deps.Processor,
		history:    deps.History,
		threads:    deps.Threads,
		credits:    deps.Credits,
		runs:       deps.Runs,
		compressor: deps.Compressor,
		registry:   deps.Registry,
		cfg:        cfg,
		metrics:    observe.DefaultMetrics(),
		logger:     slog.With("component", "runner"),
	}
}

// Request identifies one agent run to execute. Model and SystemPrompt
// arrive already resolved from the agent configuration.
type Request struct {
	RunID        string
	ThreadID     string
	AgentID      string
	AccountID    string
	Model        string
	SystemPrompt string
	Runtime      tools.Runtime
	Processing   processor.Config
}

// RunThread executes the run and streams chunks until it finishes. The
// channel closes when the run is over, whatever the reason; terminal
// failures arrive as error status chunks, never as a returned error.
func (r *Runner) RunThread(ctx context.Context, req Request) <-chan models.StreamChunk {
	out := make(chan models.StreamChunk, 64)
	go func() {
		defer close(out)
		r.run(ctx, req, out)
	}()
	return out
}

// iterationOutcome is what one provider call decided for the outer loop.
type iterationOutcome int

const (
	iterationDone iterationOutcome = iota
	iterationFailover
	iterationTerminal
)

func (r *Runner) run(ctx context.Context, req Request, out chan<- models.StreamChunk) {
	emit := func(c models.StreamChunk) bool {
		select {
		case out <- c:
			return true
		case <-ctx.Done():
			return false
		}
	}

	model := req.Model
	if model == "" {
		model = r.cfg.DefaultModel
	}
	maxContinues := r.cfg.MaxAutoContinues
	if maxContinues <= 0 {
		maxContinues = defaultMaxAutoContinues
	}

	state := &processor.AutoContinueState{ThreadRunID: req.RunID}
	failedOver := false

	for iteration := 0; ; iteration++ {
		if ctx.Err() != nil {
			return
		}
		if iteration > 0 && !r.stillRunning(ctx, req, emit) {
			return
		}
		if !r.reserveCredits(ctx, req, emit) {
			return
		}

		switch r.iterate(ctx, req, model, state, !failedOver, emit) {
		case iterationFailover:
			next := llm.RewriteForFailover(model)
			r.logger.Warn("provider overloaded, failing over",
				"thread_id", req.ThreadID, "from", model, "to", next)
			model = next
			failedOver = true
			state.Active = true
		case iterationTerminal:
			return
		case iterationDone:
			if !state.Active {
				return
			}
			if state.Count >= maxContinues {
				r.logger.Warn("auto-continue limit reached",
					"thread_id", req.ThreadID, "run_id", req.RunID, "count", state.Count)
				return
			}
		}
	}
}

// stillRunning re-reads the run row so a stop requested from another pod
// lands at the next turn boundary. Read failures keep the run alive; the
// orphan detector owns the pathological cases.
func (r *Runner) stillRunning(ctx context.Context, req Request, emit func(models.StreamChunk) bool) bool {
	if r.runs == nil {
		return true
	}
	status, err := r.runs.GetRunStatus(ctx, req.RunID)
	if err != nil {
		r.logger.Warn("failed to read run status", "run_id", req.RunID, "error", err)
		return true
	}
	if status == agentrun.StatusRunning {
		return true
	}
	r.logger.Info("run no longer running, exiting",
		"run_id", req.RunID, "status", status)
	emit(models.NewStatusChunk(models.StatusStopped, map[string]any{"message": "run stopped"}))
	return false
}

// reserveCredits gates one iteration on a positive balance. The
// reservation id only correlates logs; the real deduction happens in the
// per-completion billing hook.
func (r *Runner) reserveCredits(ctx context.Context, req Request, emit func(models.StreamChunk) bool) bool {
	if r.credits == nil || req.AccountID == "" {
		return true
	}
	ok, detail, err := r.credits.CheckAndReserveCredits(ctx, req.AccountID)
	if err != nil {
		r.logger.Error("credit check failed",
			"account_id", req.AccountID, "run_id", req.RunID, "error", err)
		emit(models.NewErrorChunk(fmt.Sprintf("credit check failed: %v", err)))
		return false
	}
	if !ok {
		// On denial the detail is the gate's reason, not a reservation id.
		emit(models.NewStatusChunk(models.StatusStopped, map[string]any{
			"message": fmt.Sprintf("Insufficient credits: %s", detail),
		}))
		return false
	}
	r.logger.Debug("credits reserved",
		"account_id", req.AccountID, "reservation_id", detail)
	return true
}

// iterate performs one provider call and processes its stream, mutating
// state with the continuation decision. With allowFailover set, overload
// failures are reported as iterationFailover instead of reaching
// subscribers.
func (r *Runner) iterate(ctx context.Context, req Request, model string, state *processor.AutoContinueState, allowFailover bool, emit func(models.StreamChunk) bool) iterationOutcome {
	canFailover := allowFailover && llm.ProviderFor(model) != llm.ProviderOpenRouter

	skip, lastTotal := r.withinBudget(ctx, req, model, state)

	messages, err := r.history.ListLLMMessages(ctx, req.ThreadID)
	if err != nil {
		r.logger.Error("failed to load conversation",
			"thread_id", req.ThreadID, "error", err)
		emit(models.NewErrorChunk("failed to load conversation"))
		return iterationTerminal
	}

	// A length-truncated generation resumes by replaying the buffered
	// partial text as a transient assistant turn. It is never a stored
	// row; the full concatenation lands once the generation finishes.
	if state.Active && state.AccumulatedContent != "" {
		messages = append(messages, models.PreparedMessage{
			Role:    "assistant",
			Content: state.AccumulatedContent,
		})
	}

	if skip {
		r.logger.Debug("conversation within budget, skipping compression",
			"thread_id", req.ThreadID, "model", model)
	} else if r.compressor != nil {
		start := time.Now()
		res, cerr := r.compressor.Compress(ctx, contextmgr.CompressInput{
			ThreadID:          req.ThreadID,
			Model:             model,
			Messages:          messages,
			SystemPrompt:      req.SystemPrompt,
			ActualTotalTokens: lastTotal,
		})
		r.metrics.CompressionDuration.Record(ctx, time.Since(start).Seconds(),
			metric.WithAttributes(attribute.String("model", llm.CanonicalModel(model))))
		if cerr != nil {
			r.logger.Warn("compression failed, sending uncompressed",
				"thread_id", req.ThreadID, "error", cerr)
		} else {
			messages = res.Messages
		}
	}

	r.consumeCacheFlag(ctx, req.ThreadID)
	prep := promptcache.Apply(messages, req.SystemPrompt, model)

	var defs []llm.ToolDefinition
	if r.registry != nil {
		defs = r.registry.Definitions()
	}

	genCtx := ctx
	cancel := func() {}
	if r.cfg.RequestTimeout > 0 {
		genCtx, cancel = context.WithTimeout(ctx, r.cfg.RequestTimeout)
	}
	defer cancel()

	genCtx, span := observe.StartSpan(genCtx, "runner.generate", trace.WithAttributes(
		attribute.String("model", model),
		attribute.String("thread_id", req.ThreadID),
		attribute.String("run_id", req.RunID),
	))
	defer span.End()

	provider := llm.ProviderFor(model)
	start := time.Now()
	stream, err := r.llm.Generate(genCtx, &llm.GenerateInput{
		ThreadID:           req.ThreadID,
		RunID:              req.RunID,
		Model:              model,
		System:             prep.System,
		SystemCacheControl: prep.SystemCacheControl,
		Messages:           prep.Messages,
		Tools:              defs,
		MaxTokens:          r.cfg.MaxTokens,
		Temperature:        r.cfg.Temperature,
	})
	if err != nil {
		r.metrics.RecordProviderRequest(ctx, provider, llm.CanonicalModel(model), "error")
		if canFailover && llm.IsOverloadedError(err) {
			return iterationFailover
		}
		r.logger.Error("llm call failed",
			"thread_id", req.ThreadID, "model", model, "error", err)
		emit(models.NewErrorChunk(fmt.Sprintf("LLM call failed: %v", err)))
		return iterationTerminal
	}

	procStream := r.processor.ProcessStream(genCtx, stream, processor.Input{
		ThreadID:  req.ThreadID,
		AgentID:   req.AgentID,
		AccountID: req.AccountID,
		Model:     model,
		Runtime:   req.Runtime,
		Config:    req.Processing,
		State:     state,
	})

	intercepted := false
	failed := false
	for chunk := range procStream {
		if statusType(chunk) == models.StatusError {
			retryable, _ := chunk.Metadata["retryable"].(bool)
			if retryable && canFailover {
				// Swallow the chunk: the failover retry replaces this
				// completion, so subscribers never see the failure.
				intercepted = true
				continue
			}
			failed = true
		}
		if !emit(chunk) {
			return iterationTerminal
		}
	}

	status := "ok"
	if failed || intercepted {
		status = "error"
	}
	r.metrics.LLMDuration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.String("model", llm.CanonicalModel(model)),
	))
	r.metrics.RecordProviderRequest(ctx, provider, llm.CanonicalModel(model), status)

	if intercepted {
		return iterationFailover
	}
	if failed {
		return iterationTerminal
	}

	if state.Active {
		reason := "tool_calls"
		if state.AccumulatedContent != "" {
			reason = "length"
		}
		r.metrics.AutoContinues.Add(ctx, 1,
			metric.WithAttributes(attribute.String("reason", reason)))
	}
	return iterationDone
}

// withinBudget is the fast pre-check that avoids re-measuring a
// conversation that obviously fits: the provider reported its exact size
// last turn, and a same-model turn only grows by the newest user message
// (or nothing at all on an auto-continue). Returns the last known total
// for the compressor when the check fails.
func (r *Runner) withinBudget(ctx context.Context, req Request, model string, state *processor.AutoContinueState) (bool, int) {
	row, err := r.history.LatestOfType(ctx, req.ThreadID, models.MessageTypeLLMResponseEnd)
	if err != nil {
		return false, 0
	}
	var end models.ResponseEnd
	if err := json.Unmarshal([]byte(row.Content), &end); err != nil {
		return false, 0
	}
	if llm.CanonicalModel(end.Model) != llm.CanonicalModel(model) {
		// Token counts are not comparable across models.
		return false, 0
	}

	estimated := end.Usage.TotalTokens
	if !state.Active {
		userRow, uerr := r.history.LatestOfType(ctx, req.ThreadID, models.MessageTypeUser)
		if uerr == nil {
			estimated += tokens.EstimateText(userRow.Content)
		}
	}
	return estimated < contextmgr.Budget(model), end.Usage.TotalTokens
}

// consumeCacheFlag clears the thread's pending rebuild flag. Breakpoint
// placement is deterministic, so the rebuild is simply this turn's Apply;
// the flag only needs to stop signaling once consumed.
func (r *Runner) consumeCacheFlag(ctx context.Context, threadID string) {
	if r.threads == nil {
		return
	}
	needs, err := r.threads.CacheNeedsRebuild(ctx, threadID)
	if err != nil {
		r.logger.Warn("failed to read cache rebuild flag",
			"thread_id", threadID, "error", err)
		return
	}
	if !needs {
		return
	}
	r.logger.Debug("prompt cache rebuilding after compression", "thread_id", threadID)
	if err := r.threads.ClearCacheRebuild(ctx, threadID); err != nil {
		r.logger.Warn("failed to clear cache rebuild flag",
			"thread_id", threadID, "error", err)
	}
}

func statusType(c models.StreamChunk) string {
	if c.Type != models.ChunkTypeStatus || c.Metadata == nil {
		return ""
	}
	st, _ := c.Metadata["status_type"].(string)
	return st
}
