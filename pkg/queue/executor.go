package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/weftlabs/weft/ent"
	"github.com/weftlabs/weft/ent/agentrun"
	"github.com/weftlabs/weft/pkg/config"
	"github.com/weftlabs/weft/pkg/models"
	"github.com/weftlabs/weft/pkg/processor"
	"github.com/weftlabs/weft/pkg/runner"
	"github.com/weftlabs/weft/pkg/services"
	"github.com/weftlabs/weft/pkg/tools"
)

// ThreadRunner drives one agent run and streams its output. Implemented
// by runner.Runner.
type ThreadRunner interface {
	RunThread(ctx context.Context, req runner.Request) <-chan models.StreamChunk
}

// ThreadReader resolves the thread a queued run belongs to.
type ThreadReader interface {
	GetThread(ctx context.Context, threadID string) (*ent.Thread, error)
}

// AgentReader resolves the agent whose prompt and model shape the run.
type AgentReader interface {
	GetAgent(ctx context.Context, agentID string) (*ent.Agent, error)
	GetDefaultAgent(ctx context.Context, accountID string) (*ent.Agent, error)
}

// ProjectReader resolves the project that owns the thread's sandbox.
type ProjectReader interface {
	GetProject(ctx context.Context, projectID string) (*ent.Project, error)
}

// RunnerExecutor adapts the thread runner to the worker pool. It
// resolves the run's thread, agent, and sandbox, forwards the runner's
// chunks to the publisher, and condenses the stream into a terminal
// status for the agent_runs row.
type RunnerExecutor struct {
	runner    ThreadRunner
	threads   ThreadReader
	agents    AgentReader
	projects  ProjectReader
	publisher ChunkPublisher
	cfg       *config.LLMConfig
	logger    *slog.Logger
}

// ExecutorDeps carries the collaborators for NewRunnerExecutor.
type ExecutorDeps struct {
	Runner    ThreadRunner
	Threads   ThreadReader
	Agents    AgentReader
	Projects  ProjectReader
	Publisher ChunkPublisher
	Config    *config.LLMConfig
}

// NewRunnerExecutor builds the production RunExecutor.
func NewRunnerExecutor(deps ExecutorDeps) *RunnerExecutor {
	cfg := deps.Config
	if cfg == nil {
		cfg = config.DefaultLLMConfig()
	}
	return &RunnerExecutor{
		runner:    deps.Runner,
		threads:   deps.Threads,
		agents:    deps.Agents,
		projects:  deps.Projects,
		publisher: deps.Publisher,
		cfg:       cfg,
		logger:    slog.With("component", "run_executor"),
	}
}

// Execute runs one claimed request to completion. It never returns an
// in-band error: failures become a failed ExecutionResult so the worker
// always has a terminal status to persist. Failures before the runner
// starts are also published as error chunks so stream subscribers see
// why nothing followed.
func (e *RunnerExecutor) Execute(ctx context.Context, req RunRequest) ExecutionResult {
	thread, err := e.threads.GetThread(ctx, req.ThreadID)
	if err != nil {
		return e.failRun(ctx, req, fmt.Sprintf("failed to load thread %s: %v", req.ThreadID, err))
	}

	agent, err := e.resolveAgent(ctx, req.AgentID, thread.AccountID)
	if err != nil {
		return e.failRun(ctx, req, fmt.Sprintf("failed to resolve agent: %v", err))
	}

	runReq := e.buildRequest(ctx, req, thread, agent)

	status := agentrun.StatusCompleted
	var runErr string
	for chunk := range e.runner.RunThread(ctx, runReq) {
		e.publish(ctx, req.ThreadID, req.RunID, chunk)
		if chunk.Type != models.ChunkTypeStatus || chunk.Metadata == nil {
			continue
		}
		switch st, _ := chunk.Metadata["status_type"].(string); st {
		case models.StatusError:
			status = agentrun.StatusFailed
			if msg, ok := chunk.Metadata["message"].(string); ok {
				runErr = msg
			}
		case models.StatusStopped:
			if status != agentrun.StatusFailed {
				status = agentrun.StatusStopped
			}
		}
	}
	return ExecutionResult{Status: status, Error: runErr}
}

// failRun publishes the failure to the thread stream and builds the
// terminal result.
func (e *RunnerExecutor) failRun(ctx context.Context, req RunRequest, msg string) ExecutionResult {
	e.publish(ctx, req.ThreadID, req.RunID, models.NewErrorChunk(msg))
	return ExecutionResult{Status: agentrun.StatusFailed, Error: msg}
}

// resolveAgent loads the requested agent, or the account default when
// the request names none. A missing default is not an error: the run
// proceeds with the configured model and no system prompt.
func (e *RunnerExecutor) resolveAgent(ctx context.Context, agentID, accountID string) (*ent.Agent, error) {
	if agentID != "" {
		return e.agents.GetAgent(ctx, agentID)
	}
	agent, err := e.agents.GetDefaultAgent(ctx, accountID)
	if errors.Is(err, services.ErrNotFound) {
		return nil, nil
	}
	return agent, err
}

func (e *RunnerExecutor) buildRequest(ctx context.Context, req RunRequest, thread *ent.Thread, agent *ent.Agent) runner.Request {
	model := req.Model
	systemPrompt := ""
	agentID := req.AgentID
	if agent != nil {
		agentID = agent.ID
		systemPrompt = agent.SystemPrompt
		if model == "" && agent.Model != nil {
			model = *agent.Model
		}
	}
	if model == "" {
		model = e.cfg.DefaultModel
	}

	runtime := tools.Runtime{ThreadID: thread.ID, AgentID: agentID}
	if thread.ProjectID != nil && *thread.ProjectID != "" {
		runtime.ProjectID = *thread.ProjectID
		if e.projects != nil {
			project, err := e.projects.GetProject(ctx, runtime.ProjectID)
			switch {
			case err != nil:
				e.logger.Warn("failed to load project for sandbox lookup",
					"project_id", runtime.ProjectID,
					"error", err)
			case project.SandboxID != nil:
				runtime.SandboxID = *project.SandboxID
			}
		}
	}

	return runner.Request{
		RunID:        req.RunID,
		ThreadID:     thread.ID,
		AgentID:      agentID,
		AccountID:    thread.AccountID,
		Model:        model,
		SystemPrompt: systemPrompt,
		Runtime:      runtime,
		Processing: processor.Config{
			NativeToolCalling: true,
			XMLToolCalling:    true,
			ExecuteTools:      true,
			MaxXMLToolCalls:   e.cfg.MaxXMLToolCalls,
		},
	}
}

// publish forwards one chunk to subscribers. Publish failures are logged
// and dropped: the chunk is already persisted as a message or event row,
// so catch-up reads recover it.
func (e *RunnerExecutor) publish(ctx context.Context, threadID, runID string, chunk models.StreamChunk) {
	if e.publisher == nil {
		return
	}
	if err := e.publisher.PublishChunk(ctx, threadID, runID, chunk); err != nil {
		e.logger.Warn("failed to publish stream chunk",
			"thread_id", threadID,
			"run_id", runID,
			"chunk_type", chunk.Type,
			"error", err)
	}
}
