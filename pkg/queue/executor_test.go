package queue

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftlabs/weft/ent"
	"github.com/weftlabs/weft/ent/agentrun"
	"github.com/weftlabs/weft/pkg/config"
	"github.com/weftlabs/weft/pkg/models"
	"github.com/weftlabs/weft/pkg/runner"
	"github.com/weftlabs/weft/pkg/services"
)

type fakeRunner struct {
	mu     sync.Mutex
	chunks []models.StreamChunk
	reqs   []runner.Request
}

func (f *fakeRunner) RunThread(_ context.Context, req runner.Request) <-chan models.StreamChunk {
	f.mu.Lock()
	f.reqs = append(f.reqs, req)
	f.mu.Unlock()

	out := make(chan models.StreamChunk, len(f.chunks)+1)
	for _, c := range f.chunks {
		out <- c
	}
	close(out)
	return out
}

func (f *fakeRunner) requests() []runner.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]runner.Request(nil), f.reqs...)
}

type fakeThreads struct {
	thread *ent.Thread
	err    error
}

func (f *fakeThreads) GetThread(context.Context, string) (*ent.Thread, error) {
	return f.thread, f.err
}

type fakeAgents struct {
	agents     map[string]*ent.Agent
	defaultA   *ent.Agent
	defaultErr error
}

func (f *fakeAgents) GetAgent(_ context.Context, agentID string) (*ent.Agent, error) {
	if a, ok := f.agents[agentID]; ok {
		return a, nil
	}
	return nil, services.ErrNotFound
}

func (f *fakeAgents) GetDefaultAgent(context.Context, string) (*ent.Agent, error) {
	if f.defaultErr != nil {
		return nil, f.defaultErr
	}
	return f.defaultA, nil
}

type fakeProjects struct {
	project *ent.Project
	err     error
}

func (f *fakeProjects) GetProject(context.Context, string) (*ent.Project, error) {
	return f.project, f.err
}

type collectPublisher struct {
	mu     sync.Mutex
	chunks []models.StreamChunk
	err    error
}

func (p *collectPublisher) PublishChunk(_ context.Context, _, _ string, chunk models.StreamChunk) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.chunks = append(p.chunks, chunk)
	return p.err
}

func (p *collectPublisher) collected() []models.StreamChunk {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.StreamChunk(nil), p.chunks...)
}

func strptr(s string) *string { return &s }

func executorFixture(fr *fakeRunner) (*RunnerExecutor, *collectPublisher) {
	sandbox := "sandbox-9"
	pub := &collectPublisher{}
	exec := NewRunnerExecutor(ExecutorDeps{
		Runner: fr,
		Threads: &fakeThreads{thread: &ent.Thread{
			ID:        "thread-1",
			AccountID: "acct-1",
			ProjectID: strptr("project-1"),
		}},
		Agents: &fakeAgents{agents: map[string]*ent.Agent{
			"agent-1": {
				ID:           "agent-1",
				AccountID:    "acct-1",
				Name:         "researcher",
				Model:        strptr("anthropic/claude-sonnet-4-20250514"),
				SystemPrompt: "You research things.",
			},
		}},
		Projects:  &fakeProjects{project: &ent.Project{ID: "project-1", SandboxID: &sandbox}},
		Publisher: pub,
	})
	return exec, pub
}

func TestExecute_CompletedRunForwardsChunks(t *testing.T) {
	fr := &fakeRunner{chunks: []models.StreamChunk{
		models.NewContentChunk("Hello"),
		models.NewFinishChunk(models.FinishReasonStop),
	}}
	exec, pub := executorFixture(fr)

	result := exec.Execute(context.Background(), RunRequest{
		RunID:    "run-1",
		ThreadID: "thread-1",
		AgentID:  "agent-1",
	})

	assert.Equal(t, agentrun.StatusCompleted, result.Status)
	assert.Empty(t, result.Error)

	chunks := pub.collected()
	require.Len(t, chunks, 2)
	assert.Equal(t, "Hello", chunks[0].Content)
	assert.Equal(t, models.ChunkTypeStatus, chunks[1].Type)

	reqs := fr.requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "run-1", reqs[0].RunID)
	assert.Equal(t, "acct-1", reqs[0].AccountID)
	assert.Equal(t, "anthropic/claude-sonnet-4-20250514", reqs[0].Model)
	assert.Equal(t, "You research things.", reqs[0].SystemPrompt)
	assert.Equal(t, "project-1", reqs[0].Runtime.ProjectID)
	assert.Equal(t, "sandbox-9", reqs[0].Runtime.SandboxID)
	assert.True(t, reqs[0].Processing.NativeToolCalling)
	assert.True(t, reqs[0].Processing.ExecuteTools)
}

func TestExecute_ErrorChunkFailsRun(t *testing.T) {
	fr := &fakeRunner{chunks: []models.StreamChunk{
		models.NewContentChunk("partial"),
		models.NewErrorChunk("LLM call failed: invalid x-api-key"),
	}}
	exec, _ := executorFixture(fr)

	result := exec.Execute(context.Background(), RunRequest{
		RunID:    "run-1",
		ThreadID: "thread-1",
		AgentID:  "agent-1",
	})

	assert.Equal(t, agentrun.StatusFailed, result.Status)
	assert.Equal(t, "LLM call failed: invalid x-api-key", result.Error)
}

func TestExecute_StopChunkStopsRun(t *testing.T) {
	fr := &fakeRunner{chunks: []models.StreamChunk{
		models.NewStatusChunk(models.StatusStopped, map[string]any{"message": "run stopped"}),
	}}
	exec, _ := executorFixture(fr)

	result := exec.Execute(context.Background(), RunRequest{
		RunID:    "run-1",
		ThreadID: "thread-1",
		AgentID:  "agent-1",
	})

	assert.Equal(t, agentrun.StatusStopped, result.Status)
	assert.Empty(t, result.Error)
}

func TestExecute_ThreadLoadFailure(t *testing.T) {
	fr := &fakeRunner{}
	pub := &collectPublisher{}
	exec := NewRunnerExecutor(ExecutorDeps{
		Runner:    fr,
		Threads:   &fakeThreads{err: errors.New("connection refused")},
		Agents:    &fakeAgents{},
		Publisher: pub,
	})

	result := exec.Execute(context.Background(), RunRequest{RunID: "run-1", ThreadID: "thread-1"})

	assert.Equal(t, agentrun.StatusFailed, result.Status)
	assert.Contains(t, result.Error, "failed to load thread")
	assert.Empty(t, fr.requests())

	// Subscribers get the failure too, not just the run row.
	chunks := pub.collected()
	require.Len(t, chunks, 1)
	assert.Equal(t, models.StatusError, chunks[0].Metadata["status_type"])
	assert.Contains(t, chunks[0].Metadata["message"], "failed to load thread")
}

func TestExecute_ModelPrecedence(t *testing.T) {
	thread := &ent.Thread{ID: "thread-1", AccountID: "acct-1"}
	agent := &ent.Agent{
		ID:           "agent-1",
		AccountID:    "acct-1",
		Name:         "writer",
		Model:        strptr("openai/gpt-4o"),
		SystemPrompt: "You write.",
	}

	t.Run("request model wins over agent model", func(t *testing.T) {
		fr := &fakeRunner{}
		exec := NewRunnerExecutor(ExecutorDeps{
			Runner:  fr,
			Threads: &fakeThreads{thread: thread},
			Agents:  &fakeAgents{agents: map[string]*ent.Agent{"agent-1": agent}},
		})

		exec.Execute(context.Background(), RunRequest{
			RunID:    "run-1",
			ThreadID: "thread-1",
			AgentID:  "agent-1",
			Model:    "claude-sonnet-4-20250514",
		})

		reqs := fr.requests()
		require.Len(t, reqs, 1)
		assert.Equal(t, "claude-sonnet-4-20250514", reqs[0].Model)
	})

	t.Run("agent model used when request has none", func(t *testing.T) {
		fr := &fakeRunner{}
		exec := NewRunnerExecutor(ExecutorDeps{
			Runner:  fr,
			Threads: &fakeThreads{thread: thread},
			Agents:  &fakeAgents{agents: map[string]*ent.Agent{"agent-1": agent}},
		})

		exec.Execute(context.Background(), RunRequest{RunID: "run-1", ThreadID: "thread-1", AgentID: "agent-1"})

		reqs := fr.requests()
		require.Len(t, reqs, 1)
		assert.Equal(t, "openai/gpt-4o", reqs[0].Model)
	})

	t.Run("configured default when neither names one", func(t *testing.T) {
		fr := &fakeRunner{}
		exec := NewRunnerExecutor(ExecutorDeps{
			Runner:  fr,
			Threads: &fakeThreads{thread: thread},
			Agents:  &fakeAgents{defaultErr: services.ErrNotFound},
			Config:  &config.LLMConfig{DefaultModel: "anthropic/claude-sonnet-4-20250514"},
		})

		exec.Execute(context.Background(), RunRequest{RunID: "run-1", ThreadID: "thread-1"})

		reqs := fr.requests()
		require.Len(t, reqs, 1)
		assert.Equal(t, "anthropic/claude-sonnet-4-20250514", reqs[0].Model)
		assert.Empty(t, reqs[0].SystemPrompt)
	})
}

func TestExecute_DefaultAgentResolved(t *testing.T) {
	fr := &fakeRunner{}
	exec := NewRunnerExecutor(ExecutorDeps{
		Runner:  fr,
		Threads: &fakeThreads{thread: &ent.Thread{ID: "thread-1", AccountID: "acct-1"}},
		Agents: &fakeAgents{defaultA: &ent.Agent{
			ID:           "agent-default",
			AccountID:    "acct-1",
			Name:         "assistant",
			SystemPrompt: "You are the house agent.",
			IsDefault:    true,
		}},
	})

	exec.Execute(context.Background(), RunRequest{RunID: "run-1", ThreadID: "thread-1"})

	reqs := fr.requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "agent-default", reqs[0].AgentID)
	assert.Equal(t, "You are the house agent.", reqs[0].SystemPrompt)
}
