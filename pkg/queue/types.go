// Package queue moves accepted agent runs from the API to background
// workers through a Redis list. Accepting a run and executing it are
// decoupled: the HTTP layer inserts the agent_runs row, pushes a
// RunRequest, and returns; a worker on some pod pops the request and
// drives the thread runner to a terminal status.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/weftlabs/weft/ent"
	"github.com/weftlabs/weft/ent/agentrun"
	"github.com/weftlabs/weft/pkg/models"
)

// ErrNoRunsAvailable signals an empty queue: the blocking pop timed out
// without a run to claim. Workers treat it as "poll again".
var ErrNoRunsAvailable = errors.New("no queued runs available")

// RunRequest is the queued unit of work. The agent_runs row already
// exists in running status when the request is pushed; the request
// carries only what the worker cannot read back from the row.
type RunRequest struct {
	RunID     string `json:"run_id"`
	ThreadID  string `json:"thread_id"`
	AgentID   string `json:"agent_id,omitempty"`
	Model     string `json:"model,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// ExecutionResult is the terminal outcome of one run. Intermediate
// output was already persisted and published while the run executed.
type ExecutionResult struct {
	Status agentrun.Status
	Error  string
}

// RunExecutor executes one claimed run to completion.
type RunExecutor interface {
	Execute(ctx context.Context, req RunRequest) ExecutionResult
}

// RunStore is the run lifecycle surface the pool needs. Implemented by
// services.RunService.
type RunStore interface {
	GetRunStatus(ctx context.Context, runID string) (agentrun.Status, error)
	ClaimForPod(ctx context.Context, runID, podID string) error
	Heartbeat(ctx context.Context, runID string) error
	CompleteRun(ctx context.Context, runID string, status agentrun.Status, runErr string) error
	FindStaleRunning(ctx context.Context, threshold time.Duration) ([]*ent.AgentRun, error)
	FindRunningForPod(ctx context.Context, podID string) ([]*ent.AgentRun, error)
}

// ChunkPublisher fans run output out to stream subscribers. Implemented
// by events.Publisher; a nil publisher drops chunks.
type ChunkPublisher interface {
	PublishChunk(ctx context.Context, threadID, runID string, chunk models.StreamChunk) error
}

// PoolHealth is a point-in-time snapshot of the worker pool, served by
// the health endpoint.
type PoolHealth struct {
	PodID            string         `json:"pod_id"`
	QueueDepth       int64          `json:"queue_depth"`
	ActiveRuns       int            `json:"active_runs"`
	Workers          []WorkerHealth `json:"workers"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int64          `json:"orphans_recovered"`
}

// WorkerHealth describes one worker goroutine.
type WorkerHealth struct {
	ID            int       `json:"id"`
	Status        string    `json:"status"`
	LastActivity  time.Time `json:"last_activity"`
	RunsProcessed int64     `json:"runs_processed"`
}
