package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/weftlabs/weft/ent/agentrun"
	"github.com/weftlabs/weft/pkg/models"
	"github.com/weftlabs/weft/pkg/services"
)

// completeTimeout bounds the terminal status write. The write uses a
// fresh background context because the run context is usually already
// cancelled when it happens.
const completeTimeout = 5 * time.Second

// Worker is one queue consumer goroutine. It blocks on the Redis list,
// claims popped runs for its pod, and hands them to the executor.
type Worker struct {
	id     int
	pool   *WorkerPool
	logger *slog.Logger

	mu            sync.Mutex
	status        string
	lastActivity  time.Time
	runsProcessed int64
}

func newWorker(id int, pool *WorkerPool) *Worker {
	return &Worker{
		id:     id,
		pool:   pool,
		status: "idle",
		logger: pool.logger.With("worker_id", id),
	}
}

// run is the worker loop. The blocking pop doubles as the idle wait, so
// there is no poll interval; backoff applies only to Redis failures.
func (w *Worker) run(ctx context.Context) {
	defer w.pool.wg.Done()
	w.logger.Info("worker started")
	for {
		select {
		case <-w.pool.stopCh:
			w.logger.Info("worker stopping")
			return
		case <-ctx.Done():
			w.logger.Info("worker context cancelled")
			return
		default:
			err := w.pollAndProcess(ctx)
			switch {
			case err == nil, errors.Is(err, ErrNoRunsAvailable):
				// The pop already waited; go straight back to the queue.
			case ctx.Err() != nil:
				// Shutdown raced the pop; the select above exits next pass.
			default:
				w.logger.Error("failed to poll run queue", "error", err)
				w.backoff(ctx)
			}
		}
	}
}

func (w *Worker) pollAndProcess(ctx context.Context) error {
	w.setStatus("waiting")
	req, err := w.pool.queue.Dequeue(ctx, w.pool.config.DequeueTimeout)
	if err != nil {
		return err
	}
	w.process(ctx, req)
	return nil
}

// process executes one popped run: claim, heartbeat, execute, write the
// terminal status.
func (w *Worker) process(ctx context.Context, req *RunRequest) {
	logger := w.logger.With("run_id", req.RunID, "thread_id", req.ThreadID)
	w.setStatus("processing " + req.RunID)
	defer w.setStatus("idle")

	// The row may have reached a terminal status while queued (user
	// stop, orphan recovery). Skip instead of re-running.
	status, err := w.pool.runs.GetRunStatus(ctx, req.RunID)
	switch {
	case errors.Is(err, services.ErrNotFound):
		logger.Warn("queued run no longer exists")
		return
	case err != nil:
		logger.Error("failed to check run status", "error", err)
		return
	case status != agentrun.StatusRunning:
		logger.Debug("run reached terminal status before pickup", "status", status)
		return
	}

	if err := w.pool.runs.ClaimForPod(ctx, req.RunID, w.pool.podID); err != nil {
		logger.Error("failed to claim run", "error", err)
		return
	}
	if err := w.pool.queue.MarkActive(ctx, w.pool.podID, req.RunID); err != nil {
		logger.Warn("failed to mark run active", "error", err)
	}

	runCtx, cancel := context.WithTimeout(ctx, w.pool.config.RunTimeout)
	defer cancel()
	w.pool.register(req.RunID, cancel)
	defer w.pool.unregister(req.RunID)

	w.pool.metrics.ActiveRuns.Add(ctx, 1)
	defer w.pool.metrics.ActiveRuns.Add(ctx, -1)

	heartbeatDone := make(chan struct{})
	go w.runHeartbeat(runCtx, req.RunID, heartbeatDone)

	started := time.Now()
	logger.Info("run execution starting")
	result := w.pool.executor.Execute(runCtx, *req)
	close(heartbeatDone)

	// A run the context killed mid-iteration looks completed to the
	// executor; the context error distinguishes a stop from a timeout.
	// The runner exits without a terminal chunk on a dead context, so
	// the worker publishes one for stream subscribers.
	var synthetic *models.StreamChunk
	if result.Status == agentrun.StatusCompleted {
		switch {
		case errors.Is(runCtx.Err(), context.DeadlineExceeded):
			result = ExecutionResult{
				Status: agentrun.StatusFailed,
				Error:  fmt.Sprintf("run timed out after %s", w.pool.config.RunTimeout),
			}
			chunk := models.NewErrorChunk(result.Error)
			synthetic = &chunk
		case runCtx.Err() != nil:
			result.Status = agentrun.StatusStopped
			chunk := models.NewStatusChunk(models.StatusStopped, map[string]any{"message": "run stopped"})
			synthetic = &chunk
		}
	}

	completeCtx, done := context.WithTimeout(context.Background(), completeTimeout)
	defer done()
	if err := w.pool.runs.CompleteRun(completeCtx, req.RunID, result.Status, result.Error); err != nil {
		logger.Error("failed to write terminal run status",
			"status", result.Status,
			"error", err)
	}
	if synthetic != nil && w.pool.publisher != nil {
		if err := w.pool.publisher.PublishChunk(completeCtx, req.ThreadID, req.RunID, *synthetic); err != nil {
			logger.Warn("failed to publish terminal status chunk", "error", err)
		}
	}
	if err := w.pool.queue.ClearActive(completeCtx, w.pool.podID, req.RunID); err != nil {
		logger.Warn("failed to clear active-run key", "error", err)
	}

	w.recordProcessed()
	logger.Info("run finished",
		"status", result.Status,
		"duration", time.Since(started))
}

// runHeartbeat refreshes the run row heartbeat and the Redis liveness
// key until the run finishes. Both writes are advisory; failures are
// logged and retried on the next tick.
func (w *Worker) runHeartbeat(ctx context.Context, runID string, done <-chan struct{}) {
	ticker := time.NewTicker(w.pool.config.HeartbeatInterval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.pool.runs.Heartbeat(ctx, runID); err != nil {
				w.logger.Warn("failed to heartbeat run", "run_id", runID, "error", err)
			}
			if err := w.pool.queue.MarkActive(ctx, w.pool.podID, runID); err != nil {
				w.logger.Warn("failed to refresh active-run key", "run_id", runID, "error", err)
			}
		}
	}
}

// backoff sleeps briefly after a Redis failure so a dead broker does
// not spin the loop. Jitter spreads reconnection across workers.
func (w *Worker) backoff(ctx context.Context) {
	delay := time.Second + time.Duration(rand.Int63n(int64(time.Second)))
	select {
	case <-time.After(delay):
	case <-w.pool.stopCh:
	case <-ctx.Done():
	}
}

func (w *Worker) setStatus(status string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.lastActivity = time.Now()
}

func (w *Worker) recordProcessed() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.runsProcessed++
}

func (w *Worker) health() WorkerHealth {
	w.mu.Lock()
	defer w.mu.Unlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        w.status,
		LastActivity:  w.lastActivity,
		RunsProcessed: w.runsProcessed,
	}
}
