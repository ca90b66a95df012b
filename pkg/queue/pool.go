package queue

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/weftlabs/weft/pkg/config"
	"github.com/weftlabs/weft/pkg/observe"
)

// WorkerPool runs the configured number of queue workers plus the
// orphan-detection loop, and owns the cancel registry used for same-pod
// run cancellation.
type WorkerPool struct {
	podID     string
	queue     *Queue
	executor  RunExecutor
	runs      RunStore
	publisher ChunkPublisher
	config    *config.QueueConfig
	metrics   *observe.Metrics
	logger    *slog.Logger

	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu         sync.Mutex
	activeRuns map[string]context.CancelFunc
	started    bool

	orphans orphanState
}

// NewWorkerPool creates a pool. Nothing runs until Start. publisher may
// be nil (streaming disabled); workers then skip their synthetic
// terminal chunks.
func NewWorkerPool(podID string, q *Queue, executor RunExecutor, runs RunStore, publisher ChunkPublisher, cfg *config.QueueConfig) *WorkerPool {
	if cfg == nil {
		cfg = config.DefaultQueueConfig()
	}
	return &WorkerPool{
		podID:      podID,
		queue:      q,
		executor:   executor,
		runs:       runs,
		publisher:  publisher,
		config:     cfg,
		metrics:    observe.DefaultMetrics(),
		logger:     slog.With("component", "worker_pool", "pod_id", podID),
		stopCh:     make(chan struct{}),
		activeRuns: make(map[string]context.CancelFunc),
	}
}

// Start launches the workers and the orphan-detection loop. The context
// bounds every run execution; cancel it only after Stop has drained.
func (p *WorkerPool) Start(ctx context.Context) {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		return
	}
	p.started = true
	for i := 0; i < p.config.WorkerCount; i++ {
		w := newWorker(i, p)
		p.workers = append(p.workers, w)
		p.wg.Add(1)
		go w.run(ctx)
	}
	p.mu.Unlock()

	p.wg.Add(1)
	go p.runOrphanDetection(ctx)

	p.logger.Info("worker pool started",
		"worker_count", p.config.WorkerCount,
		"queue_key", p.config.QueueKey)
}

// Stop signals all workers and waits up to the graceful-shutdown
// timeout for in-flight runs to finish. Runs still active after the
// wait keep going until the start context is cancelled; if this pod
// dies with them, orphan detection on a surviving pod recovers the
// rows.
func (p *WorkerPool) Stop() {
	p.stopOnce.Do(func() {
		p.logger.Info("worker pool stopping")
		close(p.stopCh)

		done := make(chan struct{})
		go func() {
			p.wg.Wait()
			close(done)
		}()
		select {
		case <-done:
			p.logger.Info("worker pool stopped")
		case <-time.After(p.config.GracefulShutdownTimeout):
			p.logger.Warn("worker pool shutdown timed out with runs still active",
				"active_runs", p.activeCount())
		}
	})
}

// CancelRun cancels a run executing on this pod. Returns false when the
// run is not here; cross-pod stops land at the runner's between-
// iteration status check instead.
func (p *WorkerPool) CancelRun(runID string) bool {
	p.mu.Lock()
	cancel, ok := p.activeRuns[runID]
	p.mu.Unlock()
	if ok {
		cancel()
	}
	return ok
}

func (p *WorkerPool) register(runID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeRuns[runID] = cancel
}

func (p *WorkerPool) unregister(runID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeRuns, runID)
}

func (p *WorkerPool) activeCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.activeRuns)
}

// Health snapshots the pool for the health endpoint. Queue depth -1
// means Redis did not answer.
func (p *WorkerPool) Health(ctx context.Context) PoolHealth {
	depth, err := p.queue.Depth(ctx)
	if err != nil {
		p.logger.Warn("failed to read queue depth", "error", err)
		depth = -1
	}

	p.mu.Lock()
	workers := make([]WorkerHealth, 0, len(p.workers))
	for _, w := range p.workers {
		workers = append(workers, w.health())
	}
	active := len(p.activeRuns)
	p.mu.Unlock()

	lastScan, recovered := p.orphans.snapshot()
	return PoolHealth{
		PodID:            p.podID,
		QueueDepth:       depth,
		ActiveRuns:       active,
		Workers:          workers,
		LastOrphanScan:   lastScan,
		OrphansRecovered: recovered,
	}
}
