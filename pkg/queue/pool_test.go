package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftlabs/weft/ent"
	"github.com/weftlabs/weft/ent/agentrun"
	"github.com/weftlabs/weft/pkg/config"
	"github.com/weftlabs/weft/pkg/models"
	"github.com/weftlabs/weft/pkg/services"
)

type completion struct {
	runID  string
	status agentrun.Status
	err    string
}

type fakeRunStore struct {
	mu          sync.Mutex
	statuses    map[string]agentrun.Status
	claims      map[string]string
	heartbeats  map[string]int
	completions []completion
	stale       []*ent.AgentRun
	running     []*ent.AgentRun
}

func newFakeRunStore() *fakeRunStore {
	return &fakeRunStore{
		statuses:   make(map[string]agentrun.Status),
		claims:     make(map[string]string),
		heartbeats: make(map[string]int),
	}
}

func (f *fakeRunStore) GetRunStatus(_ context.Context, runID string) (agentrun.Status, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	st, ok := f.statuses[runID]
	if !ok {
		return "", services.ErrNotFound
	}
	return st, nil
}

func (f *fakeRunStore) ClaimForPod(_ context.Context, runID, podID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.claims[runID] = podID
	return nil
}

func (f *fakeRunStore) Heartbeat(_ context.Context, runID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.heartbeats[runID]++
	return nil
}

func (f *fakeRunStore) CompleteRun(_ context.Context, runID string, status agentrun.Status, runErr string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses[runID] = status
	f.completions = append(f.completions, completion{runID: runID, status: status, err: runErr})
	return nil
}

func (f *fakeRunStore) FindStaleRunning(context.Context, time.Duration) ([]*ent.AgentRun, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*ent.AgentRun(nil), f.stale...), nil
}

func (f *fakeRunStore) FindRunningForPod(context.Context, string) ([]*ent.AgentRun, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*ent.AgentRun(nil), f.running...), nil
}

func (f *fakeRunStore) lastCompletion() (completion, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.completions) == 0 {
		return completion{}, false
	}
	return f.completions[len(f.completions)-1], true
}

func (f *fakeRunStore) claimedBy(runID string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.claims[runID]
}

func (f *fakeRunStore) heartbeatCount(runID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.heartbeats[runID]
}

// scriptedExecutor signals when a run starts and blocks until released
// or cancelled. A cancelled run reports completed, the way the real
// executor does when the runner exits silently on a dead context.
type scriptedExecutor struct {
	started chan string
	release chan struct{}
	result  ExecutionResult

	mu   sync.Mutex
	runs []RunRequest
}

func newScriptedExecutor(result ExecutionResult) *scriptedExecutor {
	return &scriptedExecutor{
		started: make(chan string, 8),
		release: make(chan struct{}),
		result:  result,
	}
}

func (s *scriptedExecutor) Execute(ctx context.Context, req RunRequest) ExecutionResult {
	s.mu.Lock()
	s.runs = append(s.runs, req)
	s.mu.Unlock()
	s.started <- req.RunID
	select {
	case <-s.release:
		return s.result
	case <-ctx.Done():
		return ExecutionResult{Status: agentrun.StatusCompleted}
	}
}

func (s *scriptedExecutor) executed() []RunRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RunRequest(nil), s.runs...)
}

func poolFixture(t *testing.T, store *fakeRunStore, exec RunExecutor, pub ChunkPublisher) (*WorkerPool, *Queue) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := &config.QueueConfig{
		WorkerCount:             1,
		QueueKey:                "test:run_queue",
		DequeueTimeout:          50 * time.Millisecond,
		RunTimeout:              5 * time.Second,
		GracefulShutdownTimeout: 2 * time.Second,
		HeartbeatInterval:       20 * time.Millisecond,
		ActiveRunTTL:            time.Second,
		OrphanDetectionInterval: time.Hour,
		OrphanThreshold:         time.Minute,
	}
	q := New(rdb, cfg)
	return NewWorkerPool("pod-test", q, exec, store, pub, cfg), q
}

func TestWorkerPool_ProcessesQueuedRun(t *testing.T) {
	store := newFakeRunStore()
	store.statuses["run-1"] = agentrun.StatusRunning
	exec := newScriptedExecutor(ExecutionResult{Status: agentrun.StatusCompleted})
	close(exec.release)

	pool, q := poolFixture(t, store, exec, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pool.Start(ctx)
	defer pool.Stop()

	require.NoError(t, q.Enqueue(ctx, RunRequest{RunID: "run-1", ThreadID: "thread-1"}))

	require.Eventually(t, func() bool {
		c, ok := store.lastCompletion()
		return ok && c.runID == "run-1"
	}, 2*time.Second, 10*time.Millisecond)

	c, _ := store.lastCompletion()
	assert.Equal(t, agentrun.StatusCompleted, c.status)
	assert.Empty(t, c.err)
	assert.Equal(t, "pod-test", store.claimedBy("run-1"))

	alive, err := q.RunAlive(ctx, "pod-test", "run-1")
	require.NoError(t, err)
	assert.False(t, alive, "terminal runs clear their liveness key")
}

func TestWorkerPool_SkipsRunStoppedWhileQueued(t *testing.T) {
	store := newFakeRunStore()
	store.statuses["run-stopped"] = agentrun.StatusStopped
	store.statuses["run-live"] = agentrun.StatusRunning
	exec := newScriptedExecutor(ExecutionResult{Status: agentrun.StatusCompleted})
	close(exec.release)

	pool, q := poolFixture(t, store, exec, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pool.Start(ctx)
	defer pool.Stop()

	require.NoError(t, q.Enqueue(ctx, RunRequest{RunID: "run-stopped", ThreadID: "thread-1"}))
	require.NoError(t, q.Enqueue(ctx, RunRequest{RunID: "run-live", ThreadID: "thread-2"}))

	require.Eventually(t, func() bool {
		c, ok := store.lastCompletion()
		return ok && c.runID == "run-live"
	}, 2*time.Second, 10*time.Millisecond)

	executed := exec.executed()
	require.Len(t, executed, 1, "terminal run must not re-execute")
	assert.Equal(t, "run-live", executed[0].RunID)
}

func TestWorkerPool_CancelRunStopsExecution(t *testing.T) {
	store := newFakeRunStore()
	store.statuses["run-1"] = agentrun.StatusRunning
	exec := newScriptedExecutor(ExecutionResult{Status: agentrun.StatusCompleted})
	pub := &collectPublisher{}

	pool, q := poolFixture(t, store, exec, pub)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pool.Start(ctx)
	defer pool.Stop()

	require.NoError(t, q.Enqueue(ctx, RunRequest{RunID: "run-1", ThreadID: "thread-1"}))

	select {
	case <-exec.started:
	case <-time.After(2 * time.Second):
		t.Fatal("run never started")
	}

	assert.False(t, pool.CancelRun("other-run"))
	assert.True(t, pool.CancelRun("run-1"))

	require.Eventually(t, func() bool {
		c, ok := store.lastCompletion()
		return ok && c.runID == "run-1"
	}, 2*time.Second, 10*time.Millisecond)

	c, _ := store.lastCompletion()
	assert.Equal(t, agentrun.StatusStopped, c.status, "context cancellation reads as a stop")

	// The runner died with the context, so the worker owes subscribers
	// the terminal chunk.
	chunks := pub.collected()
	require.NotEmpty(t, chunks)
	last := chunks[len(chunks)-1]
	assert.Equal(t, models.ChunkTypeStatus, last.Type)
	assert.Equal(t, models.StatusStopped, last.Metadata["status_type"])
	assert.Equal(t, "run stopped", last.Metadata["message"])
}

func TestWorkerPool_HeartbeatsWhileRunning(t *testing.T) {
	store := newFakeRunStore()
	store.statuses["run-1"] = agentrun.StatusRunning
	exec := newScriptedExecutor(ExecutionResult{Status: agentrun.StatusCompleted})

	pool, q := poolFixture(t, store, exec, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pool.Start(ctx)
	defer pool.Stop()

	require.NoError(t, q.Enqueue(ctx, RunRequest{RunID: "run-1", ThreadID: "thread-1"}))

	select {
	case <-exec.started:
	case <-time.After(2 * time.Second):
		t.Fatal("run never started")
	}

	alive, err := q.RunAlive(ctx, "pod-test", "run-1")
	require.NoError(t, err)
	assert.True(t, alive, "claimed runs carry a liveness key")

	require.Eventually(t, func() bool {
		return store.heartbeatCount("run-1") >= 2
	}, 2*time.Second, 10*time.Millisecond)

	close(exec.release)
}

func TestWorkerPool_Health(t *testing.T) {
	store := newFakeRunStore()
	exec := newScriptedExecutor(ExecutionResult{Status: agentrun.StatusCompleted})
	close(exec.release)

	pool, q := poolFixture(t, store, exec, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pool.Start(ctx)
	defer pool.Stop()

	// The queued run is unknown to the store, so the worker drops it
	// after the status check; the queue still drains.
	require.NoError(t, q.Enqueue(ctx, RunRequest{RunID: "run-x", ThreadID: "thread-x"}))
	require.Eventually(t, func() bool {
		depth, err := q.Depth(ctx)
		return err == nil && depth == 0
	}, 2*time.Second, 10*time.Millisecond)

	health := pool.Health(ctx)
	assert.Equal(t, "pod-test", health.PodID)
	assert.Equal(t, int64(0), health.QueueDepth)
	assert.Equal(t, 0, health.ActiveRuns)
	require.Len(t, health.Workers, 1)
	assert.NotZero(t, health.Workers[0].LastActivity)
}

func TestDetectAndRecoverOrphans(t *testing.T) {
	deadPod := "pod-dead"
	livePod := "pod-live"
	store := newFakeRunStore()
	store.statuses["run-dead"] = agentrun.StatusRunning
	store.statuses["run-live"] = agentrun.StatusRunning
	store.statuses["run-unclaimed"] = agentrun.StatusRunning
	store.stale = []*ent.AgentRun{
		{ID: "run-dead", ThreadID: "thread-1", PodID: &deadPod, StartedAt: time.Now().Add(-10 * time.Minute)},
		{ID: "run-live", ThreadID: "thread-2", PodID: &livePod, StartedAt: time.Now().Add(-10 * time.Minute)},
		{ID: "run-unclaimed", ThreadID: "thread-3", StartedAt: time.Now().Add(-10 * time.Minute)},
	}
	exec := newScriptedExecutor(ExecutionResult{Status: agentrun.StatusCompleted})
	pool, q := poolFixture(t, store, exec, nil)

	ctx := context.Background()
	require.NoError(t, q.MarkActive(ctx, livePod, "run-live"))

	pool.detectAndRecoverOrphans(ctx)

	st, err := store.GetRunStatus(ctx, "run-dead")
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusFailed, st)

	st, err = store.GetRunStatus(ctx, "run-live")
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusRunning, st, "live heartbeat key protects the run")

	st, err = store.GetRunStatus(ctx, "run-unclaimed")
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusFailed, st, "a never-claimed stale run is an orphan")

	_, recovered := pool.orphans.snapshot()
	assert.Equal(t, int64(2), recovered)

	c, ok := store.lastCompletion()
	require.True(t, ok)
	assert.Equal(t, "orphaned run recovered", c.err)
}

func TestCleanupStartupOrphans(t *testing.T) {
	store := newFakeRunStore()
	store.statuses["run-1"] = agentrun.StatusRunning
	store.statuses["run-2"] = agentrun.StatusRunning
	store.running = []*ent.AgentRun{
		{ID: "run-1", ThreadID: "thread-1"},
		{ID: "run-2", ThreadID: "thread-2"},
	}
	exec := newScriptedExecutor(ExecutionResult{Status: agentrun.StatusCompleted})
	_, q := poolFixture(t, store, exec, nil)

	ctx := context.Background()
	require.NoError(t, q.MarkActive(ctx, "pod-test", "run-1"))

	n, err := CleanupStartupOrphans(ctx, store, q, "pod-test")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, runID := range []string{"run-1", "run-2"} {
		st, err := store.GetRunStatus(ctx, runID)
		require.NoError(t, err)
		assert.Equal(t, agentrun.StatusFailed, st)
	}

	alive, err := q.RunAlive(ctx, "pod-test", "run-1")
	require.NoError(t, err)
	assert.False(t, alive, "stale liveness keys are cleared")
}
