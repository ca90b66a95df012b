package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/weftlabs/weft/pkg/config"
)

// activeRunKey is the liveness marker for a claimed run. The owning pod
// refreshes the TTL on every heartbeat; orphan detection treats a
// missing key as a dead worker.
func activeRunKey(podID, runID string) string {
	return fmt.Sprintf("active_run:%s:%s", podID, runID)
}

// Queue is the Redis-backed run queue. The API side pushes, workers
// pop; both share the active-run liveness keys.
type Queue struct {
	rdb *redis.Client
	key string
	ttl time.Duration
}

// New creates a Queue on the configured Redis list.
func New(rdb *redis.Client, cfg *config.QueueConfig) *Queue {
	if cfg == nil {
		cfg = config.DefaultQueueConfig()
	}
	return &Queue{rdb: rdb, key: cfg.QueueKey, ttl: cfg.ActiveRunTTL}
}

// Enqueue pushes a run request onto the queue.
func (q *Queue) Enqueue(ctx context.Context, req RunRequest) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to encode run request: %w", err)
	}
	if err := q.rdb.LPush(ctx, q.key, payload).Err(); err != nil {
		return fmt.Errorf("failed to enqueue run %s: %w", req.RunID, err)
	}
	return nil
}

// Dequeue blocks up to timeout for the next queued run. Returns
// ErrNoRunsAvailable when the queue stayed empty.
func (q *Queue) Dequeue(ctx context.Context, timeout time.Duration) (*RunRequest, error) {
	vals, err := q.rdb.BRPop(ctx, timeout, q.key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoRunsAvailable
	}
	if err != nil {
		return nil, fmt.Errorf("failed to pop run queue: %w", err)
	}
	// BRPOP replies [key, value].
	if len(vals) != 2 {
		return nil, fmt.Errorf("unexpected BRPOP reply of length %d", len(vals))
	}
	var req RunRequest
	if err := json.Unmarshal([]byte(vals[1]), &req); err != nil {
		return nil, fmt.Errorf("failed to decode queued run: %w", err)
	}
	return &req, nil
}

// Depth reports the number of queued runs.
func (q *Queue) Depth(ctx context.Context) (int64, error) {
	n, err := q.rdb.LLen(ctx, q.key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to read queue depth: %w", err)
	}
	return n, nil
}

// MarkActive writes the liveness key for a run owned by podID. Calling
// it again extends the TTL, so heartbeats reuse it.
func (q *Queue) MarkActive(ctx context.Context, podID, runID string) error {
	if err := q.rdb.Set(ctx, activeRunKey(podID, runID), "1", q.ttl).Err(); err != nil {
		return fmt.Errorf("failed to mark run %s active: %w", runID, err)
	}
	return nil
}

// ClearActive removes the liveness key once the run reached a terminal
// status.
func (q *Queue) ClearActive(ctx context.Context, podID, runID string) error {
	if err := q.rdb.Del(ctx, activeRunKey(podID, runID)).Err(); err != nil {
		return fmt.Errorf("failed to clear active-run key for %s: %w", runID, err)
	}
	return nil
}

// RunAlive reports whether a liveness key exists for the run on the
// given pod.
func (q *Queue) RunAlive(ctx context.Context, podID, runID string) (bool, error) {
	n, err := q.rdb.Exists(ctx, activeRunKey(podID, runID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check active-run key: %w", err)
	}
	return n > 0, nil
}
