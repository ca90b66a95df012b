package queue

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftlabs/weft/pkg/config"
)

func testQueue(t *testing.T) (*Queue, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := config.DefaultQueueConfig()
	cfg.QueueKey = "test:run_queue"
	cfg.ActiveRunTTL = time.Second
	return New(rdb, cfg), mr
}

func TestQueue_EnqueueDequeueFIFO(t *testing.T) {
	q, _ := testQueue(t)
	ctx := context.Background()

	first := RunRequest{RunID: "run-1", ThreadID: "thread-1", AgentID: "agent-1"}
	second := RunRequest{RunID: "run-2", ThreadID: "thread-2", Model: "gpt-4o"}
	require.NoError(t, q.Enqueue(ctx, first))
	require.NoError(t, q.Enqueue(ctx, second))

	depth, err := q.Depth(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), depth)

	got, err := q.Dequeue(ctx, 100*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, first, *got)

	got, err = q.Dequeue(ctx, 100*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, second, *got)

	depth, err = q.Depth(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), depth)
}

func TestQueue_DequeueEmptyTimesOut(t *testing.T) {
	q, _ := testQueue(t)

	got, err := q.Dequeue(context.Background(), 50*time.Millisecond)
	require.ErrorIs(t, err, ErrNoRunsAvailable)
	assert.Nil(t, got)
}

func TestQueue_DequeueMalformedPayload(t *testing.T) {
	q, mr := testQueue(t)

	_, err := mr.Lpush("test:run_queue", "not json")
	require.NoError(t, err)

	got, err := q.Dequeue(context.Background(), 100*time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
	assert.Nil(t, got)
}

func TestQueue_ActiveRunKeys(t *testing.T) {
	q, mr := testQueue(t)
	ctx := context.Background()

	alive, err := q.RunAlive(ctx, "pod-1", "run-1")
	require.NoError(t, err)
	assert.False(t, alive)

	require.NoError(t, q.MarkActive(ctx, "pod-1", "run-1"))

	alive, err = q.RunAlive(ctx, "pod-1", "run-1")
	require.NoError(t, err)
	assert.True(t, alive)

	// The key carries the configured TTL so a dead pod's marker expires.
	ttl := mr.TTL("active_run:pod-1:run-1")
	assert.Equal(t, time.Second, ttl)

	// Another pod's key is a different run instance.
	alive, err = q.RunAlive(ctx, "pod-2", "run-1")
	require.NoError(t, err)
	assert.False(t, alive)

	require.NoError(t, q.ClearActive(ctx, "pod-1", "run-1"))

	alive, err = q.RunAlive(ctx, "pod-1", "run-1")
	require.NoError(t, err)
	assert.False(t, alive)
}
