package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCatchupQuerier implements CatchupQuerier for tests.
type mockCatchupQuerier struct {
	events []CatchupEvent
	err    error

	mu      sync.Mutex
	calls   int
	sinceID int
}

func (m *mockCatchupQuerier) GetCatchupEvents(_ context.Context, _ string, sinceID, limit int) ([]CatchupEvent, error) {
	m.mu.Lock()
	m.calls++
	m.sinceID = sinceID
	m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	if limit > 0 && len(m.events) > limit {
		return m.events[:limit], nil
	}
	return m.events, nil
}

func (m *mockCatchupQuerier) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *mockCatchupQuerier) lastSinceID() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sinceID
}

// recvEvent reads one decoded event off the subscription or fails.
func recvEvent(t *testing.T, sub *Subscription) map[string]any {
	t.Helper()
	select {
	case payload, ok := <-sub.Events:
		require.True(t, ok, "subscription closed unexpectedly")
		var msg map[string]any
		require.NoError(t, json.Unmarshal(payload, &msg))
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

// assertNoEvent asserts the subscription buffer is empty right now.
func assertNoEvent(t *testing.T, sub *Subscription) {
	t.Helper()
	select {
	case payload, ok := <-sub.Events:
		if ok {
			t.Fatalf("unexpected event: %s", payload)
		}
	default:
	}
}

func TestConnectionManager_BroadcastFanOut(t *testing.T) {
	m := NewConnectionManager(nil)
	ctx := context.Background()

	sub1, err := m.Subscribe(ctx, "thread:t1", -1)
	require.NoError(t, err)
	defer m.Unsubscribe(sub1)
	sub2, err := m.Subscribe(ctx, "thread:t1", -1)
	require.NoError(t, err)
	defer m.Unsubscribe(sub2)
	other, err := m.Subscribe(ctx, "thread:t2", -1)
	require.NoError(t, err)
	defer m.Unsubscribe(other)

	payload, _ := json.Marshal(map[string]string{"type": "test", "data": "hello"})
	m.Broadcast("thread:t1", payload)

	msg1 := recvEvent(t, sub1)
	msg2 := recvEvent(t, sub2)
	assert.Equal(t, "hello", msg1["data"])
	assert.Equal(t, "hello", msg2["data"])
	assertNoEvent(t, other)
}

func TestConnectionManager_SubscriberAccounting(t *testing.T) {
	m := NewConnectionManager(nil)
	ctx := context.Background()

	sub1, err := m.Subscribe(ctx, "thread:t1", -1)
	require.NoError(t, err)
	sub2, err := m.Subscribe(ctx, "thread:t1", -1)
	require.NoError(t, err)

	assert.Equal(t, 2, m.subscriberCount("thread:t1"))
	assert.Equal(t, 2, m.ActiveSubscribers())

	m.Unsubscribe(sub1)
	assert.Equal(t, 1, m.subscriberCount("thread:t1"))

	// Unsubscribe closes the event channel.
	_, ok := <-sub1.Events
	assert.False(t, ok)

	m.Unsubscribe(sub2)
	assert.Equal(t, 0, m.subscriberCount("thread:t1"))
	assert.Equal(t, 0, m.ActiveSubscribers())
}

func TestConnectionManager_UnsubscribeIdempotent(t *testing.T) {
	m := NewConnectionManager(nil)
	sub, err := m.Subscribe(context.Background(), "thread:t1", -1)
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		m.Unsubscribe(sub)
		m.Unsubscribe(sub)
		m.Unsubscribe(nil)
	})
}

func TestConnectionManager_SlowSubscriberDropsEvents(t *testing.T) {
	m := NewConnectionManager(nil)
	sub, err := m.Subscribe(context.Background(), "thread:slow", -1)
	require.NoError(t, err)
	defer m.Unsubscribe(sub)

	payload := []byte(`{"type":"test"}`)
	for i := 0; i < subscriberBuffer+10; i++ {
		m.Broadcast("thread:slow", payload)
	}

	// Overflow is dropped, not blocked on.
	assert.Equal(t, subscriberBuffer, len(sub.events))

	msg := recvEvent(t, sub)
	assert.Equal(t, "test", msg["type"])
}

func TestConnectionManager_CatchupReplay(t *testing.T) {
	q := &mockCatchupQuerier{events: []CatchupEvent{
		{ID: 10, Payload: map[string]any{"type": EventTypeChunk, "seq": float64(1)}},
		{ID: 11, Payload: map[string]any{"type": EventTypeChunk, "seq": float64(2)}},
		{ID: 12, Payload: map[string]any{"type": EventTypeChunk, "seq": float64(3)}},
	}}
	m := NewConnectionManager(q)

	sub, err := m.Subscribe(context.Background(), "thread:t1", 9)
	require.NoError(t, err)
	defer m.Unsubscribe(sub)

	// Replayed in order, each carrying its row id as the cursor.
	for i := 1; i <= 3; i++ {
		msg := recvEvent(t, sub)
		assert.Equal(t, float64(i), msg["seq"])
		assert.Equal(t, float64(i+9), msg["db_event_id"])
	}
	assertNoEvent(t, sub)
	assert.Equal(t, 9, q.lastSinceID())
}

func TestConnectionManager_NegativeLastEventIDSkipsReplay(t *testing.T) {
	q := &mockCatchupQuerier{events: []CatchupEvent{
		{ID: 1, Payload: map[string]any{"seq": float64(1)}},
	}}
	m := NewConnectionManager(q)

	sub, err := m.Subscribe(context.Background(), "thread:t1", -1)
	require.NoError(t, err)
	defer m.Unsubscribe(sub)

	assertNoEvent(t, sub)
	assert.Equal(t, 0, q.callCount())
}

func TestConnectionManager_CatchupOverflow(t *testing.T) {
	many := make([]CatchupEvent, catchupLimit+5)
	for i := range many {
		many[i] = CatchupEvent{
			ID:      i + 1,
			Payload: map[string]any{"type": EventTypeChunk, "seq": i},
		}
	}
	m := NewConnectionManager(&mockCatchupQuerier{events: many})

	sub, err := m.Subscribe(context.Background(), "thread:t1", 0)
	require.NoError(t, err)
	defer m.Unsubscribe(sub)

	for i := 0; i < catchupLimit; i++ {
		msg := recvEvent(t, sub)
		require.NotEqual(t, "catchup.overflow", msg["type"], "overflow arrived before all events")
	}

	overflow := recvEvent(t, sub)
	assert.Equal(t, "catchup.overflow", overflow["type"])
	assert.Equal(t, true, overflow["has_more"])
	assert.Equal(t, "thread:t1", overflow["channel"])
	assertNoEvent(t, sub)
}

func TestConnectionManager_CatchupErrorNonFatal(t *testing.T) {
	q := &mockCatchupQuerier{err: fmt.Errorf("database unreachable")}
	m := NewConnectionManager(q)

	// The subscription survives a failed replay; live delivery still works.
	sub, err := m.Subscribe(context.Background(), "thread:t1", 0)
	require.NoError(t, err)
	defer m.Unsubscribe(sub)
	assertNoEvent(t, sub)

	payload, _ := json.Marshal(map[string]string{"type": "live"})
	m.Broadcast("thread:t1", payload)

	msg := recvEvent(t, sub)
	assert.Equal(t, "live", msg["type"])
}

func TestConnectionManager_BroadcastToUnknownChannel(t *testing.T) {
	m := NewConnectionManager(nil)
	assert.NotPanics(t, func() {
		m.Broadcast("thread:nobody", []byte(`{"type":"test"}`))
	})
}

func TestConnectionManager_SetListener(t *testing.T) {
	m := NewConnectionManager(nil)
	assert.Nil(t, m.listener)

	listener := NewNotifyListener("host=localhost", m)
	m.SetListener(listener)

	m.listenerMu.RLock()
	assert.Equal(t, listener, m.listener)
	m.listenerMu.RUnlock()
}

func TestConnectionManager_ConcurrentBroadcast(t *testing.T) {
	m := NewConnectionManager(nil)
	sub, err := m.Subscribe(context.Background(), "thread:t1", -1)
	require.NoError(t, err)
	defer m.Unsubscribe(sub)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			payload, _ := json.Marshal(map[string]any{"type": "concurrent", "idx": idx})
			m.Broadcast("thread:t1", payload)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 20; i++ {
		msg := recvEvent(t, sub)
		assert.Equal(t, "concurrent", msg["type"])
	}
	assertNoEvent(t, sub)
}
