package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/weftlabs/weft/pkg/observe"
)

// catchupLimit caps the number of events replayed on reconnect. Beyond
// it a catchup.overflow envelope tells the client to reload over REST
// instead of paginating replay requests.
const catchupLimit = 200

// listenTimeout bounds how long a LISTEN command may block when the
// first subscriber joins a channel. Without it a stalled connection
// would hang the subscribing HTTP handler indefinitely.
const listenTimeout = 10 * time.Second

// subscriberBuffer is the per-subscription event buffer. Broadcast
// never blocks on a subscriber; once the buffer fills, events are
// dropped and the client recovers the gap through catch-up.
const subscriberBuffer = 256

// Subscription is one SSE client's attachment to a channel. The HTTP
// handler drains Events and writes each payload as an SSE frame; the
// channel closes when Unsubscribe runs.
type Subscription struct {
	ID      string
	Channel string
	Events  <-chan []byte

	events    chan []byte
	closeOnce sync.Once
}

func (s *Subscription) closeEvents() {
	s.closeOnce.Do(func() { close(s.events) })
}

// ConnectionManager fans notifications out to SSE subscribers. Each
// process has one instance; it reference-counts channel subscriptions
// so the NotifyListener holds exactly one LISTEN per active channel.
type ConnectionManager struct {
	catchup CatchupQuerier
	metrics *observe.Metrics
	logger  *slog.Logger

	// NotifyListener for dynamic LISTEN/UNLISTEN (set after construction).
	listenerMu sync.RWMutex
	listener   *NotifyListener

	mu       sync.RWMutex
	channels map[string]map[string]*Subscription
}

// NewConnectionManager creates a manager. catchup may be nil, which
// disables replay.
func NewConnectionManager(catchup CatchupQuerier) *ConnectionManager {
	return &ConnectionManager{
		catchup:  catchup,
		metrics:  observe.DefaultMetrics(),
		logger:   slog.With("component", "event_manager"),
		channels: make(map[string]map[string]*Subscription),
	}
}

// SetListener wires the NotifyListener. Called once during startup
// after both sides exist; the manager works without one (local fan-out
// only), which the tests rely on.
func (m *ConnectionManager) SetListener(l *NotifyListener) {
	m.listenerMu.Lock()
	defer m.listenerMu.Unlock()
	m.listener = l
}

// Subscribe attaches a new subscriber to a channel. The first
// subscriber on a channel issues LISTEN synchronously, so by the time
// catch-up replay starts, live notifications are already flowing —
// otherwise events published between the replay query and LISTEN would
// be lost. lastEventID >= 0 replays stored events after that ID (zero
// replays the channel's history); a negative value skips replay.
//
// Replay and live delivery may interleave; clients deduplicate by
// db_event_id.
func (m *ConnectionManager) Subscribe(ctx context.Context, channel string, lastEventID int) (*Subscription, error) {
	sub := &Subscription{
		ID:      uuid.New().String(),
		Channel: channel,
		events:  make(chan []byte, subscriberBuffer),
	}
	sub.Events = sub.events

	m.mu.Lock()
	needsListen := false
	if _, exists := m.channels[channel]; !exists {
		m.channels[channel] = make(map[string]*Subscription)
		needsListen = true
	}
	m.channels[channel][sub.ID] = sub
	m.mu.Unlock()

	if needsListen {
		m.listenerMu.RLock()
		l := m.listener
		m.listenerMu.RUnlock()
		if l != nil {
			listenCtx, cancel := context.WithTimeout(context.Background(), listenTimeout)
			defer cancel()
			if err := l.Subscribe(listenCtx, channel); err != nil {
				m.logger.Error("failed to LISTEN on channel", "channel", channel, "error", err)
				m.cleanupFailedChannel(sub, channel)
				return nil, fmt.Errorf("LISTEN on channel %s: %w", channel, err)
			}
		}
	}

	m.metrics.EventSubscribers.Add(ctx, 1)

	if lastEventID >= 0 {
		m.replayCatchup(ctx, sub, channel, lastEventID)
	}
	return sub, nil
}

// Unsubscribe detaches a subscriber and closes its event channel. The
// last subscriber on a channel schedules UNLISTEN; the goroutine
// re-checks the map first, so a rapid unsubscribe/resubscribe cycle
// never drops a LISTEN the new subscriber depends on.
func (m *ConnectionManager) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}

	m.mu.Lock()
	removed := false
	if subs, ok := m.channels[sub.Channel]; ok {
		if _, present := subs[sub.ID]; present {
			delete(subs, sub.ID)
			removed = true
			if len(subs) == 0 {
				delete(m.channels, sub.Channel)
				m.scheduleUnlisten(sub.Channel)
			}
		}
	}
	// Closing under the write lock cannot race Broadcast's sends, which
	// hold the read lock.
	sub.closeEvents()
	m.mu.Unlock()

	if removed {
		m.metrics.EventSubscribers.Add(context.Background(), -1)
	}
}

// Broadcast delivers a payload to every subscriber of a channel.
// Called by the NotifyListener receive loop and by tests. Sends are
// non-blocking against the per-subscription buffer, so holding the
// read lock across the loop stays cheap.
func (m *ConnectionManager) Broadcast(channel string, payload []byte) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, sub := range m.channels[channel] {
		m.send(sub, payload)
	}
}

// ActiveSubscribers returns the total subscription count across all
// channels.
func (m *ConnectionManager) ActiveSubscribers() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	for _, subs := range m.channels {
		n += len(subs)
	}
	return n
}

// subscriberCount returns the subscriber count for one channel.
// Unexported — used by tests to poll instead of sleeping.
func (m *ConnectionManager) subscriberCount(channel string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.channels[channel])
}

// send delivers a payload without blocking. A full buffer means the
// subscriber stopped draining; the event is dropped and the client
// recovers the gap through catch-up on its next connect.
func (m *ConnectionManager) send(sub *Subscription, payload []byte) bool {
	select {
	case sub.events <- payload:
		return true
	default:
		m.logger.Warn("dropping event for slow subscriber",
			"subscription_id", sub.ID, "channel", sub.Channel)
		return false
	}
}

// replayCatchup pushes stored events since lastEventID into the
// subscription buffer.
func (m *ConnectionManager) replayCatchup(ctx context.Context, sub *Subscription, channel string, lastEventID int) {
	if m.catchup == nil {
		return
	}

	// Query one past the limit to detect overflow.
	events, err := m.catchup.GetCatchupEvents(ctx, channel, lastEventID, catchupLimit+1)
	if err != nil {
		m.logger.Error("catch-up query failed", "channel", channel, "error", err)
		return
	}

	hasMore := len(events) > catchupLimit
	if hasMore {
		events = events[:catchupLimit]
	}

	// Stored payloads carry no db_event_id (it is added to the NOTIFY
	// copy at publish time), so inject the row ID here for client
	// position tracking.
	for _, evt := range events {
		evt.Payload["db_event_id"] = evt.ID
		payload, err := json.Marshal(evt.Payload)
		if err != nil {
			continue
		}
		if !m.send(sub, payload) {
			return
		}
	}

	if hasMore {
		payload, err := json.Marshal(map[string]any{
			"type":     "catchup.overflow",
			"channel":  channel,
			"has_more": true,
		})
		if err != nil {
			return
		}
		m.send(sub, payload)
	}
}

// cleanupFailedChannel removes every subscriber from a channel after a
// LISTEN failure. Between the map insert and LISTEN completing, other
// subscribers may have joined; they saw the channel entry, skipped
// LISTEN, and returned success, so they now hold a subscription with no
// notifications behind it. Each gets a stream.error envelope telling
// the client to reconnect or fall back to REST polling.
//
// The orphaned channels are not closed here: an orphan may be mid
// replay on its own goroutine, and only its owner's Unsubscribe may
// close. The envelope plus the closed SSE stream on reconnect bound
// how long the dead subscription lingers.
func (m *ConnectionManager) cleanupFailedChannel(triggering *Subscription, channel string) {
	m.mu.Lock()
	affected := make([]*Subscription, 0, len(m.channels[channel]))
	for id, sub := range m.channels[channel] {
		if id != triggering.ID {
			affected = append(affected, sub)
		}
	}
	delete(m.channels, channel)
	m.mu.Unlock()

	if len(affected) == 0 {
		return
	}

	payload, err := json.Marshal(map[string]string{
		"type":    EventTypeStreamError,
		"channel": channel,
		"message": "channel listen failed; subscription removed",
	})
	if err != nil {
		return
	}
	for _, sub := range affected {
		m.logger.Warn("removing orphaned subscriber after LISTEN failure",
			"subscription_id", sub.ID, "channel", channel)
		m.send(sub, payload)
		m.metrics.EventSubscribers.Add(context.Background(), -1)
	}
}

// scheduleUnlisten issues UNLISTEN asynchronously once the last
// subscriber leaves, re-checking for a resubscribe first.
func (m *ConnectionManager) scheduleUnlisten(channel string) {
	m.listenerMu.RLock()
	l := m.listener
	m.listenerMu.RUnlock()
	if l == nil {
		return
	}
	go func() {
		m.mu.RLock()
		_, resubscribed := m.channels[channel]
		m.mu.RUnlock()
		if resubscribed {
			return
		}
		if err := l.Unsubscribe(context.Background(), channel); err != nil {
			m.logger.Error("failed to UNLISTEN channel", "channel", channel, "error", err)
		}
	}()
}
