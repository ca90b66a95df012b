// Package events delivers run output to stream subscribers in real
// time and across pods.
//
// Every pod publishes through PostgreSQL NOTIFY, and every pod's
// listener dispatches received notifications to its local SSE
// subscribers, so a client attached to any replica sees runs executing
// on all of them.
//
// Delivery contract per chunk type:
//
//   - content deltas are transient: NOTIFY only, never persisted. A
//     reconnecting client misses them but loses nothing — the full
//     assistant text lands in the messages table when the completion
//     finishes.
//   - assistant, tool, and status chunks are persisted to the events
//     table and NOTIFYed in one transaction. The auto-increment row id
//     doubles as the catch-up cursor: a client reconnects with the last
//     db_event_id it saw and replays what it missed.
//
// NOTIFY payloads above the 8000-byte Postgres limit are replaced by a
// truncation envelope carrying only routing fields; clients fetch the
// full row through the catch-up path.
package events

import "context"

// Event types carried in the payload "type" field.
const (
	// EventTypeChunk wraps one runner stream chunk.
	EventTypeChunk = "run.chunk"

	// EventTypeStreamError tells a subscriber its channel is broken and
	// it must reconnect. Sent locally, never through NOTIFY.
	EventTypeStreamError = "stream.error"
)

// ThreadChannel returns the NOTIFY channel carrying one thread's
// stream. Format: "thread:{thread_id}".
func ThreadChannel(threadID string) string {
	return "thread:" + threadID
}

// CatchupEvent is one persisted event row decoded for replay.
type CatchupEvent struct {
	ID      int
	Payload map[string]any
}

// CatchupQuerier supplies missed events for reconnect catch-up.
// Implemented by EventServiceAdapter.
type CatchupQuerier interface {
	GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error)
}
