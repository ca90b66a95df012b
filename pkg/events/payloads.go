package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/weftlabs/weft/pkg/models"
)

// ChunkEvent is the delivery envelope around one runner stream chunk.
// Persisted rows store it without db_event_id; the NOTIFY copy and
// catch-up replay inject the row id for cursor tracking.
type ChunkEvent struct {
	Type      string             `json:"type"` // always EventTypeChunk
	EventID   string             `json:"event_id"`
	ThreadID  string             `json:"thread_id"`
	RunID     string             `json:"run_id"`
	Chunk     models.StreamChunk `json:"chunk"`
	Timestamp string             `json:"timestamp"` // RFC3339Nano
}

// NewChunkEvent wraps a stream chunk in its delivery envelope.
func NewChunkEvent(threadID, runID string, chunk models.StreamChunk) ChunkEvent {
	return ChunkEvent{
		Type:      EventTypeChunk,
		EventID:   uuid.New().String(),
		ThreadID:  threadID,
		RunID:     runID,
		Chunk:     chunk,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
}
