package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftlabs/weft/pkg/models"
)

func TestThreadChannel(t *testing.T) {
	assert.Equal(t, "thread:abc-123", ThreadChannel("abc-123"))
	assert.Equal(t, "thread:", ThreadChannel(""))
}

func TestNewChunkEvent(t *testing.T) {
	chunk := models.NewContentChunk("hello")
	evt := NewChunkEvent("thread-1", "run-1", chunk)

	assert.Equal(t, EventTypeChunk, evt.Type)
	assert.Equal(t, "thread-1", evt.ThreadID)
	assert.Equal(t, "run-1", evt.RunID)
	assert.Equal(t, "hello", evt.Chunk.Content)
	assert.NotEmpty(t, evt.EventID)

	_, err := time.Parse(time.RFC3339Nano, evt.Timestamp)
	require.NoError(t, err)

	// Every envelope gets its own id.
	assert.NotEqual(t, evt.EventID, NewChunkEvent("thread-1", "run-1", chunk).EventID)
}
