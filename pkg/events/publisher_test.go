package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftlabs/weft/pkg/models"
)

func TestFitNotifyPayload(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(NewChunkEvent("thread-1", "run-1", models.NewContentChunk("hello")))

		result, err := fitNotifyPayload(string(payload))
		require.NoError(t, err)
		assert.Equal(t, string(payload), result)
	})

	t.Run("replaces oversized payload with envelope", func(t *testing.T) {
		big := strings.Repeat("a", 8000)
		payload, _ := json.Marshal(NewChunkEvent("thread-1", "run-1", models.NewContentChunk(big)))

		result, err := fitNotifyPayload(string(payload))
		require.NoError(t, err)
		assert.Less(t, len(result), notifyLimit)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, "thread-1")
		assert.Contains(t, result, "run-1")
		assert.NotContains(t, result, "aaaa")
	})

	t.Run("boundary: payload just under limit passes through", func(t *testing.T) {
		// Measure the envelope overhead first; the 20-byte margin keeps
		// the test from flipping if fields are added to ChunkEvent.
		base, _ := json.Marshal(NewChunkEvent("t", "r", models.NewContentChunk("")))
		content := strings.Repeat("b", notifyLimit-len(base)-20)
		payload, _ := json.Marshal(NewChunkEvent("t", "r", models.NewContentChunk(content)))
		require.LessOrEqual(t, len(payload), notifyLimit, "test payload should be under limit")

		result, err := fitNotifyPayload(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("empty JSON object", func(t *testing.T) {
		result, err := fitNotifyPayload("{}")
		require.NoError(t, err)
		assert.Equal(t, "{}", result)
	})
}

func TestInjectEventID(t *testing.T) {
	t.Run("injects db_event_id into normal payload", func(t *testing.T) {
		evt := NewChunkEvent("thread-1", "run-1", models.NewErrorChunk("boom"))
		payload, _ := json.Marshal(evt)

		result, err := injectEventID(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, evt.EventID)
		assert.Contains(t, result, "boom")
	})

	t.Run("oversized payload keeps id through truncation", func(t *testing.T) {
		big := strings.Repeat("x", 8000)
		evt := NewChunkEvent("thread-9", "run-9", models.StreamChunk{
			Type:    models.ChunkTypeAssistant,
			Content: big,
		})
		payload, _ := json.Marshal(evt)

		result, err := injectEventID(payload, 99)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"db_event_id":99`)
		assert.Contains(t, result, evt.EventID)
		assert.Contains(t, result, "thread-9")
		assert.NotContains(t, result, "xxxx")
	})

	t.Run("rejects non-JSON payload", func(t *testing.T) {
		_, err := injectEventID([]byte("not json"), 1)
		assert.Error(t, err)
	})
}

func TestNewPublisher(t *testing.T) {
	p := NewPublisher(nil)
	assert.NotNil(t, p)
	assert.Nil(t, p.db)
}
