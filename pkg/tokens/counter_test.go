package tokens

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftlabs/weft/pkg/models"
)

type stubAnthropicCounter struct {
	count    int
	err      error
	calls    int
	lastMsgs []models.PreparedMessage
}

func (s *stubAnthropicCounter) CountTokens(_ context.Context, _, _ string, messages []models.PreparedMessage) (int, error) {
	s.calls++
	s.lastMsgs = messages
	return s.count, s.err
}

func TestCount_AnthropicUsesEndpoint(t *testing.T) {
	stub := &stubAnthropicCounter{count: 1234}
	counter := NewCounter(stub)

	got, err := counter.Count(context.Background(), "anthropic/claude-sonnet-4-20250514",
		[]models.PreparedMessage{{Role: "user", Content: "hello"}}, "sys", false)

	require.NoError(t, err)
	assert.Equal(t, 1234, got)
	assert.Equal(t, 1, stub.calls)
}

func TestCount_EndpointFailureDegradesToHeuristic(t *testing.T) {
	stub := &stubAnthropicCounter{err: errors.New("api down")}
	counter := NewCounter(stub)

	messages := []models.PreparedMessage{{Role: "user", Content: strings.Repeat("x", 400)}}
	got, err := counter.Count(context.Background(), "claude-sonnet-4-20250514", messages, "", false)

	require.NoError(t, err)
	assert.Equal(t, EstimateMessages(messages, ""), got)
}

func TestCount_NonAnthropicUsesHeuristic(t *testing.T) {
	stub := &stubAnthropicCounter{count: 999}
	counter := NewCounter(stub)

	messages := []models.PreparedMessage{{Role: "user", Content: "hello world"}}
	got, err := counter.Count(context.Background(), "gpt-4o", messages, "system", false)

	require.NoError(t, err)
	assert.Equal(t, 0, stub.calls)
	assert.Equal(t, EstimateMessages(messages, "system"), got)
}

func TestCount_NilBackendUsesHeuristic(t *testing.T) {
	counter := NewCounter(nil)

	messages := []models.PreparedMessage{{Role: "user", Content: "hello"}}
	got, err := counter.Count(context.Background(), "claude-sonnet-4-20250514", messages, "", false)

	require.NoError(t, err)
	assert.Equal(t, EstimateMessages(messages, ""), got)
}

func TestCount_ApplyCachingMarksMessages(t *testing.T) {
	stub := &stubAnthropicCounter{count: 10}
	counter := NewCounter(stub)

	messages := []models.PreparedMessage{{Role: "user", Content: "hello"}}
	_, err := counter.Count(context.Background(), "claude-sonnet-4-20250514", messages, "sys", true)

	require.NoError(t, err)
	require.Len(t, stub.lastMsgs, 1)
	assert.True(t, stub.lastMsgs[0].CacheControl, "counted shape should carry cache markers")
	assert.False(t, messages[0].CacheControl, "caller's slice stays untouched")
}

func TestCount_EmptyConversationSkipsEndpoint(t *testing.T) {
	stub := &stubAnthropicCounter{count: 55}
	counter := NewCounter(stub)

	got, err := counter.Count(context.Background(), "claude-sonnet-4-20250514", nil, "sys", false)

	require.NoError(t, err)
	assert.Equal(t, 0, stub.calls)
	assert.Equal(t, EstimateMessages(nil, "sys"), got)
}

func TestEstimateMessage(t *testing.T) {
	m := models.PreparedMessage{Role: "user", Content: strings.Repeat("a", 400)}
	// 400 content chars + 4 role chars at 4 chars/token, plus overhead.
	assert.Equal(t, 101+perMessageOverhead, EstimateMessage(&m))
}

func TestEstimateMessage_CountsToolCalls(t *testing.T) {
	m := models.PreparedMessage{
		Role: "assistant",
		ToolCalls: []models.ToolCall{
			{ID: "call_1", Name: "web_search", Arguments: `{"query":"golang"}`},
		},
	}
	withTools := EstimateMessage(&m)
	m.ToolCalls = nil
	withoutTools := EstimateMessage(&m)
	assert.Greater(t, withTools, withoutTools)
}

func TestEstimateMessages_SystemAddsTokens(t *testing.T) {
	messages := []models.PreparedMessage{{Role: "user", Content: "hi"}}
	assert.Greater(t, EstimateMessages(messages, strings.Repeat("s", 100)), EstimateMessages(messages, ""))
}
