package llm

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/packages/ssestream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftlabs/weft/pkg/models"
)

func TestBuildAnthropicParams(t *testing.T) {
	input := &GenerateInput{
		Model:              "anthropic/claude-sonnet-4-20250514",
		System:             "You are a helpful assistant.",
		SystemCacheControl: true,
		MaxTokens:          4096,
		Temperature:        0.7,
		Messages: []models.PreparedMessage{
			{Role: "user", Content: "hello"},
		},
		Tools: []ToolDefinition{
			{
				Name:        "web_search",
				Description: "Search the web",
				InputSchema: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"query": map[string]any{"type": "string"},
					},
					"required": []string{"query"},
				},
			},
		},
	}

	params, err := BuildAnthropicParams(input)
	require.NoError(t, err)

	assert.Equal(t, sdk.Model("claude-sonnet-4-20250514"), params.Model)
	assert.Equal(t, int64(4096), params.MaxTokens)

	require.Len(t, params.System, 1)
	assert.Equal(t, "You are a helpful assistant.", params.System[0].Text)
	assert.Equal(t, sdk.NewCacheControlEphemeralParam(), params.System[0].CacheControl)

	require.Len(t, params.Tools, 1)
	tool := params.Tools[0].OfTool
	require.NotNil(t, tool)
	assert.Equal(t, "web_search", tool.Name)
	assert.Equal(t, sdk.String("Search the web"), tool.Description)
	assert.Equal(t, []string{"query"}, tool.InputSchema.Required)
	assert.NotNil(t, tool.InputSchema.Properties)
}

func TestBuildAnthropicParams_NoSystemNoCache(t *testing.T) {
	input := &GenerateInput{
		Model:     "claude-sonnet-4-20250514",
		MaxTokens: 1024,
		Messages: []models.PreparedMessage{
			{Role: "user", Content: "hi"},
		},
	}

	params, err := BuildAnthropicParams(input)
	require.NoError(t, err)
	assert.Empty(t, params.System)
	assert.False(t, params.Temperature.Valid())
}

func TestEncodeAnthropicMessages_ToolFlow(t *testing.T) {
	messages := []models.PreparedMessage{
		{Role: "user", Content: "look these up"},
		{
			Role:    "assistant",
			Content: "Searching now.",
			ToolCalls: []models.ToolCall{
				{ID: "call_1", Name: "web_search", Arguments: `{"query":"golang"}`},
				{ID: "call_2", Name: "web_search", Arguments: `{"query":"postgres"}`},
			},
		},
		{Role: "tool", Content: "result one", ToolCallID: "call_1", Name: "web_search"},
		{Role: "tool", Content: "result two", ToolCallID: "call_2", Name: "web_search"},
		{Role: "assistant", Content: "Done."},
	}

	encoded, err := EncodeAnthropicMessages(messages)
	require.NoError(t, err)
	require.Len(t, encoded, 4, "consecutive tool results should fold into one user turn")

	assert.Equal(t, sdk.MessageParamRoleUser, encoded[0].Role)

	assistant := encoded[1]
	assert.Equal(t, sdk.MessageParamRoleAssistant, assistant.Role)
	require.Len(t, assistant.Content, 3)
	require.NotNil(t, assistant.Content[0].OfText)
	assert.Equal(t, "Searching now.", assistant.Content[0].OfText.Text)
	require.NotNil(t, assistant.Content[1].OfToolUse)
	assert.Equal(t, "call_1", assistant.Content[1].OfToolUse.ID)
	assert.Equal(t, "web_search", assistant.Content[1].OfToolUse.Name)
	require.NotNil(t, assistant.Content[2].OfToolUse)
	assert.Equal(t, "call_2", assistant.Content[2].OfToolUse.ID)

	results := encoded[2]
	assert.Equal(t, sdk.MessageParamRoleUser, results.Role)
	require.Len(t, results.Content, 2)
	require.NotNil(t, results.Content[0].OfToolResult)
	assert.Equal(t, "call_1", results.Content[0].OfToolResult.ToolUseID)
	require.NotNil(t, results.Content[1].OfToolResult)
	assert.Equal(t, "call_2", results.Content[1].OfToolResult.ToolUseID)

	assert.Equal(t, sdk.MessageParamRoleAssistant, encoded[3].Role)
}

func TestEncodeAnthropicMessages_CompressedSentinelStaysText(t *testing.T) {
	// An old tool result served through its compression sidecar comes
	// back as a user-role plain string. It must encode as a text block;
	// a tool_result with an empty tool_use_id is rejected upstream.
	messages := []models.PreparedMessage{
		{Role: "user", Content: "run the build"},
		{
			Role:       "user",
			Content:    `Tool output removed for token management. Use the expand_message tool with message_id "msg-1".`,
			Compressed: true,
		},
		{Role: "assistant", Content: "Build looked clean."},
	}

	encoded, err := EncodeAnthropicMessages(messages)
	require.NoError(t, err)
	require.Len(t, encoded, 3)

	sentinel := encoded[1]
	assert.Equal(t, sdk.MessageParamRoleUser, sentinel.Role)
	require.Len(t, sentinel.Content, 1)
	assert.Nil(t, sentinel.Content[0].OfToolResult)
	require.NotNil(t, sentinel.Content[0].OfText)
	assert.Contains(t, sentinel.Content[0].OfText.Text, "expand_message")
}

func TestEncodeAnthropicMessages_CacheControlOnLastBlock(t *testing.T) {
	messages := []models.PreparedMessage{
		{Role: "user", Content: "hello", CacheControl: true},
	}

	encoded, err := EncodeAnthropicMessages(messages)
	require.NoError(t, err)
	require.Len(t, encoded, 1)
	require.NotNil(t, encoded[0].Content[0].OfText)
	assert.Equal(t, sdk.NewCacheControlEphemeralParam(), encoded[0].Content[0].OfText.CacheControl)
}

func TestEncodeAnthropicMessages_StructuredContent(t *testing.T) {
	messages := []models.PreparedMessage{
		{Role: "user", Content: map[string]any{"kind": "alert", "severity": "high"}},
	}

	encoded, err := EncodeAnthropicMessages(messages)
	require.NoError(t, err)
	require.NotNil(t, encoded[0].Content[0].OfText)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(encoded[0].Content[0].OfText.Text), &decoded))
	assert.Equal(t, "alert", decoded["kind"])
}

func TestEncodeAnthropicMessages_Empty(t *testing.T) {
	_, err := EncodeAnthropicMessages(nil)
	assert.Error(t, err)
}

// eventDecoder feeds a fixed sequence of SSE events into the stream.
type eventDecoder struct {
	events []ssestream.Event
	i      int
	err    error
}

func (d *eventDecoder) Event() ssestream.Event { return d.events[d.i-1] }

func (d *eventDecoder) Next() bool {
	if d.err != nil || d.i >= len(d.events) {
		return false
	}
	d.i++
	return true
}

func (d *eventDecoder) Close() error { return nil }
func (d *eventDecoder) Err() error   { return d.err }

func sseEvent(eventType, data string) ssestream.Event {
	return ssestream.Event{Type: eventType, Data: json.RawMessage(data)}
}

func TestAnthropicConsume_TranslatesEvents(t *testing.T) {
	events := []ssestream.Event{
		sseEvent("message_start", `{"type":"message_start","message":{"id":"msg_1","role":"assistant","content":[],"usage":{"input_tokens":12,"output_tokens":0}}}`),
		sseEvent("content_block_delta", `{"type":"content_block_delta","index":0,"delta":{"type":"text_delta","text":"Searching"}}`),
		sseEvent("content_block_start", `{"type":"content_block_start","index":1,"content_block":{"type":"tool_use","id":"toolu_1","name":"web_search","input":{}}}`),
		sseEvent("content_block_delta", `{"type":"content_block_delta","index":1,"delta":{"type":"input_json_delta","partial_json":"{\"query\":"}}`),
		sseEvent("content_block_delta", `{"type":"content_block_delta","index":1,"delta":{"type":"input_json_delta","partial_json":"\"golang\"}"}}`),
		sseEvent("content_block_stop", `{"type":"content_block_stop","index":1}`),
		sseEvent("message_delta", `{"type":"message_delta","delta":{"stop_reason":"tool_use"},"usage":{"input_tokens":12,"output_tokens":34,"cache_read_input_tokens":8,"cache_creation_input_tokens":4}}`),
		sseEvent("message_stop", `{"type":"message_stop"}`),
	}

	dec := &eventDecoder{events: events}
	stream := ssestream.NewStream[sdk.MessageStreamEventUnion](dec, nil)

	client := &AnthropicClient{logger: slog.Default()}
	ch := make(chan Chunk, 16)
	go client.consume(context.Background(), stream, ch)

	var chunks []Chunk
	for chunk := range ch {
		chunks = append(chunks, chunk)
	}
	require.Len(t, chunks, 4)

	text, ok := chunks[0].(*TextChunk)
	require.True(t, ok)
	assert.Equal(t, "Searching", text.Content)

	tool, ok := chunks[1].(*ToolCallChunk)
	require.True(t, ok)
	assert.Equal(t, "toolu_1", tool.CallID)
	assert.Equal(t, "web_search", tool.Name)
	assert.JSONEq(t, `{"query":"golang"}`, tool.Arguments)

	usage, ok := chunks[2].(*UsageChunk)
	require.True(t, ok)
	assert.Equal(t, 34, usage.CompletionTokens)
	assert.Equal(t, 8, usage.CacheReadTokens)
	assert.Equal(t, 4, usage.CacheWriteTokens)

	finish, ok := chunks[3].(*FinishChunk)
	require.True(t, ok)
	assert.Equal(t, models.FinishReasonToolCalls, finish.Reason)
}

func TestAnthropicConsume_TextOnly(t *testing.T) {
	events := []ssestream.Event{
		sseEvent("message_start", `{"type":"message_start","message":{"id":"msg_2","role":"assistant","content":[],"usage":{"input_tokens":5,"output_tokens":0}}}`),
		sseEvent("content_block_delta", `{"type":"content_block_delta","index":0,"delta":{"type":"text_delta","text":"Hello"}}`),
		sseEvent("content_block_delta", `{"type":"content_block_delta","index":0,"delta":{"type":"text_delta","text":" world"}}`),
		sseEvent("message_delta", `{"type":"message_delta","delta":{"stop_reason":"end_turn"},"usage":{"input_tokens":5,"output_tokens":2}}`),
		sseEvent("message_stop", `{"type":"message_stop"}`),
	}

	dec := &eventDecoder{events: events}
	stream := ssestream.NewStream[sdk.MessageStreamEventUnion](dec, nil)

	client := &AnthropicClient{logger: slog.Default()}
	ch := make(chan Chunk, 16)
	go client.consume(context.Background(), stream, ch)

	var texts []string
	var finish string
	for chunk := range ch {
		switch c := chunk.(type) {
		case *TextChunk:
			texts = append(texts, c.Content)
		case *FinishChunk:
			finish = c.Reason
		}
	}
	assert.Equal(t, []string{"Hello", " world"}, texts)
	assert.Equal(t, models.FinishReasonStop, finish)
}

func TestNormalizeAnthropicStop(t *testing.T) {
	assert.Equal(t, models.FinishReasonToolCalls, normalizeAnthropicStop("tool_use"))
	assert.Equal(t, models.FinishReasonLength, normalizeAnthropicStop("max_tokens"))
	assert.Equal(t, models.FinishReasonStop, normalizeAnthropicStop("end_turn"))
	assert.Equal(t, models.FinishReasonStop, normalizeAnthropicStop(""))
}
