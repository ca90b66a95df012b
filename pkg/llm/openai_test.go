package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftlabs/weft/pkg/models"
)

func TestBuildOpenAIRequest(t *testing.T) {
	input := &GenerateInput{
		Model:       "openai/gpt-4o",
		System:      "You are helpful.",
		MaxTokens:   2048,
		Temperature: 0.5,
		Messages: []models.PreparedMessage{
			{Role: "user", Content: "hello"},
		},
		Tools: []ToolDefinition{
			{Name: "web_search", Description: "Search the web", InputSchema: map[string]any{"type": "object"}},
		},
	}

	request := buildOpenAIRequest(input)

	assert.Equal(t, "gpt-4o", request.Model)
	assert.True(t, request.Stream)
	require.NotNil(t, request.StreamOptions)
	assert.True(t, request.StreamOptions.IncludeUsage)
	assert.Equal(t, 2048, request.MaxTokens)
	assert.InDelta(t, 0.5, float64(request.Temperature), 1e-6)

	require.Len(t, request.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, request.Messages[0].Role)
	assert.Equal(t, "You are helpful.", request.Messages[0].Content)
	assert.Equal(t, openai.ChatMessageRoleUser, request.Messages[1].Role)

	require.Len(t, request.Tools, 1)
	assert.Equal(t, "web_search", request.Tools[0].Function.Name)
}

func TestBuildOpenAIRequest_OpenRouterSlug(t *testing.T) {
	input := &GenerateInput{
		Model:    "openrouter/claude-sonnet-4-20250514",
		Messages: []models.PreparedMessage{{Role: "user", Content: "hi"}},
	}
	request := buildOpenAIRequest(input)
	assert.Equal(t, "anthropic/claude-sonnet-4-20250514", request.Model)

	input.Model = "openrouter/moonshotai/kimi-k2"
	request = buildOpenAIRequest(input)
	assert.Equal(t, "moonshotai/kimi-k2", request.Model)
}

func TestEncodeOpenAIMessages_ToolFlow(t *testing.T) {
	messages := []models.PreparedMessage{
		{Role: "user", Content: "look it up"},
		{
			Role:    "assistant",
			Content: "",
			ToolCalls: []models.ToolCall{
				{ID: "call_1", Name: "web_search", Arguments: `{"query":"golang"}`},
			},
		},
		{Role: "tool", Content: "result", ToolCallID: "call_1", Name: "web_search"},
	}

	encoded := encodeOpenAIMessages("", messages)
	require.Len(t, encoded, 3)

	assistant := encoded[1]
	assert.Equal(t, openai.ChatMessageRoleAssistant, assistant.Role)
	require.Len(t, assistant.ToolCalls, 1)
	assert.Equal(t, "call_1", assistant.ToolCalls[0].ID)
	assert.Equal(t, openai.ToolTypeFunction, assistant.ToolCalls[0].Type)
	assert.Equal(t, `{"query":"golang"}`, assistant.ToolCalls[0].Function.Arguments)

	result := encoded[2]
	assert.Equal(t, openai.ChatMessageRoleTool, result.Role)
	assert.Equal(t, "call_1", result.ToolCallID)
	assert.Equal(t, "web_search", result.Name)
}

func TestNormalizeOpenAIFinish(t *testing.T) {
	assert.Equal(t, models.FinishReasonToolCalls, normalizeOpenAIFinish("tool_calls"))
	assert.Equal(t, models.FinishReasonToolCalls, normalizeOpenAIFinish("function_call"))
	assert.Equal(t, models.FinishReasonLength, normalizeOpenAIFinish("length"))
	assert.Equal(t, models.FinishReasonStop, normalizeOpenAIFinish("stop"))
	assert.Equal(t, models.FinishReasonStop, normalizeOpenAIFinish(""))
}

// sseServer streams fixed chat completion chunks in SSE framing.
func sseServer(t *testing.T, payloads []string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		flusher, ok := w.(http.Flusher)
		require.True(t, ok)
		for _, p := range payloads {
			fmt.Fprintf(w, "data: %s\n\n", p)
			flusher.Flush()
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
		flusher.Flush()
	}))
}

func TestOpenAIGenerate_StreamsChunks(t *testing.T) {
	server := sseServer(t, []string{
		`{"id":"1","object":"chat.completion.chunk","model":"gpt-4o","choices":[{"index":0,"delta":{"role":"assistant","content":"Hel"}}]}`,
		`{"id":"1","object":"chat.completion.chunk","model":"gpt-4o","choices":[{"index":0,"delta":{"content":"lo"}}]}`,
		`{"id":"1","object":"chat.completion.chunk","model":"gpt-4o","choices":[{"index":0,"delta":{"tool_calls":[{"index":0,"id":"call_1","type":"function","function":{"name":"web_search","arguments":"{\"query\":"}}]}}]}`,
		`{"id":"1","object":"chat.completion.chunk","model":"gpt-4o","choices":[{"index":0,"delta":{"tool_calls":[{"index":0,"function":{"arguments":"\"golang\"}"}}]}}]}`,
		`{"id":"1","object":"chat.completion.chunk","model":"gpt-4o","choices":[{"index":0,"delta":{},"finish_reason":"tool_calls"}]}`,
		`{"id":"1","object":"chat.completion.chunk","model":"gpt-4o","choices":[],"usage":{"prompt_tokens":10,"completion_tokens":5,"total_tokens":15,"prompt_tokens_details":{"cached_tokens":3}}}`,
	})
	defer server.Close()

	client := newOpenAIClient("test-key", server.URL+"/v1")
	ch, err := client.Generate(context.Background(), &GenerateInput{
		Model:    "gpt-4o",
		Messages: []models.PreparedMessage{{Role: "user", Content: "hi"}},
	})
	require.NoError(t, err)

	var texts []string
	var tools []*ToolCallChunk
	var usage *UsageChunk
	var finish *FinishChunk
	for chunk := range ch {
		switch c := chunk.(type) {
		case *TextChunk:
			texts = append(texts, c.Content)
		case *ToolCallChunk:
			tools = append(tools, c)
		case *UsageChunk:
			usage = c
		case *FinishChunk:
			finish = c
		}
	}

	assert.Equal(t, []string{"Hel", "lo"}, texts)

	require.Len(t, tools, 1)
	assert.Equal(t, "call_1", tools[0].CallID)
	assert.Equal(t, "web_search", tools[0].Name)
	assert.JSONEq(t, `{"query":"golang"}`, tools[0].Arguments)

	require.NotNil(t, usage)
	assert.Equal(t, 10, usage.PromptTokens)
	assert.Equal(t, 5, usage.CompletionTokens)
	assert.Equal(t, 3, usage.CacheReadTokens)

	require.NotNil(t, finish)
	assert.Equal(t, models.FinishReasonToolCalls, finish.Reason)
}

func TestOpenAIGenerate_TextOnlyFinish(t *testing.T) {
	server := sseServer(t, []string{
		`{"id":"2","object":"chat.completion.chunk","model":"gpt-4o","choices":[{"index":0,"delta":{"role":"assistant","content":"done"}}]}`,
		`{"id":"2","object":"chat.completion.chunk","model":"gpt-4o","choices":[{"index":0,"delta":{},"finish_reason":"stop"}]}`,
	})
	defer server.Close()

	client := newOpenAIClient("test-key", server.URL+"/v1")
	ch, err := client.Generate(context.Background(), &GenerateInput{
		Model:    "gpt-4o",
		Messages: []models.PreparedMessage{{Role: "user", Content: "hi"}},
	})
	require.NoError(t, err)

	var last Chunk
	var texts []string
	for chunk := range ch {
		if tc, ok := chunk.(*TextChunk); ok {
			texts = append(texts, tc.Content)
		}
		last = chunk
	}
	assert.Equal(t, []string{"done"}, texts)
	finish, ok := last.(*FinishChunk)
	require.True(t, ok)
	assert.Equal(t, models.FinishReasonStop, finish.Reason)
}
