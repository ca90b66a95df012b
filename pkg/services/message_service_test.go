package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftlabs/weft/ent"
	"github.com/weftlabs/weft/pkg/models"
	testdb "github.com/weftlabs/weft/test/database"
)

func TestMessageService_Append(t *testing.T) {
	client := testdb.NewTestClient(t)
	threads := NewThreadService(client.Client)
	service := NewMessageService(client.Client, threads)
	ctx := context.Background()

	th, err := threads.CreateThread(ctx, models.CreateThreadRequest{AccountID: "acct-1"})
	require.NoError(t, err)

	t.Run("stores string content verbatim", func(t *testing.T) {
		msg, err := service.Append(ctx, models.CreateMessageRequest{
			ThreadID:     th.ID,
			Type:         models.MessageTypeUser,
			IsLLMMessage: true,
			Content:      "hello there",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, msg.ID)
		assert.Equal(t, "hello there", msg.Content)
		assert.True(t, msg.IsLlmMessage)
	})

	t.Run("encodes structured content as JSON", func(t *testing.T) {
		msg, err := service.Append(ctx, models.CreateMessageRequest{
			ThreadID:     th.ID,
			Type:         models.MessageTypeAssistant,
			IsLLMMessage: true,
			Content:      map[string]any{"role": "assistant", "content": "hi"},
		})
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal([]byte(msg.Content), &decoded))
		assert.Equal(t, "assistant", decoded["role"])
		assert.Equal(t, "hi", decoded["content"])
	})

	t.Run("persists metadata and agent id", func(t *testing.T) {
		msg, err := service.Append(ctx, models.CreateMessageRequest{
			ThreadID: th.ID,
			Type:     models.MessageTypeStatus,
			Content:  "run started",
			Metadata: map[string]any{"run_id": "run-1"},
			AgentID:  "agent-1",
		})
		require.NoError(t, err)
		assert.Equal(t, "run-1", msg.Metadata["run_id"])
		require.NotNil(t, msg.AgentID)
		assert.Equal(t, "agent-1", *msg.AgentID)
		assert.False(t, msg.IsLlmMessage)
	})

	t.Run("validates required fields", func(t *testing.T) {
		tests := []struct {
			name    string
			req     models.CreateMessageRequest
			wantErr string
		}{
			{
				name:    "missing thread_id",
				req:     models.CreateMessageRequest{Type: models.MessageTypeUser, Content: "x"},
				wantErr: "thread_id",
			},
			{
				name:    "missing type",
				req:     models.CreateMessageRequest{ThreadID: th.ID, Content: "x"},
				wantErr: "type",
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.Append(ctx, tt.req)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
				assert.Contains(t, err.Error(), tt.wantErr)
			})
		}
	})
}

func TestMessageService_ListLLMMessages(t *testing.T) {
	client := testdb.NewTestClient(t)
	threads := NewThreadService(client.Client)
	service := NewMessageService(client.Client, threads)
	ctx := context.Background()

	th, err := threads.CreateThread(ctx, models.CreateThreadRequest{AccountID: "acct-1"})
	require.NoError(t, err)

	_, err = service.Append(ctx, models.CreateMessageRequest{
		ThreadID:     th.ID,
		Type:         models.MessageTypeUser,
		IsLLMMessage: true,
		Content:      "what's the weather in Oslo?",
	})
	require.NoError(t, err)

	_, err = service.Append(ctx, models.CreateMessageRequest{
		ThreadID:     th.ID,
		Type:         models.MessageTypeAssistant,
		IsLLMMessage: true,
		Content: map[string]any{
			"role":    "assistant",
			"content": "checking",
			"tool_calls": []any{
				map[string]any{
					"id":   "call_1",
					"type": "function",
					"function": map[string]any{
						"name":      "get_weather",
						"arguments": `{"city":"Oslo"}`,
					},
				},
			},
		},
	})
	require.NoError(t, err)

	_, err = service.Append(ctx, models.CreateMessageRequest{
		ThreadID:     th.ID,
		Type:         models.MessageTypeTool,
		IsLLMMessage: true,
		Content: map[string]any{
			"role":         "tool",
			"tool_call_id": "call_1",
			"name":         "get_weather",
			"content":      "7C, raining",
		},
	})
	require.NoError(t, err)

	// Status rows never reach the model.
	_, err = service.Append(ctx, models.CreateMessageRequest{
		ThreadID: th.ID,
		Type:     models.MessageTypeStatus,
		Content:  "tool finished",
	})
	require.NoError(t, err)

	prepared, err := service.ListLLMMessages(ctx, th.ID)
	require.NoError(t, err)
	require.Len(t, prepared, 3)

	assert.Equal(t, "user", prepared[0].Role)
	assert.Equal(t, "what's the weather in Oslo?", prepared[0].Content)
	assert.NotEmpty(t, prepared[0].MessageID)

	assert.Equal(t, "assistant", prepared[1].Role)
	assert.Equal(t, "checking", prepared[1].Content)
	require.Len(t, prepared[1].ToolCalls, 1)
	assert.Equal(t, "call_1", prepared[1].ToolCalls[0].ID)
	assert.Equal(t, "get_weather", prepared[1].ToolCalls[0].Name)
	assert.JSONEq(t, `{"city":"Oslo"}`, prepared[1].ToolCalls[0].Arguments)

	assert.Equal(t, "tool", prepared[2].Role)
	assert.Equal(t, "call_1", prepared[2].ToolCallID)
	assert.Equal(t, "get_weather", prepared[2].Name)
	assert.Equal(t, "7C, raining", prepared[2].Content)

	t.Run("requires thread_id", func(t *testing.T) {
		_, err := service.ListLLMMessages(ctx, "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestMessageService_CompressionSidecar(t *testing.T) {
	client := testdb.NewTestClient(t)
	threads := NewThreadService(client.Client)
	service := NewMessageService(client.Client, threads)
	ctx := context.Background()

	th, err := threads.CreateThread(ctx, models.CreateThreadRequest{AccountID: "acct-1"})
	require.NoError(t, err)

	original := `{"role":"tool","tool_call_id":"call_9","content":"...8000 lines of build log..."}`
	msg, err := service.Append(ctx, models.CreateMessageRequest{
		ThreadID:     th.ID,
		Type:         models.MessageTypeTool,
		IsLLMMessage: true,
		Content:      original,
		Metadata:     map[string]any{models.MetaAssistantMessageID: "asst-msg-1"},
	})
	require.NoError(t, err)

	summary := "[compressed] build failed at step 7: missing header zstd.h"
	require.NoError(t, service.MarkMessageCompressed(ctx, msg.ID, summary))

	t.Run("stored content is untouched", func(t *testing.T) {
		row, err := service.GetMessage(ctx, msg.ID)
		require.NoError(t, err)
		assert.Equal(t, original, row.Content)
		assert.Equal(t, true, row.Metadata[models.MetaCompressed])
		assert.Equal(t, summary, row.Metadata[models.MetaCompressedContent])
		assert.Equal(t, "asst-msg-1", row.Metadata[models.MetaAssistantMessageID],
			"pairing metadata must survive compression")
	})

	t.Run("llm view substitutes the sidecar", func(t *testing.T) {
		prepared, err := service.ListLLMMessages(ctx, th.ID)
		require.NoError(t, err)
		require.Len(t, prepared, 1)
		assert.Equal(t, summary, prepared[0].Content)
		assert.True(t, prepared[0].Compressed)
		// The sidecar is plain text, so the tool_call_id from the stored
		// JSON is gone with the rest of the original object — and without
		// it the row cannot ride the tool role on the provider wire.
		assert.Empty(t, prepared[0].ToolCallID)
		assert.Equal(t, "user", prepared[0].Role)
	})

	t.Run("returns ErrNotFound for missing message", func(t *testing.T) {
		err := service.MarkMessageCompressed(ctx, "missing", "x")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPrepareRow(t *testing.T) {
	t.Run("plain text keeps the type-derived role", func(t *testing.T) {
		pm := prepareRow(&ent.Message{
			ID:      "m1",
			Type:    models.MessageTypeUser,
			Content: "just text",
		})
		assert.Equal(t, "user", pm.Role)
		assert.Equal(t, "just text", pm.Content)
		assert.False(t, pm.Compressed)
	})

	t.Run("decoded role overrides the type mapping", func(t *testing.T) {
		pm := prepareRow(&ent.Message{
			ID:      "m2",
			Type:    models.MessageTypeUser,
			Content: `{"role":"system","content":"you are terse"}`,
		})
		assert.Equal(t, "system", pm.Role)
		assert.Equal(t, "you are terse", pm.Content)
	})

	t.Run("flat tool call carries structured arguments", func(t *testing.T) {
		pm := prepareRow(&ent.Message{
			ID:      "m3",
			Type:    models.MessageTypeAssistant,
			Content: `{"role":"assistant","content":"done","tool_calls":[{"id":"toolu_1","name":"finish_task","arguments":{"status":"complete"}}]}`,
		})
		require.Len(t, pm.ToolCalls, 1)
		assert.Equal(t, "toolu_1", pm.ToolCalls[0].ID)
		assert.Equal(t, "finish_task", pm.ToolCalls[0].Name)
		assert.JSONEq(t, `{"status":"complete"}`, pm.ToolCalls[0].Arguments)
	})

	t.Run("object without content field surfaces whole object", func(t *testing.T) {
		pm := prepareRow(&ent.Message{
			ID:      "m4",
			Type:    models.MessageTypeAssistant,
			Content: `{"role":"assistant","refusal":"cannot comply"}`,
		})
		obj, ok := pm.Content.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "cannot comply", obj["refusal"])
	})

	t.Run("compressed sentinel tool row is served as a user note", func(t *testing.T) {
		pm := prepareRow(&ent.Message{
			ID:      "m6",
			Type:    models.MessageTypeTool,
			Content: `{"role":"tool","tool_call_id":"call_1","content":"huge"}`,
			Metadata: map[string]any{
				models.MetaCompressed:        true,
				models.MetaCompressedContent: "Tool output removed for token management",
			},
		})
		// A tool role with no tool_call_id is unencodable downstream, so
		// the plain-string sidecar must flip the role to user.
		assert.Equal(t, "user", pm.Role)
		assert.Equal(t, "Tool output removed for token management", pm.Content)
		assert.Empty(t, pm.ToolCallID)
		assert.True(t, pm.Compressed)
	})

	t.Run("compressed assistant sentinel also reads as user", func(t *testing.T) {
		pm := prepareRow(&ent.Message{
			ID:      "m7",
			Type:    models.MessageTypeAssistant,
			Content: `{"role":"assistant","content":"long reply"}`,
			Metadata: map[string]any{
				models.MetaCompressed:        true,
				models.MetaCompressedContent: "Assistant message truncated",
			},
		})
		assert.Equal(t, "user", pm.Role)
		assert.True(t, pm.Compressed)
	})

	t.Run("compressed sidecar holding valid JSON keeps its own role", func(t *testing.T) {
		pm := prepareRow(&ent.Message{
			ID:      "m8",
			Type:    models.MessageTypeTool,
			Content: `{"role":"tool","tool_call_id":"call_2","content":"huge"}`,
			Metadata: map[string]any{
				models.MetaCompressed:        true,
				models.MetaCompressedContent: `{"role":"tool","tool_call_id":"call_2","content":"short"}`,
			},
		})
		assert.Equal(t, "tool", pm.Role)
		assert.Equal(t, "call_2", pm.ToolCallID)
		assert.Equal(t, "short", pm.Content)
	})

	t.Run("compressed flag without sidecar keeps original content", func(t *testing.T) {
		pm := prepareRow(&ent.Message{
			ID:       "m5",
			Type:     models.MessageTypeTool,
			Content:  "full output",
			Metadata: map[string]any{models.MetaCompressed: true},
		})
		assert.Equal(t, "full output", pm.Content)
		assert.False(t, pm.Compressed)
	})
}

func TestMessageService_LatestOfType(t *testing.T) {
	client := testdb.NewTestClient(t)
	threads := NewThreadService(client.Client)
	service := NewMessageService(client.Client, threads)
	ctx := context.Background()

	th, err := threads.CreateThread(ctx, models.CreateThreadRequest{AccountID: "acct-1"})
	require.NoError(t, err)

	now := time.Now()
	_, err = client.Message.Create().
		SetID("sum-old").
		SetThreadID(th.ID).
		SetType(models.MessageTypeSummary).
		SetContent("old summary").
		SetCreatedAt(now.Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Message.Create().
		SetID("sum-new").
		SetThreadID(th.ID).
		SetType(models.MessageTypeSummary).
		SetContent("new summary").
		SetCreatedAt(now).
		Save(ctx)
	require.NoError(t, err)

	t.Run("returns the newest row of the type", func(t *testing.T) {
		msg, err := service.LatestOfType(ctx, th.ID, models.MessageTypeSummary)
		require.NoError(t, err)
		assert.Equal(t, "sum-new", msg.ID)
	})

	t.Run("returns ErrNotFound when the type is absent", func(t *testing.T) {
		_, err := service.LatestOfType(ctx, th.ID, models.MessageTypeLLMResponseEnd)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMessageService_UpdateMessage(t *testing.T) {
	client := testdb.NewTestClient(t)
	threads := NewThreadService(client.Client)
	service := NewMessageService(client.Client, threads)
	ctx := context.Background()

	th, err := threads.CreateThread(ctx, models.CreateThreadRequest{AccountID: "acct-1"})
	require.NoError(t, err)

	msg, err := service.Append(ctx, models.CreateMessageRequest{
		ThreadID: th.ID,
		Type:     models.MessageTypeAssistant,
		Content:  "draft",
	})
	require.NoError(t, err)

	t.Run("updates content in place", func(t *testing.T) {
		rewritten := "final"
		require.NoError(t, service.UpdateMessage(ctx, msg.ID, &rewritten, nil))

		got, err := service.GetMessage(ctx, msg.ID)
		require.NoError(t, err)
		assert.Equal(t, "final", got.Content)
	})

	t.Run("updates metadata without touching content", func(t *testing.T) {
		require.NoError(t, service.UpdateMessage(ctx, msg.ID, nil, map[string]any{"edited": true}))

		got, err := service.GetMessage(ctx, msg.ID)
		require.NoError(t, err)
		assert.Equal(t, "final", got.Content)
		assert.Equal(t, true, got.Metadata["edited"])
	})

	t.Run("returns ErrNotFound for missing message", func(t *testing.T) {
		err := service.UpdateMessage(ctx, "missing", nil, map[string]any{"k": "v"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMessageService_FlagCacheRebuildDelegates(t *testing.T) {
	client := testdb.NewTestClient(t)
	threads := NewThreadService(client.Client)
	service := NewMessageService(client.Client, threads)
	ctx := context.Background()

	th, err := threads.CreateThread(ctx, models.CreateThreadRequest{AccountID: "acct-1"})
	require.NoError(t, err)

	require.NoError(t, service.FlagCacheRebuild(ctx, th.ID))

	needs, err := threads.CacheNeedsRebuild(ctx, th.ID)
	require.NoError(t, err)
	assert.True(t, needs)
}
