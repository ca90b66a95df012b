package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftlabs/weft/ent/agentrun"
	"github.com/weftlabs/weft/pkg/models"
	testdb "github.com/weftlabs/weft/test/database"
)

// TestServiceIntegration tests multiple services working together
func TestServiceIntegration(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	threadService := NewThreadService(client.Client)
	messageService := NewMessageService(client.Client, threadService)
	runService := NewRunService(client.Client)
	creditService := NewCreditService(client.Client)

	t.Run("full conversation lifecycle", func(t *testing.T) {
		// 1. Fund an account
		acct, err := creditService.GetOrCreateAccount(ctx, "user-flow")
		require.NoError(t, err)
		require.NoError(t, creditService.GrantCredits(ctx, acct.ID, 10, "test funds"))
		require.NoError(t, creditService.CheckModelAccess(ctx, acct.ID, "claude-sonnet-4-20250514"))

		// 2. Open a thread and record the user's turn
		th, err := threadService.CreateThread(ctx, models.CreateThreadRequest{AccountID: acct.ID})
		require.NoError(t, err)
		_, err = messageService.Append(ctx, models.CreateMessageRequest{
			ThreadID:     th.ID,
			Type:         models.MessageTypeUser,
			IsLLMMessage: true,
			Content:      "list the failing pods",
		})
		require.NoError(t, err)

		// 3. Start the run; a duplicate start must be rejected
		run, err := runService.StartRun(ctx, StartRunRequest{ThreadID: th.ID, PodID: "pod-1"})
		require.NoError(t, err)
		_, err = runService.StartRun(ctx, StartRunRequest{ThreadID: th.ID})
		assert.ErrorIs(t, err, ErrRunAlreadyActive)

		// 4. Record the assistant turn and its tool round-trip
		_, err = messageService.Append(ctx, models.CreateMessageRequest{
			ThreadID:     th.ID,
			Type:         models.MessageTypeAssistant,
			IsLLMMessage: true,
			Content: map[string]any{
				"role":    "assistant",
				"content": "checking the cluster",
				"tool_calls": []any{
					map[string]any{
						"id":   "call_1",
						"type": "function",
						"function": map[string]any{
							"name":      "kubectl_get_pods",
							"arguments": `{"selector":"status!=Running"}`,
						},
					},
				},
			},
		})
		require.NoError(t, err)
		_, err = messageService.Append(ctx, models.CreateMessageRequest{
			ThreadID:     th.ID,
			Type:         models.MessageTypeTool,
			IsLLMMessage: true,
			Content: map[string]any{
				"role":         "tool",
				"tool_call_id": "call_1",
				"content":      "checkout-7d9f CrashLoopBackOff",
			},
		})
		require.NoError(t, err)

		// 5. Bill the completion via the accounting row
		responseID := uuid.New().String()
		_, err = messageService.Append(ctx, models.CreateMessageRequest{
			ThreadID: th.ID,
			Type:     models.MessageTypeLLMResponseEnd,
			Content:  "{}",
			Metadata: map[string]any{
				models.MetaUsage: map[string]any{"prompt_tokens": 1200, "completion_tokens": 300},
			},
		})
		require.NoError(t, err)
		cost, err := creditService.DeductUsage(ctx, DeductUsageRequest{
			AccountID:        acct.ID,
			ThreadID:         th.ID,
			LLMResponseID:    responseID,
			Model:            "claude-sonnet-4-20250514",
			PromptTokens:     1200,
			CompletionTokens: 300,
		})
		require.NoError(t, err)
		assert.Greater(t, cost, 0.0)

		// 6. Finish the run
		require.NoError(t, runService.CompleteRun(ctx, run.ID, agentrun.StatusCompleted, ""))
		_, err = runService.RunningForThread(ctx, th.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		// The LLM view has the three conversation turns; the accounting
		// row stays out of it.
		prepared, err := messageService.ListLLMMessages(ctx, th.ID)
		require.NoError(t, err)
		require.Len(t, prepared, 3)
		assert.Equal(t, "user", prepared[0].Role)
		assert.Equal(t, "assistant", prepared[1].Role)
		assert.Equal(t, "tool", prepared[2].Role)

		got, err := creditService.GetAccount(ctx, acct.ID)
		require.NoError(t, err)
		assert.Less(t, got.Balance, 10.0)

		// A fresh run can start now that the old one is terminal.
		next, err := runService.StartRun(ctx, StartRunRequest{ThreadID: th.ID})
		require.NoError(t, err)
		require.NoError(t, runService.RequestStop(ctx, next.ID))
	})
}
