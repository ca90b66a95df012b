package triggers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftlabs/weft/ent"
)

func TestWebhookProvider_ValidateConfig(t *testing.T) {
	provider := NewWebhookProvider()

	t.Run("empty config is valid", func(t *testing.T) {
		normalized, err := provider.ValidateConfig(nil)
		require.NoError(t, err)
		assert.Equal(t, "webhook", normalized[ConfigProviderID])
		assert.Equal(t, ExecutionTypeAgent, normalized[ConfigExecutionType])
	})

	t.Run("workflow route requires workflow id", func(t *testing.T) {
		_, err := provider.ValidateConfig(map[string]any{
			ConfigExecutionType: ExecutionTypeWorkflow,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "workflow_id is required")
	})
}

func TestWebhookProvider_Lifecycle(t *testing.T) {
	provider := NewWebhookProvider()
	ctx := context.Background()

	// No upstream state: both directions are no-ops.
	assert.NoError(t, provider.SetupTrigger(ctx, &ent.Trigger{ID: "trig-1"}))
	assert.NoError(t, provider.TeardownTrigger(ctx, &ent.Trigger{ID: "trig-1"}))
}

func TestWebhookProvider_ProcessEvent(t *testing.T) {
	provider := NewWebhookProvider()
	ctx := context.Background()

	t.Run("wraps payload under configured template", func(t *testing.T) {
		trig := &ent.Trigger{
			ID: "trig-1",
			Config: map[string]any{
				ConfigAgentPrompt:   "A deployment event arrived.",
				ConfigExecutionType: ExecutionTypeAgent,
			},
		}

		result, err := provider.ProcessEvent(ctx, trig, map[string]any{
			"service": "api",
			"status":  "deployed",
		})
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.True(t, result.ShouldExecute)
		assert.Contains(t, result.Prompt, "A deployment event arrived.")
		assert.Contains(t, result.Prompt, `"service": "api"`)
		assert.Contains(t, result.Prompt, "```json")
	})

	t.Run("default prompt when no template", func(t *testing.T) {
		trig := &ent.Trigger{ID: "trig-2", Config: map[string]any{}}

		result, err := provider.ProcessEvent(ctx, trig, map[string]any{"ping": true})
		require.NoError(t, err)
		assert.Contains(t, result.Prompt, "Process the following webhook event.")
	})
}
