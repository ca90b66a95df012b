package triggers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftlabs/weft/ent"
)

func TestScheduleProvider_ValidateConfig(t *testing.T) {
	provider := NewScheduleProvider(nil, "https://core.example.com", "secret")

	tests := []struct {
		name    string
		config  map[string]any
		wantErr string
	}{
		{
			name: "valid agent schedule",
			config: map[string]any{
				ConfigCronExpression: "30 9 * * 1",
				ConfigAgentPrompt:    "Summarize last week",
			},
		},
		{
			name: "valid workflow schedule",
			config: map[string]any{
				ConfigCronExpression: "0 * * * *",
				ConfigExecutionType:  ExecutionTypeWorkflow,
				ConfigWorkflowID:     "wf-1",
			},
		},
		{
			name:    "missing cron expression",
			config:  map[string]any{ConfigAgentPrompt: "hi"},
			wantErr: "cron_expression is required",
		},
		{
			name: "invalid cron expression",
			config: map[string]any{
				ConfigCronExpression: "every tuesday",
				ConfigAgentPrompt:    "hi",
			},
			wantErr: "invalid cron_expression",
		},
		{
			name: "invalid timezone",
			config: map[string]any{
				ConfigCronExpression: "30 9 * * *",
				ConfigTimezone:       "Mars/Olympus",
				ConfigAgentPrompt:    "hi",
			},
			wantErr: "invalid timezone",
		},
		{
			name: "agent execution requires prompt",
			config: map[string]any{
				ConfigCronExpression: "30 9 * * *",
			},
			wantErr: "agent_prompt is required",
		},
		{
			name: "workflow execution requires workflow id",
			config: map[string]any{
				ConfigCronExpression: "30 9 * * *",
				ConfigExecutionType:  ExecutionTypeWorkflow,
			},
			wantErr: "workflow_id is required",
		},
		{
			name: "unknown execution type",
			config: map[string]any{
				ConfigCronExpression: "30 9 * * *",
				ConfigExecutionType:  "cron",
			},
			wantErr: "execution_type must be agent or workflow",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized, err := provider.ValidateConfig(tt.config)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "schedule", normalized[ConfigProviderID])
			if tt.config[ConfigTimezone] == nil {
				assert.Equal(t, "UTC", normalized[ConfigTimezone],
					"timezone should default to UTC")
			}
		})
	}
}

func TestCronToUTC(t *testing.T) {
	tests := []struct {
		name string
		expr string
		tz   string
		want string
	}{
		{
			name: "utc passthrough",
			expr: "30 9 * * 1",
			tz:   "UTC",
			want: "30 9 * * 1",
		},
		{
			name: "empty timezone passthrough",
			expr: "30 9 * * 1",
			tz:   "",
			want: "30 9 * * 1",
		},
		{
			// Etc/GMT-5 is UTC+5 in IANA sign convention; the zone has
			// no DST so the expected value is stable year round.
			name: "fixed time shifted to utc",
			expr: "30 9 * * 1",
			tz:   "Etc/GMT-5",
			want: "30 4 * * 1",
		},
		{
			// Only minute and hour move; the day fields stay as given
			// even when the shift crosses midnight.
			name: "shift across midnight keeps day fields",
			expr: "30 1 * * *",
			tz:   "Etc/GMT-2",
			want: "30 23 * * *",
		},
		{
			name: "interval expression not shifted",
			expr: "*/15 * * * *",
			tz:   "Etc/GMT-5",
			want: "*/15 * * * *",
		},
		{
			name: "minute list not shifted",
			expr: "0,30 9 * * *",
			tz:   "Etc/GMT-5",
			want: "0,30 9 * * *",
		},
		{
			name: "wildcard hour not shifted",
			expr: "15 * * * *",
			tz:   "Etc/GMT-5",
			want: "15 * * * *",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cronToUTC(tt.expr, tt.tz)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown timezone on fixed time fails", func(t *testing.T) {
		_, err := cronToUTC("30 9 * * *", "Mars/Olympus")
		require.Error(t, err)
	})
}

func TestScheduleProvider_ProcessEvent(t *testing.T) {
	provider := NewScheduleProvider(nil, "https://core.example.com", "secret")
	ctx := context.Background()

	t.Run("agent schedule uses configured prompt", func(t *testing.T) {
		trig := &ent.Trigger{
			ID: "trig-1",
			Config: map[string]any{
				ConfigExecutionType: ExecutionTypeAgent,
				ConfigAgentPrompt:   "Summarize last week",
			},
		}

		result, err := provider.ProcessEvent(ctx, trig, map[string]any{
			"timestamp": "2026-08-26T09:30:00Z",
		})
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.True(t, result.ShouldExecute)
		assert.Equal(t, "Summarize last week", result.Prompt)
		assert.Equal(t, ExecutionTypeAgent, result.ExecutionVariables[ConfigExecutionType])
		assert.Equal(t, "2026-08-26T09:30:00Z", result.ExecutionVariables["scheduled_at"])
	})

	t.Run("workflow schedule carries workflow fields", func(t *testing.T) {
		trig := &ent.Trigger{
			ID: "trig-2",
			Config: map[string]any{
				ConfigExecutionType: ExecutionTypeWorkflow,
				ConfigWorkflowID:    "wf-1",
				ConfigWorkflowInput: map[string]any{"report": "weekly"},
			},
		}

		result, err := provider.ProcessEvent(ctx, trig, map[string]any{})
		require.NoError(t, err)
		assert.True(t, result.ShouldExecute)
		assert.Equal(t, "wf-1", result.ExecutionVariables[ConfigWorkflowID])
		assert.Equal(t, map[string]any{"report": "weekly"}, result.ExecutionVariables[ConfigWorkflowInput])
	})

	t.Run("prompt falls back to delivery body", func(t *testing.T) {
		trig := &ent.Trigger{ID: "trig-3", Config: map[string]any{}}

		result, err := provider.ProcessEvent(ctx, trig, map[string]any{
			ConfigAgentPrompt: "Prompt from the scheduled delivery",
		})
		require.NoError(t, err)
		assert.Equal(t, "Prompt from the scheduled delivery", result.Prompt)
	})
}

func TestQuoteLiteral(t *testing.T) {
	assert.Equal(t, "'plain'", quoteLiteral("plain"))
	assert.Equal(t, "'it''s quoted'", quoteLiteral("it's quoted"))
	assert.Equal(t, "''", quoteLiteral(""))
}
