package triggers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftlabs/weft/ent"
	testdb "github.com/weftlabs/weft/test/database"
)

// remoteRecorder plays the Composio API: it records status PATCHes and
// DELETEs against trigger instances and answers with a scripted status.
type remoteRecorder struct {
	mu         sync.Mutex
	patches    []string // "<remote_id>:<status>"
	deletes    []string
	statusCode int
}

func (r *remoteRecorder) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		remoteID := req.URL.Path[strings.LastIndex(req.URL.Path, "/")+1:]

		r.mu.Lock()
		defer r.mu.Unlock()
		switch req.Method {
		case http.MethodPatch:
			var body struct {
				Status string `json:"status"`
			}
			_ = json.NewDecoder(req.Body).Decode(&body)
			r.patches = append(r.patches, remoteID+":"+body.Status)
		case http.MethodDelete:
			r.deletes = append(r.deletes, remoteID)
		}

		code := r.statusCode
		if code == 0 {
			code = http.StatusOK
		}
		w.WriteHeader(code)
	})
}

func (r *remoteRecorder) patchCalls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.patches...)
}

func (r *remoteRecorder) deleteCalls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.deletes...)
}

// newComposioHarness wires a composio provider against a recorded remote
// and a test database with one agent to hang triggers on.
func newComposioHarness(t *testing.T) (*ent.Client, *ComposioProvider, *remoteRecorder, string) {
	client := testdb.NewTestClient(t)

	recorder := &remoteRecorder{}
	server := httptest.NewServer(recorder.handler())
	t.Cleanup(server.Close)

	provider := NewComposioProvider(client.Client, server.URL, "test-api-key")

	agent, err := client.Client.Agent.Create().
		SetID(uuid.New().String()).
		SetAccountID("acct-1").
		SetName("events").
		Save(context.Background())
	require.NoError(t, err)

	return client.Client, provider, recorder, agent.ID
}

// createEventTrigger persists a composio trigger row the way the trigger
// service stores them.
func createEventTrigger(t *testing.T, client *ent.Client, agentID, remoteID string, active bool) *ent.Trigger {
	trig, err := client.Trigger.Create().
		SetID(uuid.New().String()).
		SetAgentID(agentID).
		SetProviderID("composio").
		SetTriggerType("EVENT").
		SetName("gh-" + remoteID).
		SetIsActive(active).
		SetConfig(map[string]any{
			ConfigProviderID:      "composio",
			ConfigComposioTrigger: remoteID,
			ConfigTriggerSlug:     "github_new_issue",
			ConfigExecutionType:   ExecutionTypeAgent,
		}).
		Save(context.Background())
	require.NoError(t, err)
	return trig
}

// deactivate persists is_active=false before teardown, mirroring the
// order the trigger service writes in.
func deactivate(t *testing.T, client *ent.Client, trig *ent.Trigger) {
	_, err := client.Trigger.UpdateOneID(trig.ID).SetIsActive(false).Save(context.Background())
	require.NoError(t, err)
}

func TestComposioProvider_ValidateConfig(t *testing.T) {
	provider := NewComposioProvider(nil, "https://backend.composio.dev", "key")

	tests := []struct {
		name    string
		config  map[string]any
		wantErr string
	}{
		{
			name: "valid config",
			config: map[string]any{
				ConfigComposioTrigger: "ti_abc123",
				ConfigTriggerSlug:     "github_new_issue",
			},
		},
		{
			name:    "missing remote id",
			config:  map[string]any{ConfigTriggerSlug: "github_new_issue"},
			wantErr: "composio_trigger_id is required",
		},
		{
			name:    "missing slug",
			config:  map[string]any{ConfigComposioTrigger: "ti_abc123"},
			wantErr: "trigger_slug is required",
		},
		{
			name: "workflow route requires workflow id",
			config: map[string]any{
				ConfigComposioTrigger: "ti_abc123",
				ConfigTriggerSlug:     "github_new_issue",
				ConfigExecutionType:   ExecutionTypeWorkflow,
			},
			wantErr: "workflow_id is required",
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
			assert.Equal(t, "composio", normalized[ConfigProviderID])
			assert.Equal(t, ExecutionTypeAgent, normalized[ConfigExecutionType],
				"execution type should default to agent")
		})
	}
}

func TestComposioSetup_FirstActiveEnablesRemote(t *testing.T) {
	client, provider, recorder, agentID := newComposioHarness(t)
	ctx := context.Background()

	trig := createEventTrigger(t, client, agentID, "ti_X", true)

	require.NoError(t, provider.SetupTrigger(ctx, trig))
	assert.Equal(t, []string{"ti_X:enable"}, recorder.patchCalls())
}

func TestComposioSetup_PeerAlreadyActiveSkipsRemote(t *testing.T) {
	client, provider, recorder, agentID := newComposioHarness(t)
	ctx := context.Background()

	createEventTrigger(t, client, agentID, "ti_X", true)
	second := createEventTrigger(t, client, agentID, "ti_X", true)

	require.NoError(t, provider.SetupTrigger(ctx, second))
	assert.Empty(t, recorder.patchCalls(),
		"remote should not be touched while a peer keeps the subscription alive")
}

func TestComposioTeardown_ReferenceCount(t *testing.T) {
	client, provider, recorder, agentID := newComposioHarness(t)
	ctx := context.Background()

	first := createEventTrigger(t, client, agentID, "ti_X", true)
	second := createEventTrigger(t, client, agentID, "ti_X", true)

	// Deactivating one of two leaves the remote subscription alone.
	deactivate(t, client, first)
	require.NoError(t, provider.TeardownTrigger(ctx, first))
	assert.Empty(t, recorder.patchCalls())

	// The last active local trigger going down disables the remote,
	// exactly once.
	deactivate(t, client, second)
	require.NoError(t, provider.TeardownTrigger(ctx, second))
	assert.Equal(t, []string{"ti_X:disable"}, recorder.patchCalls())
}

func TestComposioTeardown_DistinctRemoteIDsIndependent(t *testing.T) {
	client, provider, recorder, agentID := newComposioHarness(t)
	ctx := context.Background()

	x := createEventTrigger(t, client, agentID, "ti_X", true)
	createEventTrigger(t, client, agentID, "ti_Y", true)

	deactivate(t, client, x)
	require.NoError(t, provider.TeardownTrigger(ctx, x))
	assert.Equal(t, []string{"ti_X:disable"}, recorder.patchCalls(),
		"an active trigger on a different remote id must not hold ti_X open")
}

func TestComposioSetup_RemoteFailureSurfaces(t *testing.T) {
	client, provider, recorder, agentID := newComposioHarness(t)
	recorder.statusCode = http.StatusBadGateway
	ctx := context.Background()

	trig := createEventTrigger(t, client, agentID, "ti_X", true)

	err := provider.SetupTrigger(ctx, trig)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to enable remote trigger")
}

func TestComposioDeleteRemote_OnlyWhenUnreferenced(t *testing.T) {
	client, provider, recorder, agentID := newComposioHarness(t)
	ctx := context.Background()

	first := createEventTrigger(t, client, agentID, "ti_X", true)
	// Inactive rows still count as references for delete.
	second := createEventTrigger(t, client, agentID, "ti_X", false)

	// The service deletes the row before the best-effort remote calls.
	require.NoError(t, client.Trigger.DeleteOneID(first.ID).Exec(ctx))
	require.NoError(t, provider.DeleteRemoteTrigger(ctx, first))
	assert.Empty(t, recorder.deleteCalls())

	require.NoError(t, client.Trigger.DeleteOneID(second.ID).Exec(ctx))
	require.NoError(t, provider.DeleteRemoteTrigger(ctx, second))
	assert.Equal(t, []string{"ti_X"}, recorder.deleteCalls())
}

func TestComposioDeleteRemote_NotFoundTolerated(t *testing.T) {
	client, provider, recorder, agentID := newComposioHarness(t)
	recorder.statusCode = http.StatusNotFound
	ctx := context.Background()

	trig := createEventTrigger(t, client, agentID, "ti_gone", true)
	require.NoError(t, client.Trigger.DeleteOneID(trig.ID).Exec(ctx))

	assert.NoError(t, provider.DeleteRemoteTrigger(ctx, trig),
		"a remote 404 means the subscription is already gone")
}

func TestComposioProcessEvent(t *testing.T) {
	provider := NewComposioProvider(nil, "https://backend.composio.dev", "key")
	ctx := context.Background()

	t.Run("configured prompt wins", func(t *testing.T) {
		trig := &ent.Trigger{
			ID:       "trig-1",
			IsActive: true,
			Config: map[string]any{
				ConfigComposioTrigger: "ti_X",
				ConfigTriggerSlug:     "github_new_issue",
				ConfigExecutionType:   ExecutionTypeAgent,
				ConfigAgentPrompt:     "Triage the new issue",
			},
		}

		result, err := provider.ProcessEvent(ctx, trig, map[string]any{
			"id":    "evt-1",
			"title": "panic on empty config",
		})
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.True(t, result.ShouldExecute)
		assert.Equal(t, "Triage the new issue", result.Prompt)
		assert.Equal(t, "evt-1", result.ExecutionVariables["event_id"])
		assert.Equal(t, "github_new_issue", result.ExecutionVariables[ConfigTriggerSlug])
	})

	t.Run("default prompt embeds truncated payload", func(t *testing.T) {
		trig := &ent.Trigger{
			ID:       "trig-2",
			IsActive: true,
			Config: map[string]any{
				ConfigComposioTrigger: "ti_X",
				ConfigTriggerSlug:     "github_new_issue",
			},
		}

		result, err := provider.ProcessEvent(ctx, trig, map[string]any{
			"body": strings.Repeat("x", 2000),
		})
		require.NoError(t, err)
		assert.Contains(t, result.Prompt, "github_new_issue event")
		assert.Contains(t, result.Prompt, "...")
		assert.Less(t, len(result.Prompt), 1100,
			"payload embedded in the default prompt should be capped")
	})

	t.Run("inactive trigger declines execution", func(t *testing.T) {
		trig := &ent.Trigger{
			ID:       "trig-3",
			IsActive: false,
			Config: map[string]any{
				ConfigComposioTrigger: "ti_X",
				ConfigTriggerSlug:     "github_new_issue",
			},
		}

		result, err := provider.ProcessEvent(ctx, trig, map[string]any{"id": "evt-2"})
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.False(t, result.ShouldExecute)
	})

	t.Run("event id falls back to trigger_nano_id", func(t *testing.T) {
		trig := &ent.Trigger{
			ID:       "trig-4",
			IsActive: true,
			Config: map[string]any{
				ConfigComposioTrigger: "ti_X",
				ConfigTriggerSlug:     "github_new_issue",
			},
		}

		result, err := provider.ProcessEvent(ctx, trig, map[string]any{
			"trigger_nano_id": "ti_X",
		})
		require.NoError(t, err)
		assert.Equal(t, "ti_X", result.ExecutionVariables["event_id"])
	})
}
