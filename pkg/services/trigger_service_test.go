package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftlabs/weft/ent"
	"github.com/weftlabs/weft/ent/triggerevent"
	"github.com/weftlabs/weft/pkg/database"
	"github.com/weftlabs/weft/pkg/models"
	"github.com/weftlabs/weft/pkg/triggers"
	testdb "github.com/weftlabs/weft/test/database"
)

// fakeProvider is a scripted trigger backend: tests queue failures up
// front and read back the lifecycle calls the service made.
type fakeProvider struct {
	mu sync.Mutex

	id          string
	triggerType string

	validateErr      error
	setupFailures    int
	teardownFailures int

	processResult models.TriggerResult
	processErr    error

	setups    []string
	teardowns []string
	processed []map[string]any
}

func newFakeProvider(id, triggerType string) *fakeProvider {
	return &fakeProvider{id: id, triggerType: triggerType}
}

func (p *fakeProvider) ProviderID() string  { return p.id }
func (p *fakeProvider) TriggerType() string { return p.triggerType }

func (p *fakeProvider) ValidateConfig(config map[string]any) (map[string]any, error) {
	if p.validateErr != nil {
		return nil, p.validateErr
	}
	normalized := make(map[string]any, len(config)+1)
	for k, v := range config {
		normalized[k] = v
	}
	normalized[triggers.ConfigProviderID] = p.id
	return normalized, nil
}

func (p *fakeProvider) SetupTrigger(_ context.Context, trig *ent.Trigger) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.setupFailures > 0 {
		p.setupFailures--
		return errors.New("upstream refused subscription")
	}
	p.setups = append(p.setups, trig.ID)
	return nil
}

func (p *fakeProvider) TeardownTrigger(_ context.Context, trig *ent.Trigger) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.teardownFailures > 0 {
		p.teardownFailures--
		return errors.New("upstream teardown failed")
	}
	p.teardowns = append(p.teardowns, trig.ID)
	return nil
}

func (p *fakeProvider) ProcessEvent(_ context.Context, _ *ent.Trigger, rawData map[string]any) (models.TriggerResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.processed = append(p.processed, rawData)
	return p.processResult, p.processErr
}

func (p *fakeProvider) failNextSetup(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.setupFailures = n
}

func (p *fakeProvider) failNextTeardown(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.teardownFailures = n
}

func (p *fakeProvider) scriptProcess(result models.TriggerResult, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.processResult = result
	p.processErr = err
}

func (p *fakeProvider) setupCalls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.setups...)
}

func (p *fakeProvider) teardownCalls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.teardowns...)
}

func (p *fakeProvider) processedCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.processed)
}

// fakeRemoteProvider additionally owns remote state, like the composio
// adapter does.
type fakeRemoteProvider struct {
	*fakeProvider
	remoteDeletes []string
}

func (p *fakeRemoteProvider) DeleteRemoteTrigger(_ context.Context, trig *ent.Trigger) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.remoteDeletes = append(p.remoteDeletes, trig.ID)
	return nil
}

// newTriggerHarness wires a trigger service with one webhook-style fake
// provider and an agent to hang triggers on.
func newTriggerHarness(t *testing.T) (*database.Client, *TriggerService, *fakeProvider, *ent.Agent) {
	client := testdb.NewTestClient(t)
	provider := newFakeProvider("webhook", models.TriggerTypeWebhook)
	registry := triggers.NewRegistry()
	registry.Register(provider)
	service := NewTriggerService(client.Client, registry)

	agents := NewAgentService(client.Client)
	agent, err := agents.CreateAgent(context.Background(), CreateAgentRequest{
		AccountID: "acct-1",
		Name:      "hooked",
	})
	require.NoError(t, err)
	return client, service, provider, agent
}

func TestTriggerService_CreateTrigger(t *testing.T) {
	_, service, provider, agent := newTriggerHarness(t)
	ctx := context.Background()

	t.Run("creates an active trigger and runs setup", func(t *testing.T) {
		trig, err := service.CreateTrigger(ctx, agent.ID, models.CreateTriggerRequest{
			ProviderID: "webhook",
			Name:       "on-push",
			Config:     map[string]any{"secret": "s3cret"},
		})
		require.NoError(t, err)
		assert.True(t, trig.IsActive)
		assert.Equal(t, "webhook", trig.ProviderID)
		assert.Equal(t, models.TriggerTypeWebhook, trig.TriggerType)
		assert.Equal(t, "s3cret", trig.Config["secret"])
		assert.Equal(t, "webhook", trig.Config[triggers.ConfigProviderID],
			"provider stamps the stored config")
		assert.Equal(t, []string{trig.ID}, provider.setupCalls())
	})

	t.Run("inactive creation skips setup", func(t *testing.T) {
		inactive := false
		trig, err := service.CreateTrigger(ctx, agent.ID, models.CreateTriggerRequest{
			ProviderID: "webhook",
			Name:       "paused",
			IsActive:   &inactive,
		})
		require.NoError(t, err)
		assert.False(t, trig.IsActive)
		assert.Len(t, provider.setupCalls(), 1, "no new setup call")
	})

	t.Run("validates required fields", func(t *testing.T) {
		tests := []struct {
			name    string
			agentID string
			req     models.CreateTriggerRequest
			wantErr string
		}{
			{
				name:    "missing agent_id",
				agentID: "",
				req:     models.CreateTriggerRequest{ProviderID: "webhook", Name: "x"},
				wantErr: "agent_id",
			},
			{
				name:    "missing provider_id",
				agentID: agent.ID,
				req:     models.CreateTriggerRequest{Name: "x"},
				wantErr: "provider_id",
			},
			{
				name:    "missing name",
				agentID: agent.ID,
				req:     models.CreateTriggerRequest{ProviderID: "webhook"},
				wantErr: "name",
			},
			{
				name:    "unknown provider",
				agentID: agent.ID,
				req:     models.CreateTriggerRequest{ProviderID: "carrier-pigeon", Name: "x"},
				wantErr: "provider_id",
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.CreateTrigger(ctx, tt.agentID, tt.req)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
				assert.Contains(t, err.Error(), tt.wantErr)
			})
		}
	})

	t.Run("config rejected by the provider", func(t *testing.T) {
		provider.validateErr = errors.New("cron_expression is required")
		defer func() { provider.validateErr = nil }()

		_, err := service.CreateTrigger(ctx, agent.ID, models.CreateTriggerRequest{
			ProviderID: "webhook",
			Name:       "bad-config",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
		assert.Contains(t, err.Error(), "cron_expression")
	})

	t.Run("setup failure rolls the row back", func(t *testing.T) {
		before, err := service.ListTriggersByAgent(ctx, agent.ID)
		require.NoError(t, err)

		provider.failNextSetup(1)
		_, err = service.CreateTrigger(ctx, agent.ID, models.CreateTriggerRequest{
			ProviderID: "webhook",
			Name:       "doomed",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "trigger setup failed")

		after, err := service.ListTriggersByAgent(ctx, agent.ID)
		require.NoError(t, err)
		assert.Len(t, after, len(before), "no half-configured trigger survives")
	})
}

func TestTriggerService_UpdateTrigger(t *testing.T) {
	_, service, provider, agent := newTriggerHarness(t)
	ctx := context.Background()

	trig, err := service.CreateTrigger(ctx, agent.ID, models.CreateTriggerRequest{
		ProviderID: "webhook",
		Name:       "deploy-hook",
		Config:     map[string]any{"secret": "v1"},
	})
	require.NoError(t, err)

	t.Run("rename touches no provider state", func(t *testing.T) {
		name := "deploy-hook-renamed"
		updated, err := service.UpdateTrigger(ctx, trig.ID, models.UpdateTriggerRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, name, updated.Name)
		assert.Equal(t, "v1", updated.Config["secret"])
		assert.Len(t, provider.setupCalls(), 1)
		assert.Empty(t, provider.teardownCalls())
	})

	t.Run("deactivation tears down the upstream side", func(t *testing.T) {
		inactive := false
		updated, err := service.UpdateTrigger(ctx, trig.ID, models.UpdateTriggerRequest{IsActive: &inactive})
		require.NoError(t, err)
		assert.False(t, updated.IsActive)
		assert.Equal(t, []string{trig.ID}, provider.teardownCalls())
	})

	t.Run("activation sets up and rolls the flag back on failure", func(t *testing.T) {
		active := true
		updated, err := service.UpdateTrigger(ctx, trig.ID, models.UpdateTriggerRequest{IsActive: &active})
		require.NoError(t, err)
		assert.True(t, updated.IsActive)
		assert.Len(t, provider.setupCalls(), 2)

		inactive := false
		_, err = service.UpdateTrigger(ctx, trig.ID, models.UpdateTriggerRequest{IsActive: &inactive})
		require.NoError(t, err)

		provider.failNextSetup(1)
		_, err = service.UpdateTrigger(ctx, trig.ID, models.UpdateTriggerRequest{IsActive: &active})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "trigger setup failed")

		got, err := service.GetTrigger(ctx, trig.ID)
		require.NoError(t, err)
		assert.False(t, got.IsActive, "flag rolled back after failed setup")

		// Bring it back up for the following subtests.
		_, err = service.UpdateTrigger(ctx, trig.ID, models.UpdateTriggerRequest{IsActive: &active})
		require.NoError(t, err)
	})

	t.Run("config change on an active trigger cycles the subscription", func(t *testing.T) {
		setupsBefore := len(provider.setupCalls())
		teardownsBefore := len(provider.teardownCalls())

		updated, err := service.UpdateTrigger(ctx, trig.ID, models.UpdateTriggerRequest{
			Config: map[string]any{"secret": "v2"},
		})
		require.NoError(t, err)
		assert.Equal(t, "v2", updated.Config["secret"])
		assert.Len(t, provider.setupCalls(), setupsBefore+1)
		assert.Len(t, provider.teardownCalls(), teardownsBefore+1)
	})

	t.Run("failed reconfiguration restores the old subscription", func(t *testing.T) {
		setupsBefore := len(provider.setupCalls())

		provider.failNextSetup(1)
		_, err := service.UpdateTrigger(ctx, trig.ID, models.UpdateTriggerRequest{
			Config: map[string]any{"secret": "v3"},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "trigger setup failed")

		got, err := service.GetTrigger(ctx, trig.ID)
		require.NoError(t, err)
		assert.Equal(t, "v2", got.Config["secret"], "previous config restored")
		assert.Len(t, provider.setupCalls(), setupsBefore+1, "old subscription re-established")
	})

	t.Run("returns ErrNotFound for missing trigger", func(t *testing.T) {
		name := "x"
		_, err := service.UpdateTrigger(ctx, "missing", models.UpdateTriggerRequest{Name: &name})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTriggerService_MatchEventTriggers(t *testing.T) {
	client := testdb.NewTestClient(t)
	composio := newFakeProvider("composio", models.TriggerTypeEvent)
	webhook := newFakeProvider("webhook", models.TriggerTypeWebhook)
	registry := triggers.NewRegistry()
	registry.Register(composio)
	registry.Register(webhook)
	service := NewTriggerService(client.Client, registry)
	ctx := context.Background()

	agents := NewAgentService(client.Client)
	agent, err := agents.CreateAgent(ctx, CreateAgentRequest{AccountID: "acct-1", Name: "listener"})
	require.NoError(t, err)

	inactive := false
	matched, err := service.CreateTrigger(ctx, agent.ID, models.CreateTriggerRequest{
		ProviderID: "composio",
		Name:       "gmail-new-message",
		Config:     map[string]any{triggers.ConfigComposioTrigger: "sub_1"},
	})
	require.NoError(t, err)
	_, err = service.CreateTrigger(ctx, agent.ID, models.CreateTriggerRequest{
		ProviderID: "composio",
		Name:       "slack-mention",
		Config:     map[string]any{triggers.ConfigComposioTrigger: "sub_2"},
	})
	require.NoError(t, err)
	_, err = service.CreateTrigger(ctx, agent.ID, models.CreateTriggerRequest{
		ProviderID: "composio",
		Name:       "paused-duplicate",
		Config:     map[string]any{triggers.ConfigComposioTrigger: "sub_1"},
		IsActive:   &inactive,
	})
	require.NoError(t, err)
	_, err = service.CreateTrigger(ctx, agent.ID, models.CreateTriggerRequest{
		ProviderID: "webhook",
		Name:       "not-an-event-trigger",
		Config:     map[string]any{triggers.ConfigComposioTrigger: "sub_1"},
	})
	require.NoError(t, err)

	t.Run("matches only active event triggers with the exact id", func(t *testing.T) {
		got, err := service.MatchEventTriggers(ctx, "sub_1")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, matched.ID, got[0].ID)
	})

	t.Run("empty remote id matches nothing", func(t *testing.T) {
		got, err := service.MatchEventTriggers(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("unknown remote id matches nothing", func(t *testing.T) {
		got, err := service.MatchEventTriggers(ctx, "sub_404")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestTriggerService_DeleteTrigger(t *testing.T) {
	_, service, provider, agent := newTriggerHarness(t)
	ctx := context.Background()

	t.Run("removes the row and tears down upstream", func(t *testing.T) {
		trig, err := service.CreateTrigger(ctx, agent.ID, models.CreateTriggerRequest{
			ProviderID: "webhook",
			Name:       "short-lived",
		})
		require.NoError(t, err)

		require.NoError(t, service.DeleteTrigger(ctx, trig.ID))

		_, err = service.GetTrigger(ctx, trig.ID)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Contains(t, provider.teardownCalls(), trig.ID)
	})

	t.Run("teardown failure still deletes the row", func(t *testing.T) {
		trig, err := service.CreateTrigger(ctx, agent.ID, models.CreateTriggerRequest{
			ProviderID: "webhook",
			Name:       "stubborn",
		})
		require.NoError(t, err)

		provider.failNextTeardown(1)
		require.NoError(t, service.DeleteTrigger(ctx, trig.ID))

		_, err = service.GetTrigger(ctx, trig.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("returns ErrNotFound for missing trigger", func(t *testing.T) {
		err := service.DeleteTrigger(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTriggerService_DeleteTrigger_RemoteDeleter(t *testing.T) {
	client := testdb.NewTestClient(t)
	remote := &fakeRemoteProvider{
		fakeProvider: newFakeProvider("composio", models.TriggerTypeEvent),
	}
	registry := triggers.NewRegistry()
	registry.Register(remote)
	service := NewTriggerService(client.Client, registry)
	ctx := context.Background()

	agents := NewAgentService(client.Client)
	agent, err := agents.CreateAgent(ctx, CreateAgentRequest{AccountID: "acct-1", Name: "remote"})
	require.NoError(t, err)

	trig, err := service.CreateTrigger(ctx, agent.ID, models.CreateTriggerRequest{
		ProviderID: "composio",
		Name:       "remote-owned",
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteTrigger(ctx, trig.ID))

	remote.mu.Lock()
	defer remote.mu.Unlock()
	assert.Equal(t, []string{trig.ID}, remote.remoteDeletes)
}

func TestTriggerService_ProcessEvent(t *testing.T) {
	client, service, provider, agent := newTriggerHarness(t)
	ctx := context.Background()

	trig, err := service.CreateTrigger(ctx, agent.ID, models.CreateTriggerRequest{
		ProviderID: "webhook",
		Name:       "ci-finished",
	})
	require.NoError(t, err)

	t.Run("active trigger yields the provider verdict and an audit row", func(t *testing.T) {
		provider.scriptProcess(models.TriggerResult{
			Success:       true,
			ShouldExecute: true,
			Prompt:        "summarize the failed build",
		}, nil)

		result, err := service.ProcessEvent(ctx, trig.ID, map[string]any{"action": "push"})
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.True(t, result.ShouldExecute)
		assert.Equal(t, "summarize the failed build", result.Prompt)
		assert.Equal(t, 1, provider.processedCount())

		events, err := service.ListTriggerEvents(ctx, trig.ID, 0)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.True(t, events[0].Success)
		assert.True(t, events[0].ShouldExecute)
		assert.Equal(t, agent.ID, events[0].AgentID)
		assert.Equal(t, models.TriggerTypeWebhook, events[0].TriggerType)
		assert.Equal(t, "push", events[0].RawData["action"])
	})

	t.Run("inactive trigger logs but never executes", func(t *testing.T) {
		inactive := false
		_, err := service.UpdateTrigger(ctx, trig.ID, models.UpdateTriggerRequest{IsActive: &inactive})
		require.NoError(t, err)

		result, err := service.ProcessEvent(ctx, trig.ID, map[string]any{"action": "push"})
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.False(t, result.ShouldExecute)
		assert.Equal(t, 1, provider.processedCount(), "provider never called")

		events, err := service.ListTriggerEvents(ctx, trig.ID, 0)
		require.NoError(t, err)
		assert.Len(t, events, 2, "audit row written regardless")
	})

	t.Run("provider failure surfaces in the result and the audit row", func(t *testing.T) {
		failing, err := service.CreateTrigger(ctx, agent.ID, models.CreateTriggerRequest{
			ProviderID: "webhook",
			Name:       "flaky",
		})
		require.NoError(t, err)
		provider.scriptProcess(models.TriggerResult{}, errors.New("malformed payload"))

		result, err := service.ProcessEvent(ctx, failing.ID, map[string]any{"body": "???"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to process trigger event")
		assert.Equal(t, "malformed payload", result.Error)

		row, err := client.TriggerEvent.Query().
			Where(triggerevent.TriggerIDEQ(failing.ID)).
			Only(ctx)
		require.NoError(t, err)
		assert.False(t, row.Success)
		require.NotNil(t, row.Error)
		assert.Equal(t, "malformed payload", *row.Error)
	})

	t.Run("returns an error for a missing trigger", func(t *testing.T) {
		_, err := service.ProcessEvent(ctx, "missing", map[string]any{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTriggerService_ListTriggerEvents(t *testing.T) {
	client, service, _, _ := newTriggerHarness(t)
	ctx := context.Background()

	now := time.Now()
	ages := map[string]time.Duration{
		"tev-old": 2 * time.Hour,
		"tev-new": 1 * time.Hour,
	}
	for id, age := range ages {
		_, err := client.TriggerEvent.Create().
			SetID(id).
			SetTriggerID("trig-history").
			SetTriggerType(models.TriggerTypeWebhook).
			SetCreatedAt(now.Add(-age)).
			Save(ctx)
		require.NoError(t, err)
	}

	events, err := service.ListTriggerEvents(ctx, "trig-history", 0)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "tev-new", events[0].ID)
	assert.Equal(t, "tev-old", events[1].ID)

	t.Run("unknown trigger has no history", func(t *testing.T) {
		events, err := service.ListTriggerEvents(ctx, "trig-unknown", 0)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}
