package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/weftlabs/weft/test/database"
)

func TestAgentService_CreateAgent(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAgentService(client.Client)
	ctx := context.Background()

	t.Run("creates agent with model and prompt", func(t *testing.T) {
		a, err := service.CreateAgent(ctx, CreateAgentRequest{
			AccountID:    "acct-1",
			Name:         "triage",
			Model:        "claude-sonnet-4-20250514",
			SystemPrompt: "You triage inbound tickets.",
			IsDefault:    true,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, a.ID)
		assert.Equal(t, "triage", a.Name)
		require.NotNil(t, a.Model)
		assert.Equal(t, "claude-sonnet-4-20250514", *a.Model)
		assert.Equal(t, "You triage inbound tickets.", a.SystemPrompt)
		assert.True(t, a.IsDefault)
	})

	t.Run("model stays unset when omitted", func(t *testing.T) {
		a, err := service.CreateAgent(ctx, CreateAgentRequest{
			AccountID: "acct-1",
			Name:      "bare",
		})
		require.NoError(t, err)
		assert.Nil(t, a.Model)
		assert.False(t, a.IsDefault)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.CreateAgent(ctx, CreateAgentRequest{Name: "no-account"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
		assert.Contains(t, err.Error(), "account_id")

		_, err = service.CreateAgent(ctx, CreateAgentRequest{AccountID: "acct-1"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
	})
}

func TestAgentService_GetDefaultAgent(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAgentService(client.Client)
	ctx := context.Background()

	t.Run("returns ErrNotFound when no default exists", func(t *testing.T) {
		_, err := service.GetDefaultAgent(ctx, "acct-empty")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("picks the newest default", func(t *testing.T) {
		now := time.Now()
		seed := []struct {
			id        string
			age       time.Duration
			isDefault bool
		}{
			{"agent-old-default", 2 * time.Hour, true},
			{"agent-new-default", 1 * time.Hour, true},
			{"agent-plain", 30 * time.Minute, false},
		}
		for _, s := range seed {
			_, err := client.Agent.Create().
				SetID(s.id).
				SetAccountID("acct-defaults").
				SetName(s.id).
				SetIsDefault(s.isDefault).
				SetCreatedAt(now.Add(-s.age)).
				Save(ctx)
			require.NoError(t, err)
		}

		a, err := service.GetDefaultAgent(ctx, "acct-defaults")
		require.NoError(t, err)
		assert.Equal(t, "agent-new-default", a.ID)
	})
}

func TestAgentService_ResolveModel(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAgentService(client.Client)
	ctx := context.Background()

	withModel, err := service.CreateAgent(ctx, CreateAgentRequest{
		AccountID: "acct-1",
		Name:      "pinned",
		Model:     "gpt-4o",
	})
	require.NoError(t, err)
	withoutModel, err := service.CreateAgent(ctx, CreateAgentRequest{
		AccountID: "acct-1",
		Name:      "floating",
	})
	require.NoError(t, err)

	t.Run("uses the agent's model when set", func(t *testing.T) {
		model, err := service.ResolveModel(ctx, withModel.ID, "claude-sonnet-4-20250514")
		require.NoError(t, err)
		assert.Equal(t, "gpt-4o", model)
	})

	t.Run("falls back when the agent has no model", func(t *testing.T) {
		model, err := service.ResolveModel(ctx, withoutModel.ID, "claude-sonnet-4-20250514")
		require.NoError(t, err)
		assert.Equal(t, "claude-sonnet-4-20250514", model)
	})

	t.Run("returns ErrNotFound for missing agent", func(t *testing.T) {
		_, err := service.ResolveModel(ctx, "missing", "fallback")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAgentService_DeleteAgent(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAgentService(client.Client)
	ctx := context.Background()

	a, err := service.CreateAgent(ctx, CreateAgentRequest{AccountID: "acct-1", Name: "doomed"})
	require.NoError(t, err)

	require.NoError(t, service.DeleteAgent(ctx, a.ID))

	_, err = service.GetAgent(ctx, a.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	t.Run("returns ErrNotFound for missing agent", func(t *testing.T) {
		err := service.DeleteAgent(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
