package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftlabs/weft/ent"
	"github.com/weftlabs/weft/pkg/config"
	"github.com/weftlabs/weft/pkg/services"
	"github.com/weftlabs/weft/pkg/triggers"
	testdb "github.com/weftlabs/weft/test/database"
)

func retentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		EventTTL:        1 * time.Hour,
		TriggerEventTTL: 24 * time.Hour,
		CleanupInterval: 1 * time.Hour,
	}
}

func newService(t *testing.T) (*ent.Client, *Service) {
	t.Helper()
	client := testdb.NewTestClient(t)
	eventService := services.NewEventService(client.Client)
	triggerService := services.NewTriggerService(client.Client, triggers.NewRegistry())
	return client.Client, NewService(retentionConfig(), eventService, triggerService)
}

func TestService_CleansUpOldStreamEvents(t *testing.T) {
	client, svc := newService(t)
	ctx := context.Background()

	thread, err := client.Thread.Create().
		SetID("thread-1").
		SetAccountID("acct-1").
		Save(ctx)
	require.NoError(t, err)

	// An old event (2 hours ago) and a recent one.
	_, err = client.Event.Create().
		SetThreadID(thread.ID).
		SetChannel("thread:thread-1").
		SetPayload(`{"type":"run.chunk"}`).
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Event.Create().
		SetThreadID(thread.ID).
		SetChannel("thread:thread-1").
		SetPayload(`{"type":"run.chunk"}`).
		SetCreatedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	svc.runAll(ctx)

	remaining, err := client.Event.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, remaining, "old event should be deleted, recent event preserved")
}

func TestService_CleansUpOldTriggerEvents(t *testing.T) {
	client, svc := newService(t)
	ctx := context.Background()

	_, err := client.TriggerEvent.Create().
		SetID("tev-old").
		SetTriggerID("trig-1").
		SetTriggerType("webhook").
		SetCreatedAt(time.Now().Add(-48 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.TriggerEvent.Create().
		SetID("tev-recent").
		SetTriggerID("trig-1").
		SetTriggerType("webhook").
		SetCreatedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	svc.runAll(ctx)

	remaining, err := client.TriggerEvent.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "tev-recent", remaining[0].ID)
}

func TestService_StartStop(t *testing.T) {
	_, svc := newService(t)

	svc.Start(context.Background())
	// Second Start is a no-op rather than a second loop.
	svc.Start(context.Background())
	svc.Stop()

	// Stop after Stop must not panic or block.
	svc.Stop()
}
