package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftlabs/weft/ent"
	"github.com/weftlabs/weft/ent/event"
	"github.com/weftlabs/weft/pkg/models"
	testdb "github.com/weftlabs/weft/test/database"
)

func TestEventService_GetEventsSince(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	threads := NewThreadService(client.Client)
	ctx := context.Background()

	th, err := threads.CreateThread(ctx, models.CreateThreadRequest{AccountID: "acct-1"})
	require.NoError(t, err)
	other, err := threads.CreateThread(ctx, models.CreateThreadRequest{AccountID: "acct-1"})
	require.NoError(t, err)

	channel := "thread:" + th.ID
	var seeded []*ent.Event
	for i := 1; i <= 5; i++ {
		ev, err := client.Event.Create().
			SetThreadID(th.ID).
			SetChannel(channel).
			SetPayload(fmt.Sprintf(`{"type":"run.chunk","seq":%d}`, i)).
			Save(ctx)
		require.NoError(t, err)
		seeded = append(seeded, ev)
	}
	_, err = client.Event.Create().
		SetThreadID(other.ID).
		SetChannel("thread:" + other.ID).
		SetPayload(`{"type":"run.started"}`).
		Save(ctx)
	require.NoError(t, err)

	t.Run("zero cursor returns everything in insertion order", func(t *testing.T) {
		events, err := service.GetEventsSince(ctx, channel, 0, 0)
		require.NoError(t, err)
		require.Len(t, events, 5)
		for i, ev := range events {
			assert.Equal(t, seeded[i].ID, ev.ID)
		}
	})

	t.Run("cursor excludes rows at or before it", func(t *testing.T) {
		events, err := service.GetEventsSince(ctx, channel, seeded[2].ID, 0)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, seeded[3].ID, events[0].ID)
		assert.Equal(t, seeded[4].ID, events[1].ID)
	})

	t.Run("limit caps the batch", func(t *testing.T) {
		events, err := service.GetEventsSince(ctx, channel, 0, 2)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, seeded[0].ID, events[0].ID)
	})

	t.Run("other channels never leak in", func(t *testing.T) {
		events, err := service.GetEventsSince(ctx, "thread:"+other.ID, 0, 0)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, other.ID, events[0].ThreadID)
	})
}

func TestEventService_CleanupThreadEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	threads := NewThreadService(client.Client)
	ctx := context.Background()

	th, err := threads.CreateThread(ctx, models.CreateThreadRequest{AccountID: "acct-1"})
	require.NoError(t, err)
	keep, err := threads.CreateThread(ctx, models.CreateThreadRequest{AccountID: "acct-1"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := client.Event.Create().
			SetThreadID(th.ID).
			SetChannel("thread:" + th.ID).
			SetPayload(`{"type":"run.chunk"}`).
			Save(ctx)
		require.NoError(t, err)
	}
	_, err = client.Event.Create().
		SetThreadID(keep.ID).
		SetChannel("thread:" + keep.ID).
		SetPayload(`{"type":"run.chunk"}`).
		Save(ctx)
	require.NoError(t, err)

	removed, err := service.CleanupThreadEvents(ctx, th.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	remaining, err := client.Event.Query().Where(event.ThreadIDEQ(keep.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)
}
