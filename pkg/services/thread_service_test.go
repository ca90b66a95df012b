package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftlabs/weft/ent/event"
	"github.com/weftlabs/weft/ent/message"
	"github.com/weftlabs/weft/pkg/models"
	testdb "github.com/weftlabs/weft/test/database"
)

func TestThreadService_CreateThread(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewThreadService(client.Client)
	ctx := context.Background()

	t.Run("creates thread with generated id", func(t *testing.T) {
		th, err := service.CreateThread(ctx, models.CreateThreadRequest{
			AccountID: "acct-1",
			Metadata:  map[string]any{"title": "support chat"},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, th.ID)
		assert.Equal(t, "acct-1", th.AccountID)
		assert.Equal(t, "support chat", th.Metadata["title"])
		assert.Nil(t, th.ProjectID)
	})

	t.Run("requires account_id", func(t *testing.T) {
		_, err := service.CreateThread(ctx, models.CreateThreadRequest{})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
		assert.Contains(t, err.Error(), "account_id")
	})

	t.Run("attaches project when given", func(t *testing.T) {
		projects := NewProjectService(client.Client)
		proj, err := projects.CreateProject(ctx, models.CreateProjectRequest{
			AccountID: "acct-1",
			Name:      "workspace",
		})
		require.NoError(t, err)

		th, err := service.CreateThread(ctx, models.CreateThreadRequest{
			AccountID: "acct-1",
			ProjectID: proj.ID,
		})
		require.NoError(t, err)
		require.NotNil(t, th.ProjectID)
		assert.Equal(t, proj.ID, *th.ProjectID)
	})
}

func TestThreadService_GetThread(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewThreadService(client.Client)
	ctx := context.Background()

	created, err := service.CreateThread(ctx, models.CreateThreadRequest{AccountID: "acct-1"})
	require.NoError(t, err)

	t.Run("returns existing thread", func(t *testing.T) {
		th, err := service.GetThread(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, th.ID)
	})

	t.Run("returns ErrNotFound for missing thread", func(t *testing.T) {
		_, err := service.GetThread(ctx, "missing-thread")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestThreadService_ListThreads(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewThreadService(client.Client)
	ctx := context.Background()

	// Stagger created_at explicitly so the ordering assertion never
	// depends on insert timing.
	now := time.Now()
	ages := map[string]time.Duration{
		"thread-a": 3 * time.Hour,
		"thread-b": 1 * time.Hour,
		"thread-c": 2 * time.Hour,
	}
	for id, age := range ages {
		_, err := client.Thread.Create().
			SetID(id).
			SetAccountID("acct-list").
			SetCreatedAt(now.Add(-age)).
			Save(ctx)
		require.NoError(t, err)
	}
	_, err := client.Thread.Create().
		SetID("thread-other").
		SetAccountID("acct-other").
		Save(ctx)
	require.NoError(t, err)

	t.Run("returns account threads newest first", func(t *testing.T) {
		threads, err := service.ListThreads(ctx, "acct-list", 0)
		require.NoError(t, err)
		require.Len(t, threads, 3)
		assert.Equal(t, "thread-b", threads[0].ID)
		assert.Equal(t, "thread-c", threads[1].ID)
		assert.Equal(t, "thread-a", threads[2].ID)
	})

	t.Run("honors limit", func(t *testing.T) {
		threads, err := service.ListThreads(ctx, "acct-list", 2)
		require.NoError(t, err)
		require.Len(t, threads, 2)
		assert.Equal(t, "thread-b", threads[0].ID)
	})
}

func TestThreadService_UpdateThreadMetadata(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewThreadService(client.Client)
	ctx := context.Background()

	t.Run("merges patch into existing metadata", func(t *testing.T) {
		th, err := service.CreateThread(ctx, models.CreateThreadRequest{
			AccountID: "acct-1",
			Metadata:  map[string]any{"title": "first", "source": "api"},
		})
		require.NoError(t, err)

		err = service.UpdateThreadMetadata(ctx, th.ID, map[string]any{
			"title": "renamed",
			"tag":   "vip",
		})
		require.NoError(t, err)

		got, err := service.GetThread(ctx, th.ID)
		require.NoError(t, err)
		assert.Equal(t, "renamed", got.Metadata["title"])
		assert.Equal(t, "api", got.Metadata["source"])
		assert.Equal(t, "vip", got.Metadata["tag"])
	})

	t.Run("nil value deletes the key", func(t *testing.T) {
		th, err := service.CreateThread(ctx, models.CreateThreadRequest{
			AccountID: "acct-1",
			Metadata:  map[string]any{"stale": true},
		})
		require.NoError(t, err)

		err = service.UpdateThreadMetadata(ctx, th.ID, map[string]any{"stale": nil})
		require.NoError(t, err)

		got, err := service.GetThread(ctx, th.ID)
		require.NoError(t, err)
		_, exists := got.Metadata["stale"]
		assert.False(t, exists)
	})

	t.Run("returns ErrNotFound for missing thread", func(t *testing.T) {
		err := service.UpdateThreadMetadata(ctx, "missing", map[string]any{"k": "v"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestThreadService_CacheRebuildFlag(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewThreadService(client.Client)
	ctx := context.Background()

	th, err := service.CreateThread(ctx, models.CreateThreadRequest{AccountID: "acct-1"})
	require.NoError(t, err)

	needs, err := service.CacheNeedsRebuild(ctx, th.ID)
	require.NoError(t, err)
	assert.False(t, needs, "fresh thread starts clean")

	require.NoError(t, service.FlagCacheRebuild(ctx, th.ID))
	needs, err = service.CacheNeedsRebuild(ctx, th.ID)
	require.NoError(t, err)
	assert.True(t, needs)

	require.NoError(t, service.ClearCacheRebuild(ctx, th.ID))
	needs, err = service.CacheNeedsRebuild(ctx, th.ID)
	require.NoError(t, err)
	assert.False(t, needs, "clear removes the flag entirely")
}

func TestThreadService_DeleteThread(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewThreadService(client.Client)
	messages := NewMessageService(client.Client, service)
	ctx := context.Background()

	t.Run("cascades messages and stream events", func(t *testing.T) {
		th, err := service.CreateThread(ctx, models.CreateThreadRequest{AccountID: "acct-1"})
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			_, err := messages.Append(ctx, models.CreateMessageRequest{
				ThreadID:     th.ID,
				Type:         models.MessageTypeUser,
				IsLLMMessage: true,
				Content:      fmt.Sprintf("message %d", i),
			})
			require.NoError(t, err)
		}
		_, err = client.Event.Create().
			SetThreadID(th.ID).
			SetChannel("thread:" + th.ID).
			SetPayload(`{"type":"run.chunk"}`).
			Save(ctx)
		require.NoError(t, err)

		require.NoError(t, service.DeleteThread(ctx, th.ID))

		_, err = service.GetThread(ctx, th.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		msgCount, err := client.Message.Query().Where(message.ThreadIDEQ(th.ID)).Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, msgCount)

		evCount, err := client.Event.Query().Where(event.ThreadIDEQ(th.ID)).Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, evCount)
	})

	t.Run("returns ErrNotFound for missing thread", func(t *testing.T) {
		err := service.DeleteThread(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
