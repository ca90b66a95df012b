package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftlabs/weft/ent"
	"github.com/weftlabs/weft/ent/agentrun"
	"github.com/weftlabs/weft/pkg/models"
	testdb "github.com/weftlabs/weft/test/database"
)

func TestRunService_StartRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	threads := NewThreadService(client.Client)
	ctx := context.Background()

	newThread := func(t *testing.T) *ent.Thread {
		th, err := threads.CreateThread(ctx, models.CreateThreadRequest{AccountID: "acct-runs"})
		require.NoError(t, err)
		return th
	}

	t.Run("starts a running run with heartbeat", func(t *testing.T) {
		th := newThread(t)
		run, err := service.StartRun(ctx, StartRunRequest{
			ThreadID:  th.ID,
			PodID:     "pod-1",
			RequestID: "req-1",
			Metadata:  map[string]any{"model": "claude-sonnet-4-20250514"},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, run.ID)
		assert.Equal(t, agentrun.StatusRunning, run.Status)
		assert.False(t, run.StartedAt.IsZero())
		require.NotNil(t, run.LastHeartbeatAt)
		require.NotNil(t, run.PodID)
		assert.Equal(t, "pod-1", *run.PodID)
		require.NotNil(t, run.RequestID)
		assert.Equal(t, "req-1", *run.RequestID)
	})

	t.Run("requires thread_id", func(t *testing.T) {
		_, err := service.StartRun(ctx, StartRunRequest{})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects a second running run on the thread", func(t *testing.T) {
		th := newThread(t)
		_, err := service.StartRun(ctx, StartRunRequest{ThreadID: th.ID})
		require.NoError(t, err)

		_, err = service.StartRun(ctx, StartRunRequest{ThreadID: th.ID})
		assert.ErrorIs(t, err, ErrRunAlreadyActive)
	})

	t.Run("allows a new run once the previous one is terminal", func(t *testing.T) {
		th := newThread(t)
		first, err := service.StartRun(ctx, StartRunRequest{ThreadID: th.ID})
		require.NoError(t, err)
		require.NoError(t, service.CompleteRun(ctx, first.ID, agentrun.StatusCompleted, ""))

		second, err := service.StartRun(ctx, StartRunRequest{ThreadID: th.ID})
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
	})
}

func TestRunService_Lifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	threads := NewThreadService(client.Client)
	ctx := context.Background()

	th, err := threads.CreateThread(ctx, models.CreateThreadRequest{AccountID: "acct-runs"})
	require.NoError(t, err)
	run, err := service.StartRun(ctx, StartRunRequest{ThreadID: th.ID})
	require.NoError(t, err)

	t.Run("status reads back running", func(t *testing.T) {
		status, err := service.GetRunStatus(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, agentrun.StatusRunning, status)

		active, err := service.RunningForThread(ctx, th.ID)
		require.NoError(t, err)
		assert.Equal(t, run.ID, active.ID)
	})

	t.Run("heartbeat refreshes the timestamp", func(t *testing.T) {
		before, err := service.GetRun(ctx, run.ID)
		require.NoError(t, err)
		require.NotNil(t, before.LastHeartbeatAt)

		time.Sleep(20 * time.Millisecond)
		require.NoError(t, service.Heartbeat(ctx, run.ID))

		after, err := service.GetRun(ctx, run.ID)
		require.NoError(t, err)
		require.NotNil(t, after.LastHeartbeatAt)
		assert.True(t, after.LastHeartbeatAt.After(*before.LastHeartbeatAt))
	})

	t.Run("rejects non-terminal completion status", func(t *testing.T) {
		err := service.CompleteRun(ctx, run.ID, agentrun.StatusRunning, "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("stop flips the run to stopped", func(t *testing.T) {
		require.NoError(t, service.RequestStop(ctx, run.ID))

		got, err := service.GetRun(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, agentrun.StatusStopped, got.Status)
		assert.NotNil(t, got.EndedAt)

		_, err = service.RunningForThread(ctx, th.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("stop on a terminal run is a no-op", func(t *testing.T) {
		assert.NoError(t, service.RequestStop(ctx, run.ID))
	})

	t.Run("stop on a missing run returns ErrNotFound", func(t *testing.T) {
		err := service.RequestStop(ctx, "missing-run")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("heartbeat on a terminal run returns ErrNotFound", func(t *testing.T) {
		err := service.Heartbeat(ctx, run.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRunService_CompleteRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	threads := NewThreadService(client.Client)
	ctx := context.Background()

	th, err := threads.CreateThread(ctx, models.CreateThreadRequest{AccountID: "acct-runs"})
	require.NoError(t, err)
	run, err := service.StartRun(ctx, StartRunRequest{ThreadID: th.ID})
	require.NoError(t, err)

	require.NoError(t, service.CompleteRun(ctx, run.ID, agentrun.StatusFailed, "provider overloaded"))

	got, err := service.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusFailed, got.Status)
	require.NotNil(t, got.EndedAt)
	require.NotNil(t, got.Error)
	assert.Equal(t, "provider overloaded", *got.Error)

	t.Run("returns ErrNotFound for missing run", func(t *testing.T) {
		err := service.CompleteRun(ctx, "missing-run", agentrun.StatusCompleted, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRunService_OrphanScan(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	threads := NewThreadService(client.Client)
	ctx := context.Background()

	newThread := func(t *testing.T) *ent.Thread {
		th, err := threads.CreateThread(ctx, models.CreateThreadRequest{AccountID: "acct-orphan"})
		require.NoError(t, err)
		return th
	}

	stale := time.Now().Add(-10 * time.Minute)

	// Run whose worker stopped heartbeating.
	deadHeartbeat, err := client.AgentRun.Create().
		SetID(uuid.New().String()).
		SetThreadID(newThread(t).ID).
		SetStatus(agentrun.StatusRunning).
		SetStartedAt(stale).
		SetLastHeartbeatAt(stale).
		Save(ctx)
	require.NoError(t, err)

	// Run that was enqueued but never claimed: no heartbeat at all.
	neverClaimed, err := client.AgentRun.Create().
		SetID(uuid.New().String()).
		SetThreadID(newThread(t).ID).
		SetStatus(agentrun.StatusRunning).
		SetStartedAt(stale).
		Save(ctx)
	require.NoError(t, err)

	fresh, err := service.StartRun(ctx, StartRunRequest{ThreadID: newThread(t).ID})
	require.NoError(t, err)

	t.Run("finds only stale running rows", func(t *testing.T) {
		found, err := service.FindStaleRunning(ctx, 5*time.Minute)
		require.NoError(t, err)

		ids := make([]string, 0, len(found))
		for _, r := range found {
			ids = append(ids, r.ID)
		}
		assert.ElementsMatch(t, []string{deadHeartbeat.ID, neverClaimed.ID}, ids)
		assert.NotContains(t, ids, fresh.ID)
	})

	t.Run("claim stamps the pod and refreshes the heartbeat", func(t *testing.T) {
		require.NoError(t, service.ClaimForPod(ctx, neverClaimed.ID, "pod-7"))

		mine, err := service.FindRunningForPod(ctx, "pod-7")
		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.Equal(t, neverClaimed.ID, mine[0].ID)

		// The claim's heartbeat moved it out of the stale window.
		found, err := service.FindStaleRunning(ctx, 5*time.Minute)
		require.NoError(t, err)
		for _, r := range found {
			assert.NotEqual(t, neverClaimed.ID, r.ID)
		}
	})

	t.Run("claim on a missing run returns ErrNotFound", func(t *testing.T) {
		err := service.ClaimForPod(ctx, "missing-run", "pod-7")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRunService_ListRunsForThread(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	threads := NewThreadService(client.Client)
	ctx := context.Background()

	th, err := threads.CreateThread(ctx, models.CreateThreadRequest{AccountID: "acct-runs"})
	require.NoError(t, err)

	now := time.Now()
	seed := []struct {
		id     string
		age    time.Duration
		status agentrun.Status
	}{
		{"run-oldest", 3 * time.Hour, agentrun.StatusCompleted},
		{"run-middle", 2 * time.Hour, agentrun.StatusFailed},
		{"run-newest", 1 * time.Hour, agentrun.StatusCompleted},
	}
	for _, s := range seed {
		_, err := client.AgentRun.Create().
			SetID(s.id).
			SetThreadID(th.ID).
			SetStatus(s.status).
			SetStartedAt(now.Add(-s.age)).
			SetEndedAt(now.Add(-s.age + time.Minute)).
			Save(ctx)
		require.NoError(t, err)
	}

	runs, err := service.ListRunsForThread(ctx, th.ID, 0)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "run-newest", runs[0].ID)
	assert.Equal(t, "run-middle", runs[1].ID)
	assert.Equal(t, "run-oldest", runs[2].ID)

	limited, err := service.ListRunsForThread(ctx, th.ID, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "run-newest", limited[0].ID)
}
