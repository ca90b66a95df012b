package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/weftlabs/weft/ent"
	"github.com/weftlabs/weft/ent/agentrun"
)

// ErrRunAlreadyActive is returned when a thread already has a running agent
// run. The partial unique index enforces this at the database level; the
// service maps the constraint violation to this sentinel.
var ErrRunAlreadyActive = errors.New("thread already has a running agent run")

// RunService manages agent run lifecycle rows.
type RunService struct {
	client *ent.Client
}

// NewRunService creates a new RunService
func NewRunService(client *ent.Client) *RunService {
	return &RunService{client: client}
}

// StartRunRequest carries run creation parameters.
type StartRunRequest struct {
	ThreadID  string
	PodID     string
	RequestID string
	Metadata  map[string]any
}

// StartRun inserts a run in running status. A second running run on the
// same thread violates the one-running-per-thread index and returns
// ErrRunAlreadyActive.
func (s *RunService) StartRun(_ context.Context, req StartRunRequest) (*ent.AgentRun, error) {
	if req.ThreadID == "" {
		return nil, NewValidationError("thread_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.AgentRun.Create().
		SetID(uuid.New().String()).
		SetThreadID(req.ThreadID).
		SetStatus(agentrun.StatusRunning).
		SetStartedAt(time.Now()).
		SetLastHeartbeatAt(time.Now())

	if req.PodID != "" {
		builder.SetPodID(req.PodID)
	}
	if req.RequestID != "" {
		builder.SetRequestID(req.RequestID)
	}
	if req.Metadata != nil {
		builder.SetMetadata(req.Metadata)
	}

	run, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrRunAlreadyActive
		}
		return nil, fmt.Errorf("failed to create agent run: %w", err)
	}

	return run, nil
}

// GetRun retrieves a run by ID
func (s *RunService) GetRun(ctx context.Context, runID string) (*ent.AgentRun, error) {
	run, err := s.client.AgentRun.Get(ctx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent run: %w", err)
	}
	return run, nil
}

// GetRunStatus returns just the status column; the runner polls this
// between iterations.
func (s *RunService) GetRunStatus(ctx context.Context, runID string) (agentrun.Status, error) {
	run, err := s.client.AgentRun.Query().
		Where(agentrun.IDEQ(runID)).
		Select(agentrun.FieldStatus).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get run status: %w", err)
	}
	return run.Status, nil
}

// RunningForThread returns the thread's running run, or ErrNotFound.
func (s *RunService) RunningForThread(ctx context.Context, threadID string) (*ent.AgentRun, error) {
	run, err := s.client.AgentRun.Query().
		Where(
			agentrun.ThreadIDEQ(threadID),
			agentrun.StatusEQ(agentrun.StatusRunning),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get running run: %w", err)
	}
	return run, nil
}

// CompleteRun writes a terminal status. Callers pass context.Background()
// so a cancelled run context cannot lose the terminal write.
func (s *RunService) CompleteRun(_ context.Context, runID string, status agentrun.Status, runErr string) error {
	if status != agentrun.StatusCompleted && status != agentrun.StatusFailed && status != agentrun.StatusStopped {
		return NewValidationError("status", "must be terminal")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.AgentRun.UpdateOneID(runID).
		SetStatus(status).
		SetEndedAt(time.Now())
	if runErr != "" {
		update.SetError(runErr)
	}

	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to complete agent run: %w", err)
	}
	return nil
}

// RequestStop flips a running run to stopped. Running workers observe the
// change at their next between-iteration status check; the same-pod cancel
// registry short-circuits sooner.
func (s *RunService) RequestStop(_ context.Context, runID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.AgentRun.Update().
		Where(
			agentrun.IDEQ(runID),
			agentrun.StatusEQ(agentrun.StatusRunning),
		).
		SetStatus(agentrun.StatusStopped).
		SetEndedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to stop agent run: %w", err)
	}
	if count == 0 {
		// Either missing or already terminal; distinguish for the API.
		_, getErr := s.GetRun(ctx, runID)
		if getErr != nil {
			return getErr
		}
		return nil
	}
	return nil
}

// Heartbeat refreshes last_heartbeat_at for a running run.
func (s *RunService) Heartbeat(_ context.Context, runID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.AgentRun.Update().
		Where(
			agentrun.IDEQ(runID),
			agentrun.StatusEQ(agentrun.StatusRunning),
		).
		SetLastHeartbeatAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to heartbeat run: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

// FindStaleRunning returns running rows whose heartbeat is older than the
// threshold. The orphan detector pairs this with a Redis liveness check
// before declaring a run dead.
func (s *RunService) FindStaleRunning(ctx context.Context, threshold time.Duration) ([]*ent.AgentRun, error) {
	cutoff := time.Now().Add(-threshold)

	runs, err := s.client.AgentRun.Query().
		Where(
			agentrun.StatusEQ(agentrun.StatusRunning),
			agentrun.Or(
				agentrun.LastHeartbeatAtIsNil(),
				agentrun.LastHeartbeatAtLT(cutoff),
			),
			agentrun.StartedAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find stale runs: %w", err)
	}
	return runs, nil
}

// FindRunningForPod returns running rows claimed by the given pod. Used by
// the startup orphan scan after an unclean restart.
func (s *RunService) FindRunningForPod(ctx context.Context, podID string) ([]*ent.AgentRun, error) {
	runs, err := s.client.AgentRun.Query().
		Where(
			agentrun.StatusEQ(agentrun.StatusRunning),
			agentrun.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find running runs for pod: %w", err)
	}
	return runs, nil
}

// ListRunsForThread returns a thread's runs, newest first.
func (s *RunService) ListRunsForThread(ctx context.Context, threadID string, limit int) ([]*ent.AgentRun, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	runs, err := s.client.AgentRun.Query().
		Where(agentrun.ThreadIDEQ(threadID)).
		Order(ent.Desc(agentrun.FieldStartedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// ClaimForPod stamps the run with the worker's pod id once dequeued.
func (s *RunService) ClaimForPod(_ context.Context, runID, podID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.AgentRun.Update().
		Where(
			agentrun.IDEQ(runID),
			agentrun.StatusEQ(agentrun.StatusRunning),
		).
		SetPodID(podID).
		SetLastHeartbeatAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to claim run: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}
