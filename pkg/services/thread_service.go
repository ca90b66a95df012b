package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/weftlabs/weft/ent"
	"github.com/weftlabs/weft/ent/thread"
	"github.com/weftlabs/weft/pkg/models"
)

// ThreadService manages conversation threads
type ThreadService struct {
	client *ent.Client
}

// NewThreadService creates a new ThreadService
func NewThreadService(client *ent.Client) *ThreadService {
	return &ThreadService{client: client}
}

// CreateThread creates a new thread
func (s *ThreadService) CreateThread(_ context.Context, req models.CreateThreadRequest) (*ent.Thread, error) {
	if req.AccountID == "" {
		return nil, NewValidationError("account_id", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.Thread.Create().
		SetID(uuid.New().String()).
		SetAccountID(req.AccountID)

	if req.ProjectID != "" {
		builder.SetProjectID(req.ProjectID)
	}
	if req.Metadata != nil {
		builder.SetMetadata(req.Metadata)
	}

	th, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create thread: %w", err)
	}

	return th, nil
}

// GetThread retrieves a thread by ID
func (s *ThreadService) GetThread(ctx context.Context, threadID string) (*ent.Thread, error) {
	th, err := s.client.Thread.Get(ctx, threadID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get thread: %w", err)
	}
	return th, nil
}

// ListThreads retrieves threads for an account, newest first
func (s *ThreadService) ListThreads(ctx context.Context, accountID string, limit int) ([]*ent.Thread, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	threads, err := s.client.Thread.Query().
		Where(thread.AccountIDEQ(accountID)).
		Order(ent.Desc(thread.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list threads: %w", err)
	}

	return threads, nil
}

// UpdateThreadMetadata merges the given keys into the thread metadata.
func (s *ThreadService) UpdateThreadMetadata(_ context.Context, threadID string, patch map[string]any) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	th, err := tx.Thread.Get(ctx, threadID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get thread: %w", err)
	}

	merged := th.Metadata
	if merged == nil {
		merged = make(map[string]any, len(patch))
	}
	for k, v := range patch {
		if v == nil {
			delete(merged, k)
			continue
		}
		merged[k] = v
	}

	if err := tx.Thread.UpdateOneID(threadID).SetMetadata(merged).Exec(ctx); err != nil {
		return fmt.Errorf("failed to update thread metadata: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit metadata update: %w", err)
	}
	return nil
}

// FlagCacheRebuild marks the thread so the next run recomputes prompt-cache
// breakpoints. Called by the context manager after any persisted compression.
func (s *ThreadService) FlagCacheRebuild(ctx context.Context, threadID string) error {
	return s.UpdateThreadMetadata(ctx, threadID, map[string]any{
		models.MetaCacheNeedsRebuild: true,
	})
}

// ClearCacheRebuild removes the rebuild flag after breakpoints were recomputed.
func (s *ThreadService) ClearCacheRebuild(ctx context.Context, threadID string) error {
	return s.UpdateThreadMetadata(ctx, threadID, map[string]any{
		models.MetaCacheNeedsRebuild: nil,
	})
}

// CacheNeedsRebuild reports whether the rebuild flag is set.
func (s *ThreadService) CacheNeedsRebuild(ctx context.Context, threadID string) (bool, error) {
	th, err := s.GetThread(ctx, threadID)
	if err != nil {
		return false, err
	}
	if th.Metadata == nil {
		return false, nil
	}
	v, ok := th.Metadata[models.MetaCacheNeedsRebuild].(bool)
	return ok && v, nil
}

// DeleteThread removes a thread and, via cascade, its messages, runs and events.
func (s *ThreadService) DeleteThread(_ context.Context, threadID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Thread.DeleteOneID(threadID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete thread: %w", err)
	}
	return nil
}
