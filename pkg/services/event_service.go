package services

import (
	"context"
	"fmt"
	"time"

	"github.com/weftlabs/weft/ent"
	"github.com/weftlabs/weft/ent/event"
)

// EventService reads the persistent stream-event rows backing SSE
// reconnect catch-up. Writes go through the transactional publisher in
// pkg/events, not through this service.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// GetEventsSince retrieves channel events newer than sinceID in insertion
// order. The auto-increment id is the catch-up cursor.
func (s *EventService) GetEventsSince(ctx context.Context, channel string, sinceID int, limit int) ([]*ent.Event, error) {
	if limit <= 0 {
		limit = 200
	}

	events, err := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(sinceID),
		).
		Order(ent.Asc(event.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	return events, nil
}

// CleanupThreadEvents removes all stream events for a thread.
func (s *EventService) CleanupThreadEvents(_ context.Context, threadID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.ThreadIDEQ(threadID)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup thread events: %w", err)
	}

	return count, nil
}

// CleanupOldEvents removes stream events older than the TTL. Stream rows
// exist for reconnect catch-up, not archival; conversation history lives
// in messages.
func (s *EventService) CleanupOldEvents(_ context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup old events: %w", err)
	}

	return count, nil
}
