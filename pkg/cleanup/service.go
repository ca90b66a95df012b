// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/weftlabs/weft/pkg/config"
	"github.com/weftlabs/weft/pkg/services"
)

// Service periodically enforces retention policies:
//   - Removes stream-event rows past their TTL (they exist for SSE
//     reconnect catch-up; conversation history lives in messages)
//   - Removes trigger delivery audit rows past their TTL
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config         *config.RetentionConfig
	eventService   *services.EventService
	triggerService *services.TriggerService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	eventService *services.EventService,
	triggerService *services.TriggerService,
) *Service {
	return &Service{
		config:         cfg,
		eventService:   eventService,
		triggerService: triggerService,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"event_ttl", s.config.EventTTL,
		"trigger_event_ttl", s.config.TriggerEventTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.cleanupOldEvents(ctx)
	s.cleanupOldTriggerEvents(ctx)
}

func (s *Service) cleanupOldEvents(_ context.Context) {
	count, err := s.eventService.CleanupOldEvents(context.Background(), s.config.EventTTL)
	if err != nil {
		slog.Error("Retention: stream event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: removed old stream events", "count", count)
	}
}

func (s *Service) cleanupOldTriggerEvents(_ context.Context) {
	count, err := s.triggerService.CleanupOldTriggerEvents(context.Background(), s.config.TriggerEventTTL)
	if err != nil {
		slog.Error("Retention: trigger event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: removed old trigger events", "count", count)
	}
}
