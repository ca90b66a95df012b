package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/weftlabs/weft/ent"
)

// EventLister is the slice of services.EventService the catch-up
// adapter needs.
type EventLister interface {
	GetEventsSince(ctx context.Context, channel string, sinceID, limit int) ([]*ent.Event, error)
}

// EventServiceAdapter implements CatchupQuerier over the stored event
// rows.
type EventServiceAdapter struct {
	events EventLister
	logger *slog.Logger
}

// NewEventServiceAdapter creates a CatchupQuerier from an EventService.
func NewEventServiceAdapter(events EventLister) *EventServiceAdapter {
	return &EventServiceAdapter{
		events: events,
		logger: slog.With("component", "event_catchup"),
	}
}

// GetCatchupEvents returns decoded events newer than sinceID. Rows
// whose payload no longer parses are skipped with a warning; one
// corrupt row must not wedge every reconnect on the channel.
func (a *EventServiceAdapter) GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error) {
	rows, err := a.events.GetEventsSince(ctx, channel, sinceID, limit)
	if err != nil {
		return nil, err
	}

	result := make([]CatchupEvent, 0, len(rows))
	for _, row := range rows {
		var payload map[string]any
		if err := json.Unmarshal([]byte(row.Payload), &payload); err != nil {
			a.logger.Warn("skipping undecodable stored event",
				"event_id", row.ID, "channel", channel, "error", err)
			continue
		}
		result = append(result, CatchupEvent{ID: row.ID, Payload: payload})
	}
	return result, nil
}
