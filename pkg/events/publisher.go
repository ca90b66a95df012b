package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/weftlabs/weft/pkg/models"
)

// notifyLimit is the byte budget for a NOTIFY payload. Postgres caps
// notifications at 8000 bytes; staying under leaves headroom for the
// injected db_event_id.
const notifyLimit = 7900

// Publisher writes stream events. Persistent events go to the events
// table and NOTIFY in a single transaction, so a committed row is
// always announced and an announced row is always committed. Transient
// events are NOTIFY only.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a Publisher on the database handle. The handle
// should come from database.Client.DB() so publishes share the app
// pool.
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// PublishChunk routes one runner chunk to the thread channel. Content
// deltas are transient; everything else is persisted for catch-up.
func (p *Publisher) PublishChunk(ctx context.Context, threadID, runID string, chunk models.StreamChunk) error {
	payload, err := json.Marshal(NewChunkEvent(threadID, runID, chunk))
	if err != nil {
		return fmt.Errorf("failed to encode chunk event: %w", err)
	}
	if chunk.Type == models.ChunkTypeContent {
		return p.notifyOnly(ctx, ThreadChannel(threadID), payload)
	}
	return p.persistAndNotify(ctx, threadID, ThreadChannel(threadID), payload)
}

// persistAndNotify inserts the event row and fires pg_notify in one
// transaction; the notification is held until COMMIT.
func (p *Publisher) persistAndNotify(ctx context.Context, threadID, channel string, payload []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin event transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (thread_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		threadID, channel, string(payload), time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	notifyPayload, err := injectEventID(payload, eventID)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}
	return nil
}

// notifyOnly fires pg_notify without persisting.
func (p *Publisher) notifyOnly(ctx context.Context, channel string, payload []byte) error {
	notifyPayload, err := fitNotifyPayload(string(payload))
	if err != nil {
		return err
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// injectEventID adds db_event_id to the NOTIFY copy for cursor tracking
// and applies the size cap.
func injectEventID(payload []byte, eventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payload, &m); err != nil {
		return "", fmt.Errorf("failed to decode payload for id injection: %w", err)
	}
	m["db_event_id"] = eventID

	enriched, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to encode enriched payload: %w", err)
	}
	return fitNotifyPayload(string(enriched))
}

// fitNotifyPayload returns the payload unchanged when it fits the
// NOTIFY budget, otherwise a minimal envelope with routing fields only.
func fitNotifyPayload(payload string) (string, error) {
	if len(payload) <= notifyLimit {
		return payload, nil
	}
	return buildTruncatedPayload([]byte(payload))
}

// buildTruncatedPayload keeps just enough for the client to notice the
// gap and fetch the full row through catch-up.
func buildTruncatedPayload(payload []byte) (string, error) {
	var routing struct {
		Type      string `json:"type"`
		EventID   string `json:"event_id"`
		ThreadID  string `json:"thread_id"`
		RunID     string `json:"run_id"`
		DBEventID *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payload, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":      routing.Type,
		"event_id":  routing.EventID,
		"thread_id": routing.ThreadID,
		"run_id":    routing.RunID,
		"truncated": true,
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	out, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to encode truncation envelope: %w", err)
	}
	return string(out), nil
}
