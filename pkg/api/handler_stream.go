package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/weftlabs/weft/pkg/events"
)

// keepaliveInterval paces SSE comment frames so idle streams survive
// proxy idle-connection timeouts.
const keepaliveInterval = 30 * time.Second

// streamHandler handles GET /api/threads/:thread_id/stream. It holds
// the response open and writes each published event as one SSE frame.
// Payloads carry their own db_event_id; a reconnecting client passes
// the last one it saw to replay the gap.
func (s *Server) streamHandler(c *echo.Context) error {
	threadID := c.Param("thread_id")
	if threadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "thread id is required")
	}
	lastEventID, err := parseLastEventID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if s.events == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "event streaming not available")
	}

	ctx := c.Request().Context()
	sub, err := s.events.Subscribe(ctx, events.ThreadChannel(threadID), lastEventID)
	if err != nil {
		return mapServiceError(err)
	}
	defer s.events.Unsubscribe(sub)

	h := c.Response().Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	c.Response().WriteHeader(http.StatusOK)

	// Write errors mean the client went away; the request context will
	// fire shortly after, so they end the stream without ceremony.
	rc := http.NewResponseController(c.Response())
	if _, err := fmt.Fprint(c.Response(), ": connected\n\n"); err != nil {
		return nil
	}
	if err := rc.Flush(); err != nil {
		return nil
	}

	keepalive := time.NewTicker(keepaliveInterval)
	defer keepalive.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-keepalive.C:
			if _, err := fmt.Fprint(c.Response(), ": keepalive\n\n"); err != nil {
				return nil
			}
			if err := rc.Flush(); err != nil {
				return nil
			}
		case payload, ok := <-sub.Events:
			if !ok {
				// Unsubscribed by the manager (listener failure); the
				// client reconnects with its cursor.
				return nil
			}
			if _, err := fmt.Fprintf(c.Response(), "data: %s\n\n", payload); err != nil {
				return nil
			}
			if err := rc.Flush(); err != nil {
				return nil
			}
		}
	}
}

// parseLastEventID reads the catch-up cursor: the query parameter wins,
// then the standard SSE Last-Event-ID header. Absent means live-only;
// zero replays the channel's stored history.
func parseLastEventID(c *echo.Context) (int, error) {
	v := c.QueryParam("last_event_id")
	if v == "" {
		v = c.Request().Header.Get("Last-Event-ID")
	}
	if v == "" {
		return -1, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, errors.New("invalid last_event_id: must be a non-negative integer")
	}
	return n, nil
}
