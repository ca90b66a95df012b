package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftlabs/weft/pkg/events"
)

// streamRecorder is a mutex-guarded ResponseWriter: the handler writes
// from its own goroutine while the test polls the body.
type streamRecorder struct {
	header http.Header

	mu   sync.Mutex
	buf  bytes.Buffer
	code int
}

func newStreamRecorder() *streamRecorder {
	return &streamRecorder{header: make(http.Header)}
}

func (r *streamRecorder) Header() http.Header { return r.header }

func (r *streamRecorder) WriteHeader(code int) {
	r.mu.Lock()
	r.code = code
	r.mu.Unlock()
}

func (r *streamRecorder) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf.Write(p)
}

func (r *streamRecorder) Flush() {}

func (r *streamRecorder) snapshot() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf.String()
}

func (r *streamRecorder) status() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.code
}

func streamTestEcho(s *Server) *echo.Echo {
	e := echo.New()
	e.GET("/api/threads/:thread_id/stream", s.streamHandler)
	return e
}

func TestStreamHandler_RequiresManager(t *testing.T) {
	e := streamTestEcho(&Server{})

	req := httptest.NewRequest(http.MethodGet, "/api/threads/thread-1/stream", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestStreamHandler_InvalidCursor(t *testing.T) {
	e := streamTestEcho(&Server{})

	for _, cursor := range []string{"abc", "-5", "1.5"} {
		t.Run(cursor, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet,
				"/api/threads/thread-1/stream?last_event_id="+cursor, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "invalid last_event_id")
		})
	}
}

func TestStreamHandler_DeliversEvents(t *testing.T) {
	manager := events.NewConnectionManager(nil)
	e := streamTestEcho(&Server{events: manager})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/api/threads/thread-7/stream", nil).WithContext(ctx)
	rec := newStreamRecorder()

	done := make(chan struct{})
	go func() {
		e.ServeHTTP(rec, req)
		close(done)
	}()

	require.Eventually(t, func() bool { return manager.ActiveSubscribers() == 1 },
		time.Second, 5*time.Millisecond, "handler never subscribed")

	payload := `{"type":"run.chunk","db_event_id":7}`
	manager.Broadcast(events.ThreadChannel("thread-7"), []byte(payload))

	require.Eventually(t, func() bool {
		return strings.Contains(rec.snapshot(), "data: "+payload+"\n\n")
	}, time.Second, 5*time.Millisecond, "event frame never written")

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handler did not stop on context cancel")
	}

	assert.Equal(t, 0, manager.ActiveSubscribers(), "handler must unsubscribe on exit")
	assert.Equal(t, http.StatusOK, rec.status())
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.snapshot(), ": connected\n\n")
}

func TestParseLastEventID(t *testing.T) {
	e := echo.New()
	makeCtx := func(target, header string) *echo.Context {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		if header != "" {
			req.Header.Set("Last-Event-ID", header)
		}
		return e.NewContext(req, httptest.NewRecorder())
	}

	t.Run("absent means live-only", func(t *testing.T) {
		id, err := parseLastEventID(makeCtx("/stream", ""))
		require.NoError(t, err)
		assert.Equal(t, -1, id)
	})

	t.Run("query parameter", func(t *testing.T) {
		id, err := parseLastEventID(makeCtx("/stream?last_event_id=42", ""))
		require.NoError(t, err)
		assert.Equal(t, 42, id)
	})

	t.Run("zero replays history", func(t *testing.T) {
		id, err := parseLastEventID(makeCtx("/stream?last_event_id=0", ""))
		require.NoError(t, err)
		assert.Equal(t, 0, id)
	})

	t.Run("standard header fallback", func(t *testing.T) {
		id, err := parseLastEventID(makeCtx("/stream", "7"))
		require.NoError(t, err)
		assert.Equal(t, 7, id)
	})

	t.Run("query wins over header", func(t *testing.T) {
		id, err := parseLastEventID(makeCtx("/stream?last_event_id=42", "7"))
		require.NoError(t, err)
		assert.Equal(t, 42, id)
	})

	t.Run("negative rejected", func(t *testing.T) {
		_, err := parseLastEventID(makeCtx("/stream?last_event_id=-1", ""))
		require.Error(t, err)
	})
}
