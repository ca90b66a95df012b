package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftlabs/weft/pkg/config"
)

func triggerTestEcho(s *Server) *echo.Echo {
	e := echo.New()
	e.POST("/api/agents/:agent_id/triggers", s.createTriggerHandler)
	e.POST("/api/triggers/:trigger_id/webhook", s.triggerWebhookHandler)
	return e
}

func TestCreateTriggerHandler_Validation(t *testing.T) {
	e := triggerTestEcho(&Server{})

	req := httptest.NewRequest(http.MethodPost,
		"/api/agents/agent-1/triggers", strings.NewReader(`{"provider_id":`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTriggerHandlers_RequireTriggerID(t *testing.T) {
	s := &Server{}
	e := echo.New()

	handlers := map[string]echo.HandlerFunc{
		"get":    s.getTriggerHandler,
		"update": s.updateTriggerHandler,
		"delete": s.deleteTriggerHandler,
	}
	for name, h := range handlers {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()

			err := h(e.NewContext(req, rec))

			he, ok := err.(*echo.HTTPError)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, he.Code)
			assert.Contains(t, he.Message, "trigger id is required")
		})
	}
}

func TestTriggerWebhookHandler_SecretGate(t *testing.T) {
	post := func(e *echo.Echo, secret string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost,
			"/api/triggers/trigger-1/webhook", strings.NewReader(`{"execution_type":"agent"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		if secret != "" {
			req.Header.Set("x-trigger-secret", secret)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	t.Run("no secret configured disables the endpoint", func(t *testing.T) {
		rec := post(triggerTestEcho(&Server{}), "s3cret")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "not configured")
	})

	cfg := &config.Config{Triggers: config.DefaultTriggersConfig()}
	t.Setenv("TRIGGER_SCHEDULER_SECRET", "s3cret")

	t.Run("missing header", func(t *testing.T) {
		rec := post(triggerTestEcho(&Server{cfg: cfg}), "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		rec := post(triggerTestEcho(&Server{cfg: cfg}), "guess")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid secret without execution wiring", func(t *testing.T) {
		rec := post(triggerTestEcho(&Server{cfg: cfg}), "s3cret")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "execution not available")
	})
}
