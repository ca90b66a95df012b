package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartRunHandler_Validation(t *testing.T) {
	s := &Server{}
	e := echo.New()
	e.POST("/api/threads/:thread_id/runs", s.startRunHandler)

	req := httptest.NewRequest(http.MethodPost,
		"/api/threads/thread-1/runs", strings.NewReader(`{"model":`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRunHandlers_RequireRunID(t *testing.T) {
	s := &Server{}
	e := echo.New()

	handlers := map[string]echo.HandlerFunc{
		"stop": s.stopRunHandler,
		"get":  s.getRunHandler,
	}
	for name, h := range handlers {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			rec := httptest.NewRecorder()

			err := h(e.NewContext(req, rec))

			he, ok := err.(*echo.HTTPError)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, he.Code)
			assert.Contains(t, he.Message, "run id is required")
		})
	}
}
