package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

// Validation-only coverage: requests that fail before any service is
// touched. Happy paths run against a real database in the service tests.

func threadTestEcho(s *Server) *echo.Echo {
	e := echo.New()
	e.POST("/api/threads", s.createThreadHandler)
	e.GET("/api/threads/:thread_id/messages", s.listMessagesHandler)
	e.POST("/api/threads/:thread_id/messages", s.appendMessageHandler)
	return e
}

func TestCreateThreadHandler_Validation(t *testing.T) {
	e := threadTestEcho(&Server{})

	tests := []struct {
		name     string
		body     string
		wantCode int
		errMsg   string
	}{
		{
			name:     "missing account_id",
			body:     `{}`,
			wantCode: http.StatusBadRequest,
			errMsg:   "account_id field is required",
		},
		{
			name:     "malformed JSON",
			body:     `{"account_id":`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/threads", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.errMsg != "" {
				assert.Contains(t, rec.Body.String(), tt.errMsg)
			}
		})
	}
}

func TestListMessagesHandler_Validation(t *testing.T) {
	e := threadTestEcho(&Server{})

	tests := []struct {
		name  string
		limit string
	}{
		{name: "non-numeric limit", limit: "abc"},
		{name: "zero limit", limit: "0"},
		{name: "negative limit", limit: "-5"},
		{name: "limit over cap", limit: "5000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet,
				"/api/threads/thread-1/messages?limit="+tt.limit, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "invalid limit")
		})
	}
}

func TestAppendMessageHandler_Validation(t *testing.T) {
	e := threadTestEcho(&Server{})

	tests := []struct {
		name     string
		body     string
		wantCode int
		errMsg   string
	}{
		{
			name:     "missing content",
			body:     `{"metadata":{"k":"v"}}`,
			wantCode: http.StatusBadRequest,
			errMsg:   "content field is required",
		},
		{
			name:     "empty content",
			body:     `{"content":""}`,
			wantCode: http.StatusBadRequest,
			errMsg:   "content field is required",
		},
		{
			name:     "malformed JSON",
			body:     `{"content":`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost,
				"/api/threads/thread-1/messages", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.errMsg != "" {
				assert.Contains(t, rec.Body.String(), tt.errMsg)
			}
		})
	}
}
