package api

import (
	"bytes"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"

	"github.com/weftlabs/weft/pkg/execution"
)

// The verified pipeline (matching, replay, run creation) is covered in
// the execution package; here we test the HTTP boundary around it.

func webhookTestEcho(s *Server) *echo.Echo {
	e := echo.New()
	e.POST("/api/composio/webhook", s.composioWebhookHandler)
	return e
}

func webhookTestServer() *Server {
	secret := "whsec_" + base64.StdEncoding.EncodeToString([]byte("test-signing-key"))
	return &Server{
		execution: execution.NewService(execution.Deps{
			Verifier: execution.NewVerifier(secret),
		}),
	}
}

func TestComposioWebhookHandler_Unavailable(t *testing.T) {
	e := webhookTestEcho(&Server{})

	req := httptest.NewRequest(http.MethodPost,
		"/api/composio/webhook", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestComposioWebhookHandler_RejectsUnverified(t *testing.T) {
	e := webhookTestEcho(webhookTestServer())

	tests := []struct {
		name    string
		headers map[string]string
	}{
		{
			name:    "no signature headers",
			headers: map[string]string{},
		},
		{
			name: "forged signature",
			headers: map[string]string{
				"webhook-id":        "msg_1",
				"webhook-timestamp": "1700000000",
				"webhook-signature": "v1," + base64.StdEncoding.EncodeToString([]byte("forged")),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost,
				"/api/composio/webhook", strings.NewReader(`{"trigger_nano_id":"trig_1"}`))
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "verification failed")
		})
	}
}

func TestComposioWebhookHandler_BodyTooLarge(t *testing.T) {
	e := webhookTestEcho(webhookTestServer())

	req := httptest.NewRequest(http.MethodPost,
		"/api/composio/webhook", bytes.NewReader(make([]byte, maxWebhookBody+1)))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
