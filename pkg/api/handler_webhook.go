package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/weftlabs/weft/pkg/execution"
)

// maxWebhookBody caps inbound delivery bodies. Reading happens before
// signature verification, so the cap is what bounds a hostile sender.
const maxWebhookBody = 1 << 20

// composioWebhookHandler handles POST /api/composio/webhook. The raw
// body goes to the execution service untouched because the signature
// covers the exact bytes on the wire.
func (s *Server) composioWebhookHandler(c *echo.Context) error {
	if s.execution == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "webhook ingress not available")
	}

	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBody+1))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read request body")
	}
	if len(body) > maxWebhookBody {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge,
			fmt.Sprintf("webhook body exceeds maximum size of %d bytes", maxWebhookBody))
	}

	res, err := s.execution.HandleWebhook(c.Request().Context(), execution.Delivery{
		ID:        c.Request().Header.Get("webhook-id"),
		Timestamp: c.Request().Header.Get("webhook-timestamp"),
		Signature: c.Request().Header.Get("webhook-signature"),
		Body:      body,
	})
	if err != nil {
		switch {
		case errors.Is(err, execution.ErrVerificationFailed):
			return echo.NewHTTPError(http.StatusUnauthorized, "webhook verification failed")
		case errors.Is(err, execution.ErrMalformedPayload):
			return echo.NewHTTPError(http.StatusBadRequest, "malformed webhook payload")
		default:
			return mapServiceError(err)
		}
	}
	return c.JSON(http.StatusOK, res)
}
