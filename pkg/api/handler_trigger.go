package api

import (
	"crypto/hmac"
	"net/http"
	"os"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/weftlabs/weft/pkg/models"
)

// createTriggerHandler handles POST /api/agents/:agent_id/triggers.
// Provider and config validation happens in the service, which also
// rolls the row back when remote setup fails.
func (s *Server) createTriggerHandler(c *echo.Context) error {
	agentID := c.Param("agent_id")
	if agentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent id is required")
	}

	var req models.CreateTriggerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	trig, err := s.triggers.CreateTrigger(c.Request().Context(), agentID, req)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, &models.TriggerResponse{Trigger: trig})
}

// listTriggersHandler handles GET /api/agents/:agent_id/triggers.
func (s *Server) listTriggersHandler(c *echo.Context) error {
	agentID := c.Param("agent_id")
	if agentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent id is required")
	}

	trigs, err := s.triggers.ListTriggersByAgent(c.Request().Context(), agentID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &TriggerListResponse{
		Triggers:   trigs,
		TotalCount: len(trigs),
	})
}

// getTriggerHandler handles GET /api/triggers/:trigger_id.
func (s *Server) getTriggerHandler(c *echo.Context) error {
	triggerID := c.Param("trigger_id")
	if triggerID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "trigger id is required")
	}

	trig, err := s.triggers.GetTrigger(c.Request().Context(), triggerID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &models.TriggerResponse{Trigger: trig})
}

// updateTriggerHandler handles PATCH /api/triggers/:trigger_id. The
// service owns the activation state machine (setup/teardown ordering
// and rollback).
func (s *Server) updateTriggerHandler(c *echo.Context) error {
	triggerID := c.Param("trigger_id")
	if triggerID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "trigger id is required")
	}

	var req models.UpdateTriggerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	trig, err := s.triggers.UpdateTrigger(c.Request().Context(), triggerID, req)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &models.TriggerResponse{Trigger: trig})
}

// deleteTriggerHandler handles DELETE /api/triggers/:trigger_id.
func (s *Server) deleteTriggerHandler(c *echo.Context) error {
	triggerID := c.Param("trigger_id")
	if triggerID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "trigger id is required")
	}

	if err := s.triggers.DeleteTrigger(c.Request().Context(), triggerID); err != nil {
		return mapServiceError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// triggerWebhookHandler handles POST /api/triggers/:trigger_id/webhook,
// the callback target pg_cron posts to when a schedule fires. Callers
// authenticate with the shared scheduler secret; with no secret
// configured the endpoint is disabled rather than open.
func (s *Server) triggerWebhookHandler(c *echo.Context) error {
	triggerID := c.Param("trigger_id")
	if triggerID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "trigger id is required")
	}

	secret := s.schedulerSecret()
	if secret == "" {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "scheduler webhook not configured")
	}
	if !hmac.Equal([]byte(c.Request().Header.Get("x-trigger-secret")), []byte(secret)) {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid trigger secret")
	}
	if s.execution == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "trigger execution not available")
	}

	var payload map[string]any
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed delivery payload")
	}
	if payload == nil {
		payload = map[string]any{}
	}

	ctx := c.Request().Context()
	trig, err := s.triggers.GetTrigger(ctx, triggerID)
	if err != nil {
		return mapServiceError(err)
	}
	if !trig.IsActive {
		// pg_cron can fire once more while a deactivation unschedules.
		return echo.NewHTTPError(http.StatusConflict, "trigger is not active")
	}

	res, err := s.execution.ExecuteTrigger(ctx, trig, uuid.New().String(), payload)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (s *Server) schedulerSecret() string {
	if s.cfg == nil || s.cfg.Triggers == nil {
		return ""
	}
	return os.Getenv(s.cfg.Triggers.SchedulerSecretEnv)
}
