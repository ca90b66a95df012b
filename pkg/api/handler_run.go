package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/weftlabs/weft/ent"
	"github.com/weftlabs/weft/ent/agentrun"
	"github.com/weftlabs/weft/pkg/models"
	"github.com/weftlabs/weft/pkg/queue"
	"github.com/weftlabs/weft/pkg/services"
)

// startRunHandler handles POST /api/threads/:thread_id/runs.
// Billing is checked before the run row is inserted, and the row is
// inserted before the queue push; a row that cannot be enqueued is
// marked failed so the thread is not locked by the one-running index.
func (s *Server) startRunHandler(c *echo.Context) error {
	threadID := c.Param("thread_id")
	if threadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "thread id is required")
	}

	var req models.StartRunRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	thread, err := s.threads.GetThread(ctx, threadID)
	if err != nil {
		return mapServiceError(err)
	}

	agent, err := s.resolveAgent(c, req.AgentID, thread.AccountID)
	if err != nil {
		return mapServiceError(err)
	}

	model := req.Model
	agentID := req.AgentID
	if agent != nil {
		agentID = agent.ID
		if model == "" && agent.Model != nil {
			model = *agent.Model
		}
	}
	if model == "" {
		model = s.defaultModel()
	}

	if err := s.credits.CheckModelAccess(ctx, thread.AccountID, model); err != nil {
		return mapServiceError(err)
	}

	requestID := uuid.New().String()
	run, err := s.runs.StartRun(ctx, services.StartRunRequest{
		ThreadID:  threadID,
		PodID:     s.podID,
		RequestID: requestID,
		Metadata:  map[string]any{"requested_by": extractAuthor(c)},
	})
	if err != nil {
		return mapServiceError(err)
	}

	if s.queue != nil {
		if err := s.queue.MarkActive(ctx, s.podID, run.ID); err != nil {
			// The claiming worker re-registers the key; the orphan scan
			// threshold covers the queued window.
			s.logger.Warn("failed to register run liveness key",
				"run_id", run.ID, "error", err)
		}
		if err := s.queue.Enqueue(ctx, queue.RunRequest{
			RunID:     run.ID,
			ThreadID:  threadID,
			AgentID:   agentID,
			Model:     model,
			RequestID: requestID,
		}); err != nil {
			if failErr := s.runs.CompleteRun(ctx, run.ID, agentrun.StatusFailed, "failed to enqueue run"); failErr != nil {
				s.logger.Error("failed to mark unqueued run failed",
					"run_id", run.ID, "error", failErr)
			}
			return mapServiceError(fmt.Errorf("failed to enqueue run: %w", err))
		}
	}

	return c.JSON(http.StatusAccepted, &RunStartedResponse{
		RunID:    run.ID,
		ThreadID: threadID,
		Status:   string(run.Status),
		Message:  "Agent run started",
	})
}

// resolveAgent loads the requested agent, or the account default when
// the request names none. A missing default is not an error: the run
// proceeds with the configured model and no system prompt.
func (s *Server) resolveAgent(c *echo.Context, agentID, accountID string) (*ent.Agent, error) {
	if agentID != "" {
		return s.agents.GetAgent(c.Request().Context(), agentID)
	}
	agent, err := s.agents.GetDefaultAgent(c.Request().Context(), accountID)
	if errors.Is(err, services.ErrNotFound) {
		return nil, nil
	}
	return agent, err
}

func (s *Server) defaultModel() string {
	if s.cfg != nil && s.cfg.LLM != nil {
		return s.cfg.LLM.DefaultModel
	}
	return ""
}

// stopRunHandler handles POST /api/agent-runs/:run_id/stop.
func (s *Server) stopRunHandler(c *echo.Context) error {
	runID := c.Param("run_id")
	if runID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "run id is required")
	}

	// Flip the DB status (cross-pod workers see it between iterations).
	stopErr := s.runs.RequestStop(c.Request().Context(), runID)

	// Always try the same-pod cancel registry for immediate effect.
	cancelled := false
	if s.pool != nil {
		cancelled = s.pool.CancelRun(runID)
	}

	if stopErr != nil && !cancelled {
		return mapServiceError(stopErr)
	}

	return c.JSON(http.StatusOK, &StopResponse{
		RunID:   runID,
		Message: "Run stop requested",
	})
}

// getRunHandler handles GET /api/agent-runs/:run_id.
func (s *Server) getRunHandler(c *echo.Context) error {
	runID := c.Param("run_id")
	if runID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "run id is required")
	}

	run, err := s.runs.GetRun(c.Request().Context(), runID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &models.AgentRunResponse{AgentRun: run})
}
