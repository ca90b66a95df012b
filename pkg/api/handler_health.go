package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/weftlabs/weft/pkg/database"
	"github.com/weftlabs/weft/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /api/health.
// Only our own components are checked: the database, the worker pool's
// view of Redis, and the stream fan-out. LLM providers and the sandbox
// provisioner are excluded so an upstream outage cannot make the
// orchestrator restart us.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	_, err := database.Health(reqCtx, s.db.DB())
	if err != nil {
		status = healthStatusUnhealthy
		checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		checks["database"] = HealthCheck{Status: healthStatusHealthy}
	}

	if s.pool != nil {
		ph := s.pool.Health(reqCtx)
		if ph.QueueDepth < 0 {
			// Queue depth -1 means Redis did not answer.
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			checks["worker_pool"] = HealthCheck{
				Status:  healthStatusDegraded,
				Message: "queue unreachable",
			}
		} else {
			checks["worker_pool"] = HealthCheck{
				Status: healthStatusHealthy,
				Message: fmt.Sprintf("%d workers, %d active, depth %d",
					len(ph.Workers), ph.ActiveRuns, ph.QueueDepth),
			}
		}
	}

	if s.events != nil {
		checks["event_stream"] = HealthCheck{
			Status:  healthStatusHealthy,
			Message: fmt.Sprintf("%d subscribers", s.events.ActiveSubscribers()),
		}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, &HealthResponse{
		Status:  status,
		Version: version.GitCommit,
		Checks:  checks,
	})
}
