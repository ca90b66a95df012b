package api

import (
	"github.com/weftlabs/weft/ent"
)

// RunStartedResponse is returned by POST /api/threads/:thread_id/runs.
type RunStartedResponse struct {
	RunID    string `json:"run_id"`
	ThreadID string `json:"thread_id"`
	Status   string `json:"status"`
	Message  string `json:"message"`
}

// StopResponse is returned by POST /api/agent-runs/:run_id/stop.
type StopResponse struct {
	RunID   string `json:"run_id"`
	Message string `json:"message"`
}

// TriggerListResponse is returned by GET /api/agents/:agent_id/triggers.
type TriggerListResponse struct {
	Triggers   []*ent.Trigger `json:"triggers"`
	TotalCount int            `json:"total_count"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// HealthCheck is one component's slice of the health response.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
