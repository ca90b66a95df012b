package models

import (
	"github.com/weftlabs/weft/ent"
)

// RunRequest is the payload placed on the Redis run queue. Workers
// rehydrate everything else from the database, so the request stays small.
type RunRequest struct {
	RunID     string `json:"agent_run_id"`
	ThreadID  string `json:"thread_id"`
	AccountID string `json:"account_id"`
	ProjectID string `json:"project_id,omitempty"`
	AgentID   string `json:"agent_id,omitempty"`
	Model     string `json:"model"`
	RequestID string `json:"request_id,omitempty"`
}

// StartRunRequest contains fields for starting a run over a thread.
type StartRunRequest struct {
	Model   string `json:"model,omitempty"`
	AgentID string `json:"agent_id,omitempty"`
}

// AgentRunResponse wraps an AgentRun row.
type AgentRunResponse struct {
	*ent.AgentRun
}

// AutoContinueState tracks the runner's turn loop across LLM completions.
// The processor flips Active when a completion ends for a continuable
// reason; the runner reads it to decide whether to loop.
type AutoContinueState struct {
	Active bool
	Count  int

	// AccumulatedContent carries partial assistant text across
	// length-based continuations so the model resumes mid-thought.
	AccumulatedContent string
}

// Reset clears the state between runs.
func (s *AutoContinueState) Reset() {
	s.Active = false
	s.Count = 0
	s.AccumulatedContent = ""
}
