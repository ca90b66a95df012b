package models

import (
	"github.com/weftlabs/weft/ent"
)

// Trigger types.
const (
	TriggerTypeSchedule = "SCHEDULE"
	TriggerTypeWebhook  = "WEBHOOK"
	TriggerTypeEvent    = "EVENT"
)

// CreateTriggerRequest contains fields for creating a trigger on an agent.
type CreateTriggerRequest struct {
	ProviderID  string         `json:"provider_id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Config      map[string]any `json:"config,omitempty"`
	IsActive    *bool          `json:"is_active,omitempty"`
}

// UpdateTriggerRequest contains fields for updating a trigger. Nil fields
// are left untouched; a non-nil Config replaces the stored config wholesale.
type UpdateTriggerRequest struct {
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	Config      map[string]any `json:"config,omitempty"`
	IsActive    *bool          `json:"is_active,omitempty"`
}

// TriggerResponse wraps a Trigger row.
type TriggerResponse struct {
	*ent.Trigger
}

// TriggerResult is a provider's verdict on one upstream event.
type TriggerResult struct {
	Success            bool           `json:"success"`
	ShouldExecute      bool           `json:"should_execute"`
	Prompt             string         `json:"prompt,omitempty"`
	ExecutionVariables map[string]any `json:"execution_variables,omitempty"`
	Error              string         `json:"error,omitempty"`
}
