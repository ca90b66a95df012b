package models

import (
	"github.com/weftlabs/weft/ent"
)

// Thread metadata keys.
const (
	MetaCacheNeedsRebuild = "cache_needs_rebuild"
	MetaTriggerID         = "trigger_id"
	MetaTriggerExecution  = "is_trigger_execution"
)

// CreateThreadRequest contains fields for creating a thread.
type CreateThreadRequest struct {
	AccountID string         `json:"account_id"`
	ProjectID string         `json:"project_id,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// ThreadResponse wraps a Thread row.
type ThreadResponse struct {
	*ent.Thread
}

// CreateProjectRequest contains fields for creating a project.
type CreateProjectRequest struct {
	AccountID string         `json:"account_id"`
	Name      string         `json:"name"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}
