// Package triggers contains the provider adapters that connect trigger
// rows to their upstream scheduling or event sources. Adapters validate
// config, set up and tear down the upstream side, and turn inbound events
// into execution verdicts.
package triggers

import (
	"context"
	"fmt"
	"sync"

	"github.com/weftlabs/weft/ent"
	"github.com/weftlabs/weft/pkg/models"
)

// Provider is one trigger backend. Setup and teardown bracket the active
// lifetime of a trigger; both must be safe to call on state the upstream
// side already reflects (the DB row is written before either is invoked).
type Provider interface {
	// ProviderID is the registry key stored in trigger rows.
	ProviderID() string

	// TriggerType classifies triggers from this provider (SCHEDULE,
	// WEBHOOK or EVENT).
	TriggerType() string

	// ValidateConfig checks and normalizes a trigger config: defaults are
	// filled in and provider_id is stamped so the stored config reads back
	// authoritative.
	ValidateConfig(config map[string]any) (map[string]any, error)

	// SetupTrigger makes the upstream side deliver events for the trigger.
	SetupTrigger(ctx context.Context, trigger *ent.Trigger) error

	// TeardownTrigger stops upstream delivery.
	TeardownTrigger(ctx context.Context, trigger *ent.Trigger) error

	// ProcessEvent turns one upstream delivery into an execution verdict.
	ProcessEvent(ctx context.Context, trigger *ent.Trigger, rawData map[string]any) (models.TriggerResult, error)
}

// RemoteDeleter is implemented by providers that own remote state beyond
// the subscription itself. Called best-effort after the local row is gone.
type RemoteDeleter interface {
	DeleteRemoteTrigger(ctx context.Context, trigger *ent.Trigger) error
}

// Registry maps provider_id to its adapter.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]Provider)}
}

// Register adds a provider, replacing any previous adapter with the same id.
func (r *Registry) Register(p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[p.ProviderID()] = p
}

// Get returns the adapter for a provider id.
func (r *Registry) Get(providerID string) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[providerID]
	if !ok {
		return nil, fmt.Errorf("unknown trigger provider: %s", providerID)
	}
	return p, nil
}

// ProviderIDs lists the registered provider ids.
func (r *Registry) ProviderIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.providers))
	for id := range r.providers {
		ids = append(ids, id)
	}
	return ids
}

// Config field names shared by providers.
const (
	ConfigProviderID      = "provider_id"
	ConfigExecutionType   = "execution_type"
	ConfigAgentPrompt     = "agent_prompt"
	ConfigWorkflowID      = "workflow_id"
	ConfigWorkflowInput   = "workflow_input"
	ConfigCronExpression  = "cron_expression"
	ConfigTimezone        = "timezone"
	ConfigComposioTrigger = "composio_trigger_id"
	ConfigTriggerSlug     = "trigger_slug"
	ConfigQualifiedName   = "qualified_name"
)

// Execution routes a trigger can request.
const (
	ExecutionTypeAgent    = "agent"
	ExecutionTypeWorkflow = "workflow"
)

// stringField reads an optional string config value.
func stringField(config map[string]any, key string) string {
	if config == nil {
		return ""
	}
	v, _ := config[key].(string)
	return v
}

// validateExecutionRoute checks the execution_type and its companion
// field, defaulting the type to agent. Providers with a default prompt
// pass promptRequired=false.
func validateExecutionRoute(config map[string]any, promptRequired bool) error {
	execType := stringField(config, ConfigExecutionType)
	if execType == "" {
		execType = ExecutionTypeAgent
		config[ConfigExecutionType] = execType
	}
	switch execType {
	case ExecutionTypeAgent:
		if promptRequired && stringField(config, ConfigAgentPrompt) == "" {
			return fmt.Errorf("agent_prompt is required for agent execution")
		}
	case ExecutionTypeWorkflow:
		if stringField(config, ConfigWorkflowID) == "" {
			return fmt.Errorf("workflow_id is required for workflow execution")
		}
	default:
		return fmt.Errorf("execution_type must be agent or workflow, got %q", execType)
	}
	return nil
}
