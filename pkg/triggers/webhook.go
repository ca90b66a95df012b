package triggers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/weftlabs/weft/ent"
	"github.com/weftlabs/weft/pkg/models"
)

// WebhookProvider handles plain inbound webhooks. There is no upstream
// state: activation is purely the local is_active flag, so setup and
// teardown are no-ops.
type WebhookProvider struct{}

// NewWebhookProvider creates a webhook adapter.
func NewWebhookProvider() *WebhookProvider {
	return &WebhookProvider{}
}

// ProviderID implements Provider.
func (p *WebhookProvider) ProviderID() string { return "webhook" }

// TriggerType implements Provider.
func (p *WebhookProvider) TriggerType() string { return models.TriggerTypeWebhook }

// ValidateConfig implements Provider.
func (p *WebhookProvider) ValidateConfig(config map[string]any) (map[string]any, error) {
	if config == nil {
		config = make(map[string]any)
	}
	if err := validateExecutionRoute(config, false); err != nil {
		return nil, err
	}
	config[ConfigProviderID] = p.ProviderID()
	return config, nil
}

// SetupTrigger implements Provider.
func (p *WebhookProvider) SetupTrigger(context.Context, *ent.Trigger) error { return nil }

// TeardownTrigger implements Provider.
func (p *WebhookProvider) TeardownTrigger(context.Context, *ent.Trigger) error { return nil }

// ProcessEvent implements Provider: the raw body becomes the agent prompt,
// prefixed by the configured template when one is set.
func (p *WebhookProvider) ProcessEvent(_ context.Context, trigger *ent.Trigger, rawData map[string]any) (models.TriggerResult, error) {
	payload, err := json.MarshalIndent(rawData, "", "  ")
	if err != nil {
		return models.TriggerResult{Success: false, Error: err.Error()},
			fmt.Errorf("failed to encode webhook payload: %w", err)
	}

	prompt := stringField(trigger.Config, ConfigAgentPrompt)
	if prompt == "" {
		prompt = "Process the following webhook event."
	}
	prompt = fmt.Sprintf("%s\n\nWebhook payload:\n```json\n%s\n```", prompt, payload)

	return models.TriggerResult{
		Success:       true,
		ShouldExecute: true,
		Prompt:        prompt,
		ExecutionVariables: map[string]any{
			ConfigExecutionType: stringField(trigger.Config, ConfigExecutionType),
		},
	}, nil
}
