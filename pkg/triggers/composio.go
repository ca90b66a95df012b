package triggers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"
	"github.com/weftlabs/weft/ent"
	"github.com/weftlabs/weft/ent/predicate"
	"github.com/weftlabs/weft/ent/trigger"
	"github.com/weftlabs/weft/pkg/models"
)

// defaultPromptPayloadChars caps how much raw payload the default prompt
// embeds.
const defaultPromptPayloadChars = 800

// ComposioProvider bridges Composio trigger subscriptions. Many local
// triggers may share one remote subscription, so the upstream enable,
// disable and delete calls are reference-counted against the local table:
// only the 0↔≥1 transitions touch the remote side.
type ComposioProvider struct {
	client  *ent.Client
	http    *http.Client
	baseURL string
	apiKey  string
	logger  *slog.Logger
}

// NewComposioProvider creates a Composio event adapter.
func NewComposioProvider(client *ent.Client, baseURL, apiKey string) *ComposioProvider {
	return &ComposioProvider{
		client:  client,
		http:    &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		logger:  slog.With("component", "composio_provider"),
	}
}

// ProviderID implements Provider.
func (p *ComposioProvider) ProviderID() string { return "composio" }

// TriggerType implements Provider.
func (p *ComposioProvider) TriggerType() string { return models.TriggerTypeEvent }

// ValidateConfig implements Provider.
func (p *ComposioProvider) ValidateConfig(config map[string]any) (map[string]any, error) {
	if config == nil {
		config = make(map[string]any)
	}
	if stringField(config, ConfigComposioTrigger) == "" {
		return nil, fmt.Errorf("composio_trigger_id is required")
	}
	if stringField(config, ConfigTriggerSlug) == "" {
		return nil, fmt.Errorf("trigger_slug is required")
	}
	if err := validateExecutionRoute(config, false); err != nil {
		return nil, err
	}
	config[ConfigProviderID] = p.ProviderID()
	return config, nil
}

// SetupTrigger implements Provider. The trigger row is already stored, so
// "no other active trigger" means a peer count of zero excluding this row.
func (p *ComposioProvider) SetupTrigger(ctx context.Context, trig *ent.Trigger) error {
	remoteID := stringField(trig.Config, ConfigComposioTrigger)

	peers, err := p.countPeers(ctx, remoteID, trig.ID, true)
	if err != nil {
		return fmt.Errorf("failed to count trigger peers: %w", err)
	}
	if peers > 0 {
		p.logger.Debug("remote subscription already enabled by peer",
			"composio_trigger_id", remoteID, "active_peers", peers)
		return nil
	}

	if err := p.setRemoteStatus(ctx, remoteID, "enable"); err != nil {
		return fmt.Errorf("failed to enable remote trigger: %w", err)
	}
	return nil
}

// TeardownTrigger implements Provider. The deactivation (or deletion) is
// already persisted, so any remaining active row referencing the remote id
// keeps the subscription alive.
func (p *ComposioProvider) TeardownTrigger(ctx context.Context, trig *ent.Trigger) error {
	remoteID := stringField(trig.Config, ConfigComposioTrigger)

	peers, err := p.countPeers(ctx, remoteID, trig.ID, true)
	if err != nil {
		return fmt.Errorf("failed to count trigger peers: %w", err)
	}
	if peers > 0 {
		p.logger.Debug("remote subscription still referenced",
			"composio_trigger_id", remoteID, "active_peers", peers)
		return nil
	}

	if err := p.setRemoteStatus(ctx, remoteID, "disable"); err != nil {
		return fmt.Errorf("failed to disable remote trigger: %w", err)
	}
	return nil
}

// DeleteRemoteTrigger implements RemoteDeleter: the remote subscription is
// deleted only when no local trigger, active or not, still references it.
func (p *ComposioProvider) DeleteRemoteTrigger(ctx context.Context, trig *ent.Trigger) error {
	remoteID := stringField(trig.Config, ConfigComposioTrigger)

	refs, err := p.countPeers(ctx, remoteID, trig.ID, false)
	if err != nil {
		return fmt.Errorf("failed to count trigger references: %w", err)
	}
	if refs > 0 {
		p.logger.Debug("remote trigger still referenced locally",
			"composio_trigger_id", remoteID, "references", refs)
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete,
		fmt.Sprintf("%s/api/v3/trigger_instances/manage/%s", p.baseURL, remoteID), nil)
	if err != nil {
		return fmt.Errorf("failed to build delete request: %w", err)
	}
	req.Header.Set("x-api-key", p.apiKey)

	resp, err := p.http.Do(req)
	if err != nil {
		return fmt.Errorf("remote delete failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 && resp.StatusCode != http.StatusNotFound {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("remote delete returned %d: %s", resp.StatusCode, body)
	}
	return nil
}

// ProcessEvent implements Provider: it extracts the remote event identity
// and renders the prompt.
func (p *ComposioProvider) ProcessEvent(_ context.Context, trig *ent.Trigger, rawData map[string]any) (models.TriggerResult, error) {
	eventID := stringField(rawData, "id")
	if eventID == "" {
		eventID = stringField(rawData, "trigger_nano_id")
	}
	slug := stringField(rawData, ConfigTriggerSlug)
	if slug == "" {
		slug = stringField(trig.Config, ConfigTriggerSlug)
	}

	prompt := stringField(trig.Config, ConfigAgentPrompt)
	if prompt == "" {
		prompt = p.defaultPrompt(slug, rawData)
	}

	vars := map[string]any{
		ConfigExecutionType:   stringField(trig.Config, ConfigExecutionType),
		ConfigTriggerSlug:     slug,
		ConfigComposioTrigger: stringField(trig.Config, ConfigComposioTrigger),
	}
	if eventID != "" {
		vars["event_id"] = eventID
	}
	if wf := stringField(trig.Config, ConfigWorkflowID); wf != "" {
		vars[ConfigWorkflowID] = wf
	}

	return models.TriggerResult{
		Success:            true,
		ShouldExecute:      trig.IsActive,
		Prompt:             prompt,
		ExecutionVariables: vars,
	}, nil
}

// defaultPrompt embeds a truncated payload when no template is configured.
func (p *ComposioProvider) defaultPrompt(slug string, rawData map[string]any) string {
	payload, err := json.Marshal(rawData)
	if err != nil {
		payload = []byte("{}")
	}
	text := string(payload)
	if len(text) > defaultPromptPayloadChars {
		cut := defaultPromptPayloadChars
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut] + "..."
	}
	return fmt.Sprintf(
		"You received a %s event from a connected integration. Event data:\n\n%s\n\nHandle this event according to your instructions.",
		slug, text)
}

// countPeers counts other local triggers referencing the same remote id.
// activeOnly narrows to is_active rows for the enable/disable decisions.
func (p *ComposioProvider) countPeers(ctx context.Context, remoteID, excludeTriggerID string, activeOnly bool) (int, error) {
	preds := []predicate.Trigger{
		trigger.ProviderIDEQ(p.ProviderID()),
		predicate.Trigger(func(s *entsql.Selector) {
			s.Where(sqljson.ValueEQ(trigger.FieldConfig, remoteID, sqljson.Path(ConfigComposioTrigger)))
		}),
	}
	if activeOnly {
		preds = append(preds, trigger.IsActiveEQ(true))
	}
	if excludeTriggerID != "" {
		preds = append(preds, trigger.IDNEQ(excludeTriggerID))
	}

	return p.client.Trigger.Query().Where(preds...).Count(ctx)
}

// setRemoteStatus PATCHes the remote subscription state.
func (p *ComposioProvider) setRemoteStatus(ctx context.Context, remoteID, status string) error {
	body, _ := json.Marshal(map[string]string{"status": status})

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch,
		fmt.Sprintf("%s/api/v3/trigger_instances/manage/%s", p.baseURL, remoteID),
		bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build status request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.apiKey)

	resp, err := p.http.Do(req)
	if err != nil {
		return fmt.Errorf("remote %s failed: %w", status, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("remote %s returned %d: %s", status, resp.StatusCode, respBody)
	}

	p.logger.Info("remote trigger status changed",
		"composio_trigger_id", remoteID, "status", status)
	return nil
}
