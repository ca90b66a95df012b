package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"
	"github.com/google/uuid"
	"github.com/weftlabs/weft/ent"
	"github.com/weftlabs/weft/ent/predicate"
	"github.com/weftlabs/weft/ent/trigger"
	"github.com/weftlabs/weft/ent/triggerevent"
	"github.com/weftlabs/weft/pkg/models"
	"github.com/weftlabs/weft/pkg/triggers"
)

// TriggerService manages trigger rows and drives the provider adapters
// through state transitions. The DB row is always written before provider
// setup/teardown runs, so reference-counting providers observe authoritative
// local state.
type TriggerService struct {
	client   *ent.Client
	registry *triggers.Registry
	logger   *slog.Logger
}

// NewTriggerService creates a new TriggerService
func NewTriggerService(client *ent.Client, registry *triggers.Registry) *TriggerService {
	return &TriggerService{
		client:   client,
		registry: registry,
		logger:   slog.With("component", "trigger_service"),
	}
}

// CreateTrigger validates the config with the provider, persists the row
// and, when created active, runs provider setup. Setup failure rolls the
// row back so no half-configured trigger survives.
func (s *TriggerService) CreateTrigger(httpCtx context.Context, agentID string, req models.CreateTriggerRequest) (*ent.Trigger, error) {
	if agentID == "" {
		return nil, NewValidationError("agent_id", "required")
	}
	if req.ProviderID == "" {
		return nil, NewValidationError("provider_id", "required")
	}
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}

	provider, err := s.registry.Get(req.ProviderID)
	if err != nil {
		return nil, NewValidationError("provider_id", err.Error())
	}

	config, err := provider.ValidateConfig(req.Config)
	if err != nil {
		return nil, NewValidationError("config", err.Error())
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Trigger.Create().
		SetID(uuid.New().String()).
		SetAgentID(agentID).
		SetProviderID(provider.ProviderID()).
		SetTriggerType(provider.TriggerType()).
		SetName(req.Name).
		SetIsActive(isActive).
		SetConfig(config)

	if req.Description != "" {
		builder.SetDescription(req.Description)
	}

	trig, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create trigger: %w", err)
	}

	if isActive {
		if setupErr := provider.SetupTrigger(httpCtx, trig); setupErr != nil {
			if delErr := s.client.Trigger.DeleteOneID(trig.ID).Exec(ctx); delErr != nil {
				s.logger.Error("failed to roll back trigger after setup failure",
					"trigger_id", trig.ID, "error", delErr)
			}
			return nil, fmt.Errorf("trigger setup failed: %w", setupErr)
		}
	}

	return trig, nil
}

// GetTrigger retrieves a trigger by ID
func (s *TriggerService) GetTrigger(ctx context.Context, triggerID string) (*ent.Trigger, error) {
	trig, err := s.client.Trigger.Get(ctx, triggerID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get trigger: %w", err)
	}
	return trig, nil
}

// ListTriggersByAgent returns an agent's triggers, newest first.
func (s *TriggerService) ListTriggersByAgent(ctx context.Context, agentID string) ([]*ent.Trigger, error) {
	trigs, err := s.client.Trigger.Query().
		Where(trigger.AgentIDEQ(agentID)).
		Order(ent.Desc(trigger.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list triggers: %w", err)
	}
	return trigs, nil
}

// MatchEventTriggers returns active event triggers bound to the given
// remote subscription id. Matching is exact on config.composio_trigger_id:
// an unknown id matches nothing rather than falling back to some broader
// rule, so an id mismatch can never execute unrelated triggers.
func (s *TriggerService) MatchEventTriggers(ctx context.Context, remoteID string) ([]*ent.Trigger, error) {
	if remoteID == "" {
		return nil, nil
	}

	trigs, err := s.client.Trigger.Query().
		Where(
			trigger.IsActiveEQ(true),
			trigger.TriggerTypeEQ(models.TriggerTypeEvent),
			predicate.Trigger(func(sel *entsql.Selector) {
				sel.Where(sqljson.ValueEQ(trigger.FieldConfig, remoteID,
					sqljson.Path(triggers.ConfigComposioTrigger)))
			}),
		).
		Order(ent.Asc(trigger.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to match event triggers: %w", err)
	}
	return trigs, nil
}

// UpdateTrigger applies field updates and walks the activation state
// machine: deactivation tears down after the row is written, activation
// sets up after the row is written and rolls the flag back on failure, and
// a config change on an active trigger cycles teardown/setup.
func (s *TriggerService) UpdateTrigger(httpCtx context.Context, triggerID string, req models.UpdateTriggerRequest) (*ent.Trigger, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	old, err := s.GetTrigger(ctx, triggerID)
	if err != nil {
		return nil, err
	}

	provider, err := s.registry.Get(old.ProviderID)
	if err != nil {
		return nil, fmt.Errorf("trigger has unknown provider: %w", err)
	}

	newConfig := old.Config
	configChanged := false
	if req.Config != nil {
		newConfig, err = provider.ValidateConfig(req.Config)
		if err != nil {
			return nil, NewValidationError("config", err.Error())
		}
		configChanged = true
	}

	wasActive := old.IsActive
	nowActive := wasActive
	if req.IsActive != nil {
		nowActive = *req.IsActive
	}

	update := s.client.Trigger.UpdateOneID(triggerID).
		SetIsActive(nowActive).
		SetConfig(newConfig)
	if req.Name != nil {
		update.SetName(*req.Name)
	}
	if req.Description != nil {
		update.SetDescription(*req.Description)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update trigger: %w", err)
	}

	switch {
	case wasActive && !nowActive:
		if err := provider.TeardownTrigger(httpCtx, old); err != nil {
			s.logger.Warn("trigger teardown failed after deactivation",
				"trigger_id", triggerID, "error", err)
		}

	case !wasActive && nowActive:
		if setupErr := provider.SetupTrigger(httpCtx, updated); setupErr != nil {
			if _, rbErr := s.client.Trigger.UpdateOneID(triggerID).
				SetIsActive(false).
				Save(ctx); rbErr != nil {
				s.logger.Error("failed to roll back activation",
					"trigger_id", triggerID, "error", rbErr)
			}
			return nil, fmt.Errorf("trigger setup failed: %w", setupErr)
		}

	case wasActive && nowActive && configChanged:
		if err := provider.TeardownTrigger(httpCtx, old); err != nil {
			s.logger.Warn("trigger teardown failed before reconfiguration",
				"trigger_id", triggerID, "error", err)
		}
		if setupErr := provider.SetupTrigger(httpCtx, updated); setupErr != nil {
			// Restore the previous config and try to bring the old
			// subscription back so the trigger keeps firing as before.
			if _, rbErr := s.client.Trigger.UpdateOneID(triggerID).
				SetConfig(old.Config).
				Save(ctx); rbErr != nil {
				s.logger.Error("failed to roll back config",
					"trigger_id", triggerID, "error", rbErr)
			} else if resErr := provider.SetupTrigger(httpCtx, old); resErr != nil {
				s.logger.Error("failed to restore previous trigger setup",
					"trigger_id", triggerID, "error", resErr)
			}
			return nil, fmt.Errorf("trigger setup failed: %w", setupErr)
		}
	}

	return s.GetTrigger(ctx, triggerID)
}

// DeleteTrigger removes the row first, then best-effort tears down the
// provider side. The local record is already gone, so provider failures
// are logged rather than returned.
func (s *TriggerService) DeleteTrigger(httpCtx context.Context, triggerID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	trig, err := s.GetTrigger(ctx, triggerID)
	if err != nil {
		return err
	}

	if err := s.client.Trigger.DeleteOneID(triggerID).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete trigger: %w", err)
	}

	provider, err := s.registry.Get(trig.ProviderID)
	if err != nil {
		s.logger.Warn("deleted trigger had unknown provider",
			"trigger_id", triggerID, "provider_id", trig.ProviderID)
		return nil
	}

	if trig.IsActive {
		if err := provider.TeardownTrigger(httpCtx, trig); err != nil {
			s.logger.Warn("trigger teardown failed after delete",
				"trigger_id", triggerID, "error", err)
		}
	}
	if deleter, ok := provider.(triggers.RemoteDeleter); ok {
		if err := deleter.DeleteRemoteTrigger(httpCtx, trig); err != nil {
			s.logger.Warn("remote trigger delete failed",
				"trigger_id", triggerID, "error", err)
		}
	}

	return nil
}

// ProcessEvent dispatches an upstream event to the trigger's provider and
// logs the outcome as a TriggerEvent row. Inactive triggers log the event
// but never execute.
func (s *TriggerService) ProcessEvent(ctx context.Context, triggerID string, rawData map[string]any) (models.TriggerResult, error) {
	trig, err := s.GetTrigger(ctx, triggerID)
	if err != nil {
		return models.TriggerResult{}, err
	}

	var result models.TriggerResult
	var procErr error
	if !trig.IsActive {
		result = models.TriggerResult{Success: true, ShouldExecute: false}
	} else {
		provider, regErr := s.registry.Get(trig.ProviderID)
		if regErr != nil {
			return models.TriggerResult{}, fmt.Errorf("trigger has unknown provider: %w", regErr)
		}
		result, procErr = provider.ProcessEvent(ctx, trig, rawData)
		if procErr != nil && result.Error == "" {
			result.Error = procErr.Error()
		}
	}

	s.logTriggerEvent(trig, rawData, result)

	if procErr != nil {
		return result, fmt.Errorf("failed to process trigger event: %w", procErr)
	}
	return result, nil
}

// logTriggerEvent writes the audit row. Failures are logged, never
// propagated: the event outcome stands regardless of audit success.
func (s *TriggerService) logTriggerEvent(trig *ent.Trigger, rawData map[string]any, result models.TriggerResult) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resultMap := map[string]any{}
	if raw, err := json.Marshal(result); err == nil {
		_ = json.Unmarshal(raw, &resultMap)
	}

	builder := s.client.TriggerEvent.Create().
		SetID(uuid.New().String()).
		SetTriggerID(trig.ID).
		SetAgentID(trig.AgentID).
		SetTriggerType(trig.TriggerType).
		SetRawData(sanitizeMap(rawData)).
		SetResult(resultMap).
		SetSuccess(result.Success).
		SetShouldExecute(result.ShouldExecute)

	if result.Error != "" {
		builder.SetError(sanitizeUTF8(result.Error))
	}

	if err := builder.Exec(ctx); err != nil {
		s.logger.Error("failed to log trigger event",
			"trigger_id", trig.ID, "error", err)
	}
}

// ListTriggerEvents returns recent audit rows for a trigger, newest first.
func (s *TriggerService) ListTriggerEvents(ctx context.Context, triggerID string, limit int) ([]*ent.TriggerEvent, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	// trigger_id is a plain column: events outlive their trigger.
	events, err := s.client.TriggerEvent.Query().
		Where(triggerevent.TriggerIDEQ(triggerID)).
		Order(ent.Desc(triggerevent.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list trigger events: %w", err)
	}
	return events, nil
}

// CleanupOldTriggerEvents removes audit rows older than the TTL.
func (s *TriggerService) CleanupOldTriggerEvents(_ context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.TriggerEvent.Delete().
		Where(triggerevent.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup old trigger events: %w", err)
	}
	return count, nil
}

// sanitizeUTF8 replaces invalid byte sequences so the value is always
// JSON- and Postgres-safe.
func sanitizeUTF8(s string) string {
	return strings.ToValidUTF8(s, "�")
}

// sanitizeMap deep-copies a payload with all strings UTF-8 sanitized.
func sanitizeMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[sanitizeUTF8(k)] = sanitizeValue(v)
	}
	return out
}

func sanitizeValue(v any) any {
	switch t := v.(type) {
	case string:
		return sanitizeUTF8(t)
	case []byte:
		return sanitizeUTF8(string(t))
	case map[string]any:
		return sanitizeMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = sanitizeValue(e)
		}
		return out
	default:
		return v
	}
}
