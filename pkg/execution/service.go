// Package execution ingests upstream webhook deliveries and turns
// matched triggers into queued agent runs. Verification gates the whole
// pipeline: an unverified delivery touches neither the database nor
// Redis. Everything after verification is absorbed per trigger, so one
// broken trigger cannot fail the delivery for its peers.
package execution

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/weftlabs/weft/ent"
	"github.com/weftlabs/weft/ent/agentrun"
	"github.com/weftlabs/weft/pkg/models"
	"github.com/weftlabs/weft/pkg/queue"
	"github.com/weftlabs/weft/pkg/sandbox"
	"github.com/weftlabs/weft/pkg/services"
	"github.com/weftlabs/weft/pkg/triggers"
)

// replayKeyPrefix namespaces the webhook-id reservation keys.
const replayKeyPrefix = "weft:webhook_seen:"

// replayTTL only has to outlive the verification skew window: a replay
// older than that fails the timestamp check before the reservation is
// consulted.
const replayTTL = 15 * time.Minute

// ErrMalformedPayload marks a verified delivery whose body is not JSON.
var ErrMalformedPayload = errors.New("malformed webhook payload")

// Delivery is one inbound webhook: the standard signature headers plus
// the raw body exactly as received. Verification signs the raw bytes,
// so the body must not be re-encoded before it reaches the service.
type Delivery struct {
	ID        string
	Timestamp string
	Signature string
	Body      []byte
}

// Result summarizes one delivery for the HTTP response. Matched counts
// every trigger bound to the remote id; Executed counts the subset that
// actually enqueued a run.
type Result struct {
	Success         bool `json:"success"`
	MatchedTriggers int  `json:"matched_triggers"`
	Executed        int  `json:"executed"`
}

// TriggerMatcher finds and adjudicates the triggers an upstream event
// addresses. Implemented by services.TriggerService.
type TriggerMatcher interface {
	MatchEventTriggers(ctx context.Context, remoteID string) ([]*ent.Trigger, error)
	ProcessEvent(ctx context.Context, triggerID string, rawData map[string]any) (models.TriggerResult, error)
}

// ProjectStore creates the per-execution project and binds its sandbox.
type ProjectStore interface {
	CreateProject(ctx context.Context, req models.CreateProjectRequest) (*ent.Project, error)
	SetSandbox(ctx context.Context, projectID, sandboxID string) error
	DeleteProject(ctx context.Context, projectID string) error
}

// ThreadCreator creates the conversation thread for a firing.
type ThreadCreator interface {
	CreateThread(ctx context.Context, req models.CreateThreadRequest) (*ent.Thread, error)
}

// MessageAppender writes the initial user message.
type MessageAppender interface {
	Append(ctx context.Context, req models.CreateMessageRequest) (*ent.Message, error)
}

// AgentResolver loads the trigger's agent and resolves its model.
type AgentResolver interface {
	GetAgent(ctx context.Context, agentID string) (*ent.Agent, error)
	ResolveModel(ctx context.Context, agentID, fallback string) (string, error)
}

// AccessChecker gates run creation on billing.
type AccessChecker interface {
	CheckModelAccess(ctx context.Context, accountID, model string) error
}

// RunStarter inserts the run row and finalizes it when enqueueing fails.
type RunStarter interface {
	StartRun(ctx context.Context, req services.StartRunRequest) (*ent.AgentRun, error)
	CompleteRun(ctx context.Context, runID string, status agentrun.Status, runErr string) error
}

// RunQueue pushes queued work and registers the liveness key.
type RunQueue interface {
	Enqueue(ctx context.Context, req queue.RunRequest) error
	MarkActive(ctx context.Context, podID, runID string) error
}

// Service drives the webhook-to-run pipeline.
type Service struct {
	verifier     *Verifier
	rdb          *redis.Client
	triggers     TriggerMatcher
	projects     ProjectStore
	sandboxes    sandbox.Creator
	threads      ThreadCreator
	messages     MessageAppender
	agents       AgentResolver
	credits      AccessChecker
	runs         RunStarter
	queue        RunQueue
	podID        string
	defaultModel string
	logger       *slog.Logger
}

// Deps carries the collaborators for NewService.
type Deps struct {
	Verifier     *Verifier
	Redis        *redis.Client
	Triggers     TriggerMatcher
	Projects     ProjectStore
	Sandboxes    sandbox.Creator
	Threads      ThreadCreator
	Messages     MessageAppender
	Agents       AgentResolver
	Credits      AccessChecker
	Runs         RunStarter
	Queue        RunQueue
	PodID        string
	DefaultModel string
}

// NewService builds the execution service.
func NewService(deps Deps) *Service {
	return &Service{
		verifier:     deps.Verifier,
		rdb:          deps.Redis,
		triggers:     deps.Triggers,
		projects:     deps.Projects,
		sandboxes:    deps.Sandboxes,
		threads:      deps.Threads,
		messages:     deps.Messages,
		agents:       deps.Agents,
		credits:      deps.Credits,
		runs:         deps.Runs,
		queue:        deps.Queue,
		podID:        deps.PodID,
		defaultModel: deps.DefaultModel,
		logger:       slog.With("component", "execution_service"),
	}
}

// HandleWebhook runs one delivery through verify, replay-check, match
// and execute. Only verification and payload failures surface as errors
// (401 and 400 respectively); everything downstream degrades to
// executed=0 so the sender never retries a valid delivery.
func (s *Service) HandleWebhook(ctx context.Context, d Delivery) (Result, error) {
	if err := s.verifier.Verify(d.ID, d.Timestamp, d.Signature, d.Body); err != nil {
		return Result{}, err
	}

	fresh, err := s.reserveDelivery(ctx, d.ID)
	if err != nil {
		// Losing the reservation degrades to at-least-once, which the
		// queue already tolerates. Keep processing.
		s.logger.Warn("replay reservation failed",
			"webhook_id", d.ID, "error", err)
	} else if !fresh {
		s.logger.Info("duplicate webhook delivery ignored", "webhook_id", d.ID)
		return Result{Success: true}, nil
	}

	var payload map[string]any
	if err := json.Unmarshal(d.Body, &payload); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	remoteID := remoteTriggerID(payload)
	if remoteID == "" {
		s.logger.Info("webhook carries no trigger id", "webhook_id", d.ID)
		return Result{Success: true}, nil
	}

	matches, err := s.triggers.MatchEventTriggers(ctx, remoteID)
	if err != nil {
		return Result{}, fmt.Errorf("failed to match triggers: %w", err)
	}

	res := Result{Success: true, MatchedTriggers: len(matches)}
	for _, trig := range matches {
		verdict, err := s.triggers.ProcessEvent(ctx, trig.ID, payload)
		if err != nil {
			s.logger.Error("trigger event processing failed",
				"trigger_id", trig.ID, "webhook_id", d.ID, "error", err)
			continue
		}
		if !verdict.ShouldExecute {
			continue
		}
		if err := s.executeTrigger(ctx, trig, verdict, d.ID, payload); err != nil {
			s.logger.Error("trigger execution failed",
				"trigger_id", trig.ID, "webhook_id", d.ID, "error", err)
			continue
		}
		res.Executed++
	}

	s.logger.Info("webhook processed", "webhook_id", d.ID,
		"remote_trigger_id", remoteID,
		"matched", res.MatchedTriggers, "executed", res.Executed)
	return res, nil
}

// ExecuteTrigger adjudicates and executes one delivery for a trigger
// that was authenticated out of band, which is how scheduler callbacks
// arrive: pg_cron posts with a shared secret instead of a signature.
// Unlike HandleWebhook there is no peer to protect, so execution
// failures surface to the caller.
func (s *Service) ExecuteTrigger(ctx context.Context, trig *ent.Trigger, deliveryID string, payload map[string]any) (Result, error) {
	verdict, err := s.triggers.ProcessEvent(ctx, trig.ID, payload)
	if err != nil {
		return Result{}, fmt.Errorf("failed to process trigger event: %w", err)
	}

	res := Result{Success: true, MatchedTriggers: 1}
	if !verdict.ShouldExecute {
		s.logger.Info("trigger delivery declined execution",
			"trigger_id", trig.ID, "delivery_id", deliveryID)
		return res, nil
	}
	if err := s.executeTrigger(ctx, trig, verdict, deliveryID, payload); err != nil {
		return res, err
	}
	res.Executed = 1
	return res, nil
}

// reserveDelivery claims the webhook id so a redelivery enqueues nothing.
func (s *Service) reserveDelivery(ctx context.Context, webhookID string) (bool, error) {
	return s.rdb.SetNX(ctx, replayKeyPrefix+webhookID, "1", replayTTL).Result()
}

// executeTrigger provisions the workspace for one firing and enqueues
// the run: project, sandbox, thread, initial message, run row, queue
// push. The project row is rolled back when sandbox provisioning fails;
// a run that cannot be enqueued is marked failed so it never shows as
// running forever.
func (s *Service) executeTrigger(ctx context.Context, trig *ent.Trigger, verdict models.TriggerResult, webhookID string, payload map[string]any) error {
	agent, err := s.agents.GetAgent(ctx, trig.AgentID)
	if err != nil {
		return fmt.Errorf("failed to load agent %s: %w", trig.AgentID, err)
	}

	project, err := s.projects.CreateProject(ctx, models.CreateProjectRequest{
		AccountID: agent.AccountID,
		Name:      fmt.Sprintf("Trigger: %s", trig.Name),
		Metadata:  map[string]any{models.MetaTriggerID: trig.ID},
	})
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	sb, err := s.sandboxes.Create(ctx, project.ID)
	switch {
	case errors.Is(err, sandbox.ErrDisabled):
		// No provisioner configured; the run executes without
		// sandboxed tools.
	case err != nil:
		if delErr := s.projects.DeleteProject(ctx, project.ID); delErr != nil {
			s.logger.Error("failed to roll back project after sandbox failure",
				"project_id", project.ID, "error", delErr)
		}
		return fmt.Errorf("failed to create sandbox: %w", err)
	default:
		if bindErr := s.projects.SetSandbox(ctx, project.ID, sb.ID); bindErr != nil {
			if delErr := s.sandboxes.Delete(ctx, sb.ID); delErr != nil {
				s.logger.Error("failed to release sandbox after bind failure",
					"sandbox_id", sb.ID, "error", delErr)
			}
			if delErr := s.projects.DeleteProject(ctx, project.ID); delErr != nil {
				s.logger.Error("failed to roll back project after bind failure",
					"project_id", project.ID, "error", delErr)
			}
			return fmt.Errorf("failed to bind sandbox: %w", bindErr)
		}
	}

	thread, err := s.threads.CreateThread(ctx, models.CreateThreadRequest{
		AccountID: agent.AccountID,
		ProjectID: project.ID,
		Metadata: map[string]any{
			models.MetaTriggerID:        trig.ID,
			models.MetaTriggerExecution: true,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create thread: %w", err)
	}

	prompt := renderPrompt(verdict.Prompt, payload, eventSlug(trig, verdict, payload), webhookID)
	if _, err := s.messages.Append(ctx, models.CreateMessageRequest{
		ThreadID:     thread.ID,
		Type:         models.MessageTypeUser,
		IsLLMMessage: true,
		Content:      prompt,
		AgentID:      trig.AgentID,
	}); err != nil {
		return fmt.Errorf("failed to create initial message: %w", err)
	}

	model, err := s.agents.ResolveModel(ctx, trig.AgentID, s.defaultModel)
	if err != nil {
		return fmt.Errorf("failed to resolve model: %w", err)
	}
	if err := s.credits.CheckModelAccess(ctx, agent.AccountID, model); err != nil {
		return fmt.Errorf("model access denied for account %s: %w", agent.AccountID, err)
	}

	run, err := s.runs.StartRun(ctx, services.StartRunRequest{
		ThreadID:  thread.ID,
		PodID:     s.podID,
		RequestID: webhookID,
		Metadata:  map[string]any{models.MetaTriggerID: trig.ID},
	})
	if err != nil {
		return fmt.Errorf("failed to start run: %w", err)
	}

	if err := s.queue.MarkActive(ctx, s.podID, run.ID); err != nil {
		// The worker re-registers the key on claim; the orphan scan
		// threshold covers the queued window.
		s.logger.Warn("failed to register run liveness key",
			"run_id", run.ID, "error", err)
	}

	if err := s.queue.Enqueue(ctx, queue.RunRequest{
		RunID:     run.ID,
		ThreadID:  thread.ID,
		AgentID:   trig.AgentID,
		Model:     model,
		RequestID: webhookID,
	}); err != nil {
		if failErr := s.runs.CompleteRun(ctx, run.ID, agentrun.StatusFailed, "failed to enqueue run"); failErr != nil {
			s.logger.Error("failed to mark unqueued run failed",
				"run_id", run.ID, "error", failErr)
		}
		return fmt.Errorf("failed to enqueue run: %w", err)
	}

	s.logger.Info("trigger execution enqueued",
		"trigger_id", trig.ID, "run_id", run.ID,
		"thread_id", thread.ID, "model", model)
	return nil
}

// remoteTriggerID pulls the upstream subscription id from the payload.
// Current deliveries carry it as trigger_nano_id, older ones as id.
func remoteTriggerID(payload map[string]any) string {
	if v, ok := payload["trigger_nano_id"].(string); ok && v != "" {
		return v
	}
	if v, ok := payload["id"].(string); ok && v != "" {
		return v
	}
	return ""
}

// eventSlug resolves the event slug, preferring what the provider
// extracted over the raw payload and the stored config.
func eventSlug(trig *ent.Trigger, verdict models.TriggerResult, payload map[string]any) string {
	if v, ok := verdict.ExecutionVariables[triggers.ConfigTriggerSlug].(string); ok && v != "" {
		return v
	}
	if v, ok := payload[triggers.ConfigTriggerSlug].(string); ok && v != "" {
		return v
	}
	if v, ok := trig.Config[triggers.ConfigTriggerSlug].(string); ok && v != "" {
		return v
	}
	return ""
}

// renderPrompt substitutes the template variables and appends the raw
// event as a fenced block, so the agent sees the full payload even when
// a custom prompt references none of it.
func renderPrompt(template string, payload map[string]any, slug, webhookID string) string {
	raw, err := json.Marshal(payload)
	if err != nil {
		raw = []byte("{}")
	}
	out := strings.ReplaceAll(template, "{{payload}}", string(raw))
	out = strings.ReplaceAll(out, "{{trigger_slug}}", slug)
	out = strings.ReplaceAll(out, "{{webhook_id}}", webhookID)
	return fmt.Sprintf("%s\n\nContext:\n```json\n%s\n```", out, raw)
}
