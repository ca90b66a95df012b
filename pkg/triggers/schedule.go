package triggers

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/weftlabs/weft/ent"
	"github.com/weftlabs/weft/pkg/models"
)

// cronJobTimeoutMS bounds the scheduler-side POST to the webhook endpoint.
const cronJobTimeoutMS = 8000

// cronParser accepts standard 5-field expressions.
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ScheduleProvider registers database-side cron jobs (pg_cron + pg_net)
// that deliver to the trigger webhook endpoint on schedule. The database
// is the scheduler, so jobs survive process restarts and fire exactly once
// across replicas.
type ScheduleProvider struct {
	db      *sql.DB
	baseURL string
	secret  string
	logger  *slog.Logger
}

// NewScheduleProvider creates a schedule adapter. baseURL is the externally
// reachable root of this service; secret is sent as x-trigger-secret on
// every scheduled delivery.
func NewScheduleProvider(db *sql.DB, baseURL, secret string) *ScheduleProvider {
	return &ScheduleProvider{
		db:      db,
		baseURL: strings.TrimRight(baseURL, "/"),
		secret:  secret,
		logger:  slog.With("component", "schedule_provider"),
	}
}

// ProviderID implements Provider.
func (p *ScheduleProvider) ProviderID() string { return "schedule" }

// TriggerType implements Provider.
func (p *ScheduleProvider) TriggerType() string { return models.TriggerTypeSchedule }

// ValidateConfig implements Provider.
func (p *ScheduleProvider) ValidateConfig(config map[string]any) (map[string]any, error) {
	if config == nil {
		config = make(map[string]any)
	}

	expr := stringField(config, ConfigCronExpression)
	if expr == "" {
		return nil, fmt.Errorf("cron_expression is required")
	}
	if _, err := cronParser.Parse(expr); err != nil {
		return nil, fmt.Errorf("invalid cron_expression %q: %w", expr, err)
	}

	tz := stringField(config, ConfigTimezone)
	if tz == "" {
		tz = "UTC"
		config[ConfigTimezone] = tz
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", tz, err)
	}

	if err := validateExecutionRoute(config, true); err != nil {
		return nil, err
	}

	config[ConfigProviderID] = p.ProviderID()
	return config, nil
}

// SetupTrigger implements Provider: it registers the pg_cron job.
func (p *ScheduleProvider) SetupTrigger(ctx context.Context, trigger *ent.Trigger) error {
	expr := stringField(trigger.Config, ConfigCronExpression)
	tz := stringField(trigger.Config, ConfigTimezone)

	utcExpr, err := cronToUTC(expr, tz)
	if err != nil {
		return fmt.Errorf("failed to translate cron to UTC: %w", err)
	}

	body, err := json.Marshal(scheduleDelivery{
		TriggerID:     trigger.ID,
		AgentID:       trigger.AgentID,
		ExecutionType: stringField(trigger.Config, ConfigExecutionType),
		AgentPrompt:   stringField(trigger.Config, ConfigAgentPrompt),
		WorkflowID:    stringField(trigger.Config, ConfigWorkflowID),
		WorkflowInput: trigger.Config[ConfigWorkflowInput],
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to encode delivery body: %w", err)
	}

	command := fmt.Sprintf(
		`SELECT net.http_post(url := %s, headers := %s::jsonb, body := %s::jsonb, timeout_milliseconds := %d)`,
		quoteLiteral(fmt.Sprintf("%s/api/triggers/%s/webhook", p.baseURL, trigger.ID)),
		quoteLiteral(fmt.Sprintf(`{"Content-Type": "application/json", "x-trigger-secret": %s}`, mustJSONString(p.secret))),
		quoteLiteral(string(body)),
		cronJobTimeoutMS,
	)

	_, err = p.db.ExecContext(ctx, `SELECT cron.schedule($1, $2, $3)`, jobName(trigger.ID), utcExpr, command)
	if err != nil {
		return fmt.Errorf("failed to schedule cron job: %w", err)
	}

	p.logger.Info("scheduled trigger job",
		"trigger_id", trigger.ID,
		"cron_expression", utcExpr,
		"timezone", tz)
	return nil
}

// TeardownTrigger implements Provider: it unschedules the named job.
// A job missing on the scheduler side is not an error; teardown must be
// idempotent because delete removes the row before calling it.
func (p *ScheduleProvider) TeardownTrigger(ctx context.Context, trigger *ent.Trigger) error {
	_, err := p.db.ExecContext(ctx, `SELECT cron.unschedule($1)`, jobName(trigger.ID))
	if err != nil {
		if strings.Contains(err.Error(), "could not find") || strings.Contains(err.Error(), "does not exist") {
			p.logger.Debug("cron job already gone", "trigger_id", trigger.ID)
			return nil
		}
		return fmt.Errorf("failed to unschedule cron job: %w", err)
	}
	return nil
}

// ProcessEvent implements Provider. Raw data is the body the scheduler
// POSTed; the stored config is authoritative for the prompt and route.
func (p *ScheduleProvider) ProcessEvent(_ context.Context, trigger *ent.Trigger, rawData map[string]any) (models.TriggerResult, error) {
	execType := stringField(trigger.Config, ConfigExecutionType)
	prompt := stringField(trigger.Config, ConfigAgentPrompt)
	if prompt == "" {
		prompt = stringField(rawData, ConfigAgentPrompt)
	}

	vars := map[string]any{
		ConfigExecutionType: execType,
	}
	if wf := stringField(trigger.Config, ConfigWorkflowID); wf != "" {
		vars[ConfigWorkflowID] = wf
	}
	if wi, ok := trigger.Config[ConfigWorkflowInput]; ok {
		vars[ConfigWorkflowInput] = wi
	}
	if ts, ok := rawData["timestamp"]; ok {
		vars["scheduled_at"] = ts
	}

	return models.TriggerResult{
		Success:            true,
		ShouldExecute:      true,
		Prompt:             prompt,
		ExecutionVariables: vars,
	}, nil
}

// scheduleDelivery is the body pg_cron POSTs to the webhook endpoint.
type scheduleDelivery struct {
	TriggerID     string `json:"trigger_id"`
	AgentID       string `json:"agent_id"`
	ExecutionType string `json:"execution_type"`
	AgentPrompt   string `json:"agent_prompt,omitempty"`
	WorkflowID    string `json:"workflow_id,omitempty"`
	WorkflowInput any    `json:"workflow_input,omitempty"`
	Timestamp     string `json:"timestamp"`
}

// jobName derives the pg_cron job name for a trigger.
func jobName(triggerID string) string {
	return "trigger_" + triggerID
}

// cronToUTC shifts a fixed-time cron expression from tz into UTC. Only
// expressions with a numeric minute and hour are shifted; interval and
// wildcard forms (*/15, ranges, lists) run in server time unchanged
// because an offset would corrupt their meaning.
func cronToUTC(expr, tz string) (string, error) {
	if tz == "" || strings.EqualFold(tz, "UTC") {
		return expr, nil
	}

	fields := strings.Fields(expr)
	if len(fields) != 5 {
		return expr, nil
	}

	minute, err1 := strconv.Atoi(fields[0])
	hour, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil {
		return expr, nil
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return "", fmt.Errorf("invalid timezone %q: %w", tz, err)
	}

	// Anchor on today's occurrence; DST shifts around the year are an
	// accepted approximation of the zone offset.
	now := time.Now().In(loc)
	local := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, loc)
	utc := local.UTC()

	fields[0] = strconv.Itoa(utc.Minute())
	fields[1] = strconv.Itoa(utc.Hour())
	return strings.Join(fields, " "), nil
}

// quoteLiteral renders a Postgres string literal for embedding inside a
// cron job command (the command itself is passed as a parameter; values
// inside it cannot be).
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// mustJSONString encodes a string as a JSON string literal.
func mustJSONString(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(b)
}
