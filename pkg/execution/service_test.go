package execution

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftlabs/weft/ent"
	"github.com/weftlabs/weft/ent/agentrun"
	"github.com/weftlabs/weft/pkg/models"
	"github.com/weftlabs/weft/pkg/queue"
	"github.com/weftlabs/weft/pkg/sandbox"
	"github.com/weftlabs/weft/pkg/services"
)

type fakeMatcher struct {
	mu        sync.Mutex
	matches   []*ent.Trigger
	matchErr  error
	verdict   models.TriggerResult
	procErr   error
	processed []string
}

func (f *fakeMatcher) MatchEventTriggers(context.Context, string) ([]*ent.Trigger, error) {
	return f.matches, f.matchErr
}

func (f *fakeMatcher) ProcessEvent(_ context.Context, triggerID string, _ map[string]any) (models.TriggerResult, error) {
	f.mu.Lock()
	f.processed = append(f.processed, triggerID)
	f.mu.Unlock()
	if f.procErr != nil {
		return models.TriggerResult{}, f.procErr
	}
	return f.verdict, nil
}

func (f *fakeMatcher) processedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.processed...)
}

type fakeProjectStore struct {
	mu        sync.Mutex
	created   []models.CreateProjectRequest
	deleted   []string
	bound     map[string]string
	createErr error
	bindErr   error
}

func (f *fakeProjectStore) CreateProject(_ context.Context, req models.CreateProjectRequest) (*ent.Project, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, req)
	return &ent.Project{
		ID:        fmt.Sprintf("project-%d", len(f.created)),
		AccountID: req.AccountID,
		Name:      req.Name,
	}, nil
}

func (f *fakeProjectStore) SetSandbox(_ context.Context, projectID, sandboxID string) error {
	if f.bindErr != nil {
		return f.bindErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.bound == nil {
		f.bound = make(map[string]string)
	}
	f.bound[projectID] = sandboxID
	return nil
}

func (f *fakeProjectStore) DeleteProject(_ context.Context, projectID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, projectID)
	return nil
}

type fakeSandboxes struct {
	mu      sync.Mutex
	created []string
	deleted []string
	err     error
}

func (f *fakeSandboxes) Create(_ context.Context, projectID string) (*sandbox.Sandbox, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, projectID)
	return &sandbox.Sandbox{ID: "sb-" + projectID}, nil
}

func (f *fakeSandboxes) Delete(_ context.Context, sandboxID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, sandboxID)
	return nil
}

type fakeThreadStore struct {
	mu      sync.Mutex
	created []models.CreateThreadRequest
	err     error
}

func (f *fakeThreadStore) CreateThread(_ context.Context, req models.CreateThreadRequest) (*ent.Thread, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, req)
	return &ent.Thread{
		ID:        fmt.Sprintf("thread-%d", len(f.created)),
		AccountID: req.AccountID,
	}, nil
}

type fakeMessageStore struct {
	mu       sync.Mutex
	appended []models.CreateMessageRequest
	err      error
}

func (f *fakeMessageStore) Append(_ context.Context, req models.CreateMessageRequest) (*ent.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appended = append(f.appended, req)
	return &ent.Message{ID: fmt.Sprintf("message-%d", len(f.appended))}, nil
}

type fakeAgentStore struct {
	agent *ent.Agent
	err   error
}

func (f *fakeAgentStore) GetAgent(context.Context, string) (*ent.Agent, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.agent, nil
}

func (f *fakeAgentStore) ResolveModel(_ context.Context, _, fallback string) (string, error) {
	if f.agent != nil && f.agent.Model != nil && *f.agent.Model != "" {
		return *f.agent.Model, nil
	}
	return fallback, nil
}

type fakeCredits struct {
	err error
}

func (f *fakeCredits) CheckModelAccess(context.Context, string, string) error {
	return f.err
}

type fakeRunStore struct {
	mu        sync.Mutex
	started   []services.StartRunRequest
	completed []string
	startErr  error
}

func (f *fakeRunStore) StartRun(_ context.Context, req services.StartRunRequest) (*ent.AgentRun, error) {
	if f.startErr != nil {
		return nil, f.startErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.started = append(f.started, req)
	return &ent.AgentRun{
		ID:       fmt.Sprintf("run-%d", len(f.started)),
		ThreadID: req.ThreadID,
	}, nil
}

func (f *fakeRunStore) CompleteRun(_ context.Context, runID string, _ agentrun.Status, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.completed = append(f.completed, runID)
	return nil
}

type fakeRunQueue struct {
	mu       sync.Mutex
	enqueued []queue.RunRequest
	marked   []string
	enqErr   error
}

func (f *fakeRunQueue) Enqueue(_ context.Context, req queue.RunRequest) error {
	if f.enqErr != nil {
		return f.enqErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enqueued = append(f.enqueued, req)
	return nil
}

func (f *fakeRunQueue) MarkActive(_ context.Context, _, runID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.marked = append(f.marked, runID)
	return nil
}

type serviceFixture struct {
	svc       *Service
	matcher   *fakeMatcher
	projects  *fakeProjectStore
	sandboxes *fakeSandboxes
	threads   *fakeThreadStore
	messages  *fakeMessageStore
	agents    *fakeAgentStore
	credits   *fakeCredits
	runs      *fakeRunStore
	queue     *fakeRunQueue
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	f := &serviceFixture{
		matcher:   &fakeMatcher{},
		projects:  &fakeProjectStore{},
		sandboxes: &fakeSandboxes{},
		threads:   &fakeThreadStore{},
		messages:  &fakeMessageStore{},
		agents: &fakeAgentStore{agent: &ent.Agent{
			ID:        "agent-1",
			AccountID: "acct-1",
			Name:      "responder",
		}},
		credits: &fakeCredits{},
		runs:    &fakeRunStore{},
		queue:   &fakeRunQueue{},
	}
	f.svc = NewService(Deps{
		Verifier:     NewVerifier(testSecret()),
		Redis:        rdb,
		Triggers:     f.matcher,
		Projects:     f.projects,
		Sandboxes:    f.sandboxes,
		Threads:      f.threads,
		Messages:     f.messages,
		Agents:       f.agents,
		Credits:      f.credits,
		Runs:         f.runs,
		Queue:        f.queue,
		PodID:        "pod-test",
		DefaultModel: "anthropic/claude-sonnet-4-20250514",
	})
	return f
}

// delivery signs a body the way an upstream sender would.
func (f *serviceFixture) delivery(t *testing.T, webhookID string, body []byte) Delivery {
	t.Helper()
	ts := nowTS()
	sig := base64.StdEncoding.EncodeToString(sign(signKey, webhookID+"."+ts+"."+string(body)))
	return Delivery{ID: webhookID, Timestamp: ts, Signature: "v1," + sig, Body: body}
}

func eventTrigger(id string) *ent.Trigger {
	return &ent.Trigger{
		ID:          id,
		AgentID:     "agent-1",
		ProviderID:  "composio",
		TriggerType: models.TriggerTypeEvent,
		Name:        "issue-opened",
		IsActive:    true,
		Config: map[string]any{
			"composio_trigger_id": "trig_remote_1",
			"trigger_slug":        "GITHUB_ISSUE_OPENED",
		},
	}
}

func TestHandleWebhook_ExecutesMatchedTrigger(t *testing.T) {
	f := newServiceFixture(t)
	f.matcher.matches = []*ent.Trigger{eventTrigger("trigger-1")}
	f.matcher.verdict = models.TriggerResult{
		Success:       true,
		ShouldExecute: true,
		Prompt:        "Handle the {{trigger_slug}} event (delivery {{webhook_id}}).",
		ExecutionVariables: map[string]any{
			"trigger_slug": "GITHUB_ISSUE_OPENED",
		},
	}

	body := []byte(`{"trigger_nano_id":"trig_remote_1","payload":{"issue":7}}`)
	res, err := f.svc.HandleWebhook(t.Context(), f.delivery(t, "msg_1", body))
	require.NoError(t, err)
	assert.Equal(t, Result{Success: true, MatchedTriggers: 1, Executed: 1}, res)

	require.Len(t, f.projects.created, 1)
	assert.Equal(t, "acct-1", f.projects.created[0].AccountID)
	assert.Equal(t, "Trigger: issue-opened", f.projects.created[0].Name)
	assert.Equal(t, "sb-project-1", f.projects.bound["project-1"])

	require.Len(t, f.threads.created, 1)
	meta := f.threads.created[0].Metadata
	assert.Equal(t, "trigger-1", meta[models.MetaTriggerID])
	assert.Equal(t, true, meta[models.MetaTriggerExecution])

	require.Len(t, f.messages.appended, 1)
	msg := f.messages.appended[0]
	assert.Equal(t, "thread-1", msg.ThreadID)
	assert.Equal(t, models.MessageTypeUser, msg.Type)
	assert.True(t, msg.IsLLMMessage)
	prompt, ok := msg.Content.(string)
	require.True(t, ok)
	assert.Contains(t, prompt, "GITHUB_ISSUE_OPENED")
	assert.Contains(t, prompt, "msg_1")
	assert.Contains(t, prompt, "```json")
	assert.NotContains(t, prompt, "{{trigger_slug}}")

	require.Len(t, f.runs.started, 1)
	assert.Equal(t, "thread-1", f.runs.started[0].ThreadID)
	assert.Equal(t, "pod-test", f.runs.started[0].PodID)
	assert.Equal(t, "msg_1", f.runs.started[0].RequestID)

	assert.Equal(t, []string{"run-1"}, f.queue.marked)
	require.Len(t, f.queue.enqueued, 1)
	assert.Equal(t, queue.RunRequest{
		RunID:     "run-1",
		ThreadID:  "thread-1",
		AgentID:   "agent-1",
		Model:     "anthropic/claude-sonnet-4-20250514",
		RequestID: "msg_1",
	}, f.queue.enqueued[0])
}

func TestHandleWebhook_RejectsBadSignature(t *testing.T) {
	f := newServiceFixture(t)
	f.matcher.matches = []*ent.Trigger{eventTrigger("trigger-1")}

	d := f.delivery(t, "msg_1", []byte(`{"trigger_nano_id":"trig_remote_1"}`))
	d.Signature = "v1," + base64.StdEncoding.EncodeToString([]byte("forged-signature-bytes-1"))

	_, err := f.svc.HandleWebhook(t.Context(), d)
	require.ErrorIs(t, err, ErrVerificationFailed)

	// Rejected deliveries must leave no trace.
	assert.Empty(t, f.matcher.processedIDs())
	assert.Empty(t, f.projects.created)
	assert.Empty(t, f.runs.started)
}

func TestHandleWebhook_DuplicateDeliveryShortCircuits(t *testing.T) {
	f := newServiceFixture(t)
	f.matcher.matches = []*ent.Trigger{eventTrigger("trigger-1")}
	f.matcher.verdict = models.TriggerResult{Success: true, ShouldExecute: true, Prompt: "go"}

	d := f.delivery(t, "msg_dup", []byte(`{"trigger_nano_id":"trig_remote_1"}`))

	first, err := f.svc.HandleWebhook(t.Context(), d)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Executed)

	second, err := f.svc.HandleWebhook(t.Context(), d)
	require.NoError(t, err)
	assert.Equal(t, Result{Success: true}, second)

	// The replay produced no second run.
	assert.Len(t, f.runs.started, 1)
}

func TestHandleWebhook_NoMatches(t *testing.T) {
	f := newServiceFixture(t)

	res, err := f.svc.HandleWebhook(t.Context(),
		f.delivery(t, "msg_1", []byte(`{"trigger_nano_id":"trig_unknown"}`)))
	require.NoError(t, err)
	assert.Equal(t, Result{Success: true}, res)
}

func TestHandleWebhook_NoRemoteID(t *testing.T) {
	f := newServiceFixture(t)
	f.matcher.matches = []*ent.Trigger{eventTrigger("trigger-1")}

	res, err := f.svc.HandleWebhook(t.Context(),
		f.delivery(t, "msg_1", []byte(`{"hello":"world"}`)))
	require.NoError(t, err)
	assert.Equal(t, Result{Success: true}, res)
	assert.Empty(t, f.matcher.processedIDs())
}

func TestHandleWebhook_MalformedPayload(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.svc.HandleWebhook(t.Context(),
		f.delivery(t, "msg_1", []byte(`{not json`)))
	require.ErrorIs(t, err, ErrMalformedPayload)
}

func TestHandleWebhook_VerdictDeclinesExecution(t *testing.T) {
	f := newServiceFixture(t)
	f.matcher.matches = []*ent.Trigger{eventTrigger("trigger-1")}
	f.matcher.verdict = models.TriggerResult{Success: true, ShouldExecute: false}

	res, err := f.svc.HandleWebhook(t.Context(),
		f.delivery(t, "msg_1", []byte(`{"trigger_nano_id":"trig_remote_1"}`)))
	require.NoError(t, err)
	assert.Equal(t, Result{Success: true, MatchedTriggers: 1, Executed: 0}, res)
	assert.Empty(t, f.projects.created)
}

func TestHandleWebhook_SandboxFailureRollsBackProject(t *testing.T) {
	f := newServiceFixture(t)
	f.matcher.matches = []*ent.Trigger{eventTrigger("trigger-1")}
	f.matcher.verdict = models.TriggerResult{Success: true, ShouldExecute: true, Prompt: "go"}
	f.sandboxes.err = errors.New("provisioner down")

	res, err := f.svc.HandleWebhook(t.Context(),
		f.delivery(t, "msg_1", []byte(`{"trigger_nano_id":"trig_remote_1"}`)))
	require.NoError(t, err)
	assert.Equal(t, Result{Success: true, MatchedTriggers: 1, Executed: 0}, res)

	assert.Equal(t, []string{"project-1"}, f.projects.deleted)
	assert.Empty(t, f.threads.created)
	assert.Empty(t, f.runs.started)
}

func TestHandleWebhook_SandboxDisabledRunsWithout(t *testing.T) {
	f := newServiceFixture(t)
	f.matcher.matches = []*ent.Trigger{eventTrigger("trigger-1")}
	f.matcher.verdict = models.TriggerResult{Success: true, ShouldExecute: true, Prompt: "go"}
	f.sandboxes.err = sandbox.ErrDisabled

	res, err := f.svc.HandleWebhook(t.Context(),
		f.delivery(t, "msg_1", []byte(`{"trigger_nano_id":"trig_remote_1"}`)))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Executed)

	assert.Empty(t, f.projects.bound)
	assert.Empty(t, f.projects.deleted)
	assert.Len(t, f.queue.enqueued, 1)
}

func TestHandleWebhook_BindFailureReleasesSandbox(t *testing.T) {
	f := newServiceFixture(t)
	f.matcher.matches = []*ent.Trigger{eventTrigger("trigger-1")}
	f.matcher.verdict = models.TriggerResult{Success: true, ShouldExecute: true, Prompt: "go"}
	f.projects.bindErr = errors.New("row vanished")

	res, err := f.svc.HandleWebhook(t.Context(),
		f.delivery(t, "msg_1", []byte(`{"trigger_nano_id":"trig_remote_1"}`)))
	require.NoError(t, err)
	assert.Equal(t, 0, res.Executed)

	assert.Equal(t, []string{"sb-project-1"}, f.sandboxes.deleted)
	assert.Equal(t, []string{"project-1"}, f.projects.deleted)
}

func TestHandleWebhook_CreditDenialStopsBeforeRun(t *testing.T) {
	f := newServiceFixture(t)
	f.matcher.matches = []*ent.Trigger{eventTrigger("trigger-1")}
	f.matcher.verdict = models.TriggerResult{Success: true, ShouldExecute: true, Prompt: "go"}
	f.credits.err = services.ErrInsufficientCredits

	res, err := f.svc.HandleWebhook(t.Context(),
		f.delivery(t, "msg_1", []byte(`{"trigger_nano_id":"trig_remote_1"}`)))
	require.NoError(t, err)
	assert.Equal(t, Result{Success: true, MatchedTriggers: 1, Executed: 0}, res)

	// The workspace exists for inspection but nothing was enqueued.
	assert.Len(t, f.messages.appended, 1)
	assert.Empty(t, f.runs.started)
	assert.Empty(t, f.queue.enqueued)
}

func TestHandleWebhook_EnqueueFailureFailsRun(t *testing.T) {
	f := newServiceFixture(t)
	f.matcher.matches = []*ent.Trigger{eventTrigger("trigger-1")}
	f.matcher.verdict = models.TriggerResult{Success: true, ShouldExecute: true, Prompt: "go"}
	f.queue.enqErr = errors.New("redis unavailable")

	res, err := f.svc.HandleWebhook(t.Context(),
		f.delivery(t, "msg_1", []byte(`{"trigger_nano_id":"trig_remote_1"}`)))
	require.NoError(t, err)
	assert.Equal(t, 0, res.Executed)

	// The run row must not stay running with nothing queued behind it.
	assert.Equal(t, []string{"run-1"}, f.runs.completed)
}

func TestHandleWebhook_OneBadTriggerDoesNotBlockPeers(t *testing.T) {
	f := newServiceFixture(t)
	f.matcher.matches = []*ent.Trigger{eventTrigger("trigger-1"), eventTrigger("trigger-2")}
	f.matcher.verdict = models.TriggerResult{Success: true, ShouldExecute: true, Prompt: "go"}

	// First trigger's agent lookup fails once, then recovers for the peer.
	calls := 0
	f.svc.agents = agentFunc(func(ctx context.Context, agentID string) (*ent.Agent, error) {
		calls++
		if calls == 1 {
			return nil, services.ErrNotFound
		}
		return &ent.Agent{ID: agentID, AccountID: "acct-1", Name: "responder"}, nil
	})

	res, err := f.svc.HandleWebhook(t.Context(),
		f.delivery(t, "msg_1", []byte(`{"trigger_nano_id":"trig_remote_1"}`)))
	require.NoError(t, err)
	assert.Equal(t, Result{Success: true, MatchedTriggers: 2, Executed: 1}, res)
}

// agentFunc adapts a function to AgentResolver for per-call scripting.
type agentFunc func(ctx context.Context, agentID string) (*ent.Agent, error)

func (f agentFunc) GetAgent(ctx context.Context, agentID string) (*ent.Agent, error) {
	return f(ctx, agentID)
}

func (f agentFunc) ResolveModel(_ context.Context, _, fallback string) (string, error) {
	return fallback, nil
}

func TestHandleWebhook_MatchQueryFailure(t *testing.T) {
	f := newServiceFixture(t)
	f.matcher.matchErr = errors.New("database gone")

	_, err := f.svc.HandleWebhook(t.Context(),
		f.delivery(t, "msg_1", []byte(`{"trigger_nano_id":"trig_remote_1"}`)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to match triggers")
}

func TestHandleWebhook_ProcessEventFailureAbsorbed(t *testing.T) {
	f := newServiceFixture(t)
	f.matcher.matches = []*ent.Trigger{eventTrigger("trigger-1")}
	f.matcher.procErr = errors.New("provider exploded")

	res, err := f.svc.HandleWebhook(t.Context(),
		f.delivery(t, "msg_1", []byte(`{"trigger_nano_id":"trig_remote_1"}`)))
	require.NoError(t, err)
	assert.Equal(t, Result{Success: true, MatchedTriggers: 1, Executed: 0}, res)
}

func TestExecuteTrigger_StartsRunOnVerdict(t *testing.T) {
	f := newServiceFixture(t)
	f.matcher.verdict = models.TriggerResult{
		Success:       true,
		ShouldExecute: true,
		Prompt:        "Run the scheduled task.",
	}

	res, err := f.svc.ExecuteTrigger(t.Context(), eventTrigger("trigger-1"),
		"sched-1", map[string]any{"execution_type": "agent"})
	require.NoError(t, err)
	assert.Equal(t, Result{Success: true, MatchedTriggers: 1, Executed: 1}, res)
	assert.Equal(t, []string{"trigger-1"}, f.matcher.processedIDs())

	require.Len(t, f.runs.started, 1)
	assert.Equal(t, "sched-1", f.runs.started[0].RequestID)
	require.Len(t, f.queue.enqueued, 1)
}

func TestExecuteTrigger_VerdictDeclines(t *testing.T) {
	f := newServiceFixture(t)
	f.matcher.verdict = models.TriggerResult{Success: true, ShouldExecute: false}

	res, err := f.svc.ExecuteTrigger(t.Context(), eventTrigger("trigger-1"),
		"sched-1", map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, Result{Success: true, MatchedTriggers: 1, Executed: 0}, res)
	assert.Empty(t, f.runs.started)
}

func TestExecuteTrigger_ExecutionFailureSurfaces(t *testing.T) {
	f := newServiceFixture(t)
	f.matcher.verdict = models.TriggerResult{Success: true, ShouldExecute: true}
	f.queue.enqErr = errors.New("redis down")

	_, err := f.svc.ExecuteTrigger(t.Context(), eventTrigger("trigger-1"),
		"sched-1", map[string]any{})
	require.Error(t, err)
	assert.Equal(t, []string{"run-1"}, f.runs.completed)
}

func TestRenderPrompt(t *testing.T) {
	payload := map[string]any{"issue": float64(7)}

	t.Run("substitutes variables", func(t *testing.T) {
		out := renderPrompt("On {{trigger_slug}}: {{payload}} via {{webhook_id}}",
			payload, "ISSUE_OPENED", "msg_9")
		assert.Contains(t, out, "On ISSUE_OPENED:")
		assert.Contains(t, out, `{"issue":7}`)
		assert.Contains(t, out, "via msg_9")
	})

	t.Run("always appends context block", func(t *testing.T) {
		out := renderPrompt("Just do the thing.", payload, "ISSUE_OPENED", "msg_9")
		assert.Contains(t, out, "Context:\n```json\n{\"issue\":7}\n```")
	})
}

func TestRemoteTriggerID(t *testing.T) {
	assert.Equal(t, "trig_a", remoteTriggerID(map[string]any{
		"trigger_nano_id": "trig_a",
		"id":              "trig_b",
	}))
	assert.Equal(t, "trig_b", remoteTriggerID(map[string]any{"id": "trig_b"}))
	assert.Equal(t, "", remoteTriggerID(map[string]any{"other": 1}))
}
