package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/weftlabs/weft/ent"
	"github.com/weftlabs/weft/ent/agent"
)

// AgentService manages agent definitions. Agents here are the minimal
// projection runs and triggers need: a name, a model and a system prompt.
type AgentService struct {
	client *ent.Client
}

// NewAgentService creates a new AgentService
func NewAgentService(client *ent.Client) *AgentService {
	return &AgentService{client: client}
}

// CreateAgentRequest carries agent creation parameters.
type CreateAgentRequest struct {
	AccountID    string `json:"account_id"`
	Name         string `json:"name"`
	Model        string `json:"model,omitempty"`
	SystemPrompt string `json:"system_prompt,omitempty"`
	IsDefault    bool   `json:"is_default,omitempty"`
}

// CreateAgent creates a new agent
func (s *AgentService) CreateAgent(_ context.Context, req CreateAgentRequest) (*ent.Agent, error) {
	if req.AccountID == "" {
		return nil, NewValidationError("account_id", "required")
	}
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.Agent.Create().
		SetID(uuid.New().String()).
		SetAccountID(req.AccountID).
		SetName(req.Name).
		SetIsDefault(req.IsDefault)

	if req.Model != "" {
		builder.SetModel(req.Model)
	}
	if req.SystemPrompt != "" {
		builder.SetSystemPrompt(req.SystemPrompt)
	}

	a, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	return a, nil
}

// GetAgent retrieves an agent by ID
func (s *AgentService) GetAgent(ctx context.Context, agentID string) (*ent.Agent, error) {
	a, err := s.client.Agent.Get(ctx, agentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	return a, nil
}

// GetDefaultAgent returns the account's default agent, if any.
func (s *AgentService) GetDefaultAgent(ctx context.Context, accountID string) (*ent.Agent, error) {
	a, err := s.client.Agent.Query().
		Where(
			agent.AccountIDEQ(accountID),
			agent.IsDefaultEQ(true),
		).
		Order(ent.Desc(agent.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get default agent: %w", err)
	}
	return a, nil
}

// ResolveModel returns the agent's model or the fallback when unset.
func (s *AgentService) ResolveModel(ctx context.Context, agentID, fallback string) (string, error) {
	a, err := s.GetAgent(ctx, agentID)
	if err != nil {
		return "", err
	}
	if a.Model != nil && *a.Model != "" {
		return *a.Model, nil
	}
	return fallback, nil
}

// DeleteAgent removes an agent and, via cascade, its triggers.
func (s *AgentService) DeleteAgent(_ context.Context, agentID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Agent.DeleteOneID(agentID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete agent: %w", err)
	}
	return nil
}
