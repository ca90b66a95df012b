package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/weftlabs/weft/ent"
	"github.com/weftlabs/weft/ent/project"
	"github.com/weftlabs/weft/pkg/models"
)

// ProjectService manages projects and their sandbox bindings
type ProjectService struct {
	client *ent.Client
}

// NewProjectService creates a new ProjectService
func NewProjectService(client *ent.Client) *ProjectService {
	return &ProjectService{client: client}
}

// CreateProject creates a new project
func (s *ProjectService) CreateProject(_ context.Context, req models.CreateProjectRequest) (*ent.Project, error) {
	if req.AccountID == "" {
		return nil, NewValidationError("account_id", "required")
	}
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.Project.Create().
		SetID(uuid.New().String()).
		SetAccountID(req.AccountID).
		SetName(req.Name)

	if req.Metadata != nil {
		builder.SetMetadata(req.Metadata)
	}

	p, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return p, nil
}

// GetProject retrieves a project by ID
func (s *ProjectService) GetProject(ctx context.Context, projectID string) (*ent.Project, error) {
	p, err := s.client.Project.Get(ctx, projectID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// ListProjects retrieves projects for an account, newest first
func (s *ProjectService) ListProjects(ctx context.Context, accountID string) ([]*ent.Project, error) {
	projects, err := s.client.Project.Query().
		Where(project.AccountIDEQ(accountID)).
		Order(ent.Desc(project.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// SetSandbox records the sandbox backing the project.
func (s *ProjectService) SetSandbox(_ context.Context, projectID, sandboxID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Project.UpdateOneID(projectID).
		SetSandboxID(sandboxID).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set project sandbox: %w", err)
	}
	return nil
}

// DeleteProject removes a project row. Thread rows keep their project_id
// column until cascaded by the caller; sandbox teardown is the caller's job.
func (s *ProjectService) DeleteProject(_ context.Context, projectID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Project.DeleteOneID(projectID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
