package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftlabs/weft/pkg/models"
	testdb "github.com/weftlabs/weft/test/database"
)

func TestProjectService_CreateProject(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProjectService(client.Client)
	ctx := context.Background()

	t.Run("creates project with metadata", func(t *testing.T) {
		p, err := service.CreateProject(ctx, models.CreateProjectRequest{
			AccountID: "acct-1",
			Name:      "data pipeline",
			Metadata:  map[string]any{"repo": "github.com/acme/pipeline"},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, "data pipeline", p.Name)
		assert.Equal(t, "github.com/acme/pipeline", p.Metadata["repo"])
		assert.Nil(t, p.SandboxID)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.CreateProject(ctx, models.CreateProjectRequest{Name: "orphan"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
		assert.Contains(t, err.Error(), "account_id")

		_, err = service.CreateProject(ctx, models.CreateProjectRequest{AccountID: "acct-1"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
	})
}

func TestProjectService_SetSandbox(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProjectService(client.Client)
	ctx := context.Background()

	p, err := service.CreateProject(ctx, models.CreateProjectRequest{
		AccountID: "acct-1",
		Name:      "sandboxed",
	})
	require.NoError(t, err)

	require.NoError(t, service.SetSandbox(ctx, p.ID, "sbx-42"))

	got, err := service.GetProject(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got.SandboxID)
	assert.Equal(t, "sbx-42", *got.SandboxID)

	t.Run("returns ErrNotFound for missing project", func(t *testing.T) {
		err := service.SetSandbox(ctx, "missing", "sbx-1")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestProjectService_ListProjects(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProjectService(client.Client)
	ctx := context.Background()

	now := time.Now()
	ages := map[string]time.Duration{
		"proj-old": 2 * time.Hour,
		"proj-new": 1 * time.Hour,
	}
	for id, age := range ages {
		_, err := client.Project.Create().
			SetID(id).
			SetAccountID("acct-list").
			SetName(id).
			SetCreatedAt(now.Add(-age)).
			Save(ctx)
		require.NoError(t, err)
	}
	_, err := service.CreateProject(ctx, models.CreateProjectRequest{
		AccountID: "acct-other",
		Name:      "unrelated",
	})
	require.NoError(t, err)

	projects, err := service.ListProjects(ctx, "acct-list")
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "proj-new", projects[0].ID)
	assert.Equal(t, "proj-old", projects[1].ID)
}

func TestProjectService_DeleteProject(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProjectService(client.Client)
	ctx := context.Background()

	p, err := service.CreateProject(ctx, models.CreateProjectRequest{
		AccountID: "acct-1",
		Name:      "temp",
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteProject(ctx, p.ID))
	_, err = service.GetProject(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	t.Run("returns ErrNotFound for missing project", func(t *testing.T) {
		err := service.DeleteProject(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
