package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kitchen-planner-api/internal/dto"
	"kitchen-planner-api/internal/response"
	"kitchen-planner-api/internal/storage"
)

func (e *testEnv) imageService(t *testing.T) (ImageService, string) {
	t.Helper()
	root := t.TempDir()
	store, err := storage.NewLocalImageStore(root)
	require.NoError(t, err)
	return NewImageService(store, e.repos, e.metrics, e.events, e.logger), root
}

func TestImageName(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		suffix   string
	}{
		{"성공: 일반 파일명", "camp.jpg", "_camp.jpg"},
		{"성공: 경로 제거", "../../etc/passwd", "_passwd"},
		{"성공: 윈도우 경로 제거", `C:\photos\camp.png`, "_camp.png"},
		{"성공: 빈 파일명", "", "_image"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := imageName(tt.filename)
			assert.True(t, strings.HasSuffix(got, tt.suffix), got)
			assert.NotContains(t, got, "/")
		})
	}
}

func TestImageService_ProjectImageLifecycle(t *testing.T) {
	env := setupTestEnv(t)
	svc, root := env.imageService(t)
	ctx := context.Background()

	projectID, err := env.projectService().CreateProject(ctx, fallCamp(), "")
	require.NoError(t, err)

	_, err = svc.GetProjectImage(ctx, projectID)
	requireCode(t, err, response.ErrCodeNotFound)

	version, err := svc.SaveProjectImage(ctx, projectID, "camp.jpg", strings.NewReader("first"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	data, err := svc.GetProjectImage(ctx, projectID)
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), data)

	version, err = svc.SaveProjectImage(ctx, projectID, "camp.jpg", strings.NewReader("second"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)

	entries, err := os.ReadDir(filepath.Join(root, string(storage.CategoryProjects)))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "previous image removed")

	project, err := env.projectService().GetProject(ctx, projectID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), project.ImageVersionNumber)
	assert.Equal(t, int64(0), project.VersionNumber, "image changes leave the data version alone")

	events := env.events.Events()
	require.Len(t, events, 2)
	assert.Equal(t, dto.ProjectEvent{Type: dto.ProjectEventImageUpdated, ProjectID: projectID, ImageVersion: 2}, events[1])

	version, err = svc.DeleteProjectImage(ctx, projectID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), version)

	_, err = svc.GetProjectImage(ctx, projectID)
	requireCode(t, err, response.ErrCodeNotFound)
	_, err = svc.DeleteProjectImage(ctx, projectID)
	requireCode(t, err, response.ErrCodeNotFound)
}

func TestImageService_RecipeImage(t *testing.T) {
	env := setupTestEnv(t)
	svc, root := env.imageService(t)
	ctx := context.Background()
	recipeID := createRecipe(t, env, "Stew")

	version, err := svc.SaveRecipeImage(ctx, recipeID, "stew.png", bytes.NewReader([]byte{1, 2, 3}))
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	recipe, err := env.recipeService().GetRecipe(ctx, recipeID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), recipe.ImageVersion)
	assert.Equal(t, int64(0), recipe.Version)

	entries, err := os.ReadDir(filepath.Join(root, string(storage.CategoryRecipes)))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NoError(t, os.Remove(filepath.Join(root, string(storage.CategoryRecipes), entries[0].Name())))

	_, err = svc.GetRecipeImage(ctx, recipeID)
	requireCode(t, err, response.ErrCodeNotFound)

	_, err = svc.SaveRecipeImage(ctx, recipeID+1, "x.png", strings.NewReader("x"))
	requireCode(t, err, response.ErrCodeNotFound)

	assert.Empty(t, env.events.Events(), "recipe images publish no project events")
}

func TestImageService_StoreFailures(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	recipeID := createRecipe(t, env, "Stew")
	ioErr := errors.New("disk on fire")

	var deleted []string
	store := &MockImageStore{
		SaveFunc: func(ctx context.Context, category storage.Category, name string, r io.Reader) error {
			return ioErr
		},
		LoadFunc: func(ctx context.Context, category storage.Category, name string) ([]byte, error) {
			return nil, ioErr
		},
		DeleteFunc: func(ctx context.Context, category storage.Category, name string) error {
			deleted = append(deleted, name)
			return nil
		},
	}
	svc := NewImageService(store, env.repos, env.metrics, env.events, env.logger)

	_, err := svc.SaveRecipeImage(ctx, recipeID, "stew.png", strings.NewReader("x"))
	requireCode(t, err, response.ErrCodeIO)

	store.SaveFunc = func(ctx context.Context, category storage.Category, name string, r io.Reader) error {
		return nil
	}
	_, err = svc.SaveRecipeImage(ctx, recipeID, "stew.png", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Empty(t, deleted, "no previous image to delete")

	_, err = svc.GetRecipeImage(ctx, recipeID)
	requireCode(t, err, response.ErrCodeIO)

	assert.Equal(t, 1.0, counterValue(t, env.metrics.ImageUploadsTotal.WithLabelValues(string(storage.CategoryRecipes))))
}
