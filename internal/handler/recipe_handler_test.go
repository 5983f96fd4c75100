package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kitchen-planner-api/internal/dto"
	"kitchen-planner-api/internal/response"
)

func setupRecipeRouter(svc *MockRecipeService) *gin.Engine {
	r := newTestRouter()
	h := NewRecipeHandler(svc)
	r.POST("/recipes/create", h.CreateRecipe)
	r.GET("/recipes/", h.ListRecipeStubs)
	r.GET("/recipes/:id", h.GetRecipe)
	r.PUT("/recipes/:id", h.UpdateRecipe)
	r.DELETE("/recipes/:id", h.DeleteRecipe)
	r.GET("/recipes/:id/version", h.GetRecipeVersion)
	return r
}

func TestRecipeHandler_Create(t *testing.T) {
	svc := &MockRecipeService{
		SaveNewRecipeFunc: func(ctx context.Context, req *dto.Recipe) (int64, error) {
			if req.Name == "" {
				return 0, response.NewValidationError("Recipe name must not be blank")
			}
			return 7, nil
		},
	}
	r := setupRecipeRouter(svc)

	w := performRequest(t, r, http.MethodPost, "/recipes/create", dto.Recipe{Name: "Pancakes"})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "7", w.Body.String())
	assert.Equal(t, "/recipes/7", w.Header().Get("Location"))

	w = performRequest(t, r, http.MethodPost, "/recipes/create", dto.Recipe{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Recipe name must not be blank", w.Body.String())
}

func TestRecipeHandler_GetUpdateDelete(t *testing.T) {
	deleted := false
	svc := &MockRecipeService{
		GetRecipeFunc: func(ctx context.Context, id int64) (*dto.Recipe, error) {
			return &dto.Recipe{ID: id, Name: "Pancakes", Instructions: []string{"Mix"}}, nil
		},
		UpdateRecipeFunc: func(ctx context.Context, req *dto.Recipe) (int64, error) {
			return 2, nil
		},
		DeleteRecipeFunc: func(ctx context.Context, id int64) error {
			if deleted {
				return response.NewNotFoundError("Recipe", "")
			}
			deleted = true
			return nil
		},
	}
	r := setupRecipeRouter(svc)

	w := performRequest(t, r, http.MethodGet, "/recipes/7", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got dto.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, []string{"Mix"}, got.Instructions)

	w = performRequest(t, r, http.MethodPut, "/recipes/7", dto.Recipe{ID: 7, Name: "Crepes"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2", w.Body.String())

	w = performRequest(t, r, http.MethodPut, "/recipes/7", dto.Recipe{ID: 8, Name: "Crepes"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, http.StatusNoContent, performRequest(t, r, http.MethodDelete, "/recipes/7", nil).Code)
	assert.Equal(t, http.StatusNotFound, performRequest(t, r, http.MethodDelete, "/recipes/7", nil).Code)
}

func TestRecipeHandler_ListAndVersion(t *testing.T) {
	svc := &MockRecipeService{
		ListRecipeStubsFunc: func(ctx context.Context) ([]dto.RecipeStub, error) {
			return []dto.RecipeStub{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}, nil
		},
		GetRecipeVersionFunc: func(ctx context.Context, id int64) (*dto.VersionNumbers, error) {
			return nil, response.NewNotFoundError("Recipe", "")
		},
	}
	r := setupRecipeRouter(svc)

	w := performRequest(t, r, http.MethodGet, "/recipes/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stubs []dto.RecipeStub
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stubs))
	assert.Len(t, stubs, 2)

	assert.Equal(t, http.StatusNotFound, performRequest(t, r, http.MethodGet, "/recipes/9/version", nil).Code)
}
