package service

import (
	"context"

	"go.uber.org/zap"

	"kitchen-planner-api/internal/database"
	"kitchen-planner-api/internal/domain"
	"kitchen-planner-api/internal/dto"
	"kitchen-planner-api/internal/metrics"
	"kitchen-planner-api/internal/repository"
	"kitchen-planner-api/internal/response"
)

// RecipeService defines the interface for recipe business logic
type RecipeService interface {
	SaveNewRecipe(ctx context.Context, req *dto.Recipe) (int64, error)
	UpdateRecipe(ctx context.Context, req *dto.Recipe) (int64, error)
	GetRecipe(ctx context.Context, id int64) (*dto.Recipe, error)
	ListRecipeStubs(ctx context.Context) ([]dto.RecipeStub, error)
	GetRecipeVersion(ctx context.Context, id int64) (*dto.VersionNumbers, error)
	DeleteRecipe(ctx context.Context, id int64) error
}

type recipeServiceImpl struct {
	tx      database.Transactor
	repos   *repository.Repositories
	metrics *metrics.Metrics
	events  EventPublisher
	logger  *zap.Logger
}

// NewRecipeService creates a new instance of RecipeService
func NewRecipeService(tx database.Transactor, repos *repository.Repositories, m *metrics.Metrics, events EventPublisher, logger *zap.Logger) RecipeService {
	return &recipeServiceImpl{
		tx:      tx,
		repos:   repos,
		metrics: m,
		events:  events,
		logger:  logger,
	}
}

func validateRecipe(req *dto.Recipe) error {
	if isBlank(req.Name) {
		return response.NewValidationError("Recipe name must not be blank")
	}
	if req.NumberOfPeople < 0 {
		return response.NewValidationError("Number of people must not be negative")
	}
	return nil
}

// recipeComponents converts the payload lists into rows for recipeID
func recipeComponents(recipeID int64, req *dto.Recipe) repository.RecipeComponents {
	var c repository.RecipeComponents

	for _, group := range []struct {
		names []string
		typ   domain.DietaryType
	}{
		{req.Traces, domain.DietaryTypeTrace},
		{req.Allergens, domain.DietaryTypeAllergen},
		{req.FreeOfAllergen, domain.DietaryTypeFreeOf},
	} {
		for _, name := range uniqueStrings(group.names) {
			c.DietarySpecialities = append(c.DietarySpecialities, domain.DietarySpeciality{
				RecipeID:   recipeID,
				Speciality: name,
				Type:       group.typ,
			})
		}
	}

	for i, text := range req.Instructions {
		c.Instructions = append(c.Instructions, domain.Instruction{RecipeID: recipeID, StepNumber: i, Text: text})
	}

	for _, ing := range req.Ingredients {
		c.Ingredients = append(c.Ingredients, domain.Ingredient{
			RecipeID:        recipeID,
			Name:            ing.Name,
			IngredientGroup: ing.IngredientGroup,
			Amount:          ing.Amount,
			Unit:            ing.Unit,
		})
	}
	return c
}

// SaveNewRecipe stores a recipe with version 0 and returns its id
func (s *recipeServiceImpl) SaveNewRecipe(ctx context.Context, req *dto.Recipe) (int64, error) {
	if err := validateRecipe(req); err != nil {
		return 0, err
	}

	recipe := &domain.Recipe{
		Name:           req.Name,
		Description:    req.Description,
		NumberOfPeople: req.NumberOfPeople,
	}
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.repos.Recipes.Create(ctx, recipe); err != nil {
			return err
		}
		return s.repos.RecipeComponents.Create(ctx, recipeComponents(recipe.ID, req))
	})
	if err != nil {
		return 0, internalError(s.logger, err, "create recipe")
	}

	if s.metrics != nil {
		s.metrics.IncrementRecipeCreated()
	}
	s.logger.Info("Recipe created", zap.Int64("recipe_id", recipe.ID))
	return recipe.ID, nil
}

// UpdateRecipe replaces metadata and components and returns the new version
func (s *recipeServiceImpl) UpdateRecipe(ctx context.Context, req *dto.Recipe) (int64, error) {
	if err := validateRecipe(req); err != nil {
		return 0, err
	}

	var version int64
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		version, err = s.repos.Recipes.UpdateDetails(ctx, req.ID, req.Name, req.Description, req.NumberOfPeople)
		if err != nil {
			return err
		}
		if err := s.repos.RecipeComponents.DeleteByRecipeID(ctx, req.ID); err != nil {
			return err
		}
		return s.repos.RecipeComponents.Create(ctx, recipeComponents(req.ID, req))
	})
	if err != nil {
		return 0, notFoundOr(s.logger, err, "Recipe", req.ID, "update recipe")
	}
	return version, nil
}

// GetRecipe reassembles the recipe aggregate
func (s *recipeServiceImpl) GetRecipe(ctx context.Context, id int64) (*dto.Recipe, error) {
	recipe, err := s.repos.Recipes.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(s.logger, err, "Recipe", id, "fetch recipe")
	}
	components, err := s.repos.RecipeComponents.FindByRecipeID(ctx, id)
	if err != nil {
		return nil, internalError(s.logger, err, "fetch recipe components")
	}

	result := &dto.Recipe{
		ID:             recipe.ID,
		Name:           recipe.Name,
		Description:    recipe.Description,
		NumberOfPeople: recipe.NumberOfPeople,
		Version:        recipe.Version,
		ImageVersion:   recipe.ImageVersion,
		Traces:         []string{},
		Allergens:      []string{},
		FreeOfAllergen: []string{},
		Instructions:   make([]string, 0, len(components.Instructions)),
		Ingredients:    make([]dto.Ingredient, 0, len(components.Ingredients)),
	}

	for _, sp := range components.DietarySpecialities {
		switch sp.Type {
		case domain.DietaryTypeTrace:
			result.Traces = append(result.Traces, sp.Speciality)
		case domain.DietaryTypeAllergen:
			result.Allergens = append(result.Allergens, sp.Speciality)
		case domain.DietaryTypeFreeOf:
			result.FreeOfAllergen = append(result.FreeOfAllergen, sp.Speciality)
		}
	}
	for _, in := range components.Instructions {
		result.Instructions = append(result.Instructions, in.Text)
	}
	for _, ing := range components.Ingredients {
		result.Ingredients = append(result.Ingredients, dto.Ingredient{
			Name:            ing.Name,
			IngredientGroup: ing.IngredientGroup,
			Amount:          ing.Amount,
			Unit:            ing.Unit,
		})
	}
	return result, nil
}

// ListRecipeStubs returns every recipe without components, ordered by id
func (s *recipeServiceImpl) ListRecipeStubs(ctx context.Context) ([]dto.RecipeStub, error) {
	recipes, err := s.repos.Recipes.FindAll(ctx)
	if err != nil {
		return nil, internalError(s.logger, err, "list recipes")
	}
	result := make([]dto.RecipeStub, 0, len(recipes))
	for _, r := range recipes {
		result = append(result, dto.RecipeStub{
			ID:           r.ID,
			Name:         r.Name,
			Version:      r.Version,
			ImageVersion: r.ImageVersion,
			ImageURI:     r.ImageURI,
		})
	}
	return result, nil
}

// GetRecipeVersion returns the data and image version of a recipe
func (s *recipeServiceImpl) GetRecipeVersion(ctx context.Context, id int64) (*dto.VersionNumbers, error) {
	recipe, err := s.repos.Recipes.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(s.logger, err, "Recipe", id, "fetch recipe")
	}
	return &dto.VersionNumbers{DataVersion: recipe.Version, ImageVersion: recipe.ImageVersion}, nil
}

// DeleteRecipe removes the recipe, its components and every project slot using it.
// Each project that lost a slot gets a new version. The stored image is left for
// the cleanup job.
func (s *recipeServiceImpl) DeleteRecipe(ctx context.Context, id int64) error {
	var touched []*domain.Project
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.repos.Recipes.FindByID(ctx, id); err != nil {
			return err
		}
		projectIDs, err := s.repos.RecipeSlots.FindProjectIDsByRecipeID(ctx, id)
		if err != nil {
			return err
		}
		if err := s.repos.RecipeComponents.DeleteByRecipeID(ctx, id); err != nil {
			return err
		}
		if err := s.repos.RecipeSlots.DeleteByRecipeID(ctx, id); err != nil {
			return err
		}
		for _, projectID := range projectIDs {
			if _, err := s.repos.Projects.BumpVersion(ctx, projectID); err != nil {
				return err
			}
			project, err := s.repos.Projects.FindByID(ctx, projectID)
			if err != nil {
				return err
			}
			touched = append(touched, project)
		}
		return s.repos.Recipes.Delete(ctx, id)
	})
	if err != nil {
		return notFoundOr(s.logger, err, "Recipe", id, "delete recipe")
	}

	for _, project := range touched {
		publish(s.events, dto.ProjectEvent{
			Type:         dto.ProjectEventUpdated,
			ProjectID:    project.ID,
			DataVersion:  project.ProjectVersion,
			ImageVersion: project.ImageVersion,
		})
	}
	return nil
}
