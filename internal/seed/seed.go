package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"kitchen-planner-api/internal/domain"
	"kitchen-planner-api/internal/dto"
	"kitchen-planner-api/internal/service"
)

// UserLookup reports whether the demo user already exists
type UserLookup interface {
	FindByName(ctx context.Context, name string) (*domain.User, error)
}

// Preloader fills an empty database with a demo account, a recipe and a project
type Preloader struct {
	users       UserLookup
	credentials service.CredentialsService
	recipes     service.RecipeService
	projects    service.ProjectService
	logger      *zap.Logger
}

func NewPreloader(users UserLookup, credentials service.CredentialsService, recipes service.RecipeService, projects service.ProjectService, logger *zap.Logger) *Preloader {
	return &Preloader{
		users:       users,
		credentials: credentials,
		recipes:     recipes,
		projects:    projects,
		logger:      logger,
	}
}

func day(d int) time.Time {
	return time.Date(2024, time.August, d, 0, 0, 0, 0, time.UTC)
}

// DemoRecipe is the recipe stored by Seed
func DemoRecipe() *dto.Recipe {
	return &dto.Recipe{
		Name:           "Kartoffelsuppe",
		Description:    "Einfache Suppe für große Gruppen",
		NumberOfPeople: 10,
		Allergens:      []string{"Sellerie"},
		FreeOfAllergen: []string{"Ei", "Laktose"},
		Instructions:   []string{"Gemüse schälen und würfeln", "In Brühe weich kochen", "Pürieren und abschmecken"},
		Ingredients: []dto.Ingredient{
			{Name: "Kartoffeln", IngredientGroup: "Gemüse", Amount: 2, Unit: "kg"},
			{Name: "Karotten", IngredientGroup: "Gemüse", Amount: 500, Unit: "g"},
			{Name: "Sellerie", IngredientGroup: "Gemüse", Amount: 1, Unit: ""},
			{Name: "Gemüsebrühe", IngredientGroup: "Flüssigkeit", Amount: 3, Unit: "l"},
		},
	}
}

// DemoProject is the project stored by Seed; recipeID fills the first dinner slot
func DemoProject(recipeID int64) *dto.Project {
	return &dto.Project{
		Name:      "Testprojekt",
		Meals:     []string{"Mittagessen", "Abendessen"},
		StartDate: day(22),
		EndDate:   day(28),
		AllergenPeople: []dto.AllergenPerson{{
			Name:          "Bob",
			ArrivalDate:   day(22),
			DepartureDate: day(25),
			ArrivalMeal:   "Mittagessen",
			DepartureMeal: "Abendessen",
			Allergen:      []string{"Ei"},
			Traces:        []string{"Laktose"},
		}},
		Recipes: []dto.RecipeForProject{{
			Date:       day(22),
			Meal:       "Abendessen",
			RecipeID:   recipeID,
			MainRecipe: true,
		}},
	}
}

// Seed stores the demo data owned by username. It returns false without
// changes when the user already exists.
func (p *Preloader) Seed(ctx context.Context, username, password string) (bool, error) {
	if _, err := p.users.FindByName(ctx, username); err == nil {
		p.logger.Info("Seed user already exists, skipping", zap.String("username", username))
		return false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to look up seed user: %w", err)
	}

	created, err := p.credentials.Register(ctx, username, password)
	if err != nil {
		return false, fmt.Errorf("failed to register seed user: %w", err)
	}
	if !created {
		return false, nil
	}

	recipeID, err := p.recipes.SaveNewRecipe(ctx, DemoRecipe())
	if err != nil {
		return false, fmt.Errorf("failed to save seed recipe: %w", err)
	}

	projectID, err := p.projects.CreateProject(ctx, DemoProject(recipeID), username)
	if err != nil {
		return false, fmt.Errorf("failed to save seed project: %w", err)
	}

	p.logger.Info("Database seeded",
		zap.String("username", username),
		zap.Int64("recipe_id", recipeID),
		zap.Int64("project_id", projectID),
	)
	return true, nil
}
