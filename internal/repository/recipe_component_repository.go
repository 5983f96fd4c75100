package repository

import (
	"context"

	"gorm.io/gorm"

	"kitchen-planner-api/internal/database"
	"kitchen-planner-api/internal/domain"
)

// RecipeComponents are the child rows of one recipe
type RecipeComponents struct {
	Ingredients         []domain.Ingredient
	Instructions        []domain.Instruction
	DietarySpecialities []domain.DietarySpeciality
}

// RecipeComponentRepository defines the interface for ingredients, instructions and dietary specialities
type RecipeComponentRepository interface {
	Create(ctx context.Context, components RecipeComponents) error
	FindByRecipeID(ctx context.Context, recipeID int64) (*RecipeComponents, error)
	DeleteByRecipeID(ctx context.Context, recipeID int64) error
}

type recipeComponentRepositoryImpl struct {
	db *gorm.DB
}

// NewRecipeComponentRepository creates a new instance of RecipeComponentRepository
func NewRecipeComponentRepository(db *gorm.DB) RecipeComponentRepository {
	return &recipeComponentRepositoryImpl{db: db}
}

func (r *recipeComponentRepositoryImpl) Create(ctx context.Context, c RecipeComponents) error {
	db := database.Conn(ctx, r.db)
	if len(c.Ingredients) > 0 {
		if err := db.Create(&c.Ingredients).Error; err != nil {
			return err
		}
	}
	if len(c.Instructions) > 0 {
		if err := db.Create(&c.Instructions).Error; err != nil {
			return err
		}
	}
	if len(c.DietarySpecialities) > 0 {
		if err := db.Create(&c.DietarySpecialities).Error; err != nil {
			return err
		}
	}
	return nil
}

// FindByRecipeID loads ingredients in insertion order, instructions by step
// and specialities by type and name
func (r *recipeComponentRepositoryImpl) FindByRecipeID(ctx context.Context, recipeID int64) (*RecipeComponents, error) {
	db := database.Conn(ctx, r.db)
	var c RecipeComponents

	if err := db.Where("recipe_id = ?", recipeID).Order("id").Find(&c.Ingredients).Error; err != nil {
		return nil, err
	}
	if err := db.Where("recipe_id = ?", recipeID).Order("step_number").Find(&c.Instructions).Error; err != nil {
		return nil, err
	}
	if err := db.Where("recipe_id = ?", recipeID).Order("type").Order("speciality").Find(&c.DietarySpecialities).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *recipeComponentRepositoryImpl) DeleteByRecipeID(ctx context.Context, recipeID int64) error {
	db := database.Conn(ctx, r.db)
	for _, model := range []interface{}{&domain.Ingredient{}, &domain.Instruction{}, &domain.DietarySpeciality{}} {
		if err := db.Where("recipe_id = ?", recipeID).Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}
