package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kitchen-planner-api/internal/database"
	"kitchen-planner-api/internal/domain"
)

// RecipeRepository defines the interface for recipe data access
type RecipeRepository interface {
	Create(ctx context.Context, recipe *domain.Recipe) error
	FindByID(ctx context.Context, id int64) (*domain.Recipe, error)
	FindAll(ctx context.Context) ([]domain.Recipe, error)
	FindExistingIDs(ctx context.Context, ids []int64) ([]int64, error)
	UpdateDetails(ctx context.Context, id int64, name, description string, numberOfPeople int) (int64, error)
	UpdateImage(ctx context.Context, id int64, imageURI string) (int64, error)
	ListImageURIs(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type recipeRepositoryImpl struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new instance of RecipeRepository
func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepositoryImpl{db: db}
}

// Create inserts the recipe row only
func (r *recipeRepositoryImpl) Create(ctx context.Context, recipe *domain.Recipe) error {
	return database.Conn(ctx, r.db).Omit(clause.Associations).Create(recipe).Error
}

func (r *recipeRepositoryImpl) FindByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	var recipe domain.Recipe
	if err := database.Conn(ctx, r.db).First(&recipe, id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// FindAll returns every recipe ordered by id, without components
func (r *recipeRepositoryImpl) FindAll(ctx context.Context) ([]domain.Recipe, error) {
	var recipes []domain.Recipe
	if err := database.Conn(ctx, r.db).Order("id").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// FindExistingIDs returns the subset of ids that refer to stored recipes
func (r *recipeRepositoryImpl) FindExistingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return []int64{}, nil
	}
	var found []int64
	err := database.Conn(ctx, r.db).
		Model(&domain.Recipe{}).
		Where("id IN ?", ids).
		Pluck("id", &found).Error
	return found, err
}

// UpdateDetails replaces the metadata, bumps version and returns the new version
func (r *recipeRepositoryImpl) UpdateDetails(ctx context.Context, id int64, name, description string, numberOfPeople int) (int64, error) {
	return r.bump(ctx, id, "version", map[string]interface{}{
		"name":             name,
		"description":      description,
		"number_of_people": numberOfPeople,
	})
}

// UpdateImage records the stored image name, bumps image_version and returns the new version
func (r *recipeRepositoryImpl) UpdateImage(ctx context.Context, id int64, imageURI string) (int64, error) {
	return r.bump(ctx, id, "image_version", map[string]interface{}{
		"image_uri": imageURI,
	})
}

func (r *recipeRepositoryImpl) bump(ctx context.Context, id int64, column string, values map[string]interface{}) (int64, error) {
	db := database.Conn(ctx, r.db)
	values[column] = gorm.Expr(column + " + 1")

	result := db.Model(&domain.Recipe{}).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}

	var versions []int64
	if err := db.Model(&domain.Recipe{}).Where("id = ?", id).Pluck(column, &versions).Error; err != nil {
		return 0, err
	}
	if len(versions) == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return versions[0], nil
}

// ListImageURIs returns every non-empty recipe image name
func (r *recipeRepositoryImpl) ListImageURIs(ctx context.Context) ([]string, error) {
	var uris []string
	err := database.Conn(ctx, r.db).
		Model(&domain.Recipe{}).
		Where("image_uri <> ''").
		Pluck("image_uri", &uris).Error
	return uris, err
}

func (r *recipeRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var n int64
	err := database.Conn(ctx, r.db).Model(&domain.Recipe{}).Count(&n).Error
	return n, err
}

// Delete removes the recipe row. Components and slots must be removed first.
func (r *recipeRepositoryImpl) Delete(ctx context.Context, id int64) error {
	result := database.Conn(ctx, r.db).Delete(&domain.Recipe{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
