package repository

import (
	"context"

	"gorm.io/gorm"

	"kitchen-planner-api/internal/database"
	"kitchen-planner-api/internal/domain"
)

// MealRepository defines the interface for meal data access
type MealRepository interface {
	CreateBatch(ctx context.Context, meals []domain.Meal) error
	FindByProjectID(ctx context.Context, projectID int64) ([]domain.Meal, error)
}

type mealRepositoryImpl struct {
	db *gorm.DB
}

// NewMealRepository creates a new instance of MealRepository
func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepositoryImpl{db: db}
}

func (r *mealRepositoryImpl) CreateBatch(ctx context.Context, meals []domain.Meal) error {
	if len(meals) == 0 {
		return nil
	}
	return database.Conn(ctx, r.db).Create(&meals).Error
}

// FindByProjectID returns the meals of a project in display order
func (r *mealRepositoryImpl) FindByProjectID(ctx context.Context, projectID int64) ([]domain.Meal, error) {
	var meals []domain.Meal
	if err := database.Conn(ctx, r.db).
		Where("project_id = ?", projectID).
		Order("sequence").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}
