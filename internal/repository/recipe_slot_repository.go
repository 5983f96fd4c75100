package repository

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"kitchen-planner-api/internal/database"
	"kitchen-planner-api/internal/domain"
)

// RecipeSlotRepository defines the interface for main and alternative recipe assignments
type RecipeSlotRepository interface {
	CreateMain(ctx context.Context, slots []domain.MainRecipeSlot) error
	CreateAlternatives(ctx context.Context, slots []domain.AlternativeRecipeSlot) error
	FindMainByProjectID(ctx context.Context, projectID int64) ([]domain.MainRecipeSlot, error)
	FindAlternativesByProjectID(ctx context.Context, projectID int64) ([]domain.AlternativeRecipeSlot, error)
	FindProjectIDsByRecipeID(ctx context.Context, recipeID int64) ([]int64, error)
	DeleteByRecipeID(ctx context.Context, recipeID int64) error
}

type recipeSlotRepositoryImpl struct {
	db *gorm.DB
}

// NewRecipeSlotRepository creates a new instance of RecipeSlotRepository
func NewRecipeSlotRepository(db *gorm.DB) RecipeSlotRepository {
	return &recipeSlotRepositoryImpl{db: db}
}

func (r *recipeSlotRepositoryImpl) CreateMain(ctx context.Context, slots []domain.MainRecipeSlot) error {
	if len(slots) == 0 {
		return nil
	}
	return database.Conn(ctx, r.db).Create(&slots).Error
}

func (r *recipeSlotRepositoryImpl) CreateAlternatives(ctx context.Context, slots []domain.AlternativeRecipeSlot) error {
	if len(slots) == 0 {
		return nil
	}
	return database.Conn(ctx, r.db).Create(&slots).Error
}

// FindMainByProjectID returns the main slots of a project ordered by date, then meal sequence
func (r *recipeSlotRepositoryImpl) FindMainByProjectID(ctx context.Context, projectID int64) ([]domain.MainRecipeSlot, error) {
	var slots []domain.MainRecipeSlot
	if err := inMealOrder(database.Conn(ctx, r.db), "main_recipe_slots", projectID).
		Order("main_recipe_slots.recipe_id").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

// FindAlternativesByProjectID returns the alternative slots ordered by date, meal sequence and recipe
func (r *recipeSlotRepositoryImpl) FindAlternativesByProjectID(ctx context.Context, projectID int64) ([]domain.AlternativeRecipeSlot, error) {
	var slots []domain.AlternativeRecipeSlot
	if err := inMealOrder(database.Conn(ctx, r.db), "alternative_recipe_slots", projectID).
		Order("alternative_recipe_slots.recipe_id").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

// FindProjectIDsByRecipeID returns the distinct projects with a main or alternative slot on the recipe, ordered by id
func (r *recipeSlotRepositoryImpl) FindProjectIDsByRecipeID(ctx context.Context, recipeID int64) ([]int64, error) {
	db := database.Conn(ctx, r.db)
	var main, alternative []int64
	if err := db.Model(&domain.MainRecipeSlot{}).Where("recipe_id = ?", recipeID).
		Distinct().Pluck("project_id", &main).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.AlternativeRecipeSlot{}).Where("recipe_id = ?", recipeID).
		Distinct().Pluck("project_id", &alternative).Error; err != nil {
		return nil, err
	}

	seen := make(map[int64]struct{}, len(main)+len(alternative))
	ids := make([]int64, 0, len(main)+len(alternative))
	for _, id := range append(main, alternative...) {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// DeleteByRecipeID removes every main and alternative slot that references the recipe
func (r *recipeSlotRepositoryImpl) DeleteByRecipeID(ctx context.Context, recipeID int64) error {
	db := database.Conn(ctx, r.db)
	if err := db.Where("recipe_id = ?", recipeID).Delete(&domain.AlternativeRecipeSlot{}).Error; err != nil {
		return err
	}
	return db.Where("recipe_id = ?", recipeID).Delete(&domain.MainRecipeSlot{}).Error
}

// inMealOrder scopes a slot-like table to one project and orders it by date
// and the sequence of the referenced meal.
func inMealOrder(db *gorm.DB, table string, projectID int64) *gorm.DB {
	return db.Table(table).
		Select(table+".*").
		Joins("LEFT JOIN meals ON meals.project_id = "+table+".project_id AND meals.name = "+table+".meal_name").
		Where(table+".project_id = ?", projectID).
		Order(table + ".date").
		Order("meals.sequence").
		Order(table + ".meal_name")
}
