package repository

import (
	"context"

	"gorm.io/gorm"

	"kitchen-planner-api/internal/database"
	"kitchen-planner-api/internal/domain"
)

// AllergenRepository defines the interface for allergen people and their allergens
type AllergenRepository interface {
	CreatePeople(ctx context.Context, people []domain.AllergenPerson) error
	CreateAllergens(ctx context.Context, allergens []domain.Allergen) error
	FindPeopleByProjectID(ctx context.Context, projectID int64) ([]domain.AllergenPerson, error)
	FindAllergensByProjectID(ctx context.Context, projectID int64) ([]domain.Allergen, error)
}

type allergenRepositoryImpl struct {
	db *gorm.DB
}

// NewAllergenRepository creates a new instance of AllergenRepository
func NewAllergenRepository(db *gorm.DB) AllergenRepository {
	return &allergenRepositoryImpl{db: db}
}

func (r *allergenRepositoryImpl) CreatePeople(ctx context.Context, people []domain.AllergenPerson) error {
	if len(people) == 0 {
		return nil
	}
	return database.Conn(ctx, r.db).Create(&people).Error
}

func (r *allergenRepositoryImpl) CreateAllergens(ctx context.Context, allergens []domain.Allergen) error {
	if len(allergens) == 0 {
		return nil
	}
	return database.Conn(ctx, r.db).Create(&allergens).Error
}

// FindPeopleByProjectID returns the allergen people of a project ordered by name
func (r *allergenRepositoryImpl) FindPeopleByProjectID(ctx context.Context, projectID int64) ([]domain.AllergenPerson, error) {
	var people []domain.AllergenPerson
	if err := database.Conn(ctx, r.db).
		Where("project_id = ?", projectID).
		Order("name").
		Find(&people).Error; err != nil {
		return nil, err
	}
	return people, nil
}

// FindAllergensByProjectID returns all allergens and traces of a project ordered by person and name
func (r *allergenRepositoryImpl) FindAllergensByProjectID(ctx context.Context, projectID int64) ([]domain.Allergen, error) {
	var allergens []domain.Allergen
	if err := database.Conn(ctx, r.db).
		Where("project_id = ?", projectID).
		Order("person_name").
		Order("name").
		Find(&allergens).Error; err != nil {
		return nil, err
	}
	return allergens, nil
}
