package repository

import (
	"context"

	"gorm.io/gorm"

	"kitchen-planner-api/internal/database"
	"kitchen-planner-api/internal/domain"
)

// PersonNumberChangeRepository defines the interface for headcount changes
type PersonNumberChangeRepository interface {
	CreateBatch(ctx context.Context, changes []domain.PersonNumberChange) error
	FindByProjectID(ctx context.Context, projectID int64) ([]domain.PersonNumberChange, error)
}

type personNumberChangeRepositoryImpl struct {
	db *gorm.DB
}

// NewPersonNumberChangeRepository creates a new instance of PersonNumberChangeRepository
func NewPersonNumberChangeRepository(db *gorm.DB) PersonNumberChangeRepository {
	return &personNumberChangeRepositoryImpl{db: db}
}

func (r *personNumberChangeRepositoryImpl) CreateBatch(ctx context.Context, changes []domain.PersonNumberChange) error {
	if len(changes) == 0 {
		return nil
	}
	return database.Conn(ctx, r.db).Create(&changes).Error
}

// FindByProjectID returns the changes of a project ordered by date, then meal sequence
func (r *personNumberChangeRepositoryImpl) FindByProjectID(ctx context.Context, projectID int64) ([]domain.PersonNumberChange, error) {
	var changes []domain.PersonNumberChange
	if err := inMealOrder(database.Conn(ctx, r.db), "person_number_changes", projectID).
		Find(&changes).Error; err != nil {
		return nil, err
	}
	return changes, nil
}
