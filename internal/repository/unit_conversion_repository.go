package repository

import (
	"context"

	"gorm.io/gorm"

	"kitchen-planner-api/internal/database"
	"kitchen-planner-api/internal/domain"
)

// UnitConversionRepository defines the interface for unit conversion data access
type UnitConversionRepository interface {
	CreateBatch(ctx context.Context, conversions []domain.UnitConversion) error
	FindByProjectID(ctx context.Context, projectID int64) ([]domain.UnitConversion, error)
}

type unitConversionRepositoryImpl struct {
	db *gorm.DB
}

// NewUnitConversionRepository creates a new instance of UnitConversionRepository
func NewUnitConversionRepository(db *gorm.DB) UnitConversionRepository {
	return &unitConversionRepositoryImpl{db: db}
}

func (r *unitConversionRepositoryImpl) CreateBatch(ctx context.Context, conversions []domain.UnitConversion) error {
	if len(conversions) == 0 {
		return nil
	}
	return database.Conn(ctx, r.db).Create(&conversions).Error
}

func (r *unitConversionRepositoryImpl) FindByProjectID(ctx context.Context, projectID int64) ([]domain.UnitConversion, error) {
	var conversions []domain.UnitConversion
	if err := database.Conn(ctx, r.db).
		Where("project_id = ?", projectID).
		Order("source_unit").Order("destination_unit").Order("ingredient").
		Find(&conversions).Error; err != nil {
		return nil, err
	}
	return conversions, nil
}
