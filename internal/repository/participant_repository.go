package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kitchen-planner-api/internal/database"
	"kitchen-planner-api/internal/domain"
)

// ParticipantRepository defines the interface for project membership
type ParticipantRepository interface {
	Add(ctx context.Context, projectID, userID int64) error
	Remove(ctx context.Context, projectID, userID int64) (bool, error)
	Exists(ctx context.Context, projectID, userID int64) (bool, error)
	CountByProjectID(ctx context.Context, projectID int64) (int64, error)
}

type participantRepositoryImpl struct {
	db *gorm.DB
}

// NewParticipantRepository creates a new instance of ParticipantRepository
func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepositoryImpl{db: db}
}

// Add inserts the membership. Adding an existing member is a no-op.
func (r *participantRepositoryImpl) Add(ctx context.Context, projectID, userID int64) error {
	participant := domain.ProjectParticipant{
		ProjectID: projectID,
		UserID:    userID,
		JoinedAt:  time.Now().UTC(),
	}
	return database.Conn(ctx, r.db).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&participant).Error
}

// Remove deletes the membership and reports whether the user was a participant
func (r *participantRepositoryImpl) Remove(ctx context.Context, projectID, userID int64) (bool, error) {
	result := database.Conn(ctx, r.db).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&domain.ProjectParticipant{})
	return result.RowsAffected > 0, result.Error
}

func (r *participantRepositoryImpl) Exists(ctx context.Context, projectID, userID int64) (bool, error) {
	var n int64
	err := database.Conn(ctx, r.db).
		Model(&domain.ProjectParticipant{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&n).Error
	return n > 0, err
}

func (r *participantRepositoryImpl) CountByProjectID(ctx context.Context, projectID int64) (int64, error) {
	var n int64
	err := database.Conn(ctx, r.db).
		Model(&domain.ProjectParticipant{}).
		Where("project_id = ?", projectID).
		Count(&n).Error
	return n, err
}
