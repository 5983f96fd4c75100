package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"kitchen-planner-api/internal/database"
	"kitchen-planner-api/internal/domain"
)

// InvitationRepository defines the interface for project invitation tokens
type InvitationRepository interface {
	Create(ctx context.Context, invitation *domain.ProjectInvitation) error
	FindValid(ctx context.Context, token string, now time.Time) (*domain.ProjectInvitation, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type invitationRepositoryImpl struct {
	db *gorm.DB
}

// NewInvitationRepository creates a new instance of InvitationRepository
func NewInvitationRepository(db *gorm.DB) InvitationRepository {
	return &invitationRepositoryImpl{db: db}
}

func (r *invitationRepositoryImpl) Create(ctx context.Context, invitation *domain.ProjectInvitation) error {
	return database.Conn(ctx, r.db).Create(invitation).Error
}

// FindValid returns the invitation for token if it has not expired at now
func (r *invitationRepositoryImpl) FindValid(ctx context.Context, token string, now time.Time) (*domain.ProjectInvitation, error) {
	var invitation domain.ProjectInvitation
	if err := database.Conn(ctx, r.db).
		Where("token = ? AND expires_at > ?", token, now).
		First(&invitation).Error; err != nil {
		return nil, err
	}
	return &invitation, nil
}

// DeleteExpired removes invitations that expired before now and returns how many were removed
func (r *invitationRepositoryImpl) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := database.Conn(ctx, r.db).
		Where("expires_at <= ?", now).
		Delete(&domain.ProjectInvitation{})
	return result.RowsAffected, result.Error
}
