package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kitchen-planner-api/internal/database"
	"kitchen-planner-api/internal/domain"
)

// UserRepository defines the interface for users and their credentials
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	CreateCredentials(ctx context.Context, credentials *domain.Credentials) error
	FindByName(ctx context.Context, name string) (*domain.User, error)
	FindCredentials(ctx context.Context, userID int64) (*domain.Credentials, error)
	Count(ctx context.Context) (int64, error)
}

type userRepositoryImpl struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepositoryImpl{db: db}
}

// Create inserts a user. A taken name fails with gorm.ErrDuplicatedKey.
func (r *userRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	return database.Conn(ctx, r.db).Omit(clause.Associations).Create(user).Error
}

func (r *userRepositoryImpl) CreateCredentials(ctx context.Context, credentials *domain.Credentials) error {
	return database.Conn(ctx, r.db).Create(credentials).Error
}

func (r *userRepositoryImpl) FindByName(ctx context.Context, name string) (*domain.User, error) {
	var user domain.User
	if err := database.Conn(ctx, r.db).Where("name = ?", name).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepositoryImpl) FindCredentials(ctx context.Context, userID int64) (*domain.Credentials, error) {
	var credentials domain.Credentials
	if err := database.Conn(ctx, r.db).Where("user_id = ?", userID).First(&credentials).Error; err != nil {
		return nil, err
	}
	return &credentials, nil
}

func (r *userRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var n int64
	err := database.Conn(ctx, r.db).Model(&domain.User{}).Count(&n).Error
	return n, err
}
