package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kitchen-planner-api/internal/database"
	"kitchen-planner-api/internal/domain"
	"kitchen-planner-api/internal/dto"
	"kitchen-planner-api/internal/metrics"
	"kitchen-planner-api/internal/repository"
	"kitchen-planner-api/internal/response"
	"kitchen-planner-api/internal/token"
)

// CredentialsService registers users and issues session tokens
type CredentialsService interface {
	Register(ctx context.Context, username, password string) (bool, error)
	Login(ctx context.Context, username, password string) (*dto.LoginResult, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
}

type credentialsServiceImpl struct {
	tx         database.Transactor
	users      repository.UserRepository
	tokens     *token.Manager
	revocation token.RevocationStore
	bcryptCost int
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewCredentialsService creates a new instance of CredentialsService
func NewCredentialsService(tx database.Transactor, users repository.UserRepository, tokens *token.Manager, revocation token.RevocationStore, bcryptCost int, m *metrics.Metrics, logger *zap.Logger) CredentialsService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &credentialsServiceImpl{
		tx:         tx,
		users:      users,
		tokens:     tokens,
		revocation: revocation,
		bcryptCost: bcryptCost,
		metrics:    m,
		logger:     logger,
	}
}

// Register creates the user with a bcrypt password hash. A taken username
// returns false without an error.
func (s *credentialsServiceImpl) Register(ctx context.Context, username, password string) (bool, error) {
	if isBlank(username) || password == "" {
		return false, response.NewValidationError("Username and password must not be empty")
	}

	if _, err := s.users.FindByName(ctx, username); err == nil {
		return false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, internalError(s.logger, err, "look up user")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return false, response.NewValidationError("Password is too long")
		}
		return false, internalError(s.logger, err, "hash password")
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		user := &domain.User{Name: username}
		if err := s.users.Create(ctx, user); err != nil {
			return err
		}
		return s.users.CreateCredentials(ctx, &domain.Credentials{UserID: user.ID, PasswordHash: string(hash)})
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// lost a race with a concurrent registration
		return false, nil
	}
	if err != nil {
		return false, internalError(s.logger, err, "register user")
	}

	s.logger.Info("User registered", zap.String("username", username))
	return true, nil
}

// Login verifies the password and issues a token. Unknown users and wrong
// passwords get an empty result.
func (s *credentialsServiceImpl) Login(ctx context.Context, username, password string) (*dto.LoginResult, error) {
	user, err := s.users.FindByName(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.recordLogin(metrics.LoginFailure)
		return &dto.LoginResult{}, nil
	}
	if err != nil {
		s.recordLogin(metrics.LoginError)
		return nil, internalError(s.logger, err, "look up user")
	}

	credentials, err := s.users.FindCredentials(ctx, user.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.recordLogin(metrics.LoginFailure)
		return &dto.LoginResult{}, nil
	}
	if err != nil {
		s.recordLogin(metrics.LoginError)
		return nil, internalError(s.logger, err, "load credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(credentials.PasswordHash), []byte(password)); err != nil {
		s.recordLogin(metrics.LoginFailure)
		return &dto.LoginResult{}, nil
	}

	signed, claims, err := s.tokens.Issue(username)
	if err != nil {
		s.recordLogin(metrics.LoginError)
		return nil, internalError(s.logger, err, "issue token")
	}

	s.recordLogin(metrics.LoginSuccess)
	return &dto.LoginResult{Token: signed, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// Logout revokes the token id until the token would have expired anyway
func (s *credentialsServiceImpl) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return response.NewAppError(response.ErrCodeUnauthorized, "Token has no id", "")
	}
	if err := s.revocation.Revoke(ctx, tokenID, expiresAt); err != nil {
		return internalError(s.logger, err, "revoke token")
	}
	return nil
}

func (s *credentialsServiceImpl) recordLogin(result string) {
	if s.metrics != nil {
		s.metrics.RecordLoginAttempt(result)
	}
}
