package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"kitchen-planner-api/internal/database"
	"kitchen-planner-api/internal/domain"
	"kitchen-planner-api/internal/dto"
	"kitchen-planner-api/internal/repository"
	"kitchen-planner-api/internal/response"
)

// OrganisationService manages who participates in a project
type OrganisationService interface {
	JoinProject(ctx context.Context, projectID int64, username string) error
	JoinByInvitation(ctx context.Context, token, username string) (int64, error)
	LeaveProject(ctx context.Context, projectID int64, username string) error
	GetInvitationLink(ctx context.Context, projectID int64, username string) (*dto.Invitation, error)
}

// InvitationSettings controls the lifetime and the link of invitations
type InvitationSettings struct {
	TTL time.Duration
	// LinkBase is the public URL plus base path; the link is LinkBase + "/projects/join/" + token
	LinkBase string
}

type organisationServiceImpl struct {
	tx         database.Transactor
	repos      *repository.Repositories
	invitation InvitationSettings
	events     EventPublisher
	logger     *zap.Logger
	now        func() time.Time
}

// NewOrganisationService creates a new instance of OrganisationService
func NewOrganisationService(tx database.Transactor, repos *repository.Repositories, invitation InvitationSettings, events EventPublisher, logger *zap.Logger) OrganisationService {
	return &organisationServiceImpl{
		tx:         tx,
		repos:      repos,
		invitation: invitation,
		events:     events,
		logger:     logger,
		now:        time.Now,
	}
}

// membership resolves the project and the user, or NOT_FOUND for either
func (s *organisationServiceImpl) membership(ctx context.Context, projectID int64, username string) (*domain.Project, *domain.User, error) {
	project, err := s.repos.Projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, nil, notFoundOr(s.logger, err, "Project", projectID, "fetch project")
	}
	user, err := s.repos.Users.FindByName(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, response.NewNotFoundError("User", username)
		}
		return nil, nil, internalError(s.logger, err, "fetch user")
	}
	return project, user, nil
}

// JoinProject adds the user to the project. Joining twice has no further effect.
func (s *organisationServiceImpl) JoinProject(ctx context.Context, projectID int64, username string) error {
	_, user, err := s.membership(ctx, projectID, username)
	if err != nil {
		return err
	}
	if err := s.repos.Participants.Add(ctx, projectID, user.ID); err != nil {
		return internalError(s.logger, err, "join project")
	}
	return nil
}

// JoinByInvitation resolves an unexpired invitation token and joins its project
func (s *organisationServiceImpl) JoinByInvitation(ctx context.Context, token, username string) (int64, error) {
	invitation, err := s.repos.Invitations.FindValid(ctx, token, s.now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, response.NewNotFoundError("Invitation", token)
		}
		return 0, internalError(s.logger, err, "resolve invitation")
	}
	if err := s.JoinProject(ctx, invitation.ProjectID, username); err != nil {
		return 0, err
	}
	return invitation.ProjectID, nil
}

// LeaveProject removes the user. The last participant leaving deletes the project.
// A user who is not a participant gets NotFound and nothing changes.
func (s *organisationServiceImpl) LeaveProject(ctx context.Context, projectID int64, username string) error {
	deleted := false
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		_, user, err := s.membership(ctx, projectID, username)
		if err != nil {
			return err
		}
		removed, err := s.repos.Participants.Remove(ctx, projectID, user.ID)
		if err != nil {
			return err
		}
		if !removed {
			return response.NewNotFoundError("Participant", username)
		}
		remaining, err := s.repos.Participants.CountByProjectID(ctx, projectID)
		if err != nil {
			return err
		}
		if remaining > 0 {
			return nil
		}
		if err := s.repos.Projects.Delete(ctx, projectID); err != nil {
			return err
		}
		deleted = true
		return nil
	})
	if err != nil {
		return notFoundOr(s.logger, err, "Project", projectID, "leave project")
	}

	if deleted {
		s.logger.Info("Project deleted after last participant left", zap.Int64("project_id", projectID))
		publish(s.events, dto.ProjectEvent{Type: dto.ProjectEventDeleted, ProjectID: projectID})
	}
	return nil
}

// GetInvitationLink stores a fresh invitation token for a participant of the project
func (s *organisationServiceImpl) GetInvitationLink(ctx context.Context, projectID int64, username string) (*dto.Invitation, error) {
	_, user, err := s.membership(ctx, projectID, username)
	if err != nil {
		return nil, err
	}

	member, err := s.repos.Participants.Exists(ctx, projectID, user.ID)
	if err != nil {
		return nil, internalError(s.logger, err, "check membership")
	}
	if !member {
		return nil, response.NewForbiddenError("You are not a participant of this project", "")
	}

	now := s.now().UTC()
	invitation := &domain.ProjectInvitation{
		Token:     uuid.NewString(),
		ProjectID: projectID,
		CreatedBy: user.ID,
		ExpiresAt: now.Add(s.invitation.TTL),
		CreatedAt: now,
	}
	if err := s.repos.Invitations.Create(ctx, invitation); err != nil {
		return nil, internalError(s.logger, err, "create invitation")
	}

	return &dto.Invitation{
		Token:     invitation.Token,
		Link:      strings.TrimRight(s.invitation.LinkBase, "/") + "/projects/join/" + invitation.Token,
		ExpiresAt: invitation.ExpiresAt,
	}, nil
}
