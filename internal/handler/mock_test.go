package handler

import (
	"context"
	"io"
	"time"

	"kitchen-planner-api/internal/dto"
)

// MockProjectService is a mock implementation of ProjectService
type MockProjectService struct {
	CreateProjectFunc           func(ctx context.Context, req *dto.Project, username string) (int64, error)
	UpdateProjectFunc           func(ctx context.Context, req *dto.Project) (int64, error)
	GetProjectFunc              func(ctx context.Context, id int64) (*dto.Project, error)
	ListProjectStubsForUserFunc func(ctx context.Context, username string) ([]dto.ProjectStub, error)
	GetProjectVersionFunc       func(ctx context.Context, id int64) (*dto.VersionNumbers, error)
}

func (m *MockProjectService) CreateProject(ctx context.Context, req *dto.Project, username string) (int64, error) {
	if m.CreateProjectFunc != nil {
		return m.CreateProjectFunc(ctx, req, username)
	}
	return 1, nil
}

func (m *MockProjectService) UpdateProject(ctx context.Context, req *dto.Project) (int64, error) {
	if m.UpdateProjectFunc != nil {
		return m.UpdateProjectFunc(ctx, req)
	}
	return 1, nil
}

func (m *MockProjectService) GetProject(ctx context.Context, id int64) (*dto.Project, error) {
	if m.GetProjectFunc != nil {
		return m.GetProjectFunc(ctx, id)
	}
	return &dto.Project{ID: id}, nil
}

func (m *MockProjectService) ListProjectStubsForUser(ctx context.Context, username string) ([]dto.ProjectStub, error) {
	if m.ListProjectStubsForUserFunc != nil {
		return m.ListProjectStubsForUserFunc(ctx, username)
	}
	return []dto.ProjectStub{}, nil
}

func (m *MockProjectService) GetProjectVersion(ctx context.Context, id int64) (*dto.VersionNumbers, error) {
	if m.GetProjectVersionFunc != nil {
		return m.GetProjectVersionFunc(ctx, id)
	}
	return &dto.VersionNumbers{}, nil
}

// MockOrganisationService is a mock implementation of OrganisationService
type MockOrganisationService struct {
	JoinProjectFunc       func(ctx context.Context, projectID int64, username string) error
	JoinByInvitationFunc  func(ctx context.Context, token, username string) (int64, error)
	LeaveProjectFunc      func(ctx context.Context, projectID int64, username string) error
	GetInvitationLinkFunc func(ctx context.Context, projectID int64, username string) (*dto.Invitation, error)
}

func (m *MockOrganisationService) JoinProject(ctx context.Context, projectID int64, username string) error {
	if m.JoinProjectFunc != nil {
		return m.JoinProjectFunc(ctx, projectID, username)
	}
	return nil
}

func (m *MockOrganisationService) JoinByInvitation(ctx context.Context, token, username string) (int64, error) {
	if m.JoinByInvitationFunc != nil {
		return m.JoinByInvitationFunc(ctx, token, username)
	}
	return 1, nil
}

func (m *MockOrganisationService) LeaveProject(ctx context.Context, projectID int64, username string) error {
	if m.LeaveProjectFunc != nil {
		return m.LeaveProjectFunc(ctx, projectID, username)
	}
	return nil
}

func (m *MockOrganisationService) GetInvitationLink(ctx context.Context, projectID int64, username string) (*dto.Invitation, error) {
	if m.GetInvitationLinkFunc != nil {
		return m.GetInvitationLinkFunc(ctx, projectID, username)
	}
	return &dto.Invitation{}, nil
}

// MockRecipeService is a mock implementation of RecipeService
type MockRecipeService struct {
	SaveNewRecipeFunc    func(ctx context.Context, req *dto.Recipe) (int64, error)
	UpdateRecipeFunc     func(ctx context.Context, req *dto.Recipe) (int64, error)
	GetRecipeFunc        func(ctx context.Context, id int64) (*dto.Recipe, error)
	ListRecipeStubsFunc  func(ctx context.Context) ([]dto.RecipeStub, error)
	GetRecipeVersionFunc func(ctx context.Context, id int64) (*dto.VersionNumbers, error)
	DeleteRecipeFunc     func(ctx context.Context, id int64) error
}

func (m *MockRecipeService) SaveNewRecipe(ctx context.Context, req *dto.Recipe) (int64, error) {
	if m.SaveNewRecipeFunc != nil {
		return m.SaveNewRecipeFunc(ctx, req)
	}
	return 1, nil
}

func (m *MockRecipeService) UpdateRecipe(ctx context.Context, req *dto.Recipe) (int64, error) {
	if m.UpdateRecipeFunc != nil {
		return m.UpdateRecipeFunc(ctx, req)
	}
	return 1, nil
}

func (m *MockRecipeService) GetRecipe(ctx context.Context, id int64) (*dto.Recipe, error) {
	if m.GetRecipeFunc != nil {
		return m.GetRecipeFunc(ctx, id)
	}
	return &dto.Recipe{ID: id}, nil
}

func (m *MockRecipeService) ListRecipeStubs(ctx context.Context) ([]dto.RecipeStub, error) {
	if m.ListRecipeStubsFunc != nil {
		return m.ListRecipeStubsFunc(ctx)
	}
	return []dto.RecipeStub{}, nil
}

func (m *MockRecipeService) GetRecipeVersion(ctx context.Context, id int64) (*dto.VersionNumbers, error) {
	if m.GetRecipeVersionFunc != nil {
		return m.GetRecipeVersionFunc(ctx, id)
	}
	return &dto.VersionNumbers{}, nil
}

func (m *MockRecipeService) DeleteRecipe(ctx context.Context, id int64) error {
	if m.DeleteRecipeFunc != nil {
		return m.DeleteRecipeFunc(ctx, id)
	}
	return nil
}

// MockCredentialsService is a mock implementation of CredentialsService
type MockCredentialsService struct {
	RegisterFunc func(ctx context.Context, username, password string) (bool, error)
	LoginFunc    func(ctx context.Context, username, password string) (*dto.LoginResult, error)
	LogoutFunc   func(ctx context.Context, tokenID string, expiresAt time.Time) error
}

func (m *MockCredentialsService) Register(ctx context.Context, username, password string) (bool, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, username, password)
	}
	return true, nil
}

func (m *MockCredentialsService) Login(ctx context.Context, username, password string) (*dto.LoginResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, username, password)
	}
	return &dto.LoginResult{}, nil
}

func (m *MockCredentialsService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, tokenID, expiresAt)
	}
	return nil
}

// MockImageService is a mock implementation of ImageService
type MockImageService struct {
	SaveProjectImageFunc   func(ctx context.Context, projectID int64, filename string, r io.Reader) (int64, error)
	SaveRecipeImageFunc    func(ctx context.Context, recipeID int64, filename string, r io.Reader) (int64, error)
	GetProjectImageFunc    func(ctx context.Context, projectID int64) ([]byte, error)
	GetRecipeImageFunc     func(ctx context.Context, recipeID int64) ([]byte, error)
	DeleteProjectImageFunc func(ctx context.Context, projectID int64) (int64, error)
	DeleteRecipeImageFunc  func(ctx context.Context, recipeID int64) (int64, error)
}

func (m *MockImageService) SaveProjectImage(ctx context.Context, projectID int64, filename string, r io.Reader) (int64, error) {
	if m.SaveProjectImageFunc != nil {
		return m.SaveProjectImageFunc(ctx, projectID, filename, r)
	}
	return 1, nil
}

func (m *MockImageService) SaveRecipeImage(ctx context.Context, recipeID int64, filename string, r io.Reader) (int64, error) {
	if m.SaveRecipeImageFunc != nil {
		return m.SaveRecipeImageFunc(ctx, recipeID, filename, r)
	}
	return 1, nil
}

func (m *MockImageService) GetProjectImage(ctx context.Context, projectID int64) ([]byte, error) {
	if m.GetProjectImageFunc != nil {
		return m.GetProjectImageFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *MockImageService) GetRecipeImage(ctx context.Context, recipeID int64) ([]byte, error) {
	if m.GetRecipeImageFunc != nil {
		return m.GetRecipeImageFunc(ctx, recipeID)
	}
	return nil, nil
}

func (m *MockImageService) DeleteProjectImage(ctx context.Context, projectID int64) (int64, error) {
	if m.DeleteProjectImageFunc != nil {
		return m.DeleteProjectImageFunc(ctx, projectID)
	}
	return 1, nil
}

func (m *MockImageService) DeleteRecipeImage(ctx context.Context, recipeID int64) (int64, error) {
	if m.DeleteRecipeImageFunc != nil {
		return m.DeleteRecipeImageFunc(ctx, recipeID)
	}
	return 1, nil
}
