package repository

import (
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kitchen-planner-api/internal/database"
	"kitchen-planner-api/internal/domain"
)

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	FindByID(ctx context.Context, id int64) (*domain.Project, error)
	UpdateDetails(ctx context.Context, id int64, name string, startDate, endDate time.Time) (int64, error)
	UpdateImage(ctx context.Context, id int64, imageURI string) (int64, error)
	BumpVersion(ctx context.Context, id int64) (int64, error)
	FindStubsByUsername(ctx context.Context, username string) ([]domain.ProjectStub, error)
	ListImageURIs(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
	DeleteChildren(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// projectRepositoryImpl is the GORM implementation of ProjectRepository
type projectRepositoryImpl struct {
	db *gorm.DB
}

// NewProjectRepository creates a new instance of ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

// Create inserts the project row only. Child collections are written by their own repositories.
func (r *projectRepositoryImpl) Create(ctx context.Context, project *domain.Project) error {
	return database.Conn(ctx, r.db).Omit(clause.Associations).Create(project).Error
}

// FindByID finds a project by its ID
func (r *projectRepositoryImpl) FindByID(ctx context.Context, id int64) (*domain.Project, error) {
	var project domain.Project
	if err := database.Conn(ctx, r.db).First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateDetails sets name and dates, bumps project_version and returns the new version
func (r *projectRepositoryImpl) UpdateDetails(ctx context.Context, id int64, name string, startDate, endDate time.Time) (int64, error) {
	return r.bump(ctx, id, "project_version", map[string]interface{}{
		"name":       name,
		"start_date": datatypes.Date(startDate),
		"end_date":   datatypes.Date(endDate),
	})
}

// UpdateImage records the stored image name, bumps image_version and returns the new version
func (r *projectRepositoryImpl) UpdateImage(ctx context.Context, id int64, imageURI string) (int64, error) {
	return r.bump(ctx, id, "image_version", map[string]interface{}{
		"image_uri": imageURI,
	})
}

// BumpVersion raises project_version after a change made through another table
func (r *projectRepositoryImpl) BumpVersion(ctx context.Context, id int64) (int64, error) {
	return r.bump(ctx, id, "project_version", map[string]interface{}{})
}

func (r *projectRepositoryImpl) bump(ctx context.Context, id int64, column string, values map[string]interface{}) (int64, error) {
	db := database.Conn(ctx, r.db)
	values[column] = gorm.Expr(column + " + 1")

	result := db.Model(&domain.Project{}).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}

	var versions []int64
	if err := db.Model(&domain.Project{}).Where("id = ?", id).Pluck(column, &versions).Error; err != nil {
		return 0, err
	}
	if len(versions) == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return versions[0], nil
}

// FindStubsByUsername returns the stubs of every project the user participates in, ordered by id
func (r *projectRepositoryImpl) FindStubsByUsername(ctx context.Context, username string) ([]domain.ProjectStub, error) {
	var stubs []domain.ProjectStub
	err := database.Conn(ctx, r.db).
		Table("projects").
		Select("projects.id, projects.name, projects.image_uri, projects.image_version, projects.project_version").
		Joins("JOIN project_participants ON project_participants.project_id = projects.id").
		Joins("JOIN users ON users.id = project_participants.user_id").
		Where("users.name = ?", username).
		Order("projects.id").
		Scan(&stubs).Error
	if err != nil {
		return nil, err
	}
	return stubs, nil
}

// ListImageURIs returns every non-empty project image name
func (r *projectRepositoryImpl) ListImageURIs(ctx context.Context) ([]string, error) {
	var uris []string
	err := database.Conn(ctx, r.db).
		Model(&domain.Project{}).
		Where("image_uri <> ''").
		Pluck("image_uri", &uris).Error
	return uris, err
}

// Count returns the number of projects
func (r *projectRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var n int64
	err := database.Conn(ctx, r.db).Model(&domain.Project{}).Count(&n).Error
	return n, err
}

// DeleteChildren removes the meal plan of a project: slots, person number
// changes, allergen people with their allergens, unit conversions and meals.
// Participants and invitations are kept.
func (r *projectRepositoryImpl) DeleteChildren(ctx context.Context, id int64) error {
	db := database.Conn(ctx, r.db)
	children := []interface{}{
		&domain.AlternativeRecipeSlot{},
		&domain.MainRecipeSlot{},
		&domain.PersonNumberChange{},
		&domain.Allergen{},
		&domain.AllergenPerson{},
		&domain.UnitConversion{},
		&domain.Meal{},
	}
	for _, model := range children {
		if err := db.Where("project_id = ?", id).Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a project with all its child rows, participants and invitations
func (r *projectRepositoryImpl) Delete(ctx context.Context, id int64) error {
	if err := r.DeleteChildren(ctx, id); err != nil {
		return err
	}

	db := database.Conn(ctx, r.db)
	if err := db.Where("project_id = ?", id).Delete(&domain.ProjectInvitation{}).Error; err != nil {
		return err
	}
	if err := db.Where("project_id = ?", id).Delete(&domain.ProjectParticipant{}).Error; err != nil {
		return err
	}

	result := db.Delete(&domain.Project{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
