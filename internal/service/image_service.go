package service

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kitchen-planner-api/internal/dto"
	"kitchen-planner-api/internal/metrics"
	"kitchen-planner-api/internal/repository"
	"kitchen-planner-api/internal/response"
	"kitchen-planner-api/internal/storage"
)

// ImageService stores and serves the images of projects and recipes
type ImageService interface {
	SaveProjectImage(ctx context.Context, projectID int64, filename string, r io.Reader) (int64, error)
	SaveRecipeImage(ctx context.Context, recipeID int64, filename string, r io.Reader) (int64, error)
	GetProjectImage(ctx context.Context, projectID int64) ([]byte, error)
	GetRecipeImage(ctx context.Context, recipeID int64) ([]byte, error)
	DeleteProjectImage(ctx context.Context, projectID int64) (int64, error)
	DeleteRecipeImage(ctx context.Context, recipeID int64) (int64, error)
}

// imageOwner abstracts over the entity an image belongs to
type imageOwner struct {
	resource string
	category storage.Category
	// find returns the recorded image name and the owner's data version
	find   func(ctx context.Context, id int64) (string, int64, error)
	update func(ctx context.Context, id int64, imageURI string) (int64, error)
	// changed is called with the data and new image version after a successful change
	changed func(id, dataVersion, imageVersion int64)
}

type imageServiceImpl struct {
	store    storage.ImageStore
	projects imageOwner
	recipes  imageOwner
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewImageService creates a new instance of ImageService
func NewImageService(store storage.ImageStore, repos *repository.Repositories, m *metrics.Metrics, events EventPublisher, logger *zap.Logger) ImageService {
	return &imageServiceImpl{
		store: store,
		projects: imageOwner{
			resource: "Project",
			category: storage.CategoryProjects,
			find: func(ctx context.Context, id int64) (string, int64, error) {
				p, err := repos.Projects.FindByID(ctx, id)
				if err != nil {
					return "", 0, err
				}
				return p.ImageURI, p.ProjectVersion, nil
			},
			update: repos.Projects.UpdateImage,
			changed: func(id, dataVersion, imageVersion int64) {
				publish(events, dto.ProjectEvent{
					Type:         dto.ProjectEventImageUpdated,
					ProjectID:    id,
					DataVersion:  dataVersion,
					ImageVersion: imageVersion,
				})
			},
		},
		recipes: imageOwner{
			resource: "Recipe",
			category: storage.CategoryRecipes,
			find: func(ctx context.Context, id int64) (string, int64, error) {
				r, err := repos.Recipes.FindByID(ctx, id)
				if err != nil {
					return "", 0, err
				}
				return r.ImageURI, r.Version, nil
			},
			update:  repos.Recipes.UpdateImage,
			changed: func(int64, int64, int64) {},
		},
		metrics: m,
		logger:  logger,
	}
}

func (s *imageServiceImpl) SaveProjectImage(ctx context.Context, projectID int64, filename string, r io.Reader) (int64, error) {
	return s.save(ctx, s.projects, projectID, filename, r)
}

func (s *imageServiceImpl) SaveRecipeImage(ctx context.Context, recipeID int64, filename string, r io.Reader) (int64, error) {
	return s.save(ctx, s.recipes, recipeID, filename, r)
}

func (s *imageServiceImpl) GetProjectImage(ctx context.Context, projectID int64) ([]byte, error) {
	return s.load(ctx, s.projects, projectID)
}

func (s *imageServiceImpl) GetRecipeImage(ctx context.Context, recipeID int64) ([]byte, error) {
	return s.load(ctx, s.recipes, recipeID)
}

func (s *imageServiceImpl) DeleteProjectImage(ctx context.Context, projectID int64) (int64, error) {
	return s.remove(ctx, s.projects, projectID)
}

func (s *imageServiceImpl) DeleteRecipeImage(ctx context.Context, recipeID int64) (int64, error) {
	return s.remove(ctx, s.recipes, recipeID)
}

// imageName builds "<uuid>_<base name>" from the client supplied file name
func imageName(filename string) string {
	base := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	base = strings.TrimSpace(base)
	if base == "" || base == "." || base == "/" || base == ".." {
		base = "image"
	}
	return uuid.NewString() + "_" + base
}

// save writes the new image, records it and then removes the previous one.
// The write happens outside any transaction; a failed record update removes
// the new object again.
func (s *imageServiceImpl) save(ctx context.Context, owner imageOwner, id int64, filename string, r io.Reader) (int64, error) {
	previous, dataVersion, err := owner.find(ctx, id)
	if err != nil {
		return 0, notFoundOr(s.logger, err, owner.resource, id, "fetch "+strings.ToLower(owner.resource))
	}

	name := imageName(filename)
	if err := s.store.Save(ctx, owner.category, name, r); err != nil {
		s.logger.Error("Failed to store image",
			zap.String("category", string(owner.category)),
			zap.Int64("owner_id", id),
			zap.Error(err),
		)
		return 0, response.NewIOError("Failed to store image", err)
	}

	version, err := owner.update(ctx, id, name)
	if err != nil {
		if delErr := s.store.Delete(ctx, owner.category, name); delErr != nil {
			s.logger.Warn("Failed to remove image after failed update", zap.String("image", name), zap.Error(delErr))
		}
		return 0, notFoundOr(s.logger, err, owner.resource, id, "record image")
	}

	if previous != "" {
		if err := s.store.Delete(ctx, owner.category, previous); err != nil && !errors.Is(err, storage.ErrImageNotFound) {
			s.logger.Warn("Failed to delete previous image", zap.String("image", previous), zap.Error(err))
		}
	}

	if s.metrics != nil {
		s.metrics.IncrementImageUploads(string(owner.category))
	}
	owner.changed(id, dataVersion, version)
	return version, nil
}

func (s *imageServiceImpl) load(ctx context.Context, owner imageOwner, id int64) ([]byte, error) {
	name, _, err := owner.find(ctx, id)
	if err != nil {
		return nil, notFoundOr(s.logger, err, owner.resource, id, "fetch "+strings.ToLower(owner.resource))
	}
	if name == "" {
		return nil, response.NewNotFoundError("Image", "")
	}

	data, err := s.store.Load(ctx, owner.category, name)
	if err != nil {
		if errors.Is(err, storage.ErrImageNotFound) {
			return nil, response.NewNotFoundError("Image", name)
		}
		s.logger.Error("Failed to read image", zap.String("image", name), zap.Error(err))
		return nil, response.NewIOError("Failed to read image", err)
	}
	return data, nil
}

func (s *imageServiceImpl) remove(ctx context.Context, owner imageOwner, id int64) (int64, error) {
	name, dataVersion, err := owner.find(ctx, id)
	if err != nil {
		return 0, notFoundOr(s.logger, err, owner.resource, id, "fetch "+strings.ToLower(owner.resource))
	}
	if name == "" {
		return 0, response.NewNotFoundError("Image", "")
	}

	if err := s.store.Delete(ctx, owner.category, name); err != nil {
		if errors.Is(err, storage.ErrImageNotFound) {
			return 0, response.NewNotFoundError("Image", name)
		}
		s.logger.Error("Failed to delete image", zap.String("image", name), zap.Error(err))
		return 0, response.NewIOError("Failed to delete image", err)
	}

	version, err := owner.update(ctx, id, "")
	if err != nil {
		return 0, notFoundOr(s.logger, err, owner.resource, id, "clear image")
	}
	owner.changed(id, dataVersion, version)
	return version, nil
}
