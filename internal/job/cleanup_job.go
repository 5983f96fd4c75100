package job

import (
	"context"
	"time"

	"go.uber.org/zap"

	"kitchen-planner-api/internal/storage"
)

// runTimeout bounds a single cleanup run
const runTimeout = 5 * time.Minute

// InvitationCleaner removes invitation tokens that expired before now
type InvitationCleaner interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// ImageReferences lists the image names still recorded for one category
type ImageReferences interface {
	ListImageURIs(ctx context.Context) ([]string, error)
}

// Result summarises one cleanup run
type Result struct {
	ExpiredInvitations int64
	OrphansDeleted     int
	Failed             int
}

// CleanupJob deletes expired invitations and images no project or recipe refers to
type CleanupJob struct {
	invitations InvitationCleaner
	references  map[storage.Category]ImageReferences
	store       storage.ImageStore
	gracePeriod time.Duration
	logger      *zap.Logger
	now         func() time.Time
}

// NewCleanupJob creates a new CleanupJob instance
func NewCleanupJob(
	invitations InvitationCleaner,
	projects ImageReferences,
	recipes ImageReferences,
	store storage.ImageStore,
	gracePeriod time.Duration,
	logger *zap.Logger,
) *CleanupJob {
	return &CleanupJob{
		invitations: invitations,
		references: map[storage.Category]ImageReferences{
			storage.CategoryProjects: projects,
			storage.CategoryRecipes:  recipes,
		},
		store:       store,
		gracePeriod: gracePeriod,
		logger:      logger,
		now:         time.Now,
	}
}

// Run executes the cleanup job; it satisfies cron.Job
func (j *CleanupJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()
	j.RunContext(ctx)
}

// RunContext performs one cleanup pass. Failures are logged and counted, never returned.
func (j *CleanupJob) RunContext(ctx context.Context) Result {
	var result Result
	now := j.now()

	j.logger.Info("Starting cleanup job")

	expired, err := j.invitations.DeleteExpired(ctx, now)
	if err != nil {
		j.logger.Error("Failed to delete expired invitations", zap.Error(err))
		result.Failed++
	} else {
		result.ExpiredInvitations = expired
	}

	for _, category := range storage.Categories {
		deleted, failed := j.collectOrphans(ctx, category, now)
		result.OrphansDeleted += deleted
		result.Failed += failed
	}

	j.logger.Info("Cleanup job completed",
		zap.Int64("expired_invitations", result.ExpiredInvitations),
		zap.Int("orphans_deleted", result.OrphansDeleted),
		zap.Int("failed", result.Failed),
	)
	return result
}

// collectOrphans deletes unreferenced images in category older than the grace period
func (j *CleanupJob) collectOrphans(ctx context.Context, category storage.Category, now time.Time) (deleted, failed int) {
	refs, ok := j.references[category]
	if !ok || refs == nil {
		return 0, 0
	}

	// list the store first so an image recorded meanwhile is still seen as referenced
	images, err := j.store.List(ctx, category)
	if err != nil {
		j.logger.Error("Failed to list stored images", zap.String("category", string(category)), zap.Error(err))
		return 0, 1
	}
	uris, err := refs.ListImageURIs(ctx)
	if err != nil {
		j.logger.Error("Failed to list referenced images", zap.String("category", string(category)), zap.Error(err))
		return 0, 1
	}

	referenced := make(map[string]struct{}, len(uris))
	for _, uri := range uris {
		referenced[uri] = struct{}{}
	}

	cutoff := now.Add(-j.gracePeriod)
	for _, img := range images {
		if _, ok := referenced[img.Name]; ok {
			continue
		}
		if img.ModTime.After(cutoff) {
			continue
		}
		if err := j.store.Delete(ctx, category, img.Name); err != nil {
			j.logger.Error("Failed to delete orphaned image",
				zap.String("category", string(category)),
				zap.String("image", img.Name),
				zap.Error(err),
			)
			failed++
			continue
		}
		j.logger.Debug("Deleted orphaned image",
			zap.String("category", string(category)),
			zap.String("image", img.Name),
		)
		deleted++
	}
	return deleted, failed
}
