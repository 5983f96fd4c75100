package job

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"kitchen-planner-api/internal/storage"
)

// MockInvitationCleaner is a mock implementation of InvitationCleaner
type MockInvitationCleaner struct {
	mock.Mock
}

func (m *MockInvitationCleaner) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// MockImageReferences is a mock implementation of ImageReferences
type MockImageReferences struct {
	mock.Mock
}

func (m *MockImageReferences) ListImageURIs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockImageStore is a mock implementation of storage.ImageStore
type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) Save(ctx context.Context, category storage.Category, name string, r io.Reader) error {
	args := m.Called(ctx, category, name, r)
	return args.Error(0)
}

func (m *MockImageStore) Load(ctx context.Context, category storage.Category, name string) ([]byte, error) {
	args := m.Called(ctx, category, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockImageStore) Delete(ctx context.Context, category storage.Category, name string) error {
	args := m.Called(ctx, category, name)
	return args.Error(0)
}

func (m *MockImageStore) List(ctx context.Context, category storage.Category) ([]storage.ImageInfo, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.ImageInfo), args.Error(1)
}

var fixedNow = time.Date(2024, time.October, 8, 12, 0, 0, 0, time.UTC)

func newTestJob(inv *MockInvitationCleaner, projects, recipes *MockImageReferences, store *MockImageStore) *CleanupJob {
	j := NewCleanupJob(inv, projects, recipes, store, 24*time.Hour, zap.NewNop())
	j.now = func() time.Time { return fixedNow }
	return j
}

func TestCleanupJob_Run_DeletesOnlyOldOrphans(t *testing.T) {
	inv := new(MockInvitationCleaner)
	projects := new(MockImageReferences)
	recipes := new(MockImageReferences)
	store := new(MockImageStore)
	old := fixedNow.Add(-48 * time.Hour)
	fresh := fixedNow.Add(-time.Hour)

	inv.On("DeleteExpired", mock.Anything, fixedNow).Return(int64(3), nil)
	store.On("List", mock.Anything, storage.CategoryProjects).Return([]storage.ImageInfo{
		{Name: "a_camp.jpg", ModTime: old},
		{Name: "b_orphan.jpg", ModTime: old},
		{Name: "c_recent.jpg", ModTime: fresh},
	}, nil)
	store.On("List", mock.Anything, storage.CategoryRecipes).Return([]storage.ImageInfo{
		{Name: "d_stew.png", ModTime: old},
	}, nil)
	projects.On("ListImageURIs", mock.Anything).Return([]string{"a_camp.jpg"}, nil)
	recipes.On("ListImageURIs", mock.Anything).Return([]string{"d_stew.png"}, nil)
	store.On("Delete", mock.Anything, storage.CategoryProjects, "b_orphan.jpg").Return(nil)

	result := newTestJob(inv, projects, recipes, store).RunContext(context.Background())

	assert.Equal(t, Result{ExpiredInvitations: 3, OrphansDeleted: 1}, result)
	store.AssertNumberOfCalls(t, "Delete", 1)
	store.AssertNotCalled(t, "Delete", mock.Anything, storage.CategoryProjects, "a_camp.jpg")
	store.AssertNotCalled(t, "Delete", mock.Anything, storage.CategoryProjects, "c_recent.jpg")
	inv.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestCleanupJob_Run_ContinuesAfterFailures(t *testing.T) {
	inv := new(MockInvitationCleaner)
	projects := new(MockImageReferences)
	recipes := new(MockImageReferences)
	store := new(MockImageStore)
	old := fixedNow.Add(-48 * time.Hour)

	inv.On("DeleteExpired", mock.Anything, fixedNow).Return(int64(0), errors.New("db down"))
	store.On("List", mock.Anything, storage.CategoryProjects).Return(nil, errors.New("bucket gone"))
	store.On("List", mock.Anything, storage.CategoryRecipes).Return([]storage.ImageInfo{
		{Name: "x.png", ModTime: old},
		{Name: "y.png", ModTime: old},
	}, nil)
	recipes.On("ListImageURIs", mock.Anything).Return([]string{}, nil)
	store.On("Delete", mock.Anything, storage.CategoryRecipes, "x.png").Return(errors.New("permission denied"))
	store.On("Delete", mock.Anything, storage.CategoryRecipes, "y.png").Return(nil)

	result := newTestJob(inv, projects, recipes, store).RunContext(context.Background())

	assert.Equal(t, Result{OrphansDeleted: 1, Failed: 3}, result)
	projects.AssertNotCalled(t, "ListImageURIs", mock.Anything)
}

func TestCleanupJob_Run_SkipsWhenReferencesUnavailable(t *testing.T) {
	inv := new(MockInvitationCleaner)
	projects := new(MockImageReferences)
	recipes := new(MockImageReferences)
	store := new(MockImageStore)
	old := fixedNow.Add(-48 * time.Hour)

	inv.On("DeleteExpired", mock.Anything, fixedNow).Return(int64(0), nil)
	store.On("List", mock.Anything, mock.Anything).Return([]storage.ImageInfo{{Name: "keep.jpg", ModTime: old}}, nil)
	projects.On("ListImageURIs", mock.Anything).Return(nil, errors.New("timeout"))
	recipes.On("ListImageURIs", mock.Anything).Return(nil, errors.New("timeout"))

	result := newTestJob(inv, projects, recipes, store).RunContext(context.Background())

	assert.Equal(t, 2, result.Failed)
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

type countingJob struct {
	runs atomic.Int32
}

func (j *countingJob) Run() { j.runs.Add(1) }

func TestNewScheduler(t *testing.T) {
	_, err := NewScheduler("not a schedule", &countingJob{}, zap.NewNop())
	assert.Error(t, err)

	job := &countingJob{}
	c, err := NewScheduler("@every 1s", job, zap.NewNop())
	require.NoError(t, err)
	defer c.Stop()

	assert.Len(t, c.Entries(), 1)
	assert.Eventually(t, func() bool { return job.runs.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)
}
