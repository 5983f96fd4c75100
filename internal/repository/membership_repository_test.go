package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"kitchen-planner-api/internal/domain"
)

func TestParticipantRepository_AddIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewParticipantRepository(db)
	ctx := context.Background()
	user := createUser(t, db, "alice")
	project := createProject(t, db, "Camp")

	require.NoError(t, repo.Add(ctx, project.ID, user.ID))
	require.NoError(t, repo.Add(ctx, project.ID, user.ID))

	n, err := repo.CountByProjectID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	ok, err := repo.Exists(ctx, project.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	removed, err := repo.Remove(ctx, project.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Remove(ctx, project.ID, user.ID)
	require.NoError(t, err)
	assert.False(t, removed)
	n, err = repo.CountByProjectID(ctx, project.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestInvitationRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInvitationRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.Create(ctx, &domain.ProjectInvitation{Token: "valid", ProjectID: 7, CreatedBy: 1, ExpiresAt: now.Add(time.Hour)}))
	require.NoError(t, repo.Create(ctx, &domain.ProjectInvitation{Token: "expired", ProjectID: 7, CreatedBy: 1, ExpiresAt: now.Add(-time.Hour)}))

	inv, err := repo.FindValid(ctx, "valid", now)
	require.NoError(t, err)
	assert.Equal(t, int64(7), inv.ProjectID)

	_, err = repo.FindValid(ctx, "expired", now)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	removed, err := repo.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
}

func TestUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{Name: "alice"}
	require.NoError(t, repo.Create(ctx, user))
	require.NoError(t, repo.CreateCredentials(ctx, &domain.Credentials{UserID: user.ID, PasswordHash: "hash"}))

	found, err := repo.FindByName(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	creds, err := repo.FindCredentials(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "hash", creds.PasswordHash)

	err = repo.Create(ctx, &domain.User{Name: "alice"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	_, err = repo.FindByName(ctx, "bob")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
