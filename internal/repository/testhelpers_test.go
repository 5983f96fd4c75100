package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kitchen-planner-api/internal/database"
	"kitchen-planner-api/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.New(database.Config{Driver: "sqlite", DSN: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func day(d int) datatypes.Date {
	return datatypes.Date(time.Date(2024, time.October, d, 0, 0, 0, 0, time.UTC))
}

func createProject(t *testing.T, db *gorm.DB, name string) *domain.Project {
	t.Helper()
	p := &domain.Project{Name: name, StartDate: day(4), EndDate: day(6)}
	require.NoError(t, db.Omit(clause.Associations).Create(p).Error)
	return p
}

func createUser(t *testing.T, db *gorm.DB, name string) *domain.User {
	t.Helper()
	u := &domain.User{Name: name}
	require.NoError(t, db.Create(u).Error)
	return u
}
