package database

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"kitchen-planner-api/internal/domain"
)

// mockMetricsRecorder is a mock implementation of MetricsRecorder for testing
type mockMetricsRecorder struct {
	queries []queryRecord
	stats   chan sql.DBStats
}

type queryRecord struct {
	operation string
	table     string
	duration  time.Duration
	err       error
}

func (m *mockMetricsRecorder) RecordDBQuery(operation, table string, duration time.Duration, err error) {
	m.queries = append(m.queries, queryRecord{operation: operation, table: table, duration: duration, err: err})
}

func (m *mockMetricsRecorder) UpdateDBStats(stats interface{}) {
	if s, ok := stats.(sql.DBStats); ok && m.stats != nil {
		select {
		case m.stats <- s:
		default:
		}
	}
}

func setupRecordedDB(t *testing.T) (*gorm.DB, *mockMetricsRecorder) {
	db := setupTestDB(t)
	recorder := &mockMetricsRecorder{}
	RegisterMetricsCallbacks(db, recorder)
	return db, recorder
}

func TestRegisterMetricsCallbacks_CRUD(t *testing.T) {
	db, recorder := setupRecordedDB(t)

	recipe := domain.Recipe{Name: "Pancakes", NumberOfPeople: 4}
	require.NoError(t, db.Create(&recipe).Error)

	var loaded domain.Recipe
	require.NoError(t, db.First(&loaded, recipe.ID).Error)
	require.NoError(t, db.Model(&recipe).Update("name", "Crêpes").Error)
	require.NoError(t, db.Delete(&recipe).Error)

	require.Len(t, recorder.queries, 4)
	for i, op := range []string{"insert", "select", "update", "delete"} {
		assert.Equal(t, op, recorder.queries[i].operation)
		assert.Equal(t, "recipes", recorder.queries[i].table)
		assert.Greater(t, recorder.queries[i].duration, time.Duration(0))
		assert.NoError(t, recorder.queries[i].err)
	}
}

func TestRegisterMetricsCallbacks_QueryError(t *testing.T) {
	db, recorder := setupRecordedDB(t)

	var result domain.Recipe
	err := db.First(&result, 4242).Error
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.Len(t, recorder.queries, 1)
	assert.Equal(t, "select", recorder.queries[0].operation)
	assert.Error(t, recorder.queries[0].err)
}

func TestRegisterMetricsCallbacks_CreateError(t *testing.T) {
	db, recorder := setupRecordedDB(t)

	require.NoError(t, db.Create(&domain.User{Name: "alice"}).Error)
	recorder.queries = nil

	err := db.Create(&domain.User{Name: "alice"}).Error
	require.Error(t, err)

	require.Len(t, recorder.queries, 1)
	assert.Equal(t, "insert", recorder.queries[0].operation)
	assert.Equal(t, "users", recorder.queries[0].table)
	assert.Error(t, recorder.queries[0].err)
}

func TestRegisterMetricsCallbacks_Transaction(t *testing.T) {
	db, recorder := setupRecordedDB(t)

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&domain.Meal{ProjectID: 1, Name: "Lunch"}).Error; err != nil {
			return err
		}
		return tx.Create(&domain.Meal{ProjectID: 1, Name: "Dinner", Sequence: 1}).Error
	})
	require.NoError(t, err)

	require.Len(t, recorder.queries, 2)
	for _, q := range recorder.queries {
		assert.Equal(t, "insert", q.operation)
		assert.Equal(t, "meals", q.table)
	}
}

func TestStartDBStatsCollector(t *testing.T) {
	db := setupTestDB(t)
	recorder := &mockMetricsRecorder{stats: make(chan sql.DBStats, 1)}

	done := StartDBStatsCollector(db, recorder, 10*time.Millisecond)
	defer close(done)

	select {
	case s := <-recorder.stats:
		assert.GreaterOrEqual(t, s.OpenConnections, 0)
		assert.Equal(t, 1, s.MaxOpenConnections)
	case <-time.After(2 * time.Second):
		t.Fatal("stats were not collected")
	}
}
