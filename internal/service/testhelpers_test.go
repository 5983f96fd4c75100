package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promdto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"kitchen-planner-api/internal/database"
	"kitchen-planner-api/internal/dto"
	"kitchen-planner-api/internal/metrics"
	"kitchen-planner-api/internal/repository"
	"kitchen-planner-api/internal/response"
	"kitchen-planner-api/internal/token"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []dto.ProjectEvent
}

func (p *recordingPublisher) Publish(event dto.ProjectEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) Events() []dto.ProjectEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]dto.ProjectEvent(nil), p.events...)
}

type testEnv struct {
	db      *gorm.DB
	tx      database.Transactor
	repos   *repository.Repositories
	metrics *metrics.Metrics
	events  *recordingPublisher
	logger  *zap.Logger
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := database.New(database.Config{Driver: "sqlite", DSN: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	t.Cleanup(func() { _ = database.Close(db) })

	return &testEnv{
		db:      db,
		tx:      database.NewTransactor(db),
		repos:   repository.NewRepositories(db),
		metrics: metrics.NewWithRegistry(prometheus.NewRegistry(), zap.NewNop()),
		events:  &recordingPublisher{},
		logger:  zap.NewNop(),
	}
}

func (e *testEnv) projectService() ProjectService {
	return NewProjectService(e.tx, e.repos, e.metrics, e.events, e.logger)
}

func (e *testEnv) recipeService() RecipeService {
	return NewRecipeService(e.tx, e.repos, e.metrics, e.events, e.logger)
}

func (e *testEnv) organisationService() *organisationServiceImpl {
	return NewOrganisationService(e.tx, e.repos, InvitationSettings{
		TTL:      7 * 24 * time.Hour,
		LinkBase: "http://localhost:8080/api",
	}, e.events, e.logger).(*organisationServiceImpl)
}

func date(d int) time.Time {
	return time.Date(2024, time.October, d, 0, 0, 0, 0, time.UTC)
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	require.True(t, response.IsCode(err, code), "want %s, got %v", code, err)
}

// fallCamp is the reference payload used across the project tests
func fallCamp() *dto.Project {
	return &dto.Project{
		Name:      "Fall Camp",
		StartDate: date(4),
		EndDate:   date(6),
		Meals:     []string{"Lunch", "Dinner"},
		AllergenPeople: []dto.AllergenPerson{{
			Name:          "Bob",
			ArrivalDate:   date(4),
			DepartureDate: date(6),
			ArrivalMeal:   "Lunch",
			DepartureMeal: "Dinner",
			Allergen:      []string{"Egg"},
			Traces:        []string{"Dairy"},
		}},
	}
}

func (e *testEnv) credentialsService(store token.RevocationStore) CredentialsService {
	manager := token.NewManager("test-secret", "kitchen-planner", time.Hour)
	return NewCredentialsService(e.tx, e.repos.Users, manager, store, 4, e.metrics, e.logger)
}

func registerUser(t *testing.T, env *testEnv, username string) {
	t.Helper()
	ok, err := env.credentialsService(token.NewMemoryRevocationStore()).Register(context.Background(), username, "secret")
	require.NoError(t, err)
	require.True(t, ok)
}

func counterValue(t *testing.T, c prometheus.Metric) float64 {
	t.Helper()
	m := &promdto.Metric{}
	require.NoError(t, c.Write(m))
	return m.GetCounter().GetValue()
}
