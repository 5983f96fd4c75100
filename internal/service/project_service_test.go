package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kitchen-planner-api/internal/dto"
	"kitchen-planner-api/internal/response"
)

func createRecipe(t *testing.T, env *testEnv, name string) int64 {
	t.Helper()
	id, err := env.recipeService().SaveNewRecipe(context.Background(), &dto.Recipe{Name: name, NumberOfPeople: 4})
	require.NoError(t, err)
	return id
}

func TestProjectService_FallCamp(t *testing.T) {
	env := setupTestEnv(t)
	svc := env.projectService()
	ctx := context.Background()

	id, err := svc.CreateProject(ctx, fallCamp(), "")
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	got, err := svc.GetProject(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Fall Camp", got.Name)
	assert.Equal(t, []string{"Lunch", "Dinner"}, got.Meals)
	require.Len(t, got.AllergenPeople, 1)
	bob := got.AllergenPeople[0]
	assert.Equal(t, "Bob", bob.Name)
	assert.Equal(t, []string{"Egg"}, bob.Allergen)
	assert.Equal(t, []string{"Dairy"}, bob.Traces)
	assert.Equal(t, "Lunch", bob.ArrivalMeal)
	assert.Equal(t, date(6), bob.DepartureDate)
	assert.Equal(t, int64(0), got.VersionNumber)
	assert.Equal(t, int64(0), got.ImageVersionNumber)
}

func TestProjectService_CreateWithSlotsConversionsAndChanges(t *testing.T) {
	env := setupTestEnv(t)
	svc := env.projectService()
	ctx := context.Background()
	pancakes := createRecipe(t, env, "Pancakes")
	soup := createRecipe(t, env, "Soup")

	req := fallCamp()
	req.Recipes = []dto.RecipeForProject{
		{Date: date(5), Meal: "Dinner", RecipeID: soup, MainRecipe: true},
		{Date: date(5), Meal: "Lunch", RecipeID: pancakes, MainRecipe: true},
		{Date: date(5), Meal: "Lunch", RecipeID: soup, MainRecipe: false},
		{Date: date(5), Meal: "Lunch", RecipeID: soup, MainRecipe: false},
	}
	req.UnitConversions = []dto.UnitConversion{
		{StartUnit: "cup", EndUnit: "g", Ingredient: "flour", Factor: 100},
		{StartUnit: "cup", EndUnit: "g", Ingredient: "flour", Factor: 120},
	}
	req.PersonNumberChange = []dto.PersonNumberChange{
		{Date: date(5), Meal: "Dinner", DifferenceBefore: -2},
		{Date: date(5), Meal: "Lunch", DifferenceBefore: 3},
	}

	id, err := svc.CreateProject(ctx, req, "")
	require.NoError(t, err)

	got, err := svc.GetProject(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, []dto.RecipeForProject{
		{Date: date(5), Meal: "Lunch", RecipeID: pancakes, MainRecipe: true},
		{Date: date(5), Meal: "Dinner", RecipeID: soup, MainRecipe: true},
		{Date: date(5), Meal: "Lunch", RecipeID: soup, MainRecipe: false},
	}, got.Recipes, "main slots first, each in meal order, duplicate alternatives collapsed")
	assert.Equal(t, []dto.UnitConversion{
		{StartUnit: "cup", EndUnit: "g", Ingredient: "flour", Factor: 120},
	}, got.UnitConversions, "last conversion wins")
	assert.Equal(t, []dto.PersonNumberChange{
		{Date: date(5), Meal: "Lunch", DifferenceBefore: 3},
		{Date: date(5), Meal: "Dinner", DifferenceBefore: -2},
	}, got.PersonNumberChange)
}

func TestProjectService_CreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *dto.Project)
		code   string
	}{
		{"실패: 빈 이름", func(p *dto.Project) { p.Name = "  " }, response.ErrCodeValidation},
		{"실패: 시작일이 종료일 이후", func(p *dto.Project) { p.StartDate = date(7) }, response.ErrCodeValidation},
		{"실패: 중복 식사", func(p *dto.Project) { p.Meals = []string{"Lunch", "Lunch"} }, response.ErrCodeValidation},
		{"실패: 빈 식사 이름", func(p *dto.Project) { p.Meals = append(p.Meals, "") }, response.ErrCodeValidation},
		{"실패: 알레르기와 흔적이 겹침", func(p *dto.Project) {
			p.AllergenPeople[0].Traces = []string{"Egg"}
		}, response.ErrCodeValidation},
		{"실패: 알 수 없는 도착 식사", func(p *dto.Project) {
			p.AllergenPeople[0].ArrivalMeal = "Breakfast"
		}, response.ErrCodeNotFound},
		{"실패: 알 수 없는 레시피", func(p *dto.Project) {
			p.Recipes = []dto.RecipeForProject{{Date: date(5), Meal: "Lunch", RecipeID: 999, MainRecipe: true}}
		}, response.ErrCodeNotFound},
		{"실패: 슬롯의 식사가 없음", func(p *dto.Project) {
			p.Recipes = []dto.RecipeForProject{{Date: date(5), Meal: "Brunch", RecipeID: 1, MainRecipe: true}}
		}, response.ErrCodeNotFound},
		{"실패: 중복 인원 변경", func(p *dto.Project) {
			p.PersonNumberChange = []dto.PersonNumberChange{
				{Date: date(5), Meal: "Lunch", DifferenceBefore: 1},
				{Date: date(5), Meal: "Lunch", DifferenceBefore: 2},
			}
		}, response.ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnv(t)
			req := fallCamp()
			tt.mutate(req)

			_, err := env.projectService().CreateProject(context.Background(), req, "")
			requireCode(t, err, tt.code)

			n, err := env.repos.Projects.Count(context.Background())
			require.NoError(t, err)
			assert.Zero(t, n, "nothing is stored on failure")
		})
	}
}

func TestProjectService_TwoMainRecipesForOneSlot(t *testing.T) {
	env := setupTestEnv(t)
	a := createRecipe(t, env, "A")
	b := createRecipe(t, env, "B")

	req := fallCamp()
	req.Recipes = []dto.RecipeForProject{
		{Date: date(5), Meal: "Lunch", RecipeID: a, MainRecipe: true},
		{Date: date(5), Meal: "Lunch", RecipeID: b, MainRecipe: true},
	}
	_, err := env.projectService().CreateProject(context.Background(), req, "")
	requireCode(t, err, response.ErrCodeValidation)
}

func TestProjectService_CreateAddsOwnerAsParticipant(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	registerUser(t, env, "alice")

	id, err := env.projectService().CreateProject(ctx, fallCamp(), "alice")
	require.NoError(t, err)

	stubs, err := env.projectService().ListProjectStubsForUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, stubs, 1)
	assert.Equal(t, dto.ProjectStub{ID: id, Name: "Fall Camp"}, stubs[0])

	_, err = env.projectService().CreateProject(ctx, fallCamp(), "nobody")
	requireCode(t, err, response.ErrCodeNotFound)
}

func TestProjectService_UpdateReplacesChildren(t *testing.T) {
	env := setupTestEnv(t)
	svc := env.projectService()
	ctx := context.Background()

	id, err := svc.CreateProject(ctx, fallCamp(), "")
	require.NoError(t, err)

	update := &dto.Project{
		ID:        id,
		Name:      "Winter Camp",
		StartDate: date(10),
		EndDate:   date(12),
		Meals:     []string{"Breakfast"},
		AllergenPeople: []dto.AllergenPerson{{
			Name:     "Carol",
			Allergen: []string{"Nuts"},
		}},
	}
	version, err := svc.UpdateProject(ctx, update)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	got, err := svc.GetProject(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Winter Camp", got.Name)
	assert.Equal(t, date(10), got.StartDate)
	assert.Equal(t, []string{"Breakfast"}, got.Meals)
	require.Len(t, got.AllergenPeople, 1)
	assert.Equal(t, "Carol", got.AllergenPeople[0].Name)
	assert.Equal(t, []string{"Nuts"}, got.AllergenPeople[0].Allergen)
	assert.Empty(t, got.AllergenPeople[0].Traces)
	assert.Equal(t, int64(1), got.VersionNumber)
	assert.Equal(t, int64(0), got.ImageVersionNumber)

	version, err = svc.UpdateProject(ctx, update)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version, "each update increments exactly once")

	events := env.events.Events()
	require.Len(t, events, 2)
	assert.Equal(t, dto.ProjectEvent{Type: dto.ProjectEventUpdated, ProjectID: id, DataVersion: 2}, events[1])
}

func TestProjectService_UpdateFailures(t *testing.T) {
	env := setupTestEnv(t)
	svc := env.projectService()
	ctx := context.Background()

	req := fallCamp()
	req.ID = 404
	_, err := svc.UpdateProject(ctx, req)
	requireCode(t, err, response.ErrCodeNotFound)

	id, err := svc.CreateProject(ctx, fallCamp(), "")
	require.NoError(t, err)

	bad := fallCamp()
	bad.ID = id
	bad.Recipes = []dto.RecipeForProject{{Date: date(5), Meal: "Lunch", RecipeID: 12345, MainRecipe: true}}
	_, err = svc.UpdateProject(ctx, bad)
	requireCode(t, err, response.ErrCodeNotFound)

	v, err := svc.GetProjectVersion(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, &dto.VersionNumbers{DataVersion: 0, ImageVersion: 0}, v, "failed update leaves the version alone")

	got, err := svc.GetProject(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"Lunch", "Dinner"}, got.Meals, "failed update rolls back")
	assert.Empty(t, env.events.Events())
}

func TestProjectService_GetUnknown(t *testing.T) {
	env := setupTestEnv(t)
	svc := env.projectService()

	_, err := svc.GetProject(context.Background(), 77)
	requireCode(t, err, response.ErrCodeNotFound)
	_, err = svc.GetProjectVersion(context.Background(), 77)
	requireCode(t, err, response.ErrCodeNotFound)
}

func TestProjectService_ListStubsForUnknownUser(t *testing.T) {
	env := setupTestEnv(t)

	stubs, err := env.projectService().ListProjectStubsForUser(context.Background(), "ghost")
	require.NoError(t, err)
	assert.NotNil(t, stubs)
	assert.Empty(t, stubs)
}

func TestProjectService_CreateIncrementsMetric(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.projectService().CreateProject(context.Background(), fallCamp(), "")
	require.NoError(t, err)

	assert.Equal(t, 1.0, counterValue(t, env.metrics.ProjectCreatedTotal))
}
