package service

import (
	"context"
	"errors"
	"strconv"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"kitchen-planner-api/internal/database"
	"kitchen-planner-api/internal/domain"
	"kitchen-planner-api/internal/dto"
	"kitchen-planner-api/internal/metrics"
	"kitchen-planner-api/internal/repository"
	"kitchen-planner-api/internal/response"
)

// ProjectService defines the interface for project business logic
type ProjectService interface {
	CreateProject(ctx context.Context, req *dto.Project, username string) (int64, error)
	UpdateProject(ctx context.Context, req *dto.Project) (int64, error)
	GetProject(ctx context.Context, id int64) (*dto.Project, error)
	ListProjectStubsForUser(ctx context.Context, username string) ([]dto.ProjectStub, error)
	GetProjectVersion(ctx context.Context, id int64) (*dto.VersionNumbers, error)
}

// projectServiceImpl is the implementation of ProjectService
type projectServiceImpl struct {
	tx      database.Transactor
	repos   *repository.Repositories
	metrics *metrics.Metrics
	events  EventPublisher
	logger  *zap.Logger
}

// NewProjectService creates a new instance of ProjectService
func NewProjectService(tx database.Transactor, repos *repository.Repositories, m *metrics.Metrics, events EventPublisher, logger *zap.Logger) ProjectService {
	return &projectServiceImpl{
		tx:      tx,
		repos:   repos,
		metrics: m,
		events:  events,
		logger:  logger,
	}
}

// CreateProject stores a project with all its child rows and returns the new id.
// A non-empty username becomes the first participant.
func (s *projectServiceImpl) CreateProject(ctx context.Context, req *dto.Project, username string) (int64, error) {
	plan, err := buildProjectPlan(req)
	if err != nil {
		return 0, err
	}

	project := &domain.Project{
		Name:      req.Name,
		StartDate: toDate(req.StartDate),
		EndDate:   toDate(req.EndDate),
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.checkRecipesExist(ctx, plan.recipeIDs); err != nil {
			return err
		}

		var owner *domain.User
		if username != "" {
			user, err := s.repos.Users.FindByName(ctx, username)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return response.NewNotFoundError("User", username)
				}
				return err
			}
			owner = user
		}

		if err := s.repos.Projects.Create(ctx, project); err != nil {
			return err
		}
		plan.forProject(project.ID)
		if err := s.insertPlan(ctx, plan); err != nil {
			return err
		}

		if owner != nil {
			return s.repos.Participants.Add(ctx, project.ID, owner.ID)
		}
		return nil
	})
	if err != nil {
		return 0, internalError(s.logger, err, "create project")
	}

	if s.metrics != nil {
		s.metrics.IncrementProjectCreated()
	}
	s.logger.Info("Project created",
		zap.Int64("project_id", project.ID),
		zap.String("username", username),
	)
	return project.ID, nil
}

// UpdateProject replaces name, dates and every child row of the project and
// returns the new project version
func (s *projectServiceImpl) UpdateProject(ctx context.Context, req *dto.Project) (int64, error) {
	plan, err := buildProjectPlan(req)
	if err != nil {
		return 0, err
	}
	plan.forProject(req.ID)

	var (
		version      int64
		imageVersion int64
	)
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.repos.Projects.FindByID(ctx, req.ID)
		if err != nil {
			return err
		}
		imageVersion = existing.ImageVersion

		if err := s.checkRecipesExist(ctx, plan.recipeIDs); err != nil {
			return err
		}

		version, err = s.repos.Projects.UpdateDetails(ctx, req.ID, req.Name, calendarDate(req.StartDate), calendarDate(req.EndDate))
		if err != nil {
			return err
		}
		if err := s.repos.Projects.DeleteChildren(ctx, req.ID); err != nil {
			return err
		}
		return s.insertPlan(ctx, plan)
	})
	if err != nil {
		return 0, notFoundOr(s.logger, err, "Project", req.ID, "update project")
	}

	publish(s.events, dto.ProjectEvent{
		Type:         dto.ProjectEventUpdated,
		ProjectID:    req.ID,
		DataVersion:  version,
		ImageVersion: imageVersion,
	})
	return version, nil
}

func (s *projectServiceImpl) checkRecipesExist(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	found, err := s.repos.Recipes.FindExistingIDs(ctx, ids)
	if err != nil {
		return err
	}
	existing := make(map[int64]struct{}, len(found))
	for _, id := range found {
		existing[id] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := existing[id]; !ok {
			return response.NewNotFoundError("Recipe", strconv.FormatInt(id, 10))
		}
	}
	return nil
}

func (s *projectServiceImpl) insertPlan(ctx context.Context, plan *projectPlan) error {
	if err := s.repos.Meals.CreateBatch(ctx, plan.meals); err != nil {
		return err
	}
	if err := s.repos.Allergens.CreatePeople(ctx, plan.people); err != nil {
		return err
	}
	if err := s.repos.Allergens.CreateAllergens(ctx, plan.allergens); err != nil {
		return err
	}
	if err := s.repos.RecipeSlots.CreateMain(ctx, plan.mainSlots); err != nil {
		return err
	}
	if err := s.repos.RecipeSlots.CreateAlternatives(ctx, plan.altSlots); err != nil {
		return err
	}
	if err := s.repos.UnitConversions.CreateBatch(ctx, plan.conversions); err != nil {
		return err
	}
	return s.repos.PersonNumberChanges.CreateBatch(ctx, plan.changes)
}

// GetProject reassembles the project aggregate, one query per child collection
func (s *projectServiceImpl) GetProject(ctx context.Context, id int64) (*dto.Project, error) {
	project, err := s.repos.Projects.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(s.logger, err, "Project", id, "fetch project")
	}

	meals, err := s.repos.Meals.FindByProjectID(ctx, id)
	if err != nil {
		return nil, internalError(s.logger, err, "fetch meals")
	}
	people, err := s.repos.Allergens.FindPeopleByProjectID(ctx, id)
	if err != nil {
		return nil, internalError(s.logger, err, "fetch allergen people")
	}
	allergens, err := s.repos.Allergens.FindAllergensByProjectID(ctx, id)
	if err != nil {
		return nil, internalError(s.logger, err, "fetch allergens")
	}
	mainSlots, err := s.repos.RecipeSlots.FindMainByProjectID(ctx, id)
	if err != nil {
		return nil, internalError(s.logger, err, "fetch main recipes")
	}
	altSlots, err := s.repos.RecipeSlots.FindAlternativesByProjectID(ctx, id)
	if err != nil {
		return nil, internalError(s.logger, err, "fetch alternative recipes")
	}
	conversions, err := s.repos.UnitConversions.FindByProjectID(ctx, id)
	if err != nil {
		return nil, internalError(s.logger, err, "fetch unit conversions")
	}
	changes, err := s.repos.PersonNumberChanges.FindByProjectID(ctx, id)
	if err != nil {
		return nil, internalError(s.logger, err, "fetch person number changes")
	}

	result := &dto.Project{
		VersionNumber:      project.ProjectVersion,
		ImageVersionNumber: project.ImageVersion,
		Name:               project.Name,
		ID:                 project.ID,
		StartDate:          fromDate(project.StartDate),
		EndDate:            fromDate(project.EndDate),
		Meals:              make([]string, 0, len(meals)),
		AllergenPeople:     make([]dto.AllergenPerson, 0, len(people)),
		Recipes:            make([]dto.RecipeForProject, 0, len(mainSlots)+len(altSlots)),
		UnitConversions:    make([]dto.UnitConversion, 0, len(conversions)),
		PersonNumberChange: make([]dto.PersonNumberChange, 0, len(changes)),
	}

	for _, m := range meals {
		result.Meals = append(result.Meals, m.Name)
	}

	byPerson := make(map[string]*dto.AllergenPerson, len(people))
	for _, p := range people {
		result.AllergenPeople = append(result.AllergenPeople, dto.AllergenPerson{
			Name:          p.Name,
			ArrivalDate:   fromDate(p.ArrivalDate),
			DepartureDate: fromDate(p.DepartureDate),
			ArrivalMeal:   p.ArrivalMeal,
			DepartureMeal: p.DepartureMeal,
			Allergen:      []string{},
			Traces:        []string{},
		})
	}
	for i := range result.AllergenPeople {
		byPerson[result.AllergenPeople[i].Name] = &result.AllergenPeople[i]
	}
	for _, a := range allergens {
		person, ok := byPerson[a.PersonName]
		if !ok {
			continue
		}
		if a.Traces {
			person.Traces = append(person.Traces, a.Name)
		} else {
			person.Allergen = append(person.Allergen, a.Name)
		}
	}

	for _, slot := range mainSlots {
		result.Recipes = append(result.Recipes, dto.RecipeForProject{
			Date:       fromDate(slot.Date),
			Meal:       slot.MealName,
			RecipeID:   slot.RecipeID,
			MainRecipe: true,
		})
	}
	for _, slot := range altSlots {
		result.Recipes = append(result.Recipes, dto.RecipeForProject{
			Date:       fromDate(slot.Date),
			Meal:       slot.MealName,
			RecipeID:   slot.RecipeID,
			MainRecipe: false,
		})
	}

	for _, c := range conversions {
		result.UnitConversions = append(result.UnitConversions, dto.UnitConversion{
			StartUnit:  c.SourceUnit,
			EndUnit:    c.DestinationUnit,
			Ingredient: c.Ingredient,
			Factor:     c.Factor,
		})
	}
	for _, c := range changes {
		result.PersonNumberChange = append(result.PersonNumberChange, dto.PersonNumberChange{
			Date:             fromDate(c.Date),
			Meal:             c.MealName,
			DifferenceBefore: c.Difference,
		})
	}

	return result, nil
}

// ListProjectStubsForUser returns the projects the user participates in, ordered by id
func (s *projectServiceImpl) ListProjectStubsForUser(ctx context.Context, username string) ([]dto.ProjectStub, error) {
	stubs, err := s.repos.Projects.FindStubsByUsername(ctx, username)
	if err != nil {
		return nil, internalError(s.logger, err, "list projects")
	}

	result := make([]dto.ProjectStub, 0, len(stubs))
	for _, stub := range stubs {
		result = append(result, dto.ProjectStub{
			ID:             stub.ID,
			Name:           stub.Name,
			ImageURI:       stub.ImageURI,
			ImageVersion:   stub.ImageVersion,
			ProjectVersion: stub.ProjectVersion,
		})
	}
	return result, nil
}

// GetProjectVersion returns the data and image version of a project
func (s *projectServiceImpl) GetProjectVersion(ctx context.Context, id int64) (*dto.VersionNumbers, error) {
	project, err := s.repos.Projects.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(s.logger, err, "Project", id, "fetch project")
	}
	return &dto.VersionNumbers{
		DataVersion:  project.ProjectVersion,
		ImageVersion: project.ImageVersion,
	}, nil
}
