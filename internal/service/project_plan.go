package service

import (
	"fmt"
	"time"

	"kitchen-planner-api/internal/domain"
	"kitchen-planner-api/internal/dto"
	"kitchen-planner-api/internal/response"
)

// projectPlan holds the child rows of a project payload, validated and with
// duplicates collapsed
type projectPlan struct {
	meals       []domain.Meal
	people      []domain.AllergenPerson
	allergens   []domain.Allergen
	mainSlots   []domain.MainRecipeSlot
	altSlots    []domain.AlternativeRecipeSlot
	conversions []domain.UnitConversion
	changes     []domain.PersonNumberChange
	recipeIDs   []int64
}

type slotKey struct {
	meal string
	date time.Time
}

type conversionKey struct {
	source, destination, ingredient string
}

func buildProjectPlan(req *dto.Project) (*projectPlan, error) {
	if isBlank(req.Name) {
		return nil, response.NewValidationError("Project name must not be blank")
	}
	if calendarDate(req.StartDate).After(calendarDate(req.EndDate)) {
		return nil, response.NewValidationError("Project start date must not be after its end date")
	}

	plan := &projectPlan{}
	meals := make(map[string]struct{}, len(req.Meals))
	for i, name := range req.Meals {
		if isBlank(name) {
			return nil, response.NewValidationError("Meal names must not be blank")
		}
		if _, dup := meals[name]; dup {
			return nil, response.NewValidationError(fmt.Sprintf("Meal %q is listed twice", name))
		}
		meals[name] = struct{}{}
		plan.meals = append(plan.meals, domain.Meal{Name: name, Sequence: i})
	}
	knownMeal := func(name string) error {
		if _, ok := meals[name]; !ok {
			return response.NewNotFoundError("Meal", name)
		}
		return nil
	}

	if err := plan.addPeople(req.AllergenPeople, knownMeal); err != nil {
		return nil, err
	}
	if err := plan.addSlots(req.Recipes, knownMeal); err != nil {
		return nil, err
	}
	plan.addConversions(req.UnitConversions)
	if err := plan.addChanges(req.PersonNumberChange, knownMeal); err != nil {
		return nil, err
	}
	return plan, nil
}

func (p *projectPlan) addPeople(people []dto.AllergenPerson, knownMeal func(string) error) error {
	names := make(map[string]struct{}, len(people))
	for _, person := range people {
		if isBlank(person.Name) {
			return response.NewValidationError("Allergen person names must not be blank")
		}
		if _, dup := names[person.Name]; dup {
			return response.NewValidationError(fmt.Sprintf("Allergen person %q is listed twice", person.Name))
		}
		names[person.Name] = struct{}{}

		for _, meal := range []string{person.ArrivalMeal, person.DepartureMeal} {
			if meal == "" {
				continue
			}
			if err := knownMeal(meal); err != nil {
				return err
			}
		}

		allergens := uniqueStrings(person.Allergen)
		traces := uniqueStrings(person.Traces)
		direct := make(map[string]struct{}, len(allergens))
		for _, a := range allergens {
			direct[a] = struct{}{}
		}
		for _, tr := range traces {
			if _, both := direct[tr]; both {
				return response.NewValidationError(fmt.Sprintf("%q is listed as both allergen and trace for %q", tr, person.Name))
			}
		}

		p.people = append(p.people, domain.AllergenPerson{
			Name:          person.Name,
			ArrivalDate:   toDate(person.ArrivalDate),
			DepartureDate: toDate(person.DepartureDate),
			ArrivalMeal:   person.ArrivalMeal,
			DepartureMeal: person.DepartureMeal,
		})
		for _, a := range allergens {
			p.allergens = append(p.allergens, domain.Allergen{PersonName: person.Name, Name: a, Traces: false})
		}
		for _, tr := range traces {
			p.allergens = append(p.allergens, domain.Allergen{PersonName: person.Name, Name: tr, Traces: true})
		}
	}
	return nil
}

func (p *projectPlan) addSlots(slots []dto.RecipeForProject, knownMeal func(string) error) error {
	mains := make(map[slotKey]int64)
	type altKey struct {
		slotKey
		recipeID int64
	}
	alts := make(map[altKey]struct{})
	recipes := make(map[int64]struct{})

	for _, slot := range slots {
		if err := knownMeal(slot.Meal); err != nil {
			return err
		}
		key := slotKey{meal: slot.Meal, date: calendarDate(slot.Date)}

		if slot.MainRecipe {
			if existing, ok := mains[key]; ok {
				if existing != slot.RecipeID {
					return response.NewValidationError(fmt.Sprintf("%s on %s has two main recipes", slot.Meal, key.date.Format(time.DateOnly)))
				}
				continue
			}
			mains[key] = slot.RecipeID
			p.mainSlots = append(p.mainSlots, domain.MainRecipeSlot{MealName: slot.Meal, Date: toDate(slot.Date), RecipeID: slot.RecipeID})
		} else {
			ak := altKey{key, slot.RecipeID}
			if _, dup := alts[ak]; dup {
				continue
			}
			alts[ak] = struct{}{}
			p.altSlots = append(p.altSlots, domain.AlternativeRecipeSlot{MealName: slot.Meal, Date: toDate(slot.Date), RecipeID: slot.RecipeID})
		}

		if _, seen := recipes[slot.RecipeID]; !seen {
			recipes[slot.RecipeID] = struct{}{}
			p.recipeIDs = append(p.recipeIDs, slot.RecipeID)
		}
	}
	return nil
}

// addConversions keeps the last factor given for a (start, end, ingredient) key
func (p *projectPlan) addConversions(conversions []dto.UnitConversion) {
	index := make(map[conversionKey]int, len(conversions))
	for _, c := range conversions {
		key := conversionKey{c.StartUnit, c.EndUnit, c.Ingredient}
		if i, ok := index[key]; ok {
			p.conversions[i].Factor = c.Factor
			continue
		}
		index[key] = len(p.conversions)
		p.conversions = append(p.conversions, domain.UnitConversion{
			SourceUnit:      c.StartUnit,
			DestinationUnit: c.EndUnit,
			Ingredient:      c.Ingredient,
			Factor:          c.Factor,
		})
	}
}

func (p *projectPlan) addChanges(changes []dto.PersonNumberChange, knownMeal func(string) error) error {
	seen := make(map[slotKey]struct{}, len(changes))
	for _, c := range changes {
		if err := knownMeal(c.Meal); err != nil {
			return err
		}
		key := slotKey{meal: c.Meal, date: calendarDate(c.Date)}
		if _, dup := seen[key]; dup {
			return response.NewValidationError(fmt.Sprintf("Person number change for %s on %s is listed twice", c.Meal, key.date.Format(time.DateOnly)))
		}
		seen[key] = struct{}{}
		p.changes = append(p.changes, domain.PersonNumberChange{Date: toDate(c.Date), MealName: c.Meal, Difference: c.DifferenceBefore})
	}
	return nil
}

// forProject stamps every row with the owning project id
func (p *projectPlan) forProject(projectID int64) {
	for i := range p.meals {
		p.meals[i].ProjectID = projectID
	}
	for i := range p.people {
		p.people[i].ProjectID = projectID
	}
	for i := range p.allergens {
		p.allergens[i].ProjectID = projectID
	}
	for i := range p.mainSlots {
		p.mainSlots[i].ProjectID = projectID
	}
	for i := range p.altSlots {
		p.altSlots[i].ProjectID = projectID
	}
	for i := range p.conversions {
		p.conversions[i].ProjectID = projectID
	}
	for i := range p.changes {
		p.changes[i].ProjectID = projectID
	}
}
