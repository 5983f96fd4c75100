package repository

import "gorm.io/gorm"

// Repositories bundles every repository over one database handle
type Repositories struct {
	Projects            ProjectRepository
	Meals               MealRepository
	Allergens           AllergenRepository
	RecipeSlots         RecipeSlotRepository
	UnitConversions     UnitConversionRepository
	PersonNumberChanges PersonNumberChangeRepository
	Participants        ParticipantRepository
	Invitations         InvitationRepository
	Recipes             RecipeRepository
	RecipeComponents    RecipeComponentRepository
	Users               UserRepository
}

// NewRepositories creates the GORM repositories for db
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Projects:            NewProjectRepository(db),
		Meals:               NewMealRepository(db),
		Allergens:           NewAllergenRepository(db),
		RecipeSlots:         NewRecipeSlotRepository(db),
		UnitConversions:     NewUnitConversionRepository(db),
		PersonNumberChanges: NewPersonNumberChangeRepository(db),
		Participants:        NewParticipantRepository(db),
		Invitations:         NewInvitationRepository(db),
		Recipes:             NewRecipeRepository(db),
		RecipeComponents:    NewRecipeComponentRepository(db),
		Users:               NewUserRepository(db),
	}
}
