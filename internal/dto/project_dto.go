package dto

import "time"

// Project is the full project aggregate used for create, update and read
// @Description Project with its meals, allergen people, recipe slots, unit conversions and person number changes
// @Description id and version numbers are ignored on create
type Project struct {
	VersionNumber      int64                `json:"versionNumber" example:"3"`
	ImageVersionNumber int64                `json:"imageVersionNumber" example:"1"`
	Name               string               `json:"name" example:"Fall Camp"`
	ID                 int64                `json:"id" example:"42"`
	Meals              []string             `json:"meals" example:"Lunch,Dinner"`
	StartDate          time.Time            `json:"startDate" example:"2024-10-04T00:00:00Z"`
	EndDate            time.Time            `json:"endDate" example:"2024-10-06T00:00:00Z"`
	AllergenPeople     []AllergenPerson     `json:"allergenPeople"`
	Recipes            []RecipeForProject   `json:"recipes"`
	UnitConversions    []UnitConversion     `json:"unitConversions"`
	PersonNumberChange []PersonNumberChange `json:"personNumberChange"`
}

// AllergenPerson is an attendee with allergens and trace sensitivities
type AllergenPerson struct {
	Name          string    `json:"name" example:"Bob"`
	ArrivalDate   time.Time `json:"arrivalDate" example:"2024-10-04T00:00:00Z"`
	DepartureDate time.Time `json:"departureDate" example:"2024-10-06T00:00:00Z"`
	ArrivalMeal   string    `json:"arrivalMeal" example:"Lunch"`
	DepartureMeal string    `json:"departureMeal" example:"Dinner"`
	Allergen      []string  `json:"allergen" example:"Egg"`
	Traces        []string  `json:"traces" example:"Dairy"`
}

// RecipeForProject assigns a recipe to a meal slot
type RecipeForProject struct {
	Date       time.Time `json:"date" example:"2024-10-05T00:00:00Z"`
	Meal       string    `json:"meal" example:"Lunch"`
	RecipeID   int64     `json:"recipeID" example:"7"`
	MainRecipe bool      `json:"mainRecipe" example:"true"`
}

// UnitConversion converts an ingredient amount from startUnit to endUnit
type UnitConversion struct {
	StartUnit  string  `json:"startUnit" example:"cup"`
	EndUnit    string  `json:"endUnit" example:"g"`
	Ingredient string  `json:"ingredient" example:"flour"`
	Factor     float64 `json:"factor" example:"120"`
}

// PersonNumberChange is the headcount delta right before a meal slot
type PersonNumberChange struct {
	Date             time.Time `json:"date" example:"2024-10-05T00:00:00Z"`
	Meal             string    `json:"meal" example:"Dinner"`
	DifferenceBefore int       `json:"differenceBefore" example:"-2"`
}

// ProjectStub is the list view of a project
type ProjectStub struct {
	ID             int64  `json:"id" example:"42"`
	Name           string `json:"name" example:"Fall Camp"`
	ImageURI       string `json:"imageUri" example:"0b6f..._camp.jpg"`
	ImageVersion   int64  `json:"imageVersion" example:"1"`
	ProjectVersion int64  `json:"projectVersion" example:"3"`
}

// VersionNumbers reports the data and image version of a project or recipe
type VersionNumbers struct {
	DataVersion  int64 `json:"dataVersion" example:"3"`
	ImageVersion int64 `json:"imageVersion" example:"1"`
}

// Invitation is a shareable link that lets another user join a project
type Invitation struct {
	Token     string    `json:"token" example:"5f0c3c2e-8a8e-4c36-9d0e-0b1f7f8f2f6a"`
	Link      string    `json:"link" example:"http://localhost:8080/projects/join/5f0c3c2e-8a8e-4c36-9d0e-0b1f7f8f2f6a"`
	ExpiresAt time.Time `json:"expiresAt" example:"2024-10-11T10:00:00Z"`
}

// ProjectEventType names a change pushed to realtime subscribers
type ProjectEventType string

const (
	ProjectEventUpdated      ProjectEventType = "project_updated"
	ProjectEventImageUpdated ProjectEventType = "image_updated"
	ProjectEventDeleted      ProjectEventType = "project_deleted"
)

// ProjectEvent is pushed to websocket subscribers of a project
type ProjectEvent struct {
	Type         ProjectEventType `json:"type"`
	ProjectID    int64            `json:"projectId"`
	DataVersion  int64            `json:"dataVersion"`
	ImageVersion int64            `json:"imageVersion"`
}
