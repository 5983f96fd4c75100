package dto

// Recipe is the full recipe aggregate used for create, update and read
// @Description Recipe with dietary specialities, numbered instructions and ingredients
type Recipe struct {
	ID             int64        `json:"id" example:"7"`
	Name           string       `json:"name" example:"Pancakes"`
	Description    string       `json:"description" example:"Fluffy pancakes for a crowd"`
	NumberOfPeople int          `json:"number_of_people" example:"4"`
	Version        int64        `json:"version" example:"2"`
	ImageVersion   int64        `json:"imageVersion" example:"0"`
	Traces         []string     `json:"traces" example:"Nuts"`
	Allergens      []string     `json:"allergens" example:"Egg"`
	FreeOfAllergen []string     `json:"freeOfAllergen" example:"Gluten"`
	Instructions   []string     `json:"instructions" example:"Mix,Fry"`
	Ingredients    []Ingredient `json:"ingredients"`
}

// Ingredient is one line of a recipe's ingredient list
type Ingredient struct {
	Name            string  `json:"name" example:"flour"`
	IngredientGroup string  `json:"ingredientGroup" example:"dough"`
	Amount          float64 `json:"amount" example:"250"`
	Unit            string  `json:"unit" example:"g"`
}

// RecipeStub is the list view of a recipe
type RecipeStub struct {
	ID           int64  `json:"id" example:"7"`
	Name         string `json:"name" example:"Pancakes"`
	Version      int64  `json:"version" example:"2"`
	ImageVersion int64  `json:"imageVersion" example:"0"`
	ImageURI     string `json:"imageUri" example:""`
}
