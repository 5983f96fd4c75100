package domain

import "gorm.io/datatypes"

// Meal is a named meal of a project (e.g. "Lunch"). Sequence orders the meals of a day.
type Meal struct {
	ProjectID int64  `gorm:"primaryKey;autoIncrement:false" json:"project_id"`
	Name      string `gorm:"type:varchar(255);primaryKey" json:"name"`
	Sequence  int    `gorm:"not null" json:"sequence"`
}

// MainRecipeSlot assigns the main recipe of a (date, meal) slot
type MainRecipeSlot struct {
	ProjectID int64          `gorm:"primaryKey;autoIncrement:false" json:"project_id"`
	MealName  string         `gorm:"type:varchar(255);primaryKey" json:"meal_name"`
	Date      datatypes.Date `gorm:"primaryKey" json:"date"`
	RecipeID  int64          `gorm:"not null;index:idx_main_recipe_slots_recipe_id" json:"recipe_id"`
}

// AlternativeRecipeSlot offers an additional recipe for a (date, meal) slot
type AlternativeRecipeSlot struct {
	ProjectID int64          `gorm:"primaryKey;autoIncrement:false" json:"project_id"`
	MealName  string         `gorm:"type:varchar(255);primaryKey" json:"meal_name"`
	Date      datatypes.Date `gorm:"primaryKey" json:"date"`
	RecipeID  int64          `gorm:"primaryKey;autoIncrement:false;index:idx_alternative_recipe_slots_recipe_id" json:"recipe_id"`
}

// PersonNumberChange is the headcount delta effective right before a meal slot
type PersonNumberChange struct {
	ProjectID  int64          `gorm:"primaryKey;autoIncrement:false" json:"project_id"`
	Date       datatypes.Date `gorm:"primaryKey" json:"date"`
	MealName   string         `gorm:"type:varchar(255);primaryKey" json:"meal_name"`
	Difference int            `gorm:"not null" json:"difference"`
}

// UnitConversion converts amounts of an ingredient from one unit to another
type UnitConversion struct {
	ProjectID       int64   `gorm:"primaryKey;autoIncrement:false" json:"project_id"`
	SourceUnit      string  `gorm:"type:varchar(64);primaryKey" json:"source_unit"`
	DestinationUnit string  `gorm:"type:varchar(64);primaryKey" json:"destination_unit"`
	Ingredient      string  `gorm:"type:varchar(255);primaryKey" json:"ingredient"`
	Factor          float64 `gorm:"not null" json:"factor"`
}

// TableName specifies the table name for Meal
func (Meal) TableName() string {
	return "meals"
}

// TableName specifies the table name for MainRecipeSlot
func (MainRecipeSlot) TableName() string {
	return "main_recipe_slots"
}

// TableName specifies the table name for AlternativeRecipeSlot
func (AlternativeRecipeSlot) TableName() string {
	return "alternative_recipe_slots"
}

// TableName specifies the table name for PersonNumberChange
func (PersonNumberChange) TableName() string {
	return "person_number_changes"
}

// TableName specifies the table name for UnitConversion
func (UnitConversion) TableName() string {
	return "unit_conversions"
}
