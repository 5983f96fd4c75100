package domain

// DietaryType classifies a dietary speciality of a recipe
type DietaryType string

const (
	DietaryTypeTrace    DietaryType = "TRACE"
	DietaryTypeAllergen DietaryType = "ALLERGEN"
	DietaryTypeFreeOf   DietaryType = "FREE_OF"
)

// Recipe is a reusable recipe that projects assign to meal slots
type Recipe struct {
	BaseModel
	Name           string `gorm:"type:varchar(255);not null" json:"name"`
	Description    string `gorm:"type:text" json:"description"`
	NumberOfPeople int    `gorm:"not null;default:0" json:"number_of_people"`
	Version        int64  `gorm:"not null;default:0" json:"version"`
	ImageVersion   int64  `gorm:"not null;default:0" json:"image_version"`
	ImageURI       string `gorm:"type:varchar(512);not null;default:''" json:"image_uri"`

	Ingredients            []Ingredient            `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Instructions           []Instruction           `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	DietarySpecialities    []DietarySpeciality     `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	MainRecipeSlots        []MainRecipeSlot        `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	AlternativeRecipeSlots []AlternativeRecipeSlot `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
}

// Ingredient is one line of a recipe's ingredient list
type Ingredient struct {
	ID              int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	RecipeID        int64   `gorm:"not null;index:idx_ingredients_recipe_id" json:"recipe_id"`
	Name            string  `gorm:"type:varchar(255);not null" json:"name"`
	IngredientGroup string  `gorm:"type:varchar(255);not null;default:''" json:"ingredient_group"`
	Amount          float64 `gorm:"not null" json:"amount"`
	Unit            string  `gorm:"type:varchar(64);not null;default:''" json:"unit"`
}

// Instruction is a numbered preparation step
type Instruction struct {
	RecipeID   int64  `gorm:"primaryKey;autoIncrement:false" json:"recipe_id"`
	StepNumber int    `gorm:"primaryKey;autoIncrement:false" json:"step_number"`
	Text       string `gorm:"type:text;not null" json:"text"`
}

// DietarySpeciality records a trace, an allergen or a "free of" claim of a recipe
type DietarySpeciality struct {
	RecipeID   int64       `gorm:"primaryKey;autoIncrement:false" json:"recipe_id"`
	Speciality string      `gorm:"type:varchar(255);primaryKey" json:"speciality"`
	Type       DietaryType `gorm:"type:varchar(16);primaryKey" json:"type"`
}

// TableName specifies the table name for Recipe
func (Recipe) TableName() string {
	return "recipes"
}

// TableName specifies the table name for Ingredient
func (Ingredient) TableName() string {
	return "ingredients"
}

// TableName specifies the table name for Instruction
func (Instruction) TableName() string {
	return "instructions"
}

// TableName specifies the table name for DietarySpeciality
func (DietarySpeciality) TableName() string {
	return "dietary_specialities"
}
