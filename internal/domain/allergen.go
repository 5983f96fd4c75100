package domain

import "gorm.io/datatypes"

// AllergenPerson is an attendee with dietary restrictions and their presence window
type AllergenPerson struct {
	ProjectID     int64          `gorm:"primaryKey;autoIncrement:false" json:"project_id"`
	Name          string         `gorm:"type:varchar(255);primaryKey" json:"name"`
	ArrivalDate   datatypes.Date `gorm:"not null" json:"arrival_date"`
	DepartureDate datatypes.Date `gorm:"not null" json:"departure_date"`
	ArrivalMeal   string         `gorm:"type:varchar(255);not null" json:"arrival_meal"`
	DepartureMeal string         `gorm:"type:varchar(255);not null" json:"departure_meal"`
}

// Allergen belongs to an allergen person. Traces marks a cross-contamination
// sensitivity rather than a full allergy.
type Allergen struct {
	ProjectID  int64  `gorm:"primaryKey;autoIncrement:false" json:"project_id"`
	PersonName string `gorm:"type:varchar(255);primaryKey" json:"person_name"`
	Name       string `gorm:"type:varchar(255);primaryKey" json:"name"`
	Traces     bool   `gorm:"not null;default:false" json:"traces"`
}

// TableName specifies the table name for AllergenPerson
func (AllergenPerson) TableName() string {
	return "allergen_people"
}

// TableName specifies the table name for Allergen
func (Allergen) TableName() string {
	return "allergens"
}
