package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Project represents a planned event (camp, trip) with its meal plan
type Project struct {
	BaseModel
	Name           string         `gorm:"type:varchar(255);not null" json:"name"`
	StartDate      datatypes.Date `gorm:"not null" json:"start_date"`
	EndDate        datatypes.Date `gorm:"not null" json:"end_date"`
	ImageURI       string         `gorm:"type:varchar(512);not null;default:''" json:"image_uri"`
	ProjectVersion int64          `gorm:"not null;default:0" json:"project_version"`
	ImageVersion   int64          `gorm:"not null;default:0" json:"image_version"`

	Participants           []ProjectParticipant    `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
	Invitations            []ProjectInvitation     `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
	Meals                  []Meal                  `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
	AllergenPeople         []AllergenPerson        `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
	Allergens              []Allergen              `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
	MainRecipeSlots        []MainRecipeSlot        `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
	AlternativeRecipeSlots []AlternativeRecipeSlot `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
	UnitConversions        []UnitConversion        `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
	PersonNumberChanges    []PersonNumberChange    `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
}

// ProjectParticipant links a user to a project. The composite key makes
// participants a set.
type ProjectParticipant struct {
	ProjectID int64     `gorm:"primaryKey;autoIncrement:false" json:"project_id"`
	UserID    int64     `gorm:"primaryKey;autoIncrement:false;index:idx_project_participants_user_id" json:"user_id"`
	JoinedAt  time.Time `gorm:"not null" json:"joined_at"`
}

// ProjectInvitation is an opaque token that resolves to a project until it expires
type ProjectInvitation struct {
	Token     string    `gorm:"type:varchar(64);primaryKey" json:"token"`
	ProjectID int64     `gorm:"not null;index:idx_project_invitations_project_id" json:"project_id"`
	CreatedBy int64     `gorm:"not null" json:"created_by"`
	ExpiresAt time.Time `gorm:"not null;index:idx_project_invitations_expires_at" json:"expires_at"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

// ProjectStub is the list-view projection of a project
type ProjectStub struct {
	ID             int64
	Name           string
	ImageURI       string
	ImageVersion   int64
	ProjectVersion int64
}

// TableName specifies the table name for Project
func (Project) TableName() string {
	return "projects"
}

// TableName specifies the table name for ProjectParticipant
func (ProjectParticipant) TableName() string {
	return "project_participants"
}

// TableName specifies the table name for ProjectInvitation
func (ProjectInvitation) TableName() string {
	return "project_invitations"
}
