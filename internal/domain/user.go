package domain

// User is an account that can participate in projects
type User struct {
	BaseModel
	Name string `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_name" json:"name"`

	Credentials    *Credentials         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Participations []ProjectParticipant `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// Credentials holds the password hash of a user
type Credentials struct {
	UserID       int64  `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// TableName specifies the table name for Credentials
func (Credentials) TableName() string {
	return "credentials"
}
