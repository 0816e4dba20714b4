package domain

// User represents a registered account that owns pets and documents
type User struct {
	BaseModel
	Username     string `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	Email        string `gorm:"type:varchar(254)" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	FirstName    string `gorm:"type:varchar(150)" json:"first_name"`
	LastName     string `gorm:"type:varchar(150)" json:"last_name"`

	// Relations
	Pets      []Pet         `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"pets,omitempty"`
	Documents []PetDocument `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"documents,omitempty"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
