package domain

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Species represents the species of a pet
type Species string

const (
	SpeciesCat   Species = "cat"
	SpeciesDog   Species = "dog"
	SpeciesOther Species = "other"
)

// IsValid reports whether the species is one of the supported values
func (s Species) IsValid() bool {
	switch s {
	case SpeciesCat, SpeciesDog, SpeciesOther:
		return true
	}
	return false
}

// Pet represents a pet owned by a user
type Pet struct {
	BaseModel
	OwnerID   uuid.UUID       `gorm:"type:uuid;not null;index:idx_pets_owner_id" json:"owner_id"`
	Name      string          `gorm:"type:varchar(100);not null" json:"name"`
	Species   Species         `gorm:"type:varchar(10);not null;default:'cat'" json:"species"`
	Breed     string          `gorm:"type:varchar(100)" json:"breed"`
	BirthDate *datatypes.Date `gorm:"type:date" json:"birth_date"`
	WeightKg  *float64        `gorm:"type:numeric(5,2)" json:"weight_kg"`
	Notes     string          `gorm:"type:text" json:"notes"`

	// ImageKey is the storage key of the uploaded photo; ImageURL is an
	// optional external URL used as a fallback when no photo is stored.
	ImageKey string `gorm:"type:varchar(500)" json:"-"`
	ImageURL string `gorm:"type:varchar(500)" json:"-"`

	MedicalRecords []MedicalRecord `gorm:"foreignKey:PetID;constraint:OnDelete:CASCADE" json:"medical_records,omitempty"`
	Reminders      []Reminder      `gorm:"foreignKey:PetID;constraint:OnDelete:CASCADE" json:"reminders,omitempty"`
	Documents      []PetDocument   `gorm:"foreignKey:PetID;constraint:OnDelete:CASCADE" json:"documents,omitempty"`
}

// TableName specifies the table name for Pet
func (Pet) TableName() string {
	return "pets"
}
