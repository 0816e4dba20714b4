package domain

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RecordType represents the type of a medical record
type RecordType string

const (
	RecordTypeVaccination RecordType = "vaccination"
	RecordTypeExamination RecordType = "examination"
	RecordTypeTreatment   RecordType = "treatment"
	RecordTypeSurgery     RecordType = "surgery"
	RecordTypeOther       RecordType = "other"
)

// IsValid reports whether the record type is one of the supported values
func (t RecordType) IsValid() bool {
	switch t {
	case RecordTypeVaccination, RecordTypeExamination, RecordTypeTreatment,
		RecordTypeSurgery, RecordTypeOther:
		return true
	}
	return false
}

// MedicalRecord represents an entry in a pet's medical history
type MedicalRecord struct {
	BaseModel
	PetID        uuid.UUID      `gorm:"type:uuid;not null;index:idx_medical_records_pet_id" json:"pet_id"`
	RecordType   RecordType     `gorm:"type:varchar(20);not null" json:"record_type"`
	Title        string         `gorm:"type:varchar(200);not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	Date         datatypes.Date `gorm:"type:date;not null;index:idx_medical_records_date" json:"date"`
	Veterinarian string         `gorm:"type:varchar(100)" json:"veterinarian"`
	Cost         *float64       `gorm:"type:numeric(10,2)" json:"cost"`

	Pet Pet `gorm:"foreignKey:PetID;constraint:OnDelete:CASCADE" json:"pet,omitempty"`
}

// TableName specifies the table name for MedicalRecord
func (MedicalRecord) TableName() string {
	return "medical_records"
}
