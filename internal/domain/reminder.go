package domain

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ReminderType represents the type of a reminder
type ReminderType string

const (
	ReminderTypeVaccination ReminderType = "vaccination"
	ReminderTypeDeworming   ReminderType = "deworming"
	ReminderTypeExamination ReminderType = "examination"
	ReminderTypeGrooming    ReminderType = "grooming"
	ReminderTypeOther       ReminderType = "other"
)

// IsValid reports whether the reminder type is one of the supported values
func (t ReminderType) IsValid() bool {
	switch t {
	case ReminderTypeVaccination, ReminderTypeDeworming, ReminderTypeExamination,
		ReminderTypeGrooming, ReminderTypeOther:
		return true
	}
	return false
}

// Reminder represents a scheduled care reminder for a pet
type Reminder struct {
	BaseModel
	PetID        uuid.UUID      `gorm:"type:uuid;not null;index:idx_reminders_pet_id" json:"pet_id"`
	ReminderType ReminderType   `gorm:"type:varchar(20);not null" json:"reminder_type"`
	Title        string         `gorm:"type:varchar(200);not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	DueDate      datatypes.Date `gorm:"type:date;not null;index:idx_reminders_due_date" json:"due_date"`
	IsCompleted  bool           `gorm:"not null;default:false" json:"is_completed"`

	Pet Pet `gorm:"foreignKey:PetID;constraint:OnDelete:CASCADE" json:"pet,omitempty"`
}

// TableName specifies the table name for Reminder
func (Reminder) TableName() string {
	return "reminders"
}
