package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/avtanos/vetcard/internal/domain"
)

// CreateReminderRequest represents the request to schedule a reminder
type CreateReminderRequest struct {
	Pet          uuid.UUID `json:"pet" binding:"required"`
	ReminderType string    `json:"reminder_type" binding:"required"`
	Title        string    `json:"title" binding:"required,max=200"`
	Description  string    `json:"description"`
	DueDate      string    `json:"due_date" binding:"required"` // YYYY-MM-DD
	IsCompleted  bool      `json:"is_completed"`
}

// UpdateReminderRequest represents a full or partial reminder update
type UpdateReminderRequest struct {
	ReminderType *string `json:"reminder_type"`
	Title        *string `json:"title" binding:"omitempty,max=200"`
	Description  *string `json:"description"`
	DueDate      *string `json:"due_date"` // YYYY-MM-DD
	IsCompleted  *bool   `json:"is_completed"`
}

// ReminderResponse represents the reminder response with derived fields
type ReminderResponse struct {
	ID           uuid.UUID `json:"id"`
	Pet          uuid.UUID `json:"pet"`
	PetName      string    `json:"pet_name"`
	ReminderType string    `json:"reminder_type"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	DueDate      string    `json:"due_date"`
	DaysUntilDue int       `json:"days_until_due"`
	IsCompleted  bool      `json:"is_completed"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToReminderResponse converts a Reminder to its response representation
func ToReminderResponse(r *domain.Reminder) ReminderResponse {
	return ReminderResponse{
		ID:           r.ID,
		Pet:          r.PetID,
		PetName:      r.Pet.Name,
		ReminderType: string(r.ReminderType),
		Title:        r.Title,
		Description:  r.Description,
		DueDate:      formatDate(r.DueDate),
		DaysUntilDue: DaysUntilAt(r.DueDate, time.Now()),
		IsCompleted:  r.IsCompleted,
		CreatedAt:    r.CreatedAt,
	}
}
