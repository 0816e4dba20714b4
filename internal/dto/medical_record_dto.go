package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/avtanos/vetcard/internal/domain"
)

// CreateMedicalRecordRequest represents the request to add a medical record
type CreateMedicalRecordRequest struct {
	Pet          uuid.UUID `json:"pet" binding:"required"`
	RecordType   string    `json:"record_type" binding:"required"`
	Title        string    `json:"title" binding:"required,max=200"`
	Description  string    `json:"description" binding:"required"`
	Date         string    `json:"date" binding:"required"` // YYYY-MM-DD
	Veterinarian string    `json:"veterinarian" binding:"max=100"`
	Cost         *float64  `json:"cost"`
}

// UpdateMedicalRecordRequest represents a full or partial record update
type UpdateMedicalRecordRequest struct {
	RecordType   *string  `json:"record_type"`
	Title        *string  `json:"title" binding:"omitempty,max=200"`
	Description  *string  `json:"description"`
	Date         *string  `json:"date"` // YYYY-MM-DD
	Veterinarian *string  `json:"veterinarian" binding:"omitempty,max=100"`
	Cost         *float64 `json:"cost"`
}

// MedicalRecordResponse represents the medical record response
type MedicalRecordResponse struct {
	ID           uuid.UUID `json:"id"`
	Pet          uuid.UUID `json:"pet"`
	PetName      string    `json:"pet_name"`
	RecordType   string    `json:"record_type"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Date         string    `json:"date"`
	Veterinarian string    `json:"veterinarian"`
	Cost         *float64  `json:"cost"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToMedicalRecordResponse converts a MedicalRecord to its response
// representation
func ToMedicalRecordResponse(r *domain.MedicalRecord) MedicalRecordResponse {
	return MedicalRecordResponse{
		ID:           r.ID,
		Pet:          r.PetID,
		PetName:      r.Pet.Name,
		RecordType:   string(r.RecordType),
		Title:        r.Title,
		Description:  r.Description,
		Date:         formatDate(r.Date),
		Veterinarian: r.Veterinarian,
		Cost:         r.Cost,
		CreatedAt:    r.CreatedAt,
	}
}
