package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/avtanos/vetcard/internal/domain"
)

// URLResolver converts a storage key into an absolute URL for the current
// request. Handlers construct one from the request origin and the storage
// backend's public URL scheme.
type URLResolver func(key string) string

// CreatePetRequest represents the request to register a new pet
type CreatePetRequest struct {
	Name      string   `json:"name" binding:"required,max=100"`
	Species   string   `json:"species"`
	Breed     string   `json:"breed" binding:"max=100"`
	BirthDate *string  `json:"birth_date"` // YYYY-MM-DD
	WeightKg  *float64 `json:"weight_kg"`
	Notes     string   `json:"notes"`
	ImageURL  string   `json:"image_url"`
}

// UpdatePetRequest represents a full or partial pet update.
// Nil pointers leave the corresponding field untouched.
type UpdatePetRequest struct {
	Name      *string  `json:"name" binding:"omitempty,max=100"`
	Species   *string  `json:"species"`
	Breed     *string  `json:"breed" binding:"omitempty,max=100"`
	BirthDate *string  `json:"birth_date"` // YYYY-MM-DD
	WeightKg  *float64 `json:"weight_kg"`
	Notes     *string  `json:"notes"`
	ImageURL  *string  `json:"image_url"`
}

// PetResponse represents the pet response with derived fields
type PetResponse struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner"`
	Name      string    `json:"name"`
	Species   string    `json:"species"`
	Breed     string    `json:"breed"`
	BirthDate *string   `json:"birth_date"`
	Age       *int      `json:"age"`
	WeightKg  *float64  `json:"weight_kg"`
	Notes     string    `json:"notes"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToPetResponse converts a Pet to its response representation.
// The stored image resolves through the URL resolver; when no image is
// stored the external image_url field is returned as-is.
func ToPetResponse(p *domain.Pet, resolve URLResolver) PetResponse {
	resp := PetResponse{
		ID:        p.ID,
		OwnerID:   p.OwnerID,
		Name:      p.Name,
		Species:   string(p.Species),
		Breed:     p.Breed,
		WeightKg:  p.WeightKg,
		Notes:     p.Notes,
		ImageURL:  p.ImageURL,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}

	if p.BirthDate != nil {
		bd := formatDate(*p.BirthDate)
		resp.BirthDate = &bd
		age := AgeAt(*p.BirthDate, time.Now())
		resp.Age = &age
	}

	if p.ImageKey != "" && resolve != nil {
		resp.ImageURL = resolve(p.ImageKey)
	}

	return resp
}

// UploadImageResponse is returned after a successful pet image upload
type UploadImageResponse struct {
	ImageURL string `json:"image_url"`
	Message  string `json:"message"`
}
