package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/avtanos/vetcard/internal/domain"
)

// CreatePartnerRequest represents the request to register a partner business
type CreatePartnerRequest struct {
	Name        string   `json:"name" binding:"required,max=200"`
	PartnerType string   `json:"partner_type" binding:"required"`
	Address     string   `json:"address" binding:"required"`
	Phone       string   `json:"phone" binding:"max=20"`
	Email       string   `json:"email" binding:"omitempty,email"`
	Website     string   `json:"website" binding:"omitempty,url"`
	Description string   `json:"description"`
	Rating      *float64 `json:"rating"`
}

// UpdatePartnerRequest represents a full or partial partner update
type UpdatePartnerRequest struct {
	Name        *string  `json:"name" binding:"omitempty,max=200"`
	PartnerType *string  `json:"partner_type"`
	Address     *string  `json:"address"`
	Phone       *string  `json:"phone" binding:"omitempty,max=20"`
	Email       *string  `json:"email" binding:"omitempty,email"`
	Website     *string  `json:"website" binding:"omitempty,url"`
	Description *string  `json:"description"`
	Rating      *float64 `json:"rating"`
}

// PartnerResponse represents the partner response
type PartnerResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	PartnerType string    `json:"partner_type"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Website     string    `json:"website"`
	Description string    `json:"description"`
	Rating      *float64  `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToPartnerResponse converts a Partner to its response representation
func ToPartnerResponse(p *domain.Partner) PartnerResponse {
	return PartnerResponse{
		ID:          p.ID,
		Name:        p.Name,
		PartnerType: string(p.PartnerType),
		Address:     p.Address,
		Phone:       p.Phone,
		Email:       p.Email,
		Website:     p.Website,
		Description: p.Description,
		Rating:      p.Rating,
		CreatedAt:   p.CreatedAt,
	}
}
