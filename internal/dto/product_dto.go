package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/avtanos/vetcard/internal/domain"
)

// CreateProductRequest represents the request to list a product or service
type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required,max=200"`
	Category    string   `json:"category" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       *float64 `json:"price" binding:"required"`
	Partner     uuid.UUID `json:"partner" binding:"required"`
	ImageURL    string   `json:"image_url" binding:"omitempty,url"`
	IsAvailable *bool    `json:"is_available"`
}

// UpdateProductRequest represents a full or partial product update
type UpdateProductRequest struct {
	Name        *string  `json:"name" binding:"omitempty,max=200"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	ImageURL    *string  `json:"image_url" binding:"omitempty,url"`
	IsAvailable *bool    `json:"is_available"`
}

// ProductFilters holds the supported product list filters
type ProductFilters struct {
	Category string
	Partner  *uuid.UUID
}

// ProductResponse represents the product response
type ProductResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Partner     uuid.UUID `json:"partner"`
	PartnerName string    `json:"partner_name"`
	ImageURL    string    `json:"image_url"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
}

// CategoriesResponse lists the distinct product categories in use
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// ToProductResponse converts a ProductOrService to its response
// representation
func ToProductResponse(p *domain.ProductOrService) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    string(p.Category),
		Description: p.Description,
		Price:       p.Price,
		Partner:     p.PartnerID,
		PartnerName: p.Partner.Name,
		ImageURL:    p.ImageURL,
		IsAvailable: p.IsAvailable,
		CreatedAt:   p.CreatedAt,
	}
}
