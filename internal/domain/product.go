package domain

import (
	"github.com/google/uuid"
)

// ProductCategory represents the category of a product or service
type ProductCategory string

const (
	CategoryFood        ProductCategory = "food"
	CategoryMedicine    ProductCategory = "medicine"
	CategoryAccessories ProductCategory = "accessories"
	CategoryToys        ProductCategory = "toys"
	CategoryCare        ProductCategory = "care"
	CategoryOther       ProductCategory = "other"
)

// IsValid reports whether the category is one of the supported values
func (c ProductCategory) IsValid() bool {
	switch c {
	case CategoryFood, CategoryMedicine, CategoryAccessories, CategoryToys,
		CategoryCare, CategoryOther:
		return true
	}
	return false
}

// ProductOrService represents a product or service offered by a partner
type ProductOrService struct {
	BaseModel
	PartnerID   uuid.UUID       `gorm:"type:uuid;not null;index:idx_products_partner_id" json:"partner_id"`
	Name        string          `gorm:"type:varchar(200);not null" json:"name"`
	Category    ProductCategory `gorm:"type:varchar(20);not null;index:idx_products_category" json:"category"`
	Description string          `gorm:"type:text" json:"description"`
	Price       float64         `gorm:"type:numeric(10,2);not null" json:"price"`
	ImageURL    string          `gorm:"type:varchar(500)" json:"image_url"`
	IsAvailable bool            `gorm:"not null;default:true" json:"is_available"`

	Partner Partner `gorm:"foreignKey:PartnerID;constraint:OnDelete:CASCADE" json:"partner,omitempty"`
}

// TableName specifies the table name for ProductOrService
func (ProductOrService) TableName() string {
	return "products_or_services"
}
