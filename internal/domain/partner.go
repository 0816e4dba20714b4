package domain

// PartnerType represents the category of a partner business
type PartnerType string

const (
	PartnerTypeClinic   PartnerType = "clinic"
	PartnerTypePharmacy PartnerType = "pharmacy"
	PartnerTypeGrooming PartnerType = "grooming"
	PartnerTypeHotel    PartnerType = "hotel"
	PartnerTypeOther    PartnerType = "other"
)

// IsValid reports whether the partner type is one of the supported values
func (t PartnerType) IsValid() bool {
	switch t {
	case PartnerTypeClinic, PartnerTypePharmacy, PartnerTypeGrooming,
		PartnerTypeHotel, PartnerTypeOther:
		return true
	}
	return false
}

// Partner represents a partner business (clinic, pharmacy, grooming, hotel).
// Partners are globally visible to authenticated users; they are not owned
// by an account.
type Partner struct {
	BaseModel
	Name        string      `gorm:"type:varchar(200);not null" json:"name"`
	PartnerType PartnerType `gorm:"type:varchar(20);not null;index:idx_partners_partner_type" json:"partner_type"`
	Address     string      `gorm:"type:text;not null" json:"address"`
	Phone       string      `gorm:"type:varchar(20)" json:"phone"`
	Email       string      `gorm:"type:varchar(254)" json:"email"`
	Website     string      `gorm:"type:varchar(500)" json:"website"`
	Description string      `gorm:"type:text" json:"description"`
	Rating      *float64    `gorm:"type:numeric(3,1)" json:"rating"`

	Products []ProductOrService `gorm:"foreignKey:PartnerID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
}

// TableName specifies the table name for Partner
func (Partner) TableName() string {
	return "partners"
}
