package domain

import (
	"github.com/google/uuid"
)

// DocumentType represents the type of an uploaded pet document
type DocumentType string

const (
	DocumentTypeMedical     DocumentType = "medical"
	DocumentTypeVaccination DocumentType = "vaccination"
	DocumentTypePedigree    DocumentType = "pedigree"
	DocumentTypeInsurance   DocumentType = "insurance"
	DocumentTypeOther       DocumentType = "other"
)

// IsValid reports whether the document type is one of the supported values
func (t DocumentType) IsValid() bool {
	switch t {
	case DocumentTypeMedical, DocumentTypeVaccination, DocumentTypePedigree,
		DocumentTypeInsurance, DocumentTypeOther:
		return true
	}
	return false
}

// PetDocument represents a document uploaded for a pet.
// FileSize is recomputed from the stored payload on every upload; a
// client-supplied value is never trusted.
type PetDocument struct {
	BaseModel
	PetID        uuid.UUID    `gorm:"type:uuid;not null;index:idx_pet_documents_pet_id" json:"pet_id"`
	OwnerID      uuid.UUID    `gorm:"type:uuid;not null;index:idx_pet_documents_owner_id" json:"owner_id"`
	DocumentType DocumentType `gorm:"type:varchar(20);not null" json:"document_type"`
	Title        string       `gorm:"type:varchar(200);not null" json:"title"`
	Description  string       `gorm:"type:text" json:"description"`
	FileKey      string       `gorm:"type:varchar(500)" json:"-"`
	FileSize     int64        `gorm:"not null;default:0" json:"file_size"`

	Pet Pet `gorm:"foreignKey:PetID;constraint:OnDelete:CASCADE" json:"pet,omitempty"`
}

// TableName specifies the table name for PetDocument
func (PetDocument) TableName() string {
	return "pet_documents"
}
