package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/avtanos/vetcard/internal/domain"
)

// CreateDocumentRequest represents the request to register a pet document.
// The binary itself is attached afterwards through the upload endpoint.
type CreateDocumentRequest struct {
	Pet          uuid.UUID `json:"pet" binding:"required"`
	DocumentType string    `json:"document_type" binding:"required"`
	Title        string    `json:"title" binding:"required,max=200"`
	Description  string    `json:"description"`
}

// UpdateDocumentRequest represents a full or partial document update
type UpdateDocumentRequest struct {
	DocumentType *string `json:"document_type"`
	Title        *string `json:"title" binding:"omitempty,max=200"`
	Description  *string `json:"description"`
}

// DocumentResponse represents the pet document response with derived fields
type DocumentResponse struct {
	ID           uuid.UUID `json:"id"`
	Pet          uuid.UUID `json:"pet"`
	PetName      string    `json:"pet_name"`
	OwnerID      uuid.UUID `json:"owner"`
	DocumentType string    `json:"document_type"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	FileURL      *string   `json:"file_url"`
	FileSize     int64     `json:"file_size"`
	FileSizeMB   *float64  `json:"file_size_mb"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

// ToDocumentResponse converts a PetDocument to its response representation
func ToDocumentResponse(d *domain.PetDocument, resolve URLResolver) DocumentResponse {
	resp := DocumentResponse{
		ID:           d.ID,
		Pet:          d.PetID,
		PetName:      d.Pet.Name,
		OwnerID:      d.OwnerID,
		DocumentType: string(d.DocumentType),
		Title:        d.Title,
		Description:  d.Description,
		FileSize:     d.FileSize,
		UploadedAt:   d.CreatedAt,
	}

	if d.FileKey != "" && resolve != nil {
		url := resolve(d.FileKey)
		resp.FileURL = &url
	}
	if d.FileSize > 0 {
		mb := FileSizeMB(d.FileSize)
		resp.FileSizeMB = &mb
	}

	return resp
}

// UploadFileResponse is returned after a successful document upload
type UploadFileResponse struct {
	FileURL string `json:"file_url"`
	Message string `json:"message"`
}
