package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/avtanos/vetcard/internal/domain"
)

// DocumentRepository defines the interface for pet document data operations
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.PetDocument) error
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.PetDocument, error)
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.PetDocument, error)
	Update(ctx context.Context, doc *domain.PetDocument) error
	Delete(ctx context.Context, doc *domain.PetDocument) error
}

type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(ctx context.Context, doc *domain.PetDocument) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *documentRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.PetDocument, error) {
	var docs []domain.PetDocument
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Preload("Pet").
		Order("created_at DESC").
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *documentRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.PetDocument, error) {
	var doc domain.PetDocument
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Preload("Pet").
		First(&doc).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepository) Update(ctx context.Context, doc *domain.PetDocument) error {
	return r.db.WithContext(ctx).Save(doc).Error
}

func (r *documentRepository) Delete(ctx context.Context, doc *domain.PetDocument) error {
	return r.db.WithContext(ctx).Delete(doc).Error
}
