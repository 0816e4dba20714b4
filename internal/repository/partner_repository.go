package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/avtanos/vetcard/internal/domain"
)

// PartnerRepository defines the interface for partner data operations
type PartnerRepository interface {
	Create(ctx context.Context, partner *domain.Partner) error
	FindAll(ctx context.Context, partnerType string) ([]domain.Partner, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Partner, error)
	Update(ctx context.Context, partner *domain.Partner) error
	// Delete removes the partner together with its product listings.
	Delete(ctx context.Context, partner *domain.Partner) error
}

type partnerRepository struct {
	db *gorm.DB
}

// NewPartnerRepository creates a new partner repository
func NewPartnerRepository(db *gorm.DB) PartnerRepository {
	return &partnerRepository{db: db}
}

func (r *partnerRepository) Create(ctx context.Context, partner *domain.Partner) error {
	return r.db.WithContext(ctx).Create(partner).Error
}

func (r *partnerRepository) FindAll(ctx context.Context, partnerType string) ([]domain.Partner, error) {
	var partners []domain.Partner
	query := r.db.WithContext(ctx).Order("name ASC")
	if partnerType != "" {
		query = query.Where("partner_type = ?", partnerType)
	}
	if err := query.Find(&partners).Error; err != nil {
		return nil, err
	}
	return partners, nil
}

func (r *partnerRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Partner, error) {
	var partner domain.Partner
	if err := r.db.WithContext(ctx).First(&partner, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &partner, nil
}

func (r *partnerRepository) Update(ctx context.Context, partner *domain.Partner) error {
	return r.db.WithContext(ctx).Save(partner).Error
}

func (r *partnerRepository) Delete(ctx context.Context, partner *domain.Partner) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("partner_id = ?", partner.ID).Delete(&domain.ProductOrService{}).Error; err != nil {
			return err
		}
		return tx.Delete(partner).Error
	})
}
