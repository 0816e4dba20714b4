package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/avtanos/vetcard/internal/domain"
)

// ProductFilter narrows the product catalog listing
type ProductFilter struct {
	Category  string
	PartnerID *uuid.UUID
}

// ProductRepository defines the interface for product catalog operations
type ProductRepository interface {
	Create(ctx context.Context, product *domain.ProductOrService) error
	// FindAvailable lists available products, optionally filtered by
	// category and partner, ordered by name.
	FindAvailable(ctx context.Context, filter ProductFilter) ([]domain.ProductOrService, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.ProductOrService, error)
	Update(ctx context.Context, product *domain.ProductOrService) error
	Delete(ctx context.Context, product *domain.ProductOrService) error
	// DistinctCategories returns the categories that currently have
	// available products.
	DistinctCategories(ctx context.Context) ([]string, error)
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *domain.ProductOrService) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) FindAvailable(ctx context.Context, filter ProductFilter) ([]domain.ProductOrService, error) {
	var products []domain.ProductOrService
	query := r.db.WithContext(ctx).
		Where("is_available = ?", true).
		Preload("Partner").
		Order("name ASC")
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.PartnerID != nil {
		query = query.Where("partner_id = ?", *filter.PartnerID)
	}
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.ProductOrService, error) {
	var product domain.ProductOrService
	err := r.db.WithContext(ctx).
		Preload("Partner").
		First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Update(ctx context.Context, product *domain.ProductOrService) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) Delete(ctx context.Context, product *domain.ProductOrService) error {
	return r.db.WithContext(ctx).Delete(product).Error
}

// DistinctCategories spans all products, available or not.
func (r *productRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).
		Model(&domain.ProductOrService{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
