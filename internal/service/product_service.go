package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/avtanos/vetcard/internal/domain"
	"github.com/avtanos/vetcard/internal/dto"
	"github.com/avtanos/vetcard/internal/repository"
	"github.com/avtanos/vetcard/internal/response"
)

// ProductService defines the interface for product catalog operations
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*domain.ProductOrService, error)
	List(ctx context.Context, filters dto.ProductFilters) ([]domain.ProductOrService, error)
	Get(ctx context.Context, productID uuid.UUID) (*domain.ProductOrService, error)
	Update(ctx context.Context, productID uuid.UUID, req dto.UpdateProductRequest) (*domain.ProductOrService, error)
	Delete(ctx context.Context, productID uuid.UUID) error
	Categories(ctx context.Context) ([]string, error)
}

type productService struct {
	productRepo repository.ProductRepository
	partnerRepo repository.PartnerRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, partnerRepo repository.PartnerRepository) ProductService {
	return &productService{productRepo: productRepo, partnerRepo: partnerRepo}
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*domain.ProductOrService, error) {
	category := domain.ProductCategory(req.Category)
	if !category.IsValid() {
		return nil, response.NewFieldError("category", "Invalid category")
	}
	if req.Price == nil || *req.Price < 0 {
		return nil, response.NewFieldError("price", "Price must be a non-negative number")
	}

	partner, err := s.partnerRepo.FindByID(ctx, req.Partner)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewFieldError("partner", "Partner not found")
		}
		return nil, err
	}

	product := &domain.ProductOrService{
		PartnerID:   partner.ID,
		Name:        req.Name,
		Category:    category,
		Description: req.Description,
		Price:       *req.Price,
		ImageURL:    req.ImageURL,
		IsAvailable: true,
	}
	if req.IsAvailable != nil {
		product.IsAvailable = *req.IsAvailable
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	product.Partner = *partner
	return product, nil
}

func (s *productService) List(ctx context.Context, filters dto.ProductFilters) ([]domain.ProductOrService, error) {
	if filters.Category != "" && !domain.ProductCategory(filters.Category).IsValid() {
		return []domain.ProductOrService{}, nil
	}
	return s.productRepo.FindAvailable(ctx, repository.ProductFilter{
		Category:  filters.Category,
		PartnerID: filters.Partner,
	})
}

func (s *productService) Get(ctx context.Context, productID uuid.UUID) (*domain.ProductOrService, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Product not found")
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) Update(ctx context.Context, productID uuid.UUID, req dto.UpdateProductRequest) (*domain.ProductOrService, error) {
	product, err := s.Get(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Category != nil {
		category := domain.ProductCategory(*req.Category)
		if !category.IsValid() {
			return nil, response.NewFieldError("category", "Invalid category")
		}
		product.Category = category
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, response.NewFieldError("price", "Price must be a non-negative number")
		}
		product.Price = *req.Price
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.IsAvailable != nil {
		product.IsAvailable = *req.IsAvailable
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Delete(ctx context.Context, productID uuid.UUID) error {
	product, err := s.Get(ctx, productID)
	if err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, product)
}

func (s *productService) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.productRepo.DistinctCategories(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}
