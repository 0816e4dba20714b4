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

// PartnerService defines the interface for partner directory operations.
// The directory is shared; any authenticated user can read and manage it.
type PartnerService interface {
	Create(ctx context.Context, req dto.CreatePartnerRequest) (*domain.Partner, error)
	List(ctx context.Context, partnerType string) ([]domain.Partner, error)
	Get(ctx context.Context, partnerID uuid.UUID) (*domain.Partner, error)
	Update(ctx context.Context, partnerID uuid.UUID, req dto.UpdatePartnerRequest) (*domain.Partner, error)
	Delete(ctx context.Context, partnerID uuid.UUID) error
}

type partnerService struct {
	partnerRepo repository.PartnerRepository
}

// NewPartnerService creates a new partner service
func NewPartnerService(partnerRepo repository.PartnerRepository) PartnerService {
	return &partnerService{partnerRepo: partnerRepo}
}

func (s *partnerService) Create(ctx context.Context, req dto.CreatePartnerRequest) (*domain.Partner, error) {
	partnerType := domain.PartnerType(req.PartnerType)
	if !partnerType.IsValid() {
		return nil, response.NewFieldError("partner_type", "Invalid partner type")
	}
	if err := validateRating(req.Rating); err != nil {
		return nil, err
	}

	partner := &domain.Partner{
		Name:        req.Name,
		PartnerType: partnerType,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		Website:     req.Website,
		Description: req.Description,
		Rating:      req.Rating,
	}
	if err := s.partnerRepo.Create(ctx, partner); err != nil {
		return nil, err
	}
	return partner, nil
}

func (s *partnerService) List(ctx context.Context, partnerType string) ([]domain.Partner, error) {
	if partnerType != "" && !domain.PartnerType(partnerType).IsValid() {
		return []domain.Partner{}, nil
	}
	return s.partnerRepo.FindAll(ctx, partnerType)
}

func (s *partnerService) Get(ctx context.Context, partnerID uuid.UUID) (*domain.Partner, error) {
	partner, err := s.partnerRepo.FindByID(ctx, partnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Partner not found")
		}
		return nil, err
	}
	return partner, nil
}

func (s *partnerService) Update(ctx context.Context, partnerID uuid.UUID, req dto.UpdatePartnerRequest) (*domain.Partner, error) {
	partner, err := s.Get(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		partner.Name = *req.Name
	}
	if req.PartnerType != nil {
		partnerType := domain.PartnerType(*req.PartnerType)
		if !partnerType.IsValid() {
			return nil, response.NewFieldError("partner_type", "Invalid partner type")
		}
		partner.PartnerType = partnerType
	}
	if req.Address != nil {
		partner.Address = *req.Address
	}
	if req.Phone != nil {
		partner.Phone = *req.Phone
	}
	if req.Email != nil {
		partner.Email = *req.Email
	}
	if req.Website != nil {
		partner.Website = *req.Website
	}
	if req.Description != nil {
		partner.Description = *req.Description
	}
	if req.Rating != nil {
		if err := validateRating(req.Rating); err != nil {
			return nil, err
		}
		partner.Rating = req.Rating
	}

	if err := s.partnerRepo.Update(ctx, partner); err != nil {
		return nil, err
	}
	return partner, nil
}

func (s *partnerService) Delete(ctx context.Context, partnerID uuid.UUID) error {
	partner, err := s.Get(ctx, partnerID)
	if err != nil {
		return err
	}
	return s.partnerRepo.Delete(ctx, partner)
}

func validateRating(rating *float64) error {
	if rating != nil && (*rating < 0 || *rating > 5) {
		return response.NewFieldError("rating", "Rating must be between 0 and 5")
	}
	return nil
}
