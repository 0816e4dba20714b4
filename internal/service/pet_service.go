package service

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/avtanos/vetcard/internal/config"
	"github.com/avtanos/vetcard/internal/domain"
	"github.com/avtanos/vetcard/internal/dto"
	"github.com/avtanos/vetcard/internal/repository"
	"github.com/avtanos/vetcard/internal/response"
	"github.com/avtanos/vetcard/internal/storage"
)

// PetService defines the interface for pet operations
type PetService interface {
	Create(ctx context.Context, ownerID uuid.UUID, req dto.CreatePetRequest) (*domain.Pet, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.Pet, error)
	Get(ctx context.Context, ownerID, petID uuid.UUID) (*domain.Pet, error)
	Update(ctx context.Context, ownerID, petID uuid.UUID, req dto.UpdatePetRequest) (*domain.Pet, error)
	Delete(ctx context.Context, ownerID, petID uuid.UUID) error
	UploadImage(ctx context.Context, ownerID, petID uuid.UUID, file io.Reader, size int64, contentType, fileName string) (*domain.Pet, error)
}

type petService struct {
	petRepo repository.PetRepository
	store   storage.Storage
	upload  config.UploadConfig
	logger  *zap.Logger
}

// NewPetService creates a new pet service
func NewPetService(petRepo repository.PetRepository, store storage.Storage, upload config.UploadConfig, logger *zap.Logger) PetService {
	return &petService{petRepo: petRepo, store: store, upload: upload, logger: logger}
}

func (s *petService) Create(ctx context.Context, ownerID uuid.UUID, req dto.CreatePetRequest) (*domain.Pet, error) {
	species := domain.Species(req.Species)
	if req.Species == "" {
		species = domain.SpeciesCat
	}
	if !species.IsValid() {
		return nil, response.NewFieldError("species", "Invalid species")
	}

	pet := &domain.Pet{
		OwnerID:  ownerID,
		Name:     req.Name,
		Species:  species,
		Breed:    req.Breed,
		WeightKg: req.WeightKg,
		Notes:    req.Notes,
		ImageURL: req.ImageURL,
	}
	if req.BirthDate != nil {
		birthDate, err := dto.ParseDate(*req.BirthDate)
		if err != nil {
			return nil, response.NewFieldError("birth_date", "Date has wrong format. Use YYYY-MM-DD.")
		}
		pet.BirthDate = &birthDate
	}

	if err := s.petRepo.Create(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

func (s *petService) List(ctx context.Context, ownerID uuid.UUID) ([]domain.Pet, error) {
	return s.petRepo.FindByOwner(ctx, ownerID)
}

func (s *petService) Get(ctx context.Context, ownerID, petID uuid.UUID) (*domain.Pet, error) {
	pet, err := s.petRepo.FindByIDAndOwner(ctx, petID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Pet not found")
		}
		return nil, err
	}
	return pet, nil
}

func (s *petService) Update(ctx context.Context, ownerID, petID uuid.UUID, req dto.UpdatePetRequest) (*domain.Pet, error) {
	pet, err := s.Get(ctx, ownerID, petID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		pet.Name = *req.Name
	}
	if req.Species != nil {
		species := domain.Species(*req.Species)
		if !species.IsValid() {
			return nil, response.NewFieldError("species", "Invalid species")
		}
		pet.Species = species
	}
	if req.Breed != nil {
		pet.Breed = *req.Breed
	}
	if req.BirthDate != nil {
		if *req.BirthDate == "" {
			pet.BirthDate = nil
		} else {
			birthDate, err := dto.ParseDate(*req.BirthDate)
			if err != nil {
				return nil, response.NewFieldError("birth_date", "Date has wrong format. Use YYYY-MM-DD.")
			}
			pet.BirthDate = &birthDate
		}
	}
	if req.WeightKg != nil {
		pet.WeightKg = req.WeightKg
	}
	if req.Notes != nil {
		pet.Notes = *req.Notes
	}
	if req.ImageURL != nil {
		pet.ImageURL = *req.ImageURL
	}

	if err := s.petRepo.Update(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

func (s *petService) Delete(ctx context.Context, ownerID, petID uuid.UUID) error {
	pet, err := s.Get(ctx, ownerID, petID)
	if err != nil {
		return err
	}

	fileKeys, err := s.petRepo.Delete(ctx, pet)
	if err != nil {
		return err
	}

	// The rows are already gone; leftover binaries are only logged
	for _, key := range fileKeys {
		if err := s.store.Delete(ctx, key); err != nil {
			s.logger.Warn("failed to delete stored file",
				zap.String("key", key),
				zap.Error(err))
		}
	}
	return nil
}

func (s *petService) UploadImage(ctx context.Context, ownerID, petID uuid.UUID, file io.Reader, size int64, contentType, fileName string) (*domain.Pet, error) {
	pet, err := s.Get(ctx, ownerID, petID)
	if err != nil {
		return nil, err
	}

	if !s.isAllowedImageType(contentType) {
		return nil, response.NewAppError(response.ErrCodeInvalidFileType, "Invalid file type", "")
	}
	if size > s.upload.MaxSize {
		return nil, response.NewAppError(response.ErrCodeFileTooLarge, "File too large", "")
	}

	key, err := storage.GenerateFileKey("pets", ownerID, petID, fileName)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, key, file, contentType); err != nil {
		return nil, err
	}

	oldKey := pet.ImageKey
	pet.ImageKey = key
	if err := s.petRepo.Update(ctx, pet); err != nil {
		return nil, err
	}

	if oldKey != "" {
		if err := s.store.Delete(ctx, oldKey); err != nil {
			s.logger.Warn("failed to delete replaced image",
				zap.String("key", oldKey),
				zap.Error(err))
		}
	}
	return pet, nil
}

func (s *petService) isAllowedImageType(contentType string) bool {
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	for _, allowed := range s.upload.AllowedImageTypes {
		if contentType == allowed {
			return true
		}
	}
	return false
}
