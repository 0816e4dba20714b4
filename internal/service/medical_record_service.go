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

// MedicalRecordService defines the interface for medical record operations
type MedicalRecordService interface {
	Create(ctx context.Context, ownerID uuid.UUID, req dto.CreateMedicalRecordRequest) (*domain.MedicalRecord, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.MedicalRecord, error)
	Get(ctx context.Context, ownerID, recordID uuid.UUID) (*domain.MedicalRecord, error)
	Update(ctx context.Context, ownerID, recordID uuid.UUID, req dto.UpdateMedicalRecordRequest) (*domain.MedicalRecord, error)
	Delete(ctx context.Context, ownerID, recordID uuid.UUID) error
}

type medicalRecordService struct {
	recordRepo repository.MedicalRecordRepository
	petRepo    repository.PetRepository
}

// NewMedicalRecordService creates a new medical record service
func NewMedicalRecordService(recordRepo repository.MedicalRecordRepository, petRepo repository.PetRepository) MedicalRecordService {
	return &medicalRecordService{recordRepo: recordRepo, petRepo: petRepo}
}

func (s *medicalRecordService) Create(ctx context.Context, ownerID uuid.UUID, req dto.CreateMedicalRecordRequest) (*domain.MedicalRecord, error) {
	recordType := domain.RecordType(req.RecordType)
	if !recordType.IsValid() {
		return nil, response.NewFieldError("record_type", "Invalid record type")
	}
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return nil, response.NewFieldError("date", "Date has wrong format. Use YYYY-MM-DD.")
	}

	// The pet must belong to the caller; other owners' pets are invisible
	pet, err := s.petRepo.FindByIDAndOwner(ctx, req.Pet, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Pet not found")
		}
		return nil, err
	}

	record := &domain.MedicalRecord{
		PetID:        pet.ID,
		RecordType:   recordType,
		Title:        req.Title,
		Description:  req.Description,
		Date:         date,
		Veterinarian: req.Veterinarian,
		Cost:         req.Cost,
	}
	if err := s.recordRepo.Create(ctx, record); err != nil {
		return nil, err
	}
	record.Pet = *pet
	return record, nil
}

func (s *medicalRecordService) List(ctx context.Context, ownerID uuid.UUID) ([]domain.MedicalRecord, error) {
	return s.recordRepo.FindByOwner(ctx, ownerID)
}

func (s *medicalRecordService) Get(ctx context.Context, ownerID, recordID uuid.UUID) (*domain.MedicalRecord, error) {
	record, err := s.recordRepo.FindByIDAndOwner(ctx, recordID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Medical record not found")
		}
		return nil, err
	}
	return record, nil
}

func (s *medicalRecordService) Update(ctx context.Context, ownerID, recordID uuid.UUID, req dto.UpdateMedicalRecordRequest) (*domain.MedicalRecord, error) {
	record, err := s.Get(ctx, ownerID, recordID)
	if err != nil {
		return nil, err
	}

	if req.RecordType != nil {
		recordType := domain.RecordType(*req.RecordType)
		if !recordType.IsValid() {
			return nil, response.NewFieldError("record_type", "Invalid record type")
		}
		record.RecordType = recordType
	}
	if req.Title != nil {
		record.Title = *req.Title
	}
	if req.Description != nil {
		record.Description = *req.Description
	}
	if req.Date != nil {
		date, err := dto.ParseDate(*req.Date)
		if err != nil {
			return nil, response.NewFieldError("date", "Date has wrong format. Use YYYY-MM-DD.")
		}
		record.Date = date
	}
	if req.Veterinarian != nil {
		record.Veterinarian = *req.Veterinarian
	}
	if req.Cost != nil {
		record.Cost = req.Cost
	}

	if err := s.recordRepo.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *medicalRecordService) Delete(ctx context.Context, ownerID, recordID uuid.UUID) error {
	record, err := s.Get(ctx, ownerID, recordID)
	if err != nil {
		return err
	}
	return s.recordRepo.Delete(ctx, record)
}
