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

// ReminderService defines the interface for reminder operations
type ReminderService interface {
	Create(ctx context.Context, ownerID uuid.UUID, req dto.CreateReminderRequest) (*domain.Reminder, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.Reminder, error)
	Get(ctx context.Context, ownerID, reminderID uuid.UUID) (*domain.Reminder, error)
	Update(ctx context.Context, ownerID, reminderID uuid.UUID, req dto.UpdateReminderRequest) (*domain.Reminder, error)
	Delete(ctx context.Context, ownerID, reminderID uuid.UUID) error
}

type reminderService struct {
	reminderRepo repository.ReminderRepository
	petRepo      repository.PetRepository
}

// NewReminderService creates a new reminder service
func NewReminderService(reminderRepo repository.ReminderRepository, petRepo repository.PetRepository) ReminderService {
	return &reminderService{reminderRepo: reminderRepo, petRepo: petRepo}
}

func (s *reminderService) Create(ctx context.Context, ownerID uuid.UUID, req dto.CreateReminderRequest) (*domain.Reminder, error) {
	reminderType := domain.ReminderType(req.ReminderType)
	if !reminderType.IsValid() {
		return nil, response.NewFieldError("reminder_type", "Invalid reminder type")
	}
	dueDate, err := dto.ParseDate(req.DueDate)
	if err != nil {
		return nil, response.NewFieldError("due_date", "Date has wrong format. Use YYYY-MM-DD.")
	}

	pet, err := s.petRepo.FindByIDAndOwner(ctx, req.Pet, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Pet not found")
		}
		return nil, err
	}

	reminder := &domain.Reminder{
		PetID:        pet.ID,
		ReminderType: reminderType,
		Title:        req.Title,
		Description:  req.Description,
		DueDate:      dueDate,
		IsCompleted:  req.IsCompleted,
	}
	if err := s.reminderRepo.Create(ctx, reminder); err != nil {
		return nil, err
	}
	reminder.Pet = *pet
	return reminder, nil
}

func (s *reminderService) List(ctx context.Context, ownerID uuid.UUID) ([]domain.Reminder, error) {
	return s.reminderRepo.FindByOwner(ctx, ownerID)
}

func (s *reminderService) Get(ctx context.Context, ownerID, reminderID uuid.UUID) (*domain.Reminder, error) {
	reminder, err := s.reminderRepo.FindByIDAndOwner(ctx, reminderID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Reminder not found")
		}
		return nil, err
	}
	return reminder, nil
}

func (s *reminderService) Update(ctx context.Context, ownerID, reminderID uuid.UUID, req dto.UpdateReminderRequest) (*domain.Reminder, error) {
	reminder, err := s.Get(ctx, ownerID, reminderID)
	if err != nil {
		return nil, err
	}

	if req.ReminderType != nil {
		reminderType := domain.ReminderType(*req.ReminderType)
		if !reminderType.IsValid() {
			return nil, response.NewFieldError("reminder_type", "Invalid reminder type")
		}
		reminder.ReminderType = reminderType
	}
	if req.Title != nil {
		reminder.Title = *req.Title
	}
	if req.Description != nil {
		reminder.Description = *req.Description
	}
	if req.DueDate != nil {
		dueDate, err := dto.ParseDate(*req.DueDate)
		if err != nil {
			return nil, response.NewFieldError("due_date", "Date has wrong format. Use YYYY-MM-DD.")
		}
		reminder.DueDate = dueDate
	}
	if req.IsCompleted != nil {
		reminder.IsCompleted = *req.IsCompleted
	}

	if err := s.reminderRepo.Update(ctx, reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

func (s *reminderService) Delete(ctx context.Context, ownerID, reminderID uuid.UUID) error {
	reminder, err := s.Get(ctx, ownerID, reminderID)
	if err != nil {
		return err
	}
	return s.reminderRepo.Delete(ctx, reminder)
}
