package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/avtanos/vetcard/internal/domain"
)

// ReminderRepository defines the interface for reminder data operations
type ReminderRepository interface {
	Create(ctx context.Context, reminder *domain.Reminder) error
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Reminder, error)
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Reminder, error)
	Update(ctx context.Context, reminder *domain.Reminder) error
	Delete(ctx context.Context, reminder *domain.Reminder) error
}

type reminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository creates a new reminder repository
func NewReminderRepository(db *gorm.DB) ReminderRepository {
	return &reminderRepository{db: db}
}

func (r *reminderRepository) Create(ctx context.Context, reminder *domain.Reminder) error {
	return r.db.WithContext(ctx).Create(reminder).Error
}

func (r *reminderRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Reminder, error) {
	var reminders []domain.Reminder
	err := r.db.WithContext(ctx).
		Joins("JOIN pets ON pets.id = reminders.pet_id").
		Where("pets.owner_id = ?", ownerID).
		Preload("Pet").
		Order("reminders.due_date ASC").
		Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *reminderRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Reminder, error) {
	var reminder domain.Reminder
	err := r.db.WithContext(ctx).
		Joins("JOIN pets ON pets.id = reminders.pet_id").
		Where("reminders.id = ? AND pets.owner_id = ?", id, ownerID).
		Preload("Pet").
		First(&reminder).Error
	if err != nil {
		return nil, err
	}
	return &reminder, nil
}

func (r *reminderRepository) Update(ctx context.Context, reminder *domain.Reminder) error {
	return r.db.WithContext(ctx).Save(reminder).Error
}

func (r *reminderRepository) Delete(ctx context.Context, reminder *domain.Reminder) error {
	return r.db.WithContext(ctx).Delete(reminder).Error
}
