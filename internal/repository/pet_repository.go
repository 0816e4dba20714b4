package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/avtanos/vetcard/internal/domain"
)

// PetRepository defines the interface for pet data operations.
// All lookups are scoped to the owning user so one owner can never
// reach another owner's pets.
type PetRepository interface {
	Create(ctx context.Context, pet *domain.Pet) error
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Pet, error)
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Pet, error)
	Update(ctx context.Context, pet *domain.Pet) error
	// Delete removes the pet and all of its medical records, reminders
	// and documents in one transaction. It returns the storage keys of
	// the binaries that belonged to the deleted rows so the caller can
	// clean them up afterwards.
	Delete(ctx context.Context, pet *domain.Pet) ([]string, error)
}

type petRepository struct {
	db *gorm.DB
}

// NewPetRepository creates a new pet repository
func NewPetRepository(db *gorm.DB) PetRepository {
	return &petRepository{db: db}
}

func (r *petRepository) Create(ctx context.Context, pet *domain.Pet) error {
	return r.db.WithContext(ctx).Create(pet).Error
}

func (r *petRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Pet, error) {
	var pets []domain.Pet
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&pets).Error
	if err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *petRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Pet, error) {
	var pet domain.Pet
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&pet).Error
	if err != nil {
		return nil, err
	}
	return &pet, nil
}

func (r *petRepository) Update(ctx context.Context, pet *domain.Pet) error {
	return r.db.WithContext(ctx).Save(pet).Error
}

func (r *petRepository) Delete(ctx context.Context, pet *domain.Pet) ([]string, error) {
	var fileKeys []string
	if pet.ImageKey != "" {
		fileKeys = append(fileKeys, pet.ImageKey)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var docKeys []string
		if err := tx.Model(&domain.PetDocument{}).
			Where("pet_id = ? AND file_key <> ''", pet.ID).
			Pluck("file_key", &docKeys).Error; err != nil {
			return err
		}
		fileKeys = append(fileKeys, docKeys...)

		if err := tx.Where("pet_id = ?", pet.ID).Delete(&domain.MedicalRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("pet_id = ?", pet.ID).Delete(&domain.Reminder{}).Error; err != nil {
			return err
		}
		if err := tx.Where("pet_id = ?", pet.ID).Delete(&domain.PetDocument{}).Error; err != nil {
			return err
		}
		return tx.Delete(pet).Error
	})
	if err != nil {
		return nil, err
	}
	return fileKeys, nil
}
