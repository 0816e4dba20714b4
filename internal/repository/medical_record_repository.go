package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/avtanos/vetcard/internal/domain"
)

// MedicalRecordRepository defines the interface for medical record data
// operations. Ownership is enforced through the pets table, so records
// of other owners' pets behave as if they do not exist.
type MedicalRecordRepository interface {
	Create(ctx context.Context, record *domain.MedicalRecord) error
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.MedicalRecord, error)
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.MedicalRecord, error)
	Update(ctx context.Context, record *domain.MedicalRecord) error
	Delete(ctx context.Context, record *domain.MedicalRecord) error
}

type medicalRecordRepository struct {
	db *gorm.DB
}

// NewMedicalRecordRepository creates a new medical record repository
func NewMedicalRecordRepository(db *gorm.DB) MedicalRecordRepository {
	return &medicalRecordRepository{db: db}
}

func (r *medicalRecordRepository) Create(ctx context.Context, record *domain.MedicalRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *medicalRecordRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.MedicalRecord, error) {
	var records []domain.MedicalRecord
	err := r.db.WithContext(ctx).
		Joins("JOIN pets ON pets.id = medical_records.pet_id").
		Where("pets.owner_id = ?", ownerID).
		Preload("Pet").
		Order("medical_records.date DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *medicalRecordRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.MedicalRecord, error) {
	var record domain.MedicalRecord
	err := r.db.WithContext(ctx).
		Joins("JOIN pets ON pets.id = medical_records.pet_id").
		Where("medical_records.id = ? AND pets.owner_id = ?", id, ownerID).
		Preload("Pet").
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *medicalRecordRepository) Update(ctx context.Context, record *domain.MedicalRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *medicalRecordRepository) Delete(ctx context.Context, record *domain.MedicalRecord) error {
	return r.db.WithContext(ctx).Delete(record).Error
}
