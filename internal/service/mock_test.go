package service

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/avtanos/vetcard/internal/domain"
	"github.com/avtanos/vetcard/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	CreateFunc           func(ctx context.Context, user *domain.User) error
	FindByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByUsernameFunc   func(ctx context.Context, username string) (*domain.User, error)
	ExistsByUsernameFunc func(ctx context.Context, username string) (bool, error)
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.ExistsByUsernameFunc != nil {
		return m.ExistsByUsernameFunc(ctx, username)
	}
	return false, nil
}

// MockPetRepository is a mock implementation of PetRepository
type MockPetRepository struct {
	CreateFunc           func(ctx context.Context, pet *domain.Pet) error
	FindByOwnerFunc      func(ctx context.Context, ownerID uuid.UUID) ([]domain.Pet, error)
	FindByIDAndOwnerFunc func(ctx context.Context, id, ownerID uuid.UUID) (*domain.Pet, error)
	UpdateFunc           func(ctx context.Context, pet *domain.Pet) error
	DeleteFunc           func(ctx context.Context, pet *domain.Pet) ([]string, error)
}

func (m *MockPetRepository) Create(ctx context.Context, pet *domain.Pet) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, pet)
	}
	return nil
}

func (m *MockPetRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Pet, error) {
	if m.FindByOwnerFunc != nil {
		return m.FindByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *MockPetRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Pet, error) {
	if m.FindByIDAndOwnerFunc != nil {
		return m.FindByIDAndOwnerFunc(ctx, id, ownerID)
	}
	return nil, nil
}

func (m *MockPetRepository) Update(ctx context.Context, pet *domain.Pet) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, pet)
	}
	return nil
}

func (m *MockPetRepository) Delete(ctx context.Context, pet *domain.Pet) ([]string, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, pet)
	}
	return nil, nil
}

// MockMedicalRecordRepository is a mock implementation of MedicalRecordRepository
type MockMedicalRecordRepository struct {
	CreateFunc           func(ctx context.Context, record *domain.MedicalRecord) error
	FindByOwnerFunc      func(ctx context.Context, ownerID uuid.UUID) ([]domain.MedicalRecord, error)
	FindByIDAndOwnerFunc func(ctx context.Context, id, ownerID uuid.UUID) (*domain.MedicalRecord, error)
	UpdateFunc           func(ctx context.Context, record *domain.MedicalRecord) error
	DeleteFunc           func(ctx context.Context, record *domain.MedicalRecord) error
}

func (m *MockMedicalRecordRepository) Create(ctx context.Context, record *domain.MedicalRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, record)
	}
	return nil
}

func (m *MockMedicalRecordRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.MedicalRecord, error) {
	if m.FindByOwnerFunc != nil {
		return m.FindByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *MockMedicalRecordRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.MedicalRecord, error) {
	if m.FindByIDAndOwnerFunc != nil {
		return m.FindByIDAndOwnerFunc(ctx, id, ownerID)
	}
	return nil, nil
}

func (m *MockMedicalRecordRepository) Update(ctx context.Context, record *domain.MedicalRecord) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, record)
	}
	return nil
}

func (m *MockMedicalRecordRepository) Delete(ctx context.Context, record *domain.MedicalRecord) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, record)
	}
	return nil
}

// MockReminderRepository is a mock implementation of ReminderRepository
type MockReminderRepository struct {
	CreateFunc           func(ctx context.Context, reminder *domain.Reminder) error
	FindByOwnerFunc      func(ctx context.Context, ownerID uuid.UUID) ([]domain.Reminder, error)
	FindByIDAndOwnerFunc func(ctx context.Context, id, ownerID uuid.UUID) (*domain.Reminder, error)
	UpdateFunc           func(ctx context.Context, reminder *domain.Reminder) error
	DeleteFunc           func(ctx context.Context, reminder *domain.Reminder) error
}

func (m *MockReminderRepository) Create(ctx context.Context, reminder *domain.Reminder) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, reminder)
	}
	return nil
}

func (m *MockReminderRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Reminder, error) {
	if m.FindByOwnerFunc != nil {
		return m.FindByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *MockReminderRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Reminder, error) {
	if m.FindByIDAndOwnerFunc != nil {
		return m.FindByIDAndOwnerFunc(ctx, id, ownerID)
	}
	return nil, nil
}

func (m *MockReminderRepository) Update(ctx context.Context, reminder *domain.Reminder) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, reminder)
	}
	return nil
}

func (m *MockReminderRepository) Delete(ctx context.Context, reminder *domain.Reminder) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, reminder)
	}
	return nil
}

// MockDocumentRepository is a mock implementation of DocumentRepository
type MockDocumentRepository struct {
	CreateFunc           func(ctx context.Context, doc *domain.PetDocument) error
	FindByOwnerFunc      func(ctx context.Context, ownerID uuid.UUID) ([]domain.PetDocument, error)
	FindByIDAndOwnerFunc func(ctx context.Context, id, ownerID uuid.UUID) (*domain.PetDocument, error)
	UpdateFunc           func(ctx context.Context, doc *domain.PetDocument) error
	DeleteFunc           func(ctx context.Context, doc *domain.PetDocument) error
}

func (m *MockDocumentRepository) Create(ctx context.Context, doc *domain.PetDocument) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, doc)
	}
	return nil
}

func (m *MockDocumentRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.PetDocument, error) {
	if m.FindByOwnerFunc != nil {
		return m.FindByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *MockDocumentRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.PetDocument, error) {
	if m.FindByIDAndOwnerFunc != nil {
		return m.FindByIDAndOwnerFunc(ctx, id, ownerID)
	}
	return nil, nil
}

func (m *MockDocumentRepository) Update(ctx context.Context, doc *domain.PetDocument) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, doc)
	}
	return nil
}

func (m *MockDocumentRepository) Delete(ctx context.Context, doc *domain.PetDocument) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, doc)
	}
	return nil
}

// MockPartnerRepository is a mock implementation of PartnerRepository
type MockPartnerRepository struct {
	CreateFunc   func(ctx context.Context, partner *domain.Partner) error
	FindAllFunc  func(ctx context.Context, partnerType string) ([]domain.Partner, error)
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Partner, error)
	UpdateFunc   func(ctx context.Context, partner *domain.Partner) error
	DeleteFunc   func(ctx context.Context, partner *domain.Partner) error
}

func (m *MockPartnerRepository) Create(ctx context.Context, partner *domain.Partner) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, partner)
	}
	return nil
}

func (m *MockPartnerRepository) FindAll(ctx context.Context, partnerType string) ([]domain.Partner, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, partnerType)
	}
	return nil, nil
}

func (m *MockPartnerRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Partner, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockPartnerRepository) Update(ctx context.Context, partner *domain.Partner) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, partner)
	}
	return nil
}

func (m *MockPartnerRepository) Delete(ctx context.Context, partner *domain.Partner) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, partner)
	}
	return nil
}

// MockProductRepository is a mock implementation of ProductRepository
type MockProductRepository struct {
	CreateFunc             func(ctx context.Context, product *domain.ProductOrService) error
	FindAvailableFunc      func(ctx context.Context, filter repository.ProductFilter) ([]domain.ProductOrService, error)
	FindByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.ProductOrService, error)
	UpdateFunc             func(ctx context.Context, product *domain.ProductOrService) error
	DeleteFunc             func(ctx context.Context, product *domain.ProductOrService) error
	DistinctCategoriesFunc func(ctx context.Context) ([]string, error)
}

func (m *MockProductRepository) Create(ctx context.Context, product *domain.ProductOrService) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, product)
	}
	return nil
}

func (m *MockProductRepository) FindAvailable(ctx context.Context, filter repository.ProductFilter) ([]domain.ProductOrService, error) {
	if m.FindAvailableFunc != nil {
		return m.FindAvailableFunc(ctx, filter)
	}
	return nil, nil
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.ProductOrService, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProductRepository) Update(ctx context.Context, product *domain.ProductOrService) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, product)
	}
	return nil
}

func (m *MockProductRepository) Delete(ctx context.Context, product *domain.ProductOrService) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, product)
	}
	return nil
}

func (m *MockProductRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	if m.DistinctCategoriesFunc != nil {
		return m.DistinctCategoriesFunc(ctx)
	}
	return nil, nil
}

// MockStorage is a mock implementation of storage.Storage
type MockStorage struct {
	SaveFunc   func(ctx context.Context, key string, file io.Reader, contentType string) error
	DeleteFunc func(ctx context.Context, key string) error
	URLFunc    func(key string) string
}

func (m *MockStorage) Save(ctx context.Context, key string, file io.Reader, contentType string) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, key, file, contentType)
	}
	return nil
}

func (m *MockStorage) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	return nil
}

func (m *MockStorage) URL(key string) string {
	if m.URLFunc != nil {
		return m.URLFunc(key)
	}
	return "/media/" + key
}
