package service

import (
	"context"
	"errors"
	"io"
	"path/filepath"
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

// DocumentService defines the interface for pet document operations
type DocumentService interface {
	Create(ctx context.Context, ownerID uuid.UUID, req dto.CreateDocumentRequest) (*domain.PetDocument, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.PetDocument, error)
	Get(ctx context.Context, ownerID, docID uuid.UUID) (*domain.PetDocument, error)
	Update(ctx context.Context, ownerID, docID uuid.UUID, req dto.UpdateDocumentRequest) (*domain.PetDocument, error)
	Delete(ctx context.Context, ownerID, docID uuid.UUID) error
	UploadFile(ctx context.Context, ownerID, docID uuid.UUID, file io.Reader, size int64, contentType, fileName string) (*domain.PetDocument, error)
}

type documentService struct {
	docRepo repository.DocumentRepository
	petRepo repository.PetRepository
	store   storage.Storage
	upload  config.UploadConfig
	logger  *zap.Logger
}

// NewDocumentService creates a new document service
func NewDocumentService(docRepo repository.DocumentRepository, petRepo repository.PetRepository, store storage.Storage, upload config.UploadConfig, logger *zap.Logger) DocumentService {
	return &documentService{docRepo: docRepo, petRepo: petRepo, store: store, upload: upload, logger: logger}
}

func (s *documentService) Create(ctx context.Context, ownerID uuid.UUID, req dto.CreateDocumentRequest) (*domain.PetDocument, error) {
	docType := domain.DocumentType(req.DocumentType)
	if !docType.IsValid() {
		return nil, response.NewFieldError("document_type", "Invalid document type")
	}

	pet, err := s.petRepo.FindByIDAndOwner(ctx, req.Pet, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Pet not found")
		}
		return nil, err
	}

	doc := &domain.PetDocument{
		PetID:        pet.ID,
		OwnerID:      ownerID,
		DocumentType: docType,
		Title:        req.Title,
		Description:  req.Description,
	}
	if err := s.docRepo.Create(ctx, doc); err != nil {
		return nil, err
	}
	doc.Pet = *pet
	return doc, nil
}

func (s *documentService) List(ctx context.Context, ownerID uuid.UUID) ([]domain.PetDocument, error) {
	return s.docRepo.FindByOwner(ctx, ownerID)
}

func (s *documentService) Get(ctx context.Context, ownerID, docID uuid.UUID) (*domain.PetDocument, error) {
	doc, err := s.docRepo.FindByIDAndOwner(ctx, docID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Document not found")
		}
		return nil, err
	}
	return doc, nil
}

func (s *documentService) Update(ctx context.Context, ownerID, docID uuid.UUID, req dto.UpdateDocumentRequest) (*domain.PetDocument, error) {
	doc, err := s.Get(ctx, ownerID, docID)
	if err != nil {
		return nil, err
	}

	if req.DocumentType != nil {
		docType := domain.DocumentType(*req.DocumentType)
		if !docType.IsValid() {
			return nil, response.NewFieldError("document_type", "Invalid document type")
		}
		doc.DocumentType = docType
	}
	if req.Title != nil {
		doc.Title = *req.Title
	}
	if req.Description != nil {
		doc.Description = *req.Description
	}

	if err := s.docRepo.Update(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *documentService) Delete(ctx context.Context, ownerID, docID uuid.UUID) error {
	doc, err := s.Get(ctx, ownerID, docID)
	if err != nil {
		return err
	}
	if err := s.docRepo.Delete(ctx, doc); err != nil {
		return err
	}

	if doc.FileKey != "" {
		if err := s.store.Delete(ctx, doc.FileKey); err != nil {
			s.logger.Warn("failed to delete stored file",
				zap.String("key", doc.FileKey),
				zap.Error(err))
		}
	}
	return nil
}

func (s *documentService) UploadFile(ctx context.Context, ownerID, docID uuid.UUID, file io.Reader, size int64, contentType, fileName string) (*domain.PetDocument, error) {
	doc, err := s.Get(ctx, ownerID, docID)
	if err != nil {
		return nil, err
	}

	if !s.isAllowedExtension(fileName) {
		return nil, response.NewAppError(response.ErrCodeInvalidFileType, "Invalid file type", "")
	}
	if size > s.upload.MaxSize {
		return nil, response.NewAppError(response.ErrCodeFileTooLarge, "File too large", "")
	}

	key, err := storage.GenerateFileKey("documents", ownerID, doc.PetID, fileName)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, key, file, contentType); err != nil {
		return nil, err
	}

	oldKey := doc.FileKey
	doc.FileKey = key
	doc.FileSize = size
	if err := s.docRepo.Update(ctx, doc); err != nil {
		return nil, err
	}

	if oldKey != "" {
		if err := s.store.Delete(ctx, oldKey); err != nil {
			s.logger.Warn("failed to delete replaced file",
				zap.String("key", oldKey),
				zap.Error(err))
		}
	}
	return doc, nil
}

func (s *documentService) isAllowedExtension(fileName string) bool {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" {
		return false
	}
	for _, allowed := range s.upload.AllowedDocExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
