package service

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/avtanos/vetcard/internal/domain"
	"github.com/avtanos/vetcard/internal/dto"
	"github.com/avtanos/vetcard/internal/response"
)

func TestDocumentService_Create(t *testing.T) {
	ownerID := uuid.New()
	petID := uuid.New()

	petRepo := &MockPetRepository{
		FindByIDAndOwnerFunc: func(ctx context.Context, id, owner uuid.UUID) (*domain.Pet, error) {
			if id == petID && owner == ownerID {
				return &domain.Pet{BaseModel: domain.BaseModel{ID: petID}, OwnerID: ownerID, Name: "Murzik"}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}

	t.Run("creates document for owned pet", func(t *testing.T) {
		docRepo := &MockDocumentRepository{
			CreateFunc: func(ctx context.Context, doc *domain.PetDocument) error {
				doc.ID = uuid.New()
				return nil
			},
		}
		svc := NewDocumentService(docRepo, petRepo, &MockStorage{}, testUploadConfig(), zap.NewNop())

		doc, err := svc.Create(context.Background(), ownerID, dto.CreateDocumentRequest{
			Pet:          petID,
			DocumentType: "vaccination",
			Title:        "Rabies certificate",
		})
		require.NoError(t, err)
		assert.Equal(t, ownerID, doc.OwnerID)
		assert.Equal(t, domain.DocumentTypeVaccination, doc.DocumentType)
	})

	t.Run("another owner's pet behaves as missing", func(t *testing.T) {
		svc := NewDocumentService(&MockDocumentRepository{}, petRepo, &MockStorage{}, testUploadConfig(), zap.NewNop())

		_, err := svc.Create(context.Background(), uuid.New(), dto.CreateDocumentRequest{
			Pet:          petID,
			DocumentType: "medical",
			Title:        "X-ray",
		})
		appErr, ok := err.(*response.AppError)
		require.True(t, ok)
		assert.Equal(t, response.ErrCodeNotFound, appErr.Code)
	})

	t.Run("invalid document type is a field error", func(t *testing.T) {
		svc := NewDocumentService(&MockDocumentRepository{}, petRepo, &MockStorage{}, testUploadConfig(), zap.NewNop())

		_, err := svc.Create(context.Background(), ownerID, dto.CreateDocumentRequest{
			Pet:          petID,
			DocumentType: "receipt",
			Title:        "Invoice",
		})
		appErr, ok := err.(*response.AppError)
		require.True(t, ok)
		assert.Contains(t, appErr.Fields, "document_type")
	})
}

func TestDocumentService_UploadFile(t *testing.T) {
	ownerID := uuid.New()
	docID := uuid.New()
	petID := uuid.New()

	newRepo := func() *MockDocumentRepository {
		return &MockDocumentRepository{
			FindByIDAndOwnerFunc: func(ctx context.Context, id, owner uuid.UUID) (*domain.PetDocument, error) {
				return &domain.PetDocument{
					BaseModel: domain.BaseModel{ID: docID},
					PetID:     petID,
					OwnerID:   ownerID,
				}, nil
			},
		}
	}

	t.Run("rejects disallowed extension", func(t *testing.T) {
		svc := NewDocumentService(newRepo(), &MockPetRepository{}, &MockStorage{}, testUploadConfig(), zap.NewNop())

		_, err := svc.UploadFile(context.Background(), ownerID, docID,
			strings.NewReader("payload"), 100, "application/x-msdownload", "setup.exe")
		appErr, ok := err.(*response.AppError)
		require.True(t, ok)
		assert.Equal(t, response.ErrCodeInvalidFileType, appErr.Code)
	})

	t.Run("rejects file without extension", func(t *testing.T) {
		svc := NewDocumentService(newRepo(), &MockPetRepository{}, &MockStorage{}, testUploadConfig(), zap.NewNop())

		_, err := svc.UploadFile(context.Background(), ownerID, docID,
			strings.NewReader("payload"), 100, "application/pdf", "certificate")
		appErr, ok := err.(*response.AppError)
		require.True(t, ok)
		assert.Equal(t, response.ErrCodeInvalidFileType, appErr.Code)
	})

	t.Run("rejects oversized file", func(t *testing.T) {
		svc := NewDocumentService(newRepo(), &MockPetRepository{}, &MockStorage{}, testUploadConfig(), zap.NewNop())

		_, err := svc.UploadFile(context.Background(), ownerID, docID,
			strings.NewReader("payload"), 6*1024*1024, "application/pdf", "big.pdf")
		appErr, ok := err.(*response.AppError)
		require.True(t, ok)
		assert.Equal(t, response.ErrCodeFileTooLarge, appErr.Code)
	})

	t.Run("stores file and records size", func(t *testing.T) {
		var savedKey string
		store := &MockStorage{
			SaveFunc: func(ctx context.Context, key string, file io.Reader, contentType string) error {
				savedKey = key
				return nil
			},
		}
		svc := NewDocumentService(newRepo(), &MockPetRepository{}, store, testUploadConfig(), zap.NewNop())

		doc, err := svc.UploadFile(context.Background(), ownerID, docID,
			strings.NewReader("payload"), 2048, "application/pdf", "passport.pdf")
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(savedKey, "documents/"+ownerID.String()+"/"+petID.String()+"/"))
		assert.True(t, strings.HasSuffix(savedKey, ".pdf"))
		assert.Equal(t, savedKey, doc.FileKey)
		assert.Equal(t, int64(2048), doc.FileSize)
	})
}
