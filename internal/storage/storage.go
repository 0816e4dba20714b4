package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Storage abstracts where uploaded binaries live. Keys are relative
// paths like "pets/{ownerID}/{petID}/{uuid}.jpg"; URL turns a key into
// something a client can fetch.
type Storage interface {
	Save(ctx context.Context, key string, file io.Reader, contentType string) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

// GenerateFileKey generates a unique storage key for an upload.
// Format: {category}/{ownerID}/{petID}/{uuid}{ext}
// category: "pets" for profile images, "documents" for pet documents.
func GenerateFileKey(category string, ownerID, petID uuid.UUID, fileName string) (string, error) {
	validCategories := map[string]bool{
		"pets":      true,
		"documents": true,
	}
	if !validCategories[category] {
		return "", fmt.Errorf("invalid storage category: %s (must be 'pets' or 'documents')", category)
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	key := fmt.Sprintf("%s/%s/%s/%s%s", category, ownerID, petID, uuid.New(), ext)
	return key, nil
}
