package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage stores files on the local filesystem under a media root
// and serves them from a media URL prefix.
type LocalStorage struct {
	root   string
	urlPfx string
}

// NewLocalStorage creates a local storage backend rooted at mediaRoot
func NewLocalStorage(mediaRoot, mediaURL string) (*LocalStorage, error) {
	if mediaRoot == "" {
		return nil, fmt.Errorf("media root is required")
	}
	if err := os.MkdirAll(mediaRoot, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media root: %w", err)
	}
	return &LocalStorage{
		root:   mediaRoot,
		urlPfx: strings.TrimSuffix(mediaURL, "/"),
	}, nil
}

// Save writes the file under the media root, creating parent directories
func (s *LocalStorage) Save(ctx context.Context, key string, file io.Reader, contentType string) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// Delete removes the file for the given key. Missing files are not an
// error so deletes stay idempotent.
func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// URL returns the media URL path for a key, e.g. "/media/pets/...".
func (s *LocalStorage) URL(key string) string {
	return s.urlPfx + "/" + strings.TrimPrefix(key, "/")
}

// Root returns the media root directory for static file serving
func (s *LocalStorage) Root() string {
	return s.root
}

// resolve maps a key to an absolute path and rejects keys that would
// escape the media root.
func (s *LocalStorage) resolve(key string) (string, error) {
	cleaned := filepath.Clean("/" + key)
	if cleaned == "/" {
		return "", fmt.Errorf("invalid file key: %s", key)
	}
	path := filepath.Join(s.root, cleaned)
	if !strings.HasPrefix(path, filepath.Clean(s.root)+string(os.PathSeparator)) {
		return "", fmt.Errorf("invalid file key: %s", key)
	}
	return path, nil
}
