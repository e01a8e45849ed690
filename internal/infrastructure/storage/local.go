// Package storage provides photo storage drivers for uploaded files.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	applisting "github.com/imovelliz/backend/internal/application/listing"
)

// Ensure LocalPhotoStorage implements PhotoStorage
var _ applisting.PhotoStorage = (*LocalPhotoStorage)(nil)

// LocalPhotoStorage stores uploaded files on the local filesystem under a
// directory that the HTTP layer serves statically at /uploads. Writes go
// through a temp file and rename, so a crashed upload never leaves a
// half-written file under a retrievable name.
type LocalPhotoStorage struct {
	dir     string
	baseURL string
}

// NewLocalPhotoStorage creates a LocalPhotoStorage rooted at dir. The
// directory is created if it does not exist.
func NewLocalPhotoStorage(dir, baseURL string) (*LocalPhotoStorage, error) {
	if dir == "" {
		return nil, fmt.Errorf("upload directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &LocalPhotoStorage{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Save writes the file content under the given name
func (s *LocalPhotoStorage) Save(ctx context.Context, name, contentType string, content io.Reader) error {
	if err := validateName(name); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, content); err != nil {
		tmp.Close()
		return fmt.Errorf("write upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close upload: %w", err)
	}

	return os.Rename(tmp.Name(), filepath.Join(s.dir, name))
}

// PublicURL returns the static-serving URL for a stored name
func (s *LocalPhotoStorage) PublicURL(name string) string {
	return s.baseURL + "/uploads/" + name
}

// Dir returns the storage directory, used to mount the static route
func (s *LocalPhotoStorage) Dir() string {
	return s.dir
}

func validateName(name string) error {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return fmt.Errorf("invalid storage name %q", name)
	}
	return nil
}
