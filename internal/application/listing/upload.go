package listing

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/imovelliz/backend/internal/domain/shared"
)

// Upload limits, enforced before anything touches storage or the database
const (
	MaxUploadFiles    = 5
	MaxUploadFileSize = 5 << 20 // 5 MiB
)

// UploadFile is one incoming file attachment, decoupled from the HTTP
// multipart representation so the workflow can be tested without a server.
type UploadFile struct {
	OriginalName string
	Size         int64
	ContentType  string
	Open         func() (io.ReadCloser, error)
}

// StoredFile describes a file after it has been written to durable storage
type StoredFile struct {
	Name string
	URL  string
}

// PhotoStorage is the port to durable file storage. Implementations are
// append-only; stored files are never overwritten or deleted.
type PhotoStorage interface {
	// Save writes the file content under the given name
	Save(ctx context.Context, name, contentType string, content io.Reader) error

	// PublicURL returns the public retrieval URL for a stored name
	PublicURL(name string) string
}

// UploadIntake validates and stores batches of photo uploads. Each stored
// file gets a name built from the upload timestamp, a random disambiguator
// and the original filename, so concurrent uploads of identically named
// files never collide.
type UploadIntake struct {
	storage PhotoStorage
}

// NewUploadIntake creates a new UploadIntake
func NewUploadIntake(storage PhotoStorage) *UploadIntake {
	return &UploadIntake{storage: storage}
}

// ValidateBatch checks the count and size limits for a batch of files.
// It runs before any file content is read.
func (u *UploadIntake) ValidateBatch(files []UploadFile) error {
	if len(files) > MaxUploadFiles {
		return shared.NewDomainError("TOO_MANY_FILES",
			fmt.Sprintf("At most %d files per upload are allowed", MaxUploadFiles))
	}
	for _, file := range files {
		if file.Size > MaxUploadFileSize {
			return shared.NewDomainError("FILE_TOO_LARGE",
				fmt.Sprintf("File '%s' exceeds the %d byte limit", file.OriginalName, MaxUploadFileSize))
		}
	}
	return nil
}

// StoreBatch validates and persists a batch of files, returning one
// StoredFile per input in order. Storage is append-only, so a failure
// partway leaves earlier files behind as unreferenced objects; nothing
// links them to a property until the write workflow commits.
func (u *UploadIntake) StoreBatch(ctx context.Context, files []UploadFile) ([]StoredFile, error) {
	if err := u.ValidateBatch(files); err != nil {
		return nil, err
	}

	stored := make([]StoredFile, 0, len(files))
	for _, file := range files {
		name := generateStorageName(file.OriginalName)

		reader, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("open upload '%s': %w", file.OriginalName, err)
		}
		err = u.storage.Save(ctx, name, file.ContentType, io.LimitReader(reader, MaxUploadFileSize))
		reader.Close()
		if err != nil {
			return nil, fmt.Errorf("store upload '%s': %w", file.OriginalName, err)
		}

		stored = append(stored, StoredFile{
			Name: name,
			URL:  u.storage.PublicURL(name),
		})
	}
	return stored, nil
}

// generateStorageName builds `{unix-millis}-{random}-{original-name}`.
// The original name is reduced to its base to keep path separators out of
// storage keys.
func generateStorageName(originalName string) string {
	base := filepath.Base(strings.TrimSpace(originalName))
	if base == "." || base == string(filepath.Separator) || base == "" {
		base = "upload"
	}
	return fmt.Sprintf("%d-%d-%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), base)
}
