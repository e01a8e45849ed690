package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	infraconfig "github.com/imovelliz/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLocalPhotoStorage_SaveAndURL(t *testing.T) {
	dir := t.TempDir()

	store, err := NewLocalPhotoStorage(dir, "http://localhost:8080/")
	require.NoError(t, err)

	err = store.Save(context.Background(), "1700000000000-42-casa.jpg", "image/jpeg", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, "1700000000000-42-casa.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(content))

	assert.Equal(t, "http://localhost:8080/uploads/1700000000000-42-casa.jpg", store.PublicURL("1700000000000-42-casa.jpg"))
}

func TestLocalPhotoStorage_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := NewLocalPhotoStorage(dir, "http://localhost:8080")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLocalPhotoStorage_RejectsUnsafeNames(t *testing.T) {
	store, err := NewLocalPhotoStorage(t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)

	for _, name := range []string{"", "../escape.jpg", "a/b.jpg", ".hidden"} {
		err := store.Save(context.Background(), name, "image/jpeg", strings.NewReader("x"))
		assert.Error(t, err, "name %q should be rejected", name)
	}
}

func TestLocalPhotoStorage_NoPartialFileOnOverwrite(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalPhotoStorage(dir, "http://localhost:8080")
	require.NoError(t, err)

	require.NoError(t, store.Save(context.Background(), "photo.jpg", "image/jpeg", strings.NewReader("first")))
	require.NoError(t, store.Save(context.Background(), "photo.jpg", "image/jpeg", strings.NewReader("second")))

	content, err := os.ReadFile(filepath.Join(dir, "photo.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(content))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files should remain")
}

func TestNewS3PhotoStorage_Validation(t *testing.T) {
	logger := zap.NewNop()

	t.Run("nil configuration", func(t *testing.T) {
		_, err := NewS3PhotoStorage(nil, logger)
		assert.Error(t, err)
	})

	t.Run("missing bucket", func(t *testing.T) {
		_, err := NewS3PhotoStorage(&infraconfig.StorageConfig{
			Driver:      "s3",
			S3AccessKey: "key",
			S3SecretKey: "secret",
		}, logger)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "bucket")
	})

	t.Run("missing credentials", func(t *testing.T) {
		_, err := NewS3PhotoStorage(&infraconfig.StorageConfig{
			Driver:   "s3",
			S3Bucket: "photos",
		}, logger)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "credentials")
	})

	t.Run("valid configuration", func(t *testing.T) {
		store, err := NewS3PhotoStorage(&infraconfig.StorageConfig{
			Driver:      "s3",
			BaseURL:     "https://cdn.example.com/",
			S3Endpoint:  "minio.local:9000",
			S3Region:    "us-east-1",
			S3Bucket:    "photos",
			S3AccessKey: "key",
			S3SecretKey: "secret",
		}, logger)
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/uploads/casa.jpg", store.PublicURL("casa.jpg"))
	})
}

func TestNewPhotoStorage_Factory(t *testing.T) {
	logger := zap.NewNop()

	t.Run("local driver", func(t *testing.T) {
		store, err := NewPhotoStorage(&infraconfig.StorageConfig{
			Driver:    "local",
			UploadDir: t.TempDir(),
			BaseURL:   "http://localhost:8080",
		}, logger)
		require.NoError(t, err)
		assert.IsType(t, &LocalPhotoStorage{}, store)
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := NewPhotoStorage(&infraconfig.StorageConfig{Driver: "ftp"}, logger)
		assert.Error(t, err)
	})
}
