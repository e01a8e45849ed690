package storage

import (
	"fmt"

	applisting "github.com/imovelliz/backend/internal/application/listing"
	infraconfig "github.com/imovelliz/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// NewPhotoStorage builds the photo storage driver selected by configuration
func NewPhotoStorage(cfg *infraconfig.StorageConfig, logger *zap.Logger) (applisting.PhotoStorage, error) {
	switch cfg.Driver {
	case "local":
		return NewLocalPhotoStorage(cfg.UploadDir, cfg.BaseURL)
	case "s3":
		return NewS3PhotoStorage(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}
