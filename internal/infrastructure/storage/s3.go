package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	applisting "github.com/imovelliz/backend/internal/application/listing"
	infraconfig "github.com/imovelliz/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Ensure S3PhotoStorage implements PhotoStorage
var _ applisting.PhotoStorage = (*S3PhotoStorage)(nil)

// S3PhotoStorage stores uploaded files in any S3-compatible backend
// (AWS S3, MinIO, RustFS). Objects are written under an uploads/ prefix
// and served from the configured public base URL.
type S3PhotoStorage struct {
	client  *s3.Client
	bucket  string
	baseURL string
	logger  *zap.Logger
}

// NewS3PhotoStorage creates a new S3PhotoStorage from configuration
func NewS3PhotoStorage(cfg *infraconfig.StorageConfig, logger *zap.Logger) (*S3PhotoStorage, error) {
	if cfg == nil {
		return nil, errors.New("storage configuration is required")
	}
	if cfg.S3Bucket == "" {
		return nil, errors.New("storage bucket is required")
	}
	if cfg.S3AccessKey == "" || cfg.S3SecretKey == "" {
		return nil, errors.New("storage credentials are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.S3UsePathStyle
		if cfg.S3Endpoint != "" {
			endpoint := cfg.S3Endpoint
			if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
				endpoint = "https://" + endpoint
			}
			if _, err := url.Parse(endpoint); err == nil {
				o.BaseEndpoint = aws.String(endpoint)
			}
		}
	})

	return &S3PhotoStorage{
		client:  client,
		bucket:  cfg.S3Bucket,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		logger:  logger,
	}, nil
}

// Save writes the file content under the given name
func (s *S3PhotoStorage) Save(ctx context.Context, name, contentType string, content io.Reader) error {
	if err := validateName(name); err != nil {
		return err
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String("uploads/" + name),
		Body:   content,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		s.logger.Error("failed to store upload",
			zap.String("bucket", s.bucket),
			zap.String("name", name),
			zap.Error(err),
		)
		return fmt.Errorf("store object %q: %w", name, err)
	}
	return nil
}

// PublicURL returns the public retrieval URL for a stored name
func (s *S3PhotoStorage) PublicURL(name string) string {
	return s.baseURL + "/uploads/" + name
}
