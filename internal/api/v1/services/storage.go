package services

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStorageService implements StorageService using MinIO-compatible object
// storage. Archived uploads are keyed by date and a short random id so
// concurrent requests never collide.
type MinioStorageService struct {
	client *minio.Client
	bucket string
}

// MinioConfig holds the connection settings for object storage.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// NewMinioStorageService connects to the configured endpoint and ensures the
// bucket exists.
func NewMinioStorageService(cfg MinioConfig) (*MinioStorageService, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &MinioStorageService{client: client, bucket: cfg.Bucket}, nil
}

// ArchiveUpload stores the file at path under a unique object key and returns
// the key.
func (s *MinioStorageService) ArchiveUpload(ctx context.Context, path, originalName string) (string, error) {
	ext := filepath.Ext(originalName)
	key := fmt.Sprintf("uploads/%s/%s%s", time.Now().UTC().Format("2006-01-02"), uuid.New().String()[:8], ext)

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.FPutObject(ctx, s.bucket, key, path, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	return key, nil
}
