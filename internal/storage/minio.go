package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// DocumentStore keeps uploaded application documents in an object bucket.
type DocumentStore struct {
	client *minioSDK.Client
	bucket string
}

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

func NewDocumentStore(ctx context.Context, cfg Config) (*DocumentStore, error) {
	client, err := minioSDK.New(cfg.Endpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to object storage: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minioSDK.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &DocumentStore{client: client, bucket: cfg.Bucket}, nil
}

// Upload stores a document under a unique object key and returns the key.
func (s *DocumentStore) Upload(ctx context.Context, filename, contentType string, reader io.Reader, size int64) (string, error) {
	objectKey := fmt.Sprintf("documents/%s%s", uuid.NewString(), filepath.Ext(filename))

	_, err := s.client.PutObject(ctx, s.bucket, objectKey, reader, size, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload document: %w", err)
	}

	return objectKey, nil
}

// Remove deletes an object; used when a draft with documents is deleted.
func (s *DocumentStore) Remove(ctx context.Context, objectKey string) error {
	return s.client.RemoveObject(ctx, s.bucket, objectKey, minioSDK.RemoveObjectOptions{})
}
