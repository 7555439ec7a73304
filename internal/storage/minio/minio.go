package minio

import (
	"context"
	"fmt"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Jathavedas/memento-backend/internal/storage"
)

// Storage implements storage.Storage using MinIO/S3-compatible object storage.
type Storage struct {
	client   *minio.Client
	bucket   string
	initOnce sync.Once
	initErr  error
}

// New creates a MinIO-backed storage instance. Bucket creation is deferred
// until the first upload to avoid blocking application startup.
func New(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*Storage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	return &Storage{
		client: client,
		bucket: bucket,
	}, nil
}

// lazyInit ensures the bucket exists on first use.
func (s *Storage) lazyInit(ctx context.Context) error {
	s.initOnce.Do(func() {
		s.initErr = s.ensureBucketExists(ctx)
	})
	return s.initErr
}

func (s *Storage) ensureBucketExists(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket: %w", err)
		}
	}

	return nil
}

// Upload stores the object under the given key and returns its public URL.
// The bucket is expected to allow public reads; URLs are plain object paths,
// not presigned.
func (s *Storage) Upload(ctx context.Context, input *storage.UploadInput) (*storage.UploadResult, error) {
	if err := s.lazyInit(ctx); err != nil {
		return nil, err
	}

	_, err := s.client.PutObject(ctx, s.bucket, input.Key, input.Data, input.Size, minio.PutObjectOptions{
		ContentType: input.ContentType,
	})
	if err != nil {
		return nil, fmt.Errorf("put object %s: %w", input.Key, err)
	}

	url := fmt.Sprintf("%s/%s/%s", s.client.EndpointURL(), s.bucket, input.Key)

	return &storage.UploadResult{
		Key: input.Key,
		URL: url,
	}, nil
}
