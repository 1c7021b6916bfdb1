package mocks

import (
	"context"

	"storage-facade/core/storage"

	"github.com/stretchr/testify/mock"
)

// BucketManager is a mock of the bucket management client.
type BucketManager struct {
	mock.Mock
}

func (m *BucketManager) Buckets(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if names, ok := args.Get(0).([]string); ok {
		return names, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BucketManager) ListFiles(ctx context.Context, bucket, prefix, marker string, limit int) (*storage.FileListing, error) {
	args := m.Called(ctx, bucket, prefix, marker, limit)
	if listing, ok := args.Get(0).(*storage.FileListing); ok {
		return listing, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BucketManager) Fetch(ctx context.Context, url, bucket, key string) (*storage.FetchResult, error) {
	args := m.Called(ctx, url, bucket, key)
	if res, ok := args.Get(0).(*storage.FetchResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BucketManager) Copy(ctx context.Context, bucket, key, targetBucket, targetKey string) error {
	return m.Called(ctx, bucket, key, targetBucket, targetKey).Error(0)
}

func (m *BucketManager) Move(ctx context.Context, bucket, key, targetBucket, targetKey string) error {
	return m.Called(ctx, bucket, key, targetBucket, targetKey).Error(0)
}

func (m *BucketManager) Rename(ctx context.Context, bucket, key, targetKey string) error {
	return m.Called(ctx, bucket, key, targetKey).Error(0)
}

func (m *BucketManager) Delete(ctx context.Context, bucket, key string) error {
	return m.Called(ctx, bucket, key).Error(0)
}

// UploadManager is a mock of the upload management client.
type UploadManager struct {
	mock.Mock
}

func (m *UploadManager) Put(ctx context.Context, data []byte, key, token, mimeType string) (*storage.Response, error) {
	args := m.Called(ctx, data, key, token, mimeType)
	if resp, ok := args.Get(0).(*storage.Response); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

// Auth is a mock of the upload token issuer.
type Auth struct {
	mock.Mock
}

func (m *Auth) UploadToken(bucket string) (string, error) {
	args := m.Called(bucket)
	return args.String(0), args.Error(1)
}
