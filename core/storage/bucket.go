package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/minio/minio-go/v7"
)

// Doer performs HTTP requests for remote fetches.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// BucketManager performs bucket level operations through the SDK client.
type BucketManager struct {
	client   Client
	fetcher  Doer
	maxFetch int64
}

// BucketOption configures a BucketManager.
type BucketOption func(*BucketManager)

// WithMaxFetchBytes caps the size of fetch sources. Values <= 0 keep the
// default.
func WithMaxFetchBytes(n int64) BucketOption {
	return func(m *BucketManager) {
		if n > 0 {
			m.maxFetch = n
		}
	}
}

// NewBucketManager creates a bucket manager. fetcher downloads fetch sources
// and defaults to http.DefaultClient. Sources larger than
// DefaultMaxFetchBytes are rejected unless WithMaxFetchBytes says otherwise.
func NewBucketManager(client Client, fetcher Doer, opts ...BucketOption) *BucketManager {
	if fetcher == nil {
		fetcher = http.DefaultClient
	}
	m := &BucketManager{client: client, fetcher: fetcher, maxFetch: DefaultMaxFetchBytes}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Buckets returns the names of all buckets of the account.
func (m *BucketManager) Buckets(ctx context.Context) ([]string, error) {
	infos, err := m.client.ListBuckets(ctx)
	if err != nil {
		return nil, wrapError("buckets", "", "", err)
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name)
	}
	return names, nil
}

// ListFiles returns one page of at most limit objects whose keys start with
// prefix and sort after marker.
func (m *BucketManager) ListFiles(ctx context.Context, bucket, prefix, marker string, limit int) (*FileListing, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	// Cancelling stops the SDK from listing past this page.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := minio.ListObjectsOptions{
		Prefix:     prefix,
		Recursive:  true,
		MaxKeys:    limit,
		StartAfter: marker,
	}

	listing := &FileListing{}
	for obj := range m.client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return nil, wrapError("list", bucket, prefix, obj.Err)
		}
		listing.Items = append(listing.Items, fileInfoFromObject(obj))
		if len(listing.Items) == limit {
			break
		}
	}

	if len(listing.Items) == limit {
		listing.Marker = listing.Items[limit-1].Key
	}
	return listing, nil
}

// Fetch downloads url and stores its content in bucket under key. A blank key
// is replaced by the content hash. Sources over the fetch cap are rejected
// with ErrInvalidRequest before anything is stored.
func (m *BucketManager) Fetch(ctx context.Context, url, bucket, key string) (*FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, newError("fetch", bucket, key, ErrInvalidRequest, err)
	}

	resp, err := m.fetcher.Do(req)
	if err != nil {
		return nil, newError("fetch", bucket, key, ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newError("fetch", bucket, key, classifyStatus(resp.StatusCode),
			fmt.Errorf("source %s returned %s", url, resp.Status))
	}

	if resp.ContentLength > m.maxFetch {
		return nil, newError("fetch", bucket, key, ErrInvalidRequest,
			fmt.Errorf("source %s is %d bytes, limit is %d", url, resp.ContentLength, m.maxFetch))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, m.maxFetch+1))
	if err != nil {
		return nil, newError("fetch", bucket, key, ErrNetwork, err)
	}
	if int64(len(data)) > m.maxFetch {
		return nil, newError("fetch", bucket, key, ErrInvalidRequest,
			fmt.Errorf("source %s exceeds the %d byte limit", url, m.maxFetch))
	}

	hash := contentKey(data)
	if strings.TrimSpace(key) == "" {
		key = hash
	}

	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = mimetype.Detect(data).String()
	}

	info, err := m.client.PutObject(ctx, bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return nil, wrapError("fetch", bucket, key, err)
	}

	return &FetchResult{
		Key:      key,
		Hash:     hash,
		MimeType: mimeType,
		Size:     info.Size,
	}, nil
}

// Copy copies bucket/key to targetBucket/targetKey.
func (m *BucketManager) Copy(ctx context.Context, bucket, key, targetBucket, targetKey string) error {
	_, err := m.client.CopyObject(ctx,
		minio.CopyDestOptions{Bucket: targetBucket, Object: targetKey},
		minio.CopySrcOptions{Bucket: bucket, Object: key},
	)
	return wrapError("copy", bucket, key, err)
}

// Move copies bucket/key to targetBucket/targetKey and removes the source.
func (m *BucketManager) Move(ctx context.Context, bucket, key, targetBucket, targetKey string) error {
	if bucket == targetBucket && key == targetKey {
		return newError("move", bucket, key, ErrInvalidRequest, errors.New("source and target are the same object"))
	}

	if _, err := m.client.CopyObject(ctx,
		minio.CopyDestOptions{Bucket: targetBucket, Object: targetKey},
		minio.CopySrcOptions{Bucket: bucket, Object: key},
	); err != nil {
		return wrapError("move", bucket, key, err)
	}

	if err := m.client.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return wrapError("move", bucket, key, err)
	}
	return nil
}

// Rename moves key to targetKey inside bucket.
func (m *BucketManager) Rename(ctx context.Context, bucket, key, targetKey string) error {
	return m.Move(ctx, bucket, key, bucket, targetKey)
}

// Delete removes bucket/key.
func (m *BucketManager) Delete(ctx context.Context, bucket, key string) error {
	return wrapError("delete", bucket, key, m.client.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{}))
}
