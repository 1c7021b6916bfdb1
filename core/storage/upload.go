package storage

import (
	"bytes"
	"context"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/minio/minio-go/v7"
)

// UploadManager stores byte payloads authorized by upload tokens.
type UploadManager struct {
	client Client
	auth   *Auth
}

// NewUploadManager creates an upload manager that verifies tokens with auth.
func NewUploadManager(client Client, auth *Auth) *UploadManager {
	return &UploadManager{client: client, auth: auth}
}

// Put uploads data under key into the bucket the token is scoped to. A blank
// key is replaced by the content hash and a blank mimeType is sniffed from the
// content.
func (m *UploadManager) Put(ctx context.Context, data []byte, key, token, mimeType string) (*Response, error) {
	bucket, err := m.auth.VerifyUploadToken(token)
	if err != nil {
		return nil, err
	}

	hash := contentKey(data)
	if strings.TrimSpace(key) == "" {
		key = hash
	}
	if strings.TrimSpace(mimeType) == "" {
		mimeType = mimetype.Detect(data).String()
	}

	info, err := m.client.PutObject(ctx, bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return nil, wrapError("put", bucket, key, err)
	}

	if etag := cleanETag(info.ETag); etag != "" {
		hash = etag
	}

	body, err := json.Marshal(putRet{
		Key:      key,
		Hash:     hash,
		Bucket:   bucket,
		Size:     int64(len(data)),
		MimeType: mimeType,
	})
	if err != nil {
		return nil, newError("put", bucket, key, ErrRequestFailed, err)
	}

	return &Response{StatusCode: http.StatusOK, Body: body}, nil
}
