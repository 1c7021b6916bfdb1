package storage_test

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"storage-facade/core/storage"
	"storage-facade/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUploadManager_Put(t *testing.T) {
	auth, err := storage.NewAuth("access", "secret", time.Minute)
	require.NoError(t, err)

	token, err := auth.UploadToken("assets")
	require.NoError(t, err)

	png := []byte("\x89PNG\r\n\x1a\n0000")

	t.Run("Success", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("PutObject", mock.Anything, "assets", "logo.png", mock.Anything, int64(len(png)), mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
			return opts.ContentType == "image/custom"
		})).Run(func(args mock.Arguments) {
			assert.Equal(t, png, readAll(t, args.Get(3).(io.Reader)))
		}).Return(minio.UploadInfo{Key: "logo.png", ETag: `"abc"`}, nil)

		resp, err := storage.NewUploadManager(client, auth).Put(context.Background(), png, "logo.png", token, "image/custom")
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.Unmarshal(resp.Body, &body))
		assert.Equal(t, "logo.png", body["key"])
		assert.Equal(t, "abc", body["hash"])
		assert.Equal(t, "assets", body["bucket"])
		assert.Equal(t, "image/custom", body["mimeType"])
		assert.Equal(t, resp.BodyString(), string(resp.Body))
	})

	t.Run("SniffsMimeType", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("PutObject", mock.Anything, "assets", "logo.png", mock.Anything, int64(len(png)), mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
			return opts.ContentType == "image/png"
		})).Return(minio.UploadInfo{}, nil)

		_, err := storage.NewUploadManager(client, auth).Put(context.Background(), png, "logo.png", token, "")
		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("BlankKeyUsesHash", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("PutObject", mock.Anything, "assets", mock.MatchedBy(func(key string) bool {
			return len(key) == 40
		}), mock.Anything, int64(len(png)), mock.Anything).Return(minio.UploadInfo{}, nil)

		_, err := storage.NewUploadManager(client, auth).Put(context.Background(), png, "", token, "image/png")
		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("InvalidToken", func(t *testing.T) {
		client := new(mocks.Client)

		_, err := storage.NewUploadManager(client, auth).Put(context.Background(), png, "logo.png", "bogus", "")
		assert.ErrorIs(t, err, storage.ErrAccessDenied)
		client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("SDKError", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("PutObject", mock.Anything, "assets", "logo.png", mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, minio.ErrorResponse{Code: "NoSuchBucket"})

		_, err := storage.NewUploadManager(client, auth).Put(context.Background(), png, "logo.png", token, "")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestResponse_BodyString(t *testing.T) {
	var resp *storage.Response
	assert.Empty(t, resp.BodyString())
	assert.Equal(t, "{}", (&storage.Response{Body: []byte("{}")}).BodyString())
}
