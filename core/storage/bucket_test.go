package storage_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"storage-facade/core/storage"
	"storage-facade/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func objectsChan(keys ...string) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(keys))
	for _, k := range keys {
		ch <- minio.ObjectInfo{Key: k, Size: 10, ETag: `"etag-` + k + `"`}
	}
	close(ch)
	return ch
}

func TestBucketManager_Buckets(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListBuckets", mock.Anything).Return([]minio.BucketInfo{{Name: "assets"}, {Name: "backups"}}, nil)

		names, err := storage.NewBucketManager(client, nil).Buckets(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"assets", "backups"}, names)
	})

	t.Run("Denied", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListBuckets", mock.Anything).Return(nil, minio.ErrorResponse{Code: "AccessDenied", StatusCode: http.StatusForbidden})

		_, err := storage.NewBucketManager(client, nil).Buckets(context.Background())
		assert.ErrorIs(t, err, storage.ErrAccessDenied)
	})
}

func TestBucketManager_ListFiles(t *testing.T) {
	t.Run("FullPageSetsMarker", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, "assets", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
			return opts.Prefix == "img/" && opts.StartAfter == "" && opts.MaxKeys == 2 && opts.Recursive
		})).Return(objectsChan("img/a.png", "img/b.png", "img/c.png"))

		listing, err := storage.NewBucketManager(client, nil).ListFiles(context.Background(), "assets", "img/", "", 2)
		require.NoError(t, err)
		require.Len(t, listing.Items, 2)
		assert.Equal(t, "img/a.png", listing.Items[0].Key)
		assert.Equal(t, "etag-img/a.png", listing.Items[0].Hash)
		assert.Equal(t, "img/b.png", listing.Marker)
	})

	t.Run("LastPageHasNoMarker", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, "assets", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
			return opts.StartAfter == "img/b.png"
		})).Return(objectsChan("img/c.png"))

		listing, err := storage.NewBucketManager(client, nil).ListFiles(context.Background(), "assets", "img/", "img/b.png", 2)
		require.NoError(t, err)
		assert.Len(t, listing.Items, 1)
		assert.Empty(t, listing.Marker)
	})

	t.Run("DefaultLimit", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, "assets", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
			return opts.MaxKeys == storage.DefaultLimit
		})).Return(objectsChan())

		listing, err := storage.NewBucketManager(client, nil).ListFiles(context.Background(), "assets", "", "", 0)
		require.NoError(t, err)
		assert.Empty(t, listing.Items)
	})

	t.Run("Error", func(t *testing.T) {
		ch := make(chan minio.ObjectInfo, 1)
		ch <- minio.ObjectInfo{Err: minio.ErrorResponse{Code: "NoSuchBucket", StatusCode: http.StatusNotFound}}
		close(ch)

		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, "missing", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

		_, err := storage.NewBucketManager(client, nil).ListFiles(context.Background(), "missing", "", "", 10)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestBucketManager_Fetch(t *testing.T) {
	payload := []byte("remote content")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/file.txt":
			w.Header().Set("Content-Type", "text/plain")
			_, _ = w.Write(payload)
		case "/chunked.txt":
			// Flushing before the end drops Content-Length.
			_, _ = w.Write(payload[:4])
			w.(http.Flusher).Flush()
			_, _ = w.Write(payload[4:])
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	t.Run("WithKey", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("PutObject", mock.Anything, "assets", "docs/file.txt", mock.Anything, int64(len(payload)), mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
			return opts.ContentType == "text/plain"
		})).Return(minio.UploadInfo{Key: "docs/file.txt", Size: int64(len(payload))}, nil)

		res, err := storage.NewBucketManager(client, srv.Client()).Fetch(context.Background(), srv.URL+"/file.txt", "assets", "docs/file.txt")
		require.NoError(t, err)
		assert.Equal(t, "docs/file.txt", res.Key)
		assert.Equal(t, int64(len(payload)), res.Size)
		assert.NotEmpty(t, res.Hash)
	})

	t.Run("WithoutKeyUsesHash", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("PutObject", mock.Anything, "assets", mock.Anything, mock.Anything, int64(len(payload)), mock.Anything).
			Return(minio.UploadInfo{Size: int64(len(payload))}, nil)

		res, err := storage.NewBucketManager(client, srv.Client()).Fetch(context.Background(), srv.URL+"/file.txt", "assets", "")
		require.NoError(t, err)
		assert.Equal(t, res.Hash, res.Key)
		assert.Len(t, res.Key, 40)
	})

	t.Run("SourceMissing", func(t *testing.T) {
		client := new(mocks.Client)

		_, err := storage.NewBucketManager(client, srv.Client()).Fetch(context.Background(), srv.URL+"/missing", "assets", "x")
		assert.ErrorIs(t, err, storage.ErrNotFound)
		client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("DeclaredSizeOverLimit", func(t *testing.T) {
		client := new(mocks.Client)
		m := storage.NewBucketManager(client, srv.Client(), storage.WithMaxFetchBytes(8))

		_, err := m.Fetch(context.Background(), srv.URL+"/file.txt", "assets", "x")
		assert.ErrorIs(t, err, storage.ErrInvalidRequest)
		client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("StreamedSizeOverLimit", func(t *testing.T) {
		client := new(mocks.Client)
		m := storage.NewBucketManager(client, srv.Client(), storage.WithMaxFetchBytes(8))

		_, err := m.Fetch(context.Background(), srv.URL+"/chunked.txt", "assets", "x")
		assert.ErrorIs(t, err, storage.ErrInvalidRequest)
		client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("WithinLimit", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("PutObject", mock.Anything, "assets", "x", mock.Anything, int64(len(payload)), mock.Anything).
			Return(minio.UploadInfo{Size: int64(len(payload))}, nil)
		m := storage.NewBucketManager(client, srv.Client(), storage.WithMaxFetchBytes(int64(len(payload))))

		_, err := m.Fetch(context.Background(), srv.URL+"/chunked.txt", "assets", "x")
		assert.NoError(t, err)
	})

	t.Run("LargeSourceNotBuffered", func(t *testing.T) {
		body := &countingReader{r: io.LimitReader(zeros{}, 200<<20)}
		fetcher := doerFunc(func(req *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode:    http.StatusOK,
				Status:        "200 OK",
				ContentLength: -1,
				Header:        http.Header{},
				Body:          io.NopCloser(body),
			}, nil
		})
		client := new(mocks.Client)

		_, err := storage.NewBucketManager(client, fetcher, storage.WithMaxFetchBytes(1024)).
			Fetch(context.Background(), "http://example.com/huge.bin", "assets", "")
		assert.ErrorIs(t, err, storage.ErrInvalidRequest)
		assert.LessOrEqual(t, body.n, int64(1025))
		client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("BadURL", func(t *testing.T) {
		_, err := storage.NewBucketManager(new(mocks.Client), srv.Client()).Fetch(context.Background(), "://bad", "assets", "x")
		assert.ErrorIs(t, err, storage.ErrInvalidRequest)
	})
}

func TestBucketManager_CopyMoveRenameDelete(t *testing.T) {
	ctx := context.Background()
	dst := minio.CopyDestOptions{Bucket: "backups", Object: "b.png"}
	src := minio.CopySrcOptions{Bucket: "assets", Object: "a.png"}

	t.Run("Copy", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("CopyObject", mock.Anything, dst, src).Return(minio.UploadInfo{}, nil)

		assert.NoError(t, storage.NewBucketManager(client, nil).Copy(ctx, "assets", "a.png", "backups", "b.png"))
		client.AssertNotCalled(t, "RemoveObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("CopyMissingSource", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("CopyObject", mock.Anything, dst, src).Return(minio.UploadInfo{}, minio.ErrorResponse{Code: "NoSuchKey"})

		err := storage.NewBucketManager(client, nil).Copy(ctx, "assets", "a.png", "backups", "b.png")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("Move", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("CopyObject", mock.Anything, dst, src).Return(minio.UploadInfo{}, nil)
		client.On("RemoveObject", mock.Anything, "assets", "a.png", mock.Anything).Return(nil)

		assert.NoError(t, storage.NewBucketManager(client, nil).Move(ctx, "assets", "a.png", "backups", "b.png"))
		client.AssertExpectations(t)
	})

	t.Run("MoveCopyFailsKeepsSource", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("CopyObject", mock.Anything, dst, src).Return(minio.UploadInfo{}, errors.New("boom"))

		err := storage.NewBucketManager(client, nil).Move(ctx, "assets", "a.png", "backups", "b.png")
		assert.ErrorIs(t, err, storage.ErrRequestFailed)
		client.AssertNotCalled(t, "RemoveObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("MoveOntoItself", func(t *testing.T) {
		err := storage.NewBucketManager(new(mocks.Client), nil).Move(ctx, "assets", "a.png", "assets", "a.png")
		assert.ErrorIs(t, err, storage.ErrInvalidRequest)
	})

	t.Run("Rename", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("CopyObject", mock.Anything,
			minio.CopyDestOptions{Bucket: "assets", Object: "c.png"},
			minio.CopySrcOptions{Bucket: "assets", Object: "a.png"},
		).Return(minio.UploadInfo{}, nil)
		client.On("RemoveObject", mock.Anything, "assets", "a.png", mock.Anything).Return(nil)

		assert.NoError(t, storage.NewBucketManager(client, nil).Rename(ctx, "assets", "a.png", "c.png"))
		client.AssertExpectations(t)
	})

	t.Run("Delete", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("RemoveObject", mock.Anything, "assets", "a.png", mock.Anything).Return(nil)

		assert.NoError(t, storage.NewBucketManager(client, nil).Delete(ctx, "assets", "a.png"))
	})

	t.Run("DeleteDenied", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("RemoveObject", mock.Anything, "assets", "a.png", mock.Anything).Return(minio.ErrorResponse{Code: "AccessDenied"})

		err := storage.NewBucketManager(client, nil).Delete(ctx, "assets", "a.png")
		assert.ErrorIs(t, err, storage.ErrAccessDenied)
	})
}

type doerFunc func(*http.Request) (*http.Response, error)

func (f doerFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

type zeros struct{}

func (zeros) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}

// countingReader counts the bytes read through it.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

func readAll(t *testing.T, r io.Reader) []byte {
	t.Helper()
	var buf bytes.Buffer
	_, err := buf.ReadFrom(r)
	require.NoError(t, err)
	return buf.Bytes()
}
