package storage_test

import (
	"context"
	"errors"
	"testing"

	"storage-facade/core/storage"
	"storage-facade/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func files(keys ...string) []storage.FileInfo {
	out := make([]storage.FileInfo, 0, len(keys))
	for _, k := range keys {
		out = append(out, storage.FileInfo{Key: k})
	}
	return out
}

func TestFileListIterator(t *testing.T) {
	t.Run("MultiplePages", func(t *testing.T) {
		buckets := new(mocks.BucketManager)
		buckets.On("ListFiles", mock.Anything, "assets", "img/", "", 2).
			Return(&storage.FileListing{Items: files("a", "b"), Marker: "b"}, nil).Once()
		buckets.On("ListFiles", mock.Anything, "assets", "img/", "b", 2).
			Return(&storage.FileListing{Items: files("c")}, nil).Once()

		it := storage.NewFileListIterator(buckets, "assets", "img/", 2)
		var pages [][]storage.FileInfo
		for it.Next(context.Background()) {
			pages = append(pages, it.Items())
		}

		assert.NoError(t, it.Err())
		assert.Equal(t, [][]storage.FileInfo{files("a", "b"), files("c")}, pages)
		assert.False(t, it.Next(context.Background()))
		buckets.AssertExpectations(t)
	})

	t.Run("StuckMarkerStops", func(t *testing.T) {
		buckets := new(mocks.BucketManager)
		buckets.On("ListFiles", mock.Anything, "assets", "", "", storage.DefaultLimit).
			Return(&storage.FileListing{Items: files("a"), Marker: "a"}, nil).Once()
		buckets.On("ListFiles", mock.Anything, "assets", "", "a", storage.DefaultLimit).
			Return(&storage.FileListing{Items: files("a"), Marker: "a"}, nil).Once()

		it := storage.NewFileListIterator(buckets, "assets", "", 0)
		count := 0
		for it.Next(context.Background()) {
			count++
		}
		assert.Equal(t, 2, count)
	})

	t.Run("Error", func(t *testing.T) {
		boom := errors.New("boom")
		buckets := new(mocks.BucketManager)
		buckets.On("ListFiles", mock.Anything, "assets", "", "", 10).Return(nil, boom)

		it := storage.NewFileListIterator(buckets, "assets", "", 10)
		assert.False(t, it.Next(context.Background()))
		assert.Same(t, boom, it.Err())
		assert.Nil(t, it.Items())
	})

	t.Run("NilPage", func(t *testing.T) {
		buckets := new(mocks.BucketManager)
		buckets.On("ListFiles", mock.Anything, "assets", "", "", 10).Return(nil, nil)

		it := storage.NewFileListIterator(buckets, "assets", "", 10)
		assert.False(t, it.Next(context.Background()))
		assert.NoError(t, it.Err())
	})
}
