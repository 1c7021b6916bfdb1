package storage

import "context"

// Lister returns one page of a bucket listing.
type Lister interface {
	ListFiles(ctx context.Context, bucket, prefix, marker string, limit int) (*FileListing, error)
}

// FileListIterator walks a bucket listing page by page.
//
//	it := storage.NewFileListIterator(buckets, "assets", "img/", 1000)
//	for it.Next(ctx) {
//	    process(it.Items())
//	}
//	if err := it.Err(); err != nil { ... }
type FileListIterator struct {
	lister Lister
	bucket string
	prefix string
	limit  int

	marker string
	items  []FileInfo
	done   bool
	err    error
}

// NewFileListIterator creates an iterator over bucket/prefix with pages of limit.
func NewFileListIterator(lister Lister, bucket, prefix string, limit int) *FileListIterator {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &FileListIterator{lister: lister, bucket: bucket, prefix: prefix, limit: limit}
}

// Next fetches the next page. It returns false once the listing is exhausted
// or a page failed.
func (it *FileListIterator) Next(ctx context.Context) bool {
	if it.done || it.err != nil {
		return false
	}

	page, err := it.lister.ListFiles(ctx, it.bucket, it.prefix, it.marker, it.limit)
	if err != nil {
		it.err = err
		it.items = nil
		return false
	}
	if page == nil {
		it.done = true
		it.items = nil
		return false
	}

	it.items = page.Items
	// A marker that does not advance would repeat the same page forever.
	if page.Marker == "" || page.Marker == it.marker {
		it.done = true
	}
	it.marker = page.Marker
	return true
}

// Items returns the page fetched by the last call to Next.
func (it *FileListIterator) Items() []FileInfo {
	return it.items
}

// Err returns the error that stopped the iteration, if any.
func (it *FileListIterator) Err() error {
	return it.err
}
