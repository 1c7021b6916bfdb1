// Package storage wraps the object storage SDK behind the clients the rest of
// the application talks to.
//
// It uses the MinIO Go client, so any S3 compatible service (AWS S3, MinIO,
// Ceph RGW) can back the facade.
//
// # Clients
//
// NewClients builds, once per process, the three objects the facade needs:
//
//   - Auth: issues short-lived upload tokens scoped to a bucket and verifies them.
//   - BucketManager: bucket listing, paged file listing, remote fetch, copy,
//     move, rename and delete.
//   - UploadManager: stores a byte payload authorized by an upload token and
//     returns the raw JSON response body.
//
// Both managers share one SDK Client. The Client interface keeps the SDK
// mockable (see core/storage/mocks).
//
// # Listing
//
// BucketManager.ListFiles returns a single page and the marker of the next
// one. FileListIterator drives it until the listing is exhausted.
//
// # Errors
//
// Every SDK failure is returned as an *Error tagged with one of ErrNotFound,
// ErrAccessDenied, ErrNetwork, ErrLocalIO, ErrInvalidRequest or
// ErrRequestFailed. errors.Is works with both the tag and the SDK cause.
//
// # Usage
//
//	clients, err := storage.NewClients(cfg.Storage)
//	token, err := clients.Auth.UploadToken("assets")
//	resp, err := clients.Uploads.Put(ctx, data, "logo.png", token, "")
package storage
