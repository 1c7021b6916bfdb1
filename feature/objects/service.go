package objects

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"storage-facade/core/metrics"
	"storage-facade/core/middleware/rayid"
	"storage-facade/core/storage"
	"storage-facade/feature/journal"

	"go.uber.org/zap"
)

// Signer issues upload tokens.
type Signer interface {
	UploadToken(bucket string) (string, error)
}

// Buckets is the bucket management client.
type Buckets interface {
	storage.Lister
	Buckets(ctx context.Context) ([]string, error)
	Fetch(ctx context.Context, url, bucket, key string) (*storage.FetchResult, error)
	Copy(ctx context.Context, bucket, key, targetBucket, targetKey string) error
	Move(ctx context.Context, bucket, key, targetBucket, targetKey string) error
	Rename(ctx context.Context, bucket, key, targetKey string) error
	Delete(ctx context.Context, bucket, key string) error
}

// Uploader is the upload management client.
type Uploader interface {
	Put(ctx context.Context, data []byte, key, token, mimeType string) (*storage.Response, error)
}

// Recorder keeps a journal of successful mutations.
type Recorder interface {
	Record(ctx context.Context, entry journal.Entry) error
}

// Clients are the SDK objects the service delegates to. They are built once
// at startup and never replaced.
type Clients struct {
	Auth    Signer
	Buckets Buckets
	Uploads Uploader
}

// Option configures optional collaborators of the Service.
type Option func(*Service)

// WithMetrics records every operation in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithJournal records successful mutations in r.
func WithJournal(r Recorder) Option {
	return func(s *Service) { s.journal = r }
}

// Service is the application facing facade over the storage SDK.
type Service struct {
	auth    Signer
	buckets Buckets
	uploads Uploader

	bucket string
	host   string
	logger *zap.Logger

	metrics *metrics.Metrics
	journal Recorder
}

// NewService creates the facade. cfg supplies the default bucket and the
// public host name.
func NewService(clients Clients, cfg storage.Config, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		auth:    clients.Auth,
		buckets: clients.Buckets,
		uploads: clients.Uploads,
		bucket:  cfg.Bucket,
		host:    cfg.HostName,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HostName returns the public host of the default bucket.
func (s *Service) HostName() string {
	return s.host
}

// DefaultBucket returns the bucket used when a caller leaves it blank.
func (s *Service) DefaultBucket() string {
	return s.bucket
}

// ListBuckets returns the names of all buckets.
func (s *Service) ListBuckets(ctx context.Context) (names []string, err error) {
	defer s.observe("buckets", "", "", time.Now(), &err)
	return s.buckets.Buckets(ctx)
}

// ListFiles returns every object under prefix, walking all listing pages of
// size limit in the order the service returns them.
func (s *Service) ListFiles(ctx context.Context, bucket, prefix string, limit int) (files []storage.FileInfo, err error) {
	bucket = s.bucketOr(bucket)
	defer s.observe("list", bucket, prefix, time.Now(), &err)

	files = make([]storage.FileInfo, 0)
	it := storage.NewFileListIterator(s.buckets, bucket, prefix, limitOr(limit))
	for it.Next(ctx) {
		if items := it.Items(); len(items) > 0 {
			files = append(files, items...)
		}
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return files, nil
}

// UploadStream uploads the content of r to bucket under key and returns the
// raw response body. r is closed before returning.
func (s *Service) UploadStream(ctx context.Context, r io.ReadCloser, bucket, key string, opts StreamOptions) (body string, err error) {
	defer r.Close()

	bucket = s.bucketOr(bucket)
	defer s.observe("upload", bucket, key, time.Now(), &err)

	return s.upload(ctx, r, bucket, key, opts.MimeType)
}

// UploadPath uploads the file filename found in dir. The object key is
// opts.Key, or filename when opts.Key is blank.
func (s *Service) UploadPath(ctx context.Context, dir, filename, bucket string, opts UploadOptions) (body string, err error) {
	bucket = s.bucketOr(bucket)
	key := opts.Key
	if isBlank(key) {
		key = filename
	}
	defer s.observe("upload", bucket, key, time.Now(), &err)

	f, err := os.Open(filepath.Join(dir, filename))
	if err != nil {
		return "", storage.LocalIOError("upload", bucket, key, err)
	}
	defer f.Close()

	return s.upload(ctx, f, bucket, key, opts.MimeType)
}

func (s *Service) upload(ctx context.Context, r io.Reader, bucket, key, mimeType string) (string, error) {
	token, err := s.auth.UploadToken(bucket)
	if err != nil {
		return "", err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", storage.LocalIOError("upload", bucket, key, err)
	}

	resp, err := s.uploads.Put(ctx, data, key, token, mimeType)
	if err != nil {
		return "", err
	}

	s.record(ctx, journal.Entry{Operation: "upload", Bucket: bucket, Key: key})
	return resp.BodyString(), nil
}

// FetchToBucket pulls url into bucket and returns the resulting key. Without
// opts.Key the service names the object after its content.
func (s *Service) FetchToBucket(ctx context.Context, url, bucket string, opts FetchOptions) (key string, err error) {
	bucket = s.bucketOr(bucket)
	defer s.observe("fetch", bucket, opts.Key, time.Now(), &err)

	res, err := s.buckets.Fetch(ctx, url, bucket, opts.Key)
	if err != nil {
		return "", err
	}

	s.record(ctx, journal.Entry{Operation: "fetch", Bucket: bucket, Key: res.Key})
	return res.Key, nil
}

// CopyObject copies bucket/key to targetBucket/targetKey.
func (s *Service) CopyObject(ctx context.Context, bucket, key, targetBucket, targetKey string) (err error) {
	bucket, targetBucket = s.bucketOr(bucket), s.bucketOr(targetBucket)
	defer s.observe("copy", bucket, key, time.Now(), &err)

	if err := s.buckets.Copy(ctx, bucket, key, targetBucket, targetKey); err != nil {
		return err
	}

	s.record(ctx, journal.Entry{Operation: "copy", Bucket: bucket, Key: key, TargetBucket: targetBucket, TargetKey: targetKey})
	return nil
}

// MoveObject moves bucket/key to targetBucket/targetKey.
func (s *Service) MoveObject(ctx context.Context, bucket, key, targetBucket, targetKey string) (err error) {
	bucket, targetBucket = s.bucketOr(bucket), s.bucketOr(targetBucket)
	defer s.observe("move", bucket, key, time.Now(), &err)

	if err := s.buckets.Move(ctx, bucket, key, targetBucket, targetKey); err != nil {
		return err
	}

	s.record(ctx, journal.Entry{Operation: "move", Bucket: bucket, Key: key, TargetBucket: targetBucket, TargetKey: targetKey})
	return nil
}

// RenameObject renames key to targetKey inside bucket.
func (s *Service) RenameObject(ctx context.Context, bucket, key, targetKey string) (err error) {
	bucket = s.bucketOr(bucket)
	defer s.observe("rename", bucket, key, time.Now(), &err)

	if err := s.buckets.Rename(ctx, bucket, key, targetKey); err != nil {
		return err
	}

	s.record(ctx, journal.Entry{Operation: "rename", Bucket: bucket, Key: key, TargetBucket: bucket, TargetKey: targetKey})
	return nil
}

// DeleteObject removes bucket/key.
func (s *Service) DeleteObject(ctx context.Context, bucket, key string) (err error) {
	bucket = s.bucketOr(bucket)
	defer s.observe("delete", bucket, key, time.Now(), &err)

	if err := s.buckets.Delete(ctx, bucket, key); err != nil {
		return err
	}

	s.record(ctx, journal.Entry{Operation: "delete", Bucket: bucket, Key: key})
	return nil
}

// FindFiles returns the first listing page under opts.Prefix. It returns nil
// and no error when nothing matches.
func (s *Service) FindFiles(ctx context.Context, bucket string, opts FindOptions) (files []storage.FileInfo, err error) {
	bucket = s.bucketOr(bucket)
	defer s.observe("find", bucket, opts.Prefix, time.Now(), &err)

	listing, err := s.buckets.ListFiles(ctx, bucket, opts.Prefix, "", limitOr(opts.Limit))
	if err != nil {
		return nil, err
	}
	if listing == nil || len(listing.Items) == 0 {
		return nil, nil
	}
	return listing.Items, nil
}

// FindOneFile returns the first object whose key starts with key. It returns
// nil and no error when nothing matches.
func (s *Service) FindOneFile(ctx context.Context, bucket, key string, opts FindOptions) (file *storage.FileInfo, err error) {
	bucket = s.bucketOr(bucket)
	defer s.observe("find", bucket, key, time.Now(), &err)

	listing, err := s.buckets.ListFiles(ctx, bucket, key, "", limitOr(opts.Limit))
	if err != nil {
		return nil, err
	}
	if listing == nil || len(listing.Items) == 0 {
		return nil, nil
	}
	first := listing.Items[0]
	return &first, nil
}

// AccessURL returns the public URL of key on the configured host.
func (s *Service) AccessURL(key string) string {
	return s.host + "/" + key
}

func (s *Service) bucketOr(bucket string) string {
	if isBlank(bucket) {
		return s.bucket
	}
	return bucket
}

// observe logs and counts an operation once it returns.
func (s *Service) observe(op, bucket, key string, started time.Time, errp *error) {
	err := *errp
	s.metrics.Observe(op, storage.KindName(err), started)

	fields := []zap.Field{
		zap.String("operation", op),
		zap.String("bucket", bucket),
		zap.String("key", key),
		zap.Duration("duration", time.Since(started)),
	}
	if err != nil {
		s.logger.Error("Storage operation failed", append(fields, zap.Error(err))...)
		return
	}
	s.logger.Debug("Storage operation completed", fields...)
}

func (s *Service) record(ctx context.Context, entry journal.Entry) {
	if s.journal == nil {
		return
	}
	entry.RayID = rayid.FromContext(ctx)
	if err := s.journal.Record(ctx, entry); err != nil {
		s.logger.Warn("Failed to record journal entry",
			zap.String("operation", entry.Operation),
			zap.String("bucket", entry.Bucket),
			zap.String("key", entry.Key),
			zap.Error(err))
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func limitOr(limit int) int {
	if limit <= 0 {
		return storage.DefaultLimit
	}
	return limit
}
