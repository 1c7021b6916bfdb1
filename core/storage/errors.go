package storage

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"

	"github.com/minio/minio-go/v7"
)

// Sentinel errors tagging the kind of a storage failure.
var (
	// ErrNotFound indicates the bucket, object or fetch source does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAccessDenied indicates the credentials or upload token were rejected.
	ErrAccessDenied = errors.New("access denied")

	// ErrNetwork indicates the service could not be reached.
	ErrNetwork = errors.New("network failure")

	// ErrLocalIO indicates a local file or stream could not be read.
	ErrLocalIO = errors.New("local i/o failure")

	// ErrInvalidRequest indicates the service rejected a malformed request.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrRequestFailed covers every other failure reported by the service.
	ErrRequestFailed = errors.New("request failed")
)

// Error wraps a storage failure with its kind and the objects involved.
type Error struct {
	// Op is the operation that failed (e.g., "copy", "put").
	Op string

	// Bucket is the bucket name, if applicable.
	Bucket string

	// Key is the object key, if applicable.
	Key string

	// Kind is one of the sentinel errors above.
	Kind error

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s %s/%s: %v: %v", e.Op, e.Bucket, e.Key, e.Kind, e.Err)
	}
	if e.Bucket != "" {
		return fmt.Sprintf("%s %s: %v: %v", e.Op, e.Bucket, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// IsNotFound returns true if the error indicates a missing bucket or object.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAccessDenied returns true if the error indicates an authentication failure.
func IsAccessDenied(err error) bool {
	return errors.Is(err, ErrAccessDenied)
}

// IsNetwork returns true if the error indicates the service was unreachable.
func IsNetwork(err error) bool {
	return errors.Is(err, ErrNetwork)
}

// IsLocalIO returns true if the error came from reading a local file or stream.
func IsLocalIO(err error) bool {
	return errors.Is(err, ErrLocalIO)
}

// newError builds an Error with an explicit kind.
func newError(op, bucket, key string, kind, err error) *Error {
	return &Error{Op: op, Bucket: bucket, Key: key, Kind: kind, Err: err}
}

// LocalIOError tags err as a local I/O failure for op.
func LocalIOError(op, bucket, key string, err error) error {
	return newError(op, bucket, key, ErrLocalIO, err)
}

// wrapError classifies an SDK error into one of the sentinel kinds.
func wrapError(op, bucket, key string, err error) error {
	if err == nil {
		return nil
	}

	var se *Error
	if errors.As(err, &se) {
		return err
	}

	return newError(op, bucket, key, classify(err), err)
}

func classify(err error) error {
	var netErr net.Error
	var urlErr *url.Error
	if errors.As(err, &netErr) || errors.As(err, &urlErr) {
		return ErrNetwork
	}

	var resp minio.ErrorResponse
	if !errors.As(err, &resp) {
		return ErrRequestFailed
	}

	switch resp.Code {
	case "NoSuchKey", "NoSuchBucket", "NoSuchUpload", "NotFound":
		return ErrNotFound
	case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch", "ExpiredToken", "InvalidToken":
		return ErrAccessDenied
	case "InvalidArgument", "InvalidBucketName", "InvalidObjectName", "MalformedXML", "KeyTooLongError":
		return ErrInvalidRequest
	}

	return classifyStatus(resp.StatusCode)
}

// classifyStatus maps an HTTP status code to a kind.
func classifyStatus(status int) error {
	switch {
	case status == http.StatusNotFound:
		return ErrNotFound
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return ErrAccessDenied
	case status == http.StatusBadRequest:
		return ErrInvalidRequest
	case status == http.StatusBadGateway, status == http.StatusServiceUnavailable, status == http.StatusGatewayTimeout:
		return ErrNetwork
	default:
		return ErrRequestFailed
	}
}

// KindName returns a short label for the kind of err, or "ok" when err is nil.
func KindName(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrAccessDenied):
		return "access_denied"
	case errors.Is(err, ErrNetwork):
		return "network"
	case errors.Is(err, ErrLocalIO):
		return "local_io"
	case errors.Is(err, ErrInvalidRequest):
		return "invalid_request"
	default:
		return "failed"
	}
}
