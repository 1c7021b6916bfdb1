package storage

import (
	"errors"
	"net"
	"net/http"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
)

func TestWrapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"NoSuchKey", minio.ErrorResponse{Code: "NoSuchKey", StatusCode: http.StatusNotFound}, ErrNotFound},
		{"NoSuchBucket", minio.ErrorResponse{Code: "NoSuchBucket"}, ErrNotFound},
		{"AccessDenied", minio.ErrorResponse{Code: "AccessDenied"}, ErrAccessDenied},
		{"BadSignature", minio.ErrorResponse{Code: "SignatureDoesNotMatch"}, ErrAccessDenied},
		{"InvalidBucketName", minio.ErrorResponse{Code: "InvalidBucketName"}, ErrInvalidRequest},
		{"StatusOnly404", minio.ErrorResponse{StatusCode: http.StatusNotFound}, ErrNotFound},
		{"StatusOnly403", minio.ErrorResponse{StatusCode: http.StatusForbidden}, ErrAccessDenied},
		{"StatusOnly503", minio.ErrorResponse{StatusCode: http.StatusServiceUnavailable}, ErrNetwork},
		{"Network", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, ErrNetwork},
		{"Unknown", errors.New("boom"), ErrRequestFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := wrapError("copy", "assets", "a.png", tt.err)
			assert.ErrorIs(t, err, tt.kind)

			var se *Error
			assert.ErrorAs(t, err, &se)
			assert.Equal(t, "copy", se.Op)
			assert.Equal(t, "assets", se.Bucket)
			assert.Equal(t, "a.png", se.Key)
		})
	}
}

func TestWrapError_KeepsCause(t *testing.T) {
	cause := errors.New("boom")
	assert.ErrorIs(t, wrapError("copy", "assets", "a.png", cause), cause)
}

func TestWrapError_Nil(t *testing.T) {
	assert.NoError(t, wrapError("copy", "assets", "a.png", nil))
}

func TestWrapError_KeepsTaggedErrors(t *testing.T) {
	tagged := newError("token", "", "", ErrAccessDenied, errors.New("expired"))
	assert.Same(t, tagged, wrapError("put", "assets", "a.png", tagged))
}

func TestError_Message(t *testing.T) {
	cause := errors.New("boom")

	assert.Equal(t, "delete assets/a.png: not found: boom", newError("delete", "assets", "a.png", ErrNotFound, cause).Error())
	assert.Equal(t, "list assets: network failure: boom", newError("list", "assets", "", ErrNetwork, cause).Error())
	assert.Equal(t, "buckets: request failed: boom", newError("buckets", "", "", ErrRequestFailed, cause).Error())
}

func TestKindHelpers(t *testing.T) {
	cause := errors.New("boom")

	assert.True(t, IsNotFound(newError("op", "", "", ErrNotFound, cause)))
	assert.True(t, IsAccessDenied(newError("op", "", "", ErrAccessDenied, cause)))
	assert.True(t, IsNetwork(newError("op", "", "", ErrNetwork, cause)))
	assert.True(t, IsLocalIO(LocalIOError("upload", "assets", "a.png", cause)))
	assert.False(t, IsNotFound(cause))
}

func TestKindName(t *testing.T) {
	cause := errors.New("boom")

	assert.Equal(t, "ok", KindName(nil))
	assert.Equal(t, "not_found", KindName(newError("op", "", "", ErrNotFound, cause)))
	assert.Equal(t, "access_denied", KindName(newError("op", "", "", ErrAccessDenied, cause)))
	assert.Equal(t, "network", KindName(newError("op", "", "", ErrNetwork, cause)))
	assert.Equal(t, "local_io", KindName(LocalIOError("op", "", "", cause)))
	assert.Equal(t, "invalid_request", KindName(newError("op", "", "", ErrInvalidRequest, cause)))
	assert.Equal(t, "failed", KindName(cause))
}
