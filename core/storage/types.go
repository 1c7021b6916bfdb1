package storage

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/minio/minio-go/v7"
)

// DefaultLimit is the page size used when a caller does not specify one.
const DefaultLimit = 1000

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FileInfo is the metadata of one stored object.
type FileInfo struct {
	Key      string    `json:"key"`
	Size     int64     `json:"fsize"`
	Hash     string    `json:"hash"`
	MimeType string    `json:"mimeType"`
	PutTime  time.Time `json:"putTime"`
}

// FileListing is one page of a bucket listing.
type FileListing struct {
	Items []FileInfo `json:"items"`
	// Marker resumes the listing after this page. Empty when exhausted.
	Marker string `json:"marker"`
}

// Response is the raw result of an upload.
type Response struct {
	StatusCode int
	Body       []byte
}

// BodyString returns the response body as a string.
func (r *Response) BodyString() string {
	if r == nil {
		return ""
	}
	return string(r.Body)
}

// FetchResult describes an object pulled into a bucket from a remote URL.
type FetchResult struct {
	Key      string `json:"key"`
	Hash     string `json:"hash"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"fsize"`
}

// putRet is the JSON body returned for a successful put.
type putRet struct {
	Key      string `json:"key"`
	Hash     string `json:"hash"`
	Bucket   string `json:"bucket"`
	Size     int64  `json:"fsize"`
	MimeType string `json:"mimeType"`
}

func fileInfoFromObject(obj minio.ObjectInfo) FileInfo {
	return FileInfo{
		Key:      obj.Key,
		Size:     obj.Size,
		Hash:     cleanETag(obj.ETag),
		MimeType: obj.ContentType,
		PutTime:  obj.LastModified,
	}
}

func cleanETag(etag string) string {
	return strings.Trim(etag, `"`)
}

// contentKey derives an object key from the content when the caller gave none.
func contentKey(data []byte) string {
	sum := sha1.Sum(data)
	return hex.EncodeToString(sum[:])
}
