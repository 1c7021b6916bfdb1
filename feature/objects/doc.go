// Package objects is the application facing facade over the object store.
//
// Service wraps the three SDK clients (upload token signer, bucket manager
// and upload manager) behind one set of operations. A blank bucket argument
// always falls back to the configured default bucket. Errors from the SDK are
// returned unchanged so callers can inspect them with the storage helpers.
//
// # Operations
//
//   - ListBuckets, ListFiles: Enumerate buckets and every object under a prefix.
//   - UploadStream, UploadPath: Upload from a reader or from a local file.
//   - FetchToBucket: Pull a remote URL into a bucket.
//   - CopyObject, MoveObject, RenameObject, DeleteObject: Mutate objects.
//   - FindFiles, FindOneFile: Return the first listing page, or its first item.
//   - AccessURL: Build the public URL of a key.
//
// # HTTP Endpoints
//
//   - GET /buckets : Lists bucket names.
//   - GET /objects?bucket=&prefix=&limit= : Lists every object under a prefix.
//   - GET /objects/find?bucket=&prefix=&limit= : First page, 404 when empty.
//   - GET /objects/one?bucket=&key= : First object starting with key, 404 when none.
//   - GET /objects/url?key= : Public URL of a key.
//   - POST /objects/upload : Multipart upload of the "file" field.
//   - POST /objects/fetch : Pulls {"url","bucket","key"} into a bucket.
//   - POST /objects/copy, /objects/move, /objects/rename : Transfers an object.
//   - DELETE /objects?bucket=&key= : Deletes an object.
package objects
