package objects

// StreamOptions are the optional settings of UploadStream.
type StreamOptions struct {
	// MimeType of the content. Sniffed from the content when blank.
	MimeType string
}

// UploadOptions are the optional settings of UploadPath.
type UploadOptions struct {
	// Key of the object. Defaults to the file name.
	Key string
	// MimeType of the content. Sniffed from the content when blank.
	MimeType string
}

// FetchOptions are the optional settings of FetchToBucket.
type FetchOptions struct {
	// Key of the object. Defaults to a key derived from the content.
	Key string
}

// FindOptions are the optional settings of FindFiles and FindOneFile.
type FindOptions struct {
	// Prefix filters keys. Ignored by FindOneFile, which uses its key argument.
	Prefix string
	// Limit is the page size. Defaults to 1000.
	Limit int
}
