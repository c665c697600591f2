package service

import (
	"context"
	"io"
)

// BlobStore abstracts the file storage behind product images. Paths are
// slash-separated keys relative to the store root (e.g. "productos/abc.jpg")
// and are served publicly under the /storage/ URL prefix.
type BlobStore interface {
	// Write stores the content under the given key, replacing any existing blob.
	Write(ctx context.Context, key string, content io.Reader) error

	// Delete removes the blob under the key. Deleting a missing blob is not
	// an error, so replaying an image removal stays idempotent.
	Delete(ctx context.Context, key string) error

	// Exists reports whether a blob is stored under the key.
	Exists(ctx context.Context, key string) (bool, error)
}
