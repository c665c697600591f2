// Package storage implements the product image store on top of a gocloud
// blob bucket backed by the local filesystem.
package storage

import (
	"context"
	"io"

	"tienda/config"
	"tienda/internal/domain/service"
	"tienda/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"
)

// blobStore implements the service.BlobStore interface.
type blobStore struct {
	bucket *blob.Bucket
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// New opens the filesystem-backed bucket configured under storage.dir and
// registers its shutdown with the application lifecycle.
func New(params Params) (service.BlobStore, error) {
	bucket, err := fileblob.OpenBucket(params.Config.Storage.Dir, &fileblob.Options{
		CreateDir: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open blob bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStore{bucket: bucket}, nil
}

// NewWithBucket wraps an already open bucket. Used by tests.
func NewWithBucket(bucket *blob.Bucket) service.BlobStore {
	return &blobStore{bucket: bucket}
}

// Write stores the content under the given key, replacing any existing blob.
func (s *blobStore) Write(ctx context.Context, key string, content io.Reader) error {
	w, err := s.bucket.NewWriter(ctx, key, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to open blob writer for %s", key)
	}

	if _, err := io.Copy(w, content); err != nil {
		// Abort the write; the partial blob is never committed.
		_ = w.Close()

		return errors.Wrapf(err, "failed to write blob %s", key)
	}

	if err := w.Close(); err != nil {
		return errors.Wrapf(err, "failed to commit blob %s", key)
	}

	return nil
}

// Delete removes the blob under the key. Missing blobs are not an error.
func (s *blobStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete blob %s", key)
	}

	return nil
}

// Exists reports whether a blob is stored under the key.
func (s *blobStore) Exists(ctx context.Context, key string) (bool, error) {
	exists, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return false, errors.Wrapf(err, "failed to stat blob %s", key)
	}

	return exists, nil
}
