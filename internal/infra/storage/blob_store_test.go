package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/fileblob"
)

func newTestStore(t *testing.T) *blobStore {
	t.Helper()

	bucket, err := fileblob.OpenBucket(t.TempDir(), &fileblob.Options{CreateDir: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })

	return &blobStore{bucket: bucket}
}

func TestBlobStore_WriteAndExists(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.Write(ctx, "productos/test.jpg", strings.NewReader("fake image bytes"))
	require.NoError(t, err)

	exists, err := store.Exists(ctx, "productos/test.jpg")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = store.Exists(ctx, "productos/missing.jpg")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlobStore_WriteReplacesExisting(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, "productos/a.jpg", strings.NewReader("first")))
	require.NoError(t, store.Write(ctx, "productos/a.jpg", strings.NewReader("second")))

	exists, err := store.Exists(ctx, "productos/a.jpg")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestBlobStore_DeleteIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, "productos/gone.jpg", strings.NewReader("bytes")))
	require.NoError(t, store.Delete(ctx, "productos/gone.jpg"))

	exists, err := store.Exists(ctx, "productos/gone.jpg")
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting again must not fail.
	assert.NoError(t, store.Delete(ctx, "productos/gone.jpg"))
}
