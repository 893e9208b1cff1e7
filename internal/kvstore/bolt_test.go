package kvstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocklight/inventory-tracker/internal/kvstore"
)

func newBoltStore(t *testing.T) kvstore.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "inventory.db")

	store, err := kvstore.NewBoltStore(path, "inventory")
	require.NoError(t, err)

	t.Cleanup(func() { store.Close() })

	return store
}

func TestBoltReadWrite(t *testing.T) {
	ctx := context.Background()
	store := newBoltStore(t)

	require.NoError(t, store.Write(ctx, "snapshot", []byte(`{"products":[]}`)))

	blob, err := store.Read(ctx, "snapshot")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"products":[]}`), blob)
}

func TestBoltReadMissingKey(t *testing.T) {
	store := newBoltStore(t)

	_, err := store.Read(context.Background(), "never-written")
	assert.ErrorIs(t, err, kvstore.ErrKeyNotFound)
}

func TestBoltOverwrite(t *testing.T) {
	ctx := context.Background()
	store := newBoltStore(t)

	require.NoError(t, store.Write(ctx, "snapshot", []byte("first")))
	require.NoError(t, store.Write(ctx, "snapshot", []byte("second")))

	blob, err := store.Read(ctx, "snapshot")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), blob)
}

func TestBoltDelete(t *testing.T) {
	ctx := context.Background()
	store := newBoltStore(t)

	require.NoError(t, store.Write(ctx, "snapshot", []byte("blob")))
	require.NoError(t, store.Delete(ctx, "snapshot"))

	_, err := store.Read(ctx, "snapshot")
	assert.ErrorIs(t, err, kvstore.ErrKeyNotFound)
}
