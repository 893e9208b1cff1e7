package kvstore_test

import (
	"context"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocklight/inventory-tracker/internal/kvstore"
)

func TestRedisReadWrite(t *testing.T) {
	ctx := context.Background()
	client, mock := redismock.NewClientMock()
	store := kvstore.NewRedisStore(client)

	mock.ExpectSet("snapshot", []byte("blob"), 0).SetVal("OK")
	mock.ExpectGet("snapshot").SetVal("blob")

	require.NoError(t, store.Write(ctx, "snapshot", []byte("blob")))

	got, err := store.Read(ctx, "snapshot")
	require.NoError(t, err)
	assert.Equal(t, []byte("blob"), got)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisReadMissingKey(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := kvstore.NewRedisStore(client)

	mock.ExpectGet("missing").RedisNil()

	_, err := store.Read(context.Background(), "missing")
	assert.ErrorIs(t, err, kvstore.ErrKeyNotFound)
}

func TestRedisDelete(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := kvstore.NewRedisStore(client)

	mock.ExpectDel("snapshot").SetVal(1)

	assert.NoError(t, store.Delete(context.Background(), "snapshot"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemoryStoreIsolatesBlobs(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()

	blob := []byte("original")
	require.NoError(t, store.Write(ctx, "snapshot", blob))

	blob[0] = 'X'

	got, err := store.Read(ctx, "snapshot")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), got)
}
