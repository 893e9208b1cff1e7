package kvstore

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Read when the key has never been written.
var ErrKeyNotFound = errors.New("kvstore: key not found")

// Store is the persistence boundary: one key maps to one opaque blob.
// Implementations only move bytes; all serialization stays with the caller.
type Store interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, blob []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
