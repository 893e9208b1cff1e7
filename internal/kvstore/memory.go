package kvstore

import (
	"context"
	"sync"
)

// MemoryStore keeps blobs in a map. Used for the ephemeral backend and as the
// substitute in tests.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte

	// FailWrites forces every Write to return FailErr, for exercising
	// persistence-failure paths.
	FailWrites bool
	FailErr    error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func (s *MemoryStore) Read(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	blob, ok := s.blobs[key]
	if !ok {
		return nil, ErrKeyNotFound
	}

	out := make([]byte, len(blob))
	copy(out, blob)

	return out, nil
}

func (s *MemoryStore) Write(ctx context.Context, key string, blob []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWrites {
		return s.FailErr
	}

	stored := make([]byte, len(blob))
	copy(stored, blob)
	s.blobs[key] = stored

	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.blobs, key)

	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
