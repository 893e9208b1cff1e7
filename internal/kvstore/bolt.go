package kvstore

import (
	"context"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

type boltStore struct {
	db     *bolt.DB
	bucket []byte
}

// NewBoltStore opens (or creates) the bbolt file at path and ensures the
// bucket exists.
func NewBoltStore(path, bucket string) (Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))

		return err
	})
	if err != nil {
		db.Close()

		return nil, fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}

	return &boltStore{db: db, bucket: []byte(bucket)}, nil
}

func (s *boltStore) Read(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var blob []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		value := tx.Bucket(s.bucket).Get([]byte(key))
		if value == nil {
			return ErrKeyNotFound
		}

		// value is only valid inside the transaction
		blob = make([]byte, len(value))
		copy(blob, value)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return blob, nil
}

func (s *boltStore) Write(ctx context.Context, key string, blob []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(key), blob)
	})
	if err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}

	return nil
}

func (s *boltStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}

	return nil
}

func (s *boltStore) Close() error {
	return s.db.Close()
}
