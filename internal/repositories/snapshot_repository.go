package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stocklight/inventory-tracker/internal/kvstore"
	"github.com/stocklight/inventory-tracker/internal/models"
)

var (
	// ErrNoSnapshot means the key has never been written.
	ErrNoSnapshot = errors.New("no snapshot stored")
	// ErrCorruptSnapshot means a blob exists but does not decode.
	ErrCorruptSnapshot = errors.New("snapshot data is corrupt")
)

type SnapshotRepository interface {
	Load(ctx context.Context) (*models.Snapshot, error)
	Save(ctx context.Context, snapshot *models.Snapshot) error
}

type snapshotRepository struct {
	store kvstore.Store
	key   string
}

func NewSnapshotRepo(store kvstore.Store, key string) SnapshotRepository {
	return &snapshotRepository{store: store, key: key}
}

func (r *snapshotRepository) Load(ctx context.Context) (*models.Snapshot, error) {
	blob, err := r.store.Read(ctx, r.key)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, ErrNoSnapshot
		}

		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	snapshot := &models.Snapshot{}
	if err := json.Unmarshal(blob, snapshot); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}

	return snapshot, nil
}

func (r *snapshotRepository) Save(ctx context.Context, snapshot *models.Snapshot) error {
	blob, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := r.store.Write(ctx, r.key, blob); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	return nil
}
