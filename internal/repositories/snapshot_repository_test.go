package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocklight/inventory-tracker/internal/kvstore"
	"github.com/stocklight/inventory-tracker/internal/models"
	repository "github.com/stocklight/inventory-tracker/internal/repositories"
)

func TestSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := repository.NewSnapshotRepo(store, "inventory_products")

	created := time.Date(2024, time.January, 15, 9, 30, 0, 0, time.UTC)
	updated := time.Date(2024, time.February, 1, 18, 0, 0, 0, time.UTC)

	original := &models.Snapshot{
		Products: []models.Product{
			{
				ID:        1736899200000,
				Name:      "AirPods Pro",
				Quantity:  5,
				Price:     1299.99,
				Category:  models.CategoryElectronics,
				CreatedAt: created,
				UpdatedAt: &updated,
			},
			{
				ID:        1736899200001,
				Name:      "Programming Book",
				Quantity:  15,
				Price:     45.50,
				Category:  models.CategoryBooks,
				CreatedAt: created,
			},
		},
		Theme:       models.ThemeLight,
		LastUpdated: updated,
	}

	require.NoError(t, repo.Save(ctx, original))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)

	// element-for-element equality: ids, fields and timestamps survive
	assert.Equal(t, original, loaded)
}

func TestLoadMissingSnapshot(t *testing.T) {
	repo := repository.NewSnapshotRepo(kvstore.NewMemoryStore(), "inventory_products")

	snapshot, err := repo.Load(context.Background())

	assert.Nil(t, snapshot)
	assert.ErrorIs(t, err, repository.ErrNoSnapshot)
}

func TestLoadCorruptSnapshot(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Write(ctx, "inventory_products", []byte("not json at all")))

	repo := repository.NewSnapshotRepo(store, "inventory_products")

	snapshot, err := repo.Load(ctx)

	assert.Nil(t, snapshot)
	assert.ErrorIs(t, err, repository.ErrCorruptSnapshot)
}

func TestSaveFailurePropagates(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	store.FailWrites = true
	store.FailErr = assert.AnError

	repo := repository.NewSnapshotRepo(store, "inventory_products")

	err := repo.Save(ctx, &models.Snapshot{Theme: models.ThemeDark})
	assert.Error(t, err)
}
