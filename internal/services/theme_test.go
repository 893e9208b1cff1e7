package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocklight/inventory-tracker/internal/kvstore"
	"github.com/stocklight/inventory-tracker/internal/models"
	repository "github.com/stocklight/inventory-tracker/internal/repositories"
	service "github.com/stocklight/inventory-tracker/internal/services"
)

func TestThemeForHour(t *testing.T) {
	cases := []struct {
		hour int
		want models.Theme
	}{
		{0, models.ThemeLight},
		{5, models.ThemeLight},
		{6, models.ThemeDark},
		{12, models.ThemeDark},
		{17, models.ThemeDark},
		{18, models.ThemeLight},
		{23, models.ThemeLight},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, service.ThemeForHour(tc.hour), "hour %d", tc.hour)
	}
}

func TestThemeFromClockAtStartup(t *testing.T) {
	store := kvstore.NewMemoryStore()
	repo := repository.NewSnapshotRepo(store, "inventory_products")

	night := time.Date(2025, time.March, 10, 22, 0, 0, 0, time.UTC)

	svc := service.NewInventoryService(context.Background(), repo, service.Options{
		Clock: func() time.Time { return night },
	})

	assert.Equal(t, models.ThemeLight, svc.Theme())
}

func TestToggleTheme(t *testing.T) {
	ctx := context.Background()

	store := kvstore.NewMemoryStore()
	repo := repository.NewSnapshotRepo(store, "inventory_products")

	err := repo.Save(ctx, &models.Snapshot{Theme: models.ThemeDark, LastUpdated: testTime})
	require.NoError(t, err)

	svc := service.NewInventoryService(ctx, repo, service.Options{
		Clock: func() time.Time { return testTime },
	})
	require.Equal(t, models.ThemeDark, svc.Theme())

	theme, err := svc.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, theme)
	assert.Equal(t, models.ThemeLight, svc.Theme())

	// persisted alongside the products: a fresh service sees the flip
	reloaded := service.NewInventoryService(ctx, repo, service.Options{
		Clock: func() time.Time { return testTime },
	})
	assert.Equal(t, models.ThemeLight, reloaded.Theme())
}

func TestSampleDataProvisioning(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty store gets sample products", func(t *testing.T) {
		store := kvstore.NewMemoryStore()
		repo := repository.NewSnapshotRepo(store, "inventory_products")

		svc := service.NewInventoryService(ctx, repo, service.Options{})

		view, err := svc.ListProducts(models.ListOptions{})
		require.NoError(t, err)
		require.Len(t, view, 3)
		assert.Equal(t, []string{"AirPods Pro", "Sports T-Shirt", "Programming Book"}, productNames(view))

		// persisted immediately: a second service loads them, not fresh samples
		reloaded := service.NewInventoryService(ctx, repo, service.Options{})
		reloadedView, err := reloaded.ListProducts(models.ListOptions{})
		require.NoError(t, err)
		require.Len(t, reloadedView, 3)
		assert.Equal(t, view[0].ID, reloadedView[0].ID)
	})

	t.Run("Corrupt snapshot falls back to samples", func(t *testing.T) {
		store := kvstore.NewMemoryStore()
		require.NoError(t, store.Write(ctx, "inventory_products", []byte("{not json")))

		repo := repository.NewSnapshotRepo(store, "inventory_products")
		svc := service.NewInventoryService(ctx, repo, service.Options{})

		view, err := svc.ListProducts(models.ListOptions{})
		require.NoError(t, err)
		assert.Len(t, view, 3)
	})

	t.Run("Skipped once any snapshot exists", func(t *testing.T) {
		store := kvstore.NewMemoryStore()
		repo := repository.NewSnapshotRepo(store, "inventory_products")

		err := repo.Save(ctx, &models.Snapshot{Theme: models.ThemeDark, LastUpdated: testTime})
		require.NoError(t, err)

		svc := service.NewInventoryService(ctx, repo, service.Options{})

		view, err := svc.ListProducts(models.ListOptions{})
		require.NoError(t, err)
		assert.Empty(t, view)
	})
}
