package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/stocklight/inventory-tracker/internal/models"
)

// provisionSampleData seeds an empty store with a small illustrative
// inventory and persists it immediately. It only runs when no snapshot could
// be loaded; once anything is stored it is never invoked again.
func (s *inventoryService) provisionSampleData(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = []models.Product{
		{
			ID:        s.node.Generate().Int64(),
			Name:      "AirPods Pro",
			Quantity:  5,
			Price:     1299.99,
			Category:  models.CategoryElectronics,
			CreatedAt: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        s.node.Generate().Int64(),
			Name:      "Sports T-Shirt",
			Quantity:  25,
			Price:     29.99,
			Category:  models.CategoryClothing,
			CreatedAt: time.Date(2024, time.January, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        s.node.Generate().Int64(),
			Name:      "Programming Book",
			Quantity:  15,
			Price:     45.50,
			Category:  models.CategoryBooks,
			CreatedAt: time.Date(2024, time.January, 17, 0, 0, 0, 0, time.UTC),
		},
	}

	if err := s.persist(ctx); err != nil {
		slog.Warn("Failed to persist sample data, continuing in memory", slog.String("error", err.Error()))
	}
}
