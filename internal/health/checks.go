package health

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hellofresh/health-go/v5"

	"github.com/stocklight/inventory-tracker/internal/config"
	"github.com/stocklight/inventory-tracker/internal/kvstore"
)

// NewHealthHandler wires a /health endpoint with a storage probe: a read of
// the snapshot key must succeed or report a clean miss.
func NewHealthHandler(cfg *config.Config, store kvstore.Store) (*health.Health, error) {

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "inventory-tracker",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(
			health.Config{
				Name:      "storage",
				Timeout:   2 * time.Second,
				SkipOnErr: false,
				Check: func(ctx context.Context) error {
					_, err := store.Read(ctx, cfg.Storage.Key)
					if err != nil && !errors.Is(err, kvstore.ErrKeyNotFound) {
						return fmt.Errorf("storage read failed: %w", err)
					}

					return nil
				},
			},
		),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
