package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stocklight/inventory-tracker/internal/api/handlers"
	"github.com/stocklight/inventory-tracker/internal/api/middleware"
	"github.com/stocklight/inventory-tracker/internal/config"
	"github.com/stocklight/inventory-tracker/internal/health"
	"github.com/stocklight/inventory-tracker/internal/kvstore"
	"github.com/stocklight/inventory-tracker/internal/metrics"
	repository "github.com/stocklight/inventory-tracker/internal/repositories"
	service "github.com/stocklight/inventory-tracker/internal/services"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Storage setup
	store, err := newStore(cfg)
	if err != nil {
		slog.Error("Error opening the key-value store", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("Error closing the key-value store", slog.String("error", err.Error()))
		} else {
			slog.Info("Key-value store closed")
		}
	}()

	snapshotRepo := repository.NewSnapshotRepo(store, cfg.Storage.Key)

	// Theme is picked from the clock first, then the snapshot load may
	// override it; sample data is provisioned when nothing is stored.
	inventoryService := service.NewInventoryService(context.Background(), snapshotRepo, service.Options{
		MutationDelay: cfg.Inventory.MutationDelay,
		Locale:        cfg.Inventory.Locale,
	})

	productHandler := handlers.NewProductHandler(inventoryService)
	statsHandler := handlers.NewStatsHandler(inventoryService)
	themeHandler := handlers.NewThemeHandler(inventoryService)

	healthHandler, err := health.NewHealthHandler(cfg, store)
	if err != nil {
		slog.Error("Error creating the health handler", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("Storage initialized", slog.String("env", cfg.Env), slog.String("backend", cfg.Storage.Backend))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("POST /api/v1/products", productHandler.CreateProduct())
	routerMux.HandleFunc("GET /api/v1/products", productHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{id}", productHandler.GetProduct())
	routerMux.HandleFunc("PUT /api/v1/products/{id}", productHandler.UpdateProduct())
	routerMux.HandleFunc("DELETE /api/v1/products/{id}", productHandler.DeleteProduct())
	routerMux.HandleFunc("DELETE /api/v1/products", productHandler.ClearProducts())
	routerMux.HandleFunc("GET /api/v1/stats", statsHandler.GetStats())
	routerMux.HandleFunc("GET /api/v1/theme", themeHandler.GetTheme())
	routerMux.HandleFunc("POST /api/v1/theme/toggle", themeHandler.ToggleTheme())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("Server shut down gracefully. All connections closed.")
	}

}

func newStore(cfg *config.Config) (kvstore.Store, error) {
	switch cfg.Storage.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisConnect.Addr,
			Password: cfg.RedisConnect.Password,
			DB:       cfg.RedisConnect.DB,
		})

		return kvstore.NewRedisStore(client), nil
	case "memory":
		return kvstore.NewMemoryStore(), nil
	default:
		return kvstore.NewBoltStore(cfg.Storage.Path, cfg.Storage.Bucket)
	}
}
