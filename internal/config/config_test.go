package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Creates a temporary YAML config file in a temporary directory.
func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test_config.yaml")

	err := os.WriteFile(configPath, []byte(content), 0o600)
	require.NoError(t, err, "Failed to write temporary config file")

	return configPath
}

func TestMustLoad(t *testing.T) {
	validYAML := `
env: "test"
http_server:
  address: ":8081"
storage:
  backend: "bolt"
  path: "/tmp/inventory-test.db"
  bucket: "inventory"
  key: "inventory_products"
redis:
  REDIS_ADDR: "redishost:6380"
  REDIS_PASSWORD: "redispassword"
  REDIS_DB: 1
inventory:
  mutation_delay: "250ms"
  locale: "es"
`

	t.Run("Loads config from CONFIG_PATH", func(t *testing.T) {
		configPath := createTempConfigFile(t, validYAML)
		t.Setenv("CONFIG_PATH", configPath)

		cfg := MustLoad()

		assert.Equal(t, "test", cfg.Env)
		assert.Equal(t, ":8081", cfg.Addr)
		assert.Equal(t, "bolt", cfg.Storage.Backend)
		assert.Equal(t, "/tmp/inventory-test.db", cfg.Storage.Path)
		assert.Equal(t, "inventory", cfg.Storage.Bucket)
		assert.Equal(t, "inventory_products", cfg.Storage.Key)
		assert.Equal(t, "redishost:6380", cfg.RedisConnect.Addr)
		assert.Equal(t, 1, cfg.RedisConnect.DB)
		assert.Equal(t, 250*time.Millisecond, cfg.Inventory.MutationDelay)
		assert.Equal(t, "es", cfg.Inventory.Locale)
	})

	t.Run("Defaults are applied", func(t *testing.T) {
		configPath := createTempConfigFile(t, "env: \"test\"\n")
		t.Setenv("CONFIG_PATH", configPath)

		cfg := MustLoad()

		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, "bolt", cfg.Storage.Backend)
		assert.Equal(t, "inventory_products", cfg.Storage.Key)
		assert.Equal(t, time.Duration(0), cfg.Inventory.MutationDelay)
		assert.Equal(t, "en", cfg.Inventory.Locale)
	})

	t.Run("Environment overrides file", func(t *testing.T) {
		configPath := createTempConfigFile(t, validYAML)
		t.Setenv("CONFIG_PATH", configPath)
		t.Setenv("STORAGE_BACKEND", "memory")
		t.Setenv("MUTATION_DELAY", "0s")

		cfg := MustLoad()

		assert.Equal(t, "memory", cfg.Storage.Backend)
		assert.Equal(t, time.Duration(0), cfg.Inventory.MutationDelay)
	})
}
