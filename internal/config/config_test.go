package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, CatalogSourceBuiltin, cfg.Catalog.Source)
	assert.Equal(t, 10*time.Minute, cfg.Redis.TTL)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, 100, cfg.Worker.SnapshotEvery)
}

func TestLoadConfig_YAMLAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("app:\n  port: \"9000\"\ncatalog:\n  source: file\n  file: roles.yaml\nredis:\n  ttl: 30s\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))

	t.Setenv("APP_PORT", "9100")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.App.Port)
	assert.Equal(t, CatalogSourceFile, cfg.Catalog.Source)
	assert.Equal(t, "roles.yaml", cfg.Catalog.File)
	assert.Equal(t, 30*time.Second, cfg.Redis.TTL)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
}
