package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.True(t, cfg.Seed.Enabled)
	assert.Equal(t, 8*time.Second, cfg.ML.Timeout)
	assert.Equal(t, int64(5*1024*1024), cfg.Upload.MaxBytes)
	assert.False(t, cfg.MLEnabled())
	assert.Equal(t, "local", cfg.Storage.Provider)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ML_SERVICE_URL", "http://ml:8000/")
	t.Setenv("ML_TIMEOUT", "3s")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("SEED_ENABLED", "false")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "http://ml:8000", cfg.ML.ServiceURL)
	assert.True(t, cfg.MLEnabled())
	assert.Equal(t, 3*time.Second, cfg.ML.Timeout)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.False(t, cfg.Seed.Enabled)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	yaml := "server:\n  port: \"9090\"\ndatabase:\n  driver: postgres\n  dsn: host=db\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "host=db", cfg.Database.DSN)
}
