package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "UTC", cfg.Server.Timezone)
	assert.Equal(t, "X-Device-ID", cfg.Server.DeviceHeader)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 15, cfg.Database.QueryTimeoutSeconds)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "memory", cfg.Local.Driver)
	assert.Equal(t, "6379", cfg.Local.Redis.Port)
	assert.Equal(t, "food-logs-local", cfg.Storage.Bucket)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_EnvFileAndOverrides(t *testing.T) {
	dir := t.TempDir()
	env := "DATABASE_DRIVER=sqlite\nDATABASE_NAME=foods.db\nLOCAL_DRIVER=redis\nLOCAL_REDIS_HOST=cache\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))

	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "")
	t.Setenv("DATABASE_NAME", "")
	t.Setenv("LOCAL_DRIVER", "")
	t.Setenv("LOCAL_REDIS_HOST", "")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "foods.db", cfg.Database.Name)
	assert.Equal(t, "redis", cfg.Local.Driver)
	assert.Equal(t, "cache", cfg.Local.Redis.Host)
}
