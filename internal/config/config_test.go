package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/sigo")
	t.Setenv("BACKEND_URL", "http://backend.local")
	t.Setenv("API_KEYS", " key1 , key2")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, []string{"key1", "key2"}, cfg.APIKeys)
	assert.Equal(t, time.Duration(0), cfg.IdentityCacheTTL)
	assert.Equal(t, "nominatim", cfg.MapsProvider)
	assert.Equal(t, "local", cfg.ShareProvider)
	assert.Equal(t, 5, cfg.WebhookMaxRetries)
	assert.Equal(t, 24*time.Hour, cfg.ShareURLTTL)
}

func TestLoadConfig_RequiresDatabase(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("BACKEND_URL", "http://backend.local")

	_, err := LoadConfig()
	require.Error(t, err)

	cfg, err := LoadCLIConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://backend.local", cfg.BackendURL)
}

func TestLoadConfig_RequiresBackend(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/sigo")
	t.Setenv("BACKEND_URL", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/sigo")
	t.Setenv("BACKEND_URL", "http://backend.local")
	t.Setenv("IDENTITY_CACHE_TTL", "30s")
	t.Setenv("PHOTO_MAX_DIMENSION", "800")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.IdentityCacheTTL)
	assert.Equal(t, 800, cfg.PhotoMaxDimension)
	assert.Equal(t, 0, cfg.RedisDB)

	t.Setenv("PHOTO_JPEG_QUALITY", "0")
	_, err = LoadConfig()
	assert.Error(t, err)
}
