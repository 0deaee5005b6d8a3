package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/sigo_companion/internal/models"
	"github.com/shenikar/sigo_companion/internal/service"
	"github.com/shenikar/sigo_companion/pkg/postgres"
	redisclient "github.com/shenikar/sigo_companion/pkg/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Интеграционные тесты запускаются только при заданных TEST_DATABASE_URL / TEST_REDIS_ADDR.
// Схема должна быть накатана миграциями из /migrations.

func TestDraftRepository_Integration(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}
	ctx := context.Background()
	pool, err := postgres.NewPostgresDB(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	repo := NewDraftRepository(pool)
	draft := &models.Draft{ID: uuid.New(), Address: "Rua A, 10"}
	require.NoError(t, repo.Create(ctx, draft))
	assert.False(t, draft.CreatedAt.IsZero())

	draft.Coordinates = &models.Coordinates{Latitude: -8.05, Longitude: -34.9}
	draft.Photos = []models.Photo{{URI: "file:///1.jpg", Base64Data: "AAAA", MimeType: "image/jpeg"}}
	require.NoError(t, repo.Update(ctx, draft))

	got, err := repo.GetByID(ctx, draft.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Coordinates)
	assert.InDelta(t, -8.05, got.Coordinates.Latitude, 1e-9)
	assert.Equal(t, draft.Photos, got.Photos)

	require.NoError(t, repo.Delete(ctx, draft.ID))
	_, err = repo.GetByID(ctx, draft.ID)
	assert.ErrorIs(t, err, service.ErrDraftNotFound)
}

func TestRedisStores_Integration(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR is not set")
	}
	ctx := context.Background()
	rdb, err := redisclient.NewRedisClient(ctx, redisclient.Options{Addr: addr, DB: 15})
	require.NoError(t, err)
	defer rdb.Close()

	stats := NewStatsStore(rdb)
	require.NoError(t, stats.ResetActive(ctx, 1))
	n, err := stats.AddActive(ctx, -1)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	n, err = stats.AddActive(ctx, -1)
	require.NoError(t, err)
	assert.Equal(t, 0, n, "counter never goes below zero")

	cache := NewIdentityCache(rdb)
	user := &models.User{ID: "42", Name: "Ana", Matricula: "2023.1.0045"}
	require.NoError(t, cache.SetIdentity(ctx, user, time.Minute))
	got, err := cache.GetIdentity(ctx)
	require.NoError(t, err)
	assert.Equal(t, user, got)
	require.NoError(t, cache.InvalidateIdentity(ctx))
	got, err = cache.GetIdentity(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStatsStore(t *testing.T) {
	ctx := context.Background()
	stats := NewMemoryStatsStore()

	require.NoError(t, stats.ResetActive(ctx, 2))
	n, err := stats.AddActive(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = stats.AddActive(ctx, -5)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.NoError(t, stats.ResetActive(ctx, -1))
	n, err = stats.ActiveCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
