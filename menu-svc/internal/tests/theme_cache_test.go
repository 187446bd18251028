package tests

import (
	"context"
	"testing"
	"time"

	"menu-admin/menu-svc/internal/domain"
	"menu-admin/menu-svc/internal/service"
	"menu-admin/menu-svc/internal/storage"
	"menu-admin/menu-svc/internal/validation"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisThemeCache(t *testing.T) (*miniredis.Miniredis, *storage.RedisThemeCache) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return server, storage.NewRedisThemeCache(client, time.Minute)
}

func TestRedisThemeCache_StoreAndRead(t *testing.T) {
	server, cache := newRedisThemeCache(t)
	ctx := context.Background()

	generation, err := cache.Generation(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), generation)

	missing, err := cache.ActiveTheme(ctx, generation)
	require.NoError(t, err)
	assert.Nil(t, missing)

	updated := time.Date(2024, 5, 1, 10, 0, 0, 123000, time.UTC)
	theme := &domain.MenuTheme{
		ID: 3, RestaurantName: "Bistro", ButtonShape: domain.ButtonPill, BackgroundType: domain.BackgroundColor,
		BorderRadius: 12, IsActive: true, CreatedAt: updated, UpdatedAt: updated,
	}
	require.NoError(t, cache.StoreActiveTheme(ctx, generation, theme))

	cached, err := cache.ActiveTheme(ctx, generation)
	require.NoError(t, err)
	assert.Equal(t, theme.ID, cached.ID)
	assert.Equal(t, theme.ButtonShape, cached.ButtonShape)
	assert.True(t, theme.UpdatedAt.Equal(cached.UpdatedAt))
	assert.Equal(t, time.Minute, server.TTL(cache.ActiveThemeKey(generation)))
}

func TestRedisThemeCache_InvalidateMovesGeneration(t *testing.T) {
	_, cache := newRedisThemeCache(t)
	ctx := context.Background()

	require.NoError(t, cache.StoreActiveTheme(ctx, 0, &domain.MenuTheme{ID: 1, IsActive: true}))
	require.NoError(t, cache.Invalidate(ctx))

	generation, err := cache.Generation(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), generation)

	cached, err := cache.ActiveTheme(ctx, generation)
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestRedisThemeCache_Unavailable(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr(), MaxRetries: -1})
	t.Cleanup(func() { client.Close() })
	server.Close()

	_, err := storage.NewRedisThemeCache(client, time.Minute).Generation(context.Background())
	assert.Error(t, err)
}

// Two services sharing one Redis: an activation through one is visible
// through the other on the next read.
func TestRedisThemeCache_SharedAcrossServices(t *testing.T) {
	_, cache := newRedisThemeCache(t)
	store := newMemStore()
	v := validation.New()
	a := service.NewMenuThemeService(store, cache, v, nil)
	b := service.NewMenuThemeService(store, cache, v, nil)
	ctx := context.Background()

	first, err := a.Create(ctx, validTheme())
	require.NoError(t, err)

	active, err := b.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, active.ID)

	in := validTheme()
	in.IsActive = boolPtr(false)
	second, err := b.Create(ctx, in)
	require.NoError(t, err)

	_, err = a.Update(ctx, domain.UpdateMenuThemeInput{ID: second.ID, IsActive: boolPtr(true)})
	require.NoError(t, err)

	active, err = b.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)
}
