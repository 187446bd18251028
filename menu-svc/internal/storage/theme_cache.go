package storage

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"menu-admin/menu-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	activeThemeGenerationKey = "menu:theme:active:gen"
	activeThemeKeyPrefix     = "menu:theme:active:"
)

// RedisThemeCache stores the active theme under the current generation.
// Writers bump the generation after they commit, so a reader that loaded an
// older theme can only fill a key that is no longer read.
type RedisThemeCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisThemeCache(client *redis.Client, ttl time.Duration) *RedisThemeCache {
	return &RedisThemeCache{Client: client, TTL: ttl}
}

func (c *RedisThemeCache) ActiveThemeKey(generation int64) string {
	return activeThemeKeyPrefix + strconv.FormatInt(generation, 10)
}

func (c *RedisThemeCache) Generation(ctx context.Context) (int64, error) {
	generation, err := c.Client.Get(ctx, activeThemeGenerationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return generation, err
}

// ActiveTheme returns nil without an error on a cache miss.
func (c *RedisThemeCache) ActiveTheme(ctx context.Context, generation int64) (*domain.MenuTheme, error) {
	data, err := c.Client.Get(ctx, c.ActiveThemeKey(generation)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var theme domain.MenuTheme
	if err := json.Unmarshal(data, &theme); err != nil {
		return nil, err
	}
	return &theme, nil
}

func (c *RedisThemeCache) StoreActiveTheme(ctx context.Context, generation int64, theme *domain.MenuTheme) error {
	data, err := json.Marshal(theme)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, c.ActiveThemeKey(generation), data, c.TTL).Err()
}

func (c *RedisThemeCache) Invalidate(ctx context.Context) error {
	return c.Client.Incr(ctx, activeThemeGenerationKey).Err()
}
