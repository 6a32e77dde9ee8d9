// File: services/schedule/cache.go
package schedule

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// redisConfigCache adapts a redis client to the ConfigCache interface.
type redisConfigCache struct {
	client *redis.Client
}

// NewRedisConfigCache wraps the given redis client as a ConfigCache.
func NewRedisConfigCache(client *redis.Client) ConfigCache {
	return &redisConfigCache{client: client}
}

func (c *redisConfigCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func (c *redisConfigCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

func (c *redisConfigCache) Del(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}
