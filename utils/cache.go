// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"medibook/config"

	"github.com/go-redis/redis/v8"
)

// ScheduleCacheClient is the dedicated client for schedule caching.
var ScheduleCacheClient *redis.Client

// ScheduleCachePrefix is the prefix used for Redis schedule cache keys.
const ScheduleCachePrefix = "schedule:"

// InitScheduleCache initializes the Redis client for schedule caching
// (using DB from AppConfig for the schedule cache).
func InitScheduleCache() {
	ScheduleCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisScheduleDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := ScheduleCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Schedule Cache): %v", err)
	}
}

// GetScheduleCacheClient returns the Redis client for schedule caching.
func GetScheduleCacheClient() *redis.Client {
	if ScheduleCacheClient == nil {
		InitScheduleCache()
	}
	return ScheduleCacheClient
}

// ScheduleCacheTTL returns the configured TTL for schedule cache entries.
func ScheduleCacheTTL() time.Duration {
	ttl := config.AppConfig.ScheduleCacheTTL
	if ttl <= 0 {
		ttl = 300
	}
	return time.Duration(ttl) * time.Second
}
