// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"tripwise/config"
)

// CacheClient is the Redis client used for caching upstream responses.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client. Unlike persistence, the cache
// is an optimization: a missing Redis is logged and the service runs without it.
func InitCache() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Printf("Redis cache unavailable, continuing without cache: %v", err)
		return
	}
	CacheClient = client
}

// GetCacheClient returns the cache client, or nil when caching is disabled
// or Redis is unreachable.
func GetCacheClient() *redis.Client {
	return CacheClient
}
