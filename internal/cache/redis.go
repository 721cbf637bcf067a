package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tftladder/ingestion/internal/metrics"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RedisCache is a thin wrapper used to carry small bits of state between
// cycles, such as the last ingested static-data version. The worker runs
// fine without it; a nil receiver degrades every operation to a miss.
type RedisCache struct {
	client *redis.Client
}

// Config holds Redis connection settings
type Config struct {
	Addr     string
	Password string
	DB       int
}

// ErrCacheMiss means the key was absent
var ErrCacheMiss = errors.New("cache miss")

// NewRedisCache connects to Redis and verifies the connection
func NewRedisCache(ctx context.Context, cfg Config) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	log.Info().Str("addr", cfg.Addr).Msg("Redis cache connected")
	return &RedisCache{client: client}, nil
}

// Get retrieves a string value; ErrCacheMiss when absent or cache disabled
func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	if c == nil || c.client == nil {
		metrics.CacheMissesTotal.Inc()
		return "", ErrCacheMiss
	}

	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		metrics.CacheMissesTotal.Inc()
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", fmt.Errorf("failed to get %s: %w", key, err)
	}

	metrics.CacheHitsTotal.Inc()
	return val, nil
}

// Set stores a string value with a TTL; no-op when cache disabled
func (c *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}

	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// Close closes the underlying connection
func (c *RedisCache) Close() {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Close(); err != nil {
		log.Warn().Err(err).Msg("Failed to close redis client")
	}
}
