package cache

import (
	"context"
	"encoding/json"
	"time"

	applisting "github.com/imovelliz/backend/internal/application/listing"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const homeCacheKey = "home:properties"

// RedisHomeCache caches the home projection in Redis. This is suitable
// for distributed deployments where multiple instances must see the same
// projection and invalidations.
type RedisHomeCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisHomeCache creates a new Redis-backed home cache
func NewRedisHomeCache(addr, password string, db int, ttl time.Duration, logger *zap.Logger) (*RedisHomeCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return NewRedisHomeCacheWithClient(client, ttl, logger), nil
}

// NewRedisHomeCacheWithClient creates a cache with an existing Redis client.
// Useful for testing or when sharing a client across components.
func NewRedisHomeCacheWithClient(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisHomeCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisHomeCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Get returns the cached projection and whether it was present
func (c *RedisHomeCache) Get(ctx context.Context) ([]applisting.HomePropertyResponse, bool) {
	payload, err := c.client.Get(ctx, homeCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("Home cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var properties []applisting.HomePropertyResponse
	if err := json.Unmarshal(payload, &properties); err != nil {
		c.logger.Warn("Home cache payload corrupted, dropping it", zap.Error(err))
		c.Invalidate(ctx)
		return nil, false
	}

	return properties, true
}

// Set stores the projection until the next invalidation or TTL expiry
func (c *RedisHomeCache) Set(ctx context.Context, properties []applisting.HomePropertyResponse) {
	payload, err := json.Marshal(properties)
	if err != nil {
		c.logger.Warn("Failed to encode home projection", zap.Error(err))
		return
	}

	if err := c.client.Set(ctx, homeCacheKey, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("Home cache write failed", zap.Error(err))
		return
	}

	c.logger.Debug("Cached home projection", zap.Int("properties", len(properties)))
}

// Invalidate drops the cached projection
func (c *RedisHomeCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, homeCacheKey).Err(); err != nil {
		c.logger.Warn("Home cache invalidation failed", zap.Error(err))
	}
}

// Close closes the Redis client
func (c *RedisHomeCache) Close() error {
	return c.client.Close()
}

// Ensure RedisHomeCache implements HomeCache
var _ applisting.HomeCache = (*RedisHomeCache)(nil)
