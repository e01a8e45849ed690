package cache

import (
	"context"
	"sync"
	"time"

	applisting "github.com/imovelliz/backend/internal/application/listing"
	"go.uber.org/zap"
)

// InMemoryHomeCache caches the home projection in process memory.
// Suitable for single-instance deployments; distributed deployments
// should use RedisHomeCache so invalidations reach every instance.
type InMemoryHomeCache struct {
	mu         sync.RWMutex
	properties []applisting.HomePropertyResponse
	cachedAt   time.Time
	populated  bool

	ttl    time.Duration
	logger *zap.Logger
}

// NewInMemoryHomeCache creates a new in-memory home cache with the given TTL
func NewInMemoryHomeCache(ttl time.Duration, logger *zap.Logger) *InMemoryHomeCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InMemoryHomeCache{
		ttl:    ttl,
		logger: logger,
	}
}

// Get returns the cached projection and whether it was present
func (c *InMemoryHomeCache) Get(ctx context.Context) ([]applisting.HomePropertyResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.populated {
		return nil, false
	}
	if c.ttl > 0 && time.Since(c.cachedAt) > c.ttl {
		return nil, false
	}

	// Copy so callers cannot mutate the cached slice
	out := make([]applisting.HomePropertyResponse, len(c.properties))
	copy(out, c.properties)
	return out, true
}

// Set stores the projection until the next invalidation or TTL expiry
func (c *InMemoryHomeCache) Set(ctx context.Context, properties []applisting.HomePropertyResponse) {
	stored := make([]applisting.HomePropertyResponse, len(properties))
	copy(stored, properties)

	c.mu.Lock()
	c.properties = stored
	c.cachedAt = time.Now()
	c.populated = true
	c.mu.Unlock()

	c.logger.Debug("Cached home projection", zap.Int("properties", len(properties)))
}

// Invalidate drops the cached projection
func (c *InMemoryHomeCache) Invalidate(ctx context.Context) {
	c.mu.Lock()
	c.properties = nil
	c.populated = false
	c.mu.Unlock()

	c.logger.Debug("Invalidated home projection cache")
}

// Ensure InMemoryHomeCache implements HomeCache
var _ applisting.HomeCache = (*InMemoryHomeCache)(nil)
