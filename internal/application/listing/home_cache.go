package listing

import (
	"context"

	"github.com/imovelliz/backend/internal/domain/listing"
	"github.com/imovelliz/backend/internal/domain/shared"
)

// HomeCache caches the public home projection. Implementations live in
// the infrastructure layer (Redis, in-memory fallback). Cache failures are
// never surfaced to callers; the repository is the source of truth.
type HomeCache interface {
	// Get returns the cached projection and whether it was present
	Get(ctx context.Context) ([]HomePropertyResponse, bool)

	// Set stores the projection until the next invalidation or TTL expiry
	Set(ctx context.Context, properties []HomePropertyResponse)

	// Invalidate drops the cached projection
	Invalidate(ctx context.Context)
}

// HomeCacheInvalidator drops the home cache whenever a property changes.
// It subscribes to the property domain events on the in-process event bus.
type HomeCacheInvalidator struct {
	cache HomeCache
}

// NewHomeCacheInvalidator creates a new HomeCacheInvalidator
func NewHomeCacheInvalidator(cache HomeCache) *HomeCacheInvalidator {
	return &HomeCacheInvalidator{cache: cache}
}

// Handle invalidates the cache for any property event
func (h *HomeCacheInvalidator) Handle(ctx context.Context, event shared.DomainEvent) error {
	h.cache.Invalidate(ctx)
	return nil
}

// EventTypes returns the property lifecycle events this handler reacts to
func (h *HomeCacheInvalidator) EventTypes() []string {
	return []string{
		listing.EventTypePropertyCreated,
		listing.EventTypePropertyUpdated,
		listing.EventTypePropertyDeleted,
	}
}
