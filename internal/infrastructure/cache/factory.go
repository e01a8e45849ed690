package cache

import (
	"fmt"

	applisting "github.com/imovelliz/backend/internal/application/listing"
	infraconfig "github.com/imovelliz/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// NewHomeCache builds the home cache selected by configuration
func NewHomeCache(cfg *infraconfig.Config, logger *zap.Logger) (applisting.HomeCache, error) {
	switch cfg.Cache.Driver {
	case "memory":
		return NewInMemoryHomeCache(cfg.Cache.HomeTTL, logger), nil
	case "redis":
		return NewRedisHomeCache(cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB, cfg.Cache.HomeTTL, logger)
	default:
		return nil, fmt.Errorf("unknown cache driver: %s", cfg.Cache.Driver)
	}
}
