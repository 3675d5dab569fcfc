package cartstore

import (
	"go.uber.org/zap"

	appshop "github.com/oryizon/storefront/internal/application/shop"
	"github.com/oryizon/storefront/internal/infrastructure/config"
)

// New creates the cart store the configuration asks for. When Redis is
// enabled but unreachable, it falls back to the in-memory store so the
// storefront keeps selling.
func New(cfg config.RedisConfig, logger *zap.Logger) appshop.CartStore {
	if logger == nil {
		logger = zap.NewNop()
	}

	if !cfg.Enabled {
		logger.Info("using in-memory cart store")
		return NewMemoryCartStore(cfg.CartTTL)
	}

	store, err := NewRedisCartStore(cfg)
	if err != nil {
		logger.Warn("redis unavailable, falling back to in-memory cart store",
			zap.String("addr", cfg.Addr()),
			zap.Error(err),
		)
		return NewMemoryCartStore(cfg.CartTTL)
	}

	logger.Info("using redis cart store", zap.String("addr", cfg.Addr()))
	return store
}
