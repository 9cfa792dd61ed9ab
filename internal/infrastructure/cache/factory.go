package cache

import (
	"context"
	"fmt"

	"github.com/retailbill/backend/internal/domain/shared"
	"github.com/retailbill/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Backend names accepted by billing.idempotency_backend
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendBolt   = "bolt"
)

// StoreFactory builds the idempotency store selected by configuration
type StoreFactory struct {
	redis         config.RedisConfig
	boltPath      string
	logger        *zap.Logger
	allowFallback bool
	dialRedis     func(ctx context.Context, cfg config.RedisConfig) (shared.IdempotencyStore, error)
}

// StoreFactoryOption configures a StoreFactory
type StoreFactoryOption func(*StoreFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) StoreFactoryOption {
	return func(f *StoreFactory) {
		f.logger = logger
	}
}

// WithBoltPath sets the file used by the bolt backend
func WithBoltPath(path string) StoreFactoryOption {
	return func(f *StoreFactory) {
		f.boltPath = path
	}
}

// WithMemoryFallback controls whether an unreachable Redis falls back to the
// in-memory store. Enabled by default; production disables it.
func WithMemoryFallback(allow bool) StoreFactoryOption {
	return func(f *StoreFactory) {
		f.allowFallback = allow
	}
}

// NewStoreFactory creates a factory for the given Redis settings
func NewStoreFactory(redisCfg config.RedisConfig, opts ...StoreFactoryOption) *StoreFactory {
	f := &StoreFactory{
		redis:         redisCfg,
		boltPath:      "data/idempotency.db",
		logger:        zap.NewNop(),
		allowFallback: true,
		dialRedis: func(ctx context.Context, cfg config.RedisConfig) (shared.IdempotencyStore, error) {
			return NewRedisIdempotencyStore(ctx, cfg)
		},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Create returns the store for backend
func (f *StoreFactory) Create(ctx context.Context, backend string) (shared.IdempotencyStore, error) {
	switch backend {
	case BackendMemory, "":
		f.logger.Info("Using in-memory idempotency store")
		return NewMemoryIdempotencyStore(), nil
	case BackendRedis:
		store, err := f.dialRedis(ctx, f.redis)
		if err == nil {
			f.logger.Info("Using Redis idempotency store", zap.String("addr", f.redis.Addr()))
			return store, nil
		}
		if !f.allowFallback {
			return nil, fmt.Errorf("redis idempotency store unavailable: %w", err)
		}
		f.logger.Warn("Redis unavailable, falling back to in-memory idempotency store; duplicate sales may slip through across instances",
			zap.Error(err),
		)
		return NewMemoryIdempotencyStore(), nil
	case BackendBolt:
		store, err := NewBoltIdempotencyStore(f.boltPath)
		if err != nil {
			return nil, err
		}
		f.logger.Info("Using bolt idempotency store", zap.String("path", f.boltPath))
		return store, nil
	default:
		return nil, fmt.Errorf("unknown idempotency backend %q", backend)
	}
}
