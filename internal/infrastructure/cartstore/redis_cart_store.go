package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	appshop "github.com/oryizon/storefront/internal/application/shop"
	"github.com/oryizon/storefront/internal/domain/shop"
	"github.com/oryizon/storefront/internal/infrastructure/config"
)

const defaultKeyPrefix = "cart:session:"

// RedisCartStore holds session carts in Redis. Suitable for deployments
// with more than one storefront instance, where a shopper's requests may
// land on any of them.
type RedisCartStore struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewRedisCartStore creates a Redis-backed cart store and verifies the
// connection.
func NewRedisCartStore(cfg config.RedisConfig) (*RedisCartStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisCartStore{
		client:    client,
		keyPrefix: defaultKeyPrefix,
		ttl:       cfg.CartTTL,
	}, nil
}

// NewRedisCartStoreWithClient creates a store with an existing Redis
// client. Useful for testing or sharing a client across components.
func NewRedisCartStoreWithClient(client *redis.Client, keyPrefix string, ttl time.Duration) *RedisCartStore {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	return &RedisCartStore{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

// Get returns the session's cart, or an empty cart for unknown sessions
func (s *RedisCartStore) Get(ctx context.Context, sessionID string) (shop.Cart, error) {
	data, err := s.client.Get(ctx, s.keyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return shop.NewCart(), nil
		}
		return shop.Cart{}, fmt.Errorf("load cart: %w", err)
	}

	var cart shop.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return shop.Cart{}, fmt.Errorf("decode cart: %w", err)
	}
	return cart, nil
}

// Put stores the session's cart, refreshing its TTL
func (s *RedisCartStore) Put(ctx context.Context, sessionID string, cart shop.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}

	if err := s.client.Set(ctx, s.keyPrefix+sessionID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("store cart: %w", err)
	}
	return nil
}

// Delete removes the session's cart
func (s *RedisCartStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.keyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}

// Close releases the Redis client
func (s *RedisCartStore) Close() error {
	return s.client.Close()
}

// Ensure RedisCartStore implements CartStore
var _ appshop.CartStore = (*RedisCartStore)(nil)
