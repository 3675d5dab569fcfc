package cartstore

import (
	"context"
	"sync"
	"time"

	appshop "github.com/oryizon/storefront/internal/application/shop"
	"github.com/oryizon/storefront/internal/domain/shop"
)

// MemoryCartStore holds session carts in process memory. It is the
// single-instance fallback when Redis is not configured; carts do not
// survive a restart.
type MemoryCartStore struct {
	mu      sync.RWMutex
	carts   map[string]memoryEntry
	ttl     time.Duration
	nowFunc func() time.Time
}

type memoryEntry struct {
	cart      shop.Cart
	expiresAt time.Time
}

// NewMemoryCartStore creates an in-memory cart store. A zero ttl means
// carts never expire.
func NewMemoryCartStore(ttl time.Duration) *MemoryCartStore {
	return &MemoryCartStore{
		carts:   make(map[string]memoryEntry),
		ttl:     ttl,
		nowFunc: time.Now,
	}
}

// Get returns the session's cart, or an empty cart for unknown or
// expired sessions
func (s *MemoryCartStore) Get(ctx context.Context, sessionID string) (shop.Cart, error) {
	s.mu.RLock()
	entry, ok := s.carts[sessionID]
	s.mu.RUnlock()

	if !ok {
		return shop.NewCart(), nil
	}
	if !entry.expiresAt.IsZero() && s.nowFunc().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.carts, sessionID)
		s.mu.Unlock()
		return shop.NewCart(), nil
	}

	return entry.cart, nil
}

// Put stores the session's cart, refreshing its TTL
func (s *MemoryCartStore) Put(ctx context.Context, sessionID string, cart shop.Cart) error {
	var expiresAt time.Time
	if s.ttl > 0 {
		expiresAt = s.nowFunc().Add(s.ttl)
	}

	s.mu.Lock()
	s.carts[sessionID] = memoryEntry{cart: cart, expiresAt: expiresAt}
	s.mu.Unlock()
	return nil
}

// Delete removes the session's cart
func (s *MemoryCartStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.carts, sessionID)
	s.mu.Unlock()
	return nil
}

// Ensure MemoryCartStore implements CartStore
var _ appshop.CartStore = (*MemoryCartStore)(nil)
