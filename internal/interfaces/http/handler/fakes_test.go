package handler

import (
	"context"
	"sync"

	"github.com/oryizon/storefront/internal/domain/catalog"
	"github.com/oryizon/storefront/internal/domain/shared"
	"github.com/oryizon/storefront/internal/domain/shop"
)

// fakeCartStore is a map-backed cart store for handler tests
type fakeCartStore struct {
	mu    sync.Mutex
	carts map[string]shop.Cart
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{carts: make(map[string]shop.Cart)}
}

func (s *fakeCartStore) Get(_ context.Context, sessionID string) (shop.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cart, ok := s.carts[sessionID]; ok {
		return cart, nil
	}
	return shop.NewCart(), nil
}

func (s *fakeCartStore) Put(_ context.Context, sessionID string, cart shop.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[sessionID] = cart
	return nil
}

func (s *fakeCartStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}

// fakeProductRepo serves the seed catalog
type fakeProductRepo struct{}

func (r *fakeProductRepo) FindByID(_ context.Context, id string) (*catalog.Product, error) {
	for _, p := range catalog.SeedProducts() {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeProductRepo) FindAll(_ context.Context, _ shared.Filter) ([]catalog.Product, error) {
	return catalog.SeedProducts(), nil
}

func (r *fakeProductRepo) Save(_ context.Context, _ *catalog.Product) error { return nil }
func (r *fakeProductRepo) Delete(_ context.Context, _ string) error         { return nil }
func (r *fakeProductRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(catalog.SeedProducts())), nil
}

// fakeOrderRepo is a map-backed order store
type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]shop.Order
	down   bool
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]shop.Order)}
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id string) (*shop.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.down {
		return nil, shared.ErrRemoteUnavailable
	}
	if order, ok := r.orders[id]; ok {
		return &order, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeOrderRepo) FindByReference(_ context.Context, ref string) (*shop.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.down {
		return nil, shared.ErrRemoteUnavailable
	}
	for _, order := range r.orders {
		if order.MatchesReference(ref) {
			o := order
			return &o, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeOrderRepo) FindAll(_ context.Context, _ shared.Filter) ([]shop.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	orders := make([]shop.Order, 0, len(r.orders))
	for _, o := range r.orders {
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *fakeOrderRepo) Save(_ context.Context, order *shop.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.down {
		return shared.ErrRemoteUnavailable
	}
	r.orders[order.ID] = *order
	return nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id string, status shop.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return shared.ErrNotFound
	}
	order.Status = status
	r.orders[id] = order
	return nil
}

func (r *fakeOrderRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.orders)), nil
}

// fakeJournal records orders in memory
type fakeJournal struct {
	mu      sync.Mutex
	entries []shop.Order
	synced  map[string]bool
}

func newFakeJournal() *fakeJournal {
	return &fakeJournal{synced: make(map[string]bool)}
}

func (j *fakeJournal) Append(_ context.Context, order *shop.Order) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, *order)
	return nil
}

func (j *fakeJournal) FindByReference(_ context.Context, ref string) (*shop.Order, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	for _, order := range j.entries {
		if order.MatchesReference(ref) {
			o := order
			return &o, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (j *fakeJournal) Pending(_ context.Context) ([]shop.Order, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	var pending []shop.Order
	for _, order := range j.entries {
		if !j.synced[order.ID] {
			pending = append(pending, order)
		}
	}
	return pending, nil
}

func (j *fakeJournal) MarkSynced(_ context.Context, orderID string) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.synced[orderID] = true
	return nil
}

func (j *fakeJournal) UpdateStatus(_ context.Context, orderID string, status shop.OrderStatus) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	for i := range j.entries {
		if j.entries[i].ID == orderID {
			j.entries[i].Status = status
			return nil
		}
	}
	return shared.ErrNotFound
}
