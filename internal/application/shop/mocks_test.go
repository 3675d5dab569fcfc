package shop

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/oryizon/storefront/internal/domain/catalog"
	"github.com/oryizon/storefront/internal/domain/shared"
	"github.com/oryizon/storefront/internal/domain/shop"
)

// MockOrderRepository is a mock implementation of shop.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id string) (*shop.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByReference(ctx context.Context, ref string) (*shop.Order, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]shop.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shop.Order), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *shop.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id string, status shop.OrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockMessageRepository is a mock implementation of shop.MessageRepository
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) FindAll(ctx context.Context, filter shared.Filter) ([]shop.ContactMessage, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shop.ContactMessage), args.Error(1)
}

func (m *MockMessageRepository) Save(ctx context.Context, message *shop.ContactMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id string) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockJournal is a mock implementation of OrderJournal
type MockJournal struct {
	mock.Mock
}

func (m *MockJournal) Append(ctx context.Context, order *shop.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockJournal) FindByReference(ctx context.Context, ref string) (*shop.Order, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Order), args.Error(1)
}

func (m *MockJournal) Pending(ctx context.Context) ([]shop.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shop.Order), args.Error(1)
}

func (m *MockJournal) MarkSynced(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockJournal) UpdateStatus(ctx context.Context, orderID string, status shop.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

// memoryCartStore is a minimal in-memory CartStore for tests
type memoryCartStore struct {
	carts map[string]shop.Cart
}

func newMemoryCartStore() *memoryCartStore {
	return &memoryCartStore{carts: make(map[string]shop.Cart)}
}

func (s *memoryCartStore) Get(ctx context.Context, sessionID string) (shop.Cart, error) {
	if cart, ok := s.carts[sessionID]; ok {
		return cart, nil
	}
	return shop.NewCart(), nil
}

func (s *memoryCartStore) Put(ctx context.Context, sessionID string, cart shop.Cart) error {
	s.carts[sessionID] = cart
	return nil
}

func (s *memoryCartStore) Delete(ctx context.Context, sessionID string) error {
	delete(s.carts, sessionID)
	return nil
}
