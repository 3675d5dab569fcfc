package shop

import (
	"context"

	"go.uber.org/zap"

	"github.com/oryizon/storefront/internal/domain/catalog"
)

// CartService manages the session-scoped shopping cart. Carts are value
// snapshots: every mutation loads, transforms, and stores a fresh copy,
// so concurrent requests on different sessions never interfere.
type CartService struct {
	carts       CartStore
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewCartService creates a new CartService
func NewCartService(carts CartStore, productRepo catalog.ProductRepository, logger *zap.Logger) *CartService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartService{
		carts:       carts,
		productRepo: productRepo,
		logger:      logger,
	}
}

// Cart returns the current cart for a session
func (s *CartService) Cart(ctx context.Context, sessionID string) (CartResponse, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return CartResponse{}, err
	}
	return ToCartResponse(cart), nil
}

// AddItem adds one unit of a product to the session cart, snapshotting
// the product's current effective price into the line.
func (s *CartService) AddItem(ctx context.Context, sessionID, productID string) (CartResponse, error) {
	product, err := s.findProduct(ctx, productID)
	if err != nil {
		return CartResponse{}, err
	}

	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return CartResponse{}, err
	}

	updated := cart.Add(*product)
	if err := s.carts.Put(ctx, sessionID, updated); err != nil {
		return CartResponse{}, err
	}

	return ToCartResponse(updated), nil
}

// UpdateQuantity adjusts a line's quantity by delta, clamping at zero.
// A line that reaches zero is removed; an unknown product is a no-op.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, productID string, delta int) (CartResponse, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return CartResponse{}, err
	}

	updated := cart.UpdateQuantity(productID, delta)
	if err := s.carts.Put(ctx, sessionID, updated); err != nil {
		return CartResponse{}, err
	}

	return ToCartResponse(updated), nil
}

// RemoveItem drops a product's line from the session cart entirely
func (s *CartService) RemoveItem(ctx context.Context, sessionID, productID string) (CartResponse, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return CartResponse{}, err
	}

	updated := cart.Remove(productID)
	if err := s.carts.Put(ctx, sessionID, updated); err != nil {
		return CartResponse{}, err
	}

	return ToCartResponse(updated), nil
}

// Clear empties the session cart
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	return s.carts.Delete(ctx, sessionID)
}

// findProduct resolves a product from the repository, falling back to
// the seed catalog so the cart works even when the database is down.
func (s *CartService) findProduct(ctx context.Context, productID string) (*catalog.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err == nil {
		return product, nil
	}

	for _, seeded := range catalog.SeedProducts() {
		if seeded.ID == productID {
			s.logger.Warn("product lookup failed, using seed record",
				zap.String("product_id", productID),
				zap.Error(err),
			)
			return &seeded, nil
		}
	}

	return nil, err
}
