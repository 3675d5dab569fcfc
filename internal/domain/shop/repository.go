package shop

import (
	"context"

	"github.com/oryizon/storefront/internal/domain/shared"
)

// OrderRepository defines the persistence interface for orders
type OrderRepository interface {
	FindByID(ctx context.Context, id string) (*Order, error)
	// FindByReference resolves a customer-facing tracking reference,
	// matching either the order ID or the order number.
	FindByReference(ctx context.Context, ref string) (*Order, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)
	Save(ctx context.Context, order *Order) error
	UpdateStatus(ctx context.Context, id string, status OrderStatus) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// MessageRepository defines the persistence interface for contact messages
type MessageRepository interface {
	FindAll(ctx context.Context, filter shared.Filter) ([]ContactMessage, error)
	Save(ctx context.Context, message *ContactMessage) error
}
