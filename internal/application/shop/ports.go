package shop

import (
	"context"

	"github.com/oryizon/storefront/internal/domain/shop"
)

// CartStore holds session-scoped carts. Implementations must return an
// empty cart, not an error, for a session that has no cart yet.
type CartStore interface {
	Get(ctx context.Context, sessionID string) (shop.Cart, error)
	Put(ctx context.Context, sessionID string, cart shop.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// OrderJournal is the local durable record of every order ever accepted.
// Entries are appended before the remote store is touched and are never
// removed, so a checkout survives any remote outage.
type OrderJournal interface {
	Append(ctx context.Context, order *shop.Order) error
	FindByReference(ctx context.Context, ref string) (*shop.Order, error)
	// Pending lists orders that were journaled but never confirmed in
	// the remote store, oldest first.
	Pending(ctx context.Context) ([]shop.Order, error)
	MarkSynced(ctx context.Context, orderID string) error
	// UpdateStatus mirrors an administrative status change onto the
	// journaled copy so tracking fallbacks serve the corrected status.
	UpdateStatus(ctx context.Context, orderID string, status shop.OrderStatus) error
}
