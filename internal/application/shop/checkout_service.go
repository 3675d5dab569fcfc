package shop

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/oryizon/storefront/internal/domain/shop"
)

// RemoteSyncPendingWarning is returned with a successful checkout when
// the order reached the local journal but not the remote store.
const RemoteSyncPendingWarning = "Order recorded locally; remote sync pending"

// CheckoutService turns a session cart into a placed order.
//
// Placement is journal-first: the order is appended to the local durable
// journal before the remote store is touched, and the journal entry is
// never rolled back. A remote failure therefore degrades to a warning,
// not an error, and the customer always receives their order ID.
type CheckoutService struct {
	journal   OrderJournal
	orderRepo shop.OrderRepository
	carts     CartStore
	logger    *zap.Logger
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(journal OrderJournal, orderRepo shop.OrderRepository, carts CartStore, logger *zap.Logger) *CheckoutService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckoutService{
		journal:   journal,
		orderRepo: orderRepo,
		carts:     carts,
		logger:    logger,
	}
}

// SubmitOrder places an order from the session cart. The cart is cleared
// on success.
func (s *CheckoutService) SubmitOrder(ctx context.Context, sessionID string, req CheckoutRequest) (*CheckoutResponse, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session cart: %w", err)
	}

	order, err := shop.NewOrder(cart, shop.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: shippingAddressFromRequest(req),
	})
	if err != nil {
		return nil, err
	}

	// Local durability comes first. If even the journal cannot accept
	// the order, the checkout genuinely failed.
	if err := s.journal.Append(ctx, order); err != nil {
		return nil, fmt.Errorf("journal order: %w", err)
	}

	response := &CheckoutResponse{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Status:      order.Status.String(),
		Total:       order.TotalAmount,
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		s.logger.Warn("remote order insert failed, order remains journaled",
			zap.String("order_id", order.ID),
			zap.Error(err),
		)
		response.Warning = RemoteSyncPendingWarning
	} else if err := s.journal.MarkSynced(ctx, order.ID); err != nil {
		// The order is safe in both stores; a stale sync flag only
		// means it reappears in the unsynced listing.
		s.logger.Warn("failed to mark journal entry synced",
			zap.String("order_id", order.ID),
			zap.Error(err),
		)
	}

	if err := s.carts.Delete(ctx, sessionID); err != nil {
		s.logger.Warn("failed to clear session cart after checkout",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
	}

	s.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.String("order_number", order.OrderNumber),
		zap.String("total", order.TotalAmount.String()),
		zap.Bool("remote_synced", response.Warning == ""),
	)

	return response, nil
}
