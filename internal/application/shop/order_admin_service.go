package shop

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/oryizon/storefront/internal/domain/shared"
	"github.com/oryizon/storefront/internal/domain/shop"
)

// OrderAdminService serves the admin side of order management: the order
// ledger, status mutation, and the unsynced-order queue.
type OrderAdminService struct {
	orderRepo shop.OrderRepository
	journal   OrderJournal
	logger    *zap.Logger
}

// NewOrderAdminService creates a new OrderAdminService
func NewOrderAdminService(orderRepo shop.OrderRepository, journal OrderJournal, logger *zap.Logger) *OrderAdminService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderAdminService{
		orderRepo: orderRepo,
		journal:   journal,
		logger:    logger,
	}
}

// ListOrders returns orders newest first
func (s *OrderAdminService) ListOrders(ctx context.Context, page, pageSize int) (shared.Paginated[OrderResponse], error) {
	filter := shared.DefaultFilter()
	if page > 0 {
		filter.Page = page
	}
	if pageSize > 0 {
		filter.PageSize = pageSize
	}
	filter.OrderBy = "created_at"
	filter.OrderDir = "desc"

	orders, err := s.orderRepo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[OrderResponse]{}, err
	}

	total, err := s.orderRepo.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[OrderResponse]{}, err
	}

	return shared.NewPaginated(ToOrderResponses(orders), total, filter.Page, filter.PageSize), nil
}

// GetOrder returns a single order by ID
func (s *OrderAdminService) GetOrder(ctx context.Context, id string) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToOrderResponse(order)
	return &response, nil
}

// SetStatus moves an order to a new status. The remote store is updated
// first; the journal copy follows best-effort so tracking fallbacks stay
// consistent.
func (s *OrderAdminService) SetStatus(ctx context.Context, id, rawStatus string) (*OrderResponse, error) {
	status, err := shop.ParseOrderStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	if err := s.journal.UpdateStatus(ctx, id, status); err != nil && !errors.Is(err, shared.ErrNotFound) {
		s.logger.Warn("journal status update failed",
			zap.String("order_id", id),
			zap.String("status", status.String()),
			zap.Error(err),
		)
	}

	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("order status updated",
		zap.String("order_id", id),
		zap.String("status", status.String()),
	)

	response := ToOrderResponse(order)
	return &response, nil
}

// UnsyncedOrders lists journaled orders that never reached the remote
// store, oldest first. This is the operator's view into what a remote
// outage left behind.
func (s *OrderAdminService) UnsyncedOrders(ctx context.Context) ([]OrderResponse, error) {
	pending, err := s.journal.Pending(ctx)
	if err != nil {
		return nil, err
	}
	return ToOrderResponses(pending), nil
}
