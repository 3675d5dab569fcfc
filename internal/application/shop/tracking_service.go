package shop

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/oryizon/storefront/internal/domain/shared"
	"github.com/oryizon/storefront/internal/domain/shop"
)

// TrackingService resolves customer-facing tracking references.
// The remote store is authoritative; the local journal answers when the
// remote is unreachable or has never seen the order.
type TrackingService struct {
	orderRepo shop.OrderRepository
	journal   OrderJournal
	logger    *zap.Logger
}

// NewTrackingService creates a new TrackingService
func NewTrackingService(orderRepo shop.OrderRepository, journal OrderJournal, logger *zap.Logger) *TrackingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TrackingService{
		orderRepo: orderRepo,
		journal:   journal,
		logger:    logger,
	}
}

// FindOrder looks up an order by ID or order number, consulting the
// remote store first and the local journal second.
func (s *TrackingService) FindOrder(ctx context.Context, ref string) (*OrderResponse, error) {
	if ref == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Tracking reference is required")
	}

	order, remoteErr := s.orderRepo.FindByReference(ctx, ref)
	if remoteErr == nil {
		response := ToOrderResponse(order)
		return &response, nil
	}

	if !errors.Is(remoteErr, shared.ErrNotFound) {
		s.logger.Warn("remote tracking lookup failed, falling back to journal",
			zap.String("ref", ref),
			zap.Error(remoteErr),
		)
	}

	journaled, journalErr := s.journal.FindByReference(ctx, ref)
	if journalErr == nil {
		response := ToOrderResponse(journaled)
		return &response, nil
	}

	return nil, shared.ErrNotFound
}
