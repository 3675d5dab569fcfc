package shop

import (
	"context"

	"go.uber.org/zap"

	"github.com/oryizon/storefront/internal/domain/shared"
	"github.com/oryizon/storefront/internal/domain/shop"
)

// MessageService handles public contact-form submissions and the admin
// review listing.
type MessageService struct {
	messageRepo shop.MessageRepository
	logger      *zap.Logger
}

// NewMessageService creates a new MessageService
func NewMessageService(messageRepo shop.MessageRepository, logger *zap.Logger) *MessageService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MessageService{
		messageRepo: messageRepo,
		logger:      logger,
	}
}

// Submit stores a new contact message
func (s *MessageService) Submit(ctx context.Context, req SubmitMessageRequest) (*MessageResponse, error) {
	message, err := shop.NewContactMessage(req.Name, req.Email, req.Message)
	if err != nil {
		return nil, err
	}

	if err := s.messageRepo.Save(ctx, message); err != nil {
		return nil, err
	}

	s.logger.Info("contact message received", zap.String("message_id", message.ID))

	response := ToMessageResponse(message)
	return &response, nil
}

// List returns messages newest first
func (s *MessageService) List(ctx context.Context) ([]MessageResponse, error) {
	filter := shared.DefaultFilter()
	filter.PageSize = 200
	filter.OrderBy = "created_at"
	filter.OrderDir = "desc"

	messages, err := s.messageRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	return ToMessageResponses(messages), nil
}
