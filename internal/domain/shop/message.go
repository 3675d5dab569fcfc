package shop

import "github.com/oryizon/storefront/internal/domain/shared"

// ContactMessage is a note submitted through the public contact form.
// Messages are write-once; admins review them newest-first.
type ContactMessage struct {
	shared.BaseEntity
	Name    string `gorm:"type:varchar(200);not null"`
	Email   string `gorm:"type:varchar(200);not null"`
	Message string `gorm:"type:text;not null"`
}

// TableName returns the table name for GORM
func (ContactMessage) TableName() string {
	return "contact_messages"
}

// NewContactMessage creates a new contact message
func NewContactMessage(name, email, message string) (*ContactMessage, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_MESSAGE", "Name is required")
	}
	if email == "" {
		return nil, shared.NewDomainError("INVALID_MESSAGE", "Email is required")
	}
	if message == "" {
		return nil, shared.NewDomainError("INVALID_MESSAGE", "Message cannot be empty")
	}

	return &ContactMessage{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Email:      email,
		Message:    message,
	}, nil
}
