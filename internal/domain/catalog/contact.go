package catalog

import (
	"time"

	"github.com/oryizon/storefront/internal/domain/shared"
)

// ContactInfoID is the fixed identifier of the contact-info singleton row
const ContactInfoID = 1

// ContactInfo is the storefront's public contact details.
// Exactly one row exists; saves are upserts against the fixed ID.
type ContactInfo struct {
	ID        int    `gorm:"primaryKey"`
	Email     string `gorm:"type:varchar(200)"`
	Address   string `gorm:"type:text"`
	Phone     string `gorm:"type:varchar(50)"`
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (ContactInfo) TableName() string {
	return "contact_info"
}

// NewContactInfo creates the contact-info singleton with the fixed ID
func NewContactInfo(email, address, phone string) (*ContactInfo, error) {
	if email == "" {
		return nil, shared.NewDomainError("INVALID_CONTACT", "Contact email cannot be empty")
	}

	return &ContactInfo{
		ID:        ContactInfoID,
		Email:     email,
		Address:   address,
		Phone:     phone,
		UpdatedAt: time.Now(),
	}, nil
}

// Update replaces the contact details
func (c *ContactInfo) Update(email, address, phone string) error {
	if email == "" {
		return shared.NewDomainError("INVALID_CONTACT", "Contact email cannot be empty")
	}

	c.Email = email
	c.Address = address
	c.Phone = phone
	c.UpdatedAt = time.Now()

	return nil
}
