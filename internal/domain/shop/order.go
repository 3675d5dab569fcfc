package shop

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/oryizon/storefront/internal/domain/shared"
	"github.com/oryizon/storefront/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the fulfillment state of an order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusHarvesting OrderStatus = "Harvesting" // Processing state; new orders start here
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusHarvesting, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// ParseOrderStatus resolves a status string case-insensitively
func ParseOrderStatus(raw string) (OrderStatus, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pending":
		return OrderStatusPending, nil
	case "harvesting", "processing":
		return OrderStatusHarvesting, nil
	case "shipped":
		return OrderStatusShipped, nil
	case "delivered":
		return OrderStatusDelivered, nil
	case "cancelled":
		return OrderStatusCancelled, nil
	}
	return "", shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown order status %q", raw))
}

// OrderItem is a frozen snapshot of a product at purchase time.
// It copies name and unit price so later catalog edits never change a
// placed order.
type OrderItem struct {
	ProductID string          `json:"id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"price"` // Effective price paid per unit
}

// Amount returns quantity times unit price
func (i OrderItem) Amount() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// OrderItems is the JSON-encoded snapshot list stored in a single column
type OrderItems []OrderItem

// Value implements driver.Valuer for database storage
func (items OrderItems) Value() (driver.Value, error) {
	if items == nil {
		return "[]", nil
	}
	data, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner for database retrieval
func (items *OrderItems) Scan(value interface{}) error {
	if value == nil {
		*items = OrderItems{}
		return nil
	}
	switch v := value.(type) {
	case string:
		return json.Unmarshal([]byte(v), items)
	case []byte:
		return json.Unmarshal(v, items)
	default:
		return fmt.Errorf("cannot scan type %T into OrderItems", value)
	}
}

// ShippingAddress is the delivery destination, stored as a JSON column
type ShippingAddress struct {
	Address string `json:"address"`
	Area    string `json:"area"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Country string `json:"country"`
}

// Value implements driver.Valuer for database storage
func (a ShippingAddress) Value() (driver.Value, error) {
	data, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner for database retrieval
func (a *ShippingAddress) Scan(value interface{}) error {
	if value == nil {
		*a = ShippingAddress{}
		return nil
	}
	switch v := value.(type) {
	case string:
		return json.Unmarshal([]byte(v), a)
	case []byte:
		return json.Unmarshal(v, a)
	default:
		return fmt.Errorf("cannot scan type %T into ShippingAddress", value)
	}
}

// Customer is the buyer's contact details captured at checkout
type Customer struct {
	Name    string
	Email   string
	Phone   string
	Address ShippingAddress
}

// Order is an immutable record of a completed checkout.
// It is the aggregate root for order tracking and admin review.
type Order struct {
	shared.BaseEntity
	OrderNumber     string          `gorm:"type:varchar(20);uniqueIndex"` // Human-readable alias (ORY-XXXXXXXX)
	CustomerName    string          `gorm:"type:varchar(200);not null"`
	CustomerEmail   string          `gorm:"type:varchar(200)"`
	CustomerPhone   string          `gorm:"type:varchar(50)"`
	ShippingAddress ShippingAddress `gorm:"type:jsonb"`
	Items           OrderItems      `gorm:"type:jsonb"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Status          OrderStatus     `gorm:"type:varchar(20);not null;index"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates an order from a cart, snapshotting every line.
// Shipping is always free, so the total equals the cart subtotal.
// New orders enter the processing state directly.
func NewOrder(cart Cart, customer Customer) (*Order, error) {
	if cart.IsEmpty() {
		return nil, shared.NewDomainError("EMPTY_CART", "Cannot place an order with an empty cart")
	}
	if customer.Name == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer name is required")
	}

	items := make(OrderItems, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		items = append(items, OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}

	base := shared.NewBaseEntity()
	return &Order{
		BaseEntity:      base,
		OrderNumber:     orderNumberFromID(base.ID),
		CustomerName:    customer.Name,
		CustomerEmail:   customer.Email,
		CustomerPhone:   customer.Phone,
		ShippingAddress: customer.Address,
		Items:           items,
		TotalAmount:     cart.Subtotal(),
		Status:          OrderStatusHarvesting,
	}, nil
}

// SetStatus transitions the order to a new status.
// Administrative corrections are unrestricted within the vocabulary.
func (o *Order) SetStatus(status OrderStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown order status %q", status))
	}
	o.Status = status
	return nil
}

// TotalMoney returns the order total as a Money value object
func (o *Order) TotalMoney() valueobject.Money {
	return valueobject.NewMoneyINR(o.TotalAmount)
}

// MatchesReference reports whether the order matches a tracking query by
// either its identifier or its human-readable order number
func (o *Order) MatchesReference(ref string) bool {
	return o.ID == ref || strings.EqualFold(o.OrderNumber, ref)
}

// orderNumberFromID derives the short order number from the order's UUID
func orderNumberFromID(id string) string {
	compact := strings.ReplaceAll(id, "-", "")
	if len(compact) > 8 {
		compact = compact[:8]
	}
	return "ORY-" + strings.ToUpper(compact)
}
