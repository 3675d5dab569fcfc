package shop

import (
	"time"

	"github.com/oryizon/storefront/internal/domain/shop"
	"github.com/shopspring/decimal"
)

// AddCartItemRequest adds one unit of a product to the session cart
type AddCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

// UpdateCartItemRequest adjusts a line's quantity by a signed delta.
// Quantities clamp at zero; a line at zero is dropped.
type UpdateCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Delta     int    `json:"delta" binding:"required"`
}

// CartLineResponse is a single cart line in API responses
type CartLineResponse struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Image     string          `json:"image"`
	UnitPrice decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Amount    decimal.Decimal `json:"amount"`
}

// CartResponse is the session cart in API responses
type CartResponse struct {
	Lines     []CartLineResponse `json:"lines"`
	Subtotal  decimal.Decimal    `json:"subtotal"`
	Shipping  decimal.Decimal    `json:"shipping"`
	Total     decimal.Decimal    `json:"total"`
	ItemCount int                `json:"itemCount"`
}

// CheckoutRequest carries the buyer details for order placement.
// The cart itself comes from the session.
type CheckoutRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required,max=50"`
	Address string `json:"address" binding:"required,max=500"`
	Area    string `json:"area" binding:"max=200"`
	City    string `json:"city" binding:"required,max=100"`
	State   string `json:"state" binding:"required,max=100"`
	Pincode string `json:"pincode" binding:"required,max=20"`
	Country string `json:"country" binding:"max=100"`
}

// CheckoutResponse acknowledges an accepted order. Warning is set when
// the order was recorded locally but could not reach the remote store.
type CheckoutResponse struct {
	OrderID     string          `json:"orderId"`
	OrderNumber string          `json:"orderNumber"`
	Status      string          `json:"status"`
	Total       decimal.Decimal `json:"total"`
	Warning     string          `json:"warning,omitempty"`
}

// OrderItemResponse is a frozen order line in API responses
type OrderItemResponse struct {
	ProductID string          `json:"id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"price"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID              string               `json:"id"`
	OrderNumber     string               `json:"orderNumber"`
	CustomerName    string               `json:"customerName"`
	CustomerEmail   string               `json:"customerEmail"`
	CustomerPhone   string               `json:"customerPhone"`
	ShippingAddress shop.ShippingAddress `json:"shippingAddress"`
	Items           []OrderItemResponse  `json:"items"`
	Total           decimal.Decimal      `json:"total"`
	Status          string               `json:"status"`
	CreatedAt       time.Time            `json:"created_at"`
}

// UpdateOrderStatusRequest moves an order to a new status
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SubmitMessageRequest is a public contact-form submission
type SubmitMessageRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required,min=1,max=5000"`
}

// MessageResponse represents a contact message in admin responses
type MessageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ToCartResponse converts a domain Cart
func ToCartResponse(cart shop.Cart) CartResponse {
	lines := make([]CartLineResponse, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		lines = append(lines, CartLineResponse{
			ProductID: line.ProductID,
			Name:      line.Name,
			Image:     line.Image,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			Amount:    line.Amount(),
		})
	}

	subtotal := cart.Subtotal()
	return CartResponse{
		Lines:     lines,
		Subtotal:  subtotal,
		Shipping:  decimal.Zero,
		Total:     subtotal,
		ItemCount: cart.ItemCount(),
	}
}

// ToOrderResponse converts a domain Order
func ToOrderResponse(order *shop.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return OrderResponse{
		ID:              order.ID,
		OrderNumber:     order.OrderNumber,
		CustomerName:    order.CustomerName,
		CustomerEmail:   order.CustomerEmail,
		CustomerPhone:   order.CustomerPhone,
		ShippingAddress: order.ShippingAddress,
		Items:           items,
		Total:           order.TotalAmount,
		Status:          order.Status.String(),
		CreatedAt:       order.CreatedAt,
	}
}

// ToOrderResponses converts a slice of domain Orders
func ToOrderResponses(orders []shop.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, ToOrderResponse(&orders[i]))
	}
	return responses
}

// ToMessageResponse converts a domain ContactMessage
func ToMessageResponse(m *shop.ContactMessage) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

// ToMessageResponses converts a slice of domain ContactMessages
func ToMessageResponses(messages []shop.ContactMessage) []MessageResponse {
	responses := make([]MessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, ToMessageResponse(&messages[i]))
	}
	return responses
}

// shippingAddressFromRequest maps checkout fields onto the domain address
func shippingAddressFromRequest(req CheckoutRequest) shop.ShippingAddress {
	country := req.Country
	if country == "" {
		country = "India"
	}
	return shop.ShippingAddress{
		Address: req.Address,
		Area:    req.Area,
		City:    req.City,
		State:   req.State,
		Pincode: req.Pincode,
		Country: country,
	}
}
