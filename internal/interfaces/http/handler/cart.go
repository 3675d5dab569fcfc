package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	shopapp "github.com/oryizon/storefront/internal/application/shop"
)

// CartSessionHeader carries the shopper's cart session ID. The server
// issues one on first contact and echoes it on every cart response.
const CartSessionHeader = "X-Cart-Session"

// CartHandler serves the session cart endpoints
type CartHandler struct {
	BaseHandler
	carts *shopapp.CartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(carts *shopapp.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

// cartSession returns the session ID from the request, issuing a fresh
// one when the client has none yet. The ID is always echoed back so the
// client can persist it.
func cartSession(c *gin.Context) string {
	sessionID := c.GetHeader(CartSessionHeader)
	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	c.Header(CartSessionHeader, sessionID)
	return sessionID
}

// Get returns the current session cart
func (h *CartHandler) Get(c *gin.Context) {
	cart, err := h.carts.Cart(c.Request.Context(), cartSession(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}

// AddItem adds one unit of a product to the cart
func (h *CartHandler) AddItem(c *gin.Context) {
	var req shopapp.AddCartItemRequest
	if !h.BindJSON(c, &req) {
		return
	}

	cart, err := h.carts.AddItem(c.Request.Context(), cartSession(c), req.ProductID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}

// UpdateItem adjusts a line's quantity by a signed delta
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req shopapp.UpdateCartItemRequest
	if !h.BindJSON(c, &req) {
		return
	}

	cart, err := h.carts.UpdateQuantity(c.Request.Context(), cartSession(c), req.ProductID, req.Delta)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}

// RemoveItem drops a product line from the cart
func (h *CartHandler) RemoveItem(c *gin.Context) {
	cart, err := h.carts.RemoveItem(c.Request.Context(), cartSession(c), c.Param("productId"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}

// Clear empties the session cart
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.carts.Clear(c.Request.Context(), cartSession(c)); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// parseIndex parses a non-negative integer path parameter
func parseIndex(raw string) (int, bool) {
	idx, err := strconv.Atoi(raw)
	if err != nil || idx < 0 {
		return 0, false
	}
	return idx, true
}
