package handler

import (
	"github.com/gin-gonic/gin"

	shopapp "github.com/oryizon/storefront/internal/application/shop"
)

// CheckoutHandler serves order placement and public order tracking
type CheckoutHandler struct {
	BaseHandler
	checkout *shopapp.CheckoutService
	tracking *shopapp.TrackingService
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(checkout *shopapp.CheckoutService, tracking *shopapp.TrackingService) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		tracking: tracking,
	}
}

// Submit places an order from the session cart
func (h *CheckoutHandler) Submit(c *gin.Context) {
	var req shopapp.CheckoutRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.checkout.SubmitOrder(c.Request.Context(), cartSession(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Track looks up an order by ID or order number
func (h *CheckoutHandler) Track(c *gin.Context) {
	order, err := h.tracking.FindOrder(c.Request.Context(), c.Param("ref"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}
