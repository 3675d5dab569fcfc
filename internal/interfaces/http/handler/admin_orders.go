package handler

import (
	"github.com/gin-gonic/gin"

	shopapp "github.com/oryizon/storefront/internal/application/shop"
	"github.com/oryizon/storefront/internal/interfaces/http/dto"
)

// AdminOrderHandler serves authenticated order management
type AdminOrderHandler struct {
	BaseHandler
	orders *shopapp.OrderAdminService
}

// NewAdminOrderHandler creates a new AdminOrderHandler
func NewAdminOrderHandler(orders *shopapp.OrderAdminService) *AdminOrderHandler {
	return &AdminOrderHandler{orders: orders}
}

// List returns orders newest first with pagination
func (h *AdminOrderHandler) List(c *gin.Context) {
	req := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 20
	}

	page, err := h.orders.ListOrders(c.Request.Context(), req.Page, req.PageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, req.Page, req.PageSize)
}

// Unsynced returns locally recorded orders that never reached the remote store
func (h *AdminOrderHandler) Unsynced(c *gin.Context) {
	orders, err := h.orders.UnsyncedOrders(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, orders)
}

// Get returns a single order by ID
func (h *AdminOrderHandler) Get(c *gin.Context) {
	order, err := h.orders.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// UpdateStatus moves an order to a new status
func (h *AdminOrderHandler) UpdateStatus(c *gin.Context) {
	var req shopapp.UpdateOrderStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	order, err := h.orders.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}
