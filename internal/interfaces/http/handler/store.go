package handler

import (
	"github.com/gin-gonic/gin"

	catalogapp "github.com/oryizon/storefront/internal/application/catalog"
)

// StoreHandler serves the public storefront catalog endpoints
type StoreHandler struct {
	BaseHandler
	store *catalogapp.StoreService
}

// NewStoreHandler creates a new StoreHandler
func NewStoreHandler(store *catalogapp.StoreService) *StoreHandler {
	return &StoreHandler{store: store}
}

// ListProducts returns the full product catalog
func (h *StoreHandler) ListProducts(c *gin.Context) {
	h.Success(c, h.store.Products(c.Request.Context()))
}

// GetProduct returns a single product by ID
func (h *StoreHandler) GetProduct(c *gin.Context) {
	product, err := h.store.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// ListBlogPosts returns all blog posts
func (h *StoreHandler) ListBlogPosts(c *gin.Context) {
	h.Success(c, h.store.BlogPosts(c.Request.Context()))
}

// GetBlogPost returns a single blog post by ID
func (h *StoreHandler) GetBlogPost(c *gin.Context) {
	post, err := h.store.BlogPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, post)
}

// GetContactInfo returns the shop contact details
func (h *StoreHandler) GetContactInfo(c *gin.Context) {
	h.Success(c, h.store.ContactInfo(c.Request.Context()))
}
