package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	catalogapp "github.com/oryizon/storefront/internal/application/catalog"
)

// AdminCatalogHandler serves authenticated product, blog and contact-info management
type AdminCatalogHandler struct {
	BaseHandler
	admin *catalogapp.AdminService
}

// NewAdminCatalogHandler creates a new AdminCatalogHandler
func NewAdminCatalogHandler(admin *catalogapp.AdminService) *AdminCatalogHandler {
	return &AdminCatalogHandler{admin: admin}
}

// SaveProduct creates a product or updates an existing one when an ID is given
func (h *AdminCatalogHandler) SaveProduct(c *gin.Context) {
	var req catalogapp.SaveProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	product, err := h.admin.SaveProduct(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// DeleteProduct removes a product. Seeded products are protected.
func (h *AdminCatalogHandler) DeleteProduct(c *gin.Context) {
	if err := h.admin.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// UploadProductImage attaches an uploaded image to a product.
// The file travels as the "image" multipart field.
func (h *AdminCatalogHandler) UploadProductImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		h.BadRequest(c, "Missing image file")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.BadRequest(c, "Could not read image file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.BadRequest(c, "Could not read image file")
		return
	}

	product, err := h.admin.UploadProductImage(
		c.Request.Context(),
		c.Param("id"),
		fileHeader.Filename,
		data,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// RemoveProductImage removes an image by index. Removing index 0
// promotes the next image to primary.
func (h *AdminCatalogHandler) RemoveProductImage(c *gin.Context) {
	index, ok := parseIndex(c.Param("index"))
	if !ok {
		h.BadRequest(c, "Invalid image index")
		return
	}

	product, err := h.admin.RemoveProductImage(c.Request.Context(), c.Param("id"), index)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// SaveBlog creates a blog post or updates an existing one when an ID is given
func (h *AdminCatalogHandler) SaveBlog(c *gin.Context) {
	var req catalogapp.SaveBlogRequest
	if !h.BindJSON(c, &req) {
		return
	}

	post, err := h.admin.SaveBlog(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, post)
}

// DeleteBlog removes a blog post. Seeded posts are protected.
func (h *AdminCatalogHandler) DeleteBlog(c *gin.Context) {
	if err := h.admin.DeleteBlog(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// UpsertContactInfo replaces the shop contact details singleton
func (h *AdminCatalogHandler) UpsertContactInfo(c *gin.Context) {
	var req catalogapp.UpsertContactInfoRequest
	if !h.BindJSON(c, &req) {
		return
	}

	info, err := h.admin.UpsertContactInfo(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, info)
}
