package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func ok(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func perform(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRouterMountsUnderVersionPrefix(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	shop := NewDomainGroup("shop", "")
	shop.GET("/products", ok)

	NewRouter(engine).Register(shop).Setup()

	assert.Equal(t, http.StatusOK, perform(engine, http.MethodGet, "/api/v1/products").Code)
	assert.Equal(t, http.StatusNotFound, perform(engine, http.MethodGet, "/products").Code)
}

func TestRouterCustomVersion(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	shop := NewDomainGroup("shop", "")
	shop.GET("/products", ok)

	NewRouter(engine, WithAPIVersion("v2")).Register(shop).Setup()

	assert.Equal(t, http.StatusOK, perform(engine, http.MethodGet, "/api/v2/products").Code)
	assert.Equal(t, http.StatusNotFound, perform(engine, http.MethodGet, "/api/v1/products").Code)
}

func TestDomainGroupPrefixAndMethods(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	admin := NewDomainGroup("admin", "/admin")
	admin.GET("/orders", ok).
		POST("/products", ok).
		PUT("/contact-info", ok).
		PATCH("/orders/:id/status", ok).
		DELETE("/products/:id", ok)

	NewRouter(engine).Register(admin).Setup()

	assert.Equal(t, http.StatusOK, perform(engine, http.MethodGet, "/api/v1/admin/orders").Code)
	assert.Equal(t, http.StatusOK, perform(engine, http.MethodPost, "/api/v1/admin/products").Code)
	assert.Equal(t, http.StatusOK, perform(engine, http.MethodPut, "/api/v1/admin/contact-info").Code)
	assert.Equal(t, http.StatusOK, perform(engine, http.MethodPatch, "/api/v1/admin/orders/o1/status").Code)
	assert.Equal(t, http.StatusOK, perform(engine, http.MethodDelete, "/api/v1/admin/products/p9").Code)
	assert.Equal(t, "admin", admin.Name())
}

func TestDomainGroupMiddlewareAppliesToAllRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	var seen []string
	admin := NewDomainGroup("admin", "/admin")
	admin.Use(func(c *gin.Context) {
		seen = append(seen, c.FullPath())
		c.Next()
	})
	admin.GET("/orders", ok)
	admin.GET("/messages", ok)

	public := NewDomainGroup("shop", "")
	public.GET("/products", ok)

	NewRouter(engine).Register(admin).Register(public).Setup()

	perform(engine, http.MethodGet, "/api/v1/admin/orders")
	perform(engine, http.MethodGet, "/api/v1/admin/messages")
	perform(engine, http.MethodGet, "/api/v1/products")

	// Middleware runs on the admin group only
	assert.Equal(t, []string{"/api/v1/admin/orders", "/api/v1/admin/messages"}, seen)
}

func TestDomainGroupMiddlewareCanAbort(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	admin := NewDomainGroup("admin", "/admin")
	admin.Use(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusUnauthorized)
	})
	admin.GET("/orders", ok)

	NewRouter(engine).Register(admin).Setup()

	assert.Equal(t, http.StatusUnauthorized, perform(engine, http.MethodGet, "/api/v1/admin/orders").Code)
}
