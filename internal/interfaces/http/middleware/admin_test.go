package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oryizon/storefront/internal/infrastructure/auth"
	"github.com/oryizon/storefront/internal/infrastructure/config"
)

func adminTestRouter(tokens *auth.AdminTokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/ping", AdminAuth(tokens), func(c *gin.Context) {
		_, exists := c.Get(AdminClaimsKey)
		c.JSON(http.StatusOK, gin.H{"claims": exists})
	})
	return r
}

func TestAdminAuth(t *testing.T) {
	tokens := auth.NewAdminTokenService(config.AdminConfig{
		Secret:   "admin-secret",
		TokenTTL: time.Hour,
		Issuer:   "oryizon-storefront",
	})
	r := adminTestRouter(tokens)

	t.Run("allows valid bearer token", func(t *testing.T) {
		token, _, err := tokens.Generate()
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"claims":true`)
	})

	t.Run("rejects missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects malformed header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		req.Header.Set("Authorization", "Token abc")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_TOKEN_INVALID")
	})

	t.Run("rejects token signed with another secret", func(t *testing.T) {
		other := auth.NewAdminTokenService(config.AdminConfig{
			Secret:   "other-secret",
			TokenTTL: time.Hour,
			Issuer:   "oryizon-storefront",
		})
		token, _, err := other.Generate()
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		expired := auth.NewAdminTokenService(config.AdminConfig{
			Secret:   "admin-secret",
			TokenTTL: -time.Minute,
			Issuer:   "oryizon-storefront",
		})
		token, _, err := expired.Generate()
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_TOKEN_EXPIRED")
	})
}
