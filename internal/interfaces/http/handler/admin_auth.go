package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oryizon/storefront/internal/infrastructure/auth"
)

// AdminLoginRequest carries the shared admin secret
type AdminLoginRequest struct {
	Secret string `json:"secret" binding:"required"`
}

// AdminLoginResponse returns the issued session token
type AdminLoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AdminAuthHandler exchanges the admin secret for a session token
type AdminAuthHandler struct {
	BaseHandler
	policy auth.AuthPolicy
	tokens *auth.AdminTokenService
}

// NewAdminAuthHandler creates a new AdminAuthHandler
func NewAdminAuthHandler(policy auth.AuthPolicy, tokens *auth.AdminTokenService) *AdminAuthHandler {
	return &AdminAuthHandler{
		policy: policy,
		tokens: tokens,
	}
}

// Login verifies the admin secret and issues a bearer token
func (h *AdminAuthHandler) Login(c *gin.Context) {
	var req AdminLoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.policy.Authenticate(req.Secret); err != nil {
		h.Unauthorized(c, "Invalid admin credentials")
		return
	}

	token, expiresAt, err := h.tokens.Generate()
	if err != nil {
		h.InternalError(c, "Could not issue session token")
		return
	}

	h.Success(c, AdminLoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	})
}
