package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oryizon/storefront/internal/infrastructure/auth"
	"github.com/oryizon/storefront/internal/interfaces/http/dto"
)

// AdminClaimsKey is the gin context key holding validated admin claims
const AdminClaimsKey = "admin_claims"

// AdminAuth validates the Bearer session token on admin routes
func AdminAuth(tokens *auth.AdminTokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, dto.ErrCodeUnauthorized, "Missing authorization header")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			abortUnauthorized(c, dto.ErrCodeTokenInvalid, "Malformed authorization header")
			return
		}

		claims, err := tokens.Validate(parts[1])
		if err != nil {
			code := dto.ErrCodeTokenInvalid
			if err == auth.ErrExpiredToken {
				code = dto.ErrCodeTokenExpired
			}
			abortUnauthorized(c, code, "Invalid or expired session token")
			return
		}

		c.Set(AdminClaimsKey, claims)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(code, message))
}
