package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"eventlista/internal/helpers"
	"eventlista/internal/token"
)

// JWTAuthMiddleware verifies the bearer token and stores the verified
// claims in the request context. Authorization is derived from the
// signed claims only.
func JWTAuthMiddleware(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := extractBearerToken(c)
		if raw == "" {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Missing or malformed authorization header.")
			c.Abort()
			return
		}

		claims, err := tokens.Verify(raw)
		if err != nil {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid or expired token.")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("full_name", claims.FullName)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RequireRole gates a route group on a role claim. Must run after
// JWTAuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, exists := c.Get("role")
		if !exists || got != role {
			helpers.RespondWithError(c, http.StatusForbidden, "Insufficient permissions.")
			c.Abort()
			return
		}
		c.Next()
	}
}

func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
