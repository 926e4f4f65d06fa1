package middleware

import (
	"github.com/gin-gonic/gin"

	"eventlista/internal/token"
)

func TokenServiceMiddleware(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("token_service", tokens)
		c.Next()
	}
}

func GetTokenService(c *gin.Context) *token.Service {
	tokens, exists := c.Get("token_service")
	if !exists {
		return nil
	}
	return tokens.(*token.Service)
}
