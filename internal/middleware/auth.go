package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"dental-tourism-server/internal/config"
	"dental-tourism-server/internal/utils"
)

// AuthMiddleware creates a middleware for JWT authentication on CRM routes.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Unauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			utils.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		tokenString := parts[1]
		claims, err := utils.ValidateToken(tokenString, cfg.Admin.JWTSecret)
		if err != nil {
			utils.Unauthorized(c, "Invalid token: "+err.Error())
			c.Abort()
			return
		}

		// Set operator identity in context for downstream handlers
		c.Set("adminEmail", claims.Email)

		c.Next()
	}
}
