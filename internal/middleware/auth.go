package middleware

import (
	"net/http"
	"strings"

	"shop_manager/internal/services"

	"github.com/gin-gonic/gin"
)

// Protect rejects requests that do not carry a valid bearer token. The
// subject login id is stored on the context for downstream handlers.
func Protect(userService services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Authorization token required",
			})
			return
		}

		claims, err := userService.ParseToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid or expired token",
			})
			return
		}

		c.Set("login_id", claims.Subject)
		c.Next()
	}
}
