package middlewares

import (
	"github.com/gin-gonic/gin"

	"github.com/RachidAzrou/mefen/utils"
)

// WebSocketAuthMiddleware: browser tidak bisa mengirim Authorization header
// pada handshake WebSocket, jadi token dibawa lewat query string
func WebSocketAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.AbortWithStatus(401)
			return
		}

		claims, err := utils.ValidateToken(token)
		if err != nil {
			c.AbortWithStatus(401)
			return
		}

		c.Set("role", claims.Role)
		c.Set("user_id", claims.UserID)

		c.Next()
	}
}
