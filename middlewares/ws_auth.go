package middlewares

import (
	"net/http"
	"strings"

	"github.com/ottchakarov/FrontDash/utils"

	"github.com/gin-gonic/gin"
)

// WSAuthMiddleware reads the JWT from the query string (browsers cannot set
// headers on a WebSocket upgrade) with the Authorization header as fallback.
func WSAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string
		if t := c.Query("token"); t != "" {
			tokenStr = t
		} else if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
			tokenStr = strings.TrimPrefix(h, "Bearer ")
		}
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing token"})
			return
		}

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			return
		}

		c.Set("staffId", claims.StaffID)
		c.Set("role", claims.Role)
		c.Next()
	}
}
