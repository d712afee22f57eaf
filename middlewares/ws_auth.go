package middlewares

import (
	"net/http"
	"strings"

	"github.com/Ashitosh2004/hotellucky/utils"
	"github.com/gin-gonic/gin"
)

// WSAuthMiddleware resolves the caller's identity for websocket upgrades,
// where browsers cannot set an Authorization header. Staff clients pass
// their JWT as ?token= (a Bearer header still works); customers have no
// account and connect without one. A missing token leaves the request
// anonymous, a bad token is rejected outright.
func WSAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.Query("token")
		if tokenStr == "" {
			if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
				tokenStr = strings.TrimPrefix(h, "Bearer ")
			}
		}
		if tokenStr == "" {
			c.Next()
			return
		}

		claims, err := utils.ParseToken(tokenStr, jwtSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}
