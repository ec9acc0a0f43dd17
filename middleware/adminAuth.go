package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rkritzar39/calebsportfolio-sub000/config"
	"github.com/rkritzar39/calebsportfolio-sub000/utils"
)

// AdminAuthMiddleware verifies a Firebase ID token and checks the caller's
// UID against the configured admin allow-list.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.AuthClient.VerifyIDToken(c.Request.Context(), tokenString)
		if err != nil {
			zap.L().Warn("Admin token verification failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		if !isAdminUID(token.UID) {
			zap.L().Warn("Non-admin UID attempted admin access", zap.String("uid", token.UID))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin privileges required"})
			return
		}

		c.Set("adminUID", token.UID)
		c.Set("isAdmin", true)
		c.Next()
	}
}

func isAdminUID(uid string) bool {
	for _, allowed := range config.AdminUIDList() {
		if allowed == uid {
			return true
		}
	}
	return false
}
