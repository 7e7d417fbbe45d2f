package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// RequireAdmin gates catalog management. It must run after
// RequireAuth, which loads the token claims.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		value, exists := ctx.Get("user")
		claims, ok := value.(jwt.MapClaims)
		if !exists || !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "You must be logged in to manage products."})
			return
		}

		if role, _ := claims["role"].(string); role != "admin" {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin access is required to manage products."})
			return
		}

		ctx.Next()
	}
}
