package middleware

import (
	"net/http"
	"strings"

	"github.com/gestion-bailleurs/bailleur-api/utils"

	"github.com/gin-gonic/gin"
)

const (
	contextUserID = "user_id"
	contextEmail  = "user_email"
)

// AuthMiddleware valide le JWT Bearer et place user_id/email dans le contexte
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Bearer token required"})
			c.Abort()
			return
		}

		userID, email, err := utils.ValidateAccessToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(contextUserID, userID)
		c.Set(contextEmail, email)
		c.Next()
	}
}

// GetUserID retourne l'ID de l'utilisateur authentifié, ou ""
func GetUserID(c *gin.Context) string {
	if id, exists := c.Get(contextUserID); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

// GetUserEmail retourne l'email de l'utilisateur authentifié, ou ""
func GetUserEmail(c *gin.Context) string {
	if email, exists := c.Get(contextEmail); exists {
		if s, ok := email.(string); ok {
			return s
		}
	}
	return ""
}
