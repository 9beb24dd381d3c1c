package middleware

import (
	"net/http"
	"strings"

	"velora_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthRequired résout l'identité depuis le header Authorization et la pose
// dans le contexte Gin. Token absent et token invalide produisent tous les
// deux un 401, mais avec des messages distincts pour le diagnostic.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token manquant"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Format Authorization invalide"})
			c.Abort()
			return
		}

		userID, err := utils.VerifyToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token invalide ou expiré"})
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
