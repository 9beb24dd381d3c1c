package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// currentUserID lit l'identité posée par le middleware et la convertit en
// ObjectID. Écrit la réponse d'erreur et retourne false si elle est absente
// ou malformée.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié"})
		return primitive.NilObjectID, false
	}

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID utilisateur invalide"})
		return primitive.NilObjectID, false
	}
	return oid, true
}
