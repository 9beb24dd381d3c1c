package product

import (
	"context"
	"net/http"
	"time"

	"velora_back_end/internal/database"
	"velora_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PUT /api/product/wishlist — ajoute le produit à la wishlist, ou l'en retire
// s'il y est déjà (toggle).
func AddToWishlist(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié"})
		return
	}
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID utilisateur invalide"})
		return
	}

	var input struct {
		ProductID string `json:"prodId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	prodID, err := primitive.ObjectIDFromHex(input.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	users := database.MongoDB.Collection("users")

	var u models.User
	if err := users.FindOne(ctx, bson.M{"_id": oid}).Decode(&u); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "fail", "error": "Utilisateur introuvable"})
		return
	}

	alreadyAdded := false
	for _, id := range u.Wishlist {
		if id == prodID {
			alreadyAdded = true
			break
		}
	}

	update := bson.M{"$push": bson.M{"wishlist": prodID}}
	if alreadyAdded {
		update = bson.M{"$pull": bson.M{"wishlist": prodID}}
	}

	var updated models.User
	err = users.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour wishlist"})
		return
	}

	c.JSON(http.StatusOK, updated)
}
