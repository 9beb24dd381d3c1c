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

// AverageRating arrondit la moyenne des étoiles à l'entier le plus proche.
func AverageRating(ratings []models.Rating) int {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Star
	}
	// arrondi demi-supérieur en arithmétique entière
	return (sum*2 + len(ratings)) / (2 * len(ratings))
}

// ⭐ PUT /api/product/rating
// Une seule note par utilisateur et par produit : une re-soumission met la
// note existante à jour au lieu d'en ajouter une.
func Rating(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié"})
		return
	}
	posterID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID utilisateur invalide"})
		return
	}

	var input struct {
		ProductID string `json:"prodId" binding:"required"`
		Star      int    `json:"star" binding:"required,min=1,max=5"`
		Comment   string `json:"comment"`
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

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	products := database.MongoDB.Collection("products")

	var product models.Product
	if err := products.FindOne(ctx, bson.M{"_id": prodID}).Decode(&product); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "fail", "error": "Produit introuvable"})
		return
	}

	alreadyRated := false
	for _, r := range product.Ratings {
		if r.PostedBy == posterID {
			alreadyRated = true
			break
		}
	}

	if alreadyRated {
		_, err = products.UpdateOne(ctx,
			bson.M{"_id": prodID, "ratings.postedby": posterID},
			bson.M{"$set": bson.M{
				"ratings.$.star":    input.Star,
				"ratings.$.comment": input.Comment,
			}})
	} else {
		_, err = products.UpdateOne(ctx,
			bson.M{"_id": prodID},
			bson.M{"$push": bson.M{"ratings": models.Rating{
				Star:     input.Star,
				Comment:  input.Comment,
				PostedBy: posterID,
			}}})
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur enregistrement note"})
		return
	}

	// recalcul de la moyenne sur l'état relu
	if err := products.FindOne(ctx, bson.M{"_id": prodID}).Decode(&product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur relecture produit"})
		return
	}

	var final models.Product
	err = products.FindOneAndUpdate(ctx,
		bson.M{"_id": prodID},
		bson.M{"$set": bson.M{"totalrating": AverageRating(product.Ratings), "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&final)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour moyenne"})
		return
	}

	c.JSON(http.StatusOK, final)
}
