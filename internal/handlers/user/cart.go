package user

import (
	"context"
	"net/http"
	"time"

	"velora_back_end/internal/database"
	"velora_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ComputeCartTotal additionne prix unitaire × quantité sur toutes les lignes,
// en centimes.
func ComputeCartTotal(products []models.CartProduct) models.Cents {
	var total models.Cents
	for _, p := range products {
		total += p.Price.MulCount(p.Count)
	}
	return total
}

// 🛒 POST /api/user/cart — remplace intégralement le panier de l'utilisateur
func UserCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input struct {
		Cart []struct {
			ProductID string `json:"_id" binding:"required"`
			Count     int    `json:"count" binding:"required"`
			Color     string `json:"color"`
		} `json:"cart" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	carts := database.MongoDB.Collection("carts")
	productsCol := database.MongoDB.Collection("products")

	// sémantique de remplacement : l'ancien panier est jeté, pas fusionné
	carts.DeleteOne(ctx, bson.M{"orderby": userID})

	var lines []models.CartProduct
	for _, item := range input.Cart {
		pid, err := primitive.ObjectIDFromHex(item.ProductID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide: " + item.ProductID})
			return
		}

		// prix de référence relu depuis le catalogue au moment de la création
		var product models.Product
		if err := productsCol.FindOne(ctx, bson.M{"_id": pid}).Decode(&product); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable: " + item.ProductID})
			return
		}

		lines = append(lines, models.CartProduct{
			Product: pid,
			Count:   item.Count,
			Color:   item.Color,
			Price:   product.Price,
		})
	}

	now := time.Now()
	cart := models.Cart{
		Products:  lines,
		CartTotal: ComputeCartTotal(lines),
		OrderBy:   userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := carts.InsertOne(ctx, cart)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}
	cart.ID = result.InsertedID.(primitive.ObjectID)

	c.JSON(http.StatusOK, cart)
}

// GET /api/user/cart — panier vide ≠ erreur
func GetUserCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var cart models.Cart
	err := database.MongoDB.Collection("carts").
		FindOne(ctx, bson.M{"orderby": userID}).Decode(&cart)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Le panier est vide",
			"data":    []models.CartProduct{},
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": cart})
}

// 🧹 DELETE /api/user/empty-cart
func EmptyCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var removed models.Cart
	err := database.MongoDB.Collection("carts").
		FindOneAndDelete(ctx, bson.M{"orderby": userID}).Decode(&removed)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"status": "fail", "error": "Panier introuvable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression panier"})
		return
	}

	c.JSON(http.StatusOK, removed)
}

// 🎟️ POST /api/user/cart/applycoupon
// Relancer avec un autre coupon valide écrase la remise précédente (pas de cumul).
func ApplyCoupon(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input struct {
		Coupon string `json:"coupon" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// correspondance exacte sur le code, sensible à la casse
	var coupon models.Coupon
	err := database.MongoDB.Collection("coupons").
		FindOne(ctx, bson.M{"name": input.Coupon}).Decode(&coupon)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Coupon invalide"})
		return
	}

	carts := database.MongoDB.Collection("carts")
	var cart models.Cart
	if err := carts.FindOne(ctx, bson.M{"orderby": userID}).Decode(&cart); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Aucun panier pour cet utilisateur"})
		return
	}

	totalAfterDiscount := cart.CartTotal.ApplyDiscount(coupon.Discount)

	// cartTotal reste intact, seul totalAfterDiscount est posé
	if _, err := carts.UpdateOne(ctx, bson.M{"orderby": userID},
		bson.M{"$set": bson.M{"totalAfterDiscount": totalAfterDiscount, "updatedAt": time.Now()}}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde remise"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"totalAfterDiscount": totalAfterDiscount})
}
