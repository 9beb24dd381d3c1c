package user

import (
	"context"
	"net/http"
	"time"

	"velora_back_end/internal/database"
	"velora_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PUT /api/user/edit-user
func UpdateUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input struct {
		Firstname string `json:"firstname"`
		Lastname  string `json:"lastname"`
		Email     string `json:"email"`
		Mobile    string `json:"mobile"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if input.Firstname != "" {
		set["firstname"] = input.Firstname
	}
	if input.Lastname != "" {
		set["lastname"] = input.Lastname
	}
	if input.Email != "" {
		set["email"] = input.Email
	}
	if input.Mobile != "" {
		set["mobile"] = input.Mobile
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var updated models.User
	err := database.MongoDB.Collection("users").FindOneAndUpdate(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Utilisateur introuvable"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// PUT /api/user/save-address
func SaveAddress(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input struct {
		Address string `json:"address" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var updated models.User
	err := database.MongoDB.Collection("users").FindOneAndUpdate(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"address": input.Address, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "fail", "error": "Utilisateur introuvable"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// GET /api/user/wishlists — wishlist résolue en produits complets
func GetWishlist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var u models.User
	if err := database.MongoDB.Collection("users").
		FindOne(ctx, bson.M{"_id": userID}).Decode(&u); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Utilisateur introuvable"})
		return
	}

	products := []models.Product{}
	if len(u.Wishlist) > 0 {
		cursor, err := database.MongoDB.Collection("products").
			Find(ctx, bson.M{"_id": bson.M{"$in": u.Wishlist}})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture wishlist"})
			return
		}
		defer cursor.Close(ctx)
		if err := cursor.All(ctx, &products); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur décodage wishlist"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"wishlist": products})
}
