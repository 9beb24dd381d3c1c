package handlers

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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ================== COUPONS (ADMIN) ==================

// POST /api/coupon
func CreateCoupon(c *gin.Context) {
	var input struct {
		Name     string    `json:"name" binding:"required"`
		Discount int       `json:"discount" binding:"required,min=1,max=100"`
		Expiry   time.Time `json:"expiry" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	coupon := models.Coupon{
		Name:     input.Name,
		Discount: input.Discount,
		Expiry:   input.Expiry,
	}

	result, err := database.MongoDB.Collection("coupons").InsertOne(ctx, coupon)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Un coupon avec ce code existe déjà"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création coupon"})
		return
	}
	coupon.ID = result.InsertedID.(primitive.ObjectID)

	c.JSON(http.StatusCreated, coupon)
}

// GET /api/coupon
func GetAllCoupons(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.MongoDB.Collection("coupons").Find(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération coupons"})
		return
	}
	defer cursor.Close(ctx)

	coupons := []models.Coupon{}
	if err := cursor.All(ctx, &coupons); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur décodage coupons"})
		return
	}

	c.JSON(http.StatusOK, coupons)
}

// PUT /api/coupon/:id
func UpdateCoupon(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID coupon invalide"})
		return
	}

	var input struct {
		Name     *string    `json:"name"`
		Discount *int       `json:"discount"`
		Expiry   *time.Time `json:"expiry"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	set := bson.M{}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Discount != nil {
		set["discount"] = *input.Discount
	}
	if input.Expiry != nil {
		set["expiry"] = *input.Expiry
	}
	if len(set) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rien à mettre à jour"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var updated models.Coupon
	err = database.MongoDB.Collection("coupons").FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Coupon introuvable"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DELETE /api/coupon/:id
func DeleteCoupon(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID coupon invalide"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var deleted models.Coupon
	err = database.MongoDB.Collection("coupons").
		FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&deleted)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Coupon introuvable"})
		return
	}

	c.JSON(http.StatusOK, deleted)
}
