package user

import (
	"context"
	"log"
	"net/http"
	"time"

	"velora_back_end/internal/database"
	"velora_back_end/internal/models"
	"velora_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FinalAmount choisit le montant facturé : le total remisé si un coupon a été
// appliqué et posé sur le panier, sinon le total brut.
func FinalAmount(cart models.Cart, couponApplied bool) models.Cents {
	if couponApplied && cart.TotalAfterDiscount != nil {
		return *cart.TotalAfterDiscount
	}
	return cart.CartTotal
}

// 💵 POST /api/user/cart/cash-order
func CreateCashOrder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input struct {
		COD           bool `json:"COD"`
		CouponApplied bool `json:"couponApplied"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !input.COD {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Création de commande impossible : COD non fourni"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var cart models.Cart
	err := database.MongoDB.Collection("carts").
		FindOne(ctx, bson.M{"orderby": userID}).Decode(&cart)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Panier introuvable"})
		return
	}

	amount := FinalAmount(cart, input.CouponApplied)
	now := time.Now()

	order := models.Order{
		Products: cart.Products,
		PaymentIntent: models.PaymentIntent{
			ID:       uuid.NewString(),
			Method:   "COD",
			Amount:   amount,
			Status:   "Cash on Delivery",
			Created:  now,
			Currency: "usd",
		},
		OrderBy:     userID,
		OrderStatus: "Cash on Delivery",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := database.MongoDB.Collection("orders").InsertOne(ctx, order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création commande"})
		return
	}

	// Ajustement du stock ligne par ligne, sans transaction : un échec partiel
	// laisse les décréments déjà appliqués en place.
	writes := make([]mongo.WriteModel, 0, len(cart.Products))
	for _, item := range cart.Products {
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": item.Product}).
			SetUpdate(bson.M{"$inc": bson.M{"quantity": -item.Count, "sold": item.Count}}))
	}
	if len(writes) > 0 {
		if _, err := database.MongoDB.Collection("products").
			BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false)); err != nil {
			log.Println("⚠️ Ajustement de stock incomplet:", err)
		}
	}

	// le panier n'est pas vidé ici : l'appelant doit faire un empty-cart explicite
	c.JSON(http.StatusOK, gin.H{"message": "success"})
}

// GET /api/user/get-orders — commandes de l'utilisateur connecté
func GetMyOrders(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := database.MongoDB.Collection("orders").Find(ctx, bson.M{"orderby": userID}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération commandes"})
		return
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur décodage commandes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// GET /api/user/order/:id — commandes d'un utilisateur donné (admin)
func GetOrdersByUserID(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "error": "ID utilisateur invalide"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.MongoDB.Collection("orders").Find(ctx, bson.M{"orderby": oid})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération commandes"})
		return
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur décodage commandes"})
		return
	}
	if len(orders) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"status": "fail", "error": "Aucune commande pour cet utilisateur"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GET /api/user/all-orders (admin)
func GetAllOrders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := database.MongoDB.Collection("orders").Find(ctx, bson.M{}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération commandes"})
		return
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur décodage commandes"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// PUT /api/user/order/update-order/:id (admin)
// Le statut est une chaîne libre : orderStatus et paymentIntent.status
// reçoivent la même valeur.
func UpdateOrderStatus(c *gin.Context) {
	orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID commande invalide"})
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var updated models.Order
	err = database.MongoDB.Collection("orders").FindOneAndUpdate(ctx,
		bson.M{"_id": orderID},
		bson.M{"$set": bson.M{
			"orderStatus":          input.Status,
			"paymentIntent.status": input.Status,
			"updatedAt":            time.Now(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	// notification par e-mail, sans bloquer la réponse
	go func(order models.Order, status string) {
		var owner models.User
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := database.MongoDB.Collection("users").
			FindOne(ctx, bson.M{"_id": order.OrderBy}).Decode(&owner); err == nil {
			utils.SendOrderStatusEmail(order, owner.Email, status)
		}
	}(updated, input.Status)

	c.JSON(http.StatusOK, updated)
}
