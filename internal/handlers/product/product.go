package product

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"velora_back_end/internal/database"
	"velora_back_end/internal/models"
	"velora_back_end/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ================== CATALOGUE ==================

// POST /api/product (admin)
func CreateProduct(c *gin.Context) {
	var input struct {
		Title       string       `json:"title" binding:"required"`
		Description string       `json:"description"`
		Price       models.Cents `json:"price" binding:"required"`
		Category    string       `json:"category"`
		Brand       string       `json:"brand"`
		Quantity    int          `json:"quantity"`
		Color       string       `json:"color"`
		Tags        []string     `json:"tags"`
		Images      []string     `json:"images"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	product := models.Product{
		Title:       input.Title,
		Slug:        slug.Make(input.Title),
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Brand:       input.Brand,
		Quantity:    input.Quantity,
		Color:       input.Color,
		Tags:        input.Tags,
		Images:      input.Images,
		Ratings:     []models.Rating{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := database.MongoDB.Collection("products").InsertOne(ctx, product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création produit"})
		return
	}
	product.ID = result.InsertedID.(primitive.ObjectID)

	services.IndexProduct(product)

	c.JSON(http.StatusCreated, product)
}

// GET /api/product/:id
func GetProduct(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var product models.Product
	if err := database.MongoDB.Collection("products").
		FindOne(ctx, bson.M{"_id": oid}).Decode(&product); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// GET /api/product — filtres (category, brand, color, price[gte], price[lte]),
// tri (?sort=-price,title), sélection de champs (?fields=title,price) et
// pagination (?page=&limit=)
func GetAllProducts(c *gin.Context) {
	filter := bson.M{}
	for _, field := range []string{"category", "brand", "color"} {
		if v := c.Query(field); v != "" {
			filter[field] = v
		}
	}

	priceRange := bson.M{}
	if v := c.Query("price[gte]"); v != "" {
		if cents, err := models.ParseCents(v); err == nil {
			priceRange["$gte"] = cents
		}
	}
	if v := c.Query("price[lte]"); v != "" {
		if cents, err := models.ParseCents(v); err == nil {
			priceRange["$lte"] = cents
		}
	}
	if len(priceRange) > 0 {
		filter["price"] = priceRange
	}

	opts := options.Find()

	// tri : champs séparés par des virgules, préfixe "-" pour descendant
	sortSpec := bson.D{}
	sortParam := c.DefaultQuery("sort", "-createdAt")
	for _, field := range strings.Split(sortParam, ",") {
		if field == "" {
			continue
		}
		dir := 1
		if strings.HasPrefix(field, "-") {
			dir = -1
			field = field[1:]
		}
		sortSpec = append(sortSpec, bson.E{Key: field, Value: dir})
	}
	opts.SetSort(sortSpec)

	if fields := c.Query("fields"); fields != "" {
		projection := bson.M{}
		for _, f := range strings.Split(fields, ",") {
			projection[f] = 1
		}
		opts.SetProjection(projection)
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	skip := int64((page - 1) * limit)
	opts.SetSkip(skip).SetLimit(int64(limit))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	products := database.MongoDB.Collection("products")

	if c.Query("page") != "" {
		count, err := products.CountDocuments(ctx, filter)
		if err == nil && skip >= count && count > 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cette page n'existe pas"})
			return
		}
	}

	cursor, err := products.Find(ctx, filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération produits"})
		return
	}
	defer cursor.Close(ctx)

	results := []models.Product{}
	if err := cursor.All(ctx, &results); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur décodage produits"})
		return
	}

	c.JSON(http.StatusOK, results)
}

// PUT /api/product/:id (admin)
func UpdateProduct(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	var input struct {
		Title       *string       `json:"title"`
		Description *string       `json:"description"`
		Price       *models.Cents `json:"price"`
		Category    *string       `json:"category"`
		Brand       *string       `json:"brand"`
		Quantity    *int          `json:"quantity"`
		Color       *string       `json:"color"`
		Tags        []string      `json:"tags"`
		Images      []string      `json:"images"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if input.Title != nil {
		set["title"] = *input.Title
		set["slug"] = slug.Make(*input.Title)
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.Price != nil {
		set["price"] = *input.Price
	}
	if input.Category != nil {
		set["category"] = *input.Category
	}
	if input.Brand != nil {
		set["brand"] = *input.Brand
	}
	if input.Quantity != nil {
		set["quantity"] = *input.Quantity
	}
	if input.Color != nil {
		set["color"] = *input.Color
	}
	if input.Tags != nil {
		set["tags"] = input.Tags
	}
	if input.Images != nil {
		set["images"] = input.Images
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var updated models.Product
	err = database.MongoDB.Collection("products").FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	services.IndexProduct(updated)

	c.JSON(http.StatusOK, updated)
}

// DELETE /api/product/:id (admin)
func DeleteProduct(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var deleted models.Product
	err = database.MongoDB.Collection("products").
		FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&deleted)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "fail", "error": "Produit introuvable"})
		return
	}

	services.RemoveProduct(oid.Hex())

	c.JSON(http.StatusOK, deleted)
}
