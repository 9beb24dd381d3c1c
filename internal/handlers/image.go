package handlers

import (
	"context"
	"net/http"
	"time"

	"velora_back_end/internal/database"
	"velora_back_end/internal/models"
	"velora_back_end/internal/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ================== UPLOAD D'IMAGES (ADMIN) ==================

// 🖼️ POST /api/upload — multipart, champ "images" (plusieurs fichiers)
func UploadImages(c *gin.Context) {
	userID := c.GetString("user_id")
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formulaire multipart invalide"})
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Aucun fichier reçu"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	imagesCol := database.MongoDB.Collection("images")

	uploaded := []models.ProductImage{}
	for _, fileHeader := range files {
		objectName, url, err := services.UploadImage(ctx, fileHeader)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur upload MinIO", "details": err.Error()})
			return
		}

		img := models.ProductImage{
			URL:        url,
			ObjectName: objectName,
			FileName:   fileHeader.Filename,
			UploadedAt: time.Now(),
			UserID:     oid,
		}
		result, err := imagesCol.InsertOne(ctx, img)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde métadonnées image"})
			return
		}
		img.ID = result.InsertedID.(primitive.ObjectID)
		uploaded = append(uploaded, img)
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": gin.H{"images": uploaded}})
}

// ❌ DELETE /api/upload/:id
func DeleteImage(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID image invalide"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var img models.ProductImage
	err = database.MongoDB.Collection("images").
		FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&img)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image introuvable"})
		return
	}

	if err := services.DeleteImage(ctx, img.ObjectName); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression MinIO"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Image supprimée"})
}
