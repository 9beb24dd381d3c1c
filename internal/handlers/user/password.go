package user

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"net/http"
	"time"

	"velora_back_end/internal/cache"
	"velora_back_end/internal/database"
	"velora_back_end/internal/models"
	"velora_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

const passwordResetTTL = 30 * time.Minute

// PUT /api/user/password — changement de mot de passe (utilisateur connecté)
func UpdatePassword(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(input.Password) < 8 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le mot de passe doit contenir au moins 8 caractères"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	users := database.MongoDB.Collection("users")

	var user models.User
	if err := users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Utilisateur introuvable"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur hash mot de passe"})
		return
	}

	now := time.Now()
	if _, err := users.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": bson.M{
		"password":          string(hashed),
		"passwordChangedAt": now,
		"updatedAt":         now,
	}}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour mot de passe"})
		return
	}

	cache.InvalidateAuthCache(user.Email)
	c.JSON(http.StatusOK, gin.H{"message": "Mot de passe mis à jour"})
}

// POST /api/user/forgot-password-token
// Génère un token de réinitialisation, stocke son empreinte sha256 (30 min)
// et envoie le lien par e-mail.
func ForgotPasswordToken(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	users := database.MongoDB.Collection("users")

	var user models.User
	if err := users.FindOne(ctx, bson.M{"email": input.Email}).Decode(&user); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Aucun compte avec cet email"})
		return
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}
	resetToken := hex.EncodeToString(raw)
	hash := sha256.Sum256([]byte(resetToken))
	expires := time.Now().Add(passwordResetTTL)

	if _, err := users.UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{"$set": bson.M{
		"passwordResetToken":   hex.EncodeToString(hash[:]),
		"passwordResetExpires": expires,
	}}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde token"})
		return
	}

	if err := utils.SendEmail(user.Email, "Réinitialisation de mot de passe",
		utils.PasswordResetHTML(resetToken)); err != nil {
		log.Println("❌ Erreur envoi email de réinitialisation:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur envoi email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email de réinitialisation envoyé"})
}

// PUT /api/user/reset-password/:token
func ResetPassword(c *gin.Context) {
	var input struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash := sha256.Sum256([]byte(c.Param("token")))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	users := database.MongoDB.Collection("users")

	var user models.User
	err := users.FindOne(ctx, bson.M{
		"passwordResetToken":   hex.EncodeToString(hash[:]),
		"passwordResetExpires": bson.M{"$gt": time.Now()},
	}).Decode(&user)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Token expiré ou invalide, recommencez"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur hash mot de passe"})
		return
	}

	now := time.Now()
	if _, err := users.UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{
		"$set": bson.M{
			"password":          string(hashed),
			"passwordChangedAt": now,
			"updatedAt":         now,
		},
		"$unset": bson.M{
			"passwordResetToken":   "",
			"passwordResetExpires": "",
		},
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour mot de passe"})
		return
	}

	cache.InvalidateAuthCache(user.Email)
	c.JSON(http.StatusOK, gin.H{"message": "Mot de passe réinitialisé"})
}
