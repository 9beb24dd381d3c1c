package user

import (
	"context"
	"net/http"
	"time"

	"velora_back_end/internal/cache"
	"velora_back_end/internal/database"
	"velora_back_end/internal/models"
	"velora_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// ================== INSCRIPTION / CONNEXION ==================

func Register(c *gin.Context) {
	var input struct {
		Firstname string `json:"firstname" binding:"required"`
		Lastname  string `json:"lastname" binding:"required"`
		Email     string `json:"email" binding:"required"`
		Mobile    string `json:"mobile" binding:"required"`
		Password  string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	users := database.MongoDB.Collection("users")

	// email déjà pris ?
	var existing models.User
	if err := users.FindOne(ctx, bson.M{"email": input.Email}).Decode(&existing); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Un compte avec cet email existe déjà"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création utilisateur"})
		return
	}

	now := time.Now()
	user := models.User{
		Firstname: input.Firstname,
		Lastname:  input.Lastname,
		Email:     input.Email,
		Mobile:    input.Mobile,
		Password:  string(hashedPassword),
		Role:      "user",
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := users.InsertOne(ctx, user)
	if err != nil {
		// l'index unique couvre la course entre le FindOne et l'InsertOne
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email ou numéro de mobile déjà utilisé"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création utilisateur"})
		return
	}

	user.ID = result.InsertedID.(primitive.ObjectID)
	c.JSON(http.StatusCreated, user)
}

func Login(c *gin.Context) {
	login(c, false)
}

// AdminLogin refuse d'emblée les comptes non-admin.
func AdminLogin(c *gin.Context) {
	login(c, true)
}

func login(c *gin.Context, adminOnly bool) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
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
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou mot de passe incorrect"})
		return
	}

	if adminOnly && user.Role != "admin" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Accès réservé aux administrateurs"})
		return
	}

	// cache Redis pour éviter bcrypt à chaque login
	if !cache.IsPasswordCached(input.Email, input.Password) {
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou mot de passe incorrect"})
			return
		}
		cache.CachePassword(input.Email, input.Password)
	}

	accessToken, err := utils.GenerateAccessToken(user.ID.Hex())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}

	// un seul refresh token actif par utilisateur : le précédent est écrasé
	refreshToken, err := utils.GenerateRefreshToken(user.ID.Hex())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}
	if _, err := users.UpdateOne(ctx, bson.M{"_id": user.ID},
		bson.M{"$set": bson.M{"refreshToken": refreshToken, "updatedAt": time.Now()}}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde refresh token"})
		return
	}

	setRefreshCookie(c, refreshToken)

	c.JSON(http.StatusOK, gin.H{
		"_id":       user.ID.Hex(),
		"firstname": user.Firstname,
		"lastname":  user.Lastname,
		"email":     user.Email,
		"mobile":    user.Mobile,
		"token":     accessToken,
	})
}

// ================== REFRESH / LOGOUT ==================

// RefreshToken échange le cookie refreshToken contre un nouveau token d'accès.
func RefreshToken(c *gin.Context) {
	cookieToken, err := c.Cookie("refreshToken")
	if err != nil || cookieToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Pas de refresh token dans les cookies"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	err = database.MongoDB.Collection("users").
		FindOne(ctx, bson.M{"refreshToken": cookieToken}).Decode(&user)
	if err != nil {
		// token déjà tourné ou logout : personne ne le détient
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token inconnu"})
		return
	}

	userID, err := utils.VerifyToken(cookieToken)
	if err != nil || userID != user.ID.Hex() {
		// signature cassée ou identifiant qui ne correspond pas au détenteur :
		// réutilisation ou falsification
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token invalide"})
		return
	}

	accessToken, err := utils.GenerateAccessToken(user.ID.Hex())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": accessToken})
}

// Logout révoque le refresh token côté serveur et efface le cookie.
// Idempotent : 204 dans tous les cas.
func Logout(c *gin.Context) {
	cookieToken, err := c.Cookie("refreshToken")
	if err != nil || cookieToken == "" {
		clearRefreshCookie(c)
		c.Status(http.StatusNoContent)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	database.MongoDB.Collection("users").UpdateOne(ctx,
		bson.M{"refreshToken": cookieToken},
		bson.M{"$set": bson.M{"refreshToken": ""}})

	clearRefreshCookie(c)
	c.Status(http.StatusNoContent)
}

func setRefreshCookie(c *gin.Context, token string) {
	c.SetCookie("refreshToken", token, int(utils.RefreshTokenTTL.Seconds()), "/", "", false, true)
}

func clearRefreshCookie(c *gin.Context) {
	c.SetCookie("refreshToken", "", -1, "/", "", false, true)
}
