package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"velora_back_end/internal/database"
)

const (
	AuthCacheTTL = 15 * time.Minute // Cache les vérifications de mot de passe pendant 15 min
)

func authCacheKey(email, password string) string {
	passwordHash := sha256.Sum256([]byte(password))
	return "auth:" + email + ":" + hex.EncodeToString(passwordHash[:])
}

// IsPasswordCached vérifie si cette combinaison email/mot de passe a déjà été
// validée récemment, pour éviter de refaire bcrypt.CompareHashAndPassword à
// chaque login.
func IsPasswordCached(email, password string) bool {
	ctx := context.Background()
	result, err := database.Redis.Get(ctx, authCacheKey(email, password)).Result()
	return err == nil && result == "valid"
}

// CachePassword met en cache une vérification de mot de passe réussie.
func CachePassword(email, password string) {
	ctx := context.Background()
	database.Redis.Set(ctx, authCacheKey(email, password), "valid", AuthCacheTTL)
}

// InvalidateAuthCache invalide le cache d'authentification pour un email
// (appelé après un changement ou une réinitialisation de mot de passe).
func InvalidateAuthCache(email string) {
	ctx := context.Background()

	pattern := "auth:" + email + ":*"
	iter := database.Redis.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		database.Redis.Del(ctx, iter.Val())
	}
}
