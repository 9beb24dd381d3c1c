package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundtrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")

	token, err := GenerateAccessToken("64f1c0ffee0000000000abcd")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "64f1c0ffee0000000000abcd", userID)
}

func TestRefreshTokenRoundtrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")

	token, err := GenerateRefreshToken("user-42")
	require.NoError(t, err)

	userID, err := VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)
}

func TestVerifyTokenExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")

	token, err := signToken("user-42", -time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	token, err := GenerateAccessToken("user-42")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "autre_secret")
	_, err = VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")

	_, err := VerifyToken("pas-un-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenMissingUserID(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")

	claims := jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test_secret"))
	require.NoError(t, err)

	_, err = VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
