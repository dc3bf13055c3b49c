package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWT_RoundTrip(t *testing.T) {
	token, err := GenerateJWT(42, "secret")
	require.NoError(t, err)

	claims, err := ParseJWT(token, "secret")
	require.NoError(t, err)
	require.Equal(t, uint(42), claims.UserID)

	// Expiry sits 7 days out, give or take test runtime
	require.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestGenerateJWT_MissingSecret(t *testing.T) {
	_, err := GenerateJWT(1, "")
	require.ErrorIs(t, err, ErrMissingSecret)
}

func TestParseJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT(7, "secret-a")
	require.NoError(t, err)

	_, err = ParseJWT(token, "secret-b")
	require.Error(t, err)
}

func TestParseJWT_Malformed(t *testing.T) {
	_, err := ParseJWT("definitely.not.a.jwt", "secret")
	require.Error(t, err)
}

func TestParseJWT_Expired(t *testing.T) {
	// Hand-roll a token that died an hour ago with the right secret
	claims := Claims{
		UserID: 9,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = ParseJWT(token, "secret")
	require.Error(t, err)
}
