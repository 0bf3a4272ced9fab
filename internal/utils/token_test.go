package utils_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betok3jr-art/k3_finance_app/internal/utils"
)

func TestGenerateSessionToken(t *testing.T) {
	secret := "test-secret-key-that-is-long-enough"

	signed, err := utils.GenerateSessionToken("ana", secret, "k3-finance-test", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(signed, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	assert.Equal(t, "ana", claims.Subject)
	assert.Equal(t, "k3-finance-test", claims.Issuer)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestGenerateSessionToken_WrongSecretFailsVerification(t *testing.T) {
	signed, err := utils.GenerateSessionToken("ana", "secret-a", "k3-finance-test", time.Hour)
	require.NoError(t, err)

	_, err = jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret-b"), nil
	})
	assert.Error(t, err)
}
