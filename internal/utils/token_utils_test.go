package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("user-1", true, "secret", time.Hour, "portal")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, "secret")

	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "portal", claims.Issuer)
	assert.True(t, claims.IsStaff)
}

func TestParseAndValidateJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT("user-1", false, "secret", time.Hour, "portal")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "other")

	assert.ErrorIs(t, err, jwt.ErrSignatureInvalid)
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	token, err := GenerateJWT("user-1", false, "secret", -time.Minute, "portal")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "secret")

	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
