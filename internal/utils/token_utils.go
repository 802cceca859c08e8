package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// PortalClaims are the JWT claims issued to portal users.
type PortalClaims struct {
	IsStaff bool `json:"staff,omitempty"`
	jwt.RegisteredClaims
}

// GenerateJWT generates a new JWT token with the given parameters.
func GenerateJWT(userID string, isStaff bool, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := PortalClaims{
		IsStaff: isStaff,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidateJWT parses a JWT token string, validates its signature and standard claims.
// It returns the PortalClaims if the token is valid, or an error otherwise.
func ParseAndValidateJWT(tokenString string, secretKey string) (*PortalClaims, error) {
	claims := &PortalClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		return nil, err // This will include errors like token expired, signature invalid, etc.
	}

	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}
