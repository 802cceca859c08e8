package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a portal login password with bcrypt. Used by user
// creation and portalctl create-superuser.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPasswordHash reports whether password matches a stored bcrypt hash.
// An empty hash (Google-only accounts) never matches.
func CheckPasswordHash(password, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
