package utils

import (
	"github.com/SscSPs/lease_management_app/internal/apperrors"
	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes is bcrypt's input limit. Request validation counts
// characters, so multi-byte passwords are checked again here.
const maxPasswordBytes = 72

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", apperrors.NewValidationError("password", nil, "must be at most 72 bytes")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether password matches the stored bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
