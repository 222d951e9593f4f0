package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	apperrors "roster/internal/errors"
)

const bcryptCost = 10

// MaxPasswordBytes is the longest input bcrypt accepts. Validation tags count
// runes, so multi-byte passwords are checked again here.
const MaxPasswordBytes = 72

// HashPassword returns a salted bcrypt digest of plaintext.
func HashPassword(plaintext string) (string, error) {
	if len(plaintext) > MaxPasswordBytes {
		return "", apperrors.ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches digest.
func VerifyPassword(digest, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
