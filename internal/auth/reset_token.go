package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

const (
	// ResetTokenBytes is the entropy of a reset token; hex encoding doubles its length.
	ResetTokenBytes = 32
	// ResetTokenExpiry is how long a reset token can be redeemed.
	ResetTokenExpiry = time.Hour
)

// NewResetToken returns a random opaque token string.
func NewResetToken() (string, error) {
	buf := make([]byte, ResetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// ResetLink builds the link delivered to the user.
func ResetLink(frontendURL, token string) string {
	return frontendURL + "/reset-password/" + token
}
