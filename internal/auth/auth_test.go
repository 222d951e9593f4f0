package auth

import (
	"context"
	"encoding/hex"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "roster/internal/errors"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)

	assert.True(t, VerifyPassword(hash, "s3cret!"))
	assert.False(t, VerifyPassword(hash, "S3cret!"))
	assert.False(t, VerifyPassword("not-a-hash", "s3cret!"))
}

func TestHashPassword_Length(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"72 ascii bytes", strings.Repeat("a", 72), nil},
		{"73 ascii bytes", strings.Repeat("a", 73), apperrors.ErrPasswordTooLong},
		{"36 two-byte runes", strings.Repeat("é", 36), nil},
		{"40 two-byte runes", strings.Repeat("é", 40), apperrors.ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, hash)
				return
			}
			require.NoError(t, err)
			assert.True(t, VerifyPassword(hash, tt.password))
		})
	}
}

func TestHashPassword_Salted(t *testing.T) {
	a, err := HashPassword("same")
	require.NoError(t, err)
	b, err := HashPassword("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestNewResetToken(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		tok, err := NewResetToken()
		require.NoError(t, err)
		assert.Len(t, tok, ResetTokenBytes*2)
		_, err = hex.DecodeString(tok)
		assert.NoError(t, err)

		_, dup := seen[tok]
		assert.False(t, dup)
		seen[tok] = struct{}{}
	}
}

func TestResetLink(t *testing.T) {
	assert.Equal(t, "https://app.example.com/reset-password/abc", ResetLink("https://app.example.com", "abc"))
}

func TestJWTService_AccessToken(t *testing.T) {
	svc := NewJWTService("test-secret")
	id := Identity{UserID: 3, Email: "a@b.c", Role: "OFFICER"}

	token, err := svc.GenerateAccessToken(id)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(3), claims.UserID)
	assert.Equal(t, "a@b.c", claims.Email)
	assert.Equal(t, "OFFICER", claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.Type)
	assert.NotEmpty(t, claims.ID)

	_, err = svc.ValidateRefreshToken(token)
	assert.Error(t, err)
}

func TestJWTService_RefreshToken(t *testing.T) {
	svc := NewJWTService("test-secret")

	tokenID, token, err := svc.GenerateRefreshToken(Identity{UserID: 9, IsAdmin: true})
	require.NoError(t, err)

	claims, err := svc.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, tokenID, claims.ID)
	assert.True(t, claims.IsAdmin)
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	token, err := NewJWTService("one").GenerateAccessToken(Identity{UserID: 1})
	require.NoError(t, err)

	_, err = NewJWTService("two").ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpired(t *testing.T) {
	svc := NewJWTService("test-secret")
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := svc.GenerateAccessToken(Identity{UserID: 1})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RemainingTTL(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := NewJWTService("test-secret")
	svc.now = func() time.Time { return now }

	claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(10 * time.Minute))}}
	assert.Equal(t, 10*time.Minute, svc.RemainingTTL(claims))

	claims.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Minute))
	assert.Equal(t, time.Duration(0), svc.RemainingTTL(claims))

	assert.Equal(t, time.Duration(0), svc.RemainingTTL(&Claims{}))
}

func TestTokenStore_FailsSafeWithoutRedis(t *testing.T) {
	store := NewTokenStore(nil)
	ctx := context.Background()

	require.NoError(t, store.StoreRefreshToken(ctx, "id", 1, time.Minute))
	_, err := store.GetRefreshToken(ctx, "id")
	assert.Error(t, err)

	require.NoError(t, store.BlacklistAccessToken(ctx, "jti", time.Minute))
	blacklisted, err := store.IsAccessTokenBlacklisted(ctx, "jti")
	require.NoError(t, err)
	assert.False(t, blacklisted)
}
