package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"roster/internal/auth"
	apperrors "roster/internal/errors"
	"roster/internal/model"
)

func TestAuthService_Login(t *testing.T) {
	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository, *MockTokenStore)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "test@example.com",
			password: "password123",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					ID:           7,
					Email:        "test@example.com",
					PasswordHash: hash,
					Role:         model.RoleOfficer,
					Status:       model.UserStatusActive,
				}, nil)
				mToken.On("StoreRefreshToken", mock.Anything, mock.Anything, uint(7), auth.RefreshTokenExpiry).Return(nil)
			},
		},
		{
			name:     "user not found",
			email:    "notfound@example.com",
			password: "password123",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByEmail", mock.Anything, "notfound@example.com").Return(nil, apperrors.ErrUserNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "test@example.com",
			password: "wrong",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{ID: 7, PasswordHash: hash}, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "inactive user",
			email:    "test@example.com",
			password: "password123",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					ID: 7, PasswordHash: hash, Status: model.UserStatusInactive,
				}, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(MockUserRepository)
			mToken := new(MockTokenStore)
			tt.setupMock(mRepo, mToken)

			svc := NewAuthService(mRepo, auth.NewJWTService("test-secret"), mToken)
			accessToken, refreshToken, user, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, accessToken)
				assert.Empty(t, refreshToken)
				assert.Nil(t, user)
				mToken.AssertNotCalled(t, "StoreRefreshToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, accessToken)
			assert.NotEmpty(t, refreshToken)
			assert.Equal(t, tt.email, user.Email)
			mRepo.AssertExpectations(t)
			mToken.AssertExpectations(t)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	jwtSvc := auth.NewJWTService("test-secret")
	user := &model.User{ID: 7, Email: "test@example.com", Role: model.RoleZoneChief}
	tokenID, refresh, err := jwtSvc.GenerateRefreshToken(identityOf(user))
	require.NoError(t, err)

	t.Run("stored token", func(t *testing.T) {
		mRepo := new(MockUserRepository)
		mToken := new(MockTokenStore)
		mToken.On("GetRefreshToken", mock.Anything, tokenID).Return(uint(7), nil)
		mRepo.On("FindByID", mock.Anything, uint(7)).Return(user, nil)

		access, err := NewAuthService(mRepo, jwtSvc, mToken).RefreshToken(context.Background(), refresh)
		require.NoError(t, err)

		claims, err := jwtSvc.ValidateToken(access)
		require.NoError(t, err)
		assert.Equal(t, auth.TokenTypeAccess, claims.Type)
		assert.Equal(t, "ZONE_CHIEF", claims.Role)
	})

	t.Run("revoked token", func(t *testing.T) {
		mToken := new(MockTokenStore)
		mToken.On("GetRefreshToken", mock.Anything, tokenID).Return(uint(0), errors.New("refresh token not found"))

		_, err := NewAuthService(new(MockUserRepository), jwtSvc, mToken).RefreshToken(context.Background(), refresh)
		assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
	})

	t.Run("access token presented", func(t *testing.T) {
		access, err := jwtSvc.GenerateAccessToken(identityOf(user))
		require.NoError(t, err)

		_, err = NewAuthService(new(MockUserRepository), jwtSvc, new(MockTokenStore)).RefreshToken(context.Background(), access)
		assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	jwtSvc := auth.NewJWTService("test-secret")
	id := auth.Identity{UserID: 7}
	tokenID, refresh, err := jwtSvc.GenerateRefreshToken(id)
	require.NoError(t, err)
	access, err := jwtSvc.GenerateAccessToken(id)
	require.NoError(t, err)
	claims, err := jwtSvc.ValidateToken(access)
	require.NoError(t, err)

	mToken := new(MockTokenStore)
	mToken.On("DeleteRefreshToken", mock.Anything, tokenID).Return(nil)
	mToken.On("BlacklistAccessToken", mock.Anything, claims.ID, mock.MatchedBy(func(ttl time.Duration) bool {
		return ttl > 0 && ttl <= auth.AccessTokenExpiry
	})).Return(nil)

	err = NewAuthService(new(MockUserRepository), jwtSvc, mToken).Logout(context.Background(), refresh, claims)
	require.NoError(t, err)
	mToken.AssertExpectations(t)
}
