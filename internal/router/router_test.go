package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roster/internal/auth"
	"roster/internal/model"
)

// memoryTokenStore keeps blacklisted ids in memory.
type memoryTokenStore struct {
	revoked map[string]bool
}

func (m *memoryTokenStore) StoreRefreshToken(context.Context, string, uint, time.Duration) error {
	return nil
}

func (m *memoryTokenStore) GetRefreshToken(context.Context, string) (uint, error) { return 0, nil }

func (m *memoryTokenStore) DeleteRefreshToken(context.Context, string) error { return nil }

func (m *memoryTokenStore) BlacklistAccessToken(_ context.Context, id string, _ time.Duration) error {
	m.revoked[id] = true
	return nil
}

func (m *memoryTokenStore) IsAccessTokenBlacklisted(_ context.Context, id string) (bool, error) {
	return m.revoked[id], nil
}

func newSecuredEcho(jwtSvc *auth.JWTService, store auth.TokenStoreInterface) *echo.Echo {
	e := echo.New()
	g := e.Group("", Authenticate(jwtSvc, store)...)
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	g.GET("/me", ok)
	g.POST("/admin", ok, RequireAdmin())
	return e
}

func call(e *echo.Echo, method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticate(t *testing.T) {
	jwtSvc := auth.NewJWTService("test-secret")
	officer := auth.Identity{UserID: 3, Email: "ana@example.com", Role: string(model.RoleOfficer)}

	access, err := jwtSvc.GenerateAccessToken(officer)
	require.NoError(t, err)
	_, refresh, err := jwtSvc.GenerateRefreshToken(officer)
	require.NoError(t, err)
	foreign, err := auth.NewJWTService("other-secret").GenerateAccessToken(officer)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		status int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"access token", access, http.StatusOK},
		{"refresh token as bearer", refresh, http.StatusUnauthorized},
		{"foreign signature", foreign, http.StatusUnauthorized},
		{"garbage", "not-a-jwt", http.StatusUnauthorized},
	}

	e := newSecuredEcho(jwtSvc, &memoryTokenStore{revoked: map[string]bool{}})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, call(e, http.MethodGet, "/me", tt.token).Code)
		})
	}
}

func TestAuthenticate_RevokedToken(t *testing.T) {
	jwtSvc := auth.NewJWTService("test-secret")
	store := &memoryTokenStore{revoked: map[string]bool{}}

	access, err := jwtSvc.GenerateAccessToken(auth.Identity{UserID: 3})
	require.NoError(t, err)
	claims, err := jwtSvc.ValidateToken(access)
	require.NoError(t, err)

	e := newSecuredEcho(jwtSvc, store)
	require.Equal(t, http.StatusOK, call(e, http.MethodGet, "/me", access).Code)

	require.NoError(t, store.BlacklistAccessToken(context.Background(), claims.ID, time.Minute))
	rec := call(e, http.MethodGet, "/me", access)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_REVOKED")
}

func TestRequireAdmin(t *testing.T) {
	jwtSvc := auth.NewJWTService("test-secret")
	e := newSecuredEcho(jwtSvc, &memoryTokenStore{revoked: map[string]bool{}})

	tests := []struct {
		name   string
		id     auth.Identity
		status int
	}{
		{"officer", auth.Identity{UserID: 3, Role: string(model.RoleOfficer)}, http.StatusForbidden},
		{"zone chief", auth.Identity{UserID: 4, Role: string(model.RoleZoneChief)}, http.StatusForbidden},
		{"admin role", auth.Identity{UserID: 1, Role: string(model.RoleAdmin)}, http.StatusOK},
		{"admin flag", auth.Identity{UserID: 2, Role: string(model.RoleDependencyChief), IsAdmin: true}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwtSvc.GenerateAccessToken(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.status, call(e, http.MethodPost, "/admin", token).Code)
		})
	}
}

func TestCustomValidator(t *testing.T) {
	type req struct {
		Email string `validate:"required,email"`
	}
	v := NewValidator()
	assert.NoError(t, v.Validate(&req{Email: "ana@example.com"}))
	assert.Error(t, v.Validate(&req{Email: "nope"}))
	assert.Error(t, v.Struct(&req{}))
}
