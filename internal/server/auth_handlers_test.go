package server

import (
	"net/http"
	"testing"

	"syahi/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t, nil, nil, nil)

	registered := env.register(t, "mira")
	assert.Equal(t, "mira", registered.Username)
	assert.Equal(t, "mira@example.com", registered.Email)
	assert.NotEmpty(t, registered.ID)

	tests := []struct {
		name           string
		path           string
		body           map[string]string
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "duplicate email",
			path:           "/api/auth/register",
			body:           map[string]string{"username": "other", "email": "MIRA@example.com", "password": "password123"},
			expectedStatus: http.StatusConflict,
			expectedCode:   models.CodeConflict,
		},
		{
			name:           "duplicate username",
			path:           "/api/auth/register",
			body:           map[string]string{"username": "mira", "email": "new@example.com", "password": "password123"},
			expectedStatus: http.StatusConflict,
			expectedCode:   models.CodeConflict,
		},
		{
			name:           "short password",
			path:           "/api/auth/register",
			body:           map[string]string{"username": "newbie", "email": "newbie@example.com", "password": "123"},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   models.CodeValidation,
		},
		{
			name:           "wrong password",
			path:           "/api/auth/login",
			body:           map[string]string{"email": "mira@example.com", "password": "nope-nope"},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   models.CodeUnauthenticated,
		},
		{
			name:           "unknown email",
			path:           "/api/auth/login",
			body:           map[string]string{"email": "ghost@example.com", "password": "password123"},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   models.CodeUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out models.ErrorResponse
			status := env.do(t, http.MethodPost, tt.path, "", tt.body, &out)
			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedCode, out.Code)
			assert.NotEmpty(t, out.Message)
		})
	}

	var login models.AuthResponse
	status := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "Mira@Example.com",
		"password": "password123",
	}, &login)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, registered.ID, login.ID)
	assert.NotEmpty(t, login.Token)
}

func TestMe(t *testing.T) {
	env := newTestEnv(t, nil, nil, nil)
	user := env.register(t, "mira")

	var me map[string]any
	status := env.do(t, http.MethodGet, "/api/auth/me", user.Token, nil, &me)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, user.ID, me["_id"])
	assert.Equal(t, "mira", me["username"])
	assert.NotContains(t, me, "password")
}

func TestAuthRequired(t *testing.T) {
	env := newTestEnv(t, nil, nil, nil)
	user := env.register(t, "mira")

	tests := []struct {
		name  string
		token string
	}{
		{name: "missing token", token: ""},
		{name: "malformed token", token: "not-a-jwt"},
		{name: "tampered token", token: user.Token + "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out models.ErrorResponse
			status := env.do(t, http.MethodPost, "/api/couplets", tt.token,
				map[string]string{"content": "never stored"}, &out)
			assert.Equal(t, http.StatusUnauthorized, status)
			assert.Equal(t, models.CodeUnauthenticated, out.Code)
		})
	}

	var couplets []map[string]any
	env.do(t, http.MethodGet, "/api/couplets/mine", user.Token, nil, &couplets)
	assert.Empty(t, couplets)
}

func TestLogoutRevokesToken(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	env := newTestEnv(t, nil, rdb, nil)
	user := env.register(t, "mira")

	status := env.do(t, http.MethodGet, "/api/auth/me", user.Token, nil, nil)
	require.Equal(t, http.StatusOK, status)

	var out models.DeleteConfirmation
	status = env.do(t, http.MethodPost, "/api/auth/logout", user.Token, nil, &out)
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, out.Message)

	var errOut models.ErrorResponse
	status = env.do(t, http.MethodGet, "/api/auth/me", user.Token, nil, &errOut)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Token has been revoked", errOut.Message)
}
