package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"syahi/internal/config"
	"syahi/internal/database"
	"syahi/internal/models"
	"syahi/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret-key-12345678901234567890123456789012"

type searcherFunc func(ctx context.Context, term string, limit int) ([]models.MusicData, error)

func (f searcherFunc) Search(ctx context.Context, term string, limit int) ([]models.MusicData, error) {
	return f(ctx, term, limit)
}

type testEnv struct {
	server *Server
	app    *fiber.App
	store  *repository.Store
	db     *gorm.DB
}

// newTestEnv builds the full app over an in-memory sqlite store.
// rdb may be nil to run without caching or revocation.
func newTestEnv(t *testing.T, cfg *config.Config, rdb *redis.Client, searcher searcherFunc) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), database.GormConfig())
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.Migrate(db))

	if cfg == nil {
		cfg = &config.Config{Env: "test"}
	}
	cfg.JWTSecret = testSecret

	if searcher == nil {
		searcher = func(context.Context, string, int) ([]models.MusicData, error) {
			return []models.MusicData{}, nil
		}
	}

	store := repository.NewGormStore(db)
	s, err := NewServerWithDeps(cfg, store, rdb, searcher)
	require.NoError(t, err)

	return &testEnv{server: s, app: s.NewApp(), store: store, db: db}
}

// do sends a JSON request and decodes the response body into out when out is non-nil.
func (e *testEnv) do(t *testing.T, method, path, token string, body any, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, out), "body: %s", raw)
	}
	return resp.StatusCode
}

// register creates an account and returns its auth response.
func (e *testEnv) register(t *testing.T, username string) models.AuthResponse {
	t.Helper()

	var out models.AuthResponse
	status := e.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "password123",
	}, &out)
	require.Equal(t, http.StatusCreated, status)
	require.NotEmpty(t, out.Token)
	return out
}
