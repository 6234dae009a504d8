package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"syahi/internal/database"
	"syahi/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupSQLiteStore returns a Store over a fresh in-memory sqlite database.
func setupSQLiteStore(t *testing.T) (*Store, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), database.GormConfig())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return NewGormStore(db), db
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	return gormDB, mock
}

// setupMongoStore connects to MONGODB_URI and skips the test when it is unset.
func setupMongoStore(t *testing.T) *Store {
	t.Helper()

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		t.Skip("MONGODB_URI not set; skipping MongoDB repository tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbName := "syahi_test_" + models.NewID()[:8]
	mdb, client, err := database.ConnectMongo(ctx, uri, dbName)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = mdb.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})
	return NewMongoStore(mdb, client)
}

func seedUser(t *testing.T, store *Store, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: username + "@example.com", Password: "hash"}
	require.NoError(t, store.Users.Create(context.Background(), user))
	return user
}

