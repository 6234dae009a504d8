package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Port:       "5000",
		Env:        "development",
		JWTSecret:  "secure-secret-at-least-32-chars-long",
		DBDriver:   DriverPostgres,
		DBPassword: "secure-password",
		DBSSLMode:  "require",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		expectError bool
	}{
		{"Valid development config", func(c *Config) {}, false},
		{"Missing port", func(c *Config) { c.Port = "" }, true},
		{"Missing JWT secret", func(c *Config) { c.JWTSecret = "" }, true},
		{"Unknown driver", func(c *Config) { c.DBDriver = "cassandra" }, true},
		{"SQLite driver", func(c *Config) { c.DBDriver = DriverSQLite }, false},
		{"Mongo driver", func(c *Config) { c.DBDriver = DriverMongo }, false},
		{"Production with default secret", func(c *Config) {
			c.Env = "production"
			c.JWTSecret = defaultJWTSecret
		}, true},
		{"Production with short secret", func(c *Config) {
			c.Env = "production"
			c.JWTSecret = "short"
		}, true},
		{"Production with default DB password", func(c *Config) {
			c.Env = "prod"
			c.DBPassword = "password"
		}, true},
		{"Production on mongo ignores DB password", func(c *Config) {
			c.Env = "production"
			c.DBDriver = DriverMongo
			c.DBPassword = ""
		}, false},
		{"Production with strong settings", func(c *Config) { c.Env = "production" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "  SQLite ")
	t.Setenv("SQLITE_PATH", ":memory:")
	t.Setenv("JWT_TTL_HOURS", "2")

	c, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", c.Port)
	assert.Equal(t, DriverSQLite, c.DBDriver)
	assert.Equal(t, ":memory:", c.SQLitePath)
	assert.Equal(t, 2*time.Hour, c.JWTTTL())
	assert.Equal(t, "https://itunes.apple.com/search", c.MusicSearchURL)
}

func TestLoadConfig_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("DB_DRIVER", "oracle")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestConfig_Durations(t *testing.T) {
	c := &Config{}
	assert.Equal(t, 168*time.Hour, c.JWTTTL())
	assert.Equal(t, 5*time.Second, c.MusicTimeout())

	c.MusicSearchTimeout = 2
	assert.Equal(t, 2*time.Second, c.MusicTimeout())
}
