package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"CELUSHOP_APP_NAME":          os.Getenv("CELUSHOP_APP_NAME"),
		"CELUSHOP_APP_ENV":           os.Getenv("CELUSHOP_APP_ENV"),
		"CELUSHOP_APP_PORT":          os.Getenv("CELUSHOP_APP_PORT"),
		"CELUSHOP_DATABASE_HOST":     os.Getenv("CELUSHOP_DATABASE_HOST"),
		"CELUSHOP_DATABASE_PASSWORD": os.Getenv("CELUSHOP_DATABASE_PASSWORD"),
		"CELUSHOP_DATABASE_SSLMODE":  os.Getenv("CELUSHOP_DATABASE_SSLMODE"),
		"CELUSHOP_LOG_LEVEL":         os.Getenv("CELUSHOP_LOG_LEVEL"),
		"CELUSHOP_REDIS_ENABLED":     os.Getenv("CELUSHOP_REDIS_ENABLED"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "celushop-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "celushop", cfg.Database.DBName)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "console", cfg.Log.Format)
		assert.Equal(t, 24*time.Hour, cfg.Idempotency.TTL)
		assert.False(t, cfg.Redis.Enabled)
	})

	t.Run("environment variables override defaults", func(t *testing.T) {
		clearEnv()
		os.Setenv("CELUSHOP_APP_PORT", "9090")
		os.Setenv("CELUSHOP_DATABASE_HOST", "db.internal")
		os.Setenv("CELUSHOP_LOG_LEVEL", "debug")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.App.Port)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("production requires password and ssl", func(t *testing.T) {
		clearEnv()
		os.Setenv("CELUSHOP_APP_ENV", "production")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.password")
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss/word",
		DBName:   "celushop",
		SSLMode:  "disable",
	}

	dsn := d.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "localhost:5432")
	assert.Contains(t, dsn, "sslmode=disable")
	// Special characters in the password must be escaped.
	assert.NotContains(t, dsn, "p@ss/word")
}

func TestRedisConfig_Addr(t *testing.T) {
	r := RedisConfig{Host: "cache.internal", Port: 6380}
	assert.Equal(t, "cache.internal:6380", r.Addr())
}

func TestConfig_Taxonomy(t *testing.T) {
	// An empty catalog still yields a usable (empty) taxonomy.
	tax := (&Config{}).Taxonomy()
	require.NotNil(t, tax)
	assert.Empty(t, tax.Brands())
}
