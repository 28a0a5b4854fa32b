package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "JWT_SECRET", "TOKEN_TTL_SECONDS",
		"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME",
		"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 3600, cfg.TokenTTLSeconds)
	assert.Equal(t, time.Hour, cfg.TokenTTL())
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, "3306", cfg.DB.Port)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("TOKEN_TTL_SECONDS", "60")
	t.Setenv("DB_USER", "blog")
	t.Setenv("DB_NAME", "blogdb")
	t.Setenv("REDIS_HOST", "redis.internal")
	t.Setenv("REDIS_PORT", "6380")

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, 60*time.Second, cfg.TokenTTL())
	assert.Equal(t, "blog", cfg.DB.User)
	assert.Equal(t, "blogdb", cfg.DB.Name)
	assert.Equal(t, "redis.internal:6380", cfg.Redis.Addr())
}
