// Package config loads the service configuration from environment variables.
package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all runtime configuration for the server.
type Config struct {
	Port            string `env:"PORT, default=8080"`
	JWTSecret       string `env:"JWT_SECRET"`
	TokenTTLSeconds int    `env:"TOKEN_TTL_SECONDS, default=3600"`

	DB    DBConfig
	Redis RedisConfig
}

// DBConfig holds the MySQL connection settings.
type DBConfig struct {
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASSWORD"`
	Host     string `env:"DB_HOST, default=localhost"`
	Port     string `env:"DB_PORT, default=3306"`
	Name     string `env:"DB_NAME"`

	// InstanceConnectionName switches the DSN to a Cloud SQL unix socket when set.
	InstanceConnectionName string `env:"INSTANCE_CONNECTION_NAME"`

	RunMigrations bool `env:"RUN_MIGRATIONS"`
}

// RedisConfig holds the Redis connection settings.
type RedisConfig struct {
	Host     string `env:"REDIS_HOST, default=localhost"`
	Port     string `env:"REDIS_PORT, default=6379"`
	Password string `env:"REDIS_PASSWORD"`
}

// Addr returns the host:port address for the Redis client.
func (c RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// TokenTTL returns the configured token lifetime as a Duration.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLSeconds) * time.Second
}

// Load reads the configuration from environment variables.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return &cfg, nil
}
