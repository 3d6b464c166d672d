// Package config provides application configuration management.
// It loads configuration from the environment (and an optional .env file) with sensible defaults.
package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Seed      SeedConfig
	LogLevel  string
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// DatabaseConfig holds datastore configuration.
// Driver is either "sqlite" (URL is a file path) or "postgres" (URL is a DSN).
type DatabaseConfig struct {
	Driver          string
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig holds Redis configuration. An empty URL keeps rate limiting in memory.
type RedisConfig struct {
	URL string
}

// JWTConfig holds JWT token and password hashing configuration.
type JWTConfig struct {
	Secret     string
	Expiry     time.Duration
	Issuer     string
	BcryptCost int
}

// RateLimitConfig holds login rate limiting configuration.
// Rate uses the limiter formatted notation, e.g. "5-M" for five requests per minute.
type RateLimitConfig struct {
	Enabled bool
	Rate    string
}

// CORSConfig holds allowed origins for the desktop frontend.
type CORSConfig struct {
	AllowedOrigins []string
}

// SeedConfig controls creation of the default owner accounts and partners.
type SeedConfig struct {
	Enabled       bool
	OwnerPassword string
}

// Load loads configuration from environment variables.
func Load() *Config {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return &Config{
		Server: ServerConfig{
			Host:         v.GetString("SERVER_HOST"),
			Port:         v.GetInt("SERVER_PORT"),
			ReadTimeout:  v.GetDuration("SERVER_READ_TIMEOUT"),
			WriteTimeout: v.GetDuration("SERVER_WRITE_TIMEOUT"),
			Environment:  v.GetString("ENV"),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(v.GetString("DATABASE_DRIVER")),
			URL:             v.GetString("DATABASE_URL"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		},
		Redis: RedisConfig{
			URL: v.GetString("REDIS_URL"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("JWT_SECRET"),
			Expiry: v.GetDuration("JWT_EXPIRY"),
			Issuer: v.GetString("JWT_ISSUER"),

			BcryptCost: v.GetInt("BCRYPT_COST"),
		},
		RateLimit: RateLimitConfig{
			Enabled: v.GetBool("RATE_LIMIT_ENABLED"),
			Rate:    v.GetString("LOGIN_RATE_LIMIT"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Seed: SeedConfig{
			Enabled:       v.GetBool("SEED_DEFAULTS"),
			OwnerPassword: v.GetString("SEED_OWNER_PASSWORD"),
		},
		LogLevel: v.GetString("LOG_LEVEL"),
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_HOST", "127.0.0.1")
	v.SetDefault("SERVER_PORT", 4000)
	v.SetDefault("SERVER_READ_TIMEOUT", 15*time.Second)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15*time.Second)
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("DATABASE_DRIVER", "sqlite")
	v.SetDefault("DATABASE_URL", "data/shop_ledger.db")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 5*time.Minute)

	v.SetDefault("REDIS_URL", "")

	v.SetDefault("JWT_SECRET", "change-me-in-production")
	v.SetDefault("JWT_EXPIRY", 7*24*time.Hour)
	v.SetDefault("JWT_ISSUER", "shop-ledger")
	v.SetDefault("BCRYPT_COST", 12)

	v.SetDefault("RATE_LIMIT_ENABLED", true)
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")

	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")

	v.SetDefault("SEED_DEFAULTS", true)
	v.SetDefault("SEED_OWNER_PASSWORD", "owner123")
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
