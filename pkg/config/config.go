package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// StorageBackend selects which persistence adapter set the app runs on.
type StorageBackend string

const (
	// BackendLocal uses the embedded sqlite database plus the in-memory
	// transaction ledger. Suitable for offline/demo use.
	BackendLocal StorageBackend = "local"
	// BackendRemote uses the hosted PostgreSQL persistence service.
	BackendRemote StorageBackend = "remote"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	Backend     StorageBackend
	DatabaseURL string // remote backend (PGSQL_URL)
	SQLitePath  string // local backend database file

	RedisAddr string // optional reporting cache; empty disables caching

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// DeleteItemsWithoutImages preserves the legacy reverse-cascade behavior:
	// when an image deletion empties an item's image list, the item itself is
	// deleted. Off by default; the item is retained with an empty list.
	DeleteItemsWithoutImages bool

	RateLimit string // ulule/limiter format, e.g. "100-M"
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("STORAGE_BACKEND", string(BackendLocal))
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("SQLITE_PATH", "stocknest.db")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("JWT_ISSUER", "stocknest-app")
	viper.SetDefault("DELETE_ITEMS_WITHOUT_IMAGES", false)
	viper.SetDefault("RATE_LIMIT", "300-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	backend := StorageBackend(viper.GetString("STORAGE_BACKEND"))
	if backend != BackendLocal && backend != BackendRemote {
		return nil, fmt.Errorf("invalid STORAGE_BACKEND %q (want %q or %q)", backend, BackendLocal, BackendRemote)
	}
	cfg.Backend = backend

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.Backend == BackendRemote && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("STORAGE_BACKEND=remote requires PGSQL_URL to be set")
	}

	cfg.SQLitePath = viper.GetString("SQLITE_PATH")
	cfg.RedisAddr = viper.GetString("REDIS_ADDR")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 24 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION (%q). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.DeleteItemsWithoutImages = viper.GetBool("DELETE_ITEMS_WITHOUT_IMAGES")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
