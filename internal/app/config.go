package app

import (
	"errors"
	"os"
	"strconv"
	"time"
)

type Config struct {
	AccessTokenSecret  string // Required: HS256 secret for access tokens
	RefreshTokenSecret string // Required: HS256 secret for refresh tokens, independent of the access secret

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./gatehouse.db)
	CORSOrigin          string        // Optional: allowed cross-site origin; empty disables CORS
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 5000)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

var ErrMissingSecrets = errors.New("app: ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET must be set")

func LoadConfig() Config {
	return Config{
		AccessTokenSecret:   os.Getenv("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret:  os.Getenv("REFRESH_TOKEN_SECRET"),
		DatabaseFile:        getEnvOrDefault("DATABASE_FILE", "gatehouse.db"),
		CORSOrigin:          os.Getenv("CORS_ORIGIN"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 5000),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

// Validate rejects configurations the service cannot start with. A missing
// signing secret is a fatal configuration error, never a runtime one.
func (c Config) Validate() error {
	if c.AccessTokenSecret == "" || c.RefreshTokenSecret == "" {
		return ErrMissingSecrets
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
