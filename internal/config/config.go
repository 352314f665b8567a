package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	ServerPort    int
	DatabasePath  string
	JWTSecret     []byte
	TokenValidity time.Duration
	Environment   string
}

// Load reads configuration from a .env file (if present) and the environment,
// falling back to development defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT %q: %w", portStr, err)
	}

	hoursStr := getEnv("TOKEN_VALIDITY_HOURS", "24")
	hours, err := strconv.Atoi(hoursStr)
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_VALIDITY_HOURS %q: %w", hoursStr, err)
	}

	env := getEnv("APP_ENV", "development")
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		if env == "production" {
			return nil, errors.New("JWT_SECRET must be set in production")
		}
		secret = "zemedicai_secret_key"
	}

	return &Config{
		ServerPort:    port,
		DatabasePath:  getEnv("DATABASE_PATH", "./zemedic.db"),
		JWTSecret:     []byte(secret),
		TokenValidity: time.Duration(hours) * time.Hour,
		Environment:   env,
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
