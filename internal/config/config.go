package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	ServerPort     int
	DatabasePath   string
	JWTSecret      string
	FrontendOrigin string
}

// Load loads configuration from environment variables or sets defaults.
// A .env file in the working directory is read first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	portStr := getEnv("PORT", "3001")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	secret := getEnv("JWT_SECRET_KEY", "")
	if secret == "" {
		return nil, errors.New("JWT_SECRET_KEY must be set")
	}

	return &Config{
		ServerPort:     port,
		DatabasePath:   getEnv("DATABASE_PATH", "./inkwell.db"),
		JWTSecret:      secret,
		FrontendOrigin: getEnv("FRONTEND_ORIGIN", "http://localhost:5173"),
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
