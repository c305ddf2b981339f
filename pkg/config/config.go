package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration values
type Config struct {
	Port          string
	DatabaseURL   string
	AllowedOrigin string
	Debug         bool
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Port:          getEnv("PORT", "5001"),
		DatabaseURL:   getEnv("DATABASE_URL", "sqlite://./buwana.db"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
		Debug:         getEnvAsBool("DEBUG", false),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
