// Package config handles configuration loading for the booking backend.
package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the service.
type Config struct {
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	RedisHost      string
	RedisPort      string
	RedisPassword  string
	JWTSecret      string
	JWTExpiry      time.Duration
	Port           string
	Environment    string
	AllowedOrigins []string
	MigrationsPath string
}

// Load reads configuration from environment variables. A .env file in the
// working directory is loaded first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBHost:         getEnvRequired("DB_HOST"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnvRequired("DB_USER"),
		DBPassword:     getEnvRequired("DB_PASSWORD"),
		DBName:         getEnvRequired("DB_NAME"),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
		RedisHost:      getEnv("REDIS_HOST", ""),
		RedisPort:      getEnv("REDIS_PORT", "6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		JWTSecret:      getEnvRequired("JWT_SECRET"),
		JWTExpiry:      parseDuration(getEnv("JWT_EXPIRY", "12h"), 12*time.Hour),
		Port:           getEnv("PORT", "4000"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "")),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations"),
	}
}

// DatabaseURL builds a postgres connection URL usable by both gorm and the
// migration runner.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func getEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("required environment variable %s is not set", key)
	}
	return value
}

func parseDuration(value string, defaultValue time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
