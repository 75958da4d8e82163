package config // package config loads application configuration from environment variables

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the database connection settings consumed by the CLI.
// Every field maps to one environment variable; values fall back to the
// docker-compose defaults so the tool works out of the box in dev.
type Config struct {
	DBHost string // database host address (DB_HOST)
	DBPort string // database port number (DB_PORT)
	DBName string // database name (DB_DATABASE)
	DBUser string // database username (DB_USER)
	DBPass string // database password (DB_PASSWORD, empty allowed)
}

// Load reads a .env file when present and resolves the configuration.
// A missing .env is not an error: plain environment variables win anyway.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		DBHost: getEnv("DB_HOST", "mysql"),
		DBPort: getEnv("DB_PORT", "3306"),
		DBName: getEnv("DB_DATABASE", "hotel_booking"),
		DBUser: getEnv("DB_USER", "hotel_user"),
		DBPass: os.Getenv("DB_PASSWORD"),
	}
}

// getEnv retrieves an environment variable or returns the given default
// when the variable is unset or empty.
func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
