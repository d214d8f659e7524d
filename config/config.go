package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config carries every environment-driven setting. Everything has a
// working default; .env is optional.
type Config struct {
	Port       string
	GinMode    string
	CORSOrigin string
}

// Load reads .env (when present) and the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	return Config{
		Port:       getEnv("PORT", "8080"),
		GinMode:    getEnv("GIN_MODE", "debug"),
		CORSOrigin: getEnv("CORS_ORIGIN", "http://127.0.0.1:5500"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
