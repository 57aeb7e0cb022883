package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	APIKey         string
	DBPath         string
	AllowedOrigins []string
}

// Load reads configuration from the environment, with a .env file as an
// optional source. API_KEY has no default: the shared secret must be set
// explicitly.
func Load() (*Config, error) {
	// .env is optional, real environment variables take precedence
	_ = godotenv.Load()

	apiKey := os.Getenv("API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("API_KEY must be set")
	}

	return &Config{
		Port:           getEnv("PORT", "5000"),
		APIKey:         apiKey,
		DBPath:         getEnv("DB_PATH", "./tasks.db"),
		AllowedOrigins: splitOrigins(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
