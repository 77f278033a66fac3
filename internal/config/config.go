package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config is the API service configuration, read once at startup. An empty
// WebhookURL disables order notifications.
type Config struct {
	Port          string
	AllowedOrigin string
	WebhookURL    string
	WebhookSecret string
}

// SiteConfig is the static frontend server configuration.
type SiteConfig struct {
	Port      string
	StaticDir string
	APIURL    string
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:          getEnv("PORT", "3001"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "*"),
		WebhookURL:    os.Getenv("WEBHOOK_URL"),
		WebhookSecret: os.Getenv("WEBHOOK_SECRET"),
	}
}

func LoadSite() SiteConfig {
	_ = godotenv.Load()

	return SiteConfig{
		Port:      getEnv("PORT", "3000"),
		StaticDir: getEnv("STATIC_DIR", "public"),
		APIURL:    getEnv("RESTAURANT_API_URL", "http://localhost:3001"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
