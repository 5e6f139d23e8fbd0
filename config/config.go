package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	AllowedOrigins []string
	Debug          bool
}

// Load reads configuration from the environment. A local .env file is
// applied first when present, without overriding variables already set.
func Load() Config {
	godotenv.Load()

	cfg := Config{
		Port:  "5000",
		Debug: os.Getenv("DEBUG") == "true",
	}

	if port, exists := os.LookupEnv("PORT"); exists {
		cfg.Port = port
	}

	if origins, exists := os.LookupEnv("ALLOWED_ORIGINS"); exists {
		for _, origin := range strings.Split(origins, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
			}
		}
	}

	return cfg
}
