package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppName     string
	DatabaseURL string
	ServerPort  string
	CORSOrigins []string
}

func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env file")
	}

	return &Config{
		AppName:     getEnv("APP_NAME", "HRMS Lite"),
		DatabaseURL: getEnv("DATABASE_URL", "postgresql://postgres@localhost:5432/hrms_lite"),
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS",
			"http://localhost:5173,http://localhost:5174,http://localhost:5175,http://localhost:3000")),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
