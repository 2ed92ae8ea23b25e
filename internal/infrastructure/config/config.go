package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file if it exists (ignores error if not found)
	godotenv.Load()
}

type Config struct {
	Port          string
	FrontendURL   string
	JWTSecret     string
	DatabasePath  string
	AssetsPath    string
	MaxUploadSize int64
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "3000"),
		FrontendURL:   getEnv("FRONTEND_URL", "*"),
		JWTSecret:     getEnv("JWT_SECRET", "pokedex-dev-secret"),
		DatabasePath:  getEnv("DATABASE_PATH", "./data/pokedex.db"),
		AssetsPath:    getEnv("ASSETS_PATH", "./assets"),
		MaxUploadSize: getEnvAsInt64("MAX_UPLOAD_SIZE", 10<<20), // 10MB default
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}
