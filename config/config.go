package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	ProfileDir  string // directory holding company/jobs/scoring/vocabulary/questions YAML
	FrontendURL string
	// Upload configuration
	MaxUploadBytes int64
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		ProfileDir:     getEnv("PROFILE_DIR", ""),
		FrontendURL:    strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_BYTES", 16*1024*1024)), // 16MB
	}

	if cfg.ProfileDir == "" {
		log.Println("WARNING: PROFILE_DIR is not set. Using compiled-in company/job/question defaults.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
