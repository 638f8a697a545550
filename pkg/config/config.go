package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DatabaseURL   string
	GeminiAPIKey  string
	WeatherAPIKey string
	ModelURL      string
	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPass      string
	FromEmail     string
	UploadDir     string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	smtpPort := 587
	if p := os.Getenv("SMTP_PORT"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil {
			smtpPort = parsed
		}
	}

	cfg := &Config{
		Port:          getEnv("PORT", "5000"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		WeatherAPIKey: getEnv("WEATHER_API_KEY", ""),
		ModelURL:      getEnv("MODEL_URL", "http://localhost:8000/predict"),
		SMTPHost:      getEnv("SMTP_HOST", ""),
		SMTPPort:      smtpPort,
		SMTPUser:      getEnv("SMTP_USER", ""),
		SMTPPass:      getEnv("SMTP_PASS", ""),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads/images"),
	}
	cfg.FromEmail = getEnv("FROM_EMAIL", cfg.SMTPUser)

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
