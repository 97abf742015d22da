package config

import (
	"encoding/base64"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port         string
	AppEnv       string
	BaseURL      string
	MongoString  string
	PasetoSecret string

	GroqAPIKey string
	GroqModel  string

	SpreadsheetID string
	SheetRange    string
}

// LoadConfig loads configuration from .env file
func LoadConfig() *AppConfig {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: Error loading .env file (might not exist in production): %v", err)
	}

	secretBase64 := getEnv("PASETO_SECRET", "default_paseto_secret_base64_mustbe32bytes_=")

	secretBytes, err := base64.URLEncoding.DecodeString(secretBase64)
	if err != nil {
		log.Fatalf("PASETO_SECRET in .env is not a valid Base64 URL-encoded string: %v", err)
	}

	if len(secretBytes) != 32 {
		log.Fatalf("PASETO_SECRET (decoded) must be exactly 32 bytes long. Current length: %d", len(secretBytes))
	}

	return &AppConfig{
		Port:          getEnv("PORT", "3000"),
		AppEnv:        getEnv("APP_ENV", "development"),
		BaseURL:       getEnv("BASE_URL", "http://localhost:3000"),
		MongoString:   getEnv("MONGOSTRING", ""),
		PasetoSecret:  secretBase64,
		GroqAPIKey:    getEnv("GROQ_API_KEY", ""),
		GroqModel:     getEnv("GROQ_MODEL", "llama-3.3-70b-versatile"),
		SpreadsheetID: getEnv("SHEET_ID", ""),
		SheetRange:    getEnv("SHEET_RANGE", "Sheet1!A1"),
	}
}

// Helper function to get environment variable or fallback to default
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
