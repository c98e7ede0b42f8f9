package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	PORT        string
	DB_URL      string
	JWT_SECRET  string
	CORS_ORIGIN string

	ADMIN_EMAIL    string
	ADMIN_PASSWORD string

	NOTION_API_TOKEN string

	AUTOSAVE_DELAY time.Duration
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:5173")

	ADMIN_EMAIL = mustEnv("ADMIN_EMAIL")
	ADMIN_PASSWORD = mustEnv("ADMIN_PASSWORD")

	// optional: without it the Notion sync endpoint refuses requests
	NOTION_API_TOKEN = getEnv("NOTION_API_TOKEN", "")

	seconds, err := strconv.Atoi(getEnv("AUTOSAVE_INTERVAL_SECONDS", "5"))
	if err != nil || seconds < 0 {
		log.Fatalf("Invalid AUTOSAVE_INTERVAL_SECONDS")
	}
	AUTOSAVE_DELAY = time.Duration(seconds) * time.Second
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
