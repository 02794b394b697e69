package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/homeseek/backend/internal/utils"
)

const AppName = "homeseek-api"

type Config struct {
	AppName    string
	AppPort    string
	DBUrl      string
	HostURL    string
	UploadDir  string
	CORSOrigin string
	SessionTTL time.Duration
}

// LoadConfig reads configuration from the environment (with optional
// .env file) and fails fast on anything missing.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		utils.Logger.Debug("No .env file found, relying on environment")
	}

	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		utils.Logger.Fatal("APP_PORT env var is missing")
	}
	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		utils.Logger.Fatal("DB_URL env var is missing")
	}
	hostURL := os.Getenv("HOST_URL")
	if hostURL == "" {
		utils.Logger.Fatal("HOST_URL env var is missing")
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploaded"
	}
	corsOrigin := os.Getenv("CORS_ORIGIN")
	if corsOrigin == "" {
		corsOrigin = "http://127.0.0.1:5500"
	}

	sessionTTL := 48 * time.Hour
	if ttlStr := os.Getenv("SESSION_TTL_HOURS"); ttlStr != "" {
		hours, err := strconv.Atoi(ttlStr)
		if err != nil || hours <= 0 {
			utils.Logger.Fatalf("Invalid SESSION_TTL_HOURS: %q", ttlStr)
		}
		sessionTTL = time.Duration(hours) * time.Hour
	}

	return &Config{
		AppName:    AppName,
		AppPort:    appPort,
		DBUrl:      dbURL,
		HostURL:    hostURL,
		UploadDir:  uploadDir,
		CORSOrigin: corsOrigin,
		SessionTTL: sessionTTL,
	}
}
