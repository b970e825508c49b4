package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	WorkbookPath string
	PromoPath    string
	OutputDir    string
	DBPath       string

	DriveClientID     string
	DriveClientSecret string
	DriveRedirectURI  string
	DriveRefreshToken string
	DriveFileID       string

	WatchIntervalSec  int
	WatchExportReview bool
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		WorkbookPath: getEnv("WORKBOOK_PATH", filepath.Join(cwd, "data", "qa.xlsx")),
		PromoPath:    getEnv("PROMO_PATH", filepath.Join(cwd, "data", "promo.txt")),
		OutputDir:    getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),
		DBPath:       getEnv("DB_PATH", filepath.Join(cwd, "data", "app.db")),

		DriveClientID:     getEnv("DRIVE_CLIENT_ID", ""),
		DriveClientSecret: getEnv("DRIVE_CLIENT_SECRET", ""),
		DriveRedirectURI:  getEnv("DRIVE_REDIRECT_URI", "https://developers.google.com/oauthplayground"),
		DriveRefreshToken: getEnv("DRIVE_REFRESH_TOKEN", ""),
		DriveFileID:       getEnv("DRIVE_FILE_ID", ""),

		WatchIntervalSec:  getEnvInt("WATCH_INTERVAL_SEC", 30),
		WatchExportReview: getEnvBool("WATCH_EXPORT_REVIEW", false),
	}

	return cfg, nil
}

func (c Config) Require(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("missing required env var: %s", name)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(key, "")))
	if value == "" {
		return fallback
	}
	if value == "1" || value == "true" || value == "yes" || value == "on" {
		return true
	}
	if value == "0" || value == "false" || value == "no" || value == "off" {
		return false
	}
	return fallback
}
