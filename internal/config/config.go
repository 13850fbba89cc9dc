package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	GeminiAPIKey string
	GeminiModel  string
	PrefsFile    string
}

func Load() (*Config, error) {
	// load .env in dev
	_ = godotenv.Load(".env")

	cfg := &Config{
		Port:         os.Getenv("PORT"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  os.Getenv("GEMINI_MODEL"),
		PrefsFile:    os.Getenv("PREFS_FILE"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.GeminiModel == "" {
		cfg.GeminiModel = "gemini-2.5-flash"
	}
	if cfg.PrefsFile == "" {
		cfg.PrefsFile = ".prefs.json"
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}
	return cfg, nil
}
