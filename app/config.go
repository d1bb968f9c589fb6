package app

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds the settings read from the environment
type Config struct {
	Port               string
	WardrobeDir        string
	DriveFolderID      string
	CredentialsPath    string
	CollageOutputPath  string
	EmbeddingBaseURL   string
	EmbeddingModel     string
	EmbeddingAPIKey    string
	EmbeddingTimeout   time.Duration
	CORSAllowedOrigins []string
}

// LoadConfig reads the configuration from environment variables, applying defaults
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:              envOrDefault("PORT", "5000"),
		WardrobeDir:       envOrDefault("WARDROBE_DIR", "wardrobe"),
		DriveFolderID:     os.Getenv("WARDROBE_DRIVE_FOLDER_ID"),
		CredentialsPath:   os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		CollageOutputPath: envOrDefault("COLLAGE_OUTPUT_PATH", "final_outfit.jpg"),
		EmbeddingBaseURL:  envOrDefault("EMBEDDING_BASE_URL", "http://localhost:7997/v1"),
		EmbeddingModel:    envOrDefault("EMBEDDING_MODEL", "openai/clip-vit-base-patch32"),
		EmbeddingAPIKey:   envOrDefault("EMBEDDING_API_KEY", "dummy"),
	}

	// Remove leading colon if present (some platforms set PORT as ":8080")
	cfg.Port = strings.TrimPrefix(cfg.Port, ":")

	timeout, err := time.ParseDuration(envOrDefault("EMBEDDING_TIMEOUT", "120s"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid EMBEDDING_TIMEOUT: %w", err)
	}
	cfg.EmbeddingTimeout = timeout

	for _, origin := range strings.Split(envOrDefault("CORS_ALLOWED_ORIGINS", "*"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
