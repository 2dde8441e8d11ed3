package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	DatabaseURL string
	RedisURL    string
	JWTSecret   string
	Groq        GroqConfig
	R2          R2Config
}

// GroqConfig drives the LLM pitch generator; an empty key disables
// it and the canned fallbacks are served instead.
type GroqConfig struct {
	APIKey string
	Model  string
}

// R2Config is the object storage used for admin CSV exports.
type R2Config struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("GROQ_MODEL", "llama-3.3-70b-versatile")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		DatabaseURL: strings.TrimSpace(getEnvOrViper("DATABASE_URL", "")),
		RedisURL:    strings.TrimSpace(getEnvOrViper("REDIS_URL", "")),
		JWTSecret:   strings.TrimSpace(getEnvOrViper("JWT_SECRET", "")),
		Groq: GroqConfig{
			APIKey: strings.TrimSpace(getEnvOrViper("GROQ_API_KEY", "")),
			Model:  getEnvOrViper("GROQ_MODEL", "llama-3.3-70b-versatile"),
		},
		R2: R2Config{
			Endpoint:      strings.TrimSpace(getEnvOrViper("R2_ENDPOINT", "")),
			AccessKey:     strings.TrimSpace(getEnvOrViper("R2_ACCESS_KEY", "")),
			SecretKey:     strings.TrimSpace(getEnvOrViper("R2_SECRET_KEY", "")),
			Bucket:        strings.TrimSpace(getEnvOrViper("R2_BUCKET_NAME", "")),
			PublicBaseURL: strings.TrimSpace(getEnvOrViper("R2_PUBLIC_BASE_URL", "")),
		},
	}

	// Validate required fields
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
