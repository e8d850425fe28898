package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	DatabaseURL string
	RedisURL    string

	SessionSecret string
	SessionTTL    time.Duration

	CloudinaryUploadFolder string

	CommentCooldown time.Duration
	LoginCooldown   time.Duration
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (prod sets real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),

		SessionSecret: getEnv("SESSION_SECRET", "change-me"),

		CloudinaryUploadFolder: getEnv("CLOUDINARY_UPLOAD_FOLDER", "gesscam"),
	}

	var err error
	if cfg.SessionTTL, err = time.ParseDuration(getEnv("SESSION_TTL", "24h")); err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	if cfg.CommentCooldown, err = time.ParseDuration(getEnv("COMMENT_COOLDOWN", "10s")); err != nil {
		return nil, fmt.Errorf("invalid COMMENT_COOLDOWN: %w", err)
	}
	if cfg.LoginCooldown, err = time.ParseDuration(getEnv("LOGIN_COOLDOWN", "1s")); err != nil {
		return nil, fmt.Errorf("invalid LOGIN_COOLDOWN: %w", err)
	}

	return cfg, nil
}

// DSN assembles the postgres connection string from DATABASE_URL or the
// individual DB_* variables.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_USER", "postgres"),
		os.Getenv("DB_PASS"),
		getEnv("DB_NAME", "gesscam_portal"),
		getEnv("DB_PORT", "5432"),
	)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
