package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the whole application configuration,
// populated from environment variables.
type Config struct {
	App   AppConfig
	Redis RedisConfig
	JWT   JWTConfig
	MinIO MinIOConfig
	Mux   MuxConfig
	Draft DraftConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
}

type MinIOConfig struct {
	Endpoint  string // localhost:9000
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool // false for local
}

// MuxConfig configures the external video transcoding provider.
type MuxConfig struct {
	TokenID       string
	TokenSecret   string
	WebhookSecret string // empty disables webhook signature verification
	BaseURL       string
	CORSOrigin    string
}

// DraftConfig governs the ephemeral course-draft store.
type DraftConfig struct {
	TTL time.Duration // reset on every draft write
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	draftTTL, err := time.ParseDuration(getEnv("DRAFT_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid DRAFT_TTL: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Course Platform API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "4001"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "courseplatform"),
			UseSSL:    false,
		},
		Mux: MuxConfig{
			TokenID:       getEnv("MUX_TOKEN_ID", ""),
			TokenSecret:   getEnv("MUX_TOKEN_SECRET", ""),
			WebhookSecret: getEnv("MUX_WEBHOOK_SECRET", ""),
			BaseURL:       getEnv("MUX_BASE_URL", "https://api.mux.com"),
			CORSOrigin:    getEnv("MUX_CORS_ORIGIN", "*"),
		},
		Draft: DraftConfig{
			TTL: draftTTL,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks critical configuration values.
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.JWT.Secret == "" || c.JWT.Secret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.Mux.TokenID == "" || c.Mux.TokenSecret == "" {
			return fmt.Errorf("MUX_TOKEN_ID and MUX_TOKEN_SECRET must be set in production")
		}
	}
	if c.Draft.TTL <= 0 {
		return fmt.Errorf("DRAFT_TTL must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
