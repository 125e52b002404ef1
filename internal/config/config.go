package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// Config holds all application configuration
type Config struct {
	BotToken     string
	AdminGroupID int64
	LogLevel     string
	MetricsAddr  string
	Backend      BackendConfig
	RateLimit    RateLimitConfig
	Database     DatabaseConfig
}

// BackendConfig holds authentication API settings
type BackendConfig struct {
	URL     string
	Timeout time.Duration
}

// RateLimitConfig holds per-user update limits
type RateLimitConfig struct {
	PerSecond float64
	Burst     int
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:    os.Getenv("BOT_TOKEN"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		MetricsAddr: getEnv("METRICS_ADDR", ":9090"),
		Backend: BackendConfig{
			URL: os.Getenv("BACKEND_URL"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "authbot"),
			User:     getEnv("DB_USER", "authbot"),
			Password: os.Getenv("DB_PASSWORD"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.Backend.URL == "" {
		return nil, fmt.Errorf("BACKEND_URL is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	groupID := os.Getenv("ADMIN_GROUP_ID")
	if groupID == "" {
		return nil, fmt.Errorf("ADMIN_GROUP_ID is required")
	}
	var err error
	if cfg.AdminGroupID, err = cast.ToInt64E(groupID); err != nil {
		return nil, fmt.Errorf("ADMIN_GROUP_ID must be a chat id: %w", err)
	}

	if cfg.Backend.Timeout, err = cast.ToDurationE(getEnv("BACKEND_TIMEOUT", "10s")); err != nil {
		return nil, fmt.Errorf("BACKEND_TIMEOUT is invalid: %w", err)
	}
	if cfg.RateLimit.PerSecond, err = cast.ToFloat64E(getEnv("RATE_LIMIT_PER_SECOND", "3")); err != nil {
		return nil, fmt.Errorf("RATE_LIMIT_PER_SECOND is invalid: %w", err)
	}
	if cfg.RateLimit.Burst, err = cast.ToIntE(getEnv("RATE_LIMIT_BURST", "5")); err != nil {
		return nil, fmt.Errorf("RATE_LIMIT_BURST is invalid: %w", err)
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
