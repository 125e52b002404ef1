package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
			SSLMode:  "disable",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

// setRequired sets every required variable; empty values count as unset
func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("BACKEND_URL", "https://api.example.com")
	t.Setenv("ADMIN_GROUP_ID", "-1001234567890")
	t.Setenv("DB_PASSWORD", "test_db_password")
}

func TestLoad_WithDefaults(t *testing.T) {
	setRequired(t)
	for _, key := range []string{
		"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_SSLMODE",
		"LOG_LEVEL", "METRICS_ADDR", "BACKEND_TIMEOUT", "RATE_LIMIT_PER_SECOND", "RATE_LIMIT_BURST",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, "https://api.example.com", cfg.Backend.URL)
	assert.Equal(t, int64(-1001234567890), cfg.AdminGroupID)
	assert.Equal(t, 10*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
	assert.Equal(t, 3.0, cfg.RateLimit.PerSecond)
	assert.Equal(t, 5, cfg.RateLimit.Burst)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "authbot", cfg.Database.Name)
	assert.Equal(t, "authbot", cfg.Database.User)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("BACKEND_TIMEOUT", "3s")
	t.Setenv("RATE_LIMIT_PER_SECOND", "0.5")
	t.Setenv("RATE_LIMIT_BURST", "2")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 0.5, cfg.RateLimit.PerSecond)
	assert.Equal(t, 2, cfg.RateLimit.Burst)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	for _, key := range []string{"BOT_TOKEN", "BACKEND_URL", "DB_PASSWORD", "ADMIN_GROUP_ID"} {
		t.Run(key, func(t *testing.T) {
			setRequired(t)
			t.Setenv(key, "")

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{key: "ADMIN_GROUP_ID", value: "my-group"},
		{key: "BACKEND_TIMEOUT", value: "soon"},
		{key: "RATE_LIMIT_BURST", value: "many"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
