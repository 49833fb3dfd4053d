package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"go-records-dashboard/internal/pipeline"
	"go-records-dashboard/pkg/utils"
)

// Config holds all application configuration
type Config struct {
	Environment string
	Server      ServerConfig
	Upstream    UpstreamConfig
	Database    DatabaseConfig
	Export      ExportConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	CorsOrigins     []string
	SessionLimit    int
}

// UpstreamConfig points at the records API
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

// DatabaseConfig holds the sqlite location
type DatabaseConfig struct {
	Path string
}

// ExportConfig holds CLI export settings
type ExportConfig struct {
	Dir string
}

// Addr is the listen address
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoadDotEnv loads .env when present
func LoadDotEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		log.Println("⚠️ No .env file found or error loading it. Using environment variables.")
	}
}

// Load loads configuration from environment variables
func Load() (Config, error) {
	config := Config{
		Environment: getEnv("APP_ENV", "development"),
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 45*time.Second),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			CorsOrigins:     getEnvAsSlice("SERVER_CORS_ORIGINS", nil),
			SessionLimit:    getEnvAsInt("SERVER_SESSION_LIMIT", 1000),
		},
		Upstream: UpstreamConfig{
			BaseURL: getEnv("RECORDS_API_URL", pipeline.DefaultBaseURL),
			Timeout: getEnvAsDuration("UPSTREAM_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "dashboard.db"),
		},
		Export: ExportConfig{
			Dir: getEnv("EXPORT_DIR", "output"),
		},
	}

	return config, validate(config)
}

// validate checks if config is valid
func validate(config Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", config.Server.Port)
	}
	if config.Server.SessionLimit <= 0 {
		return fmt.Errorf("session limit must be positive")
	}
	if config.Upstream.Timeout < 0 {
		return fmt.Errorf("upstream timeout must not be negative")
	}
	if !strings.HasPrefix(config.Upstream.BaseURL, "http://") && !strings.HasPrefix(config.Upstream.BaseURL, "https://") {
		return fmt.Errorf("records API URL must be http(s): %q", config.Upstream.BaseURL)
	}
	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	return utils.ParseDuration(getEnv(key, ""), defaultValue)
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
