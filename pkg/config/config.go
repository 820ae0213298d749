// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, storage, LLM and auth settings

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Storage contains durable storage configuration
	Storage StorageConfig

	// LLM contains the chat-completion provider configuration
	LLM LLMConfig

	// Auth contains the hosted auth service configuration
	Auth AuthConfig

	// Log contains logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the allowed number of requests per window per client
	RateLimit int
}

// StorageConfig holds durable storage backend configuration
type StorageConfig struct {
	// Type specifies the storage backend (memory/redis/sqlite)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the database file path
	Path string
}

// LLMConfig holds the chat-completion provider configuration
type LLMConfig struct {
	// APIKey authenticates against the provider
	APIKey string

	// Model is the model identifier, e.g. "qwen/qwen-2.5-72b-instruct"
	Model string

	// BaseURL overrides the provider endpoint (OpenRouter by default)
	BaseURL string
}

// AuthConfig holds the hosted auth service configuration
type AuthConfig struct {
	// URL is the auth service base URL
	URL string

	// APIKey is the service's public API key
	APIKey string
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Format selects the logger implementation (standard/logrus)
	Format string

	// Level is the minimum level emitted (debug/info/warn/error)
	Level string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:      getEnvOrDefault("PORT", "8000"),
			RateLimit: getEnvAsIntOrDefault("RATE_LIMIT", 100),
		},
		Storage: StorageConfig{
			Type: getEnvOrDefault("STORAGE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_PATH", "magicmuse.db"),
			},
		},
		LLM: LLMConfig{
			APIKey:  getEnvOrDefault("OPENROUTER_API_KEY", ""),
			Model:   getEnvOrDefault("LLM_MODEL", "qwen/qwen-2.5-72b-instruct"),
			BaseURL: getEnvOrDefault("LLM_BASE_URL", "https://openrouter.ai/api/v1"),
		},
		Auth: AuthConfig{
			URL:    getEnvOrDefault("SUPABASE_URL", ""),
			APIKey: getEnvOrDefault("SUPABASE_ANON_KEY", ""),
		},
		Log: LogConfig{
			Format: getEnvOrDefault("LOG_FORMAT", "standard"),
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

// Validate checks the configuration for inconsistencies
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("server port cannot be empty")
	}
	switch c.Storage.Type {
	case "memory", "redis", "sqlite":
	default:
		return errors.New("storage type must be memory, redis or sqlite")
	}
	if c.Storage.Type == "redis" && c.Storage.Redis.Address == "" {
		return errors.New("redis address cannot be empty")
	}
	if c.Storage.Type == "sqlite" && c.Storage.SQLite.Path == "" {
		return errors.New("sqlite path cannot be empty")
	}
	return nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
