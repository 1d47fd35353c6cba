// Package config loads service configuration from environment variables.
package config

import (
	"fmt"
	"os"
)

// Config holds every setting the Lambda binaries read. Each binary uses the
// subset it needs; unset optional values select a fallback behavior in the
// wiring (direct history writes, logged skips instead of dead-lettering).
type Config struct {
	UsersTable      string
	CacheTable      string
	HistoryTable    string
	HistoryQueueURL string
	HistoryDLQURL   string
	JWTSecret       string
	OllamaHostURL   string
	OllamaModel     string
	LogLevel        string
}

// Load reads the environment. OLLAMA_HOST_URL is deliberately not validated
// here: the translate handler fails closed per request when it is unset.
func Load() *Config {
	return &Config{
		UsersTable:      getEnv("USERS_TABLE", "Users"),
		CacheTable:      getEnv("CACHE_TABLE", "TranslationCache"),
		HistoryTable:    getEnv("HISTORY_TABLE", "TranslationHistory"),
		HistoryQueueURL: getEnv("HISTORY_QUEUE_URL", ""),
		HistoryDLQURL:   getEnv("HISTORY_DLQ_URL", ""),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		OllamaHostURL:   getEnv("OLLAMA_HOST_URL", ""),
		OllamaModel:     getEnv("OLLAMA_MODEL", "tinyllama"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}
}

// RequireJWTSecret is called by the binaries that sign or verify tokens.
func (c *Config) RequireJWTSecret() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
