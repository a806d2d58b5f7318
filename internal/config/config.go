package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	LogLevel       string `validate:"oneof=debug info warn warning error"`
	LogFormat      string `validate:"oneof=json text"`
	Environment    string `validate:"oneof=dev staging prod test"`
	Version        string `validate:"required"`
	ServiceName    string `validate:"required"`
	EnumsPath      string `validate:"omitempty,file"` // Empty uses the embedded enum tables
	LabelCacheSize int    `validate:"min=1"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment: strings.ToLower(getEnv(EnvEnvironment, DefaultEnvironment)),
		Version:     getEnv(EnvVersion, DefaultVersion),
		ServiceName: ServiceName,
		EnumsPath:   getEnv(EnvEnumsPath, ""),
	}

	size, err := strconv.Atoi(getEnv(EnvLabelCacheSize, strconv.Itoa(DefaultLabelCacheSize)))
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvLabelCacheSize, err)
	}
	cfg.LabelCacheSize = size

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
