package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the full process configuration, read from the environment
type Config struct {
	// Port is the HTTP listen port
	Port int `env:"PORT" envDefault:"8080"`

	// StorageType selects the blob store backend ("memory" or "redis")
	StorageType string `env:"STORAGE_TYPE" envDefault:"memory"`

	// RedisURL is the Redis connection URL (required when StorageType is redis)
	RedisURL string `env:"REDIS_URL"`

	// GeminiAPIKey is the credential for the recap generation service.
	// When empty, games still record but carry fallback summary text.
	GeminiAPIKey string `env:"API_KEY"`

	// GeminiModel overrides the default generation model
	GeminiModel string `env:"GEMINI_MODEL"`
}

// Load parses configuration from the process environment
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
