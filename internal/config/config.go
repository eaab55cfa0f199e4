// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// Text generation providers. AIProvider selects the active one.
	AIProvider     string // "anthropic" or "openai"
	AnthropicKey   string
	AnthropicModel string
	AnthropicURL   string
	OpenAIKey      string
	OpenAIModel    string
	OpenAIURL      string

	// Replicate image generation (FLUX-style models).
	ReplicateToken string
	ReplicateModel string
	ReplicateURL   string

	// Valkey (Redis-compatible response cache). Optional — the service
	// runs without it.
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if no text provider
// is usable in production mode.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "5001"),
		Env:  envOrDefault("APP_ENV", "development"),

		AIProvider:     envOrDefault("AI_PROVIDER", "anthropic"),
		AnthropicKey:   os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel: envOrDefault("ANTHROPIC_MODEL", "claude-3-7-sonnet-20250219"),
		AnthropicURL:   os.Getenv("ANTHROPIC_BASE_URL"),
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:    envOrDefault("OPENAI_MODEL", "gpt-4o"),
		OpenAIURL:      os.Getenv("OPENAI_BASE_URL"),

		ReplicateToken: os.Getenv("REPLICATE_API_TOKEN"),
		ReplicateModel: envOrDefault("REPLICATE_MODEL", "black-forest-labs/flux-1.1-pro"),
		ReplicateURL:   os.Getenv("REPLICATE_BASE_URL"),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),
	}

	if cfg.Env == "production" {
		if cfg.AnthropicKey == "" && cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("at least one of ANTHROPIC_API_KEY or OPENAI_API_KEY must be set in production")
		}
	}

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
