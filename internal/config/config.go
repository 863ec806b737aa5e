package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Transport names accepted by MCP_TRANSPORT.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config holds the MCP server configuration.
type Config struct {
	// Upstream
	APIKey         string `env:"PRISM_API_KEY"`
	BaseURL        string `env:"PRISM_BASE_URL" envDefault:"https://api.prismapi.ai"`
	InstantKeyURL  string `env:"PRISM_INSTANT_KEY_URL" envDefault:"https://api.prismapi.ai/auth/keys/instant"`
	UpstreamTimeMS int    `env:"PRISM_TIMEOUT_MS" envDefault:"15000"`
	RetryMax       int    `env:"PRISM_RETRY_MAX" envDefault:"2"`

	// Server
	Transport string `env:"MCP_TRANSPORT" envDefault:"stdio"`
	Port      int    `env:"MCP_PORT" envDefault:"8080"`
	TimeoutMS int    `env:"TIMEOUT_MS" envDefault:"30000"`

	// Redis response cache, disabled when RedisURL is empty
	RedisURL      string `env:"REDIS_URL"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	CacheTTLSec   int    `env:"CACHE_TTL_SEC" envDefault:"30"`

	// Observability
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	PrometheusPort int    `env:"PROMETHEUS_PORT" envDefault:"9092"`
}

// StartupConfigurationError reports configuration the process cannot start without.
type StartupConfigurationError struct {
	Variable string
	Reason   string
}

func (e *StartupConfigurationError) Error() string {
	return fmt.Sprintf("%s %s", e.Variable, e.Reason)
}

// Timeout returns the HTTP request timeout as a time.Duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// UpstreamTimeout returns the upstream client timeout.
func (c *Config) UpstreamTimeout() time.Duration {
	return time.Duration(c.UpstreamTimeMS) * time.Millisecond
}

// CacheTTL returns the response cache TTL.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSec) * time.Second
}

// CacheEnabled reports whether upstream responses should be cached in Redis.
func (c *Config) CacheEnabled() bool {
	return c.RedisURL != ""
}

// LoadFromEnv loads configuration from environment variables. A .env file in
// the working directory is applied first when present; real environment
// variables take precedence over it.
func LoadFromEnv() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{}
	opts := env.Options{
		Prefix: "",
	}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration. A missing API key is reported as a
// *StartupConfigurationError.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return &StartupConfigurationError{Variable: "PRISM_API_KEY", Reason: "environment variable is required"}
	}

	if c.BaseURL == "" {
		return &StartupConfigurationError{Variable: "PRISM_BASE_URL", Reason: "must not be empty"}
	}

	if c.Transport != TransportStdio && c.Transport != TransportHTTP {
		return fmt.Errorf("invalid transport: %s", c.Transport)
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}

	if c.PrometheusPort < 0 || c.PrometheusPort > 65535 {
		return fmt.Errorf("invalid prometheus port: %d", c.PrometheusPort)
	}

	if c.TimeoutMS < 1 {
		return fmt.Errorf("timeout must be at least 1ms, got %dms", c.TimeoutMS)
	}

	if c.UpstreamTimeMS < 1 {
		return fmt.Errorf("upstream timeout must be at least 1ms, got %dms", c.UpstreamTimeMS)
	}

	if c.RetryMax < 0 {
		return fmt.Errorf("retry max must not be negative, got %d", c.RetryMax)
	}

	if c.CacheEnabled() && c.CacheTTLSec < 1 {
		return fmt.Errorf("cache TTL must be at least 1 second")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}
