package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnvDefaults(t *testing.T) {
	t.Setenv("PRISM_API_KEY", "prism_sk_test")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "https://api.prismapi.ai", cfg.BaseURL)
	assert.Equal(t, "https://api.prismapi.ai/auth/keys/instant", cfg.InstantKeyURL)
	assert.Equal(t, TransportStdio, cfg.Transport)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
	assert.Equal(t, 15*time.Second, cfg.UpstreamTimeout())
	assert.False(t, cfg.CacheEnabled())
}

func TestValidateMissingAPIKey(t *testing.T) {
	t.Setenv("PRISM_API_KEY", "")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	err = cfg.Validate()
	require.Error(t, err)

	var startupErr *StartupConfigurationError
	require.True(t, errors.As(err, &startupErr))
	assert.Equal(t, "PRISM_API_KEY", startupErr.Variable)
	assert.Contains(t, err.Error(), "PRISM_API_KEY environment variable is required")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			APIKey:         "k",
			BaseURL:        "http://localhost",
			Transport:      TransportHTTP,
			Port:           8080,
			TimeoutMS:      100,
			UpstreamTimeMS: 100,
			LogLevel:       "info",
			PrometheusPort: 0,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "bad transport", mutate: func(c *Config) { c.Transport = "grpc" }, wantErr: "invalid transport"},
		{name: "bad port", mutate: func(c *Config) { c.Port = 0 }, wantErr: "invalid port"},
		{name: "bad timeout", mutate: func(c *Config) { c.TimeoutMS = 0 }, wantErr: "timeout must be at least 1ms"},
		{name: "negative retries", mutate: func(c *Config) { c.RetryMax = -1 }, wantErr: "retry max"},
		{name: "cache without ttl", mutate: func(c *Config) { c.RedisURL = "redis://localhost:6379"; c.CacheTTLSec = 0 }, wantErr: "cache TTL"},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "trace" }, wantErr: "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
