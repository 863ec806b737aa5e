package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/cache"
	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/config"
	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/hints"
	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/instrumentation"
	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/mcp"
	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/prism"
	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/tools"
)

const serverName = "prism-mcp"

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// app holds the wired components shared by every subcommand.
type app struct {
	info     mcp.Implementation
	registry *mcp.Registry
	gatherer prometheus.Gatherer
	cache    *cache.Cache
}

func newApp(cfg *config.Config, logger *slog.Logger) (*app, error) {
	promReg := prometheus.NewRegistry()
	promReg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := instrumentation.NewMetrics(promReg)

	opts := []prism.Option{
		prism.WithObserver(metrics),
		prism.WithTimeout(cfg.UpstreamTimeout()),
		prism.WithRetry(cfg.RetryMax, 500*time.Millisecond, 5*time.Second),
	}

	a := &app{
		info:     mcp.Implementation{Name: serverName, Version: version},
		gatherer: promReg,
	}

	if cfg.CacheEnabled() {
		c, err := cache.New(cfg.RedisURL, cfg.RedisPassword, cfg.CacheTTL(), logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create response cache: %w", err)
		}
		a.cache = c
		opts = append(opts, prism.WithCache(c))
		logger.Info("response_cache_enabled", "ttl_sec", cfg.CacheTTLSec)
	}

	client := prism.NewClient(cfg.BaseURL, cfg.APIKey, logger, opts...)

	a.registry = mcp.NewRegistry(hints.Default(), logger, mcp.WithObserver(metrics))
	err := tools.RegisterAll(a.registry, tools.Deps{
		Upstream:    client,
		Provisioner: tools.NewProvisioner(cfg.InstantKeyURL, cfg.UpstreamTimeout()),
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	return a, nil
}

func (a *app) Close() {
	if a.cache != nil {
		a.cache.Close()
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		return nil, err
	}
	return cfg, nil
}

func validConfig() (*config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, startupError(err)
	}
	return cfg, nil
}

// startupError logs a configuration failure before any tool is registered.
func startupError(err error) error {
	var startupErr *config.StartupConfigurationError
	if errors.As(err, &startupErr) {
		slog.Error("startup_configuration_error", "variable", startupErr.Variable, "error", err)
	} else {
		slog.Error("invalid configuration", "error", err)
	}
	return err
}

func newLogger(level string, w io.Writer) *slog.Logger {
	logLevel := slog.LevelInfo
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)
	return logger
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	// Until a logger is configured, startup failures go to stderr so they
	// never corrupt a stdio session.
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
}
