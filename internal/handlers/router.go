package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/mcp"
)

// RouterConfig collects the dependencies of the HTTP transport.
type RouterConfig struct {
	Registry *mcp.Registry
	Info     mcp.Implementation
	Timeout  time.Duration
	Logger   *slog.Logger
	// Metrics is mounted on GET /metrics when non-nil.
	Metrics http.Handler
}

// NewRouter builds the HTTP transport.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(CorrelationMiddleware)
	r.Use(LoggingMiddleware(cfg.Logger))

	r.Get("/health", HealthCheckHandler(cfg.Registry, cfg.Info.Version))
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics)
	}

	tools := NewToolsHandler(cfg.Registry, cfg.Logger)
	r.Group(func(r chi.Router) {
		r.Use(TimeoutMiddleware(cfg.Timeout, cfg.Logger))
		r.Method(http.MethodPost, "/mcp", NewMCPHandler(cfg.Registry, cfg.Info, cfg.Logger))
		r.Get("/tools", tools.List)
		r.Get("/tools/{name}", tools.Get)
	})

	return r
}
