package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/config"
	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/handlers"
	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/stdio"
)

var rootCmd = &cobra.Command{
	Use:   "prism-mcp",
	Short: "prism-mcp - PRISM financial data tools for MCP clients",
	Long: `Exposes the PRISM market, on-chain, stocks and sports-odds API as Model Context Protocol tools ` +
		`over stdio or HTTP.`,
	SilenceUsage: true,
}

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve tools over stdio (default) or HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if transport, _ := cmd.Flags().GetString("transport"); transport != "" {
				cfg.Transport = transport
			}
			if port, _ := cmd.Flags().GetInt("port"); port != 0 {
				cfg.Port = port
			}
			if err := cfg.Validate(); err != nil {
				return startupError(err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if cfg.Transport == config.TransportHTTP {
				return serveHTTP(ctx, cfg)
			}
			return serveStdio(ctx, cfg)
		},
	}
	cmd.Flags().String("transport", "", "transport to serve: stdio or http (overrides MCP_TRANSPORT)")
	cmd.Flags().Int("port", 0, "HTTP port (overrides MCP_PORT)")
	return cmd
}

func newToolsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "Print the tool catalog as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := validConfig()
			if err != nil {
				return err
			}
			a, err := newApp(cfg, newLogger(cfg.LogLevel, os.Stderr))
			if err != nil {
				return err
			}
			defer a.Close()

			return writeJSON(cmd.OutOrStdout(), a.registry.List())
		},
	}
}

func newCallCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "call <tool>",
		Short: "Invoke one tool and print its result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := validConfig()
			if err != nil {
				return err
			}
			a, err := newApp(cfg, newLogger(cfg.LogLevel, os.Stderr))
			if err != nil {
				return err
			}
			defer a.Close()

			raw, _ := cmd.Flags().GetString("args")
			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout())
			defer cancel()

			res, err := a.registry.Invoke(ctx, args[0], []byte(raw))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Content[0].Text)
			return err
		},
	}
	cmd.Flags().String("args", "{}", "tool arguments as a JSON object")
	return cmd
}

func serveStdio(ctx context.Context, cfg *config.Config) error {
	// stdout carries the protocol.
	logger := newLogger(cfg.LogLevel, os.Stderr)

	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	if cfg.PrometheusPort > 0 {
		metricsSrv := &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.PrometheusPort),
			Handler:           promhttp.HandlerFor(a.gatherer, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("metrics_server_listening", "port", cfg.PrometheusPort)
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics_server_error", "error", err)
			}
		}()
		defer shutdown(metricsSrv, logger)
	}

	logger.Info("mcp_service_starting", "transport", config.TransportStdio, "tools", a.registry.Len())
	err = stdio.Serve(ctx, stdio.NewServer(a.registry, a.info, logger))
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("mcp_service_stopped")
	return nil
}

func serveHTTP(ctx context.Context, cfg *config.Config) error {
	logger := newLogger(cfg.LogLevel, os.Stdout)

	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	srv := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.Port),
		Handler: handlers.NewRouter(handlers.RouterConfig{
			Registry: a.registry,
			Info:     a.info,
			Timeout:  cfg.Timeout(),
			Logger:   logger,
			Metrics:  promhttp.HandlerFor(a.gatherer, promhttp.HandlerOpts{}),
		}),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.Timeout() + 5*time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("mcp_server_listening", "port", cfg.Port, "tools", a.registry.Len())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutdown_signal_received")
	}

	shutdown(srv, logger)
	logger.Info("mcp_service_stopped")
	return nil
}

func shutdown(srv *http.Server, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server_shutdown_error", "error", err)
	}
}

func main() {
	rootCmd.AddCommand(newServeCommand(), newToolsCommand(), newCallCommand())

	// Bare invocation serves, matching how MCP clients launch the binary.
	rootCmd.RunE = newServeCommand().RunE

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
