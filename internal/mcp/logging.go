package mcp

import (
	"context"
	"log/slog"
)

type correlationKey struct{}

// WithCorrelationID returns a context carrying id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

// CorrelationID returns the id stored by WithCorrelationID, or "".
func CorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationKey{}).(string)
	return id
}

func logInvocation(ctx context.Context, logger *slog.Logger, tool string) {
	logger.InfoContext(ctx, "tool_invocation",
		"tool_name", tool,
		"correlation_id", CorrelationID(ctx),
	)
}

func logSuccess(ctx context.Context, logger *slog.Logger, tool string, bytes int, latencyMS int64) {
	logger.InfoContext(ctx, "tool_success",
		"tool_name", tool,
		"correlation_id", CorrelationID(ctx),
		"response_bytes", bytes,
		"latency_ms", latencyMS,
	)
}

func logError(ctx context.Context, logger *slog.Logger, err *ToolError, latencyMS int64) {
	level := slog.LevelError
	if err.Kind != KindUpstreamFailure {
		level = slog.LevelWarn
	}
	logger.Log(ctx, level, "tool_error",
		"tool_name", err.Tool,
		"correlation_id", CorrelationID(ctx),
		"error_kind", err.Kind.String(),
		"field", err.Field,
		"error", err.Err,
		"latency_ms", latencyMS,
	)
}
