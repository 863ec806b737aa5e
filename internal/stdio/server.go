// Package stdio serves the tool registry over the MCP stdio transport using
// the official Go SDK.
package stdio

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/mcp"
)

// uiMetaKey is the descriptor metadata key carrying the render hint.
const uiMetaKey = "x-prism-ui"

// NewServer returns an SDK server exposing every tool in reg, in
// registration order.
func NewServer(reg *mcp.Registry, info mcp.Implementation, logger *slog.Logger) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{Name: info.Name, Version: info.Version}, nil)
	logger = logger.With("component", "stdio")

	for _, d := range reg.List() {
		server.AddTool(sdkTool(d), handler(reg, d.Name, logger))
	}
	return server
}

// Serve runs server on stdin/stdout until ctx is cancelled or the client
// disconnects.
func Serve(ctx context.Context, server *sdkmcp.Server) error {
	return server.Run(ctx, &sdkmcp.StdioTransport{})
}

func sdkTool(d mcp.Descriptor) *sdkmcp.Tool {
	t := &sdkmcp.Tool{
		Name:        d.Name,
		Description: d.Description,
		InputSchema: d.InputSchema,
		Annotations: &sdkmcp.ToolAnnotations{ReadOnlyHint: d.Annotations.ReadOnlyHint},
	}
	if d.Meta != nil && d.Meta.UI != nil {
		t.Meta = sdkmcp.Meta{uiMetaKey: d.Meta.UI}
	}
	return t
}

// handler adapts Registry.Invoke. Tool failures are reported in-band as
// isError results so the calling model can read them.
func handler(reg *mcp.Registry, name string, logger *slog.Logger) sdkmcp.ToolHandler {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest) (*sdkmcp.CallToolResult, error) {
		ctx = mcp.WithCorrelationID(ctx, uuid.NewString())

		var args json.RawMessage
		if req.Params != nil {
			args = req.Params.Arguments
		}

		res, err := reg.Invoke(ctx, name, args)
		if err != nil {
			body, mErr := json.Marshal(mcp.ErrorPayload(err))
			if mErr != nil {
				logger.Error("error_payload_encode_failed", "tool_name", name, "error", mErr)
				body = []byte(`{"error":{"message":"internal error"}}`)
			}
			return &sdkmcp.CallToolResult{
				Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(body)}},
				IsError: true,
			}, nil
		}

		content := make([]sdkmcp.Content, 0, len(res.Content))
		for _, c := range res.Content {
			content = append(content, &sdkmcp.TextContent{Text: c.Text})
		}
		return &sdkmcp.CallToolResult{Content: content}, nil
	}
}
