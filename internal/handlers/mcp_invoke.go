package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/mcp"
)

// MCPHandler serves JSON-RPC requests on POST /mcp. Responses are framed as
// a single SSE event when the client accepts text/event-stream and as plain
// JSON otherwise.
type MCPHandler struct {
	registry *mcp.Registry
	info     mcp.Implementation
	logger   *slog.Logger
}

// NewMCPHandler creates the JSON-RPC handler.
func NewMCPHandler(registry *mcp.Registry, info mcp.Implementation, logger *slog.Logger) *MCPHandler {
	return &MCPHandler{
		registry: registry,
		info:     info,
		logger:   logger.With("handler", "mcp"),
	}
}

func (h *MCPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	correlationID := GetCorrelationID(r.Context())

	req, err := mcp.ParseJSONRPCRequest(r.Body)
	if err != nil {
		var rpcErr *mcp.RPCError
		if !errors.As(err, &rpcErr) {
			rpcErr = &mcp.RPCError{Code: mcp.ParseError, Message: "Invalid request", Data: err.Error()}
		}
		h.logger.Warn("jsonrpc_parse_failed", "error", rpcErr.Message, "correlation_id", correlationID)
		h.write(w, r, mcp.NewJSONRPCError(nil, rpcErr))
		return
	}

	if req.IsNotification() {
		h.logger.Debug("jsonrpc_notification", "method", req.Method, "correlation_id", correlationID)
		w.WriteHeader(http.StatusAccepted)
		return
	}

	h.write(w, r, h.dispatch(r.Context(), req))
}

func (h *MCPHandler) dispatch(ctx context.Context, req *mcp.JSONRPCRequest) *mcp.JSONRPCResponse {
	switch req.Method {
	case "initialize":
		return mcp.NewJSONRPCResult(req.ID, mcp.InitializeResult{
			ProtocolVersion: mcp.ProtocolVersion,
			Capabilities:    map[string]any{"tools": map[string]any{"listChanged": false}},
			ServerInfo:      h.info,
		})

	case "ping":
		return mcp.NewJSONRPCResult(req.ID, struct{}{})

	case "tools/list", "list_tools":
		return mcp.NewJSONRPCResult(req.ID, mcp.ListToolsResult{Tools: h.registry.List()})

	case "tools/call", "call_tool":
		params, err := mcp.ParseCallToolParams(req.Params)
		if err != nil {
			return mcp.NewJSONRPCError(req.ID, mcp.FormatMCPError(err))
		}

		result, err := h.registry.Invoke(ctx, params.Name, params.Arguments)
		if err != nil {
			return mcp.NewJSONRPCError(req.ID, mcp.FormatMCPError(err))
		}
		return mcp.NewJSONRPCResult(req.ID, result)

	default:
		return mcp.NewJSONRPCError(req.ID, &mcp.RPCError{
			Code:    mcp.MethodNotFound,
			Message: "Method not found",
			Data:    req.Method,
		})
	}
}

// write frames resp as one SSE event or a JSON body. JSON-framed errors carry
// the HTTP status mapped from their code; an event stream is always 200.
func (h *MCPHandler) write(w http.ResponseWriter, r *http.Request, resp *mcp.JSONRPCResponse) {
	if acceptsEventStream(r) {
		if err := mcp.NewSSEWriter(w).Send(resp); err != nil {
			h.logger.Error("sse_write_failed", "error", err, "correlation_id", GetCorrelationID(r.Context()))
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(mcp.HTTPStatusFromError(resp.Error))
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("json_encode_failed", "error", err, "correlation_id", GetCorrelationID(r.Context()))
	}
}

func acceptsEventStream(r *http.Request) bool {
	for _, v := range r.Header.Values("Accept") {
		if strings.Contains(v, "text/event-stream") {
			return true
		}
	}
	return false
}
