package mcp

import (
	"encoding/json"

	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/hints"
)

// ProtocolVersion is the MCP protocol revision reported by initialize.
const ProtocolVersion = "2025-06-18"

// Descriptor is the static description of a tool as returned by tools/list.
type Descriptor struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
	Annotations Annotations    `json:"annotations"`
	Meta        *ToolMeta      `json:"_meta,omitempty"`
}

// Annotations carries behavioural hints about a tool.
type Annotations struct {
	ReadOnlyHint bool `json:"readOnlyHint"`
}

// ToolMeta is the vendor metadata attached to a descriptor.
type ToolMeta struct {
	UI *hints.Hint `json:"x-prism-ui,omitempty"`
}

// TextContent represents MCP text content
type TextContent struct {
	Type string `json:"type"` // Always "text"
	Text string `json:"text"`
}

// JSONRPCRequest represents a JSON-RPC 2.0 request
type JSONRPCRequest struct {
	JSONRPC string          `json:"jsonrpc"` // Always "2.0"
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// IsNotification reports whether the request carries no id and expects no response.
func (r *JSONRPCRequest) IsNotification() bool {
	return len(r.ID) == 0 || string(r.ID) == "null"
}

// JSONRPCResponse represents a JSON-RPC 2.0 response
type JSONRPCResponse struct {
	JSONRPC string          `json:"jsonrpc"` // Always "2.0"
	ID      json.RawMessage `json:"id"`      // Matches request ID
	Result  any             `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// RPCError represents a JSON-RPC 2.0 error object
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Error implements the error interface for RPCError
func (e *RPCError) Error() string {
	return e.Message
}

// Standard JSON-RPC error codes
const (
	ParseError     = -32700 // Invalid JSON
	InvalidRequest = -32600 // Invalid Request object
	MethodNotFound = -32601 // Method does not exist
	InvalidParams  = -32602 // Invalid method parameters
	InternalError  = -32603 // Internal JSON-RPC error
	ServerError    = -32000 // Server error (generic)
)

// Tool dispatch error codes
const (
	ToolNotFound     = -32001 // No tool registered under the name
	UpstreamFailed   = -32002 // Upstream API call failed
	ValidationFailed = -32003 // Argument validation failed
	TimeoutExceeded  = -32004 // Request timeout
)

// CallToolParams represents parameters for tools/call
type CallToolParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// ListToolsResult represents the result of tools/list
type ListToolsResult struct {
	Tools []Descriptor `json:"tools"`
}

// CallToolResult represents the result of tools/call
type CallToolResult struct {
	Content []TextContent `json:"content"`
	IsError bool          `json:"isError,omitempty"`
}

// Implementation identifies this server in the initialize handshake.
type Implementation struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// InitializeResult is the result of the initialize method.
type InitializeResult struct {
	ProtocolVersion string         `json:"protocolVersion"`
	Capabilities    map[string]any `json:"capabilities"`
	ServerInfo      Implementation `json:"serverInfo"`
}

// NewTextResult wraps text in a single-block result.
func NewTextResult(text string) *CallToolResult {
	return &CallToolResult{Content: []TextContent{{Type: "text", Text: text}}}
}
