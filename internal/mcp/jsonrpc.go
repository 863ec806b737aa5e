package mcp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// MaxRequestBytes bounds a single JSON-RPC request body.
const MaxRequestBytes = 1 << 20

// ParseJSONRPCRequest reads one JSON-RPC 2.0 request. Batches are not
// supported. Every failure is an *RPCError ready to send back.
func ParseJSONRPCRequest(r io.Reader) (*JSONRPCRequest, error) {
	body, err := io.ReadAll(io.LimitReader(r, MaxRequestBytes+1))
	if err != nil {
		return nil, &RPCError{Code: ParseError, Message: "Unreadable request body", Data: err.Error()}
	}
	if len(body) > MaxRequestBytes {
		return nil, &RPCError{Code: InvalidRequest, Message: fmt.Sprintf("Request body exceeds %d bytes", MaxRequestBytes)}
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return nil, &RPCError{Code: InvalidRequest, Message: "Batch requests are not supported"}
	}

	var req JSONRPCRequest
	if err := json.Unmarshal(trimmed, &req); err != nil {
		return nil, &RPCError{Code: ParseError, Message: "Invalid JSON", Data: err.Error()}
	}

	switch {
	case req.JSONRPC != "2.0":
		return nil, &RPCError{Code: InvalidRequest, Message: "jsonrpc must be \"2.0\"", Data: req.JSONRPC}
	case req.Method == "":
		return nil, &RPCError{Code: InvalidRequest, Message: "method is required"}
	}
	return &req, nil
}

// ParseCallToolParams decodes tools/call params. A call without a tool name
// is rejected as InvalidParams.
func ParseCallToolParams(params json.RawMessage) (*CallToolParams, error) {
	p, err := decodeParams[CallToolParams](params, "tools/call")
	if err != nil {
		return nil, err
	}
	if p.Name == "" {
		return nil, &RPCError{Code: InvalidParams, Message: "tools/call requires a tool name"}
	}
	return p, nil
}

func decodeParams[T any](params json.RawMessage, method string) (*T, error) {
	if len(params) == 0 || string(params) == "null" {
		return nil, &RPCError{Code: InvalidParams, Message: method + " requires params"}
	}
	var out T
	if err := json.Unmarshal(params, &out); err != nil {
		return nil, &RPCError{Code: InvalidParams, Message: "malformed " + method + " params", Data: err.Error()}
	}
	return &out, nil
}

// NewJSONRPCError builds an error response.
func NewJSONRPCError(id json.RawMessage, rpcErr *RPCError) *JSONRPCResponse {
	return &JSONRPCResponse{JSONRPC: "2.0", ID: normalizeID(id), Error: rpcErr}
}

// NewJSONRPCResult builds a success response.
func NewJSONRPCResult(id json.RawMessage, result any) *JSONRPCResponse {
	return &JSONRPCResponse{JSONRPC: "2.0", ID: normalizeID(id), Result: result}
}

// Responses to unparseable requests carry a null id.
func normalizeID(id json.RawMessage) json.RawMessage {
	if len(id) == 0 {
		return json.RawMessage("null")
	}
	return id
}
