package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a tool invocation failure.
type Kind int

const (
	KindUnknownTool Kind = iota + 1
	KindInvalidArguments
	KindUpstreamFailure
)

func (k Kind) String() string {
	switch k {
	case KindUnknownTool:
		return "unknown_tool"
	case KindInvalidArguments:
		return "invalid_arguments"
	case KindUpstreamFailure:
		return "upstream_failure"
	default:
		return "unknown"
	}
}

// Sentinels matched by errors.Is against a *ToolError of the same kind.
var (
	ErrUnknownTool       = errors.New("unknown tool")
	ErrInvalidArguments  = errors.New("invalid arguments")
	ErrUpstreamFailure   = errors.New("upstream failure")
	ErrDuplicateTool     = errors.New("duplicate tool name")
	errInvalidDefinition = errors.New("invalid tool definition")
)

// ToolError is returned by Registry.Invoke.
type ToolError struct {
	Kind  Kind
	Tool  string
	Field string // failing argument, InvalidArguments only
	Err   error
}

func (e *ToolError) Error() string {
	switch e.Kind {
	case KindUnknownTool:
		return fmt.Sprintf("unknown tool: %s", e.Tool)
	case KindInvalidArguments:
		if e.Field != "" {
			return fmt.Sprintf("%s: invalid argument %q: %v", e.Tool, e.Field, e.Err)
		}
		return fmt.Sprintf("%s: invalid arguments: %v", e.Tool, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Tool, e.Err)
	}
}

// Unwrap exposes both the kind sentinel and the cause.
func (e *ToolError) Unwrap() []error {
	errs := []error{e.sentinel()}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func (e *ToolError) sentinel() error {
	switch e.Kind {
	case KindUnknownTool:
		return ErrUnknownTool
	case KindInvalidArguments:
		return ErrInvalidArguments
	default:
		return ErrUpstreamFailure
	}
}

// argumentError marks a handler-side decode failure as InvalidArguments.
type argumentError struct {
	field string
	err   error
}

func (e *argumentError) Error() string { return e.err.Error() }
func (e *argumentError) Unwrap() error { return e.err }

// FormatMCPError maps an error to a JSON-RPC error object.
func FormatMCPError(err error) *RPCError {
	var rpcErr *RPCError
	if errors.As(err, &rpcErr) {
		return rpcErr
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &RPCError{
			Code:    TimeoutExceeded,
			Message: "Request timeout",
		}
	}

	var toolErr *ToolError
	if errors.As(err, &toolErr) {
		data := map[string]any{
			"kind": toolErr.Kind.String(),
			"tool": toolErr.Tool,
		}
		switch toolErr.Kind {
		case KindUnknownTool:
			return &RPCError{Code: ToolNotFound, Message: toolErr.Error(), Data: data}
		case KindInvalidArguments:
			if toolErr.Field != "" {
				data["field"] = toolErr.Field
			}
			return &RPCError{Code: ValidationFailed, Message: toolErr.Error(), Data: data}
		default:
			return &RPCError{Code: UpstreamFailed, Message: toolErr.Error(), Data: data}
		}
	}

	return &RPCError{
		Code:    InternalError,
		Message: fmt.Sprintf("Internal error: %s", err.Error()),
	}
}

// HTTPStatusFromError maps MCP error codes to HTTP status codes
func HTTPStatusFromError(rpcErr *RPCError) int {
	if rpcErr == nil {
		return http.StatusOK
	}

	switch rpcErr.Code {
	case ParseError, InvalidRequest, InvalidParams, ValidationFailed:
		return http.StatusBadRequest
	case MethodNotFound, ToolNotFound:
		return http.StatusNotFound
	case UpstreamFailed:
		return http.StatusBadGateway
	case TimeoutExceeded:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// Suggestion returns an actionable next step for an error code, or "" when
// there is none.
func Suggestion(code int) string {
	switch code {
	case ToolNotFound:
		return "List available tools with tools/list or GET /tools"
	case UpstreamFailed:
		return "The data service rejected or failed the request. Please retry in a few moments"
	case TimeoutExceeded:
		return "Request took too long. Try again with a narrower query"
	case ValidationFailed:
		return "Check the tool's inputSchema and try again"
	default:
		return ""
	}
}

// ErrorPayload is the JSON body of an error result on transports that report
// failures in-band (isError results).
func ErrorPayload(err error) map[string]any {
	body := map[string]any{"message": err.Error()}

	var toolErr *ToolError
	if errors.As(err, &toolErr) {
		body["kind"] = toolErr.Kind.String()
		body["tool"] = toolErr.Tool
		if toolErr.Field != "" {
			body["field"] = toolErr.Field
		}
	}
	return map[string]any{"error": body}
}
