package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMCPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantStatus int
	}{
		{name: "unknown tool", err: &ToolError{Kind: KindUnknownTool, Tool: "x", Err: ErrUnknownTool}, wantCode: ToolNotFound, wantStatus: http.StatusNotFound},
		{name: "invalid arguments", err: &ToolError{Kind: KindInvalidArguments, Tool: "x", Field: "key", Err: errors.New("missing")}, wantCode: ValidationFailed, wantStatus: http.StatusBadRequest},
		{name: "upstream", err: &ToolError{Kind: KindUpstreamFailure, Tool: "x", Err: errors.New("503")}, wantCode: UpstreamFailed, wantStatus: http.StatusBadGateway},
		{name: "timeout", err: fmt.Errorf("wrapped: %w", context.DeadlineExceeded), wantCode: TimeoutExceeded, wantStatus: http.StatusGatewayTimeout},
		{name: "rpc passthrough", err: &RPCError{Code: ParseError, Message: "bad"}, wantCode: ParseError, wantStatus: http.StatusBadRequest},
		{name: "generic", err: errors.New("oops"), wantCode: InternalError, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rpcErr := FormatMCPError(tt.err)
			assert.Equal(t, tt.wantCode, rpcErr.Code)
			assert.Equal(t, tt.wantStatus, HTTPStatusFromError(rpcErr))
		})
	}
}

func TestFormatMCPErrorCarriesField(t *testing.T) {
	rpcErr := FormatMCPError(&ToolError{Kind: KindInvalidArguments, Tool: "verify_key", Field: "key", Err: errors.New("missing")})
	data := rpcErr.Data.(map[string]any)
	assert.Equal(t, "key", data["field"])
	assert.Equal(t, "invalid_arguments", data["kind"])
}

func TestErrorPayload(t *testing.T) {
	body := ErrorPayload(&ToolError{Kind: KindUpstreamFailure, Tool: "get_price", Err: errors.New("boom")})
	inner := body["error"].(map[string]any)
	assert.Equal(t, "upstream_failure", inner["kind"])
	assert.Equal(t, "get_price", inner["tool"])
	assert.NotContains(t, inner, "field")
}

func TestSuggestion(t *testing.T) {
	assert.Contains(t, Suggestion(ToolNotFound), "tools/list")
	assert.NotEmpty(t, Suggestion(ValidationFailed))
	assert.NotEmpty(t, Suggestion(UpstreamFailed))
	assert.NotEmpty(t, Suggestion(TimeoutExceeded))
	assert.Empty(t, Suggestion(ParseError))
}
