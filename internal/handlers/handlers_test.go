package handlers

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/hints"
	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/mcp"
	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/models"
)

type priceArgs struct {
	Symbol string `json:"symbol" jsonschema_description:"Asset symbol"`
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T, timeout time.Duration) *httptest.Server {
	t.Helper()

	table := hints.NewTable(map[string]hints.Hint{
		"get_price": {SuggestedComponent: "PrismMetricCard", Layout: hints.LayoutCard},
	})
	reg := mcp.NewRegistry(table, testLogger())
	require.NoError(t, reg.Register(mcp.Bind("get_price", "Get a price",
		func(_ context.Context, a priceArgs) (any, error) {
			return map[string]any{"symbol": a.Symbol, "price": 100}, nil
		})))
	require.NoError(t, reg.Register(mcp.Bind("slow", "Waits for cancellation",
		func(ctx context.Context, _ struct{}) (any, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})))

	srv := httptest.NewServer(NewRouter(RouterConfig{
		Registry: reg,
		Info:     mcp.Implementation{Name: "prism-mcp", Version: "test"},
		Timeout:  timeout,
		Logger:   testLogger(),
		Metrics: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("# metrics\n"))
		}),
	}))
	t.Cleanup(srv.Close)
	return srv
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *mcp.RPCError   `json:"error"`
}

func postRPC(t *testing.T, srv *httptest.Server, body string, accept string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/mcp", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeRPC(t *testing.T, resp *http.Response) rpcResponse {
	t.Helper()
	var out rpcResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "2.0", out.JSONRPC)
	return out
}

func TestInitialize(t *testing.T) {
	srv := newTestServer(t, time.Second)

	out := decodeRPC(t, postRPC(t, srv, `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`, ""))
	require.Nil(t, out.Error)
	assert.JSONEq(t, `1`, string(out.ID))

	var result mcp.InitializeResult
	require.NoError(t, json.Unmarshal(out.Result, &result))
	assert.Equal(t, mcp.ProtocolVersion, result.ProtocolVersion)
	assert.Equal(t, "prism-mcp", result.ServerInfo.Name)
	assert.Contains(t, result.Capabilities, "tools")
}

func TestToolsList(t *testing.T) {
	srv := newTestServer(t, time.Second)

	for _, method := range []string{"tools/list", "list_tools"} {
		t.Run(method, func(t *testing.T) {
			out := decodeRPC(t, postRPC(t, srv, `{"jsonrpc":"2.0","id":"a","method":"`+method+`"}`, ""))
			require.Nil(t, out.Error)

			var result struct {
				Tools []map[string]any `json:"tools"`
			}
			require.NoError(t, json.Unmarshal(out.Result, &result))
			require.Len(t, result.Tools, 2)
			assert.Equal(t, "get_price", result.Tools[0]["name"])
			assert.Contains(t, result.Tools[0], "_meta")
			assert.NotContains(t, result.Tools[1], "_meta")
		})
	}
}

func TestToolsCall(t *testing.T) {
	srv := newTestServer(t, time.Second)

	out := decodeRPC(t, postRPC(t, srv,
		`{"jsonrpc":"2.0","id":7,"method":"tools/call","params":{"name":"get_price","arguments":{"symbol":"BTC"}}}`, ""))
	require.Nil(t, out.Error)

	var result mcp.CallToolResult
	require.NoError(t, json.Unmarshal(out.Result, &result))
	require.Len(t, result.Content, 1)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(result.Content[0].Text), &payload))
	assert.Equal(t, "BTC", payload["symbol"])
	assert.Equal(t, map[string]any{"suggestedComponent": "PrismMetricCard", "layout": "card"}, payload[mcp.UIKey])
}

func TestToolsCallErrors(t *testing.T) {
	srv := newTestServer(t, time.Second)

	tests := []struct {
		name       string
		body       string
		wantCode   int
		wantStatus int
		wantData   map[string]any
	}{
		{
			name:       "unknown tool",
			body:       `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"nope"}}`,
			wantCode:   mcp.ToolNotFound,
			wantStatus: http.StatusNotFound,
			wantData:   map[string]any{"kind": "unknown_tool", "tool": "nope"},
		},
		{
			name:       "missing argument",
			body:       `{"jsonrpc":"2.0","id":1,"method":"call_tool","params":{"name":"get_price","arguments":{}}}`,
			wantCode:   mcp.ValidationFailed,
			wantStatus: http.StatusBadRequest,
			wantData:   map[string]any{"kind": "invalid_arguments", "tool": "get_price", "field": "symbol"},
		},
		{
			name:       "missing params",
			body:       `{"jsonrpc":"2.0","id":1,"method":"tools/call"}`,
			wantCode:   mcp.InvalidParams,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown method",
			body:       `{"jsonrpc":"2.0","id":1,"method":"resources/list"}`,
			wantCode:   mcp.MethodNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "bad version",
			body:       `{"jsonrpc":"1.0","id":1,"method":"ping"}`,
			wantCode:   mcp.InvalidRequest,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "batch",
			body:       `[{"jsonrpc":"2.0","id":1,"method":"ping"}]`,
			wantCode:   mcp.InvalidRequest,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postRPC(t, srv, tt.body, "")
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			out := decodeRPC(t, resp)
			require.NotNil(t, out.Error)
			assert.Equal(t, tt.wantCode, out.Error.Code)
			if tt.wantData != nil {
				assert.Equal(t, tt.wantData, out.Error.Data)
			}
		})
	}
}

func TestParseErrorHasNullID(t *testing.T) {
	srv := newTestServer(t, time.Second)

	out := decodeRPC(t, postRPC(t, srv, `{not json`, ""))
	require.NotNil(t, out.Error)
	assert.Equal(t, mcp.ParseError, out.Error.Code)
	assert.Equal(t, "null", string(out.ID))
}

func TestErrorStatusFollowsFraming(t *testing.T) {
	srv := newTestServer(t, time.Second)
	body := `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"nope"}}`

	plain := postRPC(t, srv, body, "")
	assert.Equal(t, http.StatusNotFound, plain.StatusCode)

	stream := postRPC(t, srv, body, "text/event-stream")
	assert.Equal(t, http.StatusOK, stream.StatusCode)
	assert.Equal(t, "text/event-stream", stream.Header.Get("Content-Type"))

	ok := postRPC(t, srv, `{"jsonrpc":"2.0","id":2,"method":"ping"}`, "")
	assert.Equal(t, http.StatusOK, ok.StatusCode)
}

func TestNotificationIsAccepted(t *testing.T) {
	srv := newTestServer(t, time.Second)

	resp := postRPC(t, srv, `{"jsonrpc":"2.0","method":"notifications/initialized"}`, "")
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, body)
}

func TestSSEFraming(t *testing.T) {
	srv := newTestServer(t, time.Second)

	resp := postRPC(t, srv, `{"jsonrpc":"2.0","id":3,"method":"ping"}`, "application/json, text/event-stream")
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	scanner := bufio.NewScanner(resp.Body)
	require.True(t, scanner.Scan())
	assert.Equal(t, "event: message", scanner.Text())
	require.True(t, scanner.Scan())
	data, ok := strings.CutPrefix(scanner.Text(), "data: ")
	require.True(t, ok)
	assert.JSONEq(t, `{"jsonrpc":"2.0","id":3,"result":{}}`, data)
}

func TestTimeout(t *testing.T) {
	srv := newTestServer(t, 20*time.Millisecond)

	resp := postRPC(t, srv, `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"slow"}}`, "")
	assert.Equal(t, http.StatusGatewayTimeout, resp.StatusCode)
	out := decodeRPC(t, resp)
	require.NotNil(t, out.Error)
	assert.Equal(t, mcp.TimeoutExceeded, out.Error.Code)
}

func TestCatalogEndpoints(t *testing.T) {
	srv := newTestServer(t, time.Second)

	t.Run("list", func(t *testing.T) {
		resp, err := srv.Client().Get(srv.URL + "/tools")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var index models.ToolIndex
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&index))
		assert.Equal(t, 2, index.Count)
		assert.Equal(t, models.ToolSummary{
			Name:        "get_price",
			Description: "Get a price",
			ReadOnly:    true,
			Component:   "PrismMetricCard",
		}, index.Tools[0])
	})

	t.Run("get", func(t *testing.T) {
		resp, err := srv.Client().Get(srv.URL + "/tools/get_price")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var d map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&d))
		assert.Equal(t, "get_price", d["name"])
		assert.Equal(t, map[string]any{"readOnlyHint": true}, d["annotations"])
	})

	t.Run("missing", func(t *testing.T) {
		resp, err := srv.Client().Get(srv.URL + "/tools/nope")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body models.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "tool_not_found", body.Error)
		assert.Equal(t, mcp.Suggestion(mcp.ToolNotFound), body.Suggestion)
		assert.NotEmpty(t, body.Suggestion)
	})
}

func TestHealthAndMetrics(t *testing.T) {
	srv := newTestServer(t, time.Second)

	resp, err := srv.Client().Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	var health models.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, models.HealthResponse{Status: "healthy", Version: "test", Tools: 2}, health)

	metrics, err := srv.Client().Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer metrics.Body.Close()
	assert.Equal(t, http.StatusOK, metrics.StatusCode)
}

func TestCorrelationID(t *testing.T) {
	srv := newTestServer(t, time.Second)

	t.Run("generated", func(t *testing.T) {
		resp := postRPC(t, srv, `{"jsonrpc":"2.0","id":1,"method":"ping"}`, "")
		assert.NotEmpty(t, resp.Header.Get(CorrelationHeader))
	})

	t.Run("propagated", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, srv.URL+"/health", nil)
		require.NoError(t, err)
		req.Header.Set(CorrelationHeader, "abc-123")
		resp, err := srv.Client().Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, "abc-123", resp.Header.Get(CorrelationHeader))
	})
}
