package stdio

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/hints"
	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/mcp"
)

type priceArgs struct {
	Symbol string `json:"symbol"`
}

func connect(t *testing.T) *sdkmcp.ClientSession {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	table := hints.NewTable(map[string]hints.Hint{
		"get_price": {SuggestedComponent: "PrismMetricCard", Layout: hints.LayoutCard},
	})
	reg := mcp.NewRegistry(table, logger)
	require.NoError(t, reg.Register(mcp.Bind("get_price", "Get a price",
		func(_ context.Context, a priceArgs) (any, error) {
			return map[string]any{"symbol": a.Symbol, "price": 100}, nil
		})))
	require.NoError(t, reg.Register(mcp.Bind("issue_key", "Issue a key",
		func(context.Context, struct{}) (any, error) {
			return nil, errors.New("provisioning unavailable")
		}, mcp.Mutating())))

	clientTransport, serverTransport := sdkmcp.NewInMemoryTransports()
	server := NewServer(reg, mcp.Implementation{Name: "prism-mcp", Version: "test"}, logger)

	ctx, cancel := context.WithCancel(context.Background())
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "client", Version: "test"}, nil)
	session, err := client.Connect(context.Background(), clientTransport, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		session.Close()
		serverSession.Close()
		cancel()
	})
	return session
}

func textOf(t *testing.T, res *sdkmcp.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestListTools(t *testing.T) {
	session := connect(t)

	res, err := session.ListTools(context.Background(), &sdkmcp.ListToolsParams{})
	require.NoError(t, err)
	require.Len(t, res.Tools, 2)

	price := res.Tools[0]
	assert.Equal(t, "get_price", price.Name)
	require.NotNil(t, price.Annotations)
	assert.True(t, price.Annotations.ReadOnlyHint)
	assert.Contains(t, price.Meta, uiMetaKey)

	key := res.Tools[1]
	require.NotNil(t, key.Annotations)
	assert.False(t, key.Annotations.ReadOnlyHint)
	assert.NotContains(t, key.Meta, uiMetaKey)
}

func TestCallTool(t *testing.T) {
	session := connect(t)

	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      "get_price",
		Arguments: map[string]any{"symbol": "ETH"},
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(textOf(t, res)), &payload))
	assert.Equal(t, "ETH", payload["symbol"])
	assert.Contains(t, payload, mcp.UIKey)
}

func TestCallToolErrorsAreInBand(t *testing.T) {
	session := connect(t)

	t.Run("invalid arguments", func(t *testing.T) {
		res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
			Name:      "get_price",
			Arguments: map[string]any{},
		})
		require.NoError(t, err)
		assert.True(t, res.IsError)

		var body struct {
			Error map[string]any `json:"error"`
		}
		require.NoError(t, json.Unmarshal([]byte(textOf(t, res)), &body))
		assert.Equal(t, "invalid_arguments", body.Error["kind"])
		assert.Equal(t, "symbol", body.Error["field"])
	})

	t.Run("handler failure", func(t *testing.T) {
		res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{Name: "issue_key"})
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, textOf(t, res), "provisioning unavailable")
		assert.Contains(t, textOf(t, res), "upstream_failure")
	})
}
