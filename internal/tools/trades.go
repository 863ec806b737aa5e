package tools

import (
	"context"

	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/mcp"
	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/prism"
)

type recentTradesArgs struct {
	Symbol   string `json:"symbol" url:"-" jsonschema_description:"Asset symbol"`
	Limit    *int   `json:"limit,omitempty" url:"limit,omitempty" jsonschema_description:"Number of trades to return"`
	Exchange string `json:"exchange,omitempty" url:"exchange,omitempty" jsonschema_description:"Filter by specific exchange"`
}

type largeTradesArgs struct {
	Symbol   string   `json:"symbol" url:"-" jsonschema_description:"Asset symbol"`
	MinValue *float64 `json:"min_value,omitempty" url:"min_value,omitempty" jsonschema_description:"Minimum USD value threshold (e.g. 100000 for $100k+)"`
	Limit    *int     `json:"limit,omitempty" url:"limit,omitempty" jsonschema_description:"Number of trades to return"`
}

func tradeTools(up Upstream) []*mcp.Tool {
	return []*mcp.Tool{
		mcp.Bind("get_recent_trades",
			"Get recent trades for a symbol",
			func(ctx context.Context, a recentTradesArgs) (any, error) {
				return up.Do(ctx, prism.Get("trades.recent", "trades", a.Symbol).WithQuery(a))
			}, mcp.Nest("trades")),

		mcp.Bind("get_large_trades",
			"Get large trades / block trades (institutional-size prints)",
			func(ctx context.Context, a largeTradesArgs) (any, error) {
				return up.Do(ctx, prism.Get("trades.large", "trades", a.Symbol, "large").WithQuery(a))
			}, mcp.Nest("large_trades")),
	}
}
