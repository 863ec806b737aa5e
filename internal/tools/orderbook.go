package tools

import (
	"context"

	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/mcp"
	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/prism"
)

type orderbookArgs struct {
	Symbol    string `json:"symbol" url:"-" jsonschema_description:"Asset symbol"`
	Levels    *int   `json:"levels,omitempty" url:"levels,omitempty" jsonschema_description:"Number of price levels to return (default 10)"`
	Exchanges string `json:"exchanges,omitempty" url:"exchanges,omitempty" jsonschema_description:"Filter by specific exchanges"`
}

type depthArgs struct {
	Symbol   string `json:"symbol" url:"-" jsonschema_description:"Asset symbol"`
	Levels   *int   `json:"levels,omitempty" url:"levels,omitempty" jsonschema_description:"Number of price levels (default 10)"`
	Exchange string `json:"exchange,omitempty" url:"exchange,omitempty" jsonschema_description:"Specific exchange filter"`
}

type imbalanceArgs struct {
	Symbol string `json:"symbol" url:"-" jsonschema_description:"Asset symbol"`
	Depth  *int   `json:"depth,omitempty" url:"depth,omitempty" jsonschema_description:"Depth to analyze (default 10)"`
}

func orderbookTools(up Upstream) []*mcp.Tool {
	return []*mcp.Tool{
		mcp.Bind("get_orderbook",
			"Get aggregated order book (consolidated across exchanges)",
			func(ctx context.Context, a orderbookArgs) (any, error) {
				return up.Do(ctx, prism.Get("orderbook.aggregated", "orderbook", a.Symbol).WithQuery(a))
			}),

		mcp.Bind("get_orderbook_depth",
			"Get full order book depth data",
			func(ctx context.Context, a depthArgs) (any, error) {
				return up.Do(ctx, prism.Get("orderbook.depth", "orderbook", a.Symbol, "depth").WithQuery(a))
			}),

		mcp.Bind("get_bid_ask_spread",
			"Get bid-ask spread (absolute and percentage)",
			func(ctx context.Context, a assetArgs) (any, error) {
				return up.Do(ctx, prism.Get("orderbook.spread", "orderbook", a.Symbol, "spread"))
			}),

		mcp.Bind("get_orderbook_imbalance",
			"Get order book imbalance (bid vs ask pressure). Positive = bullish, negative = bearish",
			func(ctx context.Context, a imbalanceArgs) (any, error) {
				return up.Do(ctx, prism.Get("orderbook.imbalance", "orderbook", a.Symbol, "imbalance").WithQuery(a))
			}),
	}
}
