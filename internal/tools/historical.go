package tools

import (
	"context"

	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/mcp"
	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/prism"
)

type historicalPriceArgs struct {
	Symbol   string `json:"symbol" url:"-" jsonschema_description:"Asset symbol"`
	FromDate string `json:"from_date,omitempty" url:"from_date,omitempty" jsonschema_description:"Start date (ISO format YYYY-MM-DD)"`
	ToDate   string `json:"to_date,omitempty" url:"to_date,omitempty" jsonschema_description:"End date (ISO format)"`
	Days     *int   `json:"days,omitempty" url:"days,omitempty" jsonschema_description:"Alternative to from/to: number of days back"`
	Interval string `json:"interval,omitempty" url:"interval,omitempty" jsonschema:"enum=1d,enum=1h,enum=5m,enum=15m" jsonschema_description:"Data interval"`
}

type daysArgs struct {
	Symbol string `json:"symbol" url:"-" jsonschema_description:"Asset symbol"`
	Days   *int   `json:"days,omitempty" url:"days,omitempty" jsonschema_description:"Number of days (default 30)"`
}

type returnsArgs struct {
	Symbol  string `json:"symbol" url:"-" jsonschema_description:"Asset symbol"`
	Periods string `json:"periods,omitempty" url:"periods,omitempty" jsonschema_description:"Comma-separated periods (e.g. '1d,7d,30d,1y')"`
}

type volatilityArgs struct {
	Symbol string `json:"symbol" url:"-" jsonschema_description:"Asset symbol"`
	Window *int   `json:"window,omitempty" url:"window,omitempty" jsonschema_description:"Rolling window in days (default 30)"`
}

type compareArgs struct {
	Symbols []string `json:"symbols" url:"symbols,comma" jsonschema_description:"Array of asset symbols to compare"`
	Days    *int     `json:"days,omitempty" url:"days,omitempty" jsonschema_description:"Number of days (default 30)"`
	Metric  string   `json:"metric,omitempty" url:"metric,omitempty" jsonschema_description:"Metric to compare (default 'price')"`
}

func historicalTools(up Upstream) []*mcp.Tool {
	return []*mcp.Tool{
		mcp.Bind("get_historical_prices",
			"Get OHLCV price history for any asset (crypto, stocks, ETFs, forex, commodities)",
			func(ctx context.Context, a historicalPriceArgs) (any, error) {
				return up.Do(ctx, prism.Get("historical.prices", "historical", a.Symbol, "prices").WithQuery(a))
			}, mcp.Nest("data")),

		mcp.Bind("get_historical_volume",
			"Get volume history for an asset",
			func(ctx context.Context, a daysArgs) (any, error) {
				return up.Do(ctx, prism.Get("historical.volume", "historical", a.Symbol, "volume").WithQuery(a))
			}, mcp.Nest("data")),

		mcp.Bind("get_historical_metrics",
			"Get multiple historical metrics over time (price, volume, market cap combined)",
			func(ctx context.Context, a daysArgs) (any, error) {
				return up.Do(ctx, prism.Get("historical.metrics", "historical", a.Symbol, "metrics").WithQuery(a))
			}, mcp.Nest("data")),

		mcp.Bind("get_returns",
			"Get period returns (1d, 7d, 30d, 1y, etc.)",
			func(ctx context.Context, a returnsArgs) (any, error) {
				return up.Do(ctx, prism.Get("historical.returns", "historical", a.Symbol, "returns").WithQuery(a))
			}),

		mcp.Bind("get_historical_volatility",
			"Get historical volatility with rolling window calculation",
			func(ctx context.Context, a volatilityArgs) (any, error) {
				return up.Do(ctx, prism.Get("historical.volatility", "historical", a.Symbol, "volatility").WithQuery(a))
			}),

		mcp.Bind("compare_assets",
			"Compare multiple assets over time with normalized performance (all start at 100)",
			func(ctx context.Context, a compareArgs) (any, error) {
				return up.Do(ctx, prism.Get("historical.compare", "historical", "compare").WithQuery(a))
			}, mcp.Nest("data")),
	}
}
