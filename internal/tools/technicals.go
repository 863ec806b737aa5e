package tools

import (
	"context"

	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/mcp"
	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/prism"
)

type indicatorsArgs struct {
	Symbol     string `json:"symbol" url:"-" jsonschema_description:"Asset symbol"`
	Indicators string `json:"indicators,omitempty" url:"indicators,omitempty" jsonschema_description:"Comma-separated indicators (e.g. 'RSI,MACD,EMA20')"`
	Timeframe  string `json:"timeframe,omitempty" url:"timeframe,omitempty" jsonschema_description:"Timeframe (default '1d')"`
	Period     *int   `json:"period,omitempty" url:"period,omitempty" jsonschema_description:"Period for calculations"`
}

type forexTechnicalsArgs struct {
	Pair      string `json:"pair" url:"-" jsonschema_description:"Forex pair (e.g. 'EUR/USD', 'GBP/JPY')"`
	Timeframe string `json:"timeframe,omitempty" url:"timeframe,omitempty" jsonschema_description:"Timeframe (default '1d')"`
}

type benchmarkArgs struct {
	Asset     string `json:"asset" url:"-" jsonschema_description:"Asset to compare"`
	Benchmark string `json:"benchmark,omitempty" url:"benchmark,omitempty" jsonschema_description:"Benchmark symbol (default 'SPY')"`
	Days      *int   `json:"days,omitempty" url:"days,omitempty" jsonschema_description:"Number of days (default 30)"`
}

type correlationsArgs struct {
	Assets []string `json:"assets,omitempty" url:"assets,comma,omitempty" jsonschema_description:"Array of asset symbols (optional)"`
	Days   *int     `json:"days,omitempty" url:"days,omitempty" jsonschema_description:"Number of days (default 30)"`
}

func technicalsTools(up Upstream) []*mcp.Tool {
	return []*mcp.Tool{
		mcp.Bind("technical_analysis",
			"Full technical analysis: trend, RSI, MACD, MAs, volume signal, summary (crypto, stocks, forex, commodities)",
			func(ctx context.Context, a timeframeArgs) (any, error) {
				return up.Do(ctx, prism.Get("technicals.analyze", "technicals", a.Symbol, "analysis").WithQuery(a))
			}),

		mcp.Bind("get_technical_indicators",
			"Get specific technical indicators (RSI, MACD, EMA20, etc.)",
			func(ctx context.Context, a indicatorsArgs) (any, error) {
				return up.Do(ctx, prism.Get("technicals.indicators", "technicals", a.Symbol, "indicators").WithQuery(a))
			}),

		mcp.Bind("get_support_resistance",
			"Get key support and resistance price levels",
			func(ctx context.Context, a timeframeArgs) (any, error) {
				return up.Do(ctx, prism.Get("technicals.supportResistance", "technicals", a.Symbol, "support-resistance").WithQuery(a))
			}),

		mcp.Bind("get_trend",
			"Get trend direction and strength (bullish, bearish, neutral)",
			func(ctx context.Context, a timeframeArgs) (any, error) {
				return up.Do(ctx, prism.Get("technicals.trend", "technicals", a.Symbol, "trend").WithQuery(a))
			}),

		mcp.Bind("analyze_forex_technicals",
			"Technical analysis for a forex pair (EUR/USD, GBP/JPY, etc.)",
			func(ctx context.Context, a forexTechnicalsArgs) (any, error) {
				return up.Do(ctx, prism.Get("technicals.forex", "technicals", "forex", a.Pair).WithQuery(a))
			}),

		mcp.Bind("analyze_commodity_technicals",
			"Technical analysis for a commodity (GOLD, OIL, NATGAS, etc.)",
			func(ctx context.Context, a timeframeArgs) (any, error) {
				return up.Do(ctx, prism.Get("technicals.commodity", "technicals", "commodities", a.Symbol).WithQuery(a))
			}),

		mcp.Bind("compare_vs_benchmark",
			"Compare asset performance vs a benchmark (SPY, BTC, etc.)",
			func(ctx context.Context, a benchmarkArgs) (any, error) {
				return up.Do(ctx, prism.Get("technicals.benchmark", "technicals", a.Asset, "benchmark").WithQuery(a))
			}),

		mcp.Bind("get_correlations",
			"Get cross-asset correlation matrix (works with any mix of stocks, crypto, ETFs)",
			func(ctx context.Context, a correlationsArgs) (any, error) {
				return up.Do(ctx, prism.Get("technicals.correlations", "technicals", "correlations").WithQuery(a))
			}),
	}
}
