package tools

import (
	"context"

	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/mcp"
	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/prism"
)

type arbitrageArgs struct {
	Category       string   `json:"category,omitempty" url:"category,omitempty" jsonschema_description:"Category filter"`
	MinProfitPct   *float64 `json:"min_profit_pct,omitempty" url:"min_profit_pct,omitempty" jsonschema_description:"Minimum profit percentage"`
	MaxStake       *float64 `json:"max_stake,omitempty" url:"max_stake,omitempty" jsonschema_description:"Maximum stake amount"`
	IncludeExpired *bool    `json:"include_expired,omitempty" url:"include_expired,omitempty" jsonschema_description:"Include expired opportunities"`
	Limit          *int     `json:"limit,omitempty" url:"limit,omitempty" jsonschema_description:"Number of opportunities to return"`
}

type compareOddsArgs struct {
	EventID string `json:"event_id" url:"-" jsonschema_description:"Event ID"`
	Market  string `json:"market,omitempty" url:"market,omitempty" jsonschema_description:"Market type filter"`
	Format  string `json:"format,omitempty" url:"format,omitempty" jsonschema_description:"Odds format (e.g. 'decimal', 'american')"`
}

type oddsHistoryArgs struct {
	MarketID string `json:"market_id" url:"-" jsonschema_description:"Market ID"`
	Outcome  string `json:"outcome,omitempty" url:"outcome,omitempty" jsonschema_description:"Outcome filter"`
	Platform string `json:"platform,omitempty" url:"platform,omitempty" jsonschema_description:"Platform filter"`
	Interval string `json:"interval,omitempty" url:"interval,omitempty" jsonschema_description:"Data interval"`
	Days     *int   `json:"days,omitempty" url:"days,omitempty" jsonschema_description:"Number of days back"`
}

type bestOddsArgs struct {
	Category string `json:"category,omitempty" url:"category,omitempty" jsonschema_description:"Category filter"`
	Sport    string `json:"sport,omitempty" url:"sport,omitempty" jsonschema_description:"Sport filter"`
	Sort     string `json:"sort,omitempty" url:"sort,omitempty" jsonschema_description:"Sort criteria"`
	Limit    *int   `json:"limit,omitempty" url:"limit,omitempty" jsonschema_description:"Number of odds to return"`
}

type platformsArgs struct {
	Category string `json:"category,omitempty" url:"category,omitempty" jsonschema_description:"Category filter"`
}

func oddsTools(up Upstream) []*mcp.Tool {
	return []*mcp.Tool{
		mcp.Bind("find_arbitrage",
			"Find cross-platform arbitrage opportunities across sportsbooks",
			func(ctx context.Context, a arbitrageArgs) (any, error) {
				return up.Do(ctx, prism.Get("odds.arbitrage", "odds", "arbitrage").WithQuery(a))
			}, mcp.Nest("opportunities")),

		mcp.Bind("get_event_arbitrage",
			"Get arbitrage opportunities for a specific event",
			func(ctx context.Context, a eventArgs) (any, error) {
				return up.Do(ctx, prism.Get("odds.eventArbitrage", "odds", "arbitrage", a.EventID))
			}),

		mcp.Bind("compare_odds",
			"Side-by-side odds comparison across all bookmakers for an event",
			func(ctx context.Context, a compareOddsArgs) (any, error) {
				return up.Do(ctx, prism.Get("odds.compare", "odds", "compare", a.EventID).WithQuery(a))
			}),

		mcp.Bind("get_odds_history",
			"Get historical odds movement for a market",
			func(ctx context.Context, a oddsHistoryArgs) (any, error) {
				return up.Do(ctx, prism.Get("odds.history", "odds", "history", a.MarketID).WithQuery(a))
			}, mcp.Nest("history")),

		mcp.Bind("get_best_odds",
			"Get best available odds across all platforms",
			func(ctx context.Context, a bestOddsArgs) (any, error) {
				return up.Do(ctx, prism.Get("odds.best", "odds", "best").WithQuery(a))
			}, mcp.Nest("odds")),

		mcp.Bind("get_odds_platforms",
			"Get all supported odds platforms",
			func(ctx context.Context, a platformsArgs) (any, error) {
				return up.Do(ctx, prism.Get("odds.platforms", "odds", "platforms").WithQuery(a))
			}, mcp.Nest("platforms")),
	}
}
