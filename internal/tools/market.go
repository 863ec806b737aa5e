package tools

import (
	"context"

	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/mcp"
	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/prism"
)

type priceArgs struct {
	Symbol         string `json:"symbol" url:"-" jsonschema_description:"Crypto ticker or name (e.g. 'BTC', 'ETH', 'SOL')"`
	IncludeSources *bool  `json:"include_sources,omitempty" url:"include_sources,omitempty" jsonschema_description:"Include per-source price breakdown"`
}

type trendingArgs struct {
	IncludePools   *bool `json:"include_pools,omitempty" url:"include_pools,omitempty" jsonschema_description:"Include trending DEX pools"`
	IncludeSolana  *bool `json:"include_solana,omitempty" url:"include_solana,omitempty" jsonschema_description:"Include Solana bonding/graduated tokens"`
	LimitPerSource *int  `json:"limit_per_source,omitempty" url:"limit_per_source,omitempty" jsonschema_description:"Max results per source"`
}

type overviewArgs struct {
	IncludeTrending *bool `json:"include_trending,omitempty" url:"include_trending,omitempty" jsonschema_description:"Include trending assets"`
	IncludeMovers   *bool `json:"include_movers,omitempty" url:"include_movers,omitempty" jsonschema_description:"Include top gainers/losers"`
	MoversLimit     *int  `json:"movers_limit,omitempty" url:"movers_limit,omitempty" jsonschema_description:"Number of movers to return"`
}

var (
	globalRequest    = prism.Get("crypto.global", "crypto", "global")
	fearGreedRequest = prism.Get("crypto.fearGreed", "crypto", "fear-greed")
)

func marketTools(up Upstream) []*mcp.Tool {
	return []*mcp.Tool{
		mcp.Bind("get_price",
			"Get the consensus price for any crypto asset. Aggregates across sources for accuracy.",
			func(ctx context.Context, a priceArgs) (any, error) {
				return up.Do(ctx, prism.Get("crypto.price", "crypto", "price", a.Symbol).WithQuery(a))
			}),

		mcp.Bind("get_trending",
			"Get trending crypto assets by volume, social buzz, and price action.",
			func(ctx context.Context, a trendingArgs) (any, error) {
				return up.Do(ctx, prism.Get("crypto.trending", "crypto", "trending").WithQuery(a))
			}),

		mcp.Bind("market_overview",
			"Get a full crypto market overview: global stats, fear & greed index, top gainers and losers.",
			func(ctx context.Context, a overviewArgs) (any, error) {
				return fanOut(ctx, up,
					namedRequest{"overview", prism.Get("crypto.overview", "crypto", "overview").WithQuery(a)},
					namedRequest{"global", globalRequest},
					namedRequest{"fear_greed", fearGreedRequest},
				)
			}),

		mcp.Bind("get_fear_greed",
			"Get the crypto fear & greed index with its current classification.",
			func(ctx context.Context, _ noArgs) (any, error) {
				return up.Do(ctx, fearGreedRequest)
			}),

		mcp.Bind("get_global_market",
			"Get global crypto market statistics: total market cap, 24h volume, and BTC dominance.",
			func(ctx context.Context, _ noArgs) (any, error) {
				return up.Do(ctx, globalRequest)
			}),
	}
}
