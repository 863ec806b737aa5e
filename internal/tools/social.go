package tools

import (
	"context"

	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/mcp"
	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/prism"
)

type socialArgs struct {
	Symbol string `json:"symbol" url:"-" jsonschema_description:"Crypto asset symbol"`
}

type trendingSocialArgs struct {
	Limit *int `json:"limit,omitempty" url:"limit,omitempty" jsonschema_description:"Number of assets to return (default 20)"`
}

func sentimentRequest(symbol string) prism.Request {
	return prism.Get("social.sentiment", "social", symbol, "sentiment")
}

func mentionsRequest(symbol string) prism.Request {
	return prism.Get("social.mentions", "social", symbol, "mentions")
}

func trendingScoreRequest(symbol string) prism.Request {
	return prism.Get("social.trendingScore", "social", symbol, "trending-score")
}

func socialTools(up Upstream) []*mcp.Tool {
	return []*mcp.Tool{
		mcp.Bind("social_sentiment",
			"Get social sentiment score for a crypto asset with bullish/bearish breakdown",
			func(ctx context.Context, a socialArgs) (any, error) {
				return up.Do(ctx, sentimentRequest(a.Symbol))
			}),

		mcp.Bind("get_social_mentions",
			"Get social mention count and trending posts",
			func(ctx context.Context, a socialArgs) (any, error) {
				return up.Do(ctx, mentionsRequest(a.Symbol))
			}),

		mcp.Bind("get_trending_score",
			"Get trending score (composite of social velocity and mentions)",
			func(ctx context.Context, a socialArgs) (any, error) {
				return up.Do(ctx, trendingScoreRequest(a.Symbol))
			}),

		mcp.Bind("get_github_activity",
			"Get GitHub development activity (commits, contributors, stars)",
			func(ctx context.Context, a socialArgs) (any, error) {
				return up.Do(ctx, prism.Get("social.github", "social", a.Symbol, "github"))
			}),

		mcp.Bind("get_trending_social",
			"Get trending tokens by social velocity",
			func(ctx context.Context, a trendingSocialArgs) (any, error) {
				return up.Do(ctx, prism.Get("social.trending", "social", "trending").WithQuery(a))
			}, mcp.Nest("trending")),

		mcp.Bind("social_overview",
			"Get a combined social view for a crypto asset: sentiment, mentions, and trending score in one call.",
			func(ctx context.Context, a socialArgs) (any, error) {
				return fanOut(ctx, up,
					namedRequest{"sentiment", sentimentRequest(a.Symbol)},
					namedRequest{"mentions", mentionsRequest(a.Symbol)},
					namedRequest{"trending", trendingScoreRequest(a.Symbol)},
				)
			}),
	}
}
