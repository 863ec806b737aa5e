package tools

import (
	"context"

	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/mcp"
	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/prism"
)

type searchPredictionsArgs struct {
	Query    string `json:"query" url:"query" jsonschema_description:"Search query (e.g. 'Bitcoin 100k', 'US election')"`
	Category string `json:"category,omitempty" url:"category,omitempty" jsonschema_description:"Filter by category"`
	Source   string `json:"source,omitempty" url:"source,omitempty" jsonschema_description:"Platform: 'polymarket', 'kalshi', or 'manifold'"`
	Limit    *int   `json:"limit,omitempty" url:"limit,omitempty" jsonschema_description:"Max results"`
}

func predictionTools(up Upstream) []*mcp.Tool {
	return []*mcp.Tool{
		mcp.Bind("prediction_markets",
			"Get trending prediction markets from Polymarket, Kalshi, and Manifold.",
			func(ctx context.Context, a limitArgs) (any, error) {
				return up.Do(ctx, prism.Get("predictions.trending", "predictions", "trending").WithQuery(a))
			}),

		mcp.Bind("search_predictions",
			"Search prediction markets by query. Find markets about elections, crypto, sports, and more.",
			func(ctx context.Context, a searchPredictionsArgs) (any, error) {
				return up.Do(ctx, prism.Get("predictions.search", "predictions", "search").WithQuery(a))
			}),
	}
}
