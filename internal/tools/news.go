package tools

import (
	"context"

	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/mcp"
	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/prism"
)

const (
	newsCrypto = "crypto"
	newsStocks = "stocks"
)

type newsArgs struct {
	Category string `json:"category,omitempty" jsonschema:"enum=crypto,enum=stocks" jsonschema_description:"News category. Default: 'crypto'"`
	Symbol   string `json:"symbol,omitempty" jsonschema_description:"Filter stock news by ticker (only for stocks category)"`
	Limit    *int   `json:"limit,omitempty" jsonschema_description:"Max articles (default 20)"`
}

type cryptoNewsQuery struct {
	Limit *int `url:"limit,omitempty"`
}

type stockNewsQuery struct {
	Symbol string `url:"symbol,omitempty"`
	Limit  *int   `url:"limit,omitempty"`
}

func newsTools(up Upstream) []*mcp.Tool {
	return []*mcp.Tool{
		mcp.Bind("get_news",
			"Get the latest crypto and stock market news with sentiment analysis.",
			func(ctx context.Context, a newsArgs) (any, error) {
				if a.Category == newsStocks {
					return up.Do(ctx, prism.Get("news.stocks", "news", "stocks").WithQuery(stockNewsQuery{Symbol: a.Symbol, Limit: a.Limit}))
				}
				return up.Do(ctx, prism.Get("news.crypto", "news", "crypto").WithQuery(cryptoNewsQuery{Limit: a.Limit}))
			}, mcp.Default("category", newsCrypto)),
	}
}
