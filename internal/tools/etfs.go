package tools

import (
	"context"

	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/mcp"
	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/prism"
)

type etfArgs struct {
	Symbol string `json:"symbol" url:"-" jsonschema_description:"ETF ticker (e.g. 'SPY', 'QQQ', 'VOO')"`
}

func etfTools(up Upstream) []*mcp.Tool {
	return []*mcp.Tool{
		mcp.Bind("get_popular_etfs",
			"Get most popular ETFs by trading volume",
			func(ctx context.Context, a limitArgs) (any, error) {
				return up.Do(ctx, prism.Get("etfs.popular", "etfs", "popular").WithQuery(a))
			}, mcp.Nest("etfs")),

		mcp.Bind("get_etf_holdings",
			"Get full holdings breakdown for an ETF with weights and positions",
			func(ctx context.Context, a etfArgs) (any, error) {
				return up.Do(ctx, prism.Get("etfs.holdings", "etfs", a.Symbol, "holdings"))
			}, mcp.Nest("holdings")),

		mcp.Bind("get_etf_sector_weights",
			"Get sector allocation breakdown for an ETF",
			func(ctx context.Context, a etfArgs) (any, error) {
				return up.Do(ctx, prism.Get("etfs.sectors", "etfs", a.Symbol, "sectors"))
			}, mcp.Nest("sectors")),
	}
}
