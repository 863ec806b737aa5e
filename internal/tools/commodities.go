package tools

import (
	"context"

	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/mcp"
	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/prism"
)

type commodityArgs struct {
	Commodity string `json:"commodity" url:"-" jsonschema_description:"Commodity name (e.g. 'GOLD', 'OIL', 'NATGAS')"`
}

func commodityTools(up Upstream) []*mcp.Tool {
	return []*mcp.Tool{
		mcp.Bind("get_commodity_prices",
			"Get live prices for all tracked commodities (gold, oil, natural gas, corn, etc.)",
			func(ctx context.Context, _ noArgs) (any, error) {
				return up.Do(ctx, prism.Get("commodities.prices", "commodities"))
			}, mcp.Nest("commodities")),

		mcp.Bind("get_commodity_tradeable_forms",
			"Get tradeable forms of a commodity (futures, ETF, CFD)",
			func(ctx context.Context, a commodityArgs) (any, error) {
				return up.Do(ctx, prism.Get("commodities.tradeableForms", "commodities", a.Commodity, "tradeable"))
			}, mcp.Nest("tradeable_forms")),
	}
}
