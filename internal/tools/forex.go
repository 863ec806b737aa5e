package tools

import (
	"context"

	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/mcp"
	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/prism"
)

type currencyArgs struct {
	Currency string `json:"currency" url:"-" jsonschema_description:"Currency code (e.g. 'EUR', 'GBP', 'JPY')"`
}

func forexTools(up Upstream) []*mcp.Tool {
	return []*mcp.Tool{
		mcp.Bind("get_forex_pairs",
			"Get all tracked forex pairs with live exchange rates",
			func(ctx context.Context, _ noArgs) (any, error) {
				return up.Do(ctx, prism.Get("forex.pairs", "forex"))
			}, mcp.Nest("pairs")),

		mcp.Bind("get_forex_tradeable_forms",
			"Get tradeable forms of a currency (spot, CFD, ETF, futures)",
			func(ctx context.Context, a currencyArgs) (any, error) {
				return up.Do(ctx, prism.Get("forex.tradeableForms", "forex", a.Currency, "tradeable"))
			}, mcp.Nest("tradeable_forms")),
	}
}
