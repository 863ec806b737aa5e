package tools

import (
	"context"

	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/mcp"
	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/prism"
)

type resolveArgs struct {
	Symbol    string `json:"symbol" url:"-" jsonschema_description:"Ticker, name, or contract address (e.g. 'BTC', 'Ethereum', '0x...')"`
	Context   string `json:"context,omitempty" url:"context,omitempty" jsonschema_description:"Disambiguation hint (e.g. 'DeFi yield token on Arbitrum')"`
	Chain     string `json:"chain,omitempty" url:"chain,omitempty" jsonschema_description:"Filter to a specific chain"`
	Expand    *bool  `json:"expand,omitempty" url:"expand,omitempty" jsonschema_description:"Include venues and instances"`
	LivePrice *bool  `json:"live_price,omitempty" url:"live_price,omitempty" jsonschema_description:"Attach live price to response"`
}

type batchResolveArgs struct {
	Symbols []string `json:"symbols" jsonschema_description:"Array of symbols to resolve"`
	Context string   `json:"context,omitempty" jsonschema_description:"Shared disambiguation context"`
	Expand  *bool    `json:"expand,omitempty" jsonschema_description:"Include venues and instances"`
}

func resolutionTools(up Upstream) []*mcp.Tool {
	return []*mcp.Tool{
		mcp.Bind("resolve_asset",
			"Resolve any ticker, name, or contract address to a canonical PRISM asset. Returns unified identity with price, chain, and venue data.",
			func(ctx context.Context, a resolveArgs) (any, error) {
				return up.Do(ctx, prism.Get("resolve.asset", "resolve", a.Symbol).WithQuery(a))
			}),

		mcp.Bind("batch_resolve",
			"Resolve multiple symbols at once. Pass an array of tickers, names, or addresses.",
			func(ctx context.Context, a batchResolveArgs) (any, error) {
				return up.Do(ctx, prism.Post("resolve.batch", a, "resolve", "batch"))
			}),
	}
}
