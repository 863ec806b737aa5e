package tools

import (
	"context"

	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/mcp"
	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/prism"
)

type yieldsArgs struct {
	Chain      string   `json:"chain,omitempty" url:"chain,omitempty" jsonschema_description:"Filter by chain (e.g. 'ethereum', 'arbitrum')"`
	MinTVL     *float64 `json:"min_tvl,omitempty" url:"min_tvl,omitempty" jsonschema_description:"Minimum TVL in USD"`
	MinAPY     *float64 `json:"min_apy,omitempty" url:"min_apy,omitempty" jsonschema_description:"Minimum APY percentage"`
	Stablecoin *bool    `json:"stablecoin,omitempty" url:"stablecoin,omitempty" jsonschema_description:"Only stablecoin pools"`
	Limit      *int     `json:"limit,omitempty" url:"limit,omitempty" jsonschema_description:"Max results (default 20)"`
}

type protocolsArgs struct {
	Category string   `json:"category,omitempty" url:"category,omitempty" jsonschema_description:"Protocol category (e.g. 'DEX', 'Lending', 'Yield')"`
	Chain    string   `json:"chain,omitempty" url:"chain,omitempty" jsonschema_description:"Filter by chain"`
	MinTVL   *float64 `json:"min_tvl,omitempty" url:"min_tvl,omitempty" jsonschema_description:"Minimum TVL in USD"`
	Limit    *int     `json:"limit,omitempty" url:"limit,omitempty" jsonschema_description:"Max results"`
}

func defiTools(up Upstream) []*mcp.Tool {
	return []*mcp.Tool{
		mcp.Bind("get_yields",
			"Get top DeFi yield opportunities across chains. Filter by chain, minimum APY, TVL, and stablecoin-only pools.",
			func(ctx context.Context, a yieldsArgs) (any, error) {
				return up.Do(ctx, prism.Get("defi.yields", "defi", "yields").WithQuery(a))
			}),

		mcp.Bind("get_protocols",
			"List DeFi protocols with TVL, category, and chain information.",
			func(ctx context.Context, a protocolsArgs) (any, error) {
				return up.Do(ctx, prism.Get("defi.protocols", "defi", "protocols").WithQuery(a))
			}),

		mcp.Bind("get_gas",
			"Get current gas prices across all supported chains.",
			func(ctx context.Context, _ noArgs) (any, error) {
				return up.Do(ctx, prism.Get("defi.gas", "defi", "gas"))
			}),
	}
}
