package tools

import (
	"context"

	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/mcp"
	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/prism"
)

type whaleArgs struct {
	Address     string   `json:"address" url:"-" jsonschema_description:"Contract or wallet address to monitor"`
	Chain       string   `json:"chain,omitempty" url:"chain,omitempty" jsonschema_description:"Chain (e.g. 'ethereum', 'solana')"`
	MinValueUSD *float64 `json:"min_value_usd,omitempty" url:"min_value_usd,omitempty" jsonschema_description:"Minimum transaction value in USD"`
	Limit       *int     `json:"limit,omitempty" url:"limit,omitempty" jsonschema_description:"Max results"`
}

type exchangeFlowArgs struct {
	Symbol  string `json:"symbol" url:"-" jsonschema_description:"Asset symbol (e.g. 'BTC', 'ETH')"`
	Address string `json:"address" url:"address" jsonschema_description:"Contract address of the token"`
	Chain   string `json:"chain,omitempty" url:"chain,omitempty" jsonschema_description:"Chain name"`
	Period  string `json:"period,omitempty" url:"period,omitempty" jsonschema_description:"Time period (e.g. '24h', '7d')"`
}

type walletArgs struct {
	Address     string   `json:"address" url:"-" jsonschema_description:"Wallet address"`
	Chain       string   `json:"chain,omitempty" url:"chain,omitempty" jsonschema_description:"Filter by chain"`
	MinValueUSD *float64 `json:"min_value_usd,omitempty" url:"min_value_usd,omitempty" jsonschema_description:"Minimum token value in USD"`
	ExcludeSpam *bool    `json:"exclude_spam,omitempty" url:"exclude_spam,omitempty" jsonschema_description:"Exclude spam tokens"`
	Limit       *int     `json:"limit,omitempty" url:"limit,omitempty" jsonschema_description:"Max results"`
}

func onchainTools(up Upstream) []*mcp.Tool {
	return []*mcp.Tool{
		mcp.Bind("whale_movements",
			"Track large whale transactions for a given contract address. Shows big transfers, exchange deposits/withdrawals.",
			func(ctx context.Context, a whaleArgs) (any, error) {
				return up.Do(ctx, prism.Get("onchain.whales", "onchain", "whales", a.Address).WithQuery(a))
			}),

		mcp.Bind("exchange_flows",
			"Get exchange inflow/outflow data for an asset. Shows net deposits and withdrawals from exchanges.",
			func(ctx context.Context, a exchangeFlowArgs) (any, error) {
				return up.Do(ctx, prism.Get("onchain.exchangeFlows", "onchain", "exchange-flows", a.Symbol).WithQuery(a))
			}),

		mcp.Bind("wallet_balances",
			"Get all token balances for a wallet address across chains.",
			func(ctx context.Context, a walletArgs) (any, error) {
				return up.Do(ctx, prism.Get("defi.walletBalances", "defi", "wallets", a.Address, "balances").WithQuery(a))
			}),
	}
}
