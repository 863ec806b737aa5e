package tools

import (
	"context"

	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/mcp"
	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/prism"
)

type riskArgs struct {
	Symbol    string `json:"symbol" url:"-" jsonschema_description:"Asset symbol"`
	AssetType string `json:"asset_type,omitempty" url:"asset_type,omitempty" jsonschema_description:"Asset type filter"`
	Period    *int   `json:"period,omitempty" url:"period,omitempty" jsonschema_description:"Lookback period in days"`
}

type varArgs struct {
	Symbol       string   `json:"symbol" url:"-" jsonschema_description:"Asset symbol"`
	AssetType    string   `json:"asset_type,omitempty" url:"asset_type,omitempty" jsonschema_description:"Asset type filter"`
	Confidence   *float64 `json:"confidence,omitempty" url:"confidence,omitempty" jsonschema_description:"Confidence level (e.g. 0.95 for 95% VaR)"`
	Period       *int     `json:"period,omitempty" url:"period,omitempty" jsonschema_description:"Lookback period in days"`
	PositionSize *float64 `json:"position_size,omitempty" url:"position_size,omitempty" jsonschema_description:"Position size for VaR calculation"`
}

type position struct {
	Symbol    string   `json:"symbol"`
	Weight    float64  `json:"weight"`
	Quantity  *float64 `json:"quantity,omitempty"`
	AssetType string   `json:"asset_type,omitempty"`
}

type portfolioArgs struct {
	Positions  []position `json:"positions" jsonschema_description:"Array of portfolio positions with weights or quantities"`
	PeriodDays *int       `json:"period_days,omitempty" jsonschema_description:"Lookback period in days (default 30)"`
}

func riskTools(up Upstream) []*mcp.Tool {
	return []*mcp.Tool{
		mcp.Bind("get_risk",
			"Get risk metrics: volatility, Sharpe ratio, max drawdown, beta",
			func(ctx context.Context, a riskArgs) (any, error) {
				return up.Do(ctx, prism.Get("risk.metrics", "risk", a.Symbol).WithQuery(a))
			}),

		mcp.Bind("calculate_var",
			"Calculate Value at Risk (VaR) for a position",
			func(ctx context.Context, a varArgs) (any, error) {
				return up.Do(ctx, prism.Get("risk.var", "risk", a.Symbol, "var").WithQuery(a))
			}),

		mcp.Bind("analyze_portfolio_risk",
			"Calculate portfolio-level risk analysis for mixed positions (stocks + crypto + ETFs)",
			func(ctx context.Context, a portfolioArgs) (any, error) {
				return up.Do(ctx, prism.Post("risk.portfolio", a, "risk", "portfolio"))
			}),
	}
}
