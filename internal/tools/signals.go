package tools

import (
	"context"

	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/mcp"
	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/prism"
)

type momentumArgs struct {
	Symbols       string   `json:"symbols,omitempty" url:"symbols,omitempty" jsonschema_description:"Comma-separated symbols (optional, defaults to all)"`
	RSIOversold   *float64 `json:"rsi_oversold,omitempty" url:"rsi_oversold,omitempty" jsonschema_description:"RSI oversold threshold (default 30)"`
	RSIOverbought *float64 `json:"rsi_overbought,omitempty" url:"rsi_overbought,omitempty" jsonschema_description:"RSI overbought threshold (default 70)"`
}

type volumeSpikeArgs struct {
	Symbols         string   `json:"symbols,omitempty" url:"symbols,omitempty" jsonschema_description:"Comma-separated symbols (optional)"`
	SpikeThreshold  *float64 `json:"spike_threshold,omitempty" url:"spike_threshold,omitempty" jsonschema_description:"Volume spike threshold (default 2.0 = 2x avg)"`
	LookbackPeriods *int     `json:"lookback_periods,omitempty" url:"lookback_periods,omitempty" jsonschema_description:"Periods to look back"`
}

type breakoutArgs struct {
	Symbols           string   `json:"symbols,omitempty" url:"symbols,omitempty" jsonschema_description:"Comma-separated symbols (optional)"`
	LookbackPeriods   *int     `json:"lookback_periods,omitempty" url:"lookback_periods,omitempty" jsonschema_description:"Periods to determine support/resistance"`
	BreakoutThreshold *float64 `json:"breakout_threshold,omitempty" url:"breakout_threshold,omitempty" jsonschema_description:"Breakout threshold percentage"`
}

type divergenceArgs struct {
	Symbols         string `json:"symbols,omitempty" url:"symbols,omitempty" jsonschema_description:"Comma-separated symbols (optional)"`
	LookbackPeriods *int   `json:"lookback_periods,omitempty" url:"lookback_periods,omitempty" jsonschema_description:"Periods to analyze"`
}

func signalsTools(up Upstream) []*mcp.Tool {
	return []*mcp.Tool{
		mcp.Bind("get_signals",
			"Get trading signals: momentum, volume spikes, breakouts, divergences",
			func(ctx context.Context, a momentumArgs) (any, error) {
				return up.Do(ctx, prism.Get("signals.momentum", "signals", "momentum").WithQuery(a))
			}, mcp.Nest("signals")),

		mcp.Bind("detect_volume_spikes",
			"Detect unusual volume surges vs average (potential breakout signals)",
			func(ctx context.Context, a volumeSpikeArgs) (any, error) {
				return up.Do(ctx, prism.Get("signals.volumeSpikes", "signals", "volume-spikes").WithQuery(a))
			}, mcp.Nest("spikes")),

		mcp.Bind("detect_breakouts",
			"Detect price breakouts above resistance or below support",
			func(ctx context.Context, a breakoutArgs) (any, error) {
				return up.Do(ctx, prism.Get("signals.breakouts", "signals", "breakouts").WithQuery(a))
			}, mcp.Nest("breakouts")),

		mcp.Bind("detect_divergence",
			"Detect price vs indicator divergence (potential reversal signals)",
			func(ctx context.Context, a divergenceArgs) (any, error) {
				return up.Do(ctx, prism.Get("signals.divergence", "signals", "divergence").WithQuery(a))
			}, mcp.Nest("divergences")),

		mcp.Bind("get_signal_summary",
			"Get unified signal summary aggregating all signal types",
			func(ctx context.Context, a symbolsArgs) (any, error) {
				return up.Do(ctx, prism.Get("signals.summary", "signals", "summary").WithQuery(a))
			}),
	}
}
