package tools

import (
	"context"

	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/mcp"
	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/prism"
)

func macroTools(up Upstream) []*mcp.Tool {
	return []*mcp.Tool{
		mcp.Bind("macro_summary",
			"Get a macroeconomic dashboard: Fed rate, inflation, GDP, unemployment, treasury yields, and yield curve status.",
			func(ctx context.Context, _ noArgs) (any, error) {
				return up.Do(ctx, prism.Get("macro.summary", "macro", "summary"))
			}),
	}
}
