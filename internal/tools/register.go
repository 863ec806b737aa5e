package tools

import (
	"fmt"

	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/mcp"
)

// Deps are the collaborators tool handlers call.
type Deps struct {
	Upstream    Upstream
	Provisioner KeyProvisioner
}

// Domain is a named group of tools.
type Domain struct {
	Name  string
	Tools func(Deps) []*mcp.Tool
}

// Domains lists every tool group in registration order.
var Domains = []Domain{
	{Name: "resolution", Tools: func(d Deps) []*mcp.Tool { return resolutionTools(d.Upstream) }},
	{Name: "market", Tools: func(d Deps) []*mcp.Tool { return marketTools(d.Upstream) }},
	{Name: "defi", Tools: func(d Deps) []*mcp.Tool { return defiTools(d.Upstream) }},
	{Name: "onchain", Tools: func(d Deps) []*mcp.Tool { return onchainTools(d.Upstream) }},
	{Name: "technicals", Tools: func(d Deps) []*mcp.Tool { return technicalsTools(d.Upstream) }},
	{Name: "signals", Tools: func(d Deps) []*mcp.Tool { return signalsTools(d.Upstream) }},
	{Name: "risk", Tools: func(d Deps) []*mcp.Tool { return riskTools(d.Upstream) }},
	{Name: "news", Tools: func(d Deps) []*mcp.Tool { return newsTools(d.Upstream) }},
	{Name: "predictions", Tools: func(d Deps) []*mcp.Tool { return predictionTools(d.Upstream) }},
	{Name: "macro", Tools: func(d Deps) []*mcp.Tool { return macroTools(d.Upstream) }},
	{Name: "calendar", Tools: func(d Deps) []*mcp.Tool { return calendarTools(d.Upstream) }},
	{Name: "stocks", Tools: func(d Deps) []*mcp.Tool { return stockTools(d.Upstream) }},
	{Name: "etfs", Tools: func(d Deps) []*mcp.Tool { return etfTools(d.Upstream) }},
	{Name: "forex", Tools: func(d Deps) []*mcp.Tool { return forexTools(d.Upstream) }},
	{Name: "commodities", Tools: func(d Deps) []*mcp.Tool { return commodityTools(d.Upstream) }},
	{Name: "historical", Tools: func(d Deps) []*mcp.Tool { return historicalTools(d.Upstream) }},
	{Name: "orderbook", Tools: func(d Deps) []*mcp.Tool { return orderbookTools(d.Upstream) }},
	{Name: "trades", Tools: func(d Deps) []*mcp.Tool { return tradeTools(d.Upstream) }},
	{Name: "social", Tools: func(d Deps) []*mcp.Tool { return socialTools(d.Upstream) }},
	{Name: "sports", Tools: func(d Deps) []*mcp.Tool { return sportsTools(d.Upstream) }},
	{Name: "odds", Tools: func(d Deps) []*mcp.Tool { return oddsTools(d.Upstream) }},
	{Name: "developer", Tools: func(d Deps) []*mcp.Tool { return developerTools(d.Upstream, d.Provisioner) }},
	{Name: "scaffold", Tools: func(Deps) []*mcp.Tool { return scaffoldTools() }},
}

// RegisterAll registers every domain exactly once. The first failure, such
// as a duplicate tool name, aborts registration.
func RegisterAll(reg *mcp.Registry, deps Deps) error {
	for _, d := range Domains {
		for _, t := range d.Tools(deps) {
			if err := reg.Register(t); err != nil {
				return fmt.Errorf("register %s tools: %w", d.Name, err)
			}
		}
	}
	return nil
}
