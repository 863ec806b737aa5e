package tools

import (
	"context"

	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/mcp"
	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/prism"
)

type listSportsArgs struct {
	ActiveOnly *bool  `json:"active_only,omitempty" url:"active_only,omitempty" jsonschema_description:"Only show active sports"`
	Region     string `json:"region,omitempty" url:"region,omitempty" jsonschema_description:"Filter by region"`
}

type sportsEventsArgs struct {
	Sport     string `json:"sport" url:"-" jsonschema_description:"Sport name (e.g. 'basketball', 'football', 'soccer')"`
	Status    string `json:"status,omitempty" url:"status,omitempty" jsonschema_description:"Filter by status (e.g. 'upcoming', 'live')"`
	DaysAhead *int   `json:"days_ahead,omitempty" url:"days_ahead,omitempty" jsonschema_description:"Number of days ahead to fetch"`
	Limit     *int   `json:"limit,omitempty" url:"limit,omitempty" jsonschema_description:"Number of events to return"`
}

type eventOddsArgs struct {
	EventID    string `json:"event_id" url:"-" jsonschema_description:"Event ID"`
	Market     string `json:"market,omitempty" url:"market,omitempty" jsonschema_description:"Market type filter (e.g. 'moneyline', 'spread', 'totals')"`
	Bookmakers string `json:"bookmakers,omitempty" url:"bookmakers,omitempty" jsonschema_description:"Comma-separated bookmaker filter"`
	Region     string `json:"region,omitempty" url:"region,omitempty" jsonschema_description:"Region filter"`
}

type resolveSportsArgs struct {
	Query string `json:"query" url:"q" jsonschema_description:"Natural language query"`
}

type searchSportsArgs struct {
	Query  string `json:"query" url:"q" jsonschema_description:"Search query"`
	Sport  string `json:"sport,omitempty" url:"sport,omitempty" jsonschema_description:"Filter by sport"`
	Status string `json:"status,omitempty" url:"status,omitempty" jsonschema_description:"Filter by status"`
	Limit  *int   `json:"limit,omitempty" url:"limit,omitempty" jsonschema_description:"Number of results"`
}

type regionArgs struct {
	Region string `json:"region,omitempty" url:"region,omitempty" jsonschema_description:"Region filter"`
}

func sportsTools(up Upstream) []*mcp.Tool {
	return []*mcp.Tool{
		mcp.Bind("list_sports",
			"Get all supported sports with activity status",
			func(ctx context.Context, a listSportsArgs) (any, error) {
				return up.Do(ctx, prism.Get("sports.list", "sports").WithQuery(a))
			}, mcp.Nest("sports")),

		mcp.Bind("get_sports_events",
			"Get upcoming or live events for a sport",
			func(ctx context.Context, a sportsEventsArgs) (any, error) {
				return up.Do(ctx, prism.Get("sports.events", "sports", a.Sport, "events").WithQuery(a))
			}, mcp.Nest("events")),

		mcp.Bind("get_event_details",
			"Get detailed information for a sports event",
			func(ctx context.Context, a eventArgs) (any, error) {
				return up.Do(ctx, prism.Get("sports.event", "sports", "events", a.EventID))
			}),

		mcp.Bind("get_event_odds",
			"Get odds for a sports event across all bookmakers",
			func(ctx context.Context, a eventOddsArgs) (any, error) {
				return up.Do(ctx, prism.Get("sports.eventOdds", "sports", "events", a.EventID, "odds").WithQuery(a))
			}),

		mcp.Bind("resolve_sports_event",
			"Natural language sports resolution (e.g. 'Lakers vs Warriors tonight')",
			func(ctx context.Context, a resolveSportsArgs) (any, error) {
				return up.Do(ctx, prism.Get("sports.resolve", "sports", "resolve").WithQuery(a))
			}),

		mcp.Bind("search_sports_events",
			"Search sports events by text query",
			func(ctx context.Context, a searchSportsArgs) (any, error) {
				return up.Do(ctx, prism.Get("sports.search", "sports", "search").WithQuery(a))
			}, mcp.Nest("events")),

		mcp.Bind("get_sportsbooks",
			"Get list of available sportsbooks by region",
			func(ctx context.Context, a regionArgs) (any, error) {
				return up.Do(ctx, prism.Get("sports.sportsbooks", "sports", "sportsbooks").WithQuery(a))
			}, mcp.Nest("sportsbooks")),
	}
}
