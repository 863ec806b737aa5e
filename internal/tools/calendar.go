package tools

import (
	"context"

	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/mcp"
	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/prism"
)

type dateRangeArgs struct {
	FromDate string `json:"from_date,omitempty" url:"from_date,omitempty" jsonschema_description:"Start date (ISO format YYYY-MM-DD)"`
	ToDate   string `json:"to_date,omitempty" url:"to_date,omitempty" jsonschema_description:"End date (ISO format)"`
}

type earningsWeekArgs struct {
	Limit *int `json:"limit,omitempty" url:"limit,omitempty" jsonschema_description:"Number of earnings to return (default 50)"`
}

func calendarTools(up Upstream) []*mcp.Tool {
	return []*mcp.Tool{
		mcp.Bind("get_earnings_calendar",
			"Get upcoming earnings reports with date range filter",
			func(ctx context.Context, a dateRangeArgs) (any, error) {
				return up.Do(ctx, prism.Get("calendar.earnings", "calendar", "earnings").WithQuery(a))
			}, mcp.Nest("earnings")),

		mcp.Bind("get_earnings_this_week",
			"Get earnings reports scheduled for this week",
			func(ctx context.Context, a earningsWeekArgs) (any, error) {
				return up.Do(ctx, prism.Get("calendar.earningsWeek", "calendar", "earnings", "week").WithQuery(a))
			}, mcp.Nest("earnings")),

		mcp.Bind("get_economic_calendar",
			"Get economic events calendar (FOMC, CPI, GDP, jobs reports) with forecasts",
			func(ctx context.Context, a dateRangeArgs) (any, error) {
				return up.Do(ctx, prism.Get("calendar.economic", "calendar", "economic").WithQuery(a))
			}, mcp.Nest("events")),
	}
}
