package tools

import (
	"context"

	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/mcp"
	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/prism"
)

type quoteArgs struct {
	Symbol string `json:"symbol" url:"-" jsonschema_description:"Stock ticker (e.g. 'AAPL', 'TSLA', 'NVDA')"`
}

type batchQuoteArgs struct {
	Symbols []string `json:"symbols" jsonschema_description:"Array of stock tickers"`
}

type sparklineArgs struct {
	Symbol string `json:"symbol" url:"-" jsonschema_description:"Stock ticker"`
	Days   *int   `json:"days,omitempty" url:"days,omitempty" jsonschema_description:"Number of days (default 30)"`
}

type financialsArgs struct {
	Symbol    string `json:"symbol" url:"-" jsonschema_description:"Stock ticker"`
	Statement string `json:"statement,omitempty" url:"statement,omitempty" jsonschema:"enum=income,enum=balance,enum=cash_flow" jsonschema_description:"Statement type"`
	Period    string `json:"period,omitempty" url:"period,omitempty" jsonschema:"enum=annual,enum=quarterly" jsonschema_description:"Reporting period"`
	Limit     *int   `json:"limit,omitempty" url:"limit,omitempty" jsonschema_description:"Number of periods to return"`
}

type filingsArgs struct {
	Symbol     string `json:"symbol" url:"-" jsonschema_description:"Stock ticker"`
	FilingType string `json:"filing_type,omitempty" url:"filing_type,omitempty" jsonschema_description:"Filing type filter (e.g. '10-K', '10-Q', '8-K')"`
	Limit      *int   `json:"limit,omitempty" url:"limit,omitempty" jsonschema_description:"Number of filings to return"`
}

type dcfArgs struct {
	Symbol         string   `json:"symbol" url:"-" jsonschema_description:"Stock ticker"`
	GrowthRate     *float64 `json:"growth_rate,omitempty" url:"growth_rate,omitempty" jsonschema_description:"Revenue growth rate (decimal, e.g. 0.15 for 15%)"`
	DiscountRate   *float64 `json:"discount_rate,omitempty" url:"discount_rate,omitempty" jsonschema_description:"Discount rate / WACC (decimal)"`
	TerminalGrowth *float64 `json:"terminal_growth,omitempty" url:"terminal_growth,omitempty" jsonschema_description:"Terminal growth rate (decimal)"`
}

// stockRecord builds a GET on stocks/{symbol}/{resource}.
func stockRecord(op, symbol, resource string) prism.Request {
	return prism.Get(op, "stocks", symbol, resource)
}

func stockTools(up Upstream) []*mcp.Tool {
	return []*mcp.Tool{
		mcp.Bind("get_stock_quote",
			"Get real-time stock quote with price, change, volume, and market cap",
			func(ctx context.Context, a quoteArgs) (any, error) {
				return up.Do(ctx, stockRecord("stocks.quote", a.Symbol, "quote"))
			}),

		mcp.Bind("get_batch_stock_quotes",
			"Get real-time quotes for multiple stocks at once",
			func(ctx context.Context, a batchQuoteArgs) (any, error) {
				return up.Do(ctx, prism.Post("stocks.batchQuotes", a, "stocks", "quotes"))
			}, mcp.Nest("data")),

		mcp.Bind("get_stock_sparkline",
			"Get mini price chart data (sparkline) for a stock",
			func(ctx context.Context, a sparklineArgs) (any, error) {
				return up.Do(ctx, stockRecord("stocks.sparkline", a.Symbol, "sparkline").WithQuery(a))
			}),

		mcp.Bind("get_stock_profile",
			"Get company profile with name, sector, industry, description, and key stats",
			func(ctx context.Context, a tickerArgs) (any, error) {
				return up.Do(ctx, stockRecord("stocks.profile", a.Symbol, "profile"))
			}),

		mcp.Bind("get_stock_fundamentals",
			"Get fundamental metrics: P/E, P/B, EPS, ROE, margins, growth rates",
			func(ctx context.Context, a tickerArgs) (any, error) {
				return up.Do(ctx, stockRecord("stocks.fundamentals", a.Symbol, "fundamentals"))
			}),

		mcp.Bind("get_stock_financials",
			"Get financial statements: income, balance sheet, or cash flow",
			func(ctx context.Context, a financialsArgs) (any, error) {
				return up.Do(ctx, stockRecord("stocks.financials", a.Symbol, "financials").WithQuery(a))
			}),

		mcp.Bind("get_stock_peers",
			"Get peer companies in the same sector/industry",
			func(ctx context.Context, a tickerArgs) (any, error) {
				return up.Do(ctx, stockRecord("stocks.peers", a.Symbol, "peers"))
			}, mcp.Nest("peers")),

		mcp.Bind("get_stock_earnings",
			"Get historical earnings with EPS actuals vs estimates and surprises",
			func(ctx context.Context, a tickerLimitArgs) (any, error) {
				return up.Do(ctx, stockRecord("stocks.earnings", a.Symbol, "earnings").WithQuery(a))
			}, mcp.Nest("earnings")),

		mcp.Bind("get_stock_dividends",
			"Get dividend payment history with dates, amounts, and yields",
			func(ctx context.Context, a tickerLimitArgs) (any, error) {
				return up.Do(ctx, stockRecord("stocks.dividends", a.Symbol, "dividends").WithQuery(a))
			}, mcp.Nest("dividends")),

		mcp.Bind("get_stock_splits",
			"Get stock split history with dates and ratios",
			func(ctx context.Context, a tickerLimitArgs) (any, error) {
				return up.Do(ctx, stockRecord("stocks.splits", a.Symbol, "splits").WithQuery(a))
			}, mcp.Nest("splits")),

		mcp.Bind("get_stock_filings",
			"Get SEC filings (10-K, 10-Q, 8-K, proxy statements)",
			func(ctx context.Context, a filingsArgs) (any, error) {
				return up.Do(ctx, stockRecord("stocks.filings", a.Symbol, "filings").WithQuery(a))
			}, mcp.Nest("filings")),

		mcp.Bind("get_insider_trades",
			"Get insider trading activity (Form 4 filings)",
			func(ctx context.Context, a tickerLimitArgs) (any, error) {
				return up.Do(ctx, stockRecord("stocks.insiders", a.Symbol, "insiders").WithQuery(a))
			}, mcp.Nest("insider_trades")),

		mcp.Bind("get_institutional_holders",
			"Get institutional ownership data from 13F filings",
			func(ctx context.Context, a tickerLimitArgs) (any, error) {
				return up.Do(ctx, stockRecord("stocks.institutional", a.Symbol, "institutional").WithQuery(a))
			}, mcp.Nest("institutions")),

		mcp.Bind("get_analyst_ratings",
			"Get analyst buy/hold/sell ratings and price targets",
			func(ctx context.Context, a tickerLimitArgs) (any, error) {
				return up.Do(ctx, stockRecord("stocks.analystRatings", a.Symbol, "analyst-ratings").WithQuery(a))
			}),

		mcp.Bind("get_valuation_ratios",
			"Get valuation multiples: P/E, P/B, EV/EBITDA, PEG, P/S ratios",
			func(ctx context.Context, a tickerArgs) (any, error) {
				return up.Do(ctx, stockRecord("stocks.valuation", a.Symbol, "valuation"))
			}),

		mcp.Bind("calculate_dcf",
			"Calculate DCF intrinsic value estimate with custom assumptions",
			func(ctx context.Context, a dcfArgs) (any, error) {
				return up.Do(ctx, stockRecord("stocks.dcf", a.Symbol, "dcf").WithQuery(a))
			}),

		mcp.Bind("get_stock_gainers",
			"Get top gaining stocks today by percentage change",
			func(ctx context.Context, a limitArgs) (any, error) {
				return up.Do(ctx, prism.Get("stocks.gainers", "stocks", "gainers").WithQuery(a))
			}, mcp.Nest("gainers")),

		mcp.Bind("get_stock_losers",
			"Get top losing stocks today by percentage change",
			func(ctx context.Context, a limitArgs) (any, error) {
				return up.Do(ctx, prism.Get("stocks.losers", "stocks", "losers").WithQuery(a))
			}, mcp.Nest("losers")),

		mcp.Bind("get_most_active_stocks",
			"Get most actively traded stocks by volume",
			func(ctx context.Context, a limitArgs) (any, error) {
				return up.Do(ctx, prism.Get("stocks.mostActive", "stocks", "most-active").WithQuery(a))
			}, mcp.Nest("most_active")),

		mcp.Bind("get_market_indexes",
			"Get all major market indexes (SPX, DJIA, NDX, VIX, etc.)",
			func(ctx context.Context, _ noArgs) (any, error) {
				return up.Do(ctx, prism.Get("stocks.indexes", "stocks", "indexes"))
			}, mcp.Nest("indexes")),

		mcp.Bind("get_sector_performance",
			"Get sector performance with daily change percentages",
			func(ctx context.Context, _ noArgs) (any, error) {
				return up.Do(ctx, prism.Get("stocks.sectors", "stocks", "sectors"))
			}, mcp.Nest("sectors")),
	}
}
