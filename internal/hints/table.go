package hints

// Dashboard template names referenced by hints and by the scaffold tool.
const (
	TemplateEquityOverview   = "equity-overview"
	TemplateCryptoTrader     = "crypto-trader"
	TemplatePortfolioTracker = "portfolio-tracker"
)

const (
	metricCard = "PrismMetricCard"
	stockTable = "PrismStockTable"
	chart      = "PrismChart"
)

var defaultEntries = map[string]Hint{
	// Resolution
	"resolve_asset": {
		SuggestedComponent: metricCard,
		Layout:             LayoutCard,
		HighlightFields:    []string{"symbol", "name", "asset_type", "price", "confidence"},
		PairedWith:         []string{"get_price", "technical_analysis"},
		ExampleCode:        `<PrismMetricCard title={result.symbol} value={result.price} subtitle={result.name} />`,
		DashboardTemplates: []string{TemplateEquityOverview, TemplateCryptoTrader},
	},
	"batch_resolve": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"symbol", "name", "asset_type", "price"},
		PairedWith:         []string{"get_price"},
		ExampleCode:        `<PrismStockTable data={results} />`,
	},

	// Market
	"get_price": {
		SuggestedComponent: metricCard,
		Layout:             LayoutCard,
		HighlightFields:    []string{"symbol", "price", "change_24h", "volume_24h", "market_cap"},
		PairedWith:         []string{"technical_analysis", "social_sentiment", "get_news"},
		ExampleCode:        `<PrismMetricCard title={result.symbol} value={result.price} change={result.change_24h} />`,
		DashboardTemplates: []string{TemplateCryptoTrader, TemplatePortfolioTracker},
	},
	"get_trending": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"symbol", "name", "price", "change_pct_24h", "volume_24h"},
		PairedWith:         []string{"get_price", "social_sentiment"},
		ExampleCode:        `<PrismStockTable data={results} />`,
		DashboardTemplates: []string{TemplateCryptoTrader},
	},
	"market_overview": {
		SuggestedComponent: "PrismFearGreed",
		Layout:             LayoutDashboard,
		HighlightFields:    []string{"total_market_cap", "btc_dominance", "fear_greed.value", "fear_greed.classification"},
		PairedWith:         []string{"get_trending", "get_news"},
		ExampleCode:        `<PrismFearGreed value={result.fear_greed.value} label={result.fear_greed.classification} />`,
		DashboardTemplates: []string{TemplateCryptoTrader},
	},
	"get_fear_greed": {
		SuggestedComponent: "PrismFearGreed",
		Layout:             LayoutCard,
		HighlightFields:    []string{"value", "classification"},
		PairedWith:         []string{"market_overview"},
		ExampleCode:        `<PrismFearGreed value={fg.value} label={fg.classification} />`,
		DashboardTemplates: []string{TemplateCryptoTrader},
	},
	"get_global_market": {
		SuggestedComponent: metricCard,
		Layout:             LayoutCard,
		HighlightFields:    []string{"total_market_cap", "total_volume_24h", "btc_dominance"},
		PairedWith:         []string{"market_overview", "get_fear_greed"},
		ExampleCode:        `<PrismMetricCard title="Total Market Cap" value={global.total_market_cap} />`,
	},

	// DeFi
	"get_yields": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"pool", "protocol", "chain", "apy", "tvl_usd"},
		PairedWith:         []string{"get_protocols", "get_gas"},
		ExampleCode:        `<PrismStockTable data={yields} />`,
	},
	"get_protocols": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"name", "category", "chain", "tvl", "change_1d"},
		PairedWith:         []string{"get_yields"},
		ExampleCode:        `<PrismStockTable data={protocols} />`,
	},
	"get_gas": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"chain", "slow", "standard", "fast"},
		PairedWith:         []string{"get_protocols"},
		ExampleCode:        `<PrismStockTable data={gas} />`,
	},

	// On-chain
	"whale_movements": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"tx_hash", "from", "to", "value_usd", "type"},
		PairedWith:         []string{"exchange_flows", "social_sentiment"},
		ExampleCode:        `<PrismStockTable data={movements} />`,
		DashboardTemplates: []string{TemplateCryptoTrader},
	},
	"exchange_flows": {
		SuggestedComponent: metricCard,
		Layout:             LayoutCard,
		HighlightFields:    []string{"inflow", "outflow", "net_flow"},
		PairedWith:         []string{"whale_movements", "get_price"},
		ExampleCode:        `<PrismMetricCard title="Net Flow" value={flow.net_flow} />`,
		DashboardTemplates: []string{TemplateCryptoTrader},
	},
	"wallet_balances": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"token", "symbol", "balance", "value_usd"},
		PairedWith:         []string{"get_price"},
		ExampleCode:        `<PrismStockTable data={balances} />`,
		DashboardTemplates: []string{TemplatePortfolioTracker},
	},

	// Technicals
	"technical_analysis": {
		SuggestedComponent: metricCard,
		Layout:             LayoutCard,
		HighlightFields:    []string{"symbol", "trend", "rsi", "summary"},
		PairedWith:         []string{"get_signals", "get_risk", "get_price"},
		ExampleCode:        `<PrismMetricCard title={ta.symbol} value={ta.trend} subtitle={ta.summary} />`,
		DashboardTemplates: []string{TemplateEquityOverview, TemplateCryptoTrader},
	},
	"get_technical_indicators": {
		SuggestedComponent: metricCard,
		Layout:             LayoutDashboard,
		HighlightFields:    []string{"RSI", "MACD", "EMA20", "SMA50"},
		PairedWith:         []string{"technical_analysis"},
		ExampleCode:        `<PrismMetricCard title="RSI" value={indicators.RSI} />`,
	},
	"get_support_resistance": {
		SuggestedComponent: chart,
		ChartType:          "line",
		Layout:             LayoutCard,
		HighlightFields:    []string{"support_levels", "resistance_levels"},
		PairedWith:         []string{"technical_analysis"},
		ExampleCode:        `<PrismChart type="line" data={levels} />`,
	},
	"get_trend": {
		SuggestedComponent: metricCard,
		Layout:             LayoutCard,
		HighlightFields:    []string{"trend", "strength"},
		PairedWith:         []string{"technical_analysis"},
		ExampleCode:        `<PrismMetricCard title="Trend" value={trend.trend} />`,
	},
	"analyze_forex_technicals": {
		SuggestedComponent: metricCard,
		Layout:             LayoutCard,
		HighlightFields:    []string{"trend", "rsi", "macd"},
		PairedWith:         []string{"get_forex_pairs"},
		ExampleCode:        `<PrismMetricCard title="FX Trend" value={ta.trend} />`,
	},
	"analyze_commodity_technicals": {
		SuggestedComponent: metricCard,
		Layout:             LayoutCard,
		HighlightFields:    []string{"trend", "rsi", "macd"},
		PairedWith:         []string{"get_commodity_prices"},
		ExampleCode:        `<PrismMetricCard title="Commodity Trend" value={ta.trend} />`,
	},
	"compare_vs_benchmark": {
		SuggestedComponent: chart,
		ChartType:          "line",
		Layout:             LayoutCard,
		HighlightFields:    []string{"relative_performance"},
		ExampleCode:        `<PrismChart type="line" data={comparison} />`,
	},
	"get_correlations": {
		SuggestedComponent: "PrismHeatmap",
		Layout:             LayoutCard,
		HighlightFields:    []string{"correlation_matrix"},
		PairedWith:         []string{"compare_assets"},
		ExampleCode:        `<PrismHeatmap data={correlations} />`,
	},

	// Signals
	"get_signals": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"symbol", "signal_type", "direction", "strength"},
		PairedWith:         []string{"technical_analysis"},
		ExampleCode:        `<PrismStockTable data={signals} />`,
	},
	"detect_volume_spikes": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"symbol", "spike_ratio", "current_volume", "avg_volume"},
		PairedWith:         []string{"get_signals", "detect_breakouts"},
		ExampleCode:        `<PrismStockTable data={spikes} />`,
	},
	"detect_breakouts": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"symbol", "direction", "breakout_level", "current_price"},
		PairedWith:         []string{"get_signals"},
		ExampleCode:        `<PrismStockTable data={breakouts} />`,
	},
	"detect_divergence": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"symbol", "divergence_type", "strength"},
		PairedWith:         []string{"get_signals"},
		ExampleCode:        `<PrismStockTable data={divergences} />`,
	},
	"get_signal_summary": {
		SuggestedComponent: metricCard,
		Layout:             LayoutDashboard,
		HighlightFields:    []string{"momentum", "volume", "breakout", "divergence"},
		PairedWith:         []string{"get_signals"},
		ExampleCode:        `<PrismMetricCard title="Signals" value={summary} />`,
	},

	// Risk
	"get_risk": {
		SuggestedComponent: metricCard,
		Layout:             LayoutCard,
		HighlightFields:    []string{"symbol", "volatility", "sharpe_ratio", "max_drawdown", "var"},
		PairedWith:         []string{"technical_analysis", "get_price"},
		ExampleCode:        `<PrismMetricCard title={risk.symbol} value={risk.sharpe_ratio} subtitle="Sharpe Ratio" />`,
		DashboardTemplates: []string{TemplateEquityOverview, TemplatePortfolioTracker},
	},
	"calculate_var": {
		SuggestedComponent: metricCard,
		Layout:             LayoutCard,
		HighlightFields:    []string{"var", "confidence"},
		PairedWith:         []string{"get_risk"},
		ExampleCode:        `<PrismMetricCard title="Value at Risk" value={var.var} />`,
	},
	"analyze_portfolio_risk": {
		SuggestedComponent: metricCard,
		Layout:             LayoutDashboard,
		HighlightFields:    []string{"portfolio_var", "sharpe_ratio", "max_drawdown"},
		PairedWith:         []string{"get_risk"},
		ExampleCode:        `<PrismMetricCard title="Portfolio VaR" value={risk.portfolio_var} />`,
		DashboardTemplates: []string{TemplatePortfolioTracker},
	},

	// News, predictions, macro
	"get_news": {
		SuggestedComponent: "PrismNewsCard",
		Layout:             LayoutGrid,
		HighlightFields:    []string{"title", "source", "sentiment", "published_at"},
		PairedWith:         []string{"social_sentiment", "get_price"},
		ExampleCode:        `<PrismNewsGrid items={news} />`,
		DashboardTemplates: []string{TemplateEquityOverview, TemplateCryptoTrader},
	},
	"prediction_markets": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"title", "source", "yes_price", "volume"},
		PairedWith:         []string{"search_predictions"},
		ExampleCode:        `<PrismStockTable data={markets} />`,
	},
	"search_predictions": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"title", "source", "yes_price", "volume"},
		PairedWith:         []string{"prediction_markets"},
		ExampleCode:        `<PrismStockTable data={results} />`,
	},
	"macro_summary": {
		SuggestedComponent: metricCard,
		Layout:             LayoutDashboard,
		HighlightFields:    []string{"fed_rate", "inflation", "gdp", "unemployment"},
		PairedWith:         []string{"get_news"},
		ExampleCode:        `<PrismMetricCard title="Fed Rate" value={macro.fed_rate} />`,
	},

	// Calendar
	"get_earnings_calendar": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"symbol", "date", "time", "eps_estimate"},
		PairedWith:         []string{"get_stock_earnings"},
		ExampleCode:        `<PrismStockTable data={earnings} />`,
	},
	"get_earnings_this_week": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"symbol", "date", "time", "eps_estimate"},
		PairedWith:         []string{"get_earnings_calendar"},
		ExampleCode:        `<PrismStockTable data={earnings} />`,
	},
	"get_economic_calendar": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"event", "date", "forecast", "previous", "actual"},
		PairedWith:         []string{"macro_summary"},
		ExampleCode:        `<PrismStockTable data={events} />`,
	},

	// Stocks
	"get_stock_quote": {
		SuggestedComponent: metricCard,
		Layout:             LayoutCard,
		HighlightFields:    []string{"symbol", "price", "change", "change_pct", "volume", "market_cap"},
		PairedWith:         []string{"technical_analysis", "get_news", "get_risk"},
		ExampleCode:        `<PrismMetricCard title={quote.symbol} value={quote.price} change={quote.change_pct} />`,
		DashboardTemplates: []string{TemplateEquityOverview},
	},
	"get_batch_stock_quotes": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"symbol", "price", "change", "change_pct", "volume"},
		PairedWith:         []string{"get_stock_quote"},
		ExampleCode:        `<PrismStockTable data={quotes} />`,
	},
	"get_stock_sparkline": {
		SuggestedComponent: "PrismSparkline",
		ChartType:          "line",
		Layout:             LayoutCard,
		HighlightFields:    []string{"prices"},
		ExampleCode:        `<PrismSparkline data={sparkline.prices} />`,
	},
	"get_stock_profile": {
		SuggestedComponent: metricCard,
		Layout:             LayoutCard,
		HighlightFields:    []string{"name", "sector", "industry", "description", "market_cap"},
		PairedWith:         []string{"get_stock_fundamentals", "get_stock_quote"},
		ExampleCode:        `<PrismMetricCard title={profile.name} subtitle={profile.sector} />`,
		DashboardTemplates: []string{TemplateEquityOverview},
	},
	"get_stock_fundamentals": {
		SuggestedComponent: metricCard,
		Layout:             LayoutDashboard,
		HighlightFields:    []string{"pe_ratio", "pb_ratio", "eps", "roe", "profit_margin"},
		PairedWith:         []string{"get_stock_profile", "get_valuation_ratios"},
		ExampleCode:        `<PrismMetricCard title="P/E Ratio" value={fundamentals.pe_ratio} />`,
		DashboardTemplates: []string{TemplateEquityOverview},
	},
	"get_stock_financials": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"date", "revenue", "net_income", "eps", "assets", "liabilities"},
		PairedWith:         []string{"get_stock_fundamentals"},
		ExampleCode:        `<PrismStockTable data={financials} />`,
	},
	"get_stock_peers": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"symbol", "name"},
		PairedWith:         []string{"get_stock_quote"},
		ExampleCode:        `<PrismStockTable data={peers} />`,
	},
	"get_stock_earnings": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"date", "eps_actual", "eps_estimate", "surprise_pct"},
		PairedWith:         []string{"get_stock_fundamentals"},
		ExampleCode:        `<PrismStockTable data={earnings} />`,
		DashboardTemplates: []string{TemplateEquityOverview},
	},
	"get_stock_dividends": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"ex_date", "amount", "yield"},
		ExampleCode:        `<PrismStockTable data={dividends} />`,
	},
	"get_stock_splits": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"date", "ratio"},
		ExampleCode:        `<PrismStockTable data={splits} />`,
	},
	"get_stock_filings": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"type", "date", "description"},
		ExampleCode:        `<PrismStockTable data={filings} />`,
	},
	"get_insider_trades": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"name", "transaction_type", "shares", "value", "date"},
		PairedWith:         []string{"get_institutional_holders"},
		ExampleCode:        `<PrismStockTable data={insider_trades} />`,
	},
	"get_institutional_holders": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"institution", "shares", "value", "pct_outstanding"},
		PairedWith:         []string{"get_insider_trades"},
		ExampleCode:        `<PrismStockTable data={institutions} />`,
	},
	"get_analyst_ratings": {
		SuggestedComponent: metricCard,
		Layout:             LayoutCard,
		HighlightFields:    []string{"consensus", "avg_target", "ratings"},
		PairedWith:         []string{"get_stock_fundamentals"},
		ExampleCode:        `<PrismMetricCard title="Consensus" value={ratings.consensus} />`,
		DashboardTemplates: []string{TemplateEquityOverview},
	},
	"get_valuation_ratios": {
		SuggestedComponent: metricCard,
		Layout:             LayoutDashboard,
		HighlightFields:    []string{"pe_ratio", "pb_ratio", "ev_ebitda", "peg_ratio", "ps_ratio"},
		PairedWith:         []string{"get_stock_fundamentals", "calculate_dcf"},
		ExampleCode:        `<PrismMetricCard title="P/E" value={ratios.pe_ratio} />`,
		DashboardTemplates: []string{TemplateEquityOverview},
	},
	"calculate_dcf": {
		SuggestedComponent: metricCard,
		Layout:             LayoutCard,
		HighlightFields:    []string{"intrinsic_value", "current_price", "upside_pct"},
		PairedWith:         []string{"get_valuation_ratios"},
		ExampleCode:        `<PrismMetricCard title="Intrinsic Value" value={dcf.intrinsic_value} />`,
		DashboardTemplates: []string{TemplateEquityOverview},
	},
	"get_stock_gainers": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"symbol", "name", "price", "change_pct", "volume"},
		PairedWith:         []string{"get_stock_losers", "get_most_active_stocks"},
		ExampleCode:        `<PrismStockTable data={gainers} />`,
		DashboardTemplates: []string{TemplateEquityOverview},
	},
	"get_stock_losers": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"symbol", "name", "price", "change_pct", "volume"},
		PairedWith:         []string{"get_stock_gainers"},
		ExampleCode:        `<PrismStockTable data={losers} />`,
		DashboardTemplates: []string{TemplateEquityOverview},
	},
	"get_most_active_stocks": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"symbol", "name", "price", "volume"},
		PairedWith:         []string{"get_stock_gainers"},
		ExampleCode:        `<PrismStockTable data={most_active} />`,
	},
	"get_market_indexes": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"symbol", "name", "value", "change"},
		PairedWith:         []string{"get_sector_performance"},
		ExampleCode:        `<PrismStockTable data={indexes} />`,
		DashboardTemplates: []string{TemplateEquityOverview},
	},
	"get_sector_performance": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"sector", "performance"},
		PairedWith:         []string{"get_market_indexes"},
		ExampleCode:        `<PrismStockTable data={sectors} />`,
		DashboardTemplates: []string{TemplateEquityOverview},
	},

	// ETFs, forex, commodities
	"get_popular_etfs": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"symbol", "name"},
		PairedWith:         []string{"get_etf_holdings"},
		ExampleCode:        `<PrismStockTable data={etfs} />`,
	},
	"get_etf_holdings": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"symbol", "name", "weight", "shares"},
		PairedWith:         []string{"get_etf_sector_weights"},
		ExampleCode:        `<PrismStockTable data={holdings} />`,
	},
	"get_etf_sector_weights": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"sector", "weight"},
		PairedWith:         []string{"get_etf_holdings"},
		ExampleCode:        `<PrismStockTable data={sectors} />`,
	},
	"get_forex_pairs": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"pair", "rate", "change"},
		PairedWith:         []string{"get_forex_tradeable_forms"},
		ExampleCode:        `<PrismStockTable data={pairs} />`,
	},
	"get_forex_tradeable_forms": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"form", "ticker", "venue"},
		ExampleCode:        `<PrismStockTable data={tradeable_forms} />`,
	},
	"get_commodity_prices": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"commodity", "price", "change"},
		PairedWith:         []string{"get_commodity_tradeable_forms"},
		ExampleCode:        `<PrismStockTable data={commodities} />`,
	},
	"get_commodity_tradeable_forms": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"form", "ticker", "venue"},
		ExampleCode:        `<PrismStockTable data={tradeable_forms} />`,
	},

	// Historical
	"get_historical_prices": {
		SuggestedComponent: chart,
		ChartType:          "candlestick",
		Layout:             LayoutCard,
		HighlightFields:    []string{"date", "open", "high", "low", "close", "volume"},
		PairedWith:         []string{"get_historical_volume", "get_returns"},
		ExampleCode:        `<PrismChart type="candlestick" data={prices} />`,
		DashboardTemplates: []string{TemplateEquityOverview, TemplateCryptoTrader},
	},
	"get_historical_volume": {
		SuggestedComponent: chart,
		ChartType:          "bar",
		Layout:             LayoutCard,
		HighlightFields:    []string{"date", "volume"},
		PairedWith:         []string{"get_historical_prices"},
		ExampleCode:        `<PrismChart type="bar" data={volume} />`,
	},
	"get_historical_metrics": {
		SuggestedComponent: chart,
		ChartType:          "line",
		Layout:             LayoutCard,
		HighlightFields:    []string{"date", "price", "volume", "market_cap"},
		ExampleCode:        `<PrismChart type="line" data={metrics} />`,
	},
	"get_returns": {
		SuggestedComponent: metricCard,
		Layout:             LayoutDashboard,
		HighlightFields:    []string{"1d", "7d", "30d", "1y"},
		PairedWith:         []string{"get_historical_prices"},
		ExampleCode:        `<PrismMetricCard title="30d Return" value={returns['30d']} />`,
	},
	"get_historical_volatility": {
		SuggestedComponent: metricCard,
		Layout:             LayoutCard,
		HighlightFields:    []string{"volatility", "annualized"},
		PairedWith:         []string{"get_risk"},
		ExampleCode:        `<PrismMetricCard title="Volatility" value={vol.volatility} />`,
	},
	"compare_assets": {
		SuggestedComponent: chart,
		ChartType:          "line",
		Layout:             LayoutCard,
		HighlightFields:    []string{"normalized performance"},
		PairedWith:         []string{"get_correlations"},
		ExampleCode:        `<PrismChart type="line" data={comparison} />`,
	},

	// Order book and trades
	"get_orderbook": {
		SuggestedComponent: "PrismOrderBook",
		Layout:             LayoutCard,
		HighlightFields:    []string{"bids", "asks"},
		PairedWith:         []string{"get_orderbook_depth", "get_bid_ask_spread"},
		ExampleCode:        `<PrismOrderBook bids={ob.bids} asks={ob.asks} />`,
		DashboardTemplates: []string{TemplateCryptoTrader},
	},
	"get_orderbook_depth": {
		SuggestedComponent: chart,
		ChartType:          "area",
		Layout:             LayoutCard,
		HighlightFields:    []string{"depth"},
		PairedWith:         []string{"get_orderbook"},
		ExampleCode:        `<PrismChart type="area" data={depth} />`,
	},
	"get_bid_ask_spread": {
		SuggestedComponent: metricCard,
		Layout:             LayoutCard,
		HighlightFields:    []string{"spread", "spread_pct"},
		PairedWith:         []string{"get_orderbook"},
		ExampleCode:        `<PrismMetricCard title="Spread" value={spread.spread_pct} />`,
	},
	"get_orderbook_imbalance": {
		SuggestedComponent: metricCard,
		Layout:             LayoutCard,
		HighlightFields:    []string{"imbalance", "bid_volume", "ask_volume"},
		PairedWith:         []string{"get_orderbook"},
		ExampleCode:        `<PrismMetricCard title="Imbalance" value={imb.imbalance} />`,
	},
	"get_recent_trades": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"time", "price", "amount", "side"},
		PairedWith:         []string{"get_large_trades"},
		ExampleCode:        `<PrismStockTable data={trades} />`,
	},
	"get_large_trades": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"time", "price", "amount", "value_usd"},
		PairedWith:         []string{"get_recent_trades", "whale_movements"},
		ExampleCode:        `<PrismStockTable data={large_trades} />`,
		DashboardTemplates: []string{TemplateCryptoTrader},
	},

	// Social
	"social_sentiment": {
		SuggestedComponent: metricCard,
		Layout:             LayoutCard,
		HighlightFields:    []string{"sentiment_score", "label", "bullish_pct", "bearish_pct"},
		PairedWith:         []string{"get_news", "get_price", "whale_movements"},
		ExampleCode:        `<PrismMetricCard title="Sentiment" value={s.sentiment_score} subtitle={s.label} />`,
		DashboardTemplates: []string{TemplateCryptoTrader},
	},
	"get_social_mentions": {
		SuggestedComponent: metricCard,
		Layout:             LayoutCard,
		HighlightFields:    []string{"total", "change_24h"},
		PairedWith:         []string{"social_sentiment"},
		ExampleCode:        `<PrismMetricCard title="Mentions" value={mentions.total} />`,
	},
	"get_trending_score": {
		SuggestedComponent: metricCard,
		Layout:             LayoutCard,
		HighlightFields:    []string{"score", "rank"},
		PairedWith:         []string{"social_sentiment"},
		ExampleCode:        `<PrismMetricCard title="Trending Score" value={ts.score} />`,
	},
	"get_github_activity": {
		SuggestedComponent: metricCard,
		Layout:             LayoutDashboard,
		HighlightFields:    []string{"commits", "contributors", "stars"},
		PairedWith:         []string{"social_sentiment"},
		ExampleCode:        `<PrismMetricCard title="Commits" value={gh.commits} />`,
	},
	"get_trending_social": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"symbol", "score"},
		PairedWith:         []string{"social_sentiment"},
		ExampleCode:        `<PrismStockTable data={trending} />`,
	},
	"social_overview": {
		SuggestedComponent: metricCard,
		Layout:             LayoutDashboard,
		HighlightFields:    []string{"sentiment.sentiment_score", "mentions.total", "trending.score"},
		PairedWith:         []string{"social_sentiment", "get_social_mentions", "get_trending_score"},
		ExampleCode:        `<PrismMetricCard title="Sentiment" value={social.sentiment.sentiment_score} />`,
		DashboardTemplates: []string{TemplateCryptoTrader},
	},

	// Sports
	"list_sports": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"sport", "name", "active"},
		PairedWith:         []string{"get_sports_events"},
		ExampleCode:        `<PrismStockTable data={sports} />`,
	},
	"get_sports_events": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"event", "date", "status"},
		PairedWith:         []string{"get_event_details", "get_event_odds"},
		ExampleCode:        `<PrismStockTable data={events} />`,
	},
	"get_event_details": {
		SuggestedComponent: metricCard,
		Layout:             LayoutCard,
		HighlightFields:    []string{"event", "date", "teams", "venue"},
		PairedWith:         []string{"get_event_odds"},
		ExampleCode:        `<PrismMetricCard title={event.event} />`,
	},
	"get_event_odds": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"bookmaker", "market", "odds"},
		PairedWith:         []string{"compare_odds"},
		ExampleCode:        `<PrismStockTable data={odds} />`,
	},
	"resolve_sports_event": {
		SuggestedComponent: metricCard,
		Layout:             LayoutCard,
		HighlightFields:    []string{"event"},
		PairedWith:         []string{"get_event_details"},
		ExampleCode:        `<PrismMetricCard title={event.event} />`,
	},
	"search_sports_events": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"event", "date", "sport"},
		PairedWith:         []string{"get_sports_events"},
		ExampleCode:        `<PrismStockTable data={events} />`,
	},
	"get_sportsbooks": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"name"},
		ExampleCode:        `<PrismStockTable data={sportsbooks} />`,
	},

	// Odds
	"find_arbitrage": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"event", "profit_pct", "stake_required"},
		PairedWith:         []string{"get_event_arbitrage"},
		ExampleCode:        `<PrismStockTable data={opportunities} />`,
	},
	"get_event_arbitrage": {
		SuggestedComponent: metricCard,
		Layout:             LayoutCard,
		HighlightFields:    []string{"profit_pct", "stake_required"},
		PairedWith:         []string{"find_arbitrage"},
		ExampleCode:        `<PrismMetricCard title="Profit %" value={arb.profit_pct} />`,
	},
	"compare_odds": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"bookmaker", "odds"},
		PairedWith:         []string{"get_event_odds"},
		ExampleCode:        `<PrismStockTable data={comparison} />`,
	},
	"get_odds_history": {
		SuggestedComponent: chart,
		ChartType:          "line",
		Layout:             LayoutCard,
		HighlightFields:    []string{"date", "odds"},
		PairedWith:         []string{"compare_odds"},
		ExampleCode:        `<PrismChart type="line" data={history} />`,
	},
	"get_best_odds": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"event", "bookmaker", "odds"},
		PairedWith:         []string{"compare_odds"},
		ExampleCode:        `<PrismStockTable data={odds} />`,
	},
	"get_odds_platforms": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"name", "type"},
		ExampleCode:        `<PrismStockTable data={platforms} />`,
	},

	// Developer
	"api_health": {
		SuggestedComponent: metricCard,
		Layout:             LayoutCard,
		HighlightFields:    []string{"status", "uptime", "latency"},
		ExampleCode:        `<PrismMetricCard title="API Health" value={health.status} />`,
	},
	"check_usage": {
		SuggestedComponent: metricCard,
		Layout:             LayoutCard,
		HighlightFields:    []string{"tier", "usage_count_today", "requests_per_day_limit"},
		PairedWith:         []string{"check_tiers"},
		ExampleCode:        `<PrismMetricCard title="Requests Today" value={usage.usage_count_today} subtitle={usage.tier} />`,
	},
	"check_tiers": {
		SuggestedComponent: stockTable,
		Layout:             LayoutTable,
		HighlightFields:    []string{"tiers", "default_tier"},
		PairedWith:         []string{"check_usage"},
		ExampleCode:        `<PrismStockTable data={tiers} />`,
	},
}
