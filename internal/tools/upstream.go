// Package tools defines every tool the server exposes, grouped by domain, and
// registers them on an mcp.Registry.
package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/mcp"
	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/prism"
)

// Upstream performs one upstream API call. *prism.Client implements it.
type Upstream interface {
	Do(ctx context.Context, req prism.Request) (json.RawMessage, error)
}

type namedRequest struct {
	name string
	req  prism.Request
}

// fanOut issues calls concurrently and assembles the results in declaration
// order. The first failure cancels the remaining calls and fails the whole
// fan-out; partial results are discarded.
func fanOut(ctx context.Context, up Upstream, calls ...namedRequest) (mcp.Composite, error) {
	g, ctx := errgroup.WithContext(ctx)
	parts := make(mcp.Composite, len(calls))

	for i, c := range calls {
		parts[i].Name = c.name
		g.Go(func() error {
			body, err := up.Do(ctx, c.req)
			if err != nil {
				return fmt.Errorf("%s: %w", c.name, err)
			}
			parts[i].Value = body
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return parts, nil
}

// Argument types shared by several tools.

type noArgs struct{}

type assetArgs struct {
	Symbol string `json:"symbol" url:"-" jsonschema_description:"Asset symbol"`
}

type tickerArgs struct {
	Symbol string `json:"symbol" url:"-" jsonschema_description:"Stock ticker"`
}

type tickerLimitArgs struct {
	Symbol string `json:"symbol" url:"-" jsonschema_description:"Stock ticker"`
	Limit  *int   `json:"limit,omitempty" url:"limit,omitempty" jsonschema_description:"Number of records to return"`
}

type limitArgs struct {
	Limit *int `json:"limit,omitempty" url:"limit,omitempty" jsonschema_description:"Number of results to return (default 20)"`
}

type timeframeArgs struct {
	Symbol    string `json:"symbol" url:"-" jsonschema_description:"Asset symbol"`
	Timeframe string `json:"timeframe,omitempty" url:"timeframe,omitempty" jsonschema_description:"Timeframe (e.g. '1d', '4h', '1h'). Default: '1d'"`
}

type eventArgs struct {
	EventID string `json:"event_id" url:"-" jsonschema_description:"Event ID"`
}

type symbolsArgs struct {
	Symbols string `json:"symbols,omitempty" url:"symbols,omitempty" jsonschema_description:"Comma-separated symbols (optional, defaults to all)"`
}
