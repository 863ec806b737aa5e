package tools

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/hints"
	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/mcp"
	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/prism"
)

// fakeUpstream records every request and answers from a per-op table.
type fakeUpstream struct {
	mu        sync.Mutex
	requests  []prism.Request
	responses map[string]string
	failures  map[string]error
}

func newFakeUpstream() *fakeUpstream {
	return &fakeUpstream{responses: map[string]string{}, failures: map[string]error{}}
}

func (f *fakeUpstream) Do(ctx context.Context, req prism.Request) (json.RawMessage, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	body, hasBody := f.responses[req.Op]
	failure := f.failures[req.Op]
	f.mu.Unlock()

	if err := req.Err(); err != nil {
		return nil, err
	}
	if failure != nil {
		return nil, failure
	}
	if !hasBody {
		body = `{"ok":true}`
	}
	return json.RawMessage(body), nil
}

func (f *fakeUpstream) recorded() []prism.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]prism.Request(nil), f.requests...)
}

func (f *fakeUpstream) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = nil
}

// failingProvisioner fails the test when called.
type failingProvisioner struct {
	t *testing.T
}

func (p failingProvisioner) InstantKey(context.Context) (json.RawMessage, error) {
	p.t.Errorf("provisioning endpoint called")
	return nil, errors.New("provisioning not allowed")
}

type staticProvisioner string

func (p staticProvisioner) InstantKey(context.Context) (json.RawMessage, error) {
	return json.RawMessage(p), nil
}

func newTestRegistry(t *testing.T, deps Deps) *mcp.Registry {
	t.Helper()
	reg := mcp.NewRegistry(hints.Default(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, RegisterAll(reg, deps))
	return reg
}

func decodeResult(t *testing.T, res *mcp.CallToolResult) map[string]any {
	t.Helper()
	require.Len(t, res.Content, 1)
	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.Content[0].Text), &out))
	return out
}

func asJSON(t *testing.T, v any) any {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var out any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

// sampleArgs builds the smallest argument object satisfying the schema's
// required properties.
func sampleArgs(schema map[string]any) map[string]any {
	out := map[string]any{}
	props, _ := schema["properties"].(map[string]any)
	required, _ := schema["required"].([]any)
	for _, r := range required {
		name := r.(string)
		prop, _ := props[name].(map[string]any)
		out[name] = sampleValue(prop)
	}
	return out
}

func sampleValue(prop map[string]any) any {
	if enum, ok := prop["enum"].([]any); ok && len(enum) > 0 {
		return enum[0]
	}
	switch prop["type"] {
	case "integer", "number":
		return 1
	case "boolean":
		return true
	case "array":
		items, _ := prop["items"].(map[string]any)
		return []any{sampleValue(items)}
	case "object":
		return sampleArgs(prop)
	default:
		return "BTC"
	}
}

func TestRegisterAllCatalog(t *testing.T) {
	reg := newTestRegistry(t, Deps{Upstream: newFakeUpstream(), Provisioner: failingProvisioner{t}})

	list := reg.List()
	assert.Len(t, list, 101)

	seen := map[string]bool{}
	for _, d := range list {
		assert.False(t, seen[d.Name], "duplicate tool %s", d.Name)
		seen[d.Name] = true
		assert.NotEmpty(t, d.Description, d.Name)
		assert.Equal(t, "object", d.InputSchema["type"], d.Name)
	}
}

func TestRegisterAllTwiceFails(t *testing.T) {
	deps := Deps{Upstream: newFakeUpstream(), Provisioner: failingProvisioner{t}}
	reg := newTestRegistry(t, deps)

	err := RegisterAll(reg, deps)
	require.ErrorIs(t, err, mcp.ErrDuplicateTool)
	assert.Equal(t, 101, reg.Len())
}

func TestDeveloperTools(t *testing.T) {
	var names []string
	for _, d := range Domains {
		if d.Name != "developer" {
			continue
		}
		for _, tool := range d.Tools(Deps{Upstream: newFakeUpstream()}) {
			names = append(names, tool.Name)
		}
	}
	sort.Strings(names)
	assert.Equal(t, []string{"api_health", "check_tiers", "check_usage", "get_api_key", "verify_key"}, names)

	reg := newTestRegistry(t, Deps{Upstream: newFakeUpstream(), Provisioner: failingProvisioner{t}})

	key, ok := reg.Lookup("get_api_key")
	require.True(t, ok)
	assert.False(t, key.Annotations.ReadOnlyHint)
	assert.Contains(t, key.Description, "instant")
	assert.Contains(t, key.Description, "no signup")

	for _, name := range []string{"api_health", "check_usage", "check_tiers", "verify_key"} {
		d, ok := reg.Lookup(name)
		require.True(t, ok, name)
		assert.True(t, d.Annotations.ReadOnlyHint, name)
	}

	verify, _ := reg.Lookup("verify_key")
	assert.Contains(t, verify.InputSchema["required"], "key")
}

func TestReadOnlyToolsUseSafeOperations(t *testing.T) {
	allowedPosts := map[string]bool{
		"resolve.batch":       true,
		"stocks.batchQuotes":  true,
		"risk.portfolio":      true,
		"developer.verifyKey": true,
	}

	up := newFakeUpstream()
	reg := newTestRegistry(t, Deps{Upstream: up, Provisioner: failingProvisioner{t}})

	for _, d := range reg.List() {
		if !d.Annotations.ReadOnlyHint {
			continue
		}
		t.Run(d.Name, func(t *testing.T) {
			up.reset()
			args, err := json.Marshal(sampleArgs(d.InputSchema))
			require.NoError(t, err)

			_, err = reg.Invoke(context.Background(), d.Name, args)
			require.NoError(t, err)

			for _, req := range up.recorded() {
				switch req.Method {
				case http.MethodGet:
				case http.MethodPost:
					assert.True(t, allowedPosts[req.Op], "unexpected POST %s", req.Op)
				default:
					t.Errorf("unexpected method %s for %s", req.Method, req.Op)
				}
				assert.NotContains(t, req.Path, "auth/keys")
			}
		})
	}
}

func TestGetAPIKey(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		assert.Equal(t, "/auth/keys/instant", r.URL.Path)
		assert.Empty(t, r.Header.Get("X-API-Key"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"api_key":"prism_sk_test_instant_mcp_123","tier":"agent","limits":{"requests_per_minute":5}}`))
	}))
	defer srv.Close()

	reg := newTestRegistry(t, Deps{
		Upstream:    newFakeUpstream(),
		Provisioner: NewProvisioner(srv.URL+"/auth/keys/instant", time.Second),
	})

	res, err := reg.Invoke(context.Background(), "get_api_key", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, hits)

	out := decodeResult(t, res)
	assert.Equal(t, "prism_sk_test_instant_mcp_123", out["api_key"])
	assert.Equal(t, "agent", out["tier"])
	assert.Contains(t, out["_hint"], "Store this key securely")
}

func TestGetAPIKeyFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	reg := newTestRegistry(t, Deps{
		Upstream:    newFakeUpstream(),
		Provisioner: NewProvisioner(srv.URL, time.Second),
	})

	_, err := reg.Invoke(context.Background(), "get_api_key", nil)
	require.Error(t, err)
	require.ErrorIs(t, err, mcp.ErrUpstreamFailure)
	assert.Contains(t, err.Error(), "Failed to get instant key: 500 Internal Server Error")
}

func TestGetAPIKeyWithoutKeyInBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tier":"agent"}`))
	}))
	defer srv.Close()

	_, err := NewProvisioner(srv.URL, time.Second).InstantKey(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no api_key")
}

func TestVerifyKey(t *testing.T) {
	up := newFakeUpstream()
	up.responses["developer.verifyKey"] = `{"valid":true,"tier":"pro"}`
	reg := newTestRegistry(t, Deps{Upstream: up, Provisioner: failingProvisioner{t}})

	t.Run("missing key", func(t *testing.T) {
		_, err := reg.Invoke(context.Background(), "verify_key", json.RawMessage(`{}`))
		require.ErrorIs(t, err, mcp.ErrInvalidArguments)

		var toolErr *mcp.ToolError
		require.True(t, errors.As(err, &toolErr))
		assert.Equal(t, "key", toolErr.Field)
		assert.Empty(t, up.recorded())
	})

	t.Run("valid key", func(t *testing.T) {
		res, err := reg.Invoke(context.Background(), "verify_key", json.RawMessage(`{"key":"prism_sk_abc"}`))
		require.NoError(t, err)

		out := decodeResult(t, res)
		assert.Equal(t, true, out["valid"])
		assert.Equal(t, "pro", out["tier"])

		reqs := up.recorded()
		require.Len(t, reqs, 1)
		assert.Equal(t, http.MethodPost, reqs[0].Method)
		assert.Equal(t, "/developer/verify-key", reqs[0].Path)
		assert.Equal(t, map[string]any{"key": "prism_sk_abc"}, asJSON(t, reqs[0].Body))
	})
}

func TestRenderHintMatchesDescriptor(t *testing.T) {
	up := newFakeUpstream()
	up.responses["developer.usage"] = `{"tier":"dev","usage_count_today":42}`
	up.responses["developer.tiers"] = `{"tiers":{"agent":{},"dev":{},"pro":{}}}`
	up.responses["technicals.analyze"] = `{"symbol":"BTC","trend":"bullish"}`
	reg := newTestRegistry(t, Deps{Upstream: up, Provisioner: failingProvisioner{t}})

	cases := map[string]string{
		"check_usage":        `{}`,
		"check_tiers":        `{}`,
		"technical_analysis": `{"symbol":"BTC"}`,
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			hint, ok := hints.Default().Lookup(name)
			require.True(t, ok)

			d, ok := reg.Lookup(name)
			require.True(t, ok)
			require.NotNil(t, d.Meta)
			assert.Equal(t, asJSON(t, hint), asJSON(t, d.Meta.UI))

			res, err := reg.Invoke(context.Background(), name, json.RawMessage(args))
			require.NoError(t, err)
			out := decodeResult(t, res)
			assert.Equal(t, asJSON(t, hint), out[mcp.UIKey])
		})
	}
}

func TestPairedToolsAreRegistered(t *testing.T) {
	reg := newTestRegistry(t, Deps{Upstream: newFakeUpstream(), Provisioner: failingProvisioner{t}})
	table := hints.Default()

	for _, name := range table.Names() {
		_, ok := reg.Lookup(name)
		assert.True(t, ok, "hint for unregistered tool %s", name)

		hint, _ := table.Lookup(name)
		for _, paired := range hint.PairedWith {
			_, ok := reg.Lookup(paired)
			assert.True(t, ok, "%s pairs with unknown tool %s", name, paired)
		}
	}
}

func TestMarketOverviewFanOut(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		up := newFakeUpstream()
		up.responses["crypto.overview"] = `{"gainers":[]}`
		up.responses["crypto.global"] = `{"total_market_cap":1}`
		up.responses["crypto.fearGreed"] = `{"value":55}`
		reg := newTestRegistry(t, Deps{Upstream: up, Provisioner: failingProvisioner{t}})

		res, err := reg.Invoke(context.Background(), "market_overview", json.RawMessage(`{"movers_limit":5}`))
		require.NoError(t, err)

		out := decodeResult(t, res)
		assert.Equal(t, map[string]any{"gainers": []any{}}, out["overview"])
		assert.Equal(t, map[string]any{"total_market_cap": float64(1)}, out["global"])
		assert.Equal(t, map[string]any{"value": float64(55)}, out["fear_greed"])
		assert.Contains(t, out, mcp.UIKey)
		assert.Len(t, up.recorded(), 3)
	})

	t.Run("one call fails", func(t *testing.T) {
		up := newFakeUpstream()
		up.failures["crypto.global"] = &prism.APIError{Op: "crypto.global", StatusCode: 502, Status: "502 Bad Gateway"}
		reg := newTestRegistry(t, Deps{Upstream: up, Provisioner: failingProvisioner{t}})

		_, err := reg.Invoke(context.Background(), "market_overview", nil)
		require.ErrorIs(t, err, mcp.ErrUpstreamFailure)

		var apiErr *prism.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, 502, apiErr.StatusCode)
		assert.Contains(t, err.Error(), "global")
	})
}

func TestSocialOverviewFanOut(t *testing.T) {
	up := newFakeUpstream()
	up.responses["social.sentiment"] = `{"score":0.4}`
	up.responses["social.mentions"] = `{"count":12}`
	up.responses["social.trendingScore"] = `{"rank":3}`
	reg := newTestRegistry(t, Deps{Upstream: up, Provisioner: failingProvisioner{t}})

	res, err := reg.Invoke(context.Background(), "social_overview", json.RawMessage(`{"symbol":"SOL"}`))
	require.NoError(t, err)

	out := decodeResult(t, res)
	assert.Equal(t, map[string]any{"score": 0.4}, out["sentiment"])
	assert.Equal(t, map[string]any{"count": float64(12)}, out["mentions"])
	assert.Equal(t, map[string]any{"rank": float64(3)}, out["trending"])
	assert.Contains(t, out, mcp.UIKey)
	assert.Len(t, up.recorded(), 3)
}

func TestGetNewsRoutesByCategory(t *testing.T) {
	up := newFakeUpstream()
	reg := newTestRegistry(t, Deps{Upstream: up, Provisioner: failingProvisioner{t}})

	_, err := reg.Invoke(context.Background(), "get_news", json.RawMessage(`{"limit":5}`))
	require.NoError(t, err)
	_, err = reg.Invoke(context.Background(), "get_news", json.RawMessage(`{"category":"stocks","symbol":"AAPL"}`))
	require.NoError(t, err)

	reqs := up.recorded()
	require.Len(t, reqs, 2)
	assert.Equal(t, "news.crypto", reqs[0].Op)
	assert.Equal(t, "5", reqs[0].Query.Get("limit"))
	assert.Equal(t, "news.stocks", reqs[1].Op)
	assert.Equal(t, "AAPL", reqs[1].Query.Get("symbol"))

	_, err = reg.Invoke(context.Background(), "get_news", json.RawMessage(`{"category":"forex"}`))
	require.ErrorIs(t, err, mcp.ErrInvalidArguments)
}

func TestRequestEncoding(t *testing.T) {
	up := newFakeUpstream()
	reg := newTestRegistry(t, Deps{Upstream: up, Provisioner: failingProvisioner{t}})

	calls := []struct {
		tool  string
		args  string
		path  string
		query string
	}{
		{"get_technical_indicators", `{"symbol":"BTC","period":14}`, "/technicals/BTC/indicators", "period=14"},
		{"analyze_forex_technicals", `{"pair":"EUR/USD"}`, "/technicals/forex/EUR%2FUSD", ""},
		{"get_correlations", `{"assets":["BTC","ETH"]}`, "/technicals/correlations", "assets=BTC%2CETH"},
		{"get_stock_financials", `{"symbol":"AAPL","statement":"income"}`, "/stocks/AAPL/financials", "statement=income"},
		{"get_event_odds", `{"event_id":"e1","market":"spread"}`, "/sports/events/e1/odds", "market=spread"},
	}

	for _, c := range calls {
		t.Run(c.tool, func(t *testing.T) {
			up.reset()
			_, err := reg.Invoke(context.Background(), c.tool, json.RawMessage(c.args))
			require.NoError(t, err)

			reqs := up.recorded()
			require.Len(t, reqs, 1)
			assert.Equal(t, c.path, reqs[0].Path)
			assert.Equal(t, c.query, reqs[0].Query.Encode())
		})
	}
}

func TestNestedPayload(t *testing.T) {
	up := newFakeUpstream()
	up.responses["stocks.gainers"] = `[{"symbol":"NVDA"}]`
	reg := newTestRegistry(t, Deps{Upstream: up, Provisioner: failingProvisioner{t}})

	res, err := reg.Invoke(context.Background(), "get_stock_gainers", nil)
	require.NoError(t, err)

	out := decodeResult(t, res)
	assert.Equal(t, []any{map[string]any{"symbol": "NVDA"}}, out["gainers"])
	assert.Contains(t, out, mcp.UIKey)
}

func TestScaffold(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		files, err := Scaffold(hints.TemplateCryptoTrader, "", frameworkNextJS, true)
		require.NoError(t, err)
		require.Len(t, files, 3)
		assert.Equal(t, "app/dashboard/page.tsx", files[0].Filename)
		assert.Contains(t, files[0].Content, `<CryptoTrader symbol="BTC" client={prism} />`)
		assert.Contains(t, files[0].Content, `import { CryptoTrader } from "@prismapi/ui";`)
		assert.Equal(t, "lib/prism.ts", files[2].Filename)
		assert.Contains(t, files[2].Content, "process.env.PRISM_API_KEY!,")
	})

	t.Run("react without types", func(t *testing.T) {
		files, err := Scaffold(hints.TemplatePortfolioTracker, "", frameworkReact, false)
		require.NoError(t, err)
		require.Len(t, files, 3)
		assert.Equal(t, []string{"src/Dashboard.tsx", "src/App.tsx", "src/prism.ts"},
			[]string{files[0].Filename, files[1].Filename, files[2].Filename})
		assert.Contains(t, files[0].Content, `symbol="AAPL"`)
		assert.NotContains(t, files[2].Content, "!")
	})

	t.Run("unknown template", func(t *testing.T) {
		_, err := Scaffold("nope", "", frameworkNextJS, true)
		require.Error(t, err)
	})

	t.Run("through registry", func(t *testing.T) {
		reg := newTestRegistry(t, Deps{Upstream: newFakeUpstream(), Provisioner: staticProvisioner(`{}`)})

		res, err := reg.Invoke(context.Background(), "prism_scaffold", json.RawMessage(`{"template":"equity-overview","symbol":"MSFT"}`))
		require.NoError(t, err)

		var files []ScaffoldFile
		require.NoError(t, json.Unmarshal([]byte(res.Content[0].Text), &files))
		require.Len(t, files, 3)
		assert.Equal(t, "app/dashboard/page.tsx", files[0].Filename)
		assert.True(t, strings.Contains(files[0].Content, `<EquityOverview symbol="MSFT"`))
	})
}
