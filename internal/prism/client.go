package prism

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/cache"
)

const maxResponseBytes = 16 << 20

// ResponseCache stores raw upstream bodies. *cache.Cache implements it.
type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, body []byte) error
}

// Observer receives upstream and cache measurements.
type Observer interface {
	ObserveUpstream(op, status string, latency time.Duration)
	ObserveCache(result string)
}

// Client is the process-wide upstream data client. It is safe for concurrent
// use and immutable after construction.
type Client struct {
	baseURL  string
	apiKey   string
	keyID    string
	http     *retryablehttp.Client
	cache    ResponseCache
	observer Observer
	logger   *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithCache enables caching of successful GET responses.
func WithCache(c ResponseCache) Option {
	return func(cl *Client) { cl.cache = c }
}

// WithObserver attaches a metrics observer.
func WithObserver(o Observer) Option {
	return func(cl *Client) { cl.observer = o }
}

// WithTimeout sets the per-attempt HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) { cl.http.HTTPClient.Timeout = d }
}

// WithRetry sets the retry budget and backoff bounds for 429/5xx responses
// and connection errors.
func WithRetry(max int, waitMin, waitMax time.Duration) Option {
	return func(cl *Client) {
		cl.http.RetryMax = max
		cl.http.RetryWaitMin = waitMin
		cl.http.RetryWaitMax = waitMax
	}
}

// NewClient creates an upstream client authenticating with apiKey.
func NewClient(baseURL, apiKey string, logger *slog.Logger, opts ...Option) *Client {
	logger = logger.With("component", "prism_client")

	rc := retryablehttp.NewClient()
	rc.Logger = logger
	rc.RetryMax = 2
	rc.HTTPClient.Timeout = 15 * time.Second
	// Hand the final response back so non-2xx statuses surface as *APIError.
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		keyID:   strconv.FormatUint(xxhash.Sum64String(apiKey), 16),
		http:    rc,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do executes req and returns the raw JSON body. Non-2xx responses return
// *APIError. Successful GETs are served from and stored in the response
// cache when one is configured; cache failures are logged and ignored.
func (c *Client) Do(ctx context.Context, req Request) (json.RawMessage, error) {
	if err := req.Err(); err != nil {
		return nil, err
	}

	var cacheKey string
	if c.cacheable(req) {
		// Responses are per credential; processes with different keys may share Redis.
		cacheKey = cache.Key(req.Op, c.keyID+"|"+req.Identity())
		body, ok, err := c.cache.Get(ctx, cacheKey)
		switch {
		case err != nil:
			c.observeCache("error")
			c.logger.WarnContext(ctx, "cache_get_failed", "op", req.Op, "error", err)
		case ok:
			c.observeCache("hit")
			return json.RawMessage(body), nil
		default:
			c.observeCache("miss")
		}
	}

	body, err := c.send(ctx, req)
	if err != nil {
		return nil, err
	}

	if cacheKey != "" {
		if err := c.cache.Set(ctx, cacheKey, body); err != nil {
			c.logger.WarnContext(ctx, "cache_set_failed", "op", req.Op, "error", err)
		}
	}

	return body, nil
}

func (c *Client) send(ctx context.Context, req Request) (json.RawMessage, error) {
	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var payload []byte
	if req.Body != nil {
		var err error
		payload, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("%s: encode body: %w", req.Op, err)
		}
	}

	var rawBody any
	if payload != nil {
		rawBody = payload
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, target, rawBody)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", req.Op, err)
	}
	httpReq.Header.Set("X-API-Key", c.apiKey)
	httpReq.Header.Set("Accept", "application/json")
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	latency := time.Since(start)
	if err != nil {
		c.observeUpstream(req.Op, "error", latency)
		c.logger.ErrorContext(ctx, "upstream_request_failed", "op", req.Op, "error", err, "latency_ms", latency.Milliseconds())
		return nil, fmt.Errorf("%s: request failed: %w", req.Op, err)
	}
	defer resp.Body.Close()

	c.observeUpstream(req.Op, strconv.Itoa(resp.StatusCode), latency)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%s: read response: %w", req.Op, err)
	}

	c.logger.DebugContext(ctx, "upstream_request",
		"op", req.Op,
		"method", req.Method,
		"path", req.Path,
		"status", resp.StatusCode,
		"latency_ms", latency.Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			Op:         req.Op,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       body,
		}
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return json.RawMessage("null"), nil
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%s: upstream returned invalid JSON", req.Op)
	}

	return json.RawMessage(body), nil
}

func (c *Client) cacheable(req Request) bool {
	return c.cache != nil && req.Method == "GET"
}

func (c *Client) observeUpstream(op, status string, latency time.Duration) {
	if c.observer != nil {
		c.observer.ObserveUpstream(op, status, latency)
	}
}

func (c *Client) observeCache(result string) {
	if c.observer != nil {
		c.observer.ObserveCache(result)
	}
}
