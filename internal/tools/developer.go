package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/tidwall/sjson"

	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/mcp"
	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/models"
	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/prism"
)

const instantKeyHint = "Store this key securely. Set it as PRISM_API_KEY to authenticate future requests; " +
	"instant keys are rate limited and expire after 7 days."

// KeyProvisioner issues instant API keys from the public provisioning
// endpoint.
type KeyProvisioner interface {
	InstantKey(ctx context.Context) (json.RawMessage, error)
}

// Provisioner calls the public instant-key endpoint with a plain HTTP
// client. It sends no credentials and never goes through the upstream
// client's retry or cache layers.
type Provisioner struct {
	url        string
	httpClient *http.Client
}

// NewProvisioner returns a Provisioner for the given endpoint URL.
func NewProvisioner(url string, timeout time.Duration) *Provisioner {
	c := cleanhttp.DefaultClient()
	c.Timeout = timeout
	return &Provisioner{url: url, httpClient: c}
}

// InstantKey requests a new key.
func (p *Provisioner) InstantKey(ctx context.Context) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build instant key request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Failed to get instant key: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("Failed to get instant key: %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read instant key response: %w", err)
	}
	var key models.InstantKey
	if err := json.Unmarshal(body, &key); err != nil {
		return nil, fmt.Errorf("Failed to get instant key: decode response: %w", err)
	}
	if key.APIKey == "" {
		return nil, fmt.Errorf("Failed to get instant key: response carries no api_key")
	}
	return body, nil
}

type verifyKeyArgs struct {
	Key string `json:"key" jsonschema_description:"The API key to verify"`
}

var (
	healthRequest = prism.Get("developer.health", "health")
	usageRequest  = prism.Get("developer.usage", "developer", "usage")
	tiersRequest  = prism.Get("developer.tiers", "developer", "tiers")
)

func developerTools(up Upstream, keys KeyProvisioner) []*mcp.Tool {
	return []*mcp.Tool{
		mcp.Bind("api_health",
			"Check PRISM API health status and service availability.",
			func(ctx context.Context, _ noArgs) (any, error) {
				return up.Do(ctx, healthRequest)
			}),

		mcp.Bind("get_api_key",
			"Get an instant PRISM API key with no signup required. Returns a free agent-tier key "+
				"(7-day expiry) that can be used immediately.",
			func(ctx context.Context, _ noArgs) (any, error) {
				body, err := keys.InstantKey(ctx)
				if err != nil {
					return nil, err
				}
				out, err := sjson.SetBytes(body, "_hint", instantKeyHint)
				if err != nil {
					return nil, fmt.Errorf("annotate instant key: %w", err)
				}
				return json.RawMessage(out), nil
			}, mcp.Mutating()),

		mcp.Bind("check_usage",
			"Check usage statistics for the configured API key: tier, requests today, and rate limits.",
			func(ctx context.Context, _ noArgs) (any, error) {
				return up.Do(ctx, usageRequest)
			}),

		mcp.Bind("check_tiers",
			"List all available PRISM API tiers with their limits and pricing.",
			func(ctx context.Context, _ noArgs) (any, error) {
				return up.Do(ctx, tiersRequest)
			}),

		mcp.Bind("verify_key",
			"Verify whether an API key is valid and return its tier.",
			func(ctx context.Context, a verifyKeyArgs) (any, error) {
				return up.Do(ctx, prism.Post("developer.verifyKey", a, "developer", "verify-key"))
			}),
	}
}
