package models

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Tools   int    `json:"tools"`
}

// ToolSummary is one row of the GET /tools catalog.
type ToolSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ReadOnly    bool   `json:"readOnly"`
	Component   string `json:"component,omitempty"`
}

// ToolIndex is the GET /tools response.
type ToolIndex struct {
	Count int           `json:"count"`
	Tools []ToolSummary `json:"tools"`
}

// InstantKey is the subset of the instant-key provisioning response the
// server inspects. The full upstream body is passed through to the caller.
type InstantKey struct {
	APIKey    string `json:"api_key"`
	Tier      string `json:"tier"`
	ExpiresAt string `json:"expires_at,omitempty"`
	Message   string `json:"message,omitempty"`
}
