package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type holding struct {
	Symbol string  `json:"symbol"`
	Weight float64 `json:"weight"`
}

type portfolioArgs struct {
	Positions []holding `json:"positions" jsonschema_description:"Portfolio positions"`
	Days      *int      `json:"days,omitempty"`
}

func TestBindAcceptsAnonymousArgs(t *testing.T) {
	tool := Bind("ping", "p", func(context.Context, struct{}) (any, error) { return "pong", nil })

	assert.Equal(t, "object", tool.Schema["type"])
	assert.Equal(t, map[string]any{}, tool.Schema["properties"])

	out, err := tool.Handler(context.Background(), json.RawMessage(`{}`))
	require.NoError(t, err)
	assert.Equal(t, "pong", out)

	inline := Bind("inline", "i", func(_ context.Context, a struct {
		Key string `json:"key"`
	}) (any, error) {
		return a.Key, nil
	})
	props, ok := inline.Schema["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "key")
	assert.Equal(t, []any{"key"}, inline.Schema["required"])
}

func TestReflectSchemaInlinesNestedTypes(t *testing.T) {
	s := ReflectSchema[portfolioArgs]()

	assert.NotContains(t, s, "$defs")
	assert.NotContains(t, s, "$ref")
	assert.Equal(t, []any{"positions"}, s["required"])

	props := s["properties"].(map[string]any)
	positions := props["positions"].(map[string]any)
	assert.Equal(t, "array", positions["type"])
	items := positions["items"].(map[string]any)
	assert.Equal(t, "object", items["type"])
	assert.Contains(t, items["properties"], "weight")

	v, err := NewSchemaValidator(s)
	require.NoError(t, err)
	require.NoError(t, v.Validate(map[string]any{"positions": []any{map[string]any{"symbol": "BTC", "weight": 0.5}}}))
	require.Error(t, v.Validate(map[string]any{}))
}
