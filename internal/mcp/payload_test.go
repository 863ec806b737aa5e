package mcp

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/hints"
)

func TestShapeApply(t *testing.T) {
	hint := &hints.Hint{SuggestedComponent: "C", Layout: hints.LayoutTable}
	ui := `{"suggestedComponent":"C","layout":"table"}`

	tests := []struct {
		name    string
		shape   Shape
		payload string
		hint    *hints.Hint
		want    string
	}{
		{name: "spread object", payload: `{"a":1}`, hint: hint, want: `{"a":1,"_ui":` + ui + `}`},
		{name: "spread array", payload: `[1]`, hint: hint, want: `{"data":[1],"_ui":` + ui + `}`},
		{name: "spread scalar", payload: `"x"`, hint: hint, want: `{"data":"x","_ui":` + ui + `}`},
		{name: "spread no hint", payload: `[1]`, want: `[1]`},
		{name: "nest", shape: Shape{Field: "earnings"}, payload: `[1]`, hint: hint, want: `{"earnings":[1],"_ui":` + ui + `}`},
		{name: "nest no hint", shape: Shape{Field: "events"}, payload: `{"a":1}`, want: `{"events":{"a":1}}`},
		{name: "empty payload", payload: ``, hint: hint, want: `{"data":null,"_ui":` + ui + `}`},
		{name: "overwrites upstream _ui", payload: `{"_ui":1}`, hint: hint, want: `{"_ui":` + ui + `}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.shape.Apply([]byte(tt.payload), tt.hint)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestCompositePreservesOrder(t *testing.T) {
	c := Composite{
		{Name: "overview", Value: json.RawMessage(`{"x":1}`)},
		{Name: "global", Value: json.RawMessage(`[1]`)},
		{Name: "fear_greed", Value: nil},
	}

	raw, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, `{"overview":{"x":1},"global":[1],"fear_greed":null}`, string(raw))
}

func TestEscapeKey(t *testing.T) {
	assert.Equal(t, `a\.b`, escapeKey("a.b"))
	assert.Equal(t, "plain_key", escapeKey("plain_key"))
}
