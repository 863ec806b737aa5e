package mcp

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/hints"
)

// UIKey is the payload key carrying the render hint.
const UIKey = "_ui"

// Shape controls how a handler result is laid out in the response payload.
// The zero value spreads: an object result receives the _ui key, any other
// result is nested under "data". A non-empty Field nests the result under it.
type Shape struct {
	Field string
}

// Apply shapes payload and injects hint. With no hint a spread payload is
// returned verbatim.
func (s Shape) Apply(payload []byte, hint *hints.Hint) ([]byte, error) {
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 {
		payload = []byte("null")
	}

	var out []byte
	var err error
	switch {
	case s.Field != "":
		out, err = sjson.SetRawBytes([]byte("{}"), escapeKey(s.Field), payload)
	case hint == nil:
		return payload, nil
	case gjson.ParseBytes(payload).IsObject():
		out = payload
	default:
		out, err = sjson.SetRawBytes([]byte("{}"), "data", payload)
	}
	if err != nil {
		return nil, fmt.Errorf("shape payload: %w", err)
	}

	if hint == nil {
		return out, nil
	}

	ui, err := json.Marshal(hint)
	if err != nil {
		return nil, fmt.Errorf("marshal render hint: %w", err)
	}
	out, err = sjson.SetRawBytes(out, UIKey, ui)
	if err != nil {
		return nil, fmt.Errorf("inject render hint: %w", err)
	}
	return out, nil
}

// Part is one named member of a Composite.
type Part struct {
	Name  string
	Value json.RawMessage
}

// Composite is an ordered JSON object assembled from several upstream results.
type Composite []Part

// MarshalJSON writes the parts as an object in declaration order.
func (c Composite) MarshalJSON() ([]byte, error) {
	out := []byte("{}")
	for _, p := range c {
		value := p.Value
		if len(value) == 0 {
			value = json.RawMessage("null")
		}
		var err error
		out, err = sjson.SetRawBytes(out, escapeKey(p.Name), value)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

var keyEscaper = func() map[byte]bool {
	m := make(map[byte]bool)
	for _, c := range []byte(`.*?|#@\`) {
		m[c] = true
	}
	return m
}()

// escapeKey turns a literal object key into an sjson path.
func escapeKey(key string) string {
	var b bytes.Buffer
	for i := 0; i < len(key); i++ {
		if keyEscaper[key[i]] {
			b.WriteByte('\\')
		}
		b.WriteByte(key[i])
	}
	return b.String()
}
