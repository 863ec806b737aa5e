package mcp

import (
	"context"
	"encoding/json"
	"errors"
)

// Handler executes a tool with already validated JSON arguments and returns
// a JSON-marshalable payload.
type Handler func(ctx context.Context, args json.RawMessage) (any, error)

// Tool is a registrable tool: descriptor data plus its handler.
type Tool struct {
	Name        string
	Description string
	Schema      map[string]any
	ReadOnly    bool
	Shape       Shape
	Handler     Handler
}

// BindOption customises a tool built by Bind.
type BindOption func(*Tool)

// Nest places the handler result under field instead of spreading it.
func Nest(field string) BindOption {
	return func(t *Tool) { t.Shape = Shape{Field: field} }
}

// Mutating marks the tool as not read-only.
func Mutating() BindOption {
	return func(t *Tool) { t.ReadOnly = false }
}

// Default declares a default value for a top-level argument. The registry
// fills it in before the handler runs.
func Default(field string, value any) BindOption {
	return func(t *Tool) {
		props, _ := t.Schema["properties"].(map[string]any)
		if prop, ok := props[field].(map[string]any); ok {
			prop["default"] = value
		}
	}
}

// Bind builds a read-only tool whose arguments decode into A. The input
// schema is reflected from A.
func Bind[A any](name, description string, fn func(context.Context, A) (any, error), opts ...BindOption) *Tool {
	t := &Tool{
		Name:        name,
		Description: description,
		Schema:      ReflectSchema[A](),
		ReadOnly:    true,
		Handler: func(ctx context.Context, raw json.RawMessage) (any, error) {
			var args A
			if err := json.Unmarshal(raw, &args); err != nil {
				return nil, &argumentError{field: decodeField(err), err: err}
			}
			return fn(ctx, args)
		},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func decodeField(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return typeErr.Field
	}
	return ""
}
