package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/hints"
)

// Observer receives one measurement per invocation. outcome is "success" or
// the failing Kind's name.
type Observer interface {
	ObserveTool(tool, outcome string, latency time.Duration)
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithObserver attaches a metrics observer.
func WithObserver(o Observer) RegistryOption {
	return func(r *Registry) { r.observer = o }
}

type entry struct {
	tool       *Tool
	descriptor Descriptor
	validator  *SchemaValidator
	hint       *hints.Hint
}

// Registry maps tool names to tools. Registration happens at startup; after
// that the registry is read concurrently by every invocation.
type Registry struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]*entry

	hints    *hints.Table
	logger   *slog.Logger
	observer Observer
}

// NewRegistry creates an empty registry reading render hints from table.
func NewRegistry(table *hints.Table, logger *slog.Logger, opts ...RegistryOption) *Registry {
	r := &Registry{
		entries: make(map[string]*entry),
		hints:   table,
		logger:  logger.With("component", "tool_registry"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds t. A name that is already registered is rejected with
// ErrDuplicateTool.
func (r *Registry) Register(t *Tool) error {
	if t == nil || t.Name == "" {
		return fmt.Errorf("%w: empty name", errInvalidDefinition)
	}
	if t.Handler == nil {
		return fmt.Errorf("%w: %s has no handler", errInvalidDefinition, t.Name)
	}

	validator, err := NewSchemaValidator(t.Schema)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", errInvalidDefinition, t.Name, err)
	}

	hint, _ := r.hints.Lookup(t.Name)
	desc := Descriptor{
		Name:        t.Name,
		Description: t.Description,
		InputSchema: t.Schema,
		Annotations: Annotations{ReadOnlyHint: t.ReadOnly},
	}
	if hint != nil {
		desc.Meta = &ToolMeta{UI: hint}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[t.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, t.Name)
	}
	r.entries[t.Name] = &entry{tool: t, descriptor: desc, validator: validator, hint: hint}
	r.order = append(r.order, t.Name)
	return nil
}

// List returns every descriptor in registration order.
func (r *Registry) List() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Descriptor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.entries[name].descriptor)
	}
	return out
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	if !ok {
		return Descriptor{}, false
	}
	return e.descriptor, true
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Invoke validates args against the tool's schema, runs its handler and
// returns the shaped payload as a single text block. Failures are *ToolError.
func (r *Registry) Invoke(ctx context.Context, name string, args json.RawMessage) (*CallToolResult, error) {
	start := time.Now()
	logInvocation(ctx, r.logger, name)

	result, err := r.invoke(ctx, name, args)
	latency := time.Since(start)

	if err != nil {
		var toolErr *ToolError
		if !errors.As(err, &toolErr) {
			toolErr = &ToolError{Kind: KindUpstreamFailure, Tool: name, Err: err}
			err = toolErr
		}
		logError(ctx, r.logger, toolErr, latency.Milliseconds())
		r.observe(name, toolErr.Kind.String(), latency)
		return nil, err
	}

	logSuccess(ctx, r.logger, name, len(result.Content[0].Text), latency.Milliseconds())
	r.observe(name, "success", latency)
	return result, nil
}

func (r *Registry) invoke(ctx context.Context, name string, raw json.RawMessage) (*CallToolResult, error) {
	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()
	if !ok {
		return nil, &ToolError{Kind: KindUnknownTool, Tool: name, Err: ErrUnknownTool}
	}

	args, err := decodeArguments(raw)
	if err != nil {
		return nil, &ToolError{Kind: KindInvalidArguments, Tool: name, Err: err}
	}

	if err := e.validator.Validate(args); err != nil {
		toolErr := &ToolError{Kind: KindInvalidArguments, Tool: name, Err: err}
		var ve *ValidationError
		if errors.As(err, &ve) {
			toolErr.Field = ve.Field
		}
		return nil, toolErr
	}
	e.validator.ApplyDefaults(args)

	normalized, err := json.Marshal(args)
	if err != nil {
		return nil, &ToolError{Kind: KindInvalidArguments, Tool: name, Err: err}
	}

	payload, err := e.tool.Handler(ctx, normalized)
	if err != nil {
		var argErr *argumentError
		if errors.As(err, &argErr) {
			return nil, &ToolError{Kind: KindInvalidArguments, Tool: name, Field: argErr.field, Err: argErr.err}
		}
		return nil, &ToolError{Kind: KindUpstreamFailure, Tool: name, Err: err}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &ToolError{Kind: KindUpstreamFailure, Tool: name, Err: fmt.Errorf("encode result: %w", err)}
	}

	shaped, err := e.tool.Shape.Apply(body, e.hint)
	if err != nil {
		return nil, &ToolError{Kind: KindUpstreamFailure, Tool: name, Err: err}
	}

	return NewTextResult(string(pretty.Pretty(shaped))), nil
}

// decodeArguments accepts an absent or null value as an empty object and
// rejects anything that is not a JSON object. Numbers are kept as json.Number.
func decodeArguments(raw json.RawMessage) (map[string]any, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return map[string]any{}, nil
	}
	if !gjson.ValidBytes(raw) {
		return nil, errors.New("arguments are not valid JSON")
	}
	if !gjson.ParseBytes(raw).IsObject() {
		return nil, errors.New("arguments must be a JSON object")
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var args map[string]any
	if err := dec.Decode(&args); err != nil {
		return nil, fmt.Errorf("decode arguments: %w", err)
	}
	return args, nil
}

func (r *Registry) observe(tool, outcome string, latency time.Duration) {
	if r.observer != nil {
		r.observer.ObserveTool(tool, outcome, latency)
	}
}
