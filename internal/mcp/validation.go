package mcp

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// SchemaValidator wraps a compiled tool input schema.
type SchemaValidator struct {
	schema   *jsonschema.Schema
	defaults map[string]any
}

// NewSchemaValidator compiles a JSON schema definition
func NewSchemaValidator(schemaMap map[string]any) (*SchemaValidator, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7

	schemaJSON, err := json.Marshal(schemaMap)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	if err := compiler.AddResource("schema.json", bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return &SchemaValidator{schema: schema, defaults: topLevelDefaults(schemaMap)}, nil
}

// Validate checks args (a decoded JSON object) against the schema.
func (v *SchemaValidator) Validate(args map[string]any) error {
	if err := v.schema.Validate(args); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			field, msg := leafError(ve)
			return &ValidationError{Field: field, Message: msg}
		}
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// ApplyDefaults fills absent top-level properties with their schema default.
func (v *SchemaValidator) ApplyDefaults(args map[string]any) {
	for name, def := range v.defaults {
		if _, ok := args[name]; !ok {
			args[name] = def
		}
	}
}

// ValidationError represents a parameter validation error with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("validation failed for field '%s': %s", e.Field, e.Message)
}

var missingProperty = regexp.MustCompile(`missing properties?: '([^']+)'`)

// leafError walks to the most specific cause and names the failing field.
func leafError(ve *jsonschema.ValidationError) (string, string) {
	leaf := ve
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}

	field := strings.ReplaceAll(strings.TrimPrefix(leaf.InstanceLocation, "/"), "/", ".")
	if m := missingProperty.FindStringSubmatch(leaf.Message); m != nil {
		if field != "" {
			field += "."
		}
		field += m[1]
	}
	return field, leaf.Message
}

func topLevelDefaults(schema map[string]any) map[string]any {
	props, _ := schema["properties"].(map[string]any)
	defaults := make(map[string]any)
	for name, p := range props {
		prop, ok := p.(map[string]any)
		if !ok {
			continue
		}
		if def, ok := prop["default"]; ok {
			defaults[name] = def
		}
	}
	return defaults
}
