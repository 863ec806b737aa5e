package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// DoNotReference inlines nested and top-level types, named or anonymous.
var reflector = &jsonschema.Reflector{
	DoNotReference:            true,
	AllowAdditionalProperties: true,
}

// ReflectSchema derives a tool input schema from the args struct A.
//
// Fields without `omitempty` in their json tag are required. Descriptions come
// from the `jsonschema_description` tag, enums from `jsonschema:"enum=..."`.
func ReflectSchema[A any]() map[string]any {
	s := reflector.Reflect(new(A))

	raw, err := json.Marshal(s)
	if err != nil {
		panic(fmt.Sprintf("mcp: marshal reflected schema: %v", err))
	}

	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		panic(fmt.Sprintf("mcp: decode reflected schema: %v", err))
	}

	delete(out, "$schema")
	delete(out, "$id")
	delete(out, "$defs")
	out["type"] = "object"
	if _, ok := out["properties"]; !ok {
		out["properties"] = map[string]any{}
	}
	return out
}
