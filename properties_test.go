package jsonschema

import (
	"testing"
)

// TestPropertiesDefaultPatchPath covers the Patch recorded for a missing property's
// default value, both at the root and nested inside an object, to make sure the patch
// path is the property's absolute instance location rather than always "/<name>".
func TestPropertiesDefaultPatchPath(t *testing.T) {
	schemaJSON := `{
		"$schema": "https://json-schema.org/draft-07/schema",
		"type": "object",
		"properties": {
			"status": {"type": "string", "default": "pending"},
			"settings": {
				"type": "object",
				"properties": {
					"theme": {"type": "string", "default": "light"}
				}
			}
		}
	}`

	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(schemaJSON))
	if err != nil {
		t.Fatalf("Failed to compile schema: %v", err)
	}

	instance := map[string]interface{}{
		"settings": map[string]interface{}{},
	}
	result := schema.Validate(instance)
	if !result.IsValid() {
		t.Fatalf("expected instance to be valid, got errors: %v", result.Errors)
	}

	paths := make(map[string]any, len(result.Patch))
	for _, op := range result.Patch {
		paths[op.Path] = op.Value
	}

	if v, ok := paths["/status"]; !ok || v != "pending" {
		t.Errorf("expected patch for root default at /status, got %v", result.Patch)
	}

	if v, ok := paths["/settings/theme"]; !ok || v != "light" {
		t.Errorf("expected patch for nested default at /settings/theme, got %v", result.Patch)
	}
}
