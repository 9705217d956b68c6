package jsonschema

import "fmt"

// EvaluateContains checks if at least one element in an array meets the conditions specified by the 'contains' keyword.
// It follows the JSON Schema Draft-07:
//   - "contains" must be associated with a valid JSON Schema.
//   - An array is valid if at least one of its elements matches the given schema.
//
// Draft-07 has no "minContains"/"maxContains" keywords, so presence of a single matching
// element is always sufficient.
//
// Reference: https://json-schema.org/draft-07/json-schema-core#name-contains
func evaluateContains(schema *Schema, data []interface{}, patch *Patch, location string) ([]*EvaluationResult, *EvaluationError) {
	if schema.Contains == nil {
		// No 'contains' constraint is defined, skip further checks.
		return nil, nil
	}

	results := []*EvaluationResult{}

	var validCount int
	for i, item := range data {
		result, _ := schema.Contains.evaluate(item, patch, fmt.Sprintf("%s/%d", location, i))

		if result != nil {
			//nolint:errcheck
			result.SetEvaluationPath("/contains").
				SetSchemaLocation(schema.GetSchemaLocation("/contains")).
				SetInstanceLocation(fmt.Sprintf("/%d", i))

			if result.IsValid() {
				validCount++
			} else {
				results = append(results, result)
			}
		}
	}

	if validCount == 0 {
		return results, NewEvaluationError("contains", "contains_no_match", "No items match the contains schema")
	}

	return results, nil
}
