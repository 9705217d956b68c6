package jsonschema

import (
	"fmt"
)

// EvaluateAnyOf checks if the data conforms to at least one of the schemas specified in the anyOf attribute.
// According to the JSON Schema Draft-07:
//   - The "anyOf" keyword's value must be a non-empty array, where each item is either a valid JSON Schema or a boolean.
//   - An instance validates successfully against this keyword if it validates successfully against at least one schema or is true for any boolean in this array.
//
// This function ensures that the data instance meets at least one of the specified constraints defined by the schemas or booleans in the anyOf array.
// If the instance fails to conform to all conditions in the array, it returns a EvaluationError detailing the specific failures.
//
// Reference: https://json-schema.org/draft-07/json-schema-core#name-anyof
func evaluateAnyOf(schema *Schema, data interface{}, patch *Patch, location string) ([]*EvaluationResult, *EvaluationError) {
	if len(schema.AnyOf) == 0 {
		return nil, nil // No anyOf constraints to validate against.
	}

	var valid bool
	results := []*EvaluationResult{}

	for i, subSchema := range schema.AnyOf {
		if subSchema == nil {
			continue
		}

		result, _ := subSchema.evaluate(data, patch, location)

		if result != nil {
			results = append(results, result.SetEvaluationPath(fmt.Sprintf("/anyOf/%d", i)).
				SetSchemaLocation(schema.GetSchemaLocation(fmt.Sprintf("/anyOf/%d", i))).
				SetInstanceLocation(""),
			)

			if result.IsValid() {
				valid = true
				break // Short-circuit: one matching branch is enough for anyOf.
			}
		}
	}

	if valid {
		return results, nil // Return nil only if at least one schema succeeds
	} else {
		return results, NewEvaluationError("anyOf", "any_of_item_mismatch", "Value does not match anyOf schema")
	}
}
