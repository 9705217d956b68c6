package jsonschema

import (
	"fmt"
	"strconv"
	"strings"
)

// EvaluateOneOf checks if the data conforms to exactly one of the schemas specified in the oneOf attribute.
// According to the JSON Schema Draft-07:
//   - The "oneOf" keyword's value must be a non-empty array, where each item is either a valid JSON Schema or a boolean.
//   - An instance validates successfully against this keyword if it validates successfully against exactly one schema or is true for exactly one boolean in this array.
//
// This function ensures that the data instance meets exactly one of the specified constraints defined by the schemas or booleans in the oneOf array.
// If the instance conforms to more than one or none of the schemas, it returns a EvaluationError detailing the specific failures or the lack of a valid schema.
//
// Reference: https://json-schema.org/draft-07/json-schema-core#name-oneof
func evaluateOneOf(schema *Schema, instance interface{}, patch *Patch, location string) ([]*EvaluationResult, *EvaluationError) {
	if len(schema.OneOf) == 0 {
		return nil, nil // No oneOf constraints to validate against.
	}

	valid_indexs := []string{}
	results := []*EvaluationResult{}

	for i, subSchema := range schema.OneOf {
		if subSchema != nil {
			result, _ := subSchema.evaluate(instance, patch, location)
			if result != nil {
				results = append(results, result.SetEvaluationPath(fmt.Sprintf("/oneOf/%d", i)).
					SetSchemaLocation(schema.GetSchemaLocation(fmt.Sprintf("/oneOf/%d", i))).
					SetInstanceLocation(""),
				)

				if result.IsValid() {
					valid_indexs = append(valid_indexs, strconv.Itoa(i))
				}
			}
		}
	}

	if len(valid_indexs) == 1 {
		return results, nil
	}

	if len(valid_indexs) > 1 {
		return results, NewEvaluationError("oneOf", "one_of_multiple_matches", "{count} subschemas matched, but exactly one is required to match", map[string]interface{}{
			"count":   strconv.Itoa(len(valid_indexs)),
			"matches": strings.Join(valid_indexs, ", "),
		})
	} else { // If no conditions are met, return error
		return results, NewEvaluationError("oneOf", "one_of_item_mismatch", "Value does not match the oneOf schema")
	}
}
