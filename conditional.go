package jsonschema

// EvaluateConditional evaluates the data against conditional subschemas defined by 'if', 'then', and 'else'.
// According to the JSON Schema Draft-07:
//   - The "if" keyword specifies a subschema to conditionally validate data.
//   - If data validates against the "if" subschema, "then" subschema must also validate the data if "then" is present.
//   - If data does not validate against the "if" subschema, "else" subschema must validate the data if "else" is present.
//   - This function ensures data conformity based on the provided conditional subschemaschema.
//   - The function ignores "then" and "else" if "if" is not present.
//
// This function serves as a central feature for conditional logic application in JSON Schema validation.
//
// Reference: https://json-schema.org/draft-07/json-schema-core#name-if
func evaluateConditional(schema *Schema, instance interface{}, patch *Patch, location string) ([]*EvaluationResult, *EvaluationError) {
	if schema.If == nil {
		// If there's no 'if' condition defined, nothing to validate conditionally.
		return nil, nil
	}

	// Evaluate the 'if' condition
	ifResult, _ := schema.If.evaluate(instance, patch, location)

	results := []*EvaluationResult{}

	if ifResult != nil {
		//nolint:errcheck
		ifResult.SetEvaluationPath("/if").
			SetSchemaLocation(schema.GetSchemaLocation("/if")).
			SetInstanceLocation("")

		if ifResult.IsValid() {
			if schema.Then != nil {
				thenResult, _ := schema.Then.evaluate(instance, patch, location)

				if thenResult != nil {
					//nolint:errcheck
					thenResult.SetEvaluationPath("/then").
						SetSchemaLocation(schema.GetSchemaLocation("/then")).
						SetInstanceLocation("")

					results = append(results, thenResult)

					if !thenResult.IsValid() {
						return results, NewEvaluationError("then", "if_then_mismatch",
							"Value meets the 'if' condition but does not match the 'then' schema")
					}
				}
			}
		} else if schema.Else != nil {
			elseResult, _ := schema.Else.evaluate(instance, patch, location)
			if elseResult != nil {
				results = append(results, elseResult)

				if !elseResult.IsValid() {
					return results, NewEvaluationError("else", "if_else_mismatch",
						"Value fails the 'if' condition and does not match the 'else' schema")
				}
			}
		}
	}

	return results, nil
}
