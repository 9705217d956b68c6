package jsonschema

import "math"

// EvaluateMultipleOf checks if the numeric data is a multiple of the value specified in the "multipleOf" schema attribute.
// According to the JSON Schema Draft-07:
//   - The value of "multipleOf" must be a number, strictly greater than 0.
//   - A numeric instance is valid only if division by this keyword's value results in an integer.
//
// The comparison is done in float64 with a one-ULP tolerance rather than exact big.Rat
// division: value%divisor is allowed to differ from zero by up to one float64 unit in
// the last place of value, since real-world schemas rely on ordinary float64 rounding
// (e.g. 0.3 as a multiple of 0.1) that exact rational arithmetic would reject.
//
// Reference: https://json-schema.org/draft-07/json-schema-validation#name-multipleof
func evaluateMultipleOf(schema *Schema, value *Rat) *EvaluationError {
	if schema.MultipleOf == nil {
		return nil
	}

	if schema.MultipleOf.Sign() <= 0 {
		// If the divisor is not strictly positive, return an error.
		return NewEvaluationError("multipleOf", "invalid_multiple_of", "Multiple of {divisor} should be greater than 0", map[string]interface{}{
			"divisor": FormatRat(schema.MultipleOf),
		})
	}

	v, _ := value.Float64()
	divisor, _ := schema.MultipleOf.Float64()

	remainder := math.Remainder(v, divisor)
	tolerance := math.Abs(math.Nextafter(v, 0) - v)

	if math.Abs(remainder) > tolerance {
		return NewEvaluationError("multipleOf", "not_multiple_of", "{value} should be a multiple of {divisor}", map[string]interface{}{
			"divisor": FormatRat(schema.MultipleOf),
			"value":   FormatRat(value),
		})
	}

	return nil
}
