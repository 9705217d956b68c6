package jsonschema

import (
	"fmt"
	"reflect"
)

// Validate checks if the given instance conforms to the schema. Any default
// values filled in for properties missing from the instance are recorded on
// the returned result's Patch field.
//
// instance may be a native Go value already shaped like decoded JSON
// (map[string]interface{}, []interface{}, string, float64, bool, nil), raw
// JSON bytes (including json.RawMessage or any named []byte type), or an
// arbitrary struct/other type. Bytes are parsed as JSON; anything else is
// round-tripped through the schema's JSON encoder/decoder to normalize it
// before evaluation. ValidateJSON, ValidateMap, and ValidateStruct are typed
// convenience wrappers over this same normalization for callers who already
// know their input's shape.
func (s *Schema) Validate(instance interface{}) *EvaluationResult {
	normalized, err := s.normalizeInstance(instance)
	if err != nil {
		result := NewEvaluationResult(s)
		//nolint:errcheck
		result.AddError(NewEvaluationError("instance", "invalid_instance", "Failed to interpret the instance for validation: {error}", map[string]interface{}{
			"error": err.Error(),
		}))
		return result
	}

	patch := &Patch{}
	result, _ := s.evaluate(normalized, patch, "")
	result.Patch = *patch

	return result
}

// ValidateJSON validates raw JSON bytes against the schema.
func (s *Schema) ValidateJSON(data []byte) *EvaluationResult {
	return s.Validate(data)
}

// ValidateMap validates an already-decoded JSON object against the schema.
func (s *Schema) ValidateMap(data map[string]interface{}) *EvaluationResult {
	return s.Validate(data)
}

// ValidateStruct validates a Go struct (or any other non-map, non-bytes
// value) against the schema by round-tripping it through JSON first.
func (s *Schema) ValidateStruct(data interface{}) *EvaluationResult {
	return s.Validate(data)
}

// normalizeInstance converts instance into the decoded-JSON shape (map,
// slice, string, float64, bool, nil) that evaluate expects, parsing raw
// bytes as JSON and round-tripping everything else through the compiler's
// JSON codec.
func (s *Schema) normalizeInstance(instance interface{}) (interface{}, error) {
	switch instance.(type) {
	case nil, map[string]interface{}, []interface{}, string, bool,
		float32, float64,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return instance, nil
	}

	if raw, ok := convertToByteSlice(instance); ok {
		return s.normalizeBytes(raw)
	}

	return s.normalizeGeneric(instance)
}

// normalizeBytes decodes raw bytes as JSON. Bytes that don't look like JSON
// (and fail to parse) are treated as a plain string instead of an error,
// matching how []byte sources are handled for unmarshaling.
func (s *Schema) normalizeBytes(data []byte) (interface{}, error) {
	var parsed interface{}
	if err := s.GetCompiler().jsonDecoder(data, &parsed); err == nil {
		return parsed, nil
	} else if len(data) > 0 && (data[0] == '{' || data[0] == '[') {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}
	return string(data), nil
}

// normalizeGeneric round-trips structs and other arbitrary types through
// the compiler's JSON encoder/decoder to obtain a decoded-JSON value.
func (s *Schema) normalizeGeneric(instance interface{}) (interface{}, error) {
	encoded, err := s.GetCompiler().jsonEncoder(instance)
	if err != nil {
		return nil, fmt.Errorf("failed to encode instance: %w", err)
	}

	var parsed interface{}
	if err := s.GetCompiler().jsonDecoder(encoded, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode intermediate JSON: %w", err)
	}
	return parsed, nil
}

// isByteSlice reports whether v is a []byte or a named type whose
// underlying type is a byte slice (e.g. json.RawMessage).
func isByteSlice(v interface{}) bool {
	_, ok := convertToByteSlice(v)
	return ok
}

// convertToByteSlice extracts the underlying bytes from v if v is a []byte
// or a named byte-slice type, copying them into a plain []byte.
func convertToByteSlice(v interface{}) ([]byte, bool) {
	if v == nil {
		return nil, false
	}
	if b, ok := v.([]byte); ok {
		return b, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice || rv.Type().Elem().Kind() != reflect.Uint8 {
		return nil, false
	}

	out := make([]byte, rv.Len())
	reflect.Copy(reflect.ValueOf(out), rv)
	return out, true
}

// location is the absolute JSON-Pointer-style instance location of instance
// within the document being validated, used to anchor default-value patch
// operations generated anywhere in the recursive evaluation.
func (s *Schema) evaluate(instance interface{}, patch *Patch, location string) (*EvaluationResult, *EvaluationError) {
	result := NewEvaluationResult(s)

	if s.Boolean != nil {
		if err := s.evaluateBoolean(instance); err != nil {
			//nolint:errcheck
			result.AddError(err)
		}

		return result, nil
	}

	// Compile patterns for PatternProperties if not already compiled
	if s.PatternProperties != nil {
		s.compilePatterns()
	}

	// Check if there is a resolved reference and validate against it if present
	if s.ResolvedRef != nil {
		refResult, _ := s.ResolvedRef.evaluate(instance, patch, location)

		if refResult != nil {
			//nolint:errcheck
			result.AddDetail(refResult)

			if !refResult.IsValid() {
				//nolint:errcheck
				result.AddError(
					NewEvaluationError("$ref", "ref_mismatch", "Value does not match the reference schema"),
				)
			}
		}
	}

	// Validation keywords for any instance type
	if s.Type != nil {
		if err := evaluateType(s, instance); err != nil {
			//nolint:errcheck
			result.AddError(err)
		}
	}

	if s.Enum != nil {
		if err := evaluateEnum(s, instance); err != nil {
			//nolint:errcheck
			result.AddError(err)
		}
	}

	if s.Const != nil {
		if err := evaluateConst(s, instance); err != nil {
			//nolint:errcheck
			result.AddError(err)
		}
	}

	// Validation keywords for applying subschemas with logical operations
	if s.AllOf != nil {
		allOfResults, allOfError := evaluateAllOf(s, instance, patch, location)
		for _, allOfResult := range allOfResults {
			//nolint:errcheck
			result.AddDetail(allOfResult)
		}
		if allOfError != nil {
			//nolint:errcheck
			result.AddError(allOfError)
		}
	}

	if s.AnyOf != nil {
		anyOfResults, anyOfError := evaluateAnyOf(s, instance, patch, location)
		for _, anyOfResult := range anyOfResults {
			//nolint:errcheck
			result.AddDetail(anyOfResult)
		}
		if anyOfError != nil {
			//nolint:errcheck
			result.AddError(anyOfError)
		}
	}

	if s.OneOf != nil {
		oneOfResults, oneOfError := evaluateOneOf(s, instance, patch, location)
		for _, oneOfResult := range oneOfResults {
			//nolint:errcheck
			result.AddDetail(oneOfResult)
		}
		if oneOfError != nil {
			//nolint:errcheck
			result.AddError(oneOfError)
		}
	}

	if s.Not != nil {
		notResult, notError := evaluateNot(s, instance, patch, location)
		if notResult != nil {
			//nolint:errcheck
			result.AddDetail(notResult)
		}
		if notError != nil {
			//nolint:errcheck
			result.AddError(notError)
		}
	}

	// Validation keywords for applying subschemas with conditional logic
	if s.If != nil || s.Then != nil || s.Else != nil {
		conditionalResults, conditionalError := evaluateConditional(s, instance, patch, location)
		for _, conditionalResult := range conditionalResults {
			//nolint:errcheck
			result.AddDetail(conditionalResult)
		}
		if conditionalError != nil {
			//nolint:errcheck
			result.AddError(conditionalError)
		}
	}

	// Validation keywords for applying subschemas to arrays
	if len(s.PrefixItems) > 0 ||
		s.Items != nil ||
		s.Contains != nil ||
		s.MaxItems != nil ||
		s.MinItems != nil ||
		s.UniqueItems != nil {
		arrayResults, arrayErrors := evaluateArray(s, instance, patch, location)
		for _, arrayResult := range arrayResults {
			//nolint:errcheck
			result.AddDetail(arrayResult)
		}
		for _, arrayError := range arrayErrors {
			//nolint:errcheck
			result.AddError(arrayError)
		}
	}

	// Validation Keywords for Numeric Instances (number and integer)
	if s.MultipleOf != nil || s.Maximum != nil || s.ExclusiveMaximum != nil || s.Minimum != nil || s.ExclusiveMinimum != nil {
		numericErrors := evaluateNumeric(s, instance)
		for _, numericError := range numericErrors {
			//nolint:errcheck
			result.AddError(numericError)
		}
	}

	// Validation Keywords for Strings
	if s.MaxLength != nil || s.MinLength != nil || s.Pattern != nil {
		stringErrors := evaluateString(s, instance)
		for _, stringError := range stringErrors {
			//nolint:errcheck
			result.AddError(stringError)
		}
	}

	if s.Format != nil {
		formatError := evaluateFormat(s, instance)
		if formatError != nil {
			//nolint:errcheck
			result.AddError(formatError)
		}
	}

	// Validation Keywords for Objects
	if s.Properties != nil ||
		s.PatternProperties != nil ||
		s.AdditionalProperties != nil ||
		s.PropertyNames != nil ||
		s.MaxProperties != nil ||
		s.MinProperties != nil ||
		len(s.Required) > 0 ||
		len(s.Dependencies) > 0 {
		objectResults, objectErrors := evaluateObject(s, instance, patch, location)
		for _, objectResult := range objectResults {
			//nolint:errcheck
			result.AddDetail(objectResult)
		}
		for _, objectError := range objectErrors {
			//nolint:errcheck
			result.AddError(objectError)
		}
	}

	// Validation Keywords for String-Encoded Data
	if s.ContentEncoding != nil || s.ContentMediaType != nil {
		contentResult, contentError := evaluateContent(s, instance)
		if contentResult != nil {
			//nolint:errcheck
			result.AddDetail(contentResult)
		}
		if contentError != nil {
			//nolint:errcheck
			result.AddError(contentError)
		}
	}

	return result, nil
}

func (s *Schema) evaluateBoolean(instance interface{}) *EvaluationError {
	if s.Boolean == nil {
		return nil
	}

	if *s.Boolean {
		return nil // No error, validation passes as the schema is true
	}

	return NewEvaluationError("schema", "false_schema_mismatch", "False schema always fails")
}

// evaluateObject groups the validation of all object-specific keywords.
func evaluateObject(schema *Schema, data interface{}, patch *Patch, location string) ([]*EvaluationResult, []*EvaluationError) {
	object, ok := data.(map[string]interface{})
	if !ok {
		// If data is not an object, then skip the object-specific validations.
		return nil, nil
	}

	results := []*EvaluationResult{}
	errors := []*EvaluationError{}

	// Validation Keywords for applying subschemas to Objects
	if schema.Properties != nil {
		propertiesResults, propertiesError := evaluateProperties(schema, object, patch, location)

		if propertiesResults != nil {
			results = append(results, propertiesResults...)
		}
		if propertiesError != nil {
			errors = append(errors, propertiesError)
		}
	}

	if schema.PatternProperties != nil {
		patternPropertiesResults, patternPropertiesError := evaluatePatternProperties(schema, object, patch, location)

		if patternPropertiesResults != nil {
			results = append(results, patternPropertiesResults...)
		}
		if patternPropertiesError != nil {
			errors = append(errors, patternPropertiesError)
		}
	}

	if schema.AdditionalProperties != nil {
		additionalPropertiesResults, additionalPropertiesError := evaluateAdditionalProperties(schema, object, patch, location)

		if additionalPropertiesResults != nil {
			results = append(results, additionalPropertiesResults...)
		}
		if additionalPropertiesError != nil {
			errors = append(errors, additionalPropertiesError)
		}
	}

	if schema.PropertyNames != nil {
		propertyNamesResults, propertyNamesError := evaluatePropertyNames(schema, object, patch, location)

		if propertyNamesResults != nil {
			results = append(results, propertyNamesResults...)
		}
		if propertyNamesError != nil {
			errors = append(errors, propertyNamesError)
		}
	}

	// Validation Keywords for Objects
	if schema.MaxProperties != nil {
		if err := evaluateMaxProperties(schema, object); err != nil {
			errors = append(errors, err)
		}
	}

	if schema.MinProperties != nil {
		if err := evaluateMinProperties(schema, object); err != nil {
			errors = append(errors, err)
		}
	}

	if len(schema.Required) > 0 {
		requiredError := evaluateRequired(schema, object)
		if requiredError != nil {
			errors = append(errors, requiredError)
		}
	}

	if len(schema.Dependencies) > 0 {
		dependenciesResults, dependenciesError := evaluateDependencies(schema, object, patch, location)
		if dependenciesResults != nil {
			results = append(results, dependenciesResults...)
		}
		if dependenciesError != nil {
			errors = append(errors, dependenciesError)
		}
	}

	return results, errors
}

// validateNumeric groups the validation of all numeric-specific keywords.
func evaluateNumeric(schema *Schema, data interface{}) []*EvaluationError {
	dataType := getDataType(data)

	if dataType != "number" && dataType != "integer" {
		// If data is not a number, then skip the numeric-specific validations.
		return nil
	}

	errors := []*EvaluationError{}

	value := NewRat(data)
	if value == nil {
		// If the type conversion fails, the data might not be a number.
		errors = append(errors, NewEvaluationError("type", "invalid_numberic", "Value is {received} but should be numeric", map[string]interface{}{
			"received": dataType,
		}))

		return errors
	}

	// Validation Keywords for Numeric Instances (number and integer)
	if schema.MultipleOf != nil {
		if err := evaluateMultipleOf(schema, value); err != nil {
			errors = append(errors, err)
		}
	}

	if schema.Maximum != nil {
		if err := evaluateMaximum(schema, value); err != nil {
			errors = append(errors, err)
		}
	}

	if schema.ExclusiveMaximum != nil {
		if err := evaluateExclusiveMaximum(schema, value); err != nil {
			errors = append(errors, err)
		}
	}

	if schema.Minimum != nil {
		if err := evaluateMinimum(schema, value); err != nil {
			errors = append(errors, err)
		}
	}

	if schema.ExclusiveMinimum != nil {
		if err := evaluateExclusiveMinimum(schema, value); err != nil {
			errors = append(errors, err)
		}
	}

	if len(errors) > 0 {
		return errors
	}

	return nil
}

// validateString groups the validation of all string-specific keywords.
func evaluateString(schema *Schema, data interface{}) []*EvaluationError {
	value, ok := data.(string)
	if !ok {
		// If data is not a string, then skip the string-specific validations.
		return nil
	}

	errors := []*EvaluationError{}

	// Validation Keywords for Strings
	if schema.MaxLength != nil {
		if err := evaluateMaxLength(schema, value); err != nil {
			errors = append(errors, err)
		}
	}

	if schema.MinLength != nil {
		if err := evaluateMinLength(schema, value); err != nil {
			errors = append(errors, err)
		}
	}

	if schema.Pattern != nil {
		if err := evaluatePattern(schema, value); err != nil {
			errors = append(errors, err)
		}
	}

	if len(errors) > 0 {
		return errors
	}

	return nil
}

// validateArray groups the validation of all array-specific keywords.
func evaluateArray(schema *Schema, data interface{}, patch *Patch, location string) ([]*EvaluationResult, []*EvaluationError) {
	items, ok := data.([]interface{})
	if !ok {
		// If data is not an array, then skip the array-specific validations.
		return nil, nil
	}

	results := []*EvaluationResult{}
	errors := []*EvaluationError{}

	// Validation keywords for applying subschemas to arrays
	if len(schema.PrefixItems) > 0 {
		prefixItemsResults, prefixItemsError := evaluatePrefixItems(schema, items, patch, location)

		if prefixItemsResults != nil {
			results = append(results, prefixItemsResults...)
		}
		if prefixItemsError != nil {
			errors = append(errors, prefixItemsError)
		}
	}

	if schema.Items != nil {
		itemsResults, itemsError := evaluateItems(schema, items, patch, location)

		if itemsResults != nil {
			results = append(results, itemsResults...)
		}
		if itemsError != nil {
			errors = append(errors, itemsError)
		}
	}

	if schema.Contains != nil {
		containsResults, containsError := evaluateContains(schema, items, patch, location)
		if containsResults != nil {
			results = append(results, containsResults...)
		}
		if containsError != nil {
			errors = append(errors, containsError)
		}
	}

	// Validation Keywords for Arrays
	if schema.MaxItems != nil {
		maxItemsError := evaluateMaxItems(schema, items)
		if maxItemsError != nil {
			errors = append(errors, maxItemsError)
		}
	}

	if schema.MinItems != nil {
		minItemsError := evaluateMinItems(schema, items)
		if minItemsError != nil {
			errors = append(errors, minItemsError)
		}
	}

	if schema.UniqueItems != nil && *schema.UniqueItems { // Check if UniqueItems is not nil before dereferencing
		uniqueItemsError := evaluateUniqueItems(schema, items)
		if uniqueItemsError != nil {
			errors = append(errors, uniqueItemsError)
		}
	}

	return results, errors
}
