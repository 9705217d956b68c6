package jsonschema

import (
	"fmt"
	"slices"
	"strings"
)

// EvaluateProperties checks if the properties in the data object conform to the schemas specified in the schema's properties attribute.
// According to the JSON Schema Draft-07:
//   - The value of "properties" must be an object, with each value being a valid JSON Schema.
//   - Validation succeeds if, for each name that appears in both the instance and as a name within this keyword's value, the child instance for that name successfully validates against the corresponding schema.
//
// This method ensures that each property in the data matches its defined schema.
// If a property does not conform, it returns a EvaluationError detailing the issue with that property.
//
// Reference: https://json-schema.org/draft-07/json-schema-core#name-properties
func evaluateProperties(schema *Schema, object map[string]any, patch *Patch, location string) ([]*EvaluationResult, *EvaluationError) {
	if schema.Properties == nil {
		return nil, nil // No properties defined, nothing to do.
	}

	invalidProperties := []string{}
	results := []*EvaluationResult{}

	for propName, propSchema := range *schema.Properties {
		propValue, exists := object[propName]
		childLocation := fmt.Sprintf("%s/%s", location, strings.NewReplacer("~", "~0", "/", "~1").Replace(propName))

		if exists {
			result, _ := propSchema.evaluate(propValue, patch, childLocation)
			if result != nil {
				//nolint:errcheck
				result.SetEvaluationPath(fmt.Sprintf("/properties/%s", propName)).
					SetSchemaLocation(schema.GetSchemaLocation(fmt.Sprintf("/properties/%s", propName))).
					SetInstanceLocation(fmt.Sprintf("/%s", propName))

				results = append(results, result)

				if !result.IsValid() {
					invalidProperties = append(invalidProperties, propName)
				}
			}
		} else if defaultIsSpecified(propSchema) {
			patch.Add(childLocation, resolveDefault(propSchema))
		} else if isRequired(schema, propName) {
			// Handle properties that are expected but not provided
			result, _ := propSchema.evaluate(nil, patch, childLocation)

			if result != nil {
				//nolint:errcheck
				result.SetEvaluationPath(fmt.Sprintf("/properties/%s", propName)).
					SetSchemaLocation(schema.GetSchemaLocation(fmt.Sprintf("/properties/%s", propName))).
					SetInstanceLocation(fmt.Sprintf("/%s", propName))

				results = append(results, result)

				if !result.IsValid() {
					invalidProperties = append(invalidProperties, propName)
				}
			}
		}
	}

	if len(invalidProperties) == 1 {
		return results, NewEvaluationError("properties", "property_mismatch", "Property {property} does not match the schema", map[string]any{
			"property": fmt.Sprintf("'%s'", invalidProperties[0]),
		})
	} else if len(invalidProperties) > 1 {
		slices.Sort(invalidProperties)
		quotedProperties := make([]string, len(invalidProperties))
		for i, prop := range invalidProperties {
			quotedProperties[i] = fmt.Sprintf("'%s'", prop)
		}
		return results, NewEvaluationError("properties", "properties_mismatch", "Properties {properties} do not match their schemas", map[string]any{
			"properties": strings.Join(quotedProperties, ", "),
		})
	}

	return results, nil
}

// isRequired checks if a property is required.
func isRequired(schema *Schema, propName string) bool {
	for _, reqProp := range schema.Required {
		if reqProp == propName {
			return true
		}
	}
	return false
}

// defaultIsSpecified checks if a default value is specified for a property schema.
func defaultIsSpecified(propSchema *Schema) bool {
	return propSchema != nil && propSchema.Default != nil
}

// resolveDefault returns the schema's literal default value, unless that value is a
// string written in function-call syntax (e.g. "now()") naming a function registered
// with the compiler via RegisterDefaultFunc, in which case the function's result is
// used instead. A function name that isn't registered, or that errors, falls back to
// the literal default so patch generation never fails outright.
func resolveDefault(propSchema *Schema) any {
	str, ok := propSchema.Default.(string)
	if !ok || propSchema.compiler == nil {
		return propSchema.Default
	}

	call, err := parseFunctionCall(str)
	if err != nil || call == nil {
		return propSchema.Default
	}

	fn, exists := propSchema.compiler.getDefaultFunc(call.Name)
	if !exists {
		return propSchema.Default
	}

	value, err := fn(call.Args...)
	if err != nil {
		return propSchema.Default
	}

	return value
}
