package jsonschema

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// evaluateDependencies checks the "dependencies" keyword, which in Draft-07 is polymorphic:
// each entry is either an array of property names that must also be present (property
// dependency) or a subschema the whole instance must satisfy (schema dependency).
//
// Reference: https://json-schema.org/draft-07/json-schema-validation#rfc.section.6.5.7
func evaluateDependencies(schema *Schema, object map[string]interface{}, patch *Patch, location string) ([]*EvaluationResult, *EvaluationError) {
	if len(schema.Dependencies) == 0 {
		return nil, nil
	}

	results := []*EvaluationResult{}
	dependentMissingProps := make(map[string][]string)
	invalidProperties := []string{}

	for propName, dep := range schema.Dependencies {
		if _, exists := object[propName]; !exists {
			continue
		}

		if dep.Schema != nil {
			result, _ := dep.Schema.evaluate(object, patch, location)
			if result != nil {
				//nolint:errcheck
				result.SetEvaluationPath(fmt.Sprintf("/dependencies/%s", propName)).
					SetSchemaLocation(schema.GetSchemaLocation(fmt.Sprintf("/dependencies/%s", propName))).
					SetInstanceLocation("")

				results = append(results, result)

				if !result.IsValid() {
					invalidProperties = append(invalidProperties, propName)
				}
			}
			continue
		}

		var missingProps []string
		for _, reqProp := range dep.Required {
			if _, propExists := object[reqProp]; !propExists {
				missingProps = append(missingProps, reqProp)
			}
		}
		if len(missingProps) > 0 {
			dependentMissingProps[propName] = missingProps
		}
	}

	if len(invalidProperties) == 1 {
		return results, NewEvaluationError("dependencies", "dependent_schema_mismatch", "Property {property} does not meet the schema requirements dependent on it", map[string]interface{}{
			"property": fmt.Sprintf("'%s'", invalidProperties[0]),
		})
	} else if len(invalidProperties) > 1 {
		quoted := make([]string, len(invalidProperties))
		for i, prop := range invalidProperties {
			quoted[i] = fmt.Sprintf("'%s'", prop)
		}
		return results, NewEvaluationError("dependencies", "dependent_schemas_mismatch", "Properties {properties} do not meet the schema requirements dependent on them", map[string]interface{}{
			"properties": strings.Join(quoted, ", "),
		})
	}

	if len(dependentMissingProps) > 0 {
		missingPropsJSON, _ := json.Marshal(dependentMissingProps)
		return results, NewEvaluationError("dependencies", "dependent_property_required", "Some required property dependencies are missing: {missing_properties}", map[string]interface{}{
			"missing_properties": string(missingPropsJSON),
		})
	}

	return results, nil
}
