// Package jsonschema implements a high-performance JSON Schema Draft-07
// validator for Go. It validates decoded JSON values, raw JSON bytes and Go
// structs (through a JSON round-trip), and reports schema defaults for missing
// properties as a JSON Patch on the evaluation result.
//
// Credit to https://github.com/santhosh-tekuri/jsonschema for format validators.
package jsonschema
