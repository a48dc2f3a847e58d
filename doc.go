// Package jsonschema implements a JSON Schema Draft-07 validator for Go.
//
// A caller loads a schema document (as an already-parsed JSON value, e.g.
// the result of encoding/json.Unmarshal into interface{}, or [LoadYAML])
// through [Load] or a [SchemaStore], which resolves it into a tree of
// [Schema] nodes keyed by JSON-Pointer URI. [Validate] then walks an
// instance value against that tree and reports every violation as a
// [ValidationError] carrying a pointer to the offending location.
//
// The package does not parse JSON itself, does not resolve $ref across
// remote documents, and does not assert string formats or content
// encoding.
package jsonschema
