package jsonschema

import (
	"fmt"
)

// Schema is a single validation node: either a Boolean schema (Boolean
// non-nil, "true" passes every instance, "false" fails every instance) or an
// Object schema (Boolean nil, a bundle of the keyword constraints active on
// this node). It is immutable once constructed by a SchemaStore; every
// child Schema reachable through a keyword is already constructed by the
// time construction of its parent returns.
//
// Do not construct a Schema by hand; obtain one from Load or SchemaStore.Get.
type Schema struct {
	pointer string // this node's pointer URI, e.g. "#/properties/name"
	Boolean *bool  // non-nil => Boolean schema variant

	// Type constraint. nil => disabled (no type check emitted).
	types []string

	// Numeric constraints. Absent (nil) means unbounded.
	minimum          *numericBound
	maximum          *numericBound
	exclusiveMinimum *numericBound
	exclusiveMaximum *numericBound
	multipleOf       *numericBound

	// String constraints.
	minLength *int
	maxLength *int

	// Array constraints.
	items           *Schema    // single-schema form; nil if tuple form or absent
	itemsTuple      []*Schema  // tuple form; nil if single-schema form or absent
	additionalItems *Schema
	minItems        *int
	maxItems        *int
	contains        *Schema

	// Object constraints.
	properties           map[string]*Schema
	propertyOrder        []string // deterministic iteration for error ordering
	patternProperties    []patternSchema
	additionalProperties *Schema
	required             []string
	minProperties        *int
	dependencies         map[string]*dependency

	// Combinators.
	allOf  []*Schema
	anyOf  []*Schema
	oneOf  []*Schema
	ifSc   *Schema
	thenSc *Schema
	elseSc *Schema

	// Value constraints.
	hasConst   bool
	constValue any
	enum       []any
}

// numericBound retains both the float64 used for comparisons and the raw
// decoded value, so multipleOf can take the exact-integer path from
// numeric.go when both operands happen to be integers.
type numericBound struct {
	value float64
	raw   any
}

// patternSchema is one entry of "patternProperties": a compiled pattern
// paired with the subschema applied to properties whose name matches it.
// Order is retained only because it is the order construction discovered
// the object's keys in; validation semantics do not depend on it.
type patternSchema struct {
	source  string
	matcher *PatternMatcher
	schema  *Schema
}

// dependency is one entry of "dependencies": either the array form (a set
// of sibling property names that must also be present) or the schema form
// (a schema the whole object must additionally validate against).
type dependency struct {
	names  []string
	schema *Schema
}

// IsBoolean reports whether this node is the Boolean schema variant.
func (s *Schema) IsBoolean() bool {
	return s.Boolean != nil
}

// Pointer returns this schema node's pointer URI within its store.
func (s *Schema) Pointer() string {
	return s.pointer
}

// newBooleanSchema constructs the Boolean variant.
func newBooleanSchema(pointer string, value bool) *Schema {
	return &Schema{pointer: pointer, Boolean: &value}
}

// populateObjectSchema extracts every supported keyword from
// raw into s, resolving nested schemas through store so that child Schema
// pointers are already materialized. store.cache[s.pointer] must already
// hold s before this is called, so that a pointer cycle through
// "definitions" or a sibling keyword resolves to this same node instead of
// recursing forever.
func populateObjectSchema(s *Schema, raw map[string]any, store *SchemaStore) error {
	if t, ok := raw["type"]; ok {
		types, err := decodeTypeKeyword(t)
		if err != nil {
			return err
		}
		s.types = types
	}

	if err := populateNumericKeywords(s, raw); err != nil {
		return err
	}
	if err := populateStringKeywords(s, raw); err != nil {
		return err
	}
	if err := populateArrayKeywords(s, raw, store); err != nil {
		return err
	}
	if err := populateObjectKeywords(s, raw, store); err != nil {
		return err
	}
	if err := populateCombinatorKeywords(s, raw, store); err != nil {
		return err
	}

	if v, ok := raw["const"]; ok {
		s.hasConst = true
		s.constValue = v
	}
	if v, ok := raw["enum"]; ok {
		arr, ok := v.([]any)
		if !ok {
			return fmt.Errorf("%w: %q: \"enum\" must be an array", ErrSchemaLoadFailed, s.pointer)
		}
		s.enum = arr
	}

	// "definitions" is purely structural: materialize every entry in the
	// store so pointer-based lookups and self-references resolve, but it
	// carries no validation semantics of its own.
	if defs, ok := raw["definitions"]; ok {
		defsMap, ok := defs.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: %q: \"definitions\" must be an object", ErrSchemaLoadFailed, s.pointer)
		}
		for name := range defsMap {
			if _, err := store.Get(ChildPointer(s.pointer, "definitions", name)); err != nil {
				return err
			}
		}
	}

	return nil
}

func decodeTypeKeyword(v any) ([]string, error) {
	switch t := v.(type) {
	case string:
		return []string{t}, nil
	case []any:
		names := make([]string, 0, len(t))
		for _, elem := range t {
			name, ok := elem.(string)
			if !ok {
				return nil, fmt.Errorf("%w: \"type\" array must contain only strings", ErrSchemaLoadFailed)
			}
			names = append(names, name)
		}
		return names, nil
	default:
		return nil, fmt.Errorf("%w: \"type\" must be a string or array of strings", ErrSchemaLoadFailed)
	}
}
