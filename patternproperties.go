package jsonschema

import "fmt"

// populatePatternProperties extracts "patternProperties": a map from regex
// source to subschema, applied to every object property whose name matches
// that regex, independent of whether "properties" also names it.
func populatePatternProperties(s *Schema, raw map[string]any, store *SchemaStore) error {
	v, ok := raw["patternProperties"]
	if !ok {
		return nil
	}
	patterns, ok := v.(map[string]any)
	if !ok {
		return fmt.Errorf("%w: %q: \"patternProperties\" must be an object", ErrSchemaLoadFailed, s.pointer)
	}

	ppPtr := AppendPointer(s.pointer, "patternProperties")
	entries := make([]patternSchema, 0, len(patterns))
	for source := range patterns {
		matcher, err := CompilePattern(source)
		if err != nil {
			return fmt.Errorf("%w: %q", err, s.pointer)
		}
		child, err := store.Get(AppendPointer(ppPtr, source))
		if err != nil {
			return err
		}
		entries = append(entries, patternSchema{source: source, matcher: matcher, schema: child})
	}
	s.patternProperties = entries
	return nil
}

// evaluatePatternProperties applies every matching pattern's subschema to
// each property of a classified object instance whose name matches it. A
// single property name can match more than one pattern; every match is
// independently applied.
func evaluatePatternProperties(s *Schema, obj map[string]any, ptr string, sink ErrorSink) {
	for name, value := range obj {
		for _, entry := range s.patternProperties {
			if entry.matcher.Matches(name) {
				validateSchema(entry.schema, value, AppendPointer(ptr, name), sink)
			}
		}
	}
}

// propertyIsCovered reports whether name is accounted for by "properties"
// or any "patternProperties" pattern, which is what "additionalProperties"
// keys its own coverage off of.
func propertyIsCovered(s *Schema, name string) bool {
	if _, ok := s.properties[name]; ok {
		return true
	}
	for _, entry := range s.patternProperties {
		if entry.matcher.Matches(name) {
			return true
		}
	}
	return false
}
