package jsonschema

import "strings"

// evaluateType applies the "type" keyword: the instance's classified tag
// must accept at least one of the declared type names (TagInteger accepts
// a declared "number" in addition to "integer"). A nil
// s.types means the keyword is absent and every value passes.
func evaluateType(s *Schema, tag TypeTag, ptr string, sink ErrorSink) {
	if s.types == nil {
		return
	}
	for _, declared := range s.types {
		if tag.accepts(declared) {
			return
		}
	}
	sink.Add(NewValidationError(ptr, "type_mismatch", "value is of type {received}, expected {expected}", map[string]any{
		"received": string(tag),
		"expected": strings.Join(s.types, " or "),
	}))
}
