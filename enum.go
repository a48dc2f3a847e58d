package jsonschema

// evaluateEnum applies the "enum" keyword: the instance must deep-equal at
// least one member of s.enum.
func evaluateEnum(s *Schema, instance any, ptr string, sink ErrorSink) {
	if s.enum == nil {
		return
	}
	if !enumContains(s.enum, instance) {
		sink.Add(NewValidationError(ptr, "enum_mismatch", "value does not match any allowed value", nil))
	}
}
