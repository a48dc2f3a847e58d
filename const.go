package jsonschema

// evaluateConst applies the "const" keyword: the instance must deep-equal
// s.constValue exactly, using structural equality rather than identity.
func evaluateConst(s *Schema, instance any, ptr string, sink ErrorSink) {
	if !s.hasConst {
		return
	}
	if !deepEqual(instance, s.constValue) {
		sink.Add(NewValidationError(ptr, "const_mismatch", "value does not match the required constant", nil))
	}
}
