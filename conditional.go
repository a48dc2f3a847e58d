package jsonschema

// evaluateConditional applies "if"/"then"/"else": the instance validates
// against "if" on a scratch sink to decide the branch, without "if" itself
// ever contributing errors to the result, then validates against "then" or
// "else" (whichever applies) directly into sink. A bare "if" with no
// "then"/"else" is a no-op, matching the keyword's defined semantics.
func evaluateConditional(s *Schema, instance any, ptr string, sink ErrorSink) {
	if s.ifSc == nil {
		return
	}

	scratch := &ErrorList{}
	validateSchema(s.ifSc, instance, ptr, scratch)

	if scratch.Empty() {
		if s.thenSc != nil {
			validateSchema(s.thenSc, instance, ptr, sink)
		}
		return
	}
	if s.elseSc != nil {
		validateSchema(s.elseSc, instance, ptr, sink)
	}
}
