package jsonschema

// evaluateAnyOf requires the instance to validate against at least one
// subschema. Each candidate is checked against a scratch sink (the
// combinator scratch-sink discipline: allocate, recurse, check Empty(),
// discard) so a failing branch's errors never leak into the parent result.
func evaluateAnyOf(s *Schema, instance any, ptr string, sink ErrorSink) {
	if len(s.anyOf) == 0 {
		return
	}
	for _, branch := range s.anyOf {
		scratch := &ErrorList{}
		validateSchema(branch, instance, ptr, scratch)
		if scratch.Empty() {
			return
		}
	}
	sink.Add(NewValidationError(ptr, "any_of_failed", "value does not match any schema in anyOf", nil))
}
