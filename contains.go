package jsonschema

// evaluateContains applies the "contains" keyword: at least one element of
// a classified array instance must validate against s.contains. Candidate
// elements are checked against a scratch sink so a failing candidate's
// errors never leak into the parent result, matching the anyOf/oneOf
// scratch-sink discipline.
func evaluateContains(s *Schema, arr []any, ptr string, sink ErrorSink) {
	if s.contains == nil {
		return
	}

	for _, elem := range arr {
		scratch := &ErrorList{}
		validateSchema(s.contains, elem, ptr, scratch)
		if scratch.Empty() {
			return
		}
	}

	sink.Add(NewValidationError(ptr, "contains_unsatisfied", "array should contain at least one element matching the required schema", nil))
}
