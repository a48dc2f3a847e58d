package jsonschema

import "strconv"

// evaluateOneOf requires the instance to validate against exactly one
// subschema. Every candidate is checked (not short-circuited on the first
// match) so a multiple-match violation can be reported with the full set
// of matching branch indices.
func evaluateOneOf(s *Schema, instance any, ptr string, sink ErrorSink) {
	if len(s.oneOf) == 0 {
		return
	}

	var matches []string
	for i, branch := range s.oneOf {
		scratch := &ErrorList{}
		validateSchema(branch, instance, ptr, scratch)
		if scratch.Empty() {
			matches = append(matches, strconv.Itoa(i))
		}
	}

	switch len(matches) {
	case 1:
		return
	case 0:
		sink.Add(NewValidationError(ptr, "one_of_no_match", "value does not match any schema in oneOf", nil))
	default:
		sink.Add(NewValidationError(ptr, "one_of_multiple_match", "value matches more than one schema in oneOf: {matches}", map[string]any{
			"matches": matches,
		}))
	}
}
