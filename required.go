package jsonschema

import "fmt"

// populateRequired extracts "required": a list of property names that must
// all be present on the instance.
func populateRequired(s *Schema, raw map[string]any) error {
	v, ok := raw["required"]
	if !ok {
		return nil
	}
	arr, ok := v.([]any)
	if !ok {
		return fmt.Errorf("%w: %q: \"required\" must be an array of strings", ErrSchemaLoadFailed, s.pointer)
	}
	names := make([]string, len(arr))
	for i, elem := range arr {
		name, ok := elem.(string)
		if !ok {
			return fmt.Errorf("%w: %q: \"required\" must be an array of strings", ErrSchemaLoadFailed, s.pointer)
		}
		names[i] = name
	}
	s.required = names
	return nil
}

// evaluateRequired checks every required property name is present on a
// classified object instance. A single missing name is reported as
// missing_required_property; two or more are reported together as one
// missing_required_properties error.
func evaluateRequired(s *Schema, obj map[string]any, ptr string, sink ErrorSink) {
	var missing []string
	for _, name := range s.required {
		if _, ok := obj[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return
	}
	if len(missing) == 1 {
		sink.Add(NewValidationError(ptr, "missing_required_property", "missing required property {property}", map[string]any{
			"property": missing[0],
		}))
		return
	}
	sink.Add(NewValidationError(ptr, "missing_required_properties", "missing required properties {properties}", map[string]any{
		"properties": missing,
	}))
}
