package jsonschema

import "fmt"

// populateMinProperties extracts "minProperties".
func populateMinProperties(s *Schema, raw map[string]any) error {
	v, ok := raw["minProperties"]
	if !ok {
		return nil
	}
	f, ok := asFloat64(v)
	if !ok {
		return fmt.Errorf("%w: %q: \"minProperties\" must be a number", ErrSchemaLoadFailed, s.pointer)
	}
	n := int(f)
	s.minProperties = &n
	return nil
}

// evaluateMinProperties applies "minProperties" to a classified object
// instance.
func evaluateMinProperties(s *Schema, obj map[string]any, ptr string, sink ErrorSink) {
	if s.minProperties == nil {
		return
	}
	if count := len(obj); count < *s.minProperties {
		sink.Add(NewValidationError(ptr, "too_few_properties", "object should have at least {minProperties} properties, got {count}", map[string]any{
			"minProperties": *s.minProperties, "count": count,
		}))
	}
}
