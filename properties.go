package jsonschema

import "fmt"

// populateObjectKeywords extracts every object-applicable keyword from raw:
// properties, patternProperties, additionalProperties, required,
// minProperties, and dependencies. Each sub-keyword's own extraction lives
// beside its evaluation logic in its own file; this function just sequences
// them in keyword-document order.
func populateObjectKeywords(s *Schema, raw map[string]any, store *SchemaStore) error {
	if v, ok := raw["properties"]; ok {
		props, ok := v.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: %q: \"properties\" must be an object", ErrSchemaLoadFailed, s.pointer)
		}
		s.properties = make(map[string]*Schema, len(props))
		s.propertyOrder = make([]string, 0, len(props))
		propsPtr := AppendPointer(s.pointer, "properties")
		for name := range props {
			child, err := store.Get(AppendPointer(propsPtr, name))
			if err != nil {
				return err
			}
			s.properties[name] = child
			s.propertyOrder = append(s.propertyOrder, name)
		}
	}

	if err := populatePatternProperties(s, raw, store); err != nil {
		return err
	}
	if err := populateAdditionalProperties(s, raw, store); err != nil {
		return err
	}
	if err := populateRequired(s, raw); err != nil {
		return err
	}
	if err := populateMinProperties(s, raw); err != nil {
		return err
	}
	if err := populateDependencies(s, raw, store); err != nil {
		return err
	}
	return nil
}

// evaluateProperties applies the "properties" keyword: each named property
// present on a classified object instance validates against its schema.
// Absent properties are simply not checked; "required" owns presence.
func evaluateProperties(s *Schema, obj map[string]any, ptr string, sink ErrorSink) {
	for _, name := range s.propertyOrder {
		value, ok := obj[name]
		if !ok {
			continue
		}
		validateSchema(s.properties[name], value, AppendPointer(ptr, name), sink)
	}
}
