package jsonschema

import "fmt"

// populateDependencies extracts "dependencies": for each named property,
// either an array of sibling property names that must also be present
// (property-dependency form) or a schema the whole object must additionally
// validate against when that property is present (schema-dependency form).
func populateDependencies(s *Schema, raw map[string]any, store *SchemaStore) error {
	v, ok := raw["dependencies"]
	if !ok {
		return nil
	}
	deps, ok := v.(map[string]any)
	if !ok {
		return fmt.Errorf("%w: %q: \"dependencies\" must be an object", ErrSchemaLoadFailed, s.pointer)
	}

	depsPtr := AppendPointer(s.pointer, "dependencies")
	result := make(map[string]*dependency, len(deps))
	for name, entry := range deps {
		switch v := entry.(type) {
		case []any:
			names := make([]string, len(v))
			for i, elem := range v {
				n, ok := elem.(string)
				if !ok {
					return fmt.Errorf("%w: %q: \"dependencies.%s\" must be an array of strings", ErrSchemaLoadFailed, s.pointer, name)
				}
				names[i] = n
			}
			result[name] = &dependency{names: names}
		default:
			child, err := store.Get(AppendPointer(depsPtr, name))
			if err != nil {
				return err
			}
			result[name] = &dependency{schema: child}
		}
	}
	s.dependencies = result
	return nil
}

// evaluateDependencies applies every "dependencies" entry whose key
// property is present on a classified object instance: the property-array
// form checks all named siblings are also present, the schema form
// validates the whole object against the dependent schema.
func evaluateDependencies(s *Schema, obj map[string]any, ptr string, sink ErrorSink) {
	for trigger, dep := range s.dependencies {
		if _, present := obj[trigger]; !present {
			continue
		}
		if dep.schema != nil {
			validateSchema(dep.schema, obj, ptr, sink)
			continue
		}
		for _, sibling := range dep.names {
			if _, ok := obj[sibling]; !ok {
				sink.Add(NewValidationError(ptr, "dependency_unmet", "property {property} requires property {dependents} to also be present", map[string]any{
					"property": trigger, "dependents": sibling,
				}))
			}
		}
	}
}
