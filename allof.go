package jsonschema

import "fmt"

// populateCombinatorKeywords extracts allOf/anyOf/oneOf/if/then/else from
// raw. It lives in allof.go rather than a standalone file because allOf's
// population path is representative of anyOf/oneOf's and this keeps the
// three list-of-schemas keywords' extraction in one place; each keyword's
// evaluation logic still lives in its own file.
func populateCombinatorKeywords(s *Schema, raw map[string]any, store *SchemaStore) error {
	bindList := func(key string) ([]*Schema, error) {
		v, ok := raw[key]
		if !ok {
			return nil, nil
		}
		arr, ok := v.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: %q: %q must be an array of schemas", ErrSchemaLoadFailed, s.pointer, key)
		}
		keyPtr := AppendPointer(s.pointer, key)
		schemas := make([]*Schema, len(arr))
		for i := range arr {
			child, err := store.Get(AppendIndex(keyPtr, i))
			if err != nil {
				return nil, err
			}
			schemas[i] = child
		}
		return schemas, nil
	}

	var err error
	if s.allOf, err = bindList("allOf"); err != nil {
		return err
	}
	if s.anyOf, err = bindList("anyOf"); err != nil {
		return err
	}
	if s.oneOf, err = bindList("oneOf"); err != nil {
		return err
	}

	if _, ok := raw["if"]; ok {
		if s.ifSc, err = store.Get(AppendPointer(s.pointer, "if")); err != nil {
			return err
		}
	}
	if _, ok := raw["then"]; ok {
		if s.thenSc, err = store.Get(AppendPointer(s.pointer, "then")); err != nil {
			return err
		}
	}
	if _, ok := raw["else"]; ok {
		if s.elseSc, err = store.Get(AppendPointer(s.pointer, "else")); err != nil {
			return err
		}
	}
	return nil
}

// evaluateAllOf requires the instance to validate against every subschema.
// Each branch validates directly into sink: unlike anyOf/oneOf, allOf has
// no alternative to prefer, so every branch's failures are relevant and
// all of them are reported.
func evaluateAllOf(s *Schema, instance any, ptr string, sink ErrorSink) {
	for _, branch := range s.allOf {
		validateSchema(branch, instance, ptr, sink)
	}
}
