package jsonschema

import "fmt"

// populateArrayKeywords extracts items/additionalItems/minItems/maxItems
// from raw. "items" takes either the single-schema form (applied to every
// element) or the tuple form (a positional schema per index); the two are
// distinguished by itemsTuple being non-nil only for the tuple form.
func populateArrayKeywords(s *Schema, raw map[string]any, store *SchemaStore) error {
	if v, ok := raw["items"]; ok {
		itemsPtr := AppendPointer(s.pointer, "items")
		switch arr := v.(type) {
		case []any:
			tuple := make([]*Schema, len(arr))
			for i := range arr {
				child, err := store.Get(AppendIndex(itemsPtr, i))
				if err != nil {
					return err
				}
				tuple[i] = child
			}
			s.itemsTuple = tuple
		default:
			child, err := store.Get(itemsPtr)
			if err != nil {
				return err
			}
			s.items = child
		}
	}

	if _, ok := raw["additionalItems"]; ok {
		child, err := store.Get(AppendPointer(s.pointer, "additionalItems"))
		if err != nil {
			return err
		}
		s.additionalItems = child
	}

	if _, ok := raw["contains"]; ok {
		child, err := store.Get(AppendPointer(s.pointer, "contains"))
		if err != nil {
			return err
		}
		s.contains = child
	}

	bindInt := func(key string) (*int, error) {
		v, ok := raw[key]
		if !ok {
			return nil, nil
		}
		f, ok := asFloat64(v)
		if !ok {
			return nil, fmt.Errorf("%w: %q: %q must be a number", ErrSchemaLoadFailed, s.pointer, key)
		}
		n := int(f)
		return &n, nil
	}

	var err error
	if s.minItems, err = bindInt("minItems"); err != nil {
		return err
	}
	if s.maxItems, err = bindInt("maxItems"); err != nil {
		return err
	}
	return nil
}

// evaluateItems applies the "items"/"additionalItems" keyword pair to a
// classified array instance. In single-schema form every element is
// checked against s.items. In tuple form, elements within range of
// itemsTuple are checked positionally; elements beyond it fall to
// additionalItems if present, otherwise pass unconstrained.
func evaluateItems(s *Schema, arr []any, ptr string, sink ErrorSink) {
	switch {
	case s.itemsTuple != nil:
		for i, elem := range arr {
			elemPtr := AppendIndex(ptr, i)
			if i < len(s.itemsTuple) {
				validateSchema(s.itemsTuple[i], elem, elemPtr, sink)
			} else if s.additionalItems != nil {
				validateSchema(s.additionalItems, elem, elemPtr, sink)
			}
		}
	case s.items != nil:
		for i, elem := range arr {
			validateSchema(s.items, elem, AppendIndex(ptr, i), sink)
		}
	}
}

// evaluateArrayLength applies minItems/maxItems to a classified array
// instance.
func evaluateArrayLength(s *Schema, arr []any, ptr string, sink ErrorSink) {
	length := len(arr)
	if s.minItems != nil && length < *s.minItems {
		sink.Add(NewValidationError(ptr, "array_too_short", "array should have at least {minItems} items, got {length}", map[string]any{
			"minItems": *s.minItems, "length": length,
		}))
	}
	if s.maxItems != nil && length > *s.maxItems {
		sink.Add(NewValidationError(ptr, "array_too_long", "array should have at most {maxItems} items, got {length}", map[string]any{
			"maxItems": *s.maxItems, "length": length,
		}))
	}
}
