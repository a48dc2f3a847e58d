package jsonschema

import (
	"fmt"
	"unicode/utf8"
)

// populateStringKeywords extracts minLength/maxLength from raw. Lengths are
// counted in Unicode code points, not bytes.
func populateStringKeywords(s *Schema, raw map[string]any) error {
	bind := func(key string) (*int, error) {
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
	if s.minLength, err = bind("minLength"); err != nil {
		return err
	}
	if s.maxLength, err = bind("maxLength"); err != nil {
		return err
	}
	return nil
}

// evaluateString applies minLength/maxLength to a classified string
// instance, counting length in runes so multi-byte characters count once.
func evaluateString(s *Schema, instance any, ptr string, sink ErrorSink) {
	str, ok := instance.(string)
	if !ok {
		return
	}
	length := utf8.RuneCountInString(str)

	if s.minLength != nil && length < *s.minLength {
		sink.Add(NewValidationError(ptr, "string_too_short", "string should be at least {minLength} characters, got {length}", map[string]any{
			"minLength": *s.minLength, "length": length,
		}))
	}
	if s.maxLength != nil && length > *s.maxLength {
		sink.Add(NewValidationError(ptr, "string_too_long", "string should be at most {maxLength} characters, got {length}", map[string]any{
			"maxLength": *s.maxLength, "length": length,
		}))
	}
}
