package jsonschema

import (
	"fmt"
	"strconv"
	"strings"
)

// pointerPrefix is the fragment marker every pointer URI in this package
// carries, per RFC 6901 fragment form: "#/a/b".
const pointerPrefix = "#"

// AppendPointer appends a single JSON-Pointer segment to base, escaping "~"
// as "~0" and "/" as "~1" per RFC 6901. base must already be a valid
// pointer URI ("#" or "#/..."); segment is a raw, unescaped token.
func AppendPointer(base, segment string) string {
	escaped := strings.NewReplacer("~", "~0", "/", "~1").Replace(segment)
	if base == pointerPrefix {
		return pointerPrefix + "/" + escaped
	}
	return base + "/" + escaped
}

// AppendIndex appends an array index segment to base.
func AppendIndex(base string, index int) string {
	return AppendPointer(base, strconv.Itoa(index))
}

// ChildPointer appends a sequence of raw segments to base in order, each
// escaped independently. Equivalent to repeated AppendPointer calls.
func ChildPointer(base string, segments ...string) string {
	for _, seg := range segments {
		base = AppendPointer(base, seg)
	}
	return base
}

// splitPointer decodes a pointer URI into its ordered, unescaped segments.
// "#" yields no segments. Returns ErrInvalidPointerSyntax if ptr does not
// start with the "#" fragment marker.
func splitPointer(ptr string) ([]string, error) {
	if !strings.HasPrefix(ptr, pointerPrefix) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPointerSyntax, ptr)
	}
	rest := strings.TrimPrefix(ptr, pointerPrefix)
	if rest == "" {
		return nil, nil
	}
	if !strings.HasPrefix(rest, "/") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPointerSyntax, ptr)
	}
	raw := strings.Split(rest[1:], "/")
	segments := make([]string, len(raw))
	for i, tok := range raw {
		segments[i] = unescapeToken(tok)
	}
	return segments, nil
}

func unescapeToken(tok string) string {
	if !strings.Contains(tok, "~") {
		return tok
	}
	tok = strings.ReplaceAll(tok, "~1", "/")
	tok = strings.ReplaceAll(tok, "~0", "~")
	return tok
}

// ResolvePointer walks root by the segments of ptr, indexing into arrays
// numerically and objects by key. A distinguished segment equal to the
// empty string refers to the object key "". Returns ErrPointerNotFound if
// any segment cannot be resolved.
func ResolvePointer(root any, ptr string) (any, error) {
	segments, err := splitPointer(ptr)
	if err != nil {
		return nil, err
	}

	current := root
	for _, seg := range segments {
		next, ok := resolveSegment(current, seg)
		if !ok {
			return nil, fmt.Errorf("%w: %q (at segment %q)", ErrPointerNotFound, ptr, seg)
		}
		current = next
	}
	return current, nil
}

func resolveSegment(value any, segment string) (any, bool) {
	switch v := value.(type) {
	case map[string]any:
		child, ok := v[segment]
		return child, ok
	case []any:
		idx, err := strconv.Atoi(segment)
		if err != nil || idx < 0 || idx >= len(v) {
			return nil, false
		}
		return v[idx], true
	default:
		return nil, false
	}
}
