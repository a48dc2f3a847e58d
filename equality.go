package jsonschema

// deepEqual implements the structural equality rule used by
// "const" and "enum": same tag, same length/keys, recursive element
// equality, with numeric equality following numbersEqual (double-precision
// unless both operands are integer-tagged, in which case exact integer
// equality applies). This deviates from a reference implementation that
// compares serialized form, but produces the same verdict on every
// non-pathological input, and sidesteps having to pick a canonical
// serialization (key order, number formatting) for comparison.
func deepEqual(a, b any) bool {
	ta, tb := ClassifyValue(a), ClassifyValue(b)
	if ta == tagInvalid || tb == tagInvalid {
		return false
	}

	switch ta {
	case TagInteger, TagNumber:
		if tb != TagInteger && tb != TagNumber {
			return false
		}
		return numbersEqual(a, ta, b, tb)
	case TagNull:
		return tb == TagNull
	case TagBoolean:
		return tb == TagBoolean && a.(bool) == b.(bool)
	case TagString:
		return tb == TagString && asString(a) == asString(b)
	case TagArray:
		if tb != TagArray {
			return false
		}
		aa, ba := asArray(a), asArray(b)
		if len(aa) != len(ba) {
			return false
		}
		for i := range aa {
			if !deepEqual(aa[i], ba[i]) {
				return false
			}
		}
		return true
	case TagObject:
		if tb != TagObject {
			return false
		}
		ao, bo := asObject(a), asObject(b)
		if len(ao) != len(bo) {
			return false
		}
		for k, av := range ao {
			bv, ok := bo[k]
			if !ok || !deepEqual(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// enumContains reports whether candidate deep-equals any member of set.
func enumContains(set []any, candidate any) bool {
	for _, member := range set {
		if deepEqual(candidate, member) {
			return true
		}
	}
	return false
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asArray(v any) []any {
	a, _ := v.([]any)
	return a
}

func asObject(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}
