package jsonschema

import (
	"fmt"
	"math"

	"github.com/goccy/go-json"
)

// asFloat64 coerces a numeric value (an instance or a keyword's raw value)
// to a float64 for bounds comparison. It reports false for any value that
// is not one of the numeric kinds below.
func asFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// isIntegralRepresentable reports whether v is exactly representable as an
// int64, used to pick the exact-integer-modulus path in isMultipleOf.
func isIntegralRepresentable(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		if uint64(n) <= math.MaxInt64 {
			return int64(n), true
		}
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case float32:
		f := float64(n)
		if f == math.Trunc(f) && f >= -(1<<63) && f < 1<<63 {
			return int64(f), true
		}
	case float64:
		if n == math.Trunc(n) && n >= -(1<<63) && n < 1<<63 {
			return int64(n), true
		}
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
	}
	return 0, false
}

// populateNumericKeywords extracts minimum/maximum/exclusiveMinimum/
// exclusiveMaximum/multipleOf from raw. Each is absent (nil) unless
// present in raw; absence means unbounded, never a zero-valued bound.
func populateNumericKeywords(s *Schema, raw map[string]any) error {
	bind := func(key string) (*numericBound, error) {
		v, ok := raw[key]
		if !ok {
			return nil, nil
		}
		f, ok := asFloat64(v)
		if !ok {
			return nil, fmt.Errorf("%w: %q: %q must be a number", ErrSchemaLoadFailed, s.pointer, key)
		}
		return &numericBound{value: f, raw: v}, nil
	}

	var err error
	if s.minimum, err = bind("minimum"); err != nil {
		return err
	}
	if s.maximum, err = bind("maximum"); err != nil {
		return err
	}
	if s.exclusiveMinimum, err = bind("exclusiveMinimum"); err != nil {
		return err
	}
	if s.exclusiveMaximum, err = bind("exclusiveMaximum"); err != nil {
		return err
	}
	if s.multipleOf, err = bind("multipleOf"); err != nil {
		return err
	}
	return nil
}

// evaluateNumeric applies every active numeric keyword to a classified
// numeric instance, pushing each independent failure into sink without
// short-circuiting the rest.
func evaluateNumeric(s *Schema, instance any, ptr string, sink ErrorSink) {
	value, ok := asFloat64(instance)
	if !ok {
		return
	}

	if s.minimum != nil && value < s.minimum.value {
		sink.Add(NewValidationError(ptr, "value_below_minimum", "{value} should be at least {minimum}", map[string]any{
			"value": value, "minimum": s.minimum.value,
		}))
	}
	if s.exclusiveMinimum != nil && value <= s.exclusiveMinimum.value {
		sink.Add(NewValidationError(ptr, "value_below_exclusive_minimum", "{value} should be greater than {minimum}", map[string]any{
			"value": value, "minimum": s.exclusiveMinimum.value,
		}))
	}
	if s.maximum != nil && value > s.maximum.value {
		sink.Add(NewValidationError(ptr, "value_above_maximum", "{value} should be at most {maximum}", map[string]any{
			"value": value, "maximum": s.maximum.value,
		}))
	}
	if s.exclusiveMaximum != nil && value >= s.exclusiveMaximum.value {
		sink.Add(NewValidationError(ptr, "value_above_exclusive_maximum", "{value} should be less than {maximum}", map[string]any{
			"value": value, "maximum": s.exclusiveMaximum.value,
		}))
	}
	if s.multipleOf != nil && !isMultipleOf(value, s.multipleOf.value, instance, s.multipleOf.raw) {
		sink.Add(NewValidationError(ptr, "not_multiple_of", "{value} should be a multiple of {multipleOf}", map[string]any{
			"value": value, "multipleOf": s.multipleOf.value,
		}))
	}
}

// numbersEqual implements the numeric leg of deepEqual: exact int64
// equality when both operands are integer-representable, otherwise
// double-precision float comparison. This means 2 and 2.0 compare equal
// (both integer-tagged, same int64 value) while 0.1+0.2's float64 result
// would not spuriously equal a differently-rounded literal, since no
// integer path is taken for either.
func numbersEqual(a any, ta TypeTag, b any, tb TypeTag) bool {
	if ia, ok := isIntegralRepresentable(a); ok {
		if ib, ok := isIntegralRepresentable(b); ok {
			return ia == ib
		}
	}
	fa, aok := asFloat64(a)
	fb, bok := asFloat64(b)
	return aok && bok && fa == fb
}

// isMultipleOf improves on naive value/divisor mod-1 division: exact
// integer modulus when both operands are representable integers,
// otherwise a rounded comparison within a tolerance of
// 1e-10 * max(|value|, 1), which avoids false negatives from IEEE-754
// rounding error on non-integer divisors.
func isMultipleOf(value, divisor float64, rawValue, rawDivisor any) bool {
	if divisor == 0 {
		return false
	}
	if vi, ok := isIntegralRepresentable(rawValue); ok {
		if di, ok := isIntegralRepresentable(rawDivisor); ok && di != 0 {
			return vi%di == 0
		}
	}

	quotient := value / divisor
	rounded := math.Round(quotient)
	reconstructed := rounded * divisor
	tolerance := 1e-10 * math.Max(math.Abs(value), 1)
	return math.Abs(reconstructed-value) <= tolerance
}
