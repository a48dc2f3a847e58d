package jsonschema

import (
	"math"
	"math/big"

	"github.com/goccy/go-json"
)

// TypeTag classifies a decoded JSON value into one of the seven primitive
// types the "type" keyword can name. Integer and Number are distinguished
// because "type":"integer" accepts only values with a zero fractional part.
type TypeTag string

const (
	TagNull    TypeTag = "null"
	TagBoolean TypeTag = "boolean"
	TagInteger TypeTag = "integer"
	TagNumber  TypeTag = "number"
	TagString  TypeTag = "string"
	TagArray   TypeTag = "array"
	TagObject  TypeTag = "object"

	// tagInvalid is what ClassifyValue returns for values that are none of
	// the seven types: NaN, +/-Inf, and unsupported Go types.
	tagInvalid TypeTag = ""
)

// ClassifyValue returns the TypeTag of an already-parsed JSON value.
// Accepted Go representations: nil, bool, string, []any, map[string]any,
// plus any numeric kind produced by common decoders: float64, float32,
// the integer kinds, and json.Number.
func ClassifyValue(v any) TypeTag {
	switch n := v.(type) {
	case nil:
		return TagNull
	case bool:
		return TagBoolean
	case string:
		return TagString
	case []any:
		return TagArray
	case map[string]any:
		return TagObject
	case json.Number:
		return classifyNumberString(string(n))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return TagInteger
	case float32:
		return classifyFloat(float64(n))
	case float64:
		return classifyFloat(n)
	default:
		return tagInvalid
	}
}

// classifyFloat distinguishes integer-valued floats from fractional ones.
// A NaN or infinite value fails numeric classification entirely: it
// classifies as neither integer nor number, so it fails every type check
// and every range check on it is skipped.
func classifyFloat(f float64) TypeTag {
	if f != f || f > maxSafeFloat || f < -maxSafeFloat {
		return tagInvalid
	}
	if f == math.Trunc(f) {
		return TagInteger
	}
	return TagNumber
}

// maxSafeFloat is the largest finite float64, so the bound check in
// classifyFloat rejects only +/-Inf; the fractional check above uses
// math.Trunc, which is exact for every finite value, including values
// outside the int64 range.
const maxSafeFloat = math.MaxFloat64

func classifyNumberString(s string) TypeTag {
	if s == "" {
		return tagInvalid
	}
	if _, ok := new(big.Int).SetString(s, 10); ok {
		return TagInteger
	}
	bf, ok := new(big.Float).SetString(s)
	if !ok {
		return tagInvalid
	}
	if _, acc := bf.Int(nil); acc == big.Exact {
		return TagInteger
	}
	return TagNumber
}

// accepts reports whether the instance's classified tag satisfies a
// "type" keyword's declared candidate name, applying the JSON Schema rule
// that any integer also satisfies "number".
func (t TypeTag) accepts(declared string) bool {
	if t == tagInvalid {
		return false
	}
	if string(t) == declared {
		return true
	}
	return declared == string(TagNumber) && t == TagInteger
}
