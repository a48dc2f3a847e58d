package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringLength(t *testing.T) {
	schema := mustLoad(t, map[string]any{"minLength": 2, "maxLength": 4})

	assert.Len(t, validateErrors(schema, "a"), 1)
	assert.Empty(t, validateErrors(schema, "ab"))
	assert.Empty(t, validateErrors(schema, "abcd"))
	assert.Len(t, validateErrors(schema, "abcde"), 1)
}

func TestStringLengthCountsRunesNotBytes(t *testing.T) {
	schema := mustLoad(t, map[string]any{"minLength": 3})
	// "日本語" is three runes but nine bytes; it must satisfy minLength: 3.
	assert.Empty(t, validateErrors(schema, "日本語"))
}
