package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemsSingleSchemaForm(t *testing.T) {
	schema := mustLoad(t, map[string]any{
		"items": map[string]any{"type": "integer"},
	})

	assert.Empty(t, validateErrors(schema, []any{1.0, 2.0, 3.0}))

	errs := validateErrors(schema, []any{1.0, "x", 3.0})
	assert.Len(t, errs, 1)
	assert.Equal(t, "#/1", errs[0].Pointer)
}

func TestItemsTupleForm(t *testing.T) {
	schema := mustLoad(t, map[string]any{
		"items": []any{
			map[string]any{"type": "string"},
			map[string]any{"type": "integer"},
		},
		"additionalItems": false,
	})

	assert.Empty(t, validateErrors(schema, []any{"a", 1.0}))

	errs := validateErrors(schema, []any{"a", 1.0, "extra"})
	assert.Len(t, errs, 1)
	assert.Equal(t, "#/2", errs[0].Pointer)
	assert.Equal(t, "false_schema", errs[0].Code)
}

func TestItemsTupleWithSchemaAdditionalItems(t *testing.T) {
	schema := mustLoad(t, map[string]any{
		"items":           []any{map[string]any{"type": "string"}},
		"additionalItems": map[string]any{"type": "integer"},
	})

	assert.Empty(t, validateErrors(schema, []any{"a", 1.0, 2.0}))
	assert.Len(t, validateErrors(schema, []any{"a", "not an int"}), 1)
}

func TestMinMaxItems(t *testing.T) {
	schema := mustLoad(t, map[string]any{"minItems": 2, "maxItems": 3})

	assert.Len(t, validateErrors(schema, []any{1.0}), 1)
	assert.Empty(t, validateErrors(schema, []any{1.0, 2.0}))
	assert.Len(t, validateErrors(schema, []any{1.0, 2.0, 3.0, 4.0}), 1)
}
