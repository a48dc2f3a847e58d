package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBooleanSchemas(t *testing.T) {
	trueSchema, err := Load(true)
	require.NoError(t, err)
	assert.True(t, trueSchema.IsBoolean())
	assert.True(t, *trueSchema.Boolean)

	falseSchema, err := Load(false)
	require.NoError(t, err)
	assert.True(t, falseSchema.IsBoolean())
	assert.False(t, *falseSchema.Boolean)
}

func TestLoadEmptyObjectSchema(t *testing.T) {
	schema, err := Load(map[string]any{})
	require.NoError(t, err)
	assert.False(t, schema.IsBoolean())
	assert.Equal(t, "#", schema.Pointer())
}

func TestLoadRejectsNonSchemaValue(t *testing.T) {
	_, err := Load("not a schema")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrSchemaLoadFailed)
}

func TestSchemaStoreGetCachesByPointer(t *testing.T) {
	store := NewSchemaStore(map[string]any{
		"properties": map[string]any{
			"name": map[string]any{"type": "string"},
		},
	})

	first, err := store.Get("#/properties/name")
	require.NoError(t, err)
	second, err := store.Get("#/properties/name")
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestSchemaStoreGetUnresolvablePointer(t *testing.T) {
	store := NewSchemaStore(map[string]any{})
	_, err := store.Get("#/nope")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrPointerNotFound)
}

func TestSchemaStoreDebugJSON(t *testing.T) {
	store := NewSchemaStore(map[string]any{
		"properties": map[string]any{"name": map[string]any{"type": "string"}},
	})

	out, err := store.DebugJSON("#/properties/name")
	require.NoError(t, err)
	assert.Contains(t, out, `"type"`)
	assert.Contains(t, out, `"string"`)
}

func TestDefinitionsAreMaterializedButInert(t *testing.T) {
	schema, err := Load(map[string]any{
		"definitions": map[string]any{
			"widget": map[string]any{"type": "string"},
		},
	})
	require.NoError(t, err)

	// "definitions" carries no validation semantics of its own: any value
	// should pass against the root schema regardless of the widget shape.
	sink := &ErrorList{}
	Validate(schema, 42, sink)
	assert.True(t, sink.Empty())
}
