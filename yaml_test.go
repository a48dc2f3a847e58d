package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadYAMLSchemaAndValidate(t *testing.T) {
	schemaDoc := []byte(`
type: object
properties:
  name:
    type: string
    minLength: 1
required:
  - name
`)

	raw, err := LoadYAML(schemaDoc)
	require.NoError(t, err)

	schema, err := Load(raw)
	require.NoError(t, err)

	assert.Empty(t, validateErrors(schema, map[string]any{"name": "ok"}))
	assert.Len(t, validateErrors(schema, map[string]any{}), 1)
}

func TestLoadYAMLRejectsMalformedDocument(t *testing.T) {
	_, err := LoadYAML([]byte("key: [unterminated"))
	require.Error(t, err)
	require.ErrorIs(t, err, ErrYAMLDecode)
}
