package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoad(t *testing.T, raw map[string]any) *Schema {
	t.Helper()
	schema, err := Load(raw)
	require.NoError(t, err)
	return schema
}

func validateErrors(schema *Schema, instance any) []*ValidationError {
	sink := &ErrorList{}
	Validate(schema, instance, sink)
	return sink.Errors
}

func TestScenarioTypeMismatchInProperty(t *testing.T) {
	schema := mustLoad(t, map[string]any{
		"properties": map[string]any{
			"myValue": map[string]any{"type": "integer"},
		},
	})

	errs := validateErrors(schema, map[string]any{"myValue": "x"})
	require.Len(t, errs, 1)
	assert.Equal(t, "#/myValue", errs[0].Pointer)
	assert.Equal(t, "type_mismatch", errs[0].Code)

	errs = validateErrors(schema, map[string]any{"myValue": 1})
	assert.Empty(t, errs)
}

func TestScenarioMultipleOf(t *testing.T) {
	schema := mustLoad(t, map[string]any{"type": "integer", "multipleOf": 2})

	errs := validateErrors(schema, 3)
	require.Len(t, errs, 1)
	assert.Equal(t, "not_multiple_of", errs[0].Code)

	assert.Empty(t, validateErrors(schema, 4))
}

func TestScenarioOneOfOverlap(t *testing.T) {
	schema := mustLoad(t, map[string]any{
		"oneOf": []any{
			map[string]any{"type": "integer"},
			map[string]any{"type": "number"},
		},
	})

	errs := validateErrors(schema, 1)
	require.Len(t, errs, 1)
	assert.Equal(t, "one_of_multiple_match", errs[0].Code)

	assert.Empty(t, validateErrors(schema, 1.5))
}

func TestScenarioContains(t *testing.T) {
	schema := mustLoad(t, map[string]any{
		"type":     "array",
		"contains": map[string]any{"const": float64(7)},
	})

	assert.Empty(t, validateErrors(schema, []any{1.0, 2.0, 7.0}))

	errs := validateErrors(schema, []any{1.0, 2.0, 3.0})
	require.Len(t, errs, 1)
	assert.Equal(t, "#", errs[0].Pointer)
	assert.Equal(t, "contains_unsatisfied", errs[0].Code)
}

func TestScenarioDependencies(t *testing.T) {
	schema := mustLoad(t, map[string]any{
		"dependencies": map[string]any{
			"a": []any{"b"},
		},
	})

	errs := validateErrors(schema, map[string]any{"a": 1.0})
	require.Len(t, errs, 1)
	assert.Equal(t, "dependency_unmet", errs[0].Code)

	assert.Empty(t, validateErrors(schema, map[string]any{"a": 1.0, "b": 2.0}))
}

func TestScenarioConditional(t *testing.T) {
	schema := mustLoad(t, map[string]any{
		"if": map[string]any{
			"properties": map[string]any{"k": map[string]any{"const": float64(1)}},
			"required":   []any{"k"},
		},
		"then": map[string]any{"required": []any{"x"}},
		"else": map[string]any{"required": []any{"y"}},
	})

	errs := validateErrors(schema, map[string]any{"k": 1.0})
	require.Len(t, errs, 1)
	assert.Equal(t, "missing_required_property", errs[0].Code)
	assert.Equal(t, "x", errs[0].Params["property"])

	errs = validateErrors(schema, map[string]any{"k": 2.0})
	require.Len(t, errs, 1)
	assert.Equal(t, "y", errs[0].Params["property"])
}

func TestInvariantBooleanSchemas(t *testing.T) {
	trueSchema, err := Load(true)
	require.NoError(t, err)
	for _, instance := range []any{nil, 1.0, "x", []any{1.0}, map[string]any{}} {
		assert.Empty(t, validateErrors(trueSchema, instance))
	}

	falseSchema, err := Load(false)
	require.NoError(t, err)
	errs := validateErrors(falseSchema, "anything")
	require.Len(t, errs, 1)
	assert.Equal(t, "false_schema", errs[0].Code)
}

func TestInvariantEmptyObjectSchemaAcceptsEverything(t *testing.T) {
	schema := mustLoad(t, map[string]any{})
	for _, instance := range []any{nil, true, 1.0, "x", []any{1.0}, map[string]any{"a": 1.0}} {
		assert.Empty(t, validateErrors(schema, instance))
	}
}

func TestInvariantAbsentTypeNeverEmitsTypeMismatch(t *testing.T) {
	schema := mustLoad(t, map[string]any{"minLength": 3})
	assert.Empty(t, validateErrors(schema, 5.0))
}

func TestInvariantAllOfConcatenatesErrors(t *testing.T) {
	schema := mustLoad(t, map[string]any{
		"allOf": []any{
			map[string]any{"minimum": 10},
			map[string]any{"maximum": 0},
		},
	})

	errs := validateErrors(schema, 5.0)
	require.Len(t, errs, 2)
	assert.Equal(t, "value_below_minimum", errs[0].Code)
	assert.Equal(t, "value_above_maximum", errs[1].Code)
}

func TestInvariantIntegerVsNumberType(t *testing.T) {
	integerOnly := mustLoad(t, map[string]any{"type": "integer"})
	assert.Empty(t, validateErrors(integerOnly, 4.0))
	assert.Len(t, validateErrors(integerOnly, 4.5), 1)

	numberOnly := mustLoad(t, map[string]any{"type": "number"})
	assert.Empty(t, validateErrors(numberOnly, 4.0))
	assert.Empty(t, validateErrors(numberOnly, 4.5))
}

func TestValidatePure(t *testing.T) {
	schema := mustLoad(t, map[string]any{"type": "string", "minLength": 3})
	first := validateErrors(schema, "ab")
	second := validateErrors(schema, "ab")
	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].Code, second[0].Code)
	assert.Equal(t, first[0].Pointer, second[0].Pointer)
}
