package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeepEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"equal ints", 2, 2, true},
		{"int vs float same value", 2, 2.0, true},
		{"different numbers", 2, 3, false},
		{"equal strings", "x", "x", true},
		{"different types", "2", 2, false},
		{"equal arrays", []any{1, "a"}, []any{1, "a"}, true},
		{"different array length", []any{1}, []any{1, 2}, false},
		{"equal objects", map[string]any{"a": 1}, map[string]any{"a": 1}, true},
		{"different object values", map[string]any{"a": 1}, map[string]any{"a": 2}, false},
		{"nulls", nil, nil, true},
		{"bools", true, true, true},
		{"bool vs non-bool", true, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deepEqual(tt.a, tt.b))
		})
	}
}

func TestEnumContains(t *testing.T) {
	set := []any{"red", "green", 3.0}
	assert.True(t, enumContains(set, "green"))
	assert.True(t, enumContains(set, 3))
	assert.False(t, enumContains(set, "blue"))
}
