package jsonschema

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// LoadYAML decodes a YAML document into the generic any-tree this package
// operates on (map[string]any, []any, string, numbers, bool, nil), so a
// schema or instance authored in YAML can be fed to Load/Validate without
// any further conversion step. Mappings are normalized to map[string]any;
// scalars, numbers included, are left as the YAML decoder produced them
// and are not converted to float64.
func LoadYAML(data []byte) (any, error) {
	var value any
	if err := yaml.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrYAMLDecode, err)
	}
	return normalizeYAMLValue(value), nil
}

// normalizeYAMLValue rewrites the map[any]any nodes goccy/go-yaml can
// produce for nested mappings into map[string]any, so the rest of the
// package never has to special-case YAML's looser key typing.
func normalizeYAMLValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalizeYAMLValue(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalizeYAMLValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalizeYAMLValue(val)
		}
		return out
	default:
		return v
	}
}
