package jsonschema

import (
	"fmt"

	"github.com/goccy/go-json"
)

// SchemaStore owns a single root JSON document and the pointer-keyed cache
// of every Schema node constructed from it. A node holds direct pointers to
// its child nodes, but every such pointer is obtained from the store's
// cache, so each pointer URI maps to exactly one Schema node.
//
// Construction is driven entirely by pointer resolution: a keyword that
// names a subschema (such as "items" or a "properties" entry) does not pass
// the already-decoded JSON value down to its child; it computes the child's
// pointer and asks the store to Get it, which re-resolves that pointer
// against root. This keeps every Schema node uniformly addressable by
// pointer and makes the cache-before-recurse rule the single place cycle
// safety is enforced.
type SchemaStore struct {
	root  any
	cache map[string]*Schema
}

// NewSchemaStore creates an empty store over root. root is typically the
// result of decoding a JSON or YAML document into generic Go values
// (map[string]any, []any, string, float64/json.Number, bool, nil).
func NewSchemaStore(root any) *SchemaStore {
	return &SchemaStore{root: root, cache: make(map[string]*Schema)}
}

// Load resolves the document root itself ("#") into a Schema, which recursively
// materializes every keyword-reachable subschema. It is the normal entry
// point for compiling a whole schema document.
func Load(root any) (*Schema, error) {
	store := NewSchemaStore(root)
	return store.Get(pointerPrefix)
}

// Get returns the Schema at pointer, constructing and caching it on first
// access. Repeated calls with the same pointer return the identical *Schema
// value, which is what makes the cache-before-recurse ordering below
// actually break cycles: the cache entry exists (even if not yet fully
// populated) before any keyword of the node starts recursing into its own
// children.
func (store *SchemaStore) Get(pointer string) (*Schema, error) {
	if cached, ok := store.cache[pointer]; ok {
		return cached, nil
	}

	value, err := ResolvePointer(store.root, pointer)
	if err != nil {
		return nil, err
	}
	return store.construct(pointer, value)
}

// DebugJSON re-serializes the raw JSON value at pointer, for diagnostics
// when tracking down why a schema resolved the way it did. It does not
// touch the Schema cache; it re-resolves pointer against root directly.
func (store *SchemaStore) DebugJSON(pointer string) (string, error) {
	value, err := ResolvePointer(store.root, pointer)
	if err != nil {
		return "", err
	}
	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrSchemaLoadFailed, pointer, err)
	}
	return string(out), nil
}

// construct builds the Schema for value at pointer, matching it to the
// Boolean or Object variant, and installs it into the cache
// before populating its keyword-derived children.
func (store *SchemaStore) construct(pointer string, value any) (*Schema, error) {
	switch v := value.(type) {
	case bool:
		node := newBooleanSchema(pointer, v)
		store.cache[pointer] = node
		return node, nil
	case map[string]any:
		node := &Schema{pointer: pointer}
		store.cache[pointer] = node // before recursing: breaks self-reference cycles
		if err := populateObjectSchema(node, v, store); err != nil {
			return nil, err
		}
		return node, nil
	default:
		return nil, fmt.Errorf("%w: %q: schema must be a boolean or an object, got %T", ErrSchemaLoadFailed, pointer, value)
	}
}
