package jsonschema

import "errors"

// === Schema Load Related Errors ===
// These are fatal: returned from Load or SchemaStore.Get, never pushed into a
// validation sink.
var (
	// ErrSchemaLoadFailed is returned when a pointer URI resolves to a JSON
	// value that is neither a boolean nor an object, so it cannot be
	// interpreted as a schema.
	ErrSchemaLoadFailed = errors.New("schema load failed")

	// ErrPointerNotFound is returned when a JSON-Pointer URI does not
	// resolve to any value within the document it is evaluated against.
	ErrPointerNotFound = errors.New("json pointer not found")

	// ErrBadPattern is returned when a "patternProperties" key
	// is not a syntactically valid regular expression.
	ErrBadPattern = errors.New("invalid regular expression pattern")

	// ErrInvalidPointerSyntax is returned when a pointer URI does not start
	// with the "#" fragment prefix required by RFC 6901 fragment form.
	ErrInvalidPointerSyntax = errors.New("invalid json pointer syntax")
)

// === YAML Loading Related Errors ===
var (
	// ErrYAMLDecode is returned when a YAML-authored document cannot be
	// decoded into the generic value tree the store consumes.
	ErrYAMLDecode = errors.New("yaml decode failed")
)

// === Internationalization Related Errors ===
var (
	// ErrLocaleLoad is returned when the embedded locale catalogs cannot be
	// parsed into the i18n bundle.
	ErrLocaleLoad = errors.New("locale catalog load failed")
)
