package jsonschema

import (
	"fmt"
	"strings"

	"github.com/kaptinlin/go-i18n"
)

// ValidationError is a single validation failure: a JSON-Pointer into the
// instance document, a stable Code identifying the failure kind, an
// advisory human-readable Message, and the Params used to render it. Per
// Message text is never stability-guaranteed across versions; Code is.
type ValidationError struct {
	Pointer string
	Code    string
	Message string
	Params  map[string]any
}

// NewValidationError builds a ValidationError. params is optional; when
// omitted the message is used verbatim.
func NewValidationError(pointer, code, message string, params ...map[string]any) *ValidationError {
	e := &ValidationError{Pointer: pointer, Code: code, Message: message}
	if len(params) > 0 {
		e.Params = params[0]
	}
	return e
}

// Error implements the error interface by rendering Message with Params
// substituted, so a *ValidationError can be used anywhere a plain error is
// expected (e.g. wrapped by a caller).
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pointer, renderTemplate(e.Message, e.Params))
}

// Localize renders the error's Code through localizer, falling back to the
// advisory English Message when localizer is nil. A Code missing from the
// catalogs is not caught here; the result is whatever localizer returns
// for it.
func (e *ValidationError) Localize(localizer *i18n.Localizer) string {
	if localizer == nil {
		return renderTemplate(e.Message, e.Params)
	}
	return localizer.Get(e.Code, i18n.Vars(e.Params))
}

func renderTemplate(template string, params map[string]any) string {
	for key, value := range params {
		template = strings.ReplaceAll(template, "{"+key+"}", fmt.Sprint(value))
	}
	return template
}

// ErrorSink receives validation errors as they are produced. The Validator
// and every combinator keyword push into a sink rather than returning
// errors directly, so callers can substitute their own (a flat list, a
// counter, or an early-exit wrapper that panics/aborts after the first
// error).
type ErrorSink interface {
	Add(err *ValidationError)
}

// ErrorList is the default ErrorSink: it simply accumulates every error
// pushed to it, in emission order.
type ErrorList struct {
	Errors []*ValidationError
}

// Add appends err to the list.
func (l *ErrorList) Add(err *ValidationError) {
	l.Errors = append(l.Errors, err)
}

// Empty reports whether no errors have been recorded. Combinators
// (anyOf/oneOf/if) and contains use a scratch ErrorList and check Empty to get a
// pass/fail verdict out of a recursive validate call without surfacing the
// subtree's errors to the caller's sink.
func (l *ErrorList) Empty() bool {
	return len(l.Errors) == 0
}
