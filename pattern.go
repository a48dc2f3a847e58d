package jsonschema

import (
	"fmt"
	"regexp"
)

// PatternMatcher is an opaque wrapper around the regular expression engine
// used for the "patternProperties" keyword. The ECMA-262
// regex dialect itself is treated as a black box; this package only needs
// compile(pattern) -> matcher and matcher.matches(s) -> bool, backed here by
// Go's RE2-flavored regexp package.
type PatternMatcher struct {
	re *regexp.Regexp
}

// CompilePattern compiles p into a PatternMatcher. Returns ErrBadPattern
// wrapping the underlying syntax error if p is not a valid pattern.
func CompilePattern(p string) (*PatternMatcher, error) {
	re, err := regexp.Compile(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrBadPattern, p, err)
	}
	return &PatternMatcher{re: re}, nil
}

// Matches reports whether s contains an unanchored match of the pattern,
// per JSON Schema "pattern" semantics (the pattern is never implicitly
// anchored at the start or end of the string).
func (p *PatternMatcher) Matches(s string) bool {
	return p.re.MatchString(s)
}
