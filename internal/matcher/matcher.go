// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-14
// Last Modified: 2026-10-14

// Package matcher evaluates a contribution body against its required pattern.
//
// Patterns are compiled with ECMAScript semantics so that expressions written
// for JavaScript-based actions (lookaheads, backreferences) keep working.
// Matching is unanchored: any substring match counts.
//
// One dialect difference from JavaScript's RegExp without the u flag:
// \p{...} and \P{...} are Unicode property classes here, where JavaScript
// reads them as the literal text "p{...}". A match that runs past the
// timeout is reported as failure.ErrMalformedPattern.
package matcher

import (
	"fmt"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/similigh/issue-gate/internal/core/failure"
)

// Matcher is a compiled body pattern.
type Matcher struct {
	pattern string
	re      *regexp2.Regexp
}

// Compile compiles pattern. A zero timeout disables the per-match bound.
func Compile(pattern string, timeout time.Duration) (*Matcher, error) {
	re, err := regexp2.Compile(pattern, regexp2.ECMAScript)
	if err != nil {
		return nil, failure.Wrap(failure.ErrMalformedPattern, err,
			fmt.Sprintf("Invalid regular expression: /%s/", pattern))
	}
	if timeout > 0 {
		re.MatchTimeout = timeout
	}
	return &Matcher{pattern: pattern, re: re}, nil
}

// Match reports whether body contains a match.
func (m *Matcher) Match(body string) (bool, error) {
	ok, err := m.re.MatchString(body)
	if err != nil {
		return false, failure.Wrap(failure.ErrMalformedPattern, err,
			fmt.Sprintf("failed to evaluate pattern %s", m))
	}
	return ok, nil
}

// String renders the pattern in literal form, e.g. /^Description:/.
func (m *Matcher) String() string {
	return "/" + m.pattern + "/"
}
