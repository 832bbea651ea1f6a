// Package csp0 defines the contract a concrete CSP0 source-text loader
// would satisfy (§6): this repository ships the process-term model and its
// operational semantics, not a parser, so Loader has no implementation
// here — it exists so callers and future parser packages share one error
// and entry-point shape.
package csp0

import (
	"github.com/cockroachdb/errors"

	"github.com/rfielding/csp-lts/process"
)

// Loader builds canonical Process terms from CSP0 source text against a
// single Env, the same role original_source's load_csp0_string test helper
// plays (§6).
type Loader interface {
	// Load parses source and returns the canonical Process it denotes,
	// interning every subterm into env. τ and ✔ are not accepted as prefix
	// events in source text; Env.Prefix itself accepts any event.
	Load(env *process.Env, source string) (process.Process, error)
}

// ParseError reports a failure to parse CSP0 source text, with the byte
// offset at which parsing gave up.
type ParseError struct {
	Offset int
	Source string
	Reason string
}

func (e *ParseError) Error() string {
	return errors.Newf("csp0: parse error at offset %d: %s", e.Offset, e.Reason).Error()
}

// NewParseError constructs a ParseError, the shape a concrete Loader
// implementation should return on malformed input.
func NewParseError(offset int, source, reason string) error {
	return &ParseError{Offset: offset, Source: source, Reason: reason}
}
