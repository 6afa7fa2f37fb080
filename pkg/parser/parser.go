// Package parser implements the GoDeriv pattern parser.
//
// The parser is a single-pass operator-precedence (shift/reduce) parser
// over the token stream produced by the lexer. It builds the canonical
// expression tree directly, interning every node into a [types.Store] as it
// goes, so the parse result is already hash-consed.
//
// # Grammar
//
// Highest to lowest precedence:
//   - postfix repetition: * + ?
//   - implicit concatenation (juxtaposition)
//   - alternation: |
//   - grouping: ( ), which resets precedence inside
//
// A backslash escapes the next character into a plain literal.
//
// Concatenation is implied by juxtaposition of literals and after a closed
// group. An opening parenthesis starts a fresh operand instead of attaching
// to the operand before it, so "(a|b)c" is valid while "c(a|b)" is not.
//
// # Errors
//
// All failures are [types.Error] values with a code, byte position, and the
// offending token text. Parsing is all-or-nothing: on failure no partial
// expression is returned and nothing the parse interned is meaningful to
// the caller.
package parser

import (
	"github.com/goderiv/goderiv/pkg/types"
)

// Parse parses a pattern and returns the compiled Pattern.
//
// Example:
//
//	p, err := parser.Parse("(a|b)+c")
//	if err != nil {
//	    var perr *types.Error
//	    errors.As(err, &perr) // perr.Code, perr.Position
//	    return
//	}
func Parse(pattern string) (*types.Pattern, error) {
	p := NewParser(pattern)
	return p.Parse()
}

// Compile is an alias for Parse that accepts options, provided for API
// consistency.
func Compile(pattern string, opts ...CompileOption) (*types.Pattern, error) {
	p := NewParser(pattern, opts...)
	return p.Parse()
}

// CompileOption configures compilation behavior.
type CompileOption func(*CompileOptions)

// CompileOptions holds parser configuration.
type CompileOptions struct {
	// Store, when non-nil, is the canonicalization store the compiled
	// pattern's nodes are interned into. Supplying one store to several
	// Compile calls shares sub-expressions (and derivative work) across the
	// resulting patterns. When nil, each compile gets a fresh store.
	Store *types.Store
}

// WithStore makes the parser intern nodes into a caller-owned store.
func WithStore(st *types.Store) CompileOption {
	return func(opts *CompileOptions) {
		opts.Store = st
	}
}
