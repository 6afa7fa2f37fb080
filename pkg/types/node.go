// Package types defines the core type system for GoDeriv.
//
// This package contains type definitions for:
//   - Node: canonical regular-expression nodes (the six-variant algebra)
//   - Store: the canonicalization (hash-consing) arena that creates nodes
//   - Pattern: compiled regular expressions
//   - Error types: structured errors with codes
package types

import "strings"

// Kind identifies the variant of an expression node.
type Kind uint8

// Node variants. The set is closed: Nullable and Derive in pkg/matcher
// switch exhaustively over these and panic on anything else.
const (
	KindEmpty   Kind = iota // matches no string at all, not even ""
	KindEpsilon             // matches exactly the empty string
	KindLiteral             // matches a single rune
	KindUnion               // matches whatever either operand matches
	KindConcat              // matches a left match followed by a right match
	KindStar                // matches zero or more left matches
)

// String returns a string representation of the node kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindEpsilon:
		return "epsilon"
	case KindLiteral:
		return "literal"
	case KindUnion:
		return "union"
	case KindConcat:
		return "concat"
	case KindStar:
		return "star"
	default:
		return "(unknown)"
	}
}

// Node is one vertex of a canonical expression DAG.
//
// Nodes are immutable and are created only by a [Store]: two nodes of the
// same kind with the same operand instances are always the same instance,
// so sub-expression equality is pointer equality. Operand edges only ever
// point at older nodes, which keeps the DAG acyclic.
type Node struct {
	Kind  Kind
	Rune  rune   // literal rune; meaningful only for KindLiteral
	Left  *Node  // sole or left operand (KindUnion, KindConcat, KindStar)
	Right *Node  // right operand (KindUnion, KindConcat)
	ID    uint64 // canonical identity assigned by the store at creation
}

// Rendering precedence levels, loosest to tightest.
const (
	precAlternate = iota
	precConcat
	precPostfix
)

// String renders the sub-expression rooted at n back to pattern syntax,
// escaping metacharacters and parenthesizing where precedence requires it.
// Empty and Epsilon have no source syntax and render as "∅" and "ε"; the
// output is for diagnostics, not guaranteed to re-parse.
func (n *Node) String() string {
	var b strings.Builder
	n.render(&b, precAlternate)
	return b.String()
}

func (n *Node) render(b *strings.Builder, min int) {
	switch n.Kind {
	case KindEmpty:
		b.WriteString("∅")
	case KindEpsilon:
		b.WriteString("ε")
	case KindLiteral:
		if isMeta(n.Rune) {
			b.WriteByte('\\')
		}
		b.WriteRune(n.Rune)
	case KindUnion:
		if min > precAlternate {
			b.WriteByte('(')
		}
		n.Left.render(b, precAlternate)
		b.WriteByte('|')
		n.Right.render(b, precAlternate)
		if min > precAlternate {
			b.WriteByte(')')
		}
	case KindConcat:
		if min > precConcat {
			b.WriteByte('(')
		}
		n.Left.render(b, precConcat)
		n.Right.render(b, precConcat)
		if min > precConcat {
			b.WriteByte(')')
		}
	case KindStar:
		n.Left.render(b, precPostfix)
		b.WriteByte('*')
	}
}

// isMeta reports whether r has operator meaning in pattern syntax and must
// be backslash-escaped to stand for itself.
func isMeta(r rune) bool {
	switch r {
	case '\\', '|', '*', '+', '?', '(', ')':
		return true
	}
	return false
}
