// Package matcher decides whether a text matches a compiled pattern by
// folding the Brzozowski derivative over the text.
//
// The derivative of an expression with respect to a rune r is the
// expression matching exactly the suffixes of its matches that begin with
// r. Matching is therefore a single left-to-right pass: derive the root by
// each rune in turn, then ask whether the final expression matches the
// empty string. Each intermediate expression is the state of an implicit,
// lazily built automaton, and because nodes are hash-consed the state set
// is the set of distinct canonical nodes.
//
// Canonicalization is purely syntactic: semantically equivalent but
// structurally different derivatives are not merged, so adversarial
// patterns can produce more distinct states than an ACI-normalizing
// implementation would. That trade-off is deliberate.
//
// Nullable and Derive are total; matching a compiled pattern cannot fail.
package matcher

import (
	"fmt"

	"github.com/goderiv/goderiv/pkg/types"
)

// Nullable reports whether the expression rooted at n matches the empty
// string.
func Nullable(n *types.Node) bool {
	switch n.Kind {
	case types.KindEmpty, types.KindLiteral:
		return false
	case types.KindEpsilon, types.KindStar:
		return true
	case types.KindUnion:
		return Nullable(n.Left) || Nullable(n.Right)
	case types.KindConcat:
		return Nullable(n.Left) && Nullable(n.Right)
	default:
		panic(fmt.Sprintf("matcher: unknown node kind %d", n.Kind))
	}
}

// Derive returns the canonical node matching exactly the suffixes of
// strings matched by n that begin with r. New nodes are interned into st,
// which must be the store n came from.
func Derive(st *types.Store, n *types.Node, r rune) *types.Node {
	switch n.Kind {
	case types.KindEmpty, types.KindEpsilon:
		return st.Empty()

	case types.KindLiteral:
		if n.Rune == r {
			return st.Epsilon()
		}
		return st.Empty()

	case types.KindUnion:
		return st.Union(Derive(st, n.Left, r), Derive(st, n.Right, r))

	case types.KindConcat:
		// If the left operand can match empty, the match may hand off to
		// the right operand at this rune.
		left := st.Concat(Derive(st, n.Left, r), n.Right)
		if Nullable(n.Left) {
			return st.Union(left, Derive(st, n.Right, r))
		}
		return left

	case types.KindStar:
		// Consume one rune of the body, then re-enter the same star.
		return st.Concat(Derive(st, n.Left, r), n)

	default:
		panic(fmt.Sprintf("matcher: unknown node kind %d", n.Kind))
	}
}

// Match reports whether p matches text in its entirety.
func Match(p *types.Pattern, text string) bool {
	st := p.Store()
	current := p.Root()
	for _, r := range text {
		current = Derive(st, current, r)
	}
	return Nullable(current)
}
