package types_test

import (
	"errors"
	"testing"

	"github.com/goderiv/goderiv/pkg/types"
)

func TestNodeString(t *testing.T) {
	st := types.NewStore()
	a := st.Literal('a')
	b := st.Literal('b')
	star := st.Literal('*')

	tests := []struct {
		name string
		node *types.Node
		want string
	}{
		{"empty", st.Empty(), "∅"},
		{"epsilon", st.Epsilon(), "ε"},
		{"literal", a, "a"},
		{"escaped literal", star, "\\*"},
		{"union", st.Union(a, b), "a|b"},
		{"concat", st.Concat(a, b), "ab"},
		{"star", st.Star(a), "a*"},
		{"star of union needs parens", st.Star(st.Union(a, b)), "(a|b)*"},
		{"star of concat needs parens", st.Star(st.Concat(a, b)), "(ab)*"},
		{"union in concat needs parens", st.Concat(st.Union(a, b), a), "(a|b)a"},
		{"concat in union is bare", st.Union(st.Concat(a, b), a), "ab|a"},
		{"optional desugaring", st.Union(st.Epsilon(), a), "ε|a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	kinds := map[types.Kind]string{
		types.KindEmpty:   "empty",
		types.KindEpsilon: "epsilon",
		types.KindLiteral: "literal",
		types.KindUnion:   "union",
		types.KindConcat:  "concat",
		types.KindStar:    "star",
	}
	for k, want := range kinds {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func TestErrorFormatting(t *testing.T) {
	err := types.NewError(types.ErrMismatchedParen, `unmatched ")"`, 4)
	want := `S0201 at position 4: unmatched ")"`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	err = types.NewError(types.ErrIncompletePattern, "empty pattern", -1)
	want = "S0203: empty pattern"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := types.NewError(types.ErrUnterminatedEscape, "unterminated escape", 0).WithCause(cause)
	if !errors.Is(err, cause) {
		t.Fatal("errors.Is must see the wrapped cause")
	}
	if err.WithToken(`\`).Token != `\` {
		t.Fatal("WithToken must record the token text")
	}
}
