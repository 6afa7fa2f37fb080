package matcher_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/goderiv/goderiv/pkg/matcher"
	"github.com/goderiv/goderiv/pkg/parser"
	"github.com/goderiv/goderiv/pkg/types"
)

func compile(t *testing.T, pattern string) *types.Pattern {
	t.Helper()
	p, err := parser.Compile(pattern)
	if err != nil {
		t.Fatalf("Failed to compile %q: %v", pattern, err)
	}
	return p
}

// Algebra tests

func TestNullable(t *testing.T) {
	st := types.NewStore()
	a := st.Literal('a')
	b := st.Literal('b')

	tests := []struct {
		name string
		node *types.Node
		want bool
	}{
		{"empty", st.Empty(), false},
		{"epsilon", st.Epsilon(), true},
		{"literal", a, false},
		{"star", st.Star(a), true},
		{"star of empty", st.Star(st.Empty()), true},
		{"union of non-nullable", st.Union(a, b), false},
		{"union with epsilon", st.Union(st.Epsilon(), a), true},
		{"concat of nullable", st.Concat(st.Star(a), st.Star(b)), true},
		{"concat with non-nullable side", st.Concat(st.Star(a), b), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matcher.Nullable(tt.node); got != tt.want {
				t.Errorf("Nullable(%s) = %v, want %v", tt.node, got, tt.want)
			}
		})
	}
}

func TestDeriveLiteral(t *testing.T) {
	st := types.NewStore()
	a := st.Literal('a')

	if got := matcher.Derive(st, a, 'a'); got != st.Epsilon() {
		t.Fatalf("Derive(a, 'a') = %s, want the canonical Epsilon", got)
	}
	for _, r := range "bzé" {
		if got := matcher.Derive(st, a, r); got != st.Empty() {
			t.Fatalf("Derive(a, %q) = %s, want the canonical Empty", r, got)
		}
	}
}

func TestDeriveSinks(t *testing.T) {
	st := types.NewStore()
	if matcher.Derive(st, st.Empty(), 'x') != st.Empty() {
		t.Fatal("Empty must derive to Empty")
	}
	if matcher.Derive(st, st.Epsilon(), 'x') != st.Empty() {
		t.Fatal("Epsilon must derive to Empty")
	}
}

func TestDeriveStarReentry(t *testing.T) {
	st := types.NewStore()
	a := st.Literal('a')
	star := st.Star(a)

	// d/da (a*) = Concat(d/da a, a*) = Concat(Epsilon, a*), re-entering the
	// same star node.
	d := matcher.Derive(st, star, 'a')
	if d.Kind != types.KindConcat {
		t.Fatalf("derivative kind = %s, want concat", d.Kind)
	}
	if d.Left != st.Epsilon() || d.Right != star {
		t.Fatalf("Derive(a*, 'a') = %s, want εa*, sharing the star instance", d)
	}
}

func TestDeriveHandsOffOnNullableLeft(t *testing.T) {
	st := types.NewStore()
	a := st.Literal('a')
	b := st.Literal('b')

	// d/db (a*b): a* is nullable, so the match may hand off to b.
	n := st.Concat(st.Star(a), b)
	d := matcher.Derive(st, n, 'b')
	if d.Kind != types.KindUnion {
		t.Fatalf("derivative kind = %s, want union", d.Kind)
	}
	if !matcher.Nullable(d) {
		t.Fatal("d/db (a*b) must accept the empty string")
	}

	// d/db (ab): a is not nullable, no hand-off, and b was not consumed.
	d = matcher.Derive(st, st.Concat(a, b), 'b')
	if d != st.Concat(st.Empty(), b) {
		t.Fatalf("d/db (ab) = %s, want ∅b", d)
	}
}

func TestDeriveIsCanonical(t *testing.T) {
	p := compile(t, "(a|b)*abb")
	st := p.Store()

	d1 := matcher.Derive(st, p.Root(), 'a')
	d2 := matcher.Derive(st, p.Root(), 'a')
	if d1 != d2 {
		t.Fatal("deriving the same node by the same rune must return one instance")
	}
}

// End-to-end tests

func TestMatch(t *testing.T) {
	tests := []struct {
		pattern string
		text    string
		want    bool
	}{
		{"a*b", "ab", true},
		{"a*b", "aaab", true},
		{"a*b", "b", true},
		{"a*b", "ba", false},
		{"a*b", "", false},
		{"(a|b)+abb?", "abababb", true},
		{"(a|b)+abb?", "ababa", false},
		{"(a|b)+abb?", "aab", true},
		{`a\*b`, "a*b", true},
		{`a\*b`, "aab", false},
		{`\\`, `\`, true},
		{"abc", "abc", true},
		{"abc", "ab", false},
		{"abc", "abcd", false},
		{"a|b", "a", true},
		{"a|b", "b", true},
		{"a|b", "c", false},
		{"a?", "", true},
		{"a?", "a", true},
		{"a?", "aa", false},
		{"a+", "", false},
		{"a+", "aaa", true},
		{"(ab)*", "", true},
		{"(ab)*", "abab", true},
		{"(ab)*", "aba", false},
		{"(a|b)*c", "c", true},
		{"(a|b)*c", "abbac", true},
		{"(a|b)*c", "abca", false},
		{"é*ø", "ééø", true},
		{"é*ø", "é", false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%s", tt.pattern, tt.text), func(t *testing.T) {
			p := compile(t, tt.pattern)
			if got := matcher.Match(p, tt.text); got != tt.want {
				t.Errorf("Match(%q, %q) = %v, want %v", tt.pattern, tt.text, got, tt.want)
			}
		})
	}
}

func TestMatchLongInput(t *testing.T) {
	// Derivative chains stay correct on long texts, even where syntactic
	// canonicalization keeps producing structurally new states.
	p := compile(t, "(a|b)*c")
	body := strings.Repeat("ab", 100)
	if !matcher.Match(p, body+"c") {
		t.Fatal("expected match")
	}
	if matcher.Match(p, body) {
		t.Fatal("expected no match without the trailing c")
	}
}

func TestMatchIsRepeatable(t *testing.T) {
	p := compile(t, "(a|b)*abb")
	texts := []string{"abb", "aabb", "babb", "ab", ""}
	for _, text := range texts {
		first := matcher.Match(p, text)
		for i := 0; i < 3; i++ {
			if got := matcher.Match(p, text); got != first {
				t.Fatalf("Match(%q) changed answer between runs", text)
			}
		}
	}
}

func TestMatchConcurrent(t *testing.T) {
	p := compile(t, "(a|b)+abb?")
	texts := map[string]bool{
		"abababb": true,
		"ababa":   false,
		"aab":     true,
		"babb":    true,
		"":        false,
	}

	errc := make(chan error, len(texts)*8)
	for i := 0; i < 8; i++ {
		for text, want := range texts {
			go func(text string, want bool) {
				if got := matcher.Match(p, text); got != want {
					errc <- fmt.Errorf("Match(%q) = %v, want %v", text, got, want)
					return
				}
				errc <- nil
			}(text, want)
		}
	}
	for i := 0; i < len(texts)*8; i++ {
		if err := <-errc; err != nil {
			t.Fatal(err)
		}
	}
}
