// Package goderiv matches strings against regular expressions by computing
// Brzozowski derivatives, without compiling the pattern to an NFA or DFA.
//
// A pattern is parsed once into a canonical (hash-consed) expression tree;
// matching then derives the tree by each rune of the text and checks
// whether the final expression accepts the empty string. The pattern
// grammar supports alternation (|), postfix repetition (* + ?),
// parenthesized grouping, implicit concatenation, and backslash escaping.
// A match is always against the entire text.
//
// # Quick Start
//
//	// Simple matching
//	ok, err := goderiv.Match("(a|b)+c", "abac")
//
//	// Compile once, match many times
//	p, err := goderiv.Compile("a*b")
//	ok1 := matcher.Match(p, "aaab")
//	ok2 := matcher.Match(p, "b")
//
//	// With a process-wide pattern cache
//	ok, err := goderiv.Match("a*b", "ab", goderiv.WithCaching(true))
//
// # More Information
//
// For detailed documentation, see:
//   - Parser: github.com/goderiv/goderiv/pkg/parser
//   - Matcher: github.com/goderiv/goderiv/pkg/matcher
//   - Types: github.com/goderiv/goderiv/pkg/types
package goderiv

import (
	"fmt"
	"sync"

	"github.com/goderiv/goderiv/pkg/cache"
	"github.com/goderiv/goderiv/pkg/matcher"
	"github.com/goderiv/goderiv/pkg/parser"
	"github.com/goderiv/goderiv/pkg/types"
)

// Version returns the current version of GoDeriv.
func Version() string {
	return "v0.1.0-dev"
}

// Compile compiles a pattern for repeated matching.
//
// The compiled pattern can be matched against any number of texts with
// [matcher.Match]. It is safe for concurrent use.
//
// Example:
//
//	p, err := goderiv.Compile("(a|b)+abb?")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ok := matcher.Match(p, "abababb")
func Compile(pattern string, opts ...parser.CompileOption) (*types.Pattern, error) {
	return parser.Compile(pattern, opts...)
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
// It simplifies safe initialization of global variables.
func MustCompile(pattern string) *types.Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic(fmt.Sprintf("goderiv: Compile(%q): %v", pattern, err))
	}
	return p
}

// Option configures the behavior of Match.
type Option func(*Options)

// Options holds facade configuration.
type Options struct {
	// Caching routes compilation through a process-wide LRU of compiled
	// patterns keyed by source text.
	Caching bool
	// CacheSize is the capacity of the process-wide cache. It takes effect
	// when the cache is first used; later values are ignored.
	CacheSize int
}

// WithCaching enables the process-wide compiled-pattern cache.
func WithCaching(enable bool) Option {
	return func(opts *Options) {
		opts.Caching = enable
	}
}

// WithCacheSize sets the capacity of the process-wide pattern cache.
func WithCacheSize(n int) Option {
	return func(opts *Options) {
		opts.CacheSize = n
	}
}

var (
	cacheOnce sync.Once
	patterns  *cache.Cache
)

func patternCache(capacity int) *cache.Cache {
	cacheOnce.Do(func() {
		patterns = cache.New(capacity)
	})
	return patterns
}

// Match is a convenience function that compiles a pattern and matches it
// against text in a single call. The whole text must match.
//
// For repeated matching of the same pattern, use Compile, or enable
// WithCaching so hot patterns skip re-parsing.
//
// Example:
//
//	ok, err := goderiv.Match("a*b", "aaab")
func Match(pattern, text string, opts ...Option) (bool, error) {
	options := Options{CacheSize: cache.DefaultCapacity}
	for _, opt := range opts {
		opt(&options)
	}

	var (
		p   *types.Pattern
		err error
	)
	if options.Caching {
		p, err = patternCache(options.CacheSize).GetOrCompile(pattern, func() (*types.Pattern, error) {
			return parser.Compile(pattern)
		})
	} else {
		p, err = parser.Compile(pattern)
	}
	if err != nil {
		return false, err
	}
	return matcher.Match(p, text), nil
}
