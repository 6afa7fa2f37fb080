package types

// Pattern represents a compiled regular expression.
//
// A Pattern can be matched against any number of texts by passing it to
// [matcher.Match]. It is safe for concurrent use by multiple goroutines:
// matching interns new derivative nodes into the pattern's store, and the
// store is concurrency-safe.
type Pattern struct {
	root   *Node
	store  *Store
	source string
}

// NewPattern creates a new Pattern from a parsed expression root and the
// store its nodes were interned into.
func NewPattern(root *Node, store *Store, source string) *Pattern {
	return &Pattern{
		root:   root,
		store:  store,
		source: source,
	}
}

// Root returns the root node of the compiled expression.
func (p *Pattern) Root() *Node {
	return p.root
}

// Store returns the canonicalization store the pattern's nodes live in.
// Derivatives computed while matching are interned into the same store.
func (p *Pattern) Store() *Store {
	return p.store
}

// Source returns the original pattern text.
func (p *Pattern) Source() string {
	return p.source
}

// String returns the original pattern text.
func (p *Pattern) String() string {
	return p.source
}
