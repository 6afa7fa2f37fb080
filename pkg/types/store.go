package types

import (
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v3"
)

// pairKey identifies a binary node by the canonical identities of its
// operands. The pair is ordered: (a, b) and (b, a) are distinct keys.
type pairKey struct {
	left  uint64
	right uint64
}

// Store is the canonicalization arena for expression nodes.
//
// All node construction goes through a Store. Each constructor memoizes on
// the operand identities, so structurally identical sub-expressions are
// represented by one shared instance and can be compared by pointer.
// Entries are never evicted: the store grows for as long as it is used and
// is released as a whole when the patterns referencing it are released.
//
// A Store is safe for concurrent use. The memo tables are concurrent maps;
// losing an insertion race wastes one candidate node, but every caller
// receives the instance that won, so canonical identity is preserved.
type Store struct {
	empty   *Node
	epsilon *Node

	nextID   atomic.Uint64
	literals *xsync.MapOf[rune, *Node]
	unions   *xsync.MapOf[pairKey, *Node]
	concats  *xsync.MapOf[pairKey, *Node]
	stars    *xsync.MapOf[uint64, *Node]
}

// NewStore creates an empty store holding only the Empty and Epsilon
// singletons.
func NewStore() *Store {
	s := &Store{
		literals: xsync.NewMapOf[rune, *Node](),
		unions:   xsync.NewMapOf[pairKey, *Node](),
		concats:  xsync.NewMapOf[pairKey, *Node](),
		stars:    xsync.NewMapOf[uint64, *Node](),
	}
	s.empty = s.alloc(&Node{Kind: KindEmpty})
	s.epsilon = s.alloc(&Node{Kind: KindEpsilon})
	return s
}

// alloc assigns the next canonical identity. IDs are unique but not dense:
// a node that loses an insertion race is discarded along with its ID.
func (s *Store) alloc(n *Node) *Node {
	n.ID = s.nextID.Add(1)
	return n
}

// Empty returns the singleton node matching no string at all.
func (s *Store) Empty() *Node {
	return s.empty
}

// Epsilon returns the singleton node matching only the empty string.
func (s *Store) Epsilon() *Node {
	return s.epsilon
}

// Literal returns the canonical node matching exactly the one-rune string r.
func (s *Store) Literal(r rune) *Node {
	if n, ok := s.literals.Load(r); ok {
		return n
	}
	n, _ := s.literals.LoadOrStore(r, s.alloc(&Node{Kind: KindLiteral, Rune: r}))
	return n
}

// Union returns the canonical node matching whatever a or b matches.
// Identical operands collapse to the operand itself. The memo key is the
// ordered pair (a, b): Union(a, b) and Union(b, a) are distinct nodes.
// Operands must be non-nil nodes from this store.
func (s *Store) Union(a, b *Node) *Node {
	if a == b {
		return a
	}
	key := pairKey{a.ID, b.ID}
	if n, ok := s.unions.Load(key); ok {
		return n
	}
	n, _ := s.unions.LoadOrStore(key, s.alloc(&Node{Kind: KindUnion, Left: a, Right: b}))
	return n
}

// Concat returns the canonical node matching an a-match followed by a
// b-match. Unlike Union there is no identity collapse: Concat(a, a) matches
// a doubled, not a. Operands must be non-nil nodes from this store.
func (s *Store) Concat(a, b *Node) *Node {
	key := pairKey{a.ID, b.ID}
	if n, ok := s.concats.Load(key); ok {
		return n
	}
	n, _ := s.concats.LoadOrStore(key, s.alloc(&Node{Kind: KindConcat, Left: a, Right: b}))
	return n
}

// Star returns the canonical node matching zero or more a-matches.
// The operand must be a non-nil node from this store.
func (s *Store) Star(a *Node) *Node {
	if n, ok := s.stars.Load(a.ID); ok {
		return n
	}
	n, _ := s.stars.LoadOrStore(a.ID, s.alloc(&Node{Kind: KindStar, Left: a}))
	return n
}

// Size returns the number of canonical nodes the store currently holds,
// including the two singletons.
func (s *Store) Size() int {
	return 2 + s.literals.Size() + s.unions.Size() + s.concats.Size() + s.stars.Size()
}
