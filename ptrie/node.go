package ptrie

import (
	"fmt"
	"iter"
)

// Match selects how a query is compared to the stored words.
type Match int

const (
	// Prefix matches every word starting with the query.
	Prefix Match = iota
	// Exact matches the word equal to the query only.
	Exact
)

func (m Match) String() string {
	switch m {
	case Prefix:
		return "prefix"
	case Exact:
		return "exact"
	default:
		return fmt.Sprintf("Match(%d)", int(m))
	}
}

// Node is an immutable element of a Trie. Its prefix is relative to the
// concatenation of the prefixes on the path from a root to the node.
type Node[V comparable] struct {
	prefix string
	values []V // unique, in insertion order
	kids   fan[V]
}

// NewNode returns a node with the given prefix and values. Repeated values
// are stored once.
func NewNode[V comparable](prefix string, values ...V) *Node[V] {
	return &Node[V]{
		prefix: prefix,
		values: union(nil, values...),
	}
}

func newLeaf[V comparable](prefix string, val V) *Node[V] {
	return &Node[V]{
		prefix: prefix,
		values: []V{val},
	}
}

// Prefix returns the prefix of the node.
func (n *Node[V]) Prefix() string {
	return n.prefix
}

// Len returns the number of values attached to the node itself.
func (n *Node[V]) Len() int {
	return len(n.values)
}

// Add returns a node having the value attached to the word. The word is
// relative to the node and has to share a common prefix with it.
//
// The receiver is not modified.
func (n *Node[V]) Add(word string, val V) (*Node[V], error) {
	if err := checkWord(word); err != nil {
		return nil, err
	}

	return n.add(word, val)
}

func (n *Node[V]) add(word string, val V) (*Node[V], error) {
	np, nw := commonPrefixLen(n.prefix, word, true)

	if np == 0 {
		return nil, fmt.Errorf("node %q has no common prefix with word %q: %w", n.prefix, word, ErrInvalidArgument)
	}

	var (
		tailP = suffix(n.prefix, np)
		tailW = suffix(word, nw)
	)

	switch {
	case tailP == "" && tailW == "":
		// prefix:hello - word:hello
		values := union(n.values, val)
		if len(values) == len(n.values) {
			return n, nil // already there
		}

		return &Node[V]{prefix: n.prefix, values: values, kids: n.kids}, nil

	case tailP == "":
		// prefix:hell - word:hello
		var (
			key = keyOf(tailW)
			kid = n.kids.get(key)
		)

		if kid == nil {
			kid = newLeaf(tailW, val)
		} else {
			next, err := kid.add(tailW, val)
			if err != nil {
				return nil, err
			}
			if next == kid {
				return n, nil
			}
			kid = next
		}

		return &Node[V]{prefix: n.prefix, values: n.values, kids: n.kids.with(key, kid)}, nil

	case tailW == "":
		// prefix:hello - word:hell
		var kids fan[V]

		return &Node[V]{
			prefix: word,
			values: []V{val},
			kids:   kids.with(keyOf(tailP), n.pushDown(tailP)),
		}, nil

	default:
		// prefix:hello - word:help
		var kids fan[V]

		kids = kids.with(keyOf(tailP), n.pushDown(tailP))
		kids = kids.with(keyOf(tailW), newLeaf(tailW, val))

		return &Node[V]{prefix: n.prefix[:np], kids: kids}, nil
	}
}

// pushDown returns a copy of the node with a shorter prefix sharing the
// values and the children.
func (n *Node[V]) pushDown(prefix string) *Node[V] {
	return &Node[V]{prefix: prefix, values: n.values, kids: n.kids}
}

// Values returns a sequence of values matching the query. The query is
// relative to the node and is compared ignoring case, for Exact matches too.
// The node is walked lazily while the sequence is ranged over.
func (n *Node[V]) Values(query string, match Match) iter.Seq[V] {
	return func(yield func(V) bool) {
		n.find(query, match, yield)
	}
}

// find descends to the node matching the query and yields its values. It
// returns false once yield asked to stop.
func (n *Node[V]) find(query string, match Match, yield func(V) bool) bool {
	for cur := n; ; {
		np, nq := commonPrefixLen(cur.prefix, query, true)

		if nq == 0 {
			return true // no match on this branch
		}

		if nq == len(query) {
			// the query ends within the node's prefix
			switch {
			case match == Prefix:
				return cur.walk(yield)
			case np == len(cur.prefix):
				return cur.emit(yield)
			default:
				return true // the prefix is longer than the query
			}
		}

		// a child is reached only through the whole prefix, a partly
		// consumed one means the query diverged
		if np < len(cur.prefix) {
			return true
		}

		query = suffix(query, nq)

		if cur = cur.kids.get(keyOf(query)); cur == nil {
			return true
		}
	}
}

// emit yields the node's own values.
func (n *Node[V]) emit(yield func(V) bool) bool {
	for _, val := range n.values {
		if !yield(val) {
			return false
		}
	}

	return true
}

// walk yields the values of the node and all its descendants, depth-first.
func (n *Node[V]) walk(yield func(V) bool) bool {
	if !n.emit(yield) {
		return false
	}

	for _, kid := range n.kids.kids {
		if !kid.walk(yield) {
			return false
		}
	}

	return true
}

// Traverse calls visit for the node and then for every descendant, depth
// first, children in insertion order. The values passed to visit are a copy.
func (n *Node[V]) Traverse(depth int, visit func(depth int, prefix string, values []V)) {
	visit(depth, n.prefix, append([]V{}, n.values...))

	for _, kid := range n.kids.kids {
		kid.Traverse(depth+1, visit)
	}
}

// union returns the set extended with new values. The set is returned as is
// when nothing was added, otherwise a new slice is allocated.
func union[V comparable](set []V, values ...V) []V {
	result := set

	for _, val := range values {
		if contains(result, val) {
			continue
		}

		if len(result) == len(set) {
			// copy on first write
			result = make([]V, len(set), len(set)+len(values))
			copy(result, set)
		}

		result = append(result, val)
	}

	return result
}

func contains[V comparable](set []V, val V) bool {
	for _, v := range set {
		if v == val {
			return true
		}
	}

	return false
}
