package ptrie

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// KV represents a key-value pair
type KV[V comparable] struct {
	Key string
	Val V
}

// Trie is an immutable compact prefix tree. The zero value is an empty trie
// ready to use.
//
// Words are stored lower-cased and queries are lower-cased the same way, so
// lookups do not depend on the case of either.
type Trie[V comparable] struct {
	roots fan[V]
}

// New returns a new Trie initialized with the given key-value pairs.
func New[V comparable](init ...KV[V]) (*Trie[V], error) {
	var (
		trie = &Trie[V]{}
		err  error
	)

	for _, kv := range init {
		if trie, err = trie.Add(kv.Key, kv.Val); err != nil {
			return nil, err
		}
	}

	return trie, nil
}

// Add returns a new version of the trie having the value attached to the
// word. The receiver is not modified.
func (t *Trie[V]) Add(word string, val V) (*Trie[V], error) {
	if err := checkWord(word); err != nil {
		return nil, err
	}

	if t == nil {
		t = &Trie[V]{}
	}

	var (
		low  = strings.ToLower(word)
		key  = keyOf(low)
		root = t.roots.get(key)
	)

	if root == nil {
		root = newLeaf(low, val)
	} else {
		next, err := root.add(low, val)
		if err != nil {
			return nil, err
		}
		if next == root {
			return t, nil // the value is already there
		}
		root = next
	}

	return &Trie[V]{roots: t.roots.with(key, root)}, nil
}

// Values returns a sequence of values for the words matching the prefix. The
// sequence is empty if the prefix is blank or no word matches it.
func (t *Trie[V]) Values(prefix string, match Match) iter.Seq[V] {
	if t == nil || isBlank(prefix) {
		return func(func(V) bool) {}
	}

	var (
		low  = strings.ToLower(prefix)
		root = t.roots.get(keyOf(low))
	)

	if root == nil {
		return func(func(V) bool) {}
	}

	return root.Values(low, match)
}

// Traverse calls visit for every node of the trie, depth-first. Roots have
// depth 0.
func (t *Trie[V]) Traverse(visit func(depth int, prefix string, values []V)) {
	if t == nil {
		return
	}

	for _, root := range t.roots.kids {
		root.Traverse(0, visit)
	}
}

// Size returns the number of nodes in the trie.
func (t *Trie[V]) Size() int {
	var size int

	t.Traverse(func(int, string, []V) {
		size++
	})

	return size
}

// Dump writes every node on its own line as "--prefix:[values]" where the
// number of dashes is the depth of the node.
func (t *Trie[V]) Dump(w io.Writer) error {
	var err error

	t.Traverse(func(depth int, prefix string, values []V) {
		if err == nil {
			_, err = fmt.Fprintf(w, "%s%s:%v\n", strings.Repeat("-", depth), prefix, values)
		}
	})

	return err
}
