// Package ptrie defines a persistent (immutable) compact prefix tree that maps
// string keys to sets of values.
//
// A Trie consists of root Nodes keyed by the first character of a word. Every
// Node carries a prefix relative to its parent, the values attached to the
// word spelled by the path from a root down to the node, and its children.
// No two children of a node start with the same character.
//
// Nodes are never modified after construction. Add returns a new version of
// the trie: the nodes on the path from the root to the point of insertion are
// rewritten, every other subtree is shared between the old and the new
// version. Any number of goroutines may read any version concurrently.
//
// Insertion cases:
// ---------------
//
//	node prefix  word     result
//	-----------  -------  --------------------------------------------
//	"hello"      "hello"  "hello" with the value added
//	"hell"       "hello"  "hell" -> "o"                 (child added)
//	"hello"      "hell"   "hell" -> "o"                 (node pushed down)
//	"hello"      "help"   "hel"  -> "lo", "p"           (split)
//
// Example trie:
// ------------
//
//	                ,-- [l:{20}] -- [o:{10}]
//	[hel:{}] -------+
//	                `-- [p:{30}]
//
// The trie above contains the words "hello", "hell" and "help".
package ptrie
