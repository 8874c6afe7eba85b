package ptrie

import (
	"github.com/hideo55/go-popcount"
)

// fanWidth is the number of first characters covered by the fan bitmap.
const fanWidth = 256

// fan is a persistent index of child nodes keyed by the fold key of the first
// character of their prefixes (see keyOf).
//
// Children are kept in insertion order. Characters below fanWidth are also
// registered in a 256-bit bitmap; the popcount of the bitmap bits below a
// character is its position in rank, which holds the child's index in kids.
// Other characters are found by a scan.
//
// A fan is never modified in place: with returns a copy that shares every
// unchanged slice with the receiver.
type fan[V comparable] struct {
	bitmap [fanWidth / 64]uint64
	rank   []int32
	kids   []*Node[V]
}

// pos returns the rank position of a character and whether it is present.
// The character must be below fanWidth.
func (f *fan[V]) pos(key rune) (int, bool) {
	var (
		ofs = key >> 6
		bit = uint64(1) << (key & 0x3F) // the lowest 6 bits (2**6 == 64)
		idx = int(popcount.Count(f.bitmap[ofs] & (bit - 1)))
	)

	for j := rune(0); j < ofs; j++ {
		idx += int(popcount.Count(f.bitmap[j]))
	}

	return idx, f.bitmap[ofs]&bit != 0
}

// index returns the index of a child in kids or -1.
func (f *fan[V]) index(key rune) int {
	if 0 <= key && key < fanWidth {
		idx, ok := f.pos(key)
		if !ok {
			return -1
		}

		return int(f.rank[idx])
	}

	for i, kid := range f.kids {
		if keyOf(kid.prefix) == key {
			return i
		}
	}

	return -1
}

// get returns the child for the given first character or nil.
func (f *fan[V]) get(key rune) *Node[V] {
	if i := f.index(key); i >= 0 {
		return f.kids[i]
	}

	return nil
}

// with returns a fan having the node under the given key, replacing the
// previous child if any.
func (f fan[V]) with(key rune, node *Node[V]) fan[V] {
	if i := f.index(key); i >= 0 {
		kids := make([]*Node[V], len(f.kids))
		copy(kids, f.kids)
		kids[i] = node

		f.kids = kids // bitmap and rank stay shared

		return f
	}

	var (
		total = len(f.kids)
		kids  = make([]*Node[V], total+1)
	)

	copy(kids, f.kids)
	kids[total] = node

	if 0 <= key && key < fanWidth {
		var (
			idx, _ = f.pos(key)
			rank   = make([]int32, len(f.rank)+1)
		)

		copy(rank[:idx], f.rank[:idx])
		rank[idx] = int32(total)
		copy(rank[idx+1:], f.rank[idx:])

		f.bitmap[key>>6] |= uint64(1) << (key & 0x3F) // f is a copy
		f.rank = rank
	}

	f.kids = kids

	return f
}

// len returns the number of children.
func (f *fan[V]) len() int {
	return len(f.kids)
}
