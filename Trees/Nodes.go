package Trees

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// A node in the BSTree.
// A node is owned by exactly one slot: either the root of the tree or the
// l/r field of its parent. There are no back references.
type node[T constraints.Ordered] struct {
	v    T
	l, r *node[T]
}

// build a subtree from the closed range sli[lo:hi+1] recursively, choosing
// the midpoint as the root. lo > hi is the empty range.
// Time: O(n)
func build[T constraints.Ordered](sli []T, lo, hi int) *node[T] {
	if lo > hi {
		return nil
	}
	mid := lo + (hi-lo)/2
	return &node[T]{sli[mid], build(sli, lo, mid-1), build(sli, mid+1, hi)}
}

// minNode descends strictly left from n. n mustn't be nil.
// Time: O(D); Space: O(1)
func minNode[T constraints.Ordered](n *node[T]) *node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// maxNode descends strictly right from n. n mustn't be nil.
// Time: O(D); Space: O(1)
func maxNode[T constraints.Ordered](n *node[T]) *node[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}

func height[T constraints.Ordered](n *node[T]) uint {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.l), height(n.r))
}

// InvalidSliceError is returned by a checked Build when the given slice
// isn't strictly ascending. Prev and Next are the first offending neighbours
// found, At is the index of Next.
type InvalidSliceError[T any] struct {
	Prev, Next T
	At         int
}

func (e InvalidSliceError[T]) Error() string {
	return fmt.Sprintf("slice is not strictly ascending at index %d: %v then %v", e.At, e.Prev, e.Next)
}
