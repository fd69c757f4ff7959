package Trees

import (
	"golang.org/x/exp/constraints"
)

// BSTree is a binary search tree with no repeated values. It doesn't
// rebalance itself: the shape, and so the height D, is decided entirely by
// the order of insertions and deletions. D is O(log n) for a tree made by
// Build, but degrades to O(n) for sorted insertion order.
// The zero value is an empty tree ready to use.
type BSTree[T constraints.Ordered] struct {
	root *node[T] // nil when the tree is empty.
	sz   uint
}

var _ Tree[int] = (*BSTree[int])(nil)

// New returns an empty BSTree.
func New[T constraints.Ordered]() *BSTree[T] {
	return &BSTree[T]{}
}

// Build a BSTree from the given slice by picking the middle element of each
// range as the root of the corresponding subtree. The resulting tree has the
// minimal height ceil(log2(n+1)).
// The slice must be sorted in ascending order and mustn't contain duplicate
// elements. If safe==true, this function checks the conditions and returns an
// InvalidSliceError when they are broken. Otherwise it is up to the caller to
// ensure them, an unsorted slice gives a tree where Corrupt() is true.
// The slice isn't retained.
// Time: O(n). Recursive.
func Build[T constraints.Ordered](sli []T, safe bool) (*BSTree[T], error) {
	if safe {
		for i := 1; i < len(sli); i++ {
			if !(sli[i-1] < sli[i]) {
				return nil, InvalidSliceError[T]{sli[i-1], sli[i], i}
			}
		}
	}
	return &BSTree[T]{build(sli, 0, len(sli)-1), uint(len(sli))}, nil
}

// Size returns the number of keys in the tree.
// Time: O(1); Space: O(1)
func (u *BSTree[T]) Size() uint {
	return u.sz
}

// Empty reports whether the tree holds no keys.
func (u *BSTree[T]) Empty() bool {
	return u.root == nil
}

// Clear drops every node. O(1), the nodes are left to the garbage collector.
func (u *BSTree[T]) Clear() {
	u.root, u.sz = nil, 0
}

// Height [Tree.Height]. Recursive.
// Time: O(n)
func (u *BSTree[T]) Height() uint {
	return height(u.root)
}

// Search [Tree.Search]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Search(v T) (T, bool) {
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if v == cur.v {
			return cur.v, true
		} else {
			cur = cur.r
		}
	}
	return *new(T), false
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Has(v T) bool {
	_, ok := u.Search(v)
	return ok
}

// Insert [Tree.Insert]. Inserting a key that already exists leaves the tree
// untouched.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Insert(v T) bool {
	slot := &u.root
	for cur := *slot; cur != nil; cur = *slot {
		if v < cur.v {
			slot = &cur.l
		} else if v == cur.v {
			return false
		} else {
			slot = &cur.r
		}
	}
	*slot = &node[T]{v: v}
	u.sz++
	return true
}

// delete v from the subtree rooting at cur recursively. It returns the node
// that takes the place of cur, which the caller stores back into its slot, and
// whether v was found.
// A node with two children takes over the key of its in-order successor, which
// is then deleted from the right subtree; the successor has no left child so
// that call ends in one of the single child cases.
func (u *BSTree[T]) delete(cur *node[T], v T) (*node[T], bool) {
	if cur == nil {
		return nil, false
	}
	var deleted bool
	if v < cur.v {
		cur.l, deleted = u.delete(cur.l, v)
	} else if v > cur.v {
		cur.r, deleted = u.delete(cur.r, v)
	} else if cur.l == nil {
		return cur.r, true
	} else if cur.r == nil {
		return cur.l, true
	} else {
		cur.v = minNode(cur.r).v
		cur.r, deleted = u.delete(cur.r, cur.v)
	}
	return cur, deleted
}

// Delete [Tree.Delete]. Recursive.
// Deleting a missing key is a no-op.
// Time: O(D)
func (u *BSTree[T]) Delete(v T) bool {
	var deleted bool
	if u.root, deleted = u.delete(u.root, v); deleted {
		u.sz--
	}
	return deleted
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return minNode(u.root).v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Maximum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return maxNode(u.root).v, true
}

func preOrder[T constraints.Ordered](n *node[T], visit func(T) bool) bool {
	return n == nil || visit(n.v) && preOrder(n.l, visit) && preOrder(n.r, visit)
}

func inOrder[T constraints.Ordered](n *node[T], visit func(T) bool) bool {
	return n == nil || inOrder(n.l, visit) && visit(n.v) && inOrder(n.r, visit)
}

func postOrder[T constraints.Ordered](n *node[T], visit func(T) bool) bool {
	return n == nil || postOrder(n.l, visit) && postOrder(n.r, visit) && visit(n.v)
}

// PreOrder [Tree.PreOrder]. Recursive.
// Time: O(n); Space: O(D)
func (u *BSTree[T]) PreOrder(visit func(T) bool) {
	preOrder(u.root, visit)
}

// InOrder [Tree.InOrder]. Recursive.
// Time: O(n); Space: O(D)
func (u *BSTree[T]) InOrder(visit func(T) bool) {
	inOrder(u.root, visit)
}

// PostOrder [Tree.PostOrder]. Recursive.
// Time: O(n); Space: O(D)
func (u *BSTree[T]) PostOrder(visit func(T) bool) {
	postOrder(u.root, visit)
}

// corrupt checks that every key of the subtree rooting at cur lies strictly
// inside (lo, hi). A nil bound is unbounded.
func corrupt[T constraints.Ordered](cur *node[T], lo, hi *T) bool {
	if cur == nil {
		return false
	}
	if lo != nil && !(*lo < cur.v) || hi != nil && !(cur.v < *hi) {
		return true
	}
	return corrupt(cur.l, lo, &cur.v) || corrupt(cur.r, &cur.v, hi)
}

// Corrupt [Tree.Corrupt]. Recursive.
// Unlike a parent/child check this compares each key against all of its
// ancestors' bounds.
// Time: O(n)
func (u *BSTree[T]) Corrupt() bool {
	return corrupt(u.root, nil, nil)
}
