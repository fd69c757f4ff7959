package Lists

import "golang.org/x/exp/constraints"

type entry[K constraints.Ordered, V any] struct {
	k  K
	v  V
	nx *entry[K, V]
}

// Roster is a singly linked list kept in ascending order of its keys. Keys
// are unique. The zero value is an empty roster.
type Roster[K constraints.Ordered, V any] struct {
	head *entry[K, V]
	sz   int
}

// Course is the roster of a course: student IDs mapped to names.
type Course = Roster[int, string]

// Add k with value v at its ordered position. Returns false, without changing
// anything, if k is already present.
// Time: O(n)
func (u *Roster[K, V]) Add(k K, v V) bool {
	slot := &u.head
	for *slot != nil && (*slot).k < k {
		slot = &(*slot).nx
	}
	if *slot != nil && (*slot).k == k {
		return false
	}
	*slot = &entry[K, V]{k, v, *slot}
	u.sz++
	return true
}

// Delete k. Returns false if k isn't present.
// Time: O(n)
func (u *Roster[K, V]) Delete(k K) bool {
	for slot := &u.head; *slot != nil && (*slot).k <= k; slot = &(*slot).nx {
		if (*slot).k == k {
			*slot = (*slot).nx
			u.sz--
			return true
		}
	}
	return false
}

// Find the value stored under k.
// Time: O(n)
func (u *Roster[K, V]) Find(k K) (V, bool) {
	for cur := u.head; cur != nil && cur.k <= k; cur = cur.nx {
		if cur.k == k {
			return cur.v, true
		}
	}
	return *new(V), false
}

// Each calls f on every entry in key order until f returns false.
func (u *Roster[K, V]) Each(f func(K, V) bool) {
	for cur := u.head; cur != nil; cur = cur.nx {
		if !f(cur.k, cur.v) {
			return
		}
	}
}

func (u *Roster[K, V]) Len() int {
	return u.sz
}

func (u *Roster[K, V]) Empty() bool {
	return u.head == nil
}
