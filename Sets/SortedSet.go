package Sets

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// SortedSet keeps its elements in a sorted slice without duplicates. Lookups
// are binary searches; Put and Remove shift the slice.
// The zero value is an empty set. Sets returned by Union and Difference don't
// share memory with their operands.
type SortedSet[E cmp.Ordered] struct {
	items []E
}

var _ ExtendedSet[int, SortedSet[int]] = (*SortedSet[int])(nil)

// NewSortedSet containing the given items.
func NewSortedSet[E cmp.Ordered](items ...E) SortedSet[E] {
	s := slices.Clone(items)
	slices.Sort(s)
	return SortedSet[E]{slices.Compact(s)}
}

// Put e. Returns false if e was already present.
// Time: O(n)
func (u *SortedSet[E]) Put(e E) bool {
	i, found := slices.BinarySearch(u.items, e)
	if found {
		return false
	}
	u.items = slices.Insert(u.items, i, e)
	return true
}

// Has e.
// Time: O(log n)
func (u *SortedSet[E]) Has(e E) bool {
	_, found := slices.BinarySearch(u.items, e)
	return found
}

// Remove e. Returns false if e wasn't present.
// Time: O(n)
func (u *SortedSet[E]) Remove(e E) bool {
	i, found := slices.BinarySearch(u.items, e)
	if found {
		u.items = slices.Delete(u.items, i, i+1)
	}
	return found
}

func (u *SortedSet[E]) Size() uint {
	return uint(len(u.items))
}

// Range calls f on the elements in ascending order until f returns false.
func (u *SortedSet[E]) Range(f func(E) bool) {
	for _, e := range u.items {
		if !f(e) {
			return
		}
	}
}

// Items returns the elements in ascending order. The slice must not be modified.
func (u *SortedSet[E]) Items() []E {
	return u.items
}

// IsSubsetOf reports whether every element of u is in o, by merging both
// sorted slices.
// Time: O(n+m)
func (u *SortedSet[E]) IsSubsetOf(o SortedSet[E]) bool {
	if len(u.items) > len(o.items) {
		return false
	}
	j := 0
	for _, e := range u.items {
		for j < len(o.items) && o.items[j] < e {
			j++
		}
		if j == len(o.items) || o.items[j] != e {
			return false
		}
		j++
	}
	return true
}

// Union of u and o.
// Time: O(n+m)
func (u *SortedSet[E]) Union(o SortedSet[E]) SortedSet[E] {
	r := make([]E, 0, len(u.items)+len(o.items))
	i, j := 0, 0
	for i < len(u.items) && j < len(o.items) {
		switch c := cmp.Compare(u.items[i], o.items[j]); {
		case c < 0:
			r = append(r, u.items[i])
			i++
		case c > 0:
			r = append(r, o.items[j])
			j++
		default:
			r = append(r, u.items[i])
			i, j = i+1, j+1
		}
	}
	r = append(r, u.items[i:]...)
	r = append(r, o.items[j:]...)
	return SortedSet[E]{r}
}

// Difference returns the elements of u that aren't in o.
// Time: O(n+m)
func (u *SortedSet[E]) Difference(o SortedSet[E]) SortedSet[E] {
	r := make([]E, 0, len(u.items))
	j := 0
	for _, e := range u.items {
		for j < len(o.items) && o.items[j] < e {
			j++
		}
		if j == len(o.items) || o.items[j] != e {
			r = append(r, e)
		}
	}
	return SortedSet[E]{r}
}

func (u *SortedSet[E]) Equal(o SortedSet[E]) bool {
	return slices.Equal(u.items, o.items)
}

// String formats the set as {a, b, c}.
func (u SortedSet[E]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, e := range u.items {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, e)
	}
	sb.WriteByte('}')
	return sb.String()
}

// Key is a canonical encoding of the set, equal for equal sets. Elements are
// separated by the unit separator control character.
func (u *SortedSet[E]) Key() string {
	var sb strings.Builder
	for i, e := range u.items {
		if i > 0 {
			sb.WriteByte('\x1f')
		}
		fmt.Fprint(&sb, e)
	}
	return sb.String()
}
