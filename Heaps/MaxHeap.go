package Heaps

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// DefaultCapacity of the underlying array of a MaxHeap.
const DefaultCapacity = 1000

// ErrHeapUnderflow is returned when deleting from an empty heap.
var ErrHeapUnderflow = errors.New("heap underflow")

// MaxHeap is a binary max heap stored in an array. Every element is greater
// than or equal to its children, so the maximum is always at index 0.
// The array starts with the given capacity and grows past it when full.
type MaxHeap[T constraints.Ordered] struct {
	elements []T
	count    int
}

// NewMaxHeap with room for capacity elements. capacity<=0 means DefaultCapacity.
func NewMaxHeap[T constraints.Ordered](capacity int) *MaxHeap[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &MaxHeap[T]{elements: make([]T, capacity)}
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }

// Len returns the number of elements.
func (u *MaxHeap[T]) Len() int {
	return u.count
}

// Insert v by moving smaller parents down until v's slot is found.
// Time: O(log n)
func (u *MaxHeap[T]) Insert(v T) {
	if u.count == len(u.elements) {
		u.elements = append(u.elements, v)
	}
	i := u.count
	for p := parent(i); i > 0 && u.elements[p] < v; p = parent(i) {
		u.elements[i] = u.elements[p]
		i = p
	}
	u.elements[i] = v
	u.count++
}

// Maximum of the heap. The bool is false when the heap is empty.
// Time: O(1)
func (u *MaxHeap[T]) Maximum() (T, bool) {
	if u.count == 0 {
		return *new(T), false
	}
	return u.elements[0], true
}

// maxHeapify sinks the element at i until both children are not larger. Recursive.
// Time: O(log n)
func (u *MaxHeap[T]) maxHeapify(i int) {
	largest := i
	if l := left(i); l < u.count && u.elements[l] > u.elements[largest] {
		largest = l
	}
	if r := right(i); r < u.count && u.elements[r] > u.elements[largest] {
		largest = r
	}
	if largest != i {
		u.elements[i], u.elements[largest] = u.elements[largest], u.elements[i]
		u.maxHeapify(largest)
	}
}

// DeleteMaximum removes and returns the maximum. The last element takes its
// place and is sunk down.
// Time: O(log n)
func (u *MaxHeap[T]) DeleteMaximum() (T, error) {
	if u.count < 1 {
		return *new(T), ErrHeapUnderflow
	}
	largest := u.elements[0]
	u.count--
	u.elements[0] = u.elements[u.count]
	u.elements[u.count] = *new(T)
	u.maxHeapify(0)
	return largest, nil
}

// Elements returns the live part of the underlying array in heap order. The
// slice aliases the heap and is only valid until the next modification.
func (u *MaxHeap[T]) Elements() []T {
	return u.elements[:u.count]
}

// Valid reports whether the heap property holds for every element.
func (u *MaxHeap[T]) Valid() bool {
	for i := 1; i < u.count; i++ {
		if u.elements[parent(i)] < u.elements[i] {
			return false
		}
	}
	return true
}
