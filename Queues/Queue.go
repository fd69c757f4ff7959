package Queues

import "errors"

// ErrEmptyQueue is returned when popping from an empty queue.
var ErrEmptyQueue = errors.New("queue is empty: cannot pop")

// Queue is a first in first out container.
type Queue[T any] interface {
	Push(item T)
	// Pop the oldest item. Returns ErrEmptyQueue when there's nothing to pop.
	Pop() (T, error)
	// Peek at the oldest item without removing it. The bool is false on an
	// empty queue.
	Peek() (T, bool)
	Empty() bool
	Size() uint
}
