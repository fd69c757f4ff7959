package Queues

// ArrayQueue is a Queue backed by a circular array that grows by 3/2 when
// full. The zero value isn't usable, create it with NewArrayQueue.
type ArrayQueue[T any] struct {
	sz, head, tail uint
	content        []T
}

var _ Queue[int] = (*ArrayQueue[int])(nil)

// NewArrayQueue with room for initCap items before the first resize.
// initCap is raised to 2 if smaller so that growth always makes progress.
func NewArrayQueue[T any](initCap uint) *ArrayQueue[T] {
	return &ArrayQueue[T]{content: make([]T, max(initCap, 2))}
}

func (u *ArrayQueue[T]) Empty() bool {
	return u.sz == 0
}

// resize copies the live items to the front of a new array of newLen.
// newLen must be at least u.sz.
func (u *ArrayQueue[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if u.head < u.tail {
		copy(nc, u.content[u.head:u.tail])
	} else if u.sz > 0 {
		n := copy(nc, u.content[u.head:])
		copy(nc[n:], u.content[:u.tail])
	}
	u.content = nc
	u.head, u.tail = 0, u.sz%newLen
}

// Shrink the underlying array to fit the items.
func (u *ArrayQueue[T]) Shrink() {
	u.resize(max(u.sz, 2))
}

// Clear the queue while keeping the underlying array.
func (u *ArrayQueue[T]) Clear() {
	clear(u.content)
	u.tail, u.head, u.sz = 0, 0, 0
}

func (u *ArrayQueue[T]) Size() uint {
	return u.sz
}

func (u *ArrayQueue[T]) Push(item T) {
	if u.sz == uint(len(u.content)) {
		u.resize(u.sz * 3 / 2)
	}
	u.content[u.tail] = item
	u.tail = (u.tail + 1) % uint(len(u.content))
	u.sz++
}

func (u *ArrayQueue[T]) Pop() (T, error) {
	if u.Empty() {
		return *new(T), ErrEmptyQueue
	}
	t := u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return t, nil
}

func (u *ArrayQueue[T]) Peek() (T, bool) {
	if u.Empty() {
		return *new(T), false
	}
	return u.content[u.head], true
}
