package Stacks

import (
	"errors"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// ErrEmptyStack is returned by Pop and Top on an empty stack.
var ErrEmptyStack = errors.New("stack is empty")

// Stack is a typed last in first out stack on top of an array stack.
type Stack[T any] struct {
	s *arraystack.Stack
}

func New[T any]() *Stack[T] {
	return &Stack[T]{arraystack.New()}
}

func (u *Stack[T]) Push(v T) {
	u.s.Push(v)
}

// Pop the top element.
func (u *Stack[T]) Pop() (T, error) {
	v, ok := u.s.Pop()
	if !ok {
		return *new(T), ErrEmptyStack
	}
	return v.(T), nil
}

// Top returns the top element without removing it.
func (u *Stack[T]) Top() (T, error) {
	v, ok := u.s.Peek()
	if !ok {
		return *new(T), ErrEmptyStack
	}
	return v.(T), nil
}

func (u *Stack[T]) Empty() bool {
	return u.s.Empty()
}

func (u *Stack[T]) Size() int {
	return u.s.Size()
}
