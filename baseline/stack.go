// File: baseline/stack.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Mutex-guarded LIFO stack, the pessimistic comparator for the lock-free
// stack. One lock serializes every operation, so the linked nodes need no
// atomics and can be recycled through a sync.Pool without reuse hazards.

package baseline

import (
	"sync"

	"github.com/momentics/hioload-sync/api"
	"github.com/momentics/hioload-sync/pool"
)

type node[T any] struct {
	next *node[T]
	val  T
}

// Stack is a locked LIFO with pooled nodes.
type Stack[T any] struct {
	mu    sync.Mutex
	top   *node[T]
	size  int
	nodes *pool.SyncPool[*node[T]]
}

var _ api.Stack[any] = (*Stack[any])(nil)

// NewStack constructs an empty stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{
		nodes: pool.NewSyncPool(func() *node[T] { return new(node[T]) }),
	}
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) {
	n := s.nodes.Get()
	n.val = v
	s.mu.Lock()
	n.next = s.top
	s.top = n
	s.size++
	s.mu.Unlock()
}

// Pop removes and returns the most recently pushed element.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	s.mu.Lock()
	n := s.top
	if n == nil {
		s.mu.Unlock()
		return zero, false
	}
	s.top = n.next
	s.size--
	s.mu.Unlock()

	v := n.val
	n.val = zero
	n.next = nil
	s.nodes.Put(n)
	return v, true
}

// Len returns the current number of elements.
func (s *Stack[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.size
}
