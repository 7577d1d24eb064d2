// File: api/stack.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// LIFO stack contract shared by the lock-free and mutex-based implementations.

package api

// Stack is a concurrent last-in-first-out container.
//
// Push and Pop are safe for any number of concurrent callers. Pop reports
// found=false when the stack is observed empty; emptiness is an ordinary
// result, never an error.
type Stack[T any] interface {
	// Push places v on top of the stack.
	Push(v T)
	// Pop removes and returns the most recently pushed element.
	Pop() (T, bool)
	// Len returns the current number of elements.
	Len() int
}
