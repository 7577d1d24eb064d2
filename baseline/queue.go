// File: baseline/queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Mutex-guarded FIFO queue over a growable ring store. The backing queue
// is deliberately unsynchronized, so every operation takes the lock; this
// is the blocking comparator for producer/consumer handoff scenarios.

package baseline

import (
	"sync"

	"github.com/eapache/queue"
)

// Queue is a locked unbounded FIFO.
type Queue[T any] struct {
	mu sync.Mutex
	q  *queue.Queue
}

// NewQueue constructs an empty queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{q: queue.New()}
}

// Enqueue appends v at the tail.
func (q *Queue[T]) Enqueue(v T) {
	q.mu.Lock()
	q.q.Add(v)
	q.mu.Unlock()
}

// Dequeue removes and returns the oldest element.
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.q.Length() == 0 {
		return zero, false
	}
	return q.q.Remove().(T), true
}

// Peek returns the oldest element without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	var zero T
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.q.Length() == 0 {
		return zero, false
	}
	return q.q.Peek().(T), true
}

// Len returns the current number of elements.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.q.Length()
}
