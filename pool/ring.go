// File: pool/ring.go
// Author: momentics <momentics@gmail.com>
//
// Lock-free ring buffer for single-producer/single-consumer handoff.
// The producer owns the tail cursor, the consumer owns the head cursor;
// each publishes its cursor move only after finishing with the slot, so
// neither side ever observes a half-written element.

package pool

import (
	"sync/atomic"

	"github.com/momentics/hioload-sync/api"
)

// RingBuffer is a lock-free fixed-capacity SPSC ring (power-of-two size).
type RingBuffer[T any] struct {
	data []T
	mask uint64
	_    [64]byte // Padding for hot/cold separation
	head atomic.Uint64
	_    [64]byte
	tail atomic.Uint64
}

var _ api.Ring[any] = (*RingBuffer[any])(nil)

// NewRingBuffer allocates a ring buffer with size (must be power of two).
func NewRingBuffer[T any](size uint64) *RingBuffer[T] {
	if size == 0 || (size&(size-1)) != 0 {
		panic("ring buffer size must be power of two")
	}
	return &RingBuffer[T]{
		data: make([]T, size),
		mask: size - 1,
	}
}

// Enqueue adds an item; returns false if full. Producer side only.
func (r *RingBuffer[T]) Enqueue(val T) bool {
	tail := r.tail.Load()
	head := r.head.Load()
	if tail-head == uint64(len(r.data)) {
		return false
	}
	r.data[tail&r.mask] = val
	// Cursor moves only after the slot write, publishing it.
	r.tail.Store(tail + 1)
	return true
}

// Dequeue removes and returns (item, ok); ok==false if empty. Consumer
// side only.
func (r *RingBuffer[T]) Dequeue() (res T, ok bool) {
	head := r.head.Load()
	tail := r.tail.Load()
	if head == tail {
		return res, false
	}
	idx := head & r.mask
	res = r.data[idx]
	var zero T
	r.data[idx] = zero
	r.head.Store(head + 1)
	return res, true
}

// Len returns number of items in the buffer.
func (r *RingBuffer[T]) Len() int {
	return int(r.tail.Load() - r.head.Load())
}

// Cap returns logical buffer capacity.
func (r *RingBuffer[T]) Cap() int {
	return len(r.data)
}
