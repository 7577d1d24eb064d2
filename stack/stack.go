// File: stack/stack.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lock-free LIFO stack. Push and Pop are single-CAS publications against a
// packed head word; failed CAS means another publication landed first and
// the operation re-reads and retries. Popped slots are retired onto an
// internal free list and recycled with a fresh tag, never handed back to
// the allocator while a stale handle could still match them.

package stack

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/momentics/hioload-sync/api"
	"github.com/momentics/hioload-sync/backoff"
)

// Stack is a concurrent LIFO over a slot arena.
//
// Any number of goroutines may Push and Pop concurrently; no operation ever
// blocks another, and some operation always completes in a bounded number
// of steps regardless of how the scheduler interleaves the rest.
type Stack[T any] struct {
	arena *arena[T]
	paced bool
	proto backoff.Backoff

	_        cpu.CacheLinePad
	head     atomic.Uint64
	_        cpu.CacheLinePad
	freeList atomic.Uint64
	_        cpu.CacheLinePad
	size     atomic.Int64
	_        cpu.CacheLinePad
	retries  atomic.Uint64
}

var _ api.Stack[any] = (*Stack[any])(nil)

// New constructs an empty stack.
func New[T any](opts ...Option) *Stack[T] {
	cfg := options{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}
	s := &Stack[T]{arena: newArena[T](cfg.capacity)}
	if cfg.boLimit > 0 {
		s.paced = true
		s.proto = backoff.New(backoff.WithLimit(cfg.boLimit))
	}
	return s
}

// Push places v on top of the stack. It panics only when the arena bound
// set by WithCapacity is exceeded.
func (s *Stack[T]) Push(v T) {
	idx := s.allocSlot()
	sl := s.arena.slot(idx)
	sl.val = v
	sl.tag++
	h := pack(idx, sl.tag)

	b := s.proto
	for {
		old := s.head.Load()
		sl.next.Store(old)
		if s.head.CompareAndSwap(old, h) {
			s.size.Add(1)
			return
		}
		s.retries.Add(1)
		if s.paced {
			b.Wait()
		}
	}
}

// Pop removes and returns the most recently pushed element. An empty stack
// reports found=false from the first head read, with no retry and no
// allocation.
func (s *Stack[T]) Pop() (v T, ok bool) {
	b := s.proto
	for {
		old := s.head.Load()
		if old == nilHandle {
			return v, false
		}
		idx := slotIndex(old)
		sl := s.arena.slot(idx)
		next := sl.next.Load()
		// Equality against the packed (index, tag) pair is the only safe
		// re-validation: the head may be non-empty yet hold a different
		// element, or the same slot under a newer tag.
		if s.head.CompareAndSwap(old, next) {
			s.size.Add(-1)
			v = sl.val
			var zero T
			sl.val = zero
			s.freeSlot(idx)
			return v, true
		}
		s.retries.Add(1)
		if s.paced {
			b.Wait()
		}
	}
}

// Len reports the element count. It is exact once all users have
// quiesced; during concurrent traffic it may lag individual operations.
func (s *Stack[T]) Len() int {
	return int(s.size.Load())
}

// Retries reports the cumulative number of failed CAS attempts across
// push, pop and slot recycling. Useful as a contention gauge.
func (s *Stack[T]) Retries() uint64 {
	return s.retries.Load()
}

// Drain pops until the stack reports empty, invoking fn for each element
// when fn is non-nil, and returns the number of elements removed.
// Call it only after all goroutines using the stack have been joined;
// under concurrent pushes the emptiness observation is meaningless.
func (s *Stack[T]) Drain(fn func(T)) int {
	n := 0
	for {
		v, ok := s.Pop()
		if !ok {
			return n
		}
		if fn != nil {
			fn(v)
		}
		n++
	}
}

// allocSlot takes a recycled slot from the free list, falling back to the
// arena bump allocator when the list is empty.
func (s *Stack[T]) allocSlot() uint32 {
	for {
		old := s.freeList.Load()
		if old == nilHandle {
			return s.arena.grow()
		}
		idx := slotIndex(old)
		next := s.arena.slot(idx).next.Load()
		if s.freeList.CompareAndSwap(old, next) {
			return idx
		}
		s.retries.Add(1)
	}
}

// freeSlot retires a popped slot onto the free list under a fresh tag.
// From this point the old (index, tag) handle can no longer match any
// list head, so stalled readers holding it will fail their CAS and rescan.
func (s *Stack[T]) freeSlot(idx uint32) {
	sl := s.arena.slot(idx)
	sl.tag++
	h := pack(idx, sl.tag)
	for {
		old := s.freeList.Load()
		sl.next.Store(old)
		if s.freeList.CompareAndSwap(old, h) {
			return
		}
		s.retries.Add(1)
	}
}
