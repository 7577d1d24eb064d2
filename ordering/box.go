// File: ordering/box.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Single-assignment publication cell. The producer fills the payload with
// a plain write and then raises an atomic ready flag; consumers that
// observe the flag are ordered after the payload write and can read it
// without further synchronization.

package ordering

import (
	"runtime"
	"sync/atomic"
)

// Box publishes one value from one producer to any number of consumers.
// Exactly one goroutine may call Put, exactly once.
type Box[T any] struct {
	val   T
	ready atomic.Bool
}

// Put publishes v.
func (b *Box[T]) Put(v T) {
	b.val = v
	b.ready.Store(true)
}

// TryGet returns the payload if it has been published.
func (b *Box[T]) TryGet() (T, bool) {
	var zero T
	if !b.ready.Load() {
		return zero, false
	}
	return b.val, true
}

// Wait polls the flag, yielding the processor between probes, and returns
// the payload once published.
func (b *Box[T]) Wait() T {
	for !b.ready.Load() {
		runtime.Gosched()
	}
	return b.val
}
