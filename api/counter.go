// File: api/counter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Shared counter contracts for the synchronization strategy implementations.

package api

// Counter is a concurrent integer counter.
type Counter interface {
	// Inc adds one.
	Inc()
	// Add adds delta, which may be negative.
	Add(delta int64)
	// Load returns the current value.
	Load() int64
}

// BoundedCounter is a counter that refuses increments past a fixed limit.
type BoundedCounter interface {
	// TryInc adds one unless the counter already reached its limit.
	TryInc() bool
	// Load returns the current value.
	Load() int64
	// Limit returns the inclusive ceiling.
	Limit() int64
}
