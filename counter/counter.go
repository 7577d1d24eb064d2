// File: counter/counter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Mutex- and atomic-based counters. Together with the CAS variants in
// cas.go these form the three synchronization strategies the benchmark
// suite compares: pessimistic locking, hardware fetch-and-add, and
// optimistic CAS retry.

package counter

import (
	"sync"
	"sync/atomic"

	"github.com/momentics/hioload-sync/api"
)

// Mutex is a counter serialized behind a sync.Mutex. Contended updates
// park the losing goroutines; nothing is ever lost, everything waits.
// The zero value is ready to use.
type Mutex struct {
	mu sync.Mutex
	n  int64
}

var _ api.Counter = (*Mutex)(nil)

// Inc adds one.
func (c *Mutex) Inc() { c.Add(1) }

// Add adds delta under the lock.
func (c *Mutex) Add(delta int64) {
	c.mu.Lock()
	c.n += delta
	c.mu.Unlock()
}

// Load returns the current value.
func (c *Mutex) Load() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

// Atomic is a counter built on the processor's fetch-and-add. The
// increment itself is the atomic primitive, so there is no retry loop
// and no lock. The zero value is ready to use.
type Atomic struct {
	n atomic.Int64
}

var _ api.Counter = (*Atomic)(nil)

// Inc adds one.
func (c *Atomic) Inc() { c.n.Add(1) }

// Add adds delta.
func (c *Atomic) Add(delta int64) { c.n.Add(delta) }

// Load returns the current value.
func (c *Atomic) Load() int64 { return c.n.Load() }
