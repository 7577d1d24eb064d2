// Package pool
// Author: momentics <momentics@gmail.com>
//
// Object reuse and lock-free transfer primitives:
//   - SyncPool, a generic wrapper over sync.Pool for transient objects
//   - RingBuffer, a bounded single-producer/single-consumer ring used as
//     the lock-free side of handoff comparisons
//
// See objpool.go and ring.go for implementation details.
package pool
