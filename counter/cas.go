// File: counter/cas.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// CAS-loop counters: load the current value, compute the update, publish
// it with CompareAndSwap, and retry from a fresh read when another writer
// got there first. The failed-attempt counter makes the cost of optimistic
// retry visible to benchmarks.

package counter

import (
	"sync/atomic"

	"github.com/momentics/hioload-sync/api"
	"github.com/momentics/hioload-sync/backoff"
)

// CAS is a counter updated through a CompareAndSwap retry loop. The zero
// value retries immediately on contention; NewCAS with WithBackoff paces
// retries with an exponential pause budget.
type CAS struct {
	n      atomic.Int64
	failed atomic.Uint64
	paced  bool
	proto  backoff.Backoff
}

var _ api.Counter = (*CAS)(nil)

// Option customizes a CAS counter.
type Option func(*CAS)

// WithBackoff paces contended retries, capping the pause budget at limit
// yield quanta.
func WithBackoff(limit int) Option {
	return func(c *CAS) {
		c.paced = true
		c.proto = backoff.New(backoff.WithLimit(limit))
	}
}

// NewCAS constructs a CAS counter.
func NewCAS(opts ...Option) *CAS {
	c := &CAS{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Inc adds one.
func (c *CAS) Inc() { c.Add(1) }

// Add applies delta through the CAS retry loop. The pause budget is fresh
// per call and the first attempt is never delayed.
func (c *CAS) Add(delta int64) {
	b := c.proto
	for {
		cur := c.n.Load()
		if c.n.CompareAndSwap(cur, cur+delta) {
			return
		}
		c.failed.Add(1)
		if c.paced {
			b.Wait()
		}
	}
}

// Load returns the current value.
func (c *CAS) Load() int64 { return c.n.Load() }

// Failures reports the cumulative number of lost CAS races.
func (c *CAS) Failures() uint64 { return c.failed.Load() }

// Bounded is a counter that increments only below a fixed limit. The
// bound check and the increment form one atomic step, so concurrent
// callers can never push the value past the limit between them.
type Bounded struct {
	n     atomic.Int64
	limit int64
}

var _ api.BoundedCounter = (*Bounded)(nil)

// NewBounded constructs a counter capped at limit.
func NewBounded(limit int64) *Bounded {
	if limit < 0 {
		panic(api.NewError(api.ErrCodeInvalidArgument, "bounded counter limit must not be negative").
			WithContext("limit", limit))
	}
	return &Bounded{limit: limit}
}

// TryInc adds one unless the counter already reached its limit.
func (c *Bounded) TryInc() bool {
	for {
		cur := c.n.Load()
		if cur >= c.limit {
			return false
		}
		if c.n.CompareAndSwap(cur, cur+1) {
			return true
		}
	}
}

// Load returns the current value.
func (c *Bounded) Load() int64 { return c.n.Load() }

// Limit returns the inclusive ceiling.
func (c *Bounded) Limit() int64 { return c.limit }
