// File: backoff/backoff.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bounded exponential backoff for contended CAS retry loops. A fresh policy
// (or a Reset one) pauses for one yield quantum after the first failure and
// doubles the pause budget after every further failure, up to a fixed cap.
// The policy never runs before a first attempt, so uncontended operations
// pay nothing.

package backoff

import (
	"runtime"

	"github.com/momentics/hioload-sync/api"
)

// DefaultLimit is the pause budget ceiling in yield quanta.
const DefaultLimit = 64

// Backoff is an exponential pause budget. The zero value is ready to use
// with budget 1 and DefaultLimit; New applies options on top of that.
// A Backoff is not safe for concurrent use; give each goroutine its own.
type Backoff struct {
	budget uint32
	limit  uint32
	yield  func()
}

var _ api.BackoffPolicy = (*Backoff)(nil)

// Option customizes a Backoff.
type Option func(*Backoff)

// WithLimit caps the pause budget at n yield quanta. n < 1 panics.
func WithLimit(n int) Option {
	return func(b *Backoff) {
		if n < 1 {
			panic(api.NewError(api.ErrCodeInvalidArgument, "backoff limit must be positive").
				WithContext("limit", n))
		}
		b.limit = uint32(n)
	}
}

// WithYield replaces runtime.Gosched as the pause unit. Tests inject a
// counter here to observe budgets deterministically.
func WithYield(fn func()) Option {
	return func(b *Backoff) { b.yield = fn }
}

// New returns a policy with budget 1.
func New(opts ...Option) Backoff {
	var b Backoff
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Wait pauses for the current budget and doubles it, saturating at the
// limit. Callers invoke it only after a failed attempt.
func (b *Backoff) Wait() {
	n := b.budget
	if n == 0 {
		n = 1
	}
	yield := b.yield
	if yield == nil {
		yield = runtime.Gosched
	}
	for i := uint32(0); i < n; i++ {
		yield()
	}
	limit := b.limit
	if limit == 0 {
		limit = DefaultLimit
	}
	if n < limit {
		n <<= 1
		if n > limit {
			n = limit
		}
	}
	b.budget = n
}

// Reset restores the initial budget for a new logical operation.
func (b *Backoff) Reset() {
	b.budget = 0
}

// Budget reports the pause length the next Wait will use.
func (b *Backoff) Budget() int {
	if b.budget == 0 {
		return 1
	}
	return int(b.budget)
}

// Retry runs attempt until it reports success, pausing with a fresh
// exponential budget after every failure. The first attempt runs
// immediately. Returns the number of failed attempts.
func Retry(attempt func() bool, opts ...Option) int {
	b := New(opts...)
	failures := 0
	for !attempt() {
		failures++
		b.Wait()
	}
	return failures
}
