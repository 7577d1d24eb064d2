// File: stack/options.go
// Package stack defines functional options for the lock-free stack.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package stack

import "github.com/momentics/hioload-sync/api"

type options struct {
	capacity int
	boLimit  int
}

// Option customizes stack initialization.
type Option func(*options)

// WithCapacity bounds the number of live elements. Exceeding the bound
// panics; emptiness stays an ordinary Pop result.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n < 1 {
			panic(api.NewError(api.ErrCodeInvalidArgument, api.ErrInvalidCapacity.Error()).
				WithContext("capacity", n))
		}
		o.capacity = n
	}
}

// WithBackoff paces contended retries with an exponential pause budget
// capped at limit yield quanta. Without it retries spin immediately,
// which wins at low contention and loses at high fan-in.
func WithBackoff(limit int) Option {
	return func(o *options) {
		if limit < 1 {
			panic(api.NewError(api.ErrCodeInvalidArgument, "backoff limit must be positive").
				WithContext("limit", limit))
		}
		o.boLimit = limit
	}
}
