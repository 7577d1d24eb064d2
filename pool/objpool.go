// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package pool

import (
	"sync"

	"github.com/momentics/hioload-sync/api"
)

// SyncPool wraps sync.Pool for generic usage. Callers must not assume a
// Put object survives until the next Get; the runtime may drop pooled
// objects between garbage collections.
type SyncPool[T any] struct {
	pool *sync.Pool
}

var _ api.ObjectPool[any] = (*SyncPool[any])(nil)

// NewSyncPool creates a new SyncPool with a creator function.
func NewSyncPool[T any](creator func() T) *SyncPool[T] {
	return &SyncPool[T]{
		pool: &sync.Pool{New: func() any { return creator() }},
	}
}

// Get returns a pooled instance, falling back to the creator.
func (sp *SyncPool[T]) Get() T {
	return sp.pool.Get().(T)
}

// Put returns an instance for reuse. The caller must drop its references.
func (sp *SyncPool[T]) Put(obj T) {
	sp.pool.Put(obj)
}
