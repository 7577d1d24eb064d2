// File: stack/arena.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Slot arena backing the lock-free stack. Elements never live in individually
// freed heap nodes: they occupy numbered slots inside lazily allocated
// segments, and a slot is addressed through a packed (index, tag) handle.
// The tag changes on every publish of the slot, so a handle observed before
// a slot was recycled can never win a CAS against the recycled incarnation.

package stack

import (
	"sync/atomic"

	"github.com/momentics/hioload-sync/api"
)

const (
	segBits = 16
	segSize = 1 << segBits // slots per segment
	segMask = segSize - 1

	// DefaultCapacity bounds live elements when WithCapacity is not given.
	DefaultCapacity = 1 << 22
)

// nilHandle marks the bottom of both the stack and the free list.
// Slot index 0 is reserved and never allocated.
const nilHandle uint64 = 0

// pack combines a slot index and its publish tag into one CAS-able word.
func pack(idx, tag uint32) uint64 { return uint64(idx)<<32 | uint64(tag) }

// slotIndex extracts the arena index from a packed handle.
func slotIndex(h uint64) uint32 { return uint32(h >> 32) }

// slotTag extracts the publish tag from a packed handle.
func slotTag(h uint64) uint32 { return uint32(h) }

// slot holds one element. next and val are owned exclusively between a
// list-head CAS win and the next publish, so val needs no atomicity of
// its own. tag is bumped by the exclusive owner before each publish.
type slot[T any] struct {
	next atomic.Uint64
	tag  uint32
	val  T
}

type segment[T any] struct {
	slots [segSize]slot[T]
}

// arena is a grow-only slot store. Segments are allocated on first use and
// registered in a fixed directory of atomic pointers; slot indices stay
// stable for the arena's lifetime.
type arena[T any] struct {
	segs []atomic.Pointer[segment[T]]
	cap  uint32
	bump atomic.Uint32 // highest index handed out; index 0 stays reserved
}

func newArena[T any](capacity int) *arena[T] {
	a := &arena[T]{
		segs: make([]atomic.Pointer[segment[T]], capacity/segSize+1),
		cap:  uint32(capacity),
	}
	return a
}

// grow hands out a never-used slot index, allocating its segment if this
// is the first slot inside it. Exhausting the arena is fatal: the caller
// holds no lock to release and no partial state to unwind.
func (a *arena[T]) grow() uint32 {
	idx := a.bump.Add(1)
	if idx > a.cap {
		panic(api.NewError(api.ErrCodeResourceExhausted, api.ErrArenaExhausted.Error()).
			WithContext("capacity", a.cap))
	}
	si := idx >> segBits
	if a.segs[si].Load() == nil {
		a.segs[si].CompareAndSwap(nil, new(segment[T]))
	}
	return idx
}

// slot resolves an index previously returned by grow. The segment pointer
// is visible to every caller that legitimately holds the index: the index
// travels only through list-head CAS publications ordered after grow.
func (a *arena[T]) slot(idx uint32) *slot[T] {
	return &a.segs[idx>>segBits].Load().slots[idx&segMask]
}
