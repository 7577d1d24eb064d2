// File: ordering/pair.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Pair probes demonstrating that per-variable atomicity does not compose.
// TornPair keeps its halves in two separate atomics: every half a sampler
// reads is a valid written value, yet the two halves can come from
// different writes. PackedPair folds both halves into one atomic word,
// which restores pair atomicity without a lock.

package ordering

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Pair is a two-half value written as a unit and sampled concurrently.
type Pair interface {
	// Set writes v into both halves.
	Set(v int32)
	// Sample reads both halves.
	Sample() (int32, int32)
}

// TornPair stores the halves in independent atomic variables, kept on
// separate cache lines. Samplers may observe halves from different writes.
type TornPair struct {
	x atomic.Int32
	_ cpu.CacheLinePad
	y atomic.Int32
}

var _ Pair = (*TornPair)(nil)

// Set writes v into both halves, one atomic store each.
func (p *TornPair) Set(v int32) {
	p.x.Store(v)
	p.y.Store(v)
}

// Sample reads both halves, one atomic load each.
func (p *TornPair) Sample() (int32, int32) {
	return p.x.Load(), p.y.Load()
}

// PackedPair stores both halves in a single atomic word.
type PackedPair struct {
	v atomic.Uint64
}

var _ Pair = (*PackedPair)(nil)

// Set writes v into both halves with one atomic store.
func (p *PackedPair) Set(v int32) {
	p.v.Store(uint64(uint32(v))<<32 | uint64(uint32(v)))
}

// Sample reads both halves with one atomic load.
func (p *PackedPair) Sample() (int32, int32) {
	w := p.v.Load()
	return int32(uint32(w >> 32)), int32(uint32(w))
}

// Flip alternates the pair between 0 and 1 for the given number of rounds.
func Flip(p Pair, rounds int) {
	for i := 0; i < rounds; i++ {
		p.Set(int32(i & 1))
	}
}

// Probe samples the pair n times and returns how many samples caught the
// halves disagreeing.
func Probe(p Pair, n int) int {
	mixed := 0
	for i := 0; i < n; i++ {
		a, b := p.Sample()
		if a != b {
			mixed++
		}
	}
	return mixed
}
