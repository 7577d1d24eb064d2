// Package ordering
// Author: momentics <momentics@gmail.com>
//
// Small probes that make memory-ordering behavior observable:
//   - TornPair / PackedPair show that two individually atomic variables do
//     not form an atomic pair, and that packing both halves into a single
//     word restores it.
//   - Box shows safe flag-guarded publication of a plain payload.
//
// A note on orderings: sync/atomic operations carry at least
// acquire/release semantics under the Go memory model, so the classic
// broken variant of the publication pattern, where the flag is raised
// with a weaker ordering than the payload needs, cannot be written in Go
// at all. The probes here demonstrate the hazards that remain expressible:
// composing multiple atomics and polling for publication.
package ordering
