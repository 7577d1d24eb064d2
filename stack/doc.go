// Package stack
// Author: momentics <momentics@gmail.com>
//
// Lock-free LIFO stack with tagged-handle slot recycling.
//
// The classic pitfall of a CAS-published stack is handle reuse: a reader
// snapshots the top element, stalls, and meanwhile that element is popped,
// recycled and pushed again. The reader's CAS then matches a head that looks
// identical but belongs to a different era, splicing a stale successor into
// the list. Garbage collection hides this only while nodes are never reused;
// any recycling scheme brings it straight back.
//
// This implementation closes the window structurally:
//   - Elements occupy numbered slots in a grow-only segment arena.
//   - The head word packs (slot index, publish tag); the tag is bumped by
//     the slot's exclusive owner before every publication, including
//     retirement onto the internal free list.
//   - CAS therefore compares full (index, tag) pairs, and a handle from a
//     previous incarnation of a slot can never win.
//   - Slots are recycled only through the free list, never released while
//     a stale handle could still be dereferenced.
//
// Contention policy is pluggable: by default failed CAS attempts retry
// immediately; WithBackoff paces them with a bounded exponential budget.
package stack
