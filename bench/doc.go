// Package bench
// Author: momentics <momentics@gmail.com>
//
// Comparative benchmark harness. A Spec names a workload (workers,
// per-worker iterations, the measured loop); a Runner executes it behind
// a start barrier with optional CPU pinning and publishes results to the
// control plane; a Suite renders a speedup table against its first
// scenario.
package bench
