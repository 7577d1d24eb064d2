// File: bench/options.go
// Package bench defines functional options for the benchmark runner.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package bench

import "github.com/momentics/hioload-sync/api"

// RunnerOption customizes runner initialization.
type RunnerOption func(*Runner)

// WithPinning pins each worker's OS thread to a CPU, round-robin across
// the machine. Pin failures are logged and the run continues unpinned.
func WithPinning() RunnerOption {
	return func(r *Runner) {
		r.pin = true
	}
}

// WithControl publishes run results into the given control plane.
func WithControl(ctrl api.Control) RunnerOption {
	return func(r *Runner) {
		r.ctrl = ctrl
	}
}
