// File: bench/bench.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Benchmark runner for synchronization strategy comparisons. Every run
// spawns the requested workers, parks them on a start barrier so setup
// cost never pollutes the measurement, releases them together and times
// the full join. Results are published to the control plane when one is
// attached.

package bench

import (
	"log"
	"runtime"
	"sync"
	"time"

	"github.com/momentics/hioload-sync/affinity"
	"github.com/momentics/hioload-sync/api"
)

// Spec describes one benchmark scenario.
type Spec struct {
	// Name identifies the scenario in reports and metric keys.
	Name string
	// Workers is the number of concurrent goroutines.
	Workers int
	// Iters is the operation count per worker.
	Iters int
	// Worker runs the measured loop. It must perform Iters operations.
	Worker func(id, iters int)
	// Stat optionally samples a cumulative contention gauge (failed CAS
	// attempts, retries); the runner records its delta across the run.
	Stat func() uint64
}

// Result is one completed run.
type Result struct {
	Name      string
	Workers   int
	Ops       int64
	Elapsed   time.Duration
	OpsPerSec float64
	Stat      uint64
}

// Runner executes scenarios under a common protocol.
type Runner struct {
	pin  bool
	ctrl api.Control
}

// NewRunner constructs a runner.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes one scenario and reports its result.
func (r *Runner) Run(s Spec) (Result, error) {
	if s.Name == "" || s.Workers < 1 || s.Iters < 1 || s.Worker == nil {
		return Result{}, api.NewError(api.ErrCodeInvalidArgument, "benchmark spec incomplete").
			WithContext("name", s.Name).
			WithContext("workers", s.Workers)
	}

	var before uint64
	if s.Stat != nil {
		before = s.Stat()
	}

	start := make(chan struct{})
	var ready, done sync.WaitGroup
	ready.Add(s.Workers)
	done.Add(s.Workers)
	for id := 0; id < s.Workers; id++ {
		go func(id int) {
			defer done.Done()
			if r.pin {
				runtime.LockOSThread()
				defer runtime.UnlockOSThread()
				if err := affinity.SetAffinity(id % runtime.NumCPU()); err != nil {
					log.Printf("[bench] pin worker %d: %v", id, err)
				}
			}
			ready.Done()
			<-start
			s.Worker(id, s.Iters)
		}(id)
	}

	ready.Wait()
	began := time.Now()
	close(start)
	done.Wait()
	elapsed := time.Since(began)

	res := Result{
		Name:    s.Name,
		Workers: s.Workers,
		Ops:     int64(s.Workers) * int64(s.Iters),
		Elapsed: elapsed,
	}
	if sec := elapsed.Seconds(); sec > 0 {
		res.OpsPerSec = float64(res.Ops) / sec
	}
	if s.Stat != nil {
		res.Stat = s.Stat() - before
	}

	r.publish(res)
	log.Printf("[bench] %s: %d workers x %d iters in %v (%.0f ops/sec)",
		res.Name, res.Workers, s.Iters, res.Elapsed, res.OpsPerSec)
	return res, nil
}

func (r *Runner) publish(res Result) {
	if r.ctrl == nil {
		return
	}
	key := "bench." + res.Name
	r.ctrl.SetMetric(key+".ns", res.Elapsed.Nanoseconds())
	r.ctrl.SetMetric(key+".ops", res.Ops)
	r.ctrl.SetMetric(key+".ops_per_sec", res.OpsPerSec)
	if res.Stat != 0 {
		r.ctrl.SetMetric(key+".contention", res.Stat)
	}
}
