// File: bench/suite.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Ordered scenario suite with a comparative report. The first scenario is
// the baseline; every later row shows its speedup against it.

package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/momentics/hioload-sync/api"
)

// Suite collects results of related scenarios.
type Suite struct {
	name    string
	runner  *Runner
	results []Result
}

// NewSuite constructs a suite running on r; a nil runner gets defaults.
func NewSuite(name string, r *Runner) *Suite {
	if r == nil {
		r = NewRunner()
	}
	return &Suite{name: name, runner: r}
}

// Run executes one scenario and records its result.
func (s *Suite) Run(spec Spec) (Result, error) {
	res, err := s.runner.Run(spec)
	if err != nil {
		return Result{}, err
	}
	s.results = append(s.results, res)
	return res, nil
}

// Results returns recorded results in run order.
func (s *Suite) Results() []Result {
	out := make([]Result, len(s.results))
	copy(out, s.results)
	return out
}

// Report renders the comparison table. The first recorded scenario is the
// speedup baseline.
func (s *Suite) Report(w io.Writer) error {
	if len(s.results) == 0 {
		return api.ErrEmptySuite
	}
	base := s.results[0]

	fmt.Fprintln(w, color.CyanString("=== %s ===", s.name))
	fmt.Fprintf(w, "%-28s %8s %14s %16s %10s %12s\n",
		"scenario", "workers", "time", "ops/sec", "speedup", "contention")
	for i, res := range s.results {
		speedup := 1.0
		if res.Elapsed > 0 {
			speedup = base.Elapsed.Seconds() / res.Elapsed.Seconds()
		}
		spd := fmt.Sprintf("%9.2fx", speedup)
		if i > 0 {
			if speedup >= 1 {
				spd = color.GreenString("%s", spd)
			} else {
				spd = color.RedString("%s", spd)
			}
		}
		fmt.Fprintf(w, "%-28s %8d %14v %16.0f %s %12d\n",
			res.Name, res.Workers, res.Elapsed.Round(time.Microsecond),
			res.OpsPerSec, spd, res.Stat)
	}
	fmt.Fprintln(w, color.HiBlackString("speedup relative to %s", base.Name))
	return nil
}
