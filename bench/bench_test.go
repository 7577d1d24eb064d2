package bench_test

import (
	"bytes"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/fatih/color"

	"github.com/momentics/hioload-sync/api"
	"github.com/momentics/hioload-sync/bench"
	"github.com/momentics/hioload-sync/control"
	"github.com/momentics/hioload-sync/counter"
)

func TestRunnerExecutesAllWork(t *testing.T) {
	var ops int64
	r := bench.NewRunner()
	res, err := r.Run(bench.Spec{
		Name:    "count",
		Workers: 4,
		Iters:   10000,
		Worker: func(id, iters int) {
			for i := 0; i < iters; i++ {
				atomic.AddInt64(&ops, 1)
			}
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if ops != 40000 {
		t.Errorf("workers performed %d ops, want 40000", ops)
	}
	if res.Ops != 40000 {
		t.Errorf("Result.Ops = %d, want 40000", res.Ops)
	}
	if res.Elapsed <= 0 {
		t.Errorf("Result.Elapsed = %v, want > 0", res.Elapsed)
	}
	if res.OpsPerSec <= 0 {
		t.Errorf("Result.OpsPerSec = %f, want > 0", res.OpsPerSec)
	}
}

func TestRunnerRejectsIncompleteSpec(t *testing.T) {
	r := bench.NewRunner()
	specs := []bench.Spec{
		{Name: "", Workers: 1, Iters: 1, Worker: func(int, int) {}},
		{Name: "w0", Workers: 0, Iters: 1, Worker: func(int, int) {}},
		{Name: "i0", Workers: 1, Iters: 0, Worker: func(int, int) {}},
		{Name: "nil", Workers: 1, Iters: 1},
	}
	for _, s := range specs {
		if _, err := r.Run(s); err == nil {
			t.Errorf("spec %q accepted, want error", s.Name)
		}
	}
}

func TestRunnerStatDelta(t *testing.T) {
	c := counter.NewCAS()
	r := bench.NewRunner()
	res, err := r.Run(bench.Spec{
		Name:    "cas",
		Workers: 4,
		Iters:   20000,
		Worker: func(id, iters int) {
			for i := 0; i < iters; i++ {
				c.Inc()
			}
		},
		Stat: c.Failures,
	})
	if err != nil {
		t.Fatal(err)
	}
	if c.Load() != res.Ops {
		t.Errorf("counter = %d, want %d", c.Load(), res.Ops)
	}
	if res.Stat != c.Failures() {
		t.Errorf("Stat delta = %d, want %d (gauge started at zero)", res.Stat, c.Failures())
	}
}

func TestRunnerPublishesMetrics(t *testing.T) {
	ctrl := control.NewController()
	r := bench.NewRunner(bench.WithControl(ctrl))
	if _, err := r.Run(bench.Spec{
		Name:    "published",
		Workers: 2,
		Iters:   100,
		Worker:  func(int, int) {},
	}); err != nil {
		t.Fatal(err)
	}

	stats := ctrl.Stats()
	if _, ok := stats["bench.published.ops"]; !ok {
		t.Errorf("ops metric missing: %v", stats)
	}
	if _, ok := stats["bench.published.ns"]; !ok {
		t.Errorf("elapsed metric missing: %v", stats)
	}
}

func TestSuiteReport(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	s := bench.NewSuite("strategies", bench.NewRunner())
	for _, name := range []string{"mutex", "atomic"} {
		if _, err := s.Run(bench.Spec{
			Name:    name,
			Workers: 2,
			Iters:   1000,
			Worker: func(id, iters int) {
				var c counter.Atomic
				for i := 0; i < iters; i++ {
					c.Inc()
				}
			},
		}); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	if err := s.Report(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"strategies", "mutex", "atomic", "speedup relative to mutex"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
	if len(s.Results()) != 2 {
		t.Errorf("suite recorded %d results, want 2", len(s.Results()))
	}
}

func TestSuiteEmptyReport(t *testing.T) {
	s := bench.NewSuite("empty", nil)
	err := s.Report(&bytes.Buffer{})
	if !errors.Is(err, api.ErrEmptySuite) {
		t.Errorf("Report on empty suite returned %v, want ErrEmptySuite", err)
	}
}
