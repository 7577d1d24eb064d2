package backoff_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/momentics/hioload-sync/backoff"
)

func TestBudgetDoublesPerFailure(t *testing.T) {
	yields := 0
	b := backoff.New(backoff.WithYield(func() { yields++ }))

	want := []int{1, 2, 4, 8, 16, 32, 64, 64, 64}
	for i, w := range want {
		yields = 0
		b.Wait()
		if yields != w {
			t.Errorf("wait %d: yielded %d times, want %d", i, yields, w)
		}
	}
}

func TestResetRestoresInitialBudget(t *testing.T) {
	yields := 0
	b := backoff.New(backoff.WithYield(func() { yields++ }))

	for i := 0; i < 5; i++ {
		b.Wait()
	}
	if b.Budget() != 32 {
		t.Fatalf("budget after 5 waits = %d, want 32", b.Budget())
	}

	b.Reset()
	if b.Budget() != 1 {
		t.Fatalf("budget after reset = %d, want 1", b.Budget())
	}
	yields = 0
	b.Wait()
	if yields != 1 {
		t.Errorf("first wait after reset yielded %d times, want 1", yields)
	}
}

func TestLimitCapsBudget(t *testing.T) {
	yields := 0
	b := backoff.New(backoff.WithLimit(8), backoff.WithYield(func() { yields++ }))

	want := []int{1, 2, 4, 8, 8, 8}
	for i, w := range want {
		yields = 0
		b.Wait()
		if yields != w {
			t.Errorf("wait %d: yielded %d times, want %d", i, yields, w)
		}
	}
}

func TestZeroValueUsable(t *testing.T) {
	var b backoff.Backoff
	if b.Budget() != 1 {
		t.Fatalf("zero value budget = %d, want 1", b.Budget())
	}
	b.Wait()
	if b.Budget() != 2 {
		t.Fatalf("budget after one wait = %d, want 2", b.Budget())
	}
}

func TestRetryFirstAttemptImmediate(t *testing.T) {
	yields := 0
	failures := backoff.Retry(func() bool { return true },
		backoff.WithYield(func() { yields++ }))
	if failures != 0 {
		t.Errorf("failures = %d, want 0", failures)
	}
	if yields != 0 {
		t.Errorf("successful first attempt yielded %d times, want 0", yields)
	}
}

func TestRetryPausesBetweenFailures(t *testing.T) {
	yields := 0
	remaining := 5
	failures := backoff.Retry(func() bool {
		if remaining > 0 {
			remaining--
			return false
		}
		return true
	}, backoff.WithYield(func() { yields++ }))

	if failures != 5 {
		t.Errorf("failures = %d, want 5", failures)
	}
	// Budgets 1,2,4,8,16 for the five failed attempts.
	if yields != 31 {
		t.Errorf("total yields = %d, want 31", yields)
	}
}

func TestRetryUnderContention(t *testing.T) {
	const goroutines = 8
	const iters = 10000

	var n int64
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iters; i++ {
				backoff.Retry(func() bool {
					cur := atomic.LoadInt64(&n)
					return atomic.CompareAndSwapInt64(&n, cur, cur+1)
				})
			}
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt64(&n); got != goroutines*iters {
		t.Errorf("counter = %d, want %d", got, goroutines*iters)
	}
}
