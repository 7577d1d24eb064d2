// Package benchmarks
// Author: momentics <momentics@gmail.com>
//
// Performance benchmarks for hioload-sync components.

package benchmarks

import (
	"runtime"
	"testing"

	"github.com/momentics/hioload-sync/backoff"
	"github.com/momentics/hioload-sync/baseline"
	"github.com/momentics/hioload-sync/counter"
	"github.com/momentics/hioload-sync/pool"
	"github.com/momentics/hioload-sync/stack"
)

// BenchmarkLockFreeStack tests mixed push/pop throughput on the CAS stack.
func BenchmarkLockFreeStack(b *testing.B) {
	s := stack.New[int]()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			if i&1 == 0 {
				s.Push(i)
			} else {
				s.Pop()
			}
			i++
		}
	})
}

// BenchmarkLockFreeStackBackoff is the same workload with paced retries.
func BenchmarkLockFreeStackBackoff(b *testing.B) {
	s := stack.New[int](stack.WithBackoff(64))
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			if i&1 == 0 {
				s.Push(i)
			} else {
				s.Pop()
			}
			i++
		}
	})
}

// BenchmarkMutexStack is the blocking comparator for the same workload.
func BenchmarkMutexStack(b *testing.B) {
	s := baseline.NewStack[int]()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			if i&1 == 0 {
				s.Push(i)
			} else {
				s.Pop()
			}
			i++
		}
	})
}

// BenchmarkMutexQueue measures the locked FIFO under the same mix.
func BenchmarkMutexQueue(b *testing.B) {
	q := baseline.NewQueue[int]()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			if i&1 == 0 {
				q.Enqueue(i)
			} else {
				q.Dequeue()
			}
			i++
		}
	})
}

func BenchmarkMutexCounter(b *testing.B) {
	var c counter.Mutex
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			c.Inc()
		}
	})
}

func BenchmarkAtomicCounter(b *testing.B) {
	var c counter.Atomic
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			c.Inc()
		}
	})
}

func BenchmarkCASCounter(b *testing.B) {
	c := counter.NewCAS()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			c.Inc()
		}
	})
}

func BenchmarkCASCounterBackoff(b *testing.B) {
	c := counter.NewCAS(counter.WithBackoff(64))
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			c.Inc()
		}
	})
}

// BenchmarkRetryOverhead prices the combinator on an uncontended attempt.
func BenchmarkRetryOverhead(b *testing.B) {
	for i := 0; i < b.N; i++ {
		backoff.Retry(func() bool { return true })
	}
}

// BenchmarkRingBufferHandoff streams b.N items through the SPSC ring.
func BenchmarkRingBufferHandoff(b *testing.B) {
	ring := pool.NewRingBuffer[int](1024)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for received := 0; received < b.N; {
			if _, ok := ring.Dequeue(); ok {
				received++
			} else {
				runtime.Gosched()
			}
		}
	}()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for !ring.Enqueue(i) {
			runtime.Gosched()
		}
	}
	<-done
}

// BenchmarkChannelHandoff is the built-in comparator for the ring.
func BenchmarkChannelHandoff(b *testing.B) {
	ch := make(chan int, 1024)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for received := 0; received < b.N; received++ {
			<-ch
		}
	}()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ch <- i
	}
	<-done
}

// BenchmarkSyncPool tests pooled node allocation performance.
func BenchmarkSyncPool(b *testing.B) {
	p := pool.NewSyncPool(func() []byte { return make([]byte, 4096) })
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			buf := p.Get()
			p.Put(buf)
		}
	})
}
