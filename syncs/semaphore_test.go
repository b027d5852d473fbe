package syncs

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestSemaphore(t *testing.T) {
	sem := NewSemaphore(2)
	if !sem.TryAcquire() || !sem.TryAcquire() {
		t.Fatal("should acquire")
	}
	if sem.TryAcquire() {
		t.Fatal("should be full")
	}
	sem.Release()
	sem.Release()

	var running, peak atomic.Int64
	var wg sync.WaitGroup
	for range 32 {
		sem.Acquire()
		wg.Go(func() {
			defer sem.Release()
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			running.Add(-1)
		})
	}
	wg.Wait()
	if peak.Load() > 2 {
		t.Fatalf("peak %d", peak.Load())
	}
}
