package leaktest

import (
	"sync"
	"testing"
	"time"
)

func TestCheckNoGoroutineLeakPassesWhenClean(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		var wg sync.WaitGroup
		wg.Add(3)
		for i := 0; i < 3; i++ {
			go func() {
				defer wg.Done()
				time.Sleep(time.Millisecond)
			}()
		}
		wg.Wait()
	})
}

func TestAssertToleratesConfiguredLeak(t *testing.T) {
	snap := Take(t)

	done := make(chan struct{})
	go func() { <-done }()
	defer close(done)

	time.Sleep(20 * time.Millisecond)
	snap.Assert(1)
}

func TestAssertWaitsForSlowShutdown(t *testing.T) {
	snap := Take(t)

	// Still running when Assert starts, but finishes well inside the
	// settle timeout.
	go func() { time.Sleep(50 * time.Millisecond) }()

	snap.Assert(0)
}
