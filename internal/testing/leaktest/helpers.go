// Package leaktest provides goroutine leak detection for tests that start
// background workers.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleDelay   = 10 * time.Millisecond
	settleTimeout = 1 * time.Second
)

// Snapshot records the goroutine count at a point in time.
type Snapshot struct {
	count int
	t     testing.TB
}

// Take records the current goroutine count after letting the scheduler
// settle.
func Take(t testing.TB) *Snapshot {
	t.Helper()
	runtime.Gosched()
	time.Sleep(settleDelay)
	return &Snapshot{count: runtime.NumGoroutine(), t: t}
}

// Assert fails the test if more than tolerance goroutines remain above the
// snapshot. It polls until the count drops or the settle timeout expires, so
// goroutines that are mid-shutdown when the test body returns do not produce
// false positives.
func (s *Snapshot) Assert(tolerance int) {
	s.t.Helper()

	deadline := time.Now().Add(settleTimeout)
	var after int
	for {
		runtime.Gosched()
		runtime.GC()
		after = runtime.NumGoroutine()
		if after-s.count <= tolerance || time.Now().After(deadline) {
			break
		}
		time.Sleep(settleDelay)
	}

	if leaked := after - s.count; leaked > tolerance {
		s.t.Errorf("goroutine leak: before=%d after=%d leaked=%d (tolerance=%d)",
			s.count, after, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and fails the test if any goroutine it
// started is still running afterwards.
func CheckNoGoroutineLeak(t *testing.T, fn func()) {
	t.Helper()
	snap := Take(t)
	fn()
	snap.Assert(0)
}
