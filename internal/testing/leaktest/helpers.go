// Package leaktest checks that long-running components such as the web
// server and the watch worker leave no goroutines behind once stopped.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// DefaultSettleTime is how long Check waits for goroutines to wind down
const DefaultSettleTime = 2 * time.Second

const pollInterval = 10 * time.Millisecond

// GoroutineChecker compares the goroutine count before and after a block of code
type GoroutineChecker struct {
	before int
	settle time.Duration
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	runtime.Gosched()
	time.Sleep(pollInterval)

	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		settle: DefaultSettleTime,
		t:      t,
	}
}

// WithSettleTime overrides how long Check keeps polling
func (g *GoroutineChecker) WithSettleTime(d time.Duration) *GoroutineChecker {
	g.settle = d
	return g
}

// Check polls until the goroutine count is back within tolerance of the
// recorded count. Shutdown paths such as http.Server.Shutdown close idle
// connections asynchronously, so a single sample would be flaky.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	target := g.before + tolerance
	after := waitUntil(target, g.settle)
	if after > target {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, after-g.before, tolerance)
	}
}

// Verify records the current count and checks it again when the test ends
func Verify(t testing.TB, tolerance int) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	t.Cleanup(func() { checker.Check(tolerance) })
}

// CheckNoGoroutineLeak runs fn and fails the test if it left goroutines running
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// WaitForGoroutines waits until at most target goroutines are running
func WaitForGoroutines(t testing.TB, target int, timeout time.Duration) {
	t.Helper()

	if current := waitUntil(target, timeout); current > target {
		t.Errorf("Timeout waiting for goroutines to complete: current=%d, target=%d", current, target)
	}
}

func waitUntil(target int, timeout time.Duration) int {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		current := runtime.NumGoroutine()
		if current <= target || !time.Now().Before(deadline) {
			return current
		}
		time.Sleep(pollInterval)
	}
}
