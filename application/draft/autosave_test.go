package draft_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/openmarket/listing-service/application/draft"
)

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}

func TestAutosaver_TicksWhileDirty(t *testing.T) {
	a := draft.NewAutosaver(10 * time.Millisecond)
	defer a.Stop()

	var ticks int64
	a.Start(func() bool {
		atomic.AddInt64(&ticks, 1)
		return true
	})

	waitFor(t, func() bool { return atomic.LoadInt64(&ticks) >= 3 }, "expected at least 3 ticks")
	if !a.Running() {
		t.Fatal("Running() = false while ticking")
	}
}

func TestAutosaver_StopsWhenClean(t *testing.T) {
	a := draft.NewAutosaver(10 * time.Millisecond)
	defer a.Stop()

	var ticks int64
	a.Start(func() bool {
		// First tick finds the draft clean.
		return atomic.AddInt64(&ticks, 1) < 1
	})

	waitFor(t, func() bool { return !a.Running() }, "expected the loop to cancel itself")
	n := atomic.LoadInt64(&ticks)
	time.Sleep(50 * time.Millisecond)
	if atomic.LoadInt64(&ticks) != n {
		t.Fatal("ticks continued after cancellation")
	}
}

func TestAutosaver_RestartAfterStop(t *testing.T) {
	a := draft.NewAutosaver(10 * time.Millisecond)
	defer a.Stop()

	var ticks int64
	tick := func() bool {
		atomic.AddInt64(&ticks, 1)
		return true
	}

	a.Start(tick)
	waitFor(t, func() bool { return atomic.LoadInt64(&ticks) >= 1 }, "expected a first tick")
	a.Stop()
	if a.Running() {
		t.Fatal("Running() = true after Stop")
	}

	// Stop is idempotent.
	a.Stop()

	a.Start(tick)
	n := atomic.LoadInt64(&ticks)
	waitFor(t, func() bool { return atomic.LoadInt64(&ticks) > n }, "expected ticks after restart")
}

func TestAutosaver_StartWhileRunningIsNoop(t *testing.T) {
	a := draft.NewAutosaver(10 * time.Millisecond)
	defer a.Stop()

	var first, second int64
	a.Start(func() bool {
		atomic.AddInt64(&first, 1)
		return true
	})
	a.Start(func() bool {
		atomic.AddInt64(&second, 1)
		return true
	})

	waitFor(t, func() bool { return atomic.LoadInt64(&first) >= 2 }, "expected ticks from the first loop")
	if atomic.LoadInt64(&second) != 0 {
		t.Fatal("second Start must not launch another loop")
	}
}

func TestAutosaver_ZeroIntervalNeverStarts(t *testing.T) {
	a := draft.NewAutosaver(0)
	a.Start(func() bool { return true })
	if a.Running() {
		t.Fatal("zero interval must disable autosave")
	}
}
