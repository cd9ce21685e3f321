package draft

import (
	"sync"
	"time"
)

// Autosaver runs a recurring save tick while the draft stays dirty. The
// tick callback returns false when the draft was found clean at the check,
// which cancels the loop; the owning session restarts it on the next
// mutation. Stop is idempotent and must be called on session teardown so a
// stale key is never written after unmount.
type Autosaver struct {
	interval time.Duration

	mu      sync.Mutex
	stop    chan struct{}
	running bool
}

func NewAutosaver(interval time.Duration) *Autosaver {
	return &Autosaver{interval: interval}
}

// Start launches the tick loop. No-op when already running.
func (a *Autosaver) Start(tick func() bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.running || a.interval <= 0 {
		return
	}
	a.running = true
	a.stop = make(chan struct{})
	stop := a.stop

	go func() {
		ticker := time.NewTicker(a.interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if !tick() {
					a.markStopped(stop)
					return
				}
			}
		}
	}()
}

// Stop cancels the loop if it is running.
func (a *Autosaver) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.running {
		return
	}
	a.running = false
	close(a.stop)
}

func (a *Autosaver) markStopped(stop chan struct{}) {
	a.mu.Lock()
	defer a.mu.Unlock()
	// A concurrent Stop may have closed the channel already.
	if a.running && a.stop == stop {
		a.running = false
		close(a.stop)
	}
}

func (a *Autosaver) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}
