package services

import (
	"sync"
	"time"

	"github.com/hubzz/preview-api/internal/clock"
)

// RefreshInterval is the cadence at which live views re-derive ticket state.
// The lifecycle engine is pure; the wall clock is its only moving input.
const RefreshInterval = time.Second

// Refresher invokes a callback with the current instant on a steady cadence.
// It belongs to one view instance and must be stopped on teardown; after Stop
// returns, the callback is never invoked again, so a view can safely free the
// data the callback closes over.
type Refresher struct {
	mu      sync.Mutex
	stopped bool
	done    chan struct{}
	once    sync.Once
}

// NewRefresher starts a refresher ticking at the given interval. A
// non-positive interval falls back to RefreshInterval.
func NewRefresher(clk clock.Clock, interval time.Duration, fn func(now time.Time)) *Refresher {
	if interval <= 0 {
		interval = RefreshInterval
	}
	r := &Refresher{done: make(chan struct{})}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-r.done:
				return
			case <-ticker.C:
				r.mu.Lock()
				if r.stopped {
					r.mu.Unlock()
					return
				}
				fn(clk.Now())
				r.mu.Unlock()
			}
		}
	}()
	return r
}

// Stop cancels the refresher. It is idempotent and blocks until any
// in-flight callback has returned.
func (r *Refresher) Stop() {
	r.once.Do(func() {
		close(r.done)
	})
	r.mu.Lock()
	r.stopped = true
	r.mu.Unlock()
}
