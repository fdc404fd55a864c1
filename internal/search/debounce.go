package search

import (
	"sync"
	"time"
)

// DefaultDelay is the quiet period after the last keystroke before a query runs.
const DefaultDelay = 300 * time.Millisecond

// debouncer runs only the most recently triggered function, once no trigger has happened
// for delay.
type debouncer struct {
	delay     time.Duration
	afterFunc func(time.Duration, func()) (stop func() bool)

	mu   sync.Mutex
	gen  uint64 // incremented on every trigger; a fired timer from an older trigger is a no-op
	stop func() bool
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay: delay,
		afterFunc: func(d time.Duration, f func()) func() bool {
			return time.AfterFunc(d, f).Stop
		},
	}
}

func (d *debouncer) trigger(f func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stop != nil {
		d.stop()
	}
	d.gen++
	gen := d.gen
	d.stop = d.afterFunc(d.delay, func() {
		d.mu.Lock()
		current := gen == d.gen
		if current {
			d.stop = nil
		}
		d.mu.Unlock()
		if current {
			f()
		}
	})
}

func (d *debouncer) cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stop != nil {
		d.stop()
		d.stop = nil
	}
	d.gen++
}
