// Package debounce delays a callback until its trigger has been quiet for a
// fixed window.
package debounce

import (
	"sync"
	"time"
)

const DefaultWindow = 300 * time.Millisecond

// Debouncer passes only the last value of a burst of Trigger calls to fn,
// once no new value has arrived for the window.
type Debouncer[T any] struct {
	window time.Duration
	fn     func(T)

	mu      sync.Mutex
	timer   *time.Timer
	seq     uint64
	stopped bool
}

func New[T any](window time.Duration, fn func(T)) *Debouncer[T] {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Debouncer[T]{window: window, fn: fn}
}

func (d *Debouncer[T]) Trigger(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
	seq := d.seq
	d.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		// a later Trigger or Stop got in between the timer firing and here
		if seq != d.seq || d.stopped {
			d.mu.Unlock()
			return
		}
		d.mu.Unlock()
		d.fn(v)
	})
}

// Flush cancels the pending timer and runs fn with v immediately.
func (d *Debouncer[T]) Flush(v T) {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
	d.mu.Unlock()
	d.fn(v)
}

// Stop drops any pending value. Later triggers are ignored.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
	}
}
